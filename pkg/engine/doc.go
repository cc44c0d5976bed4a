// Package engine is the composition root that assembles the completion
// adapter and transcript sharer from a YAML configuration and exposes them
// through a frontend-agnostic API. Frontends interact with Engine and never
// need to resolve endpoints or headers themselves.
package engine
