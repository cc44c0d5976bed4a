// Package model defines the supported chat model identifiers and the
// generation parameters merged into completion requests.
//
// [Config.Fields] is the only way a configuration reaches the wire: it emits
// the enumerated fields plus any provider-specific extras and always drops
// max_tokens.
package model
