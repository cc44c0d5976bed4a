// Package azure holds the URL and deployment rules for Azure-hosted OpenAI
// endpoints.
package azure

import (
	"strings"

	"github.com/germanamz/chatbridge/pkg/providers/model"
)

// HostMarker identifies an Azure OpenAI endpoint.
const HostMarker = "openai.azure.com"

// API versions sent in the api-version query parameter.
const (
	LegacyAPIVersion  = "2023-07-01-preview"
	CurrentAPIVersion = "2023-03-15-preview"
)

// IsEndpoint reports whether endpoint points at an Azure OpenAI resource.
// Only the URL string is inspected.
func IsEndpoint(endpoint string) bool {
	return strings.Contains(endpoint, HostMarker)
}

// DeploymentTable maps model identifiers to Azure deployment names.
type DeploymentTable map[model.ID]string

// Lookup returns the deployment name for id, or id itself when unmapped.
func (t DeploymentTable) Lookup(id model.ID) string {
	if d, ok := t[id]; ok && d != "" {
		return d
	}
	return string(id)
}

// CompletionDeployments is used for blocking completion requests.
var CompletionDeployments = DeploymentTable{
	model.GPT35Turbo16K:     "gpt-35-turbo-16k",
	model.GPT35Turbo1106:    "gpt-35-turbo-1106",
	model.GPT4o:             "gpt-4o",
	model.GPT4oMini:         "gpt-4o-mini",
	model.GPT4Turbo:         "gpt-4-turbo",
	model.GPT4:              "gpt-4",
	model.O1Mini:            "o1-mini",
	model.O1Preview:         "o1-preview",
	model.Claude35Sonnet:    "claude-3-5-sonnet",
	model.Claude3Haiku:      "claude-3-haiku",
	model.Gemini15ProLatest: "gemini-1.5-pro",
	model.Llama31_70B:       "llama-3.1-70b",
}

// StreamDeployments is used for streaming requests. It only carries the
// 16k entry; every other model is sent under its own name.
var StreamDeployments = DeploymentTable{
	model.GPT35Turbo16K: "gpt-35-turbo-16k",
}

// APIVersion returns the api-version for a deployment name.
func APIVersion(deployment string) string {
	if deployment == "gpt-4" || deployment == "gpt-4-32k" {
		return LegacyAPIVersion
	}
	return CurrentAPIVersion
}

// DeploymentPath returns the chat completions path for a deployment,
// including the api-version query.
func DeploymentPath(deployment string) string {
	return "openai/deployments/" + deployment + "/chat/completions?api-version=" + APIVersion(deployment)
}

// ResolveURL appends the deployment path to endpoint unless endpoint already
// ends with it. A "/" separator is added only when missing.
func ResolveURL(endpoint, deployment string) string {
	path := DeploymentPath(deployment)
	if strings.HasSuffix(endpoint, path) {
		return endpoint
	}

	if !strings.HasSuffix(endpoint, "/") {
		endpoint += "/"
	}

	return endpoint + path
}
