// Package dto defines data transfer objects for API requests and responses.
package dto

// AllocationHelperRequest represents the request body for the allocation
// helper endpoint.
type AllocationHelperRequest struct {
	// UserContext is optional freeform text steering the suggestion.
	UserContext string `json:"user_context,omitempty"`
}

// SuggestionResponse wraps the opaque markdown text returned by the
// suggestion service.
type SuggestionResponse struct {
	Suggestion string `json:"suggestion"`
}
