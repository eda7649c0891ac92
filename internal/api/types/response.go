// internal/api/types/response.go
package types

// Pagination describes the window applied to a list response. Total is the
// full count of matching rows, not the page length.
type Pagination struct {
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
	Total  int64 `json:"total"`
}

// ErrorResponse is the uniform error payload: a human message plus a stable
// machine-readable code, with optional field-level details for validation
// failures.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}
