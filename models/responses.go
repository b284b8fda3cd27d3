package models

// ValidationResponse is the body returned with HTTP 422 when a request
// payload violates a validation rule. Validation carries the single
// machine-readable code of the first violated rule, e.g. "password.short".
type ValidationResponse struct {
	Validation string `json:"validation"`
}

// RegisterResponse is the body returned with HTTP 201 after a successful
// registration. Only the username is echoed back; credentials are not.
type RegisterResponse struct {
	Username string `json:"username"`
}
