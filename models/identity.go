package models

// Identity is the authenticated subject derived from a verified token.
// It is request-scoped and never persisted.
type Identity struct {
	Subject string `json:"sub"`
	Role    Role   `json:"role"`
}
