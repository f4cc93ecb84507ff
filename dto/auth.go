package dto

// ==================== AUTHENTICATION DTOs ====================

// LoginRequest exchanges a client identity for a user token. Either a Google
// ID token or a raw client ID is accepted, at least one must be present.
type LoginRequest struct {
	GoogleIDToken string `json:"google_id_token,omitempty"`
	ClientID      string `json:"client_id,omitempty"`
}

func (l LoginRequest) Validate() error {
	return GetValidator().Struct(l)
}

type LoginResponse struct {
	UserToken  string `json:"user_token"`
	ClientType int    `json:"client_type"`
}

// TokenBody is embedded in every authenticated request body.
type TokenBody struct {
	UserToken string `json:"user_token,omitempty"`
}
