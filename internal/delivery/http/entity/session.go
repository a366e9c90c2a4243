package entity

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
}

type SessionResponse struct {
	SessionID  string   `json:"sessionId,omitempty"`
	Username   string   `json:"username,omitempty"`
	LoggedIn   bool     `json:"loggedIn"`
	KnownUsers []string `json:"knownUsers"`
}
