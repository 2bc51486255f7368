package dto

// SessionResponse describes the caller's session.
type SessionResponse struct {
	SessionID     string `json:"session_id"`
	CreatedAt     string `json:"created_at"`
	RatedCount    int    `json:"rated_count"`
	FavoriteCount int    `json:"favorite_count"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error" example:"rating 7 is outside the 1.0-5.0 scale"`
}
