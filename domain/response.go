package domain

// ErrorResponse is the uniform error body: every failed request carries a
// single human-readable message.
type ErrorResponse struct {
	Message string `json:"message"`
}

// RegisterResponse is returned after successful registration.
type RegisterResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// LoginResponse is returned after successful login.
type LoginResponse struct {
	LoginStatus string `json:"login_status"`
	Token       string `json:"token"`
}

// ScoreAuthor carries just the player name for leaderboard entries.
type ScoreAuthor struct {
	Name string `json:"name"`
}

// ScoreEntry is a single leaderboard row.
type ScoreEntry struct {
	ID     uint        `json:"id"`
	Score  int         `json:"score"`
	Author ScoreAuthor `json:"author"`
}
