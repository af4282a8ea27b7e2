package models

// TokenPair as returned by the auth endpoints (login and refresh).
// Both values are replaced together on every successful refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
