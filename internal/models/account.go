package models

// Account is the locally cached profile of the signed-in console user.
// It is only an identity fallback: the access token claims stay the source
// of truth while a token is present.
type Account struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}
