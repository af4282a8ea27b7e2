package resources

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/luantnk/SmartQuitIoT-sub002/internal/api"
	"github.com/luantnk/SmartQuitIoT-sub002/internal/models"
	"github.com/luantnk/SmartQuitIoT-sub002/internal/session"
)

var validate = validator.New()

// Auth signs the console user in and out. Login is the only operation here
// that talks to the API: logout is purely local, the platform invalidates
// refresh tokens on rotation anyway.
type Auth struct {
	client  *api.Client
	session *session.Manager
}

func NewAuth(client *api.Client, manager *session.Manager) *Auth {
	return &Auth{client: client, session: manager}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
	Account      *models.Account `json:"account"`
}

// Login exchanges credentials for a token pair and activates the session.
func (a *Auth) Login(ctx context.Context, email string, password string) (models.Account, error) {
	var account models.Account

	in := loginRequest{Email: email, Password: password}
	if err := validate.Struct(in); err != nil {
		return account, fmt.Errorf("invalid credentials input: %w", err)
	}

	var out loginResponse
	if err := a.client.PostJSON(ctx, "/auth/login", in, &out); err != nil {
		return account, err
	}

	if err := a.session.SetPair(ctx, out.AccessToken, out.RefreshToken); err != nil {
		return account, err
	}
	if out.Account != nil {
		account = *out.Account
		if err := a.session.SetAccount(ctx, account); err != nil {
			return account, err
		}
	}

	return account, nil
}

// Logout clears local session state.
func (a *Auth) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}
