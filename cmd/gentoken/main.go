// gentoken mints a signed access token for local development, so the console
// can be exercised without a running platform API.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/pflag"

	"github.com/luantnk/SmartQuitIoT-sub002/internal/session"
)

func main() {
	secret := pflag.StringP("secret", "s", "dev-secret", "Signing secret")
	accountID := pflag.Int64P("account", "a", 1, "Account identifier claim")
	scope := pflag.StringP("scope", "c", "ADMIN", "Scope claim")
	ttl := pflag.DurationP("ttl", "t", 15*time.Minute, "Token lifetime")
	pflag.Parse()

	now := time.Now().Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, session.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(*ttl)),
		},
		AccountID: *accountID,
		Scope:     *scope,
	})

	signed, err := token.SignedString([]byte(*secret))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error while signing token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(signed)
}
