package account

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gennaskitchen/service-api-go/internal/account/entity"
)

const tokenTTL = 24 * time.Hour

// SessionToken issues a signed HS256 token for an authenticated profile.
// The secret comes from APP_JWT_SECRET; a development fallback keeps local
// runs working without configuration.
func SessionToken(p *entity.Profile) (string, error) {
	secret := os.Getenv("APP_JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      p.ID,
		"username": p.Username,
		"email":    p.Email,
		"iat":      now.Unix(),
		"exp":      now.Add(tokenTTL).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}
