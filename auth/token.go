package auth

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jbook26/inventory-api/config"
	"github.com/jbook26/inventory-api/models"
)

// Service issues and verifies session tokens. All signing material comes
// from the config passed at startup.
type Service struct {
	cfg config.AuthConfig
}

func NewService(cfg config.AuthConfig) *Service {
	return &Service{cfg: cfg}
}

// SessionClaims is the payload embedded in the session cookie.
type SessionClaims struct {
	UserID uint   `json:"uid"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// SignToken issues an HS256 token for the user with the configured expiry.
func (s *Service) SignToken(user models.User) (string, error) {
	claims := SessionClaims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.cfg.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// VerifyToken validates signature and expiry and returns the claims.
func (s *Service) VerifyToken(raw string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(raw, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// SessionFromRequest reads the session cookie and verifies it.
func (s *Service) SessionFromRequest(c *gin.Context) (*SessionClaims, error) {
	raw, err := c.Cookie(s.cfg.CookieName)
	if err != nil {
		return nil, err
	}
	return s.VerifyToken(raw)
}

// setSessionCookie delivers the token as an HTTP-only cookie scoped to /.
func (s *Service) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(s.cfg.CookieName, token, int(s.cfg.TokenTTL.Seconds()), "/", "", false, true)
}

// clearSessionCookie overwrites the cookie with an immediately-expiring value.
func (s *Service) clearSessionCookie(c *gin.Context) {
	c.SetCookie(s.cfg.CookieName, "", -1, "/", "", false, true)
}
