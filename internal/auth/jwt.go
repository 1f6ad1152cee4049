package auth

import (
	"time"

	"github.com/Kal1-linux/CouponCo/internal/config"
	ierr "github.com/Kal1-linux/CouponCo/internal/errors"
	"github.com/golang-jwt/jwt/v4"
)

// Claims carries the identity encoded in a bearer token
type Claims struct {
	UserID  string
	IsAdmin bool
}

// Service signs and verifies the bearer tokens the API accepts
type Service struct {
	cfg config.AuthConfig
}

func NewService(cfg *config.Configuration) *Service {
	return &Service{cfg: cfg.Auth}
}

// GenerateToken issues a signed token for the given user
func (s *Service) GenerateToken(userID string, isAdmin bool) (string, error) {
	validity := s.cfg.Validity
	if validity == 0 {
		validity = 24 * time.Hour
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  userID,
		"is_admin": isAdmin,
		"exp":      time.Now().Add(validity).Unix(),
		"iat":      time.Now().Unix(),
	})

	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to generate token").
			Mark(ierr.ErrSystem)
	}
	return signed, nil
}

// ValidateToken verifies the signature and expiry and returns the claims
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	parsedToken, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ierr.NewError("unexpected signing method").
				WithHintf("unexpected signing method: %v", token.Header["alg"]).
				Mark(ierr.ErrPermissionDenied)
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Token parse error").
			Mark(ierr.ErrPermissionDenied)
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, ierr.NewError("invalid token claims").
			WithHint("Invalid token claims").
			Mark(ierr.ErrPermissionDenied)
	}

	userID, userOk := claims["user_id"].(string)
	if !userOk || userID == "" {
		return nil, ierr.NewError("token missing user ID").
			WithHint("Token missing user ID").
			Mark(ierr.ErrPermissionDenied)
	}

	isAdmin, _ := claims["is_admin"].(bool)

	return &Claims{
		UserID:  userID,
		IsAdmin: isAdmin,
	}, nil
}
