package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TTL matches the expiry of tokens issued by the previous deployment so that
// tokens stay interchangeable across versions.
const TTL = 360000 * time.Second // 100 hours

var ErrInvalidToken = errors.New("invalid token")

// Claims keeps the legacy payload shape: the user id nested under "user".
type Claims struct {
	User UserClaim `json:"user"`
	jwt.RegisteredClaims
}

type UserClaim struct {
	ID string `json:"id"`
}

// Service issues and verifies stateless HS256 session tokens. The secret is
// fixed at construction; there is no rotation and no revocation list.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string) *Service {
	return &Service{secret: []byte(secret), ttl: TTL}
}

func (s *Service) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := Claims{
		User: UserClaim{ID: userID.String()},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify returns the user id carried by a valid token. Bad signature,
// malformed structure and elapsed expiry all collapse into ErrInvalidToken;
// callers get no further detail.
func (s *Service) Verify(tokenStr string) (uuid.UUID, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.User.ID)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return userID, nil
}
