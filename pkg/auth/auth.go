package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrNoRequester  = errors.New("no requester in context")
	ErrInvalidToken = errors.New("invalid token")
)

type Config struct {
	Secret string        `yaml:"secret" envconfig:"JWT_SECRET" json:"-"`
	TTL    time.Duration `yaml:"ttl" envconfig:"JWT_TTL" default:"24h"`
}

// Requester is the authenticated caller of a request.
type Requester struct {
	UserID   uuid.UUID
	Username string
}

type Claims struct {
	Profile struct {
		UserID   string `json:"userId"`
		Username string `json:"username"`
	} `json:"profile"`
	jwt.RegisteredClaims
}

type TokenManager struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

func NewTokenManager(cfg Config) *TokenManager {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenManager{
		key: []byte(cfg.Secret),
		ttl: ttl,
		now: time.Now,
	}
}

func (m *TokenManager) Issue(userID uuid.UUID, username string) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(m.ttl)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	claims.Profile.UserID = userID.String()
	claims.Profile.Username = username

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.key)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign token")
	}
	return signed, expiresAt, nil
}

func (m *TokenManager) Parse(tokenStr string) (Requester, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return m.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return Requester{}, ErrInvalidToken
	}
	if claims.ExpiresAt == nil || m.now().After(claims.ExpiresAt.Time) {
		return Requester{}, ErrInvalidToken
	}
	userID, err := uuid.Parse(claims.Profile.UserID)
	if err != nil {
		return Requester{}, ErrInvalidToken
	}
	return Requester{UserID: userID, Username: claims.Profile.Username}, nil
}

type requesterKey struct{}

func SetAuthContext(ctx context.Context, r Requester) context.Context {
	return context.WithValue(ctx, requesterKey{}, r)
}

func GetRequester(ctx context.Context) (Requester, error) {
	r, ok := ctx.Value(requesterKey{}).(Requester)
	if !ok || r.UserID == uuid.Nil {
		return Requester{}, ErrNoRequester
	}
	return r, nil
}
