package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService emite tokens de entrega de un solo uso y los consume al
// pasar la puerta de acceso.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	issuer string
	store  SingleUseStore
}

// SubmitToken es el token emitido al canjear un código de acceso.
type SubmitToken struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

// SubmitClaims son los claims del token de entrega.
type SubmitClaims struct {
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

var (
	ErrTokenInvalid = errors.New("submit token invalid")
	ErrTokenExpired = errors.New("submit token expired")
	ErrTokenUsed    = errors.New("submit token already used")
)

const submitTokenType = "submit"

// NewTokenService crea el servicio. Si store es nil usa uno en memoria.
func NewTokenService(secret string, ttl time.Duration, store SingleUseStore) *TokenService {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if store == nil {
		store = NewMemorySingleUseStore()
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: "scl90-api",
		store:  store,
	}
}

// Generate emite un token firmado y registra su jti en el store de un solo
// uso.
func (s *TokenService) Generate(ctx context.Context) (SubmitToken, error) {
	if len(s.secret) == 0 {
		return SubmitToken{}, ErrTokenInvalid
	}
	now := time.Now().UTC()
	jti := uuid.NewString()
	claims := SubmitClaims{
		TokenType: submitTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return SubmitToken{}, err
	}
	if err := s.store.Put(ctx, jti, s.ttl); err != nil {
		return SubmitToken{}, err
	}
	return SubmitToken{
		Token:     signed,
		ExpiresIn: int64(s.ttl.Seconds()),
	}, nil
}

// Consume valida el token y quema su jti. El consumo es atómico en el
// store: un segundo Consume del mismo token devuelve ErrTokenUsed.
func (s *TokenService) Consume(ctx context.Context, tokenString string) error {
	if len(s.secret) == 0 {
		return ErrTokenInvalid
	}
	if strings.TrimSpace(tokenString) == "" {
		return ErrTokenInvalid
	}
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return err
	}
	if claims.TokenType != submitTokenType || claims.Issuer != s.issuer {
		return ErrTokenInvalid
	}
	if claims.ID == "" {
		return ErrTokenInvalid
	}
	ok, err := s.store.Consume(ctx, claims.ID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrTokenUsed
	}
	return nil
}

func (s *TokenService) parseToken(tokenString string) (SubmitClaims, error) {
	var claims SubmitClaims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(tokenString, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return SubmitClaims{}, ErrTokenExpired
		}
		return SubmitClaims{}, ErrTokenInvalid
	}
	return claims, nil
}
