package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GateService gestiona los códigos de canje de un solo uso que dan acceso a
// una entrega del cuestionario. Un código canjeado produce un token de
// entrega; ambos se invalidan en su primer uso.
type GateService struct {
	logger  *zap.Logger
	codes   SingleUseStore
	tokens  *TokenService
	codeTTL time.Duration
}

var (
	// ErrCodeInvalid cubre código desconocido, caducado o ya canjeado; no
	// se distingue hacia fuera para no filtrar cuál de los tres fue.
	ErrCodeInvalid = errors.New("redemption code invalid")
	ErrBatchSize   = errors.New("invalid code batch size")
)

// MaxCodeBatch limita cuántos códigos se emiten por petición.
const MaxCodeBatch = 100

// NewGateService crea la puerta de acceso.
func NewGateService(logger *zap.Logger, codes SingleUseStore, tokens *TokenService, codeTTL time.Duration) *GateService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if codeTTL <= 0 {
		codeTTL = 72 * time.Hour
	}
	return &GateService{
		logger:  logger,
		codes:   codes,
		tokens:  tokens,
		codeTTL: codeTTL,
	}
}

// CodeTTL devuelve la validez configurada de los códigos emitidos.
func (s *GateService) CodeTTL() time.Duration {
	return s.codeTTL
}

// IssueCodes emite n códigos opacos con expiración.
func (s *GateService) IssueCodes(ctx context.Context, n int) ([]string, error) {
	if n <= 0 || n > MaxCodeBatch {
		return nil, ErrBatchSize
	}
	codes := make([]string, 0, n)
	for i := 0; i < n; i++ {
		code := strings.ReplaceAll(uuid.NewString(), "-", "")
		if err := s.codes.Put(ctx, code, s.codeTTL); err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	s.logger.Info("redemption codes issued", zap.Int("count", n))
	return codes, nil
}

// Redeem consume un código y emite un token de entrega. El consumo del
// código es atómico en el store, así que un código solo se canjea una vez
// aunque lleguen canjes concurrentes.
func (s *GateService) Redeem(ctx context.Context, code string) (SubmitToken, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return SubmitToken{}, ErrCodeInvalid
	}
	ok, err := s.codes.Consume(ctx, code)
	if err != nil {
		return SubmitToken{}, err
	}
	if !ok {
		return SubmitToken{}, ErrCodeInvalid
	}
	token, err := s.tokens.Generate(ctx)
	if err != nil {
		return SubmitToken{}, err
	}
	return token, nil
}
