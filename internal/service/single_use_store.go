package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// SingleUseStore guarda claves de un solo uso con expiración. Consume debe
// ser atómico: ante dos consumos concurrentes de la misma clave, exactamente
// uno devuelve true.
type SingleUseStore interface {
	Put(ctx context.Context, key string, ttl time.Duration) error
	Consume(ctx context.Context, key string) (bool, error)
}

type memorySingleUseStore struct {
	mu    sync.Mutex
	items map[string]time.Time
}

// NewMemorySingleUseStore crea un store en memoria. Pensado para desarrollo
// y tests; no sobrevive reinicios.
func NewMemorySingleUseStore() SingleUseStore {
	return &memorySingleUseStore{
		items: make(map[string]time.Time),
	}
}

func (s *memorySingleUseStore) Put(_ context.Context, key string, ttl time.Duration) error {
	if strings.TrimSpace(key) == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = time.Now().UTC().Add(ttl)
	return nil
}

func (s *memorySingleUseStore) Consume(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp, ok := s.items[key]
	if !ok {
		return false, nil
	}
	delete(s.items, key)
	if time.Now().UTC().After(exp) {
		return false, nil
	}
	return true, nil
}

// redisSingleUseClient cubre los comandos que usa el store; permite mockear
// el cliente en tests.
type redisSingleUseClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	GetDel(ctx context.Context, key string) *redis.StringCmd
}

type redisSingleUseStore struct {
	client redisSingleUseClient
	prefix string
}

// NewRedisSingleUseStore crea un store sobre Redis. GETDEL hace el consumo
// en una sola operación, así que la garantía de un solo uso se mantiene
// entre instancias del servicio.
func NewRedisSingleUseStore(client *redis.Client, prefix string) SingleUseStore {
	if client == nil {
		return nil
	}
	return &redisSingleUseStore{
		client: client,
		prefix: prefix,
	}
}

func (s *redisSingleUseStore) Put(ctx context.Context, key string, ttl time.Duration) error {
	if strings.TrimSpace(key) == "" {
		return nil
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	return s.client.Set(ctx, s.prefix+key, "1", ttl).Err()
}

func (s *redisSingleUseStore) Consume(ctx context.Context, key string) (bool, error) {
	if strings.TrimSpace(key) == "" {
		return false, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	_, err := s.client.GetDel(ctx, s.prefix+key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
