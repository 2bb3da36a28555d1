package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tu-usuario/crm-pro/internal/application/auth"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/pkg/config"
)

var _ auth.ProfileCache = (*ProfileCache)(nil)

// ProfileCache cache-aside del perfil de usuario sobre Redis, una entrada
// por identidad con TTL.
type ProfileCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProfileCache conecta a Redis según configuración. Devuelve nil si no hay
// Addr configurado o el ping falla: la app degrada a funcionar sin cache.
func NewProfileCache(cfg config.RedisConfig) *ProfileCache {
	if cfg.Addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ProfileCache{client: client, ttl: ttl}
}

func profileKey(userID string) string {
	return "profile:" + userID
}

// Get devuelve el perfil cacheado o nil, nil si no hay entrada.
func (c *ProfileCache) Get(ctx context.Context, userID string) (*dto.UserResponse, error) {
	raw, err := c.client.Get(ctx, profileKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var profile dto.UserResponse
	if err := json.Unmarshal(raw, &profile); err != nil {
		// Entrada corrupta: descartarla y tratar como cache miss.
		_ = c.client.Del(ctx, profileKey(userID)).Err()
		return nil, nil
	}
	return &profile, nil
}

// Set guarda el perfil con TTL.
func (c *ProfileCache) Set(ctx context.Context, userID string, profile *dto.UserResponse) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, profileKey(userID), raw, c.ttl).Err()
}

// Invalidate elimina la entrada (transiciones login/logout).
func (c *ProfileCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, profileKey(userID)).Err()
}
