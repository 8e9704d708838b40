package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrLimite le quota de la fenêtre courante est épuisé
var ErrLimite = errors.New("limite de tentatives atteinte")

// Limiter compteur à fenêtre fixe sur Redis. Utilisé pour plafonner les
// tentatives de connexion par adresse IP.
type Limiter struct {
	client    *redis.Client
	max       int
	keyPrefix string
	fenetre   time.Duration
}

// NewLimiter crée un limiteur à fenêtre fixe
func NewLimiter(client *redis.Client, max int, keyPrefix string, fenetre time.Duration) *Limiter {
	return &Limiter{
		client:    client,
		max:       max,
		keyPrefix: keyPrefix,
		fenetre:   fenetre,
	}
}

// Allow consomme une tentative pour la clé donnée. Le script Lua garantit
// l'atomicité de l'incrément et de la pose du TTL.
func (l *Limiter) Allow(ctx context.Context, key string) error {
	redisKey := l.keyPrefix + key

	script := redis.NewScript(
		`local count = redis.call('INCR', KEYS[1])
		if count == 1 then
			redis.call('EXPIRE', KEYS[1], tonumber(ARGV[1]))
		end
		return count`,
	)

	result, err := script.Run(ctx, l.client, []string{redisKey}, int(l.fenetre.Seconds())).Result()
	if err != nil {
		return fmt.Errorf("exécution du script Lua: %w", err)
	}

	if int(result.(int64)) > l.max {
		return ErrLimite
	}
	return nil
}

// Reset efface le compteur d'une clé, appelé après une connexion réussie
func (l *Limiter) Reset(ctx context.Context, key string) error {
	return l.client.Del(ctx, l.keyPrefix+key).Err()
}

// Current nombre de tentatives déjà consommées dans la fenêtre
func (l *Limiter) Current(ctx context.Context, key string) (int, error) {
	current, err := l.client.Get(ctx, l.keyPrefix+key).Int()
	if err != nil && err != redis.Nil {
		return 0, fmt.Errorf("lecture du compteur: %w", err)
	}
	if err == redis.Nil {
		return 0, nil
	}
	return current, nil
}
