package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

const dayTTL = 2 * time.Minute

// AvailabilityCache garde les grilles de disponibilité en Redis : un hash
// par journée (clé institut:date, champ = slug du soin demandé), purgé
// d'un seul DEL à chaque mutation touchant cette journée. Un client nil
// dégrade en recalcul systématique : le cache n'est jamais requis pour
// répondre.
type AvailabilityCache struct {
	rdb *redis.Client
	log zerolog.Logger
}

func New(addr string, log zerolog.Logger) *AvailabilityCache {
	if addr == "" {
		return &AvailabilityCache{log: log}
	}

	return &AvailabilityCache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		log: log,
	}
}

func dayKey(instituteID uint, date string) string {
	return fmt.Sprintf("availability:%d:%s", instituteID, date)
}

// GetDay retourne la grille sérialisée du jour pour un soin, "" si absente.
func (c *AvailabilityCache) GetDay(ctx context.Context, instituteID uint, date, serviceSlug string) string {
	if c == nil || c.rdb == nil {
		return ""
	}

	val, err := c.rdb.HGet(ctx, dayKey(instituteID, date), fieldFor(serviceSlug)).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Debug().Err(err).Msg("availability cache read failed")
		}
		return ""
	}
	return val
}

func (c *AvailabilityCache) SetDay(ctx context.Context, instituteID uint, date, serviceSlug, payload string) {
	if c == nil || c.rdb == nil {
		return
	}

	key := dayKey(instituteID, date)
	pipe := c.rdb.Pipeline()
	pipe.HSet(ctx, key, fieldFor(serviceSlug), payload)
	pipe.Expire(ctx, key, dayTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		c.log.Debug().Err(err).Msg("availability cache write failed")
	}
}

// InvalidateDay purge toutes les grilles du jour après une mutation.
func (c *AvailabilityCache) InvalidateDay(ctx context.Context, instituteID uint, date string) {
	if c == nil || c.rdb == nil {
		return
	}

	if err := c.rdb.Del(ctx, dayKey(instituteID, date)).Err(); err != nil {
		c.log.Debug().Err(err).Msg("availability cache invalidation failed")
	}
}

func fieldFor(serviceSlug string) string {
	if serviceSlug == "" {
		return "_default"
	}
	return serviceSlug
}
