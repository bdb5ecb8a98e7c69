package bootstrap

import (
	"github.com/rs/zerolog/log"

	"github.com/harmonia-app/harmonia/cache"
)

// NewListCache wires the redis list cache when an address is configured and
// a noop otherwise, so the hot read paths degrade gracefully.
func NewListCache(env *Env) cache.ListCache {
	if env.RedisAddr == "" {
		log.Info().Msg("no redis address configured, list cache disabled")
		return cache.NewNoop()
	}
	return cache.NewRedis(env.RedisAddr, env.RedisPassword, env.RedisDB)
}
