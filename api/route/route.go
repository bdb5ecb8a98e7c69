package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harmonia-app/harmonia/api/middleware"
	"github.com/harmonia-app/harmonia/bootstrap"
	"github.com/harmonia-app/harmonia/cache"
	"github.com/harmonia-app/harmonia/domain"
	"github.com/harmonia-app/harmonia/mongo"
	"github.com/harmonia-app/harmonia/repository"
	"github.com/harmonia-app/harmonia/usecase"
)

func Setup(
	env *bootstrap.Env,
	timeout time.Duration,
	db mongo.Database,
	store domain.MediaStorage,
	listCache cache.ListCache,
	g *gin.Engine,
) {
	tokens := usecase.TokenConfig{
		AccessSecret:  env.AccessTokenSecret,
		RefreshSecret: env.RefreshTokenSecret,
		AccessExpiry:  env.AccessTokenExpiryHour,
		RefreshExpiry: env.RefreshTokenExpiryHour,
	}
	userRepo := repository.NewUserRepository(db, domain.CollectionUser)

	public := g.Group("/api")
	private := g.Group("/api")
	private.Use(middleware.JwtAuthMiddleware(env.AccessTokenSecret, userRepo))
	admin := g.Group("/api")
	admin.Use(middleware.JwtAuthMiddleware(env.AccessTokenSecret, userRepo), middleware.AdminMiddleware())
	optional := g.Group("/api")
	optional.Use(middleware.OptionalJwtMiddleware(env.AccessTokenSecret, userRepo))

	NewSignupRouter(timeout, userRepo, tokens, public)
	NewLoginRouter(timeout, userRepo, tokens, public)
	NewRefreshTokenRouter(timeout, userRepo, tokens, public)
	NewUserRouter(timeout, db, store, private)
	NewArtistRouter(timeout, db, store, public, admin)
	NewAlbumRouter(timeout, db, store, listCache, public, admin)
	NewSongRouter(timeout, db, store, listCache, public, admin)
	NewPlaylistRouter(timeout, db, store, listCache, public, private, optional)
}
