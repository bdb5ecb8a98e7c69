package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harmonia-app/harmonia/api/controller"
	"github.com/harmonia-app/harmonia/cache"
	"github.com/harmonia-app/harmonia/domain"
	"github.com/harmonia-app/harmonia/mongo"
	"github.com/harmonia-app/harmonia/repository"
	"github.com/harmonia-app/harmonia/usecase"
)

func NewPlaylistRouter(
	timeout time.Duration,
	db mongo.Database,
	store domain.MediaStorage,
	listCache cache.ListCache,
	public, private, optional *gin.RouterGroup,
) {
	uc := usecase.NewPlaylistUsecase(
		repository.NewPlaylistRepository(db, domain.CollectionPlaylist),
		repository.NewSongRepository(db, domain.CollectionSong),
		repository.NewUserRepository(db, domain.CollectionUser),
		store,
		listCache,
		timeout,
	)
	ctrl := controller.NewPlaylistController(uc)

	publicGroup := public.Group("/playlists")
	{
		publicGroup.GET("", ctrl.Fetch)
		publicGroup.GET("/featured", ctrl.Featured)
	}

	// A single GET /:id sits behind optional auth: public playlists are open,
	// private ones need the caller to be a member.
	optional.GET("/playlists/:id", ctrl.GetByID)

	privateGroup := private.Group("/playlists")
	{
		privateGroup.POST("", ctrl.Create)
		privateGroup.GET("/user/me", ctrl.GetMine)
		privateGroup.PUT("/:id", ctrl.Update)
		privateGroup.DELETE("/:id", ctrl.Delete)
		privateGroup.PUT("/:id/add-songs", ctrl.AddSongs)
		privateGroup.PUT("/:id/remove-songs/:songId", ctrl.RemoveSong)
		privateGroup.PUT("/:id/add-collaborator", ctrl.AddCollaborator)
		privateGroup.PUT("/:id/remove-collaborator", ctrl.RemoveCollaborator)
	}
}
