package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harmonia-app/harmonia/api/controller"
	"github.com/harmonia-app/harmonia/domain"
	"github.com/harmonia-app/harmonia/mongo"
	"github.com/harmonia-app/harmonia/repository"
	"github.com/harmonia-app/harmonia/usecase"
)

func NewUserRouter(timeout time.Duration, db mongo.Database, store domain.MediaStorage, private *gin.RouterGroup) {
	uc := usecase.NewUserUsecase(
		repository.NewUserRepository(db, domain.CollectionUser),
		repository.NewSongRepository(db, domain.CollectionSong),
		repository.NewAlbumRepository(db, domain.CollectionAlbum),
		repository.NewArtistRepository(db, domain.CollectionArtist),
		repository.NewPlaylistRepository(db, domain.CollectionPlaylist),
		repository.NewRelationRepository(db),
		store,
		timeout,
	)
	ctrl := controller.NewUserController(uc)

	userGroup := private.Group("/users")
	{
		userGroup.GET("/profile", ctrl.GetProfile)
		userGroup.PUT("/profile", ctrl.UpdateProfile)
		userGroup.PUT("/like-song/:id", ctrl.ToggleLikeSong)
		userGroup.PUT("/like-album/:id", ctrl.ToggleLikeAlbum)
		userGroup.PUT("/follow-artist/:id", ctrl.ToggleFollowArtist)
		userGroup.PUT("/follow-playlist/:id", ctrl.ToggleFollowPlaylist)
	}
}
