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

func NewArtistRouter(timeout time.Duration, db mongo.Database, store domain.MediaStorage, public, admin *gin.RouterGroup) {
	uc := usecase.NewArtistUsecase(
		repository.NewArtistRepository(db, domain.CollectionArtist),
		repository.NewAlbumRepository(db, domain.CollectionAlbum),
		repository.NewSongRepository(db, domain.CollectionSong),
		store,
		timeout,
	)
	ctrl := controller.NewArtistController(uc)

	artistGroup := public.Group("/artists")
	{
		artistGroup.GET("", ctrl.Fetch)
		artistGroup.GET("/top", ctrl.Top)
		artistGroup.GET("/:id", ctrl.GetByID)
		artistGroup.GET("/:id/top-songs", ctrl.TopSongs)
	}

	adminGroup := admin.Group("/artists")
	{
		adminGroup.POST("", ctrl.Create)
		adminGroup.PUT("/:id", ctrl.Update)
		adminGroup.DELETE("/:id", ctrl.Delete)
	}
}
