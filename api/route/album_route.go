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

func NewAlbumRouter(timeout time.Duration, db mongo.Database, store domain.MediaStorage, listCache cache.ListCache, public, admin *gin.RouterGroup) {
	uc := usecase.NewAlbumUsecase(
		repository.NewAlbumRepository(db, domain.CollectionAlbum),
		repository.NewArtistRepository(db, domain.CollectionArtist),
		repository.NewSongRepository(db, domain.CollectionSong),
		store,
		listCache,
		timeout,
	)
	ctrl := controller.NewAlbumController(uc)

	albumGroup := public.Group("/albums")
	{
		albumGroup.GET("", ctrl.Fetch)
		albumGroup.GET("/new-releases", ctrl.Newest)
		albumGroup.GET("/:id", ctrl.GetByID)
	}

	adminGroup := admin.Group("/albums")
	{
		adminGroup.POST("", ctrl.Create)
		adminGroup.PUT("/:id", ctrl.Update)
		adminGroup.DELETE("/:id", ctrl.Delete)
	}
}
