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

func NewSongRouter(timeout time.Duration, db mongo.Database, store domain.MediaStorage, listCache cache.ListCache, public, admin *gin.RouterGroup) {
	uc := usecase.NewSongUsecase(
		repository.NewSongRepository(db, domain.CollectionSong),
		repository.NewArtistRepository(db, domain.CollectionArtist),
		repository.NewAlbumRepository(db, domain.CollectionAlbum),
		store,
		listCache,
		timeout,
	)
	ctrl := controller.NewSongController(uc)

	songGroup := public.Group("/songs")
	{
		songGroup.GET("", ctrl.Fetch)
		songGroup.GET("/top", ctrl.Top)
		songGroup.GET("/new-releases", ctrl.Newest)
		songGroup.GET("/:id", ctrl.GetByID)
	}

	adminGroup := admin.Group("/songs")
	{
		adminGroup.POST("", ctrl.Create)
		adminGroup.PUT("/:id", ctrl.Update)
		adminGroup.DELETE("/:id", ctrl.Delete)
	}
}
