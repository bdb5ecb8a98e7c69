package bootstrap

import (
	"github.com/rs/zerolog/log"
	driver "go.mongodb.org/mongo-driver/mongo"

	"github.com/harmonia-app/harmonia/domain"
	"github.com/harmonia-app/harmonia/mongo"
	"github.com/harmonia-app/harmonia/storage"
)

// NewMediaStorage builds the GridFS-backed media store on the application
// database. The bucket needs the raw driver handle underneath the wrapper.
func NewMediaStorage(db mongo.Database) domain.MediaStorage {
	raw, ok := db.Raw().(*driver.Database)
	if !ok {
		log.Fatal().Msg("database wrapper does not expose a raw driver handle")
	}
	store, err := storage.NewGridFS(raw)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create media storage")
	}
	return store
}
