package bootstrap

import (
	"github.com/harmonia-app/harmonia/cache"
	"github.com/harmonia-app/harmonia/domain"
	"github.com/harmonia-app/harmonia/mongo"
)

// Application owns the process-wide handles. It is built once in main and
// passed down; nothing here is a package-level singleton, so tests can build
// as many instances as they like.
type Application struct {
	Env       *Env
	Mongo     mongo.Client
	Storage   domain.MediaStorage
	ListCache cache.ListCache
}

func App() Application {
	app := Application{}
	app.Env = NewEnv()
	SetupLogger(app.Env)
	app.Mongo = NewMongoDatabase(app.Env)
	app.Storage = NewMediaStorage(app.Mongo.Database(app.Env.DBName))
	app.ListCache = NewListCache(app.Env)
	return app
}

func (app *Application) CloseDBConnection() {
	CloseMongoDBConnection(app.Mongo)
}
