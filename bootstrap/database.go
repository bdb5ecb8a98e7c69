package bootstrap

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/harmonia-app/harmonia/mongo"
)

func NewMongoDatabase(env *Env) mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.NewClient(env.DBUri)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create mongo client")
	}
	if err := client.Connect(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongo")
	}
	if err := client.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ping mongo")
	}
	return client
}

func CloseMongoDBConnection(client mongo.Client) {
	if client == nil {
		return
	}
	if err := client.Disconnect(context.TODO()); err != nil {
		log.Error().Err(err).Msg("failed to close mongo connection")
		return
	}
	log.Info().Msg("connection to mongo closed")
}
