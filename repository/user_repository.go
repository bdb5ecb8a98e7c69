package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harmonia-app/harmonia/domain"
	"github.com/harmonia-app/harmonia/mongo"
)

type userRepository struct {
	baseRepository[domain.User]
}

func NewUserRepository(db mongo.Database, collection string) domain.UserRepository {
	return &userRepository{baseRepository[domain.User]{db: db, collection: collection}}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	return r.create(ctx, user)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, bson.M{"email": email})
}

func (r *userRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	return r.getByID(ctx, id)
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	return r.update(ctx, user)
}
