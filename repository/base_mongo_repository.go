package repository

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	driver "go.mongodb.org/mongo-driver/mongo"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harmonia-app/harmonia/domain"
	"github.com/harmonia-app/harmonia/mongo"
)

// baseRepository carries the CRUD plumbing shared by every catalog
// repository: timestamp stamping, generated-ID propagation, and the
// not-found mapping. Entity repositories embed it and add their own queries.
type baseRepository[T any] struct {
	db         mongo.Database
	collection string
}

func (r *baseRepository[T]) create(ctx context.Context, entity *T) error {
	if entity == nil {
		return errors.New("entity cannot be nil")
	}
	r.setTimestamps(entity, true)

	coll := r.db.Collection(r.collection)
	resultID, err := coll.InsertOne(ctx, entity)
	if err != nil {
		return fmt.Errorf("failed to create entity: %w", err)
	}
	if oid, ok := resultID.(primitive.ObjectID); ok {
		r.setEntityID(entity, oid)
	}
	return nil
}

func (r *baseRepository[T]) getByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	coll := r.db.Collection(r.collection)
	var entity T
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&entity)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s/%s", domain.ErrNotFound, r.collection, id.Hex())
		}
		return nil, fmt.Errorf("failed to get entity: %w", err)
	}
	return &entity, nil
}

// getOne returns (nil, nil) when nothing matches; existence checks need the
// distinction from a failed query.
func (r *baseRepository[T]) getOne(ctx context.Context, filter bson.M) (*T, error) {
	coll := r.db.Collection(r.collection)
	var entity T
	err := coll.FindOne(ctx, filter).Decode(&entity)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find entity: %w", err)
	}
	return &entity, nil
}

func (r *baseRepository[T]) fetch(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]T, error) {
	coll := r.db.Collection(r.collection)
	if filter == nil {
		filter = bson.M{}
	}
	var cursor mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = coll.Find(ctx, filter, opts)
	} else {
		cursor, err = coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find entities: %w", err)
	}
	defer cursor.Close(ctx)

	entities := make([]T, 0)
	if err := cursor.All(ctx, &entities); err != nil {
		return nil, fmt.Errorf("failed to decode entities: %w", err)
	}
	return entities, nil
}

func (r *baseRepository[T]) count(ctx context.Context, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	coll := r.db.Collection(r.collection)
	count, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count entities: %w", err)
	}
	return count, nil
}

func (r *baseRepository[T]) update(ctx context.Context, entity *T) error {
	if entity == nil {
		return errors.New("entity cannot be nil")
	}
	id := r.getEntityID(entity)
	if id.IsZero() {
		return errors.New("entity ID cannot be empty")
	}
	r.setTimestamps(entity, false)

	coll := r.db.Collection(r.collection)
	result, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": entity})
	if err != nil {
		return fmt.Errorf("failed to update entity: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: %s/%s", domain.ErrNotFound, r.collection, id.Hex())
	}
	return nil
}

func (r *baseRepository[T]) delete(ctx context.Context, id primitive.ObjectID) error {
	coll := r.db.Collection(r.collection)
	deletedCount, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete entity: %w", err)
	}
	if deletedCount == 0 {
		return fmt.Errorf("%w: %s/%s", domain.ErrNotFound, r.collection, id.Hex())
	}
	return nil
}

func (r *baseRepository[T]) deleteMany(ctx context.Context, filter bson.M) (int64, error) {
	coll := r.db.Collection(r.collection)
	deletedCount, err := coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to delete entities: %w", err)
	}
	return deletedCount, nil
}

func (r *baseRepository[T]) updateOne(ctx context.Context, filter, update bson.M) error {
	coll := r.db.Collection(r.collection)
	if _, err := coll.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to update entity: %w", err)
	}
	return nil
}

func (r *baseRepository[T]) updateMany(ctx context.Context, filter, update bson.M) error {
	coll := r.db.Collection(r.collection)
	if _, err := coll.UpdateMany(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to update entities: %w", err)
	}
	return nil
}

func (r *baseRepository[T]) setTimestamps(entity *T, isCreate bool) {
	val := reflect.ValueOf(entity).Elem()
	typ := val.Type()

	now := primitive.NewDateTimeFromTime(time.Now())

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		if !field.CanSet() || field.Type() != reflect.TypeOf(now) {
			continue
		}
		name := bsonFieldName(typ.Field(i))
		if isCreate && name == "created_at" {
			field.Set(reflect.ValueOf(now))
		}
		if name == "updated_at" {
			field.Set(reflect.ValueOf(now))
		}
	}
}

func (r *baseRepository[T]) getEntityID(entity *T) primitive.ObjectID {
	if entity == nil {
		return primitive.NilObjectID
	}
	val := reflect.ValueOf(entity).Elem()
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		if !field.CanInterface() {
			continue
		}
		if bsonFieldName(typ.Field(i)) == "_id" && field.Type() == reflect.TypeOf(primitive.ObjectID{}) {
			return field.Interface().(primitive.ObjectID)
		}
	}
	return primitive.NilObjectID
}

func (r *baseRepository[T]) setEntityID(entity *T, id primitive.ObjectID) {
	if entity == nil {
		return
	}
	val := reflect.ValueOf(entity).Elem()
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		if !field.CanSet() {
			continue
		}
		if bsonFieldName(typ.Field(i)) == "_id" && field.Type() == reflect.TypeOf(primitive.ObjectID{}) {
			field.Set(reflect.ValueOf(id))
			return
		}
	}
}

func bsonFieldName(f reflect.StructField) string {
	tag := f.Tag.Get("bson")
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		name = f.Name
	}
	return name
}
