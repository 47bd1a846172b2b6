package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/naolberhanu/LearnSphere/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoUserRepository struct {
	collection *mongo.Collection
}

func NewMongoUserRepository(collection *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{collection: collection}
}

// EnsureIndexes creates the unique email index backing the global email
// uniqueness invariant.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *MongoUserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	_, err := r.collection.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return entity.ErrEmailTaken
	}
	return err
}

func (r *MongoUserRepository) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *MongoUserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateUser updates an existing user and returns the updated user
func (r *MongoUserRepository) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	user.UpdatedAt = time.Now()
	filter := bson.M{"_id": user.ID}
	update := bson.M{"$set": user}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, entity.ErrUserNotFound
	}
	var updatedUser entity.User
	if err := r.collection.FindOne(ctx, filter).Decode(&updatedUser); err != nil {
		return nil, err
	}
	return &updatedUser, nil
}

func (r *MongoUserRepository) UpdateUserPassword(ctx context.Context, id string, hashedPassword string) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"password_hash": hashedPassword, "updated_at": time.Now()}}
	count, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if count.MatchedCount == 0 {
		return entity.ErrUserNotFound
	}
	return nil
}

func (r *MongoUserRepository) SetResetOTP(ctx context.Context, id string, otpHash string, expire time.Time) error {
	update := bson.M{"$set": bson.M{
		"reset_otp_hash":   otpHash,
		"reset_otp_expire": expire,
	}}
	count, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if count.MatchedCount == 0 {
		return entity.ErrUserNotFound
	}
	return nil
}

func (r *MongoUserRepository) SetResetToken(ctx context.Context, id string, tokenHash string, expire time.Time) error {
	update := bson.M{"$set": bson.M{
		"reset_token_hash":   tokenHash,
		"reset_token_expire": expire,
	}}
	count, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if count.MatchedCount == 0 {
		return entity.ErrUserNotFound
	}
	return nil
}

func (r *MongoUserRepository) ClearResetArtifacts(ctx context.Context, id string) error {
	update := bson.M{"$unset": bson.M{
		"reset_otp_hash":     "",
		"reset_otp_expire":   "",
		"reset_token_hash":   "",
		"reset_token_expire": "",
	}}
	count, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if count.MatchedCount == 0 {
		return entity.ErrUserNotFound
	}
	return nil
}

func (r *MongoUserRepository) CountByRole(ctx context.Context, role entity.UserRole) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"role": role})
}

func (r *MongoUserRepository) DeleteUser(ctx context.Context, id string) error {
	filter := bson.M{"_id": id}
	count, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if count.DeletedCount == 0 {
		return fmt.Errorf("failed to fetch user with id:%s", id)
	}
	return nil
}
