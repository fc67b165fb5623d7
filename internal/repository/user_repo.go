package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobportal/internal/model"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ErrDuplicateKey is returned when an insert or save violates a unique index.
// The email uniqueness invariant lives in the store, not in application-level
// check-then-create, so concurrent registrations serialize here.
var ErrDuplicateKey = errors.New("duplicate key")

const userCollection = "users"

// UserRepository defines operations for user records
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	Save(ctx context.Context, user *model.User) (*model.User, error)
}

type userRepository struct {
	db *mongo.Database
}

// NewUserRepository creates a new UserRepository and ensures the unique email
// index exists.
func NewUserRepository(ctx context.Context, db *mongo.Database, logger *zerolog.Logger) (UserRepository, error) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	if _, err := db.Collection(userCollection).Indexes().CreateMany(ctx, indexes); err != nil {
		return nil, fmt.Errorf("failed to create user indexes: %w", err)
	}
	logger.Debug().Str("collection", userCollection).Msg("user indexes ensured")

	return &userRepository{db: db}, nil
}

// Create inserts a new user document
func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	result, err := r.db.Collection(userCollection).InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	objectID, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}
	user.ID = objectID
	return user, nil
}

// FindByEmail retrieves a user by email. The match is exact and
// case-sensitive. Not found is not an error for this method's contract; the
// service layer handles it.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	err := r.db.Collection(userCollection).FindOne(ctx, bson.M{"email": email}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

// FindByID retrieves a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil // Malformed id cannot match any user
	}

	user := &model.User{}
	err = r.db.Collection(userCollection).FindOne(ctx, bson.M{"_id": objectID}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return user, nil
}

// Save persists the mutable fields of an existing user and returns the stored
// document.
func (r *userRepository) Save(ctx context.Context, user *model.User) (*model.User, error) {
	update := bson.M{"$set": bson.M{
		"fullname":     user.FullName,
		"email":        user.Email,
		"phone_number": user.PhoneNumber,
		"profile":      user.Profile,
		"updated_at":   time.Now(),
	}}

	result := r.db.Collection(userCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": user.ID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if err := result.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	updated := &model.User{}
	if err := result.Decode(updated); err != nil {
		return nil, fmt.Errorf("failed to decode saved user: %w", err)
	}
	return updated, nil
}
