package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"trineo/internal/database"
	"trineo/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserService handles user accounts in MongoDB
type UserService struct {
	collection *mongo.Collection
}

// NewUserService creates a new user service
func NewUserService(mongodb *database.MongoDB) *UserService {
	return &UserService{
		collection: mongodb.Collection(database.CollectionUsers),
	}
}

// Create inserts a new user. Emails are stored lowercased; the unique
// index on email turns races into ErrEmailTaken.
func (s *UserService) Create(ctx context.Context, user *models.User) error {
	user.Email = strings.TrimSpace(strings.ToLower(user.Email))
	user.CreatedAt = time.Now()
	if user.Role == "" {
		user.Role = models.DefaultUserRole
	}

	result, err := s.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	user.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// GetByEmail retrieves a user by email (case-insensitive)
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{
		"email": strings.TrimSpace(strings.ToLower(email)),
	}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetByID retrieves a user by their hex ID
func (s *UserService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	var user models.User
	if err := s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// UpdateProfile updates a user's editable profile fields
func (s *UserService) UpdateProfile(ctx context.Context, userID string, name, avatar *string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	set := bson.M{}
	if name != nil {
		set["name"] = *name
	}
	if avatar != nil {
		set["avatar"] = *avatar
	}
	if len(set) > 0 {
		result, err := s.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
		if err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
		if result.MatchedCount == 0 {
			return nil, ErrUserNotFound
		}
	}

	return s.GetByID(ctx, userID)
}
