package services

import (
	"context"
	"fmt"
	"time"

	"trineo/internal/database"
	"trineo/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TeamService computes the read-only aggregate views: per-user task
// summaries, the team roster with per-member stats, and team-wide
// statistics. Every view is recomputed from the current collections on
// each request; nothing is cached or persisted.
type TeamService struct {
	users *mongo.Collection
	tasks *mongo.Collection
}

// NewTeamService creates a new team service
func NewTeamService(mongodb *database.MongoDB) *TeamService {
	return &TeamService{
		users: mongodb.Collection(database.CollectionUsers),
		tasks: mongodb.Collection(database.CollectionTasks),
	}
}

// SummarizeUserTasks computes the dashboard summary over a user's full
// task set. Never fails on an empty set; all-zero summary instead.
func (s *TeamService) SummarizeUserTasks(ctx context.Context, userID string) (models.TaskSummary, error) {
	tasks, err := s.findTasks(ctx, bson.M{"userId": userID})
	if err != nil {
		return models.TaskSummary{}, err
	}
	return SummarizeTasks(tasks), nil
}

// ListMembersWithStats returns every user with their all-time stats.
// Members are enumerated oldest account first; that enumeration order is
// also the tie-break order for the team stats top performer.
func (s *TeamService) ListMembersWithStats(ctx context.Context) ([]models.TeamMember, error) {
	users, err := s.listUsers(ctx)
	if err != nil {
		return nil, err
	}

	members := make([]models.TeamMember, 0, len(users))
	for _, user := range users {
		tasks, err := s.findTasks(ctx, bson.M{"userId": user.ID.Hex()})
		if err != nil {
			return nil, err
		}
		members = append(members, models.TeamMember{
			ID:     user.ID.Hex(),
			Name:   user.Name,
			Email:  user.Email,
			Avatar: user.Avatar,
			Stats:  MemberStatsFor(tasks),
		})
	}
	return members, nil
}

// ComputeTeamStats computes team-wide statistics over the given window
func (s *TeamService) ComputeTeamStats(ctx context.Context, r TimeRange) (models.TeamStats, error) {
	users, err := s.listUsers(ctx)
	if err != nil {
		return models.TeamStats{}, err
	}

	allTasks, err := s.findTasks(ctx, windowFilter(bson.M{}, r))
	if err != nil {
		return models.TeamStats{}, err
	}

	byUser := make(map[string][]models.Task, len(users))
	for _, t := range allTasks {
		byUser[t.UserID] = append(byUser[t.UserID], t)
	}

	members := make([]memberWindow, 0, len(users))
	for _, user := range users {
		members = append(members, memberWindow{
			name:  user.Name,
			tasks: byUser[user.ID.Hex()],
		})
	}

	return teamStatsFrom(members, allTasks), nil
}

// ComputeMemberStats computes one member's stats within the given window
func (s *TeamService) ComputeMemberStats(ctx context.Context, memberID string, r TimeRange) (*models.MemberWindowStats, error) {
	oid, err := primitive.ObjectIDFromHex(memberID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	var user models.User
	if err := s.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	tasks, err := s.findTasks(ctx, windowFilter(bson.M{"userId": memberID}, r))
	if err != nil {
		return nil, err
	}

	return &models.MemberWindowStats{
		UserID: user.ID.Hex(),
		Name:   user.Name,
		Email:  user.Email,
		Stats:  windowStatsFor(tasks),
	}, nil
}

// windowFilter adds the createdAt lower bound for bounded ranges
func windowFilter(filter bson.M, r TimeRange) bson.M {
	if start, bounded := WindowStart(r, time.Now()); bounded {
		filter["createdAt"] = bson.M{"$gte": start}
	}
	return filter
}

func (s *TeamService) listUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := s.users.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

func (s *TeamService) findTasks(ctx context.Context, filter bson.M) ([]models.Task, error) {
	cursor, err := s.tasks.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}
	defer cursor.Close(ctx)

	var tasks []models.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}
	return tasks, nil
}
