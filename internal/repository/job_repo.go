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

const jobCollection = "jobs"

// JobRepository defines operations for job postings
type JobRepository interface {
	Create(ctx context.Context, job *model.Job) (*model.Job, error)
	FindAll(ctx context.Context, filters model.JobFilters) ([]model.Job, error)
	FindByID(ctx context.Context, id string) (*model.Job, error)
	FindByCreator(ctx context.Context, userID string) ([]model.Job, error)
}

type jobRepository struct {
	db *mongo.Database
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(ctx context.Context, db *mongo.Database, logger *zerolog.Logger) (JobRepository, error) {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_by", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	if _, err := db.Collection(jobCollection).Indexes().CreateMany(ctx, indexes); err != nil {
		return nil, fmt.Errorf("failed to create job indexes: %w", err)
	}
	logger.Debug().Str("collection", jobCollection).Msg("job indexes ensured")

	return &jobRepository{db: db}, nil
}

func (r *jobRepository) Create(ctx context.Context, job *model.Job) (*model.Job, error) {
	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now

	result, err := r.db.Collection(jobCollection).InsertOne(ctx, job)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	objectID, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}
	job.ID = objectID
	return job, nil
}

// FindAll lists job postings, newest first. A keyword, when present, matches
// title or description case-insensitively.
func (r *jobRepository) FindAll(ctx context.Context, filters model.JobFilters) ([]model.Job, error) {
	filter := bson.M{}
	if filters.Keyword != "" {
		regex := bson.M{"$regex": filters.Keyword, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"title": regex},
			bson.M{"description": regex},
		}
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.db.Collection(jobCollection).Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer cursor.Close(ctx)

	var jobs []model.Job
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, fmt.Errorf("failed to decode jobs: %w", err)
	}
	return jobs, nil
}

func (r *jobRepository) FindByID(ctx context.Context, id string) (*model.Job, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil // Malformed id cannot match any job
	}

	job := &model.Job{}
	err = r.db.Collection(jobCollection).FindOne(ctx, bson.M{"_id": objectID}).Decode(job)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find job by ID: %w", err)
	}
	return job, nil
}

// FindByCreator lists the jobs posted by a given recruiter, newest first
func (r *jobRepository) FindByCreator(ctx context.Context, userID string) ([]model.Job, error) {
	objectID, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, nil
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.db.Collection(jobCollection).Find(ctx, bson.M{"created_by": objectID}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs by creator: %w", err)
	}
	defer cursor.Close(ctx)

	var jobs []model.Job
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, fmt.Errorf("failed to decode jobs: %w", err)
	}
	return jobs, nil
}
