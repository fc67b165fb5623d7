package service

import (
	"context"
	"errors"
	"fmt"

	"jobportal/internal/model"
	"jobportal/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var ErrJobNotFound = errors.New("job not found")

// JobService defines operations for job postings
type JobService interface {
	PostJob(ctx context.Context, userID string, req model.PostJobRequest) (*model.Job, error)
	GetAllJobs(ctx context.Context, filters model.JobFilters) ([]model.Job, error)
	GetJobByID(ctx context.Context, jobID string) (*model.Job, error)
	GetJobsByRecruiter(ctx context.Context, userID string) ([]model.Job, error)
}

type jobService struct {
	jobRepo repository.JobRepository
}

// NewJobService creates a new JobService
func NewJobService(jobRepo repository.JobRepository) JobService {
	return &jobService{jobRepo: jobRepo}
}

// PostJob creates a job posting owned by the given recruiter. The caller is
// responsible for having verified the recruiter role.
func (s *jobService) PostJob(ctx context.Context, userID string, req model.PostJobRequest) (*model.Job, error) {
	creatorID, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	job := &model.Job{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: splitTrimmed(req.Requirements),
		Salary:       req.Salary,
		Location:     req.Location,
		JobType:      req.JobType,
		Experience:   req.Experience,
		Positions:    req.Positions,
		Company:      req.Company,
		CreatedBy:    creatorID,
	}

	created, err := s.jobRepo.Create(ctx, job)
	if err != nil {
		return nil, fmt.Errorf("failed to create job in repository: %w", err)
	}
	return created, nil
}

func (s *jobService) GetAllJobs(ctx context.Context, filters model.JobFilters) ([]model.Job, error) {
	jobs, err := s.jobRepo.FindAll(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs from repository: %w", err)
	}
	return jobs, nil
}

func (s *jobService) GetJobByID(ctx context.Context, jobID string) (*model.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to find job by ID: %w", err)
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	return job, nil
}

func (s *jobService) GetJobsByRecruiter(ctx context.Context, userID string) ([]model.Job, error) {
	jobs, err := s.jobRepo.FindByCreator(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recruiter jobs from repository: %w", err)
	}
	return jobs, nil
}
