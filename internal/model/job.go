package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Job represents a job posting created by a recruiter
type Job struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string        `bson:"title" json:"title"`
	Description  string        `bson:"description" json:"description"`
	Requirements []string      `bson:"requirements" json:"requirements"`
	Salary       int64         `bson:"salary" json:"salary"`
	Location     string        `bson:"location" json:"location"`
	JobType      string        `bson:"job_type" json:"jobType"`
	Experience   int           `bson:"experience" json:"experienceLevel"`
	Positions    int           `bson:"positions" json:"position"`
	Company      string        `bson:"company" json:"company"`
	CreatedBy    bson.ObjectID `bson:"created_by" json:"created_by"`
	CreatedAt    time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time     `bson:"updated_at" json:"updated_at"`
}

// PostJobRequest is used for creating a new job posting
type PostJobRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Requirements string `json:"requirements"` // comma-delimited, parsed before storage
	Salary       int64  `json:"salary" binding:"required,gt=0"`
	Location     string `json:"location" binding:"required"`
	JobType      string `json:"jobType" binding:"required"`
	Experience   int    `json:"experience" binding:"gte=0"`
	Positions    int    `json:"position" binding:"required,gt=0"`
	Company      string `json:"companyName" binding:"required"`
}

// JobFilters contains filter parameters for job listing queries
type JobFilters struct {
	Keyword string
}
