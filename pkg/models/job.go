// Package models holds the request, filter, and response shapes shared by
// the service layer and the HTTP boundary.
package models

import (
	"time"

	"github.com/hireflow/scout/ent"
)

// CreateJobRequest contains the fields for creating a job.
type CreateJobRequest struct {
	ID                 string   `json:"id,omitempty"`
	Title              string   `json:"title"`
	JDText             string   `json:"jd_text"`
	Location           string   `json:"location,omitempty"`
	PreferredLanguages []string `json:"preferred_languages,omitempty"`
	Seniority          string   `json:"seniority,omitempty"`
	RoutingMode        string   `json:"routing_mode,omitempty"`
}

// UpdateJobRequest contains the mutable job fields. Nil means unchanged.
type UpdateJobRequest struct {
	JDText      *string `json:"jd_text,omitempty"`
	RoutingMode *string `json:"routing_mode,omitempty"`
}

// JobFilters contains filtering options for listing jobs.
type JobFilters struct {
	RoutingMode  string     `json:"routing_mode,omitempty"`
	CreatedAfter *time.Time `json:"created_after,omitempty"`
	Limit        int        `json:"limit,omitempty"`
	Offset       int        `json:"offset,omitempty"`
}

// JobListResponse contains a paginated job list.
type JobListResponse struct {
	Jobs       []*ent.Job `json:"jobs"`
	TotalCount int        `json:"total_count"`
	Limit      int        `json:"limit"`
	Offset     int        `json:"offset"`
}
