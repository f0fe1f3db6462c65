package provider

import (
	"context"
	"strings"
)

// Interview statuses the core branches on. Adapters may surface additional
// provider-specific strings (expired, canceled); those count as terminal.
const (
	InterviewInvited    = "invited"
	InterviewInProgress = "in_progress"
	InterviewCompleted  = "completed"
	InterviewFailed     = "failed"
)

// InterviewTerminal reports whether an interview status is settled.
func InterviewTerminal(status string) bool {
	switch strings.ToLower(status) {
	case InterviewCompleted, InterviewFailed, "expired", "canceled":
		return true
	}
	return false
}

// InterviewRequest carries what the interview provider needs to invite one
// candidate to an automated interview.
type InterviewRequest struct {
	JobID         string `json:"job_id"`
	JobTitle      string `json:"job_title"`
	JDText        string `json:"jd_text,omitempty"`
	CandidateID   string `json:"candidate_id"`
	CandidateName string `json:"candidate_name"`
	Language      string `json:"language,omitempty"`
}

// InterviewInvitation identifies a scheduled interview on the provider side.
type InterviewInvitation struct {
	InvitationID string `json:"invitation_id"`
	AssessmentID string `json:"assessment_id,omitempty"`
	CandidateID  string `json:"candidate_id,omitempty"`
	InterviewURL string `json:"interview_url,omitempty"`
}

// InterviewScores is the per-dimension outcome of a completed interview,
// each in [0,100].
type InterviewScores struct {
	Technical  float64 `json:"technical"`
	SoftSkills float64 `json:"soft_skills"`
	CultureFit float64 `json:"culture_fit"`
}

// InterviewResult is the provider's verdict for one invitation.
type InterviewResult struct {
	Status string          `json:"status"`
	Scores InterviewScores `json:"scores"`
	Raw    map[string]any  `json:"raw,omitempty"`
}

// InterviewClient schedules automated interviews and reports their outcome.
// Like Client, concrete adapters live outside the core.
type InterviewClient interface {
	// CreateInvitation schedules an interview for the candidate.
	CreateInvitation(ctx context.Context, req InterviewRequest) (InterviewInvitation, error)

	// GetInterviewStatus returns the current status of an invitation.
	GetInterviewStatus(ctx context.Context, invitationID string) (string, error)

	// GetInterviewResult returns the verdict of an invitation. Only valid
	// once the status is completed.
	GetInterviewResult(ctx context.Context, invitationID string) (InterviewResult, error)
}
