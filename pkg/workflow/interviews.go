package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/pkg/provider"
	"github.com/hireflow/scout/pkg/scoring"
	"github.com/hireflow/scout/pkg/services"
)

// ErrInterviewsNotConfigured is returned by the interview operations when no
// interview provider was wired in.
var ErrInterviewsNotConfigured = errors.New("no interview provider configured")

// interviewStageKey is the stage recorded on interview_evaluation verdicts.
const interviewStageKey = "interview"

// RequestInterview invites a candidate to an automated interview and marks
// the match interview_scheduled. The invitation handle is stored in the
// match notes so later refreshes can poll its status. A match that already
// carries an unfinished invitation is rejected.
func (e *Engine) RequestInterview(ctx context.Context, jobID, candidateID string) (*provider.InterviewInvitation, error) {
	if e.deps.Interview == nil {
		return nil, ErrInterviewsNotConfigured
	}
	job, err := e.deps.Jobs.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	cand, err := e.deps.Candidates.GetCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	match, err := e.deps.Matches.GetByJobCandidate(ctx, jobID, candidateID)
	if err != nil {
		return nil, err
	}
	if id, status := invitationOf(match); id != "" && !provider.InterviewTerminal(status) {
		return nil, fmt.Errorf("interview %s still %s: %w", id, status, services.ErrPreconditionFailed)
	}

	language := ""
	if len(cand.Languages) > 0 {
		language = cand.Languages[0]
	}
	pctx, cancel := e.providerCtx(ctx)
	invite, err := e.deps.Interview.CreateInvitation(pctx, provider.InterviewRequest{
		JobID:         job.ID,
		JobTitle:      job.Title,
		JDText:        job.JdText,
		CandidateID:   cand.ID,
		CandidateName: cand.FullName,
		Language:      language,
	})
	cancel()
	if err != nil {
		e.record(ctx, "interview.invite", "error", jobID, candidateID, map[string]any{"error": err.Error()})
		return nil, &provider.Error{Op: "create_invitation", Err: err}
	}

	notes := map[string]any{
		"interview_invitation_id": invite.InvitationID,
		"interview_status":        provider.InterviewInvited,
	}
	if invite.AssessmentID != "" {
		notes["interview_assessment_id"] = invite.AssessmentID
	}
	if invite.InterviewURL != "" {
		notes["interview_url"] = invite.InterviewURL
	}
	if _, err := e.deps.Matches.MergeNotes(ctx, jobID, candidateID, notes); err != nil {
		return nil, err
	}
	if _, err := e.deps.Matches.UpdateStatus(ctx, jobID, candidateID, "interview_scheduled"); err != nil {
		return nil, err
	}

	e.record(ctx, "interview.invite", "ok", jobID, candidateID, map[string]any{
		"invitation_id": invite.InvitationID,
	})
	e.logger.Info("Interview invitation created",
		"job_id", jobID, "candidate_id", candidateID, "invitation_id", invite.InvitationID)
	return &invite, nil
}

// InterviewReport summarizes one interview refresh pass over a job.
type InterviewReport struct {
	Checked   int `json:"checked"`
	Updated   int `json:"updated"`
	Completed int `json:"completed"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

// RefreshInterviews polls the interview provider for every scheduled match
// of a job and folds the answers back into the match notes. Completed
// interviews additionally record an interview_evaluation verdict and move
// the match to interview_completed. Settled interviews are skipped unless
// force re-fetches them. Per-match provider failures never stop the pass.
func (e *Engine) RefreshInterviews(ctx context.Context, jobID string, force bool) (*InterviewReport, error) {
	if e.deps.Interview == nil {
		return nil, ErrInterviewsNotConfigured
	}
	matches, err := e.deps.Matches.ListByJob(ctx, jobID, []string{"interview_scheduled", "interview_completed"}, nil)
	if err != nil {
		return nil, err
	}

	report := &InterviewReport{}
	for _, match := range matches {
		id, current := invitationOf(match)
		if id == "" {
			continue
		}
		if provider.InterviewTerminal(current) && !force {
			report.Skipped++
			continue
		}
		report.Checked++

		pctx, cancel := e.providerCtx(ctx)
		status, err := e.deps.Interview.GetInterviewStatus(pctx, id)
		cancel()
		if err != nil {
			report.Failed++
			e.logger.Warn("Interview status fetch failed",
				"job_id", jobID, "candidate_id", match.CandidateID, "invitation_id", id, "error", err)
			continue
		}
		if !strings.EqualFold(status, current) {
			if _, err := e.deps.Matches.MergeNotes(ctx, jobID, match.CandidateID, map[string]any{
				"interview_status": strings.ToLower(status),
			}); err != nil {
				return nil, err
			}
			report.Updated++
		}
		if !strings.EqualFold(status, provider.InterviewCompleted) {
			continue
		}

		if err := e.recordInterviewResult(ctx, match, id); err != nil {
			report.Failed++
			e.logger.Warn("Interview result fetch failed",
				"job_id", jobID, "candidate_id", match.CandidateID, "invitation_id", id, "error", err)
			continue
		}
		report.Completed++
	}

	auditStatus := "ok"
	if report.Failed > 0 {
		auditStatus = "partial"
	}
	e.record(ctx, "interview.refresh", auditStatus, jobID, "", map[string]any{
		"checked":   report.Checked,
		"updated":   report.Updated,
		"completed": report.Completed,
		"skipped":   report.Skipped,
		"failed":    report.Failed,
	})
	return report, nil
}

// recordInterviewResult pulls the verdict of a completed interview and
// persists it as the candidate's interview_evaluation score.
func (e *Engine) recordInterviewResult(ctx context.Context, match *ent.Match, invitationID string) error {
	pctx, cancel := e.providerCtx(ctx)
	result, err := e.deps.Interview.GetInterviewResult(pctx, invitationID)
	cancel()
	if err != nil {
		return &provider.Error{Op: "get_interview_result", Err: err}
	}

	score := clampScore((result.Scores.Technical + result.Scores.SoftSkills + result.Scores.CultureFit) / 3)
	if _, err := e.deps.Assessments.UpsertAssessment(ctx, services.UpsertAssessmentInput{
		JobID:       match.JobID,
		CandidateID: match.CandidateID,
		AgentKey:    scoring.AgentInterview,
		StageKey:    interviewStageKey,
		Score:       &score,
		Status:      result.Status,
		Reason:      "interview provider verdict",
		Details: map[string]any{
			"invitation_id": invitationID,
			"technical":     result.Scores.Technical,
			"soft_skills":   result.Scores.SoftSkills,
			"culture_fit":   result.Scores.CultureFit,
		},
	}); err != nil {
		return err
	}
	if _, err := e.deps.Matches.UpdateStatus(ctx, match.JobID, match.CandidateID, "interview_completed"); err != nil {
		return err
	}
	e.record(ctx, "interview.result", "ok", match.JobID, match.CandidateID, map[string]any{
		"invitation_id": invitationID,
		"score":         score,
	})
	return nil
}

// invitationOf reads the invitation handle and last known status from the
// match notes.
func invitationOf(match *ent.Match) (id, status string) {
	if match.VerificationNotes == nil {
		return "", ""
	}
	if v, ok := match.VerificationNotes["interview_invitation_id"].(string); ok {
		id = v
	}
	if v, ok := match.VerificationNotes["interview_status"].(string); ok {
		status = v
	}
	return id, status
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
