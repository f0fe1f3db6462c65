package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/pkg/agents"
	"github.com/hireflow/scout/pkg/config"
	"github.com/hireflow/scout/pkg/matching"
	"github.com/hireflow/scout/pkg/models"
	"github.com/hireflow/scout/pkg/preresume"
	"github.com/hireflow/scout/pkg/provider"
	"github.com/hireflow/scout/pkg/scoring"
	"github.com/hireflow/scout/pkg/services"
)

// source collects candidate profiles from the provider. Queries are built
// from the job and searched in two passes, a per-query window first and a
// widened window when the first pass comes up short. The stage fails only
// when every query errored and nothing was collected.
func (e *Engine) source(ctx context.Context, job *ent.Job, req models.StageRequest) (*models.StageSummary, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = e.cfg.SourceLimit
	}
	queries := e.buildQueries(job, req.Instructions)

	var (
		collected []provider.Profile
		seen      = make(map[string]bool)
		failed    int
		lastErr   error
	)

	search := func(window int) {
		for _, q := range queries {
			if len(collected) >= limit {
				return
			}
			pctx, cancel := e.providerCtx(ctx)
			profiles, err := e.deps.Provider.SearchProfiles(pctx, q, window)
			cancel()
			if err != nil {
				failed++
				lastErr = err
				e.logger.Warn("Search query failed", "job_id", job.ID, "query", q, "error", err)
				continue
			}
			for _, p := range profiles {
				key := dedupeKey(p)
				if key == "" || seen[key] {
					continue
				}
				seen[key] = true
				collected = append(collected, p)
				if len(collected) >= limit {
					break
				}
			}
		}
	}

	search(limit)
	firstPassFailures := failed
	if len(collected) < limit {
		// Widened window; repeated queries still dedupe by identity.
		search(limit * 3)
	}

	if len(collected) == 0 && firstPassFailures == len(queries) && len(queries) > 0 {
		return nil, fmt.Errorf("all %d source queries failed: %w", len(queries), &provider.Error{Op: "search", Err: lastErr})
	}
	if len(collected) > limit {
		collected = collected[:limit]
	}

	return &models.StageSummary{
		Step:   models.StepSource,
		JobID:  job.ID,
		Status: "completed",
		Counts: map[string]int{
			"queries":        len(queries),
			"collected":      len(collected),
			"failed_queries": failed,
		},
		Details: map[string]any{"profiles": collected},
	}, nil
}

// buildQueries derives search phrases from the job: title alone, with
// seniority, with location, and per required skill, plus any extra keywords
// passed through stage instructions. Deduplicated, capped at MaxQueries.
func (e *Engine) buildQueries(job *ent.Job, instructions map[string]any) []string {
	var queries []string
	seen := make(map[string]bool)
	add := func(q string) {
		q = strings.TrimSpace(q)
		if q == "" {
			return
		}
		key := strings.ToLower(q)
		if seen[key] || len(queries) >= e.cfg.MaxQueries {
			return
		}
		seen[key] = true
		queries = append(queries, q)
	}

	add(job.Title)
	if job.Seniority != "" {
		add(job.Seniority + " " + job.Title)
	}
	if job.Location != "" {
		add(job.Title + " " + job.Location)
	}
	for _, kw := range instructionKeywords(instructions) {
		add(kw)
		add(job.Title + " " + kw)
	}
	for _, skill := range e.deps.Matcher.RequiredSkills(job.JdText) {
		add(job.Title + " " + skill)
	}
	return queries
}

// instructionKeywords pulls the optional keywords list out of a stage
// instruction blob, tolerating both []string and JSON-decoded []any.
func instructionKeywords(instructions map[string]any) []string {
	raw, ok := instructions["keywords"]
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// dedupeKey prefers the provider identifier chain and falls back to the
// lowercased name|headline pair for profiles with no identifier at all.
func dedupeKey(p provider.Profile) string {
	if p.LinkedinID != "" || p.UnipileProfileID != "" || p.AttendeeProviderID != "" || p.ProviderID != "" || p.ID != "" {
		return provider.Identity(p)
	}
	if p.FullName == "" && p.Headline == "" {
		return ""
	}
	return strings.ToLower(p.FullName) + "|" + strings.ToLower(p.Headline)
}

// enrich refreshes each profile through the provider. A failed enrichment
// keeps the original profile and never aborts the batch.
func (e *Engine) enrich(ctx context.Context, job *ent.Job, req models.StageRequest) (*models.StageSummary, error) {
	out := make([]provider.Profile, 0, len(req.Profiles))
	enriched, failed := 0, 0
	for _, p := range req.Profiles {
		pctx, cancel := e.providerCtx(ctx)
		full, err := e.deps.Provider.EnrichProfile(pctx, p)
		cancel()
		if err != nil {
			failed++
			out = append(out, p)
			e.logger.Warn("Enrichment failed", "job_id", job.ID, "profile", provider.Identity(p), "error", err)
			continue
		}
		enriched++
		out = append(out, full)
	}

	return &models.StageSummary{
		Step:   models.StepEnrich,
		JobID:  job.ID,
		Status: "completed",
		Counts: map[string]int{
			"total":    len(req.Profiles),
			"enriched": enriched,
			"failed":   failed,
		},
		Details: map[string]any{"profiles": out},
	}, nil
}

// verify screens each profile through the matching engine.
func (e *Engine) verify(ctx context.Context, job *ent.Job, req models.StageRequest) (*models.StageSummary, error) {
	items := make([]models.VerifiedItem, 0, len(req.Profiles))
	verified, rejected := 0, 0
	for _, p := range req.Profiles {
		result := e.deps.Matcher.Verify(job, p)
		if result.Status == matching.StatusVerified {
			verified++
		} else {
			rejected++
		}
		items = append(items, models.VerifiedItem{
			Profile: p,
			Score:   result.Score,
			Status:  result.Status,
			Notes:   result.Notes,
		})
	}

	return &models.StageSummary{
		Step:   models.StepVerify,
		JobID:  job.ID,
		Status: "completed",
		Counts: map[string]int{
			"total":    len(req.Profiles),
			"verified": verified,
			"rejected": rejected,
		},
		Details: map[string]any{"items": items},
	}, nil
}

// add persists verified items as candidates and matches. A verified item
// lands as needs_resume when the pipeline requires a CV before the final
// screen, else as verified; rejected items are stored rejected so re-sourcing
// skips them. Each stored pair also gets a sourcing assessment on the
// 0-100 scale for the scorecard.
func (e *Engine) add(ctx context.Context, job *ent.Job, req models.StageRequest) (*models.StageSummary, error) {
	added := make([]models.AddedCandidate, 0, len(req.Items))
	stored, rejected, failed := 0, 0, 0

	for _, item := range req.Items {
		identity := provider.Identity(item.Profile)
		if identity == "" {
			failed++
			e.logger.Warn("Skipping item without identity", "job_id", job.ID)
			continue
		}
		cand, err := e.deps.Candidates.UpsertCandidate(ctx, models.UpsertCandidateRequest{
			ProviderID:      identity,
			FullName:        item.Profile.FullName,
			Headline:        item.Profile.Headline,
			Location:        item.Profile.Location,
			Languages:       item.Profile.Languages,
			Skills:          item.Profile.Skills,
			YearsExperience: item.Profile.YearsExperience,
		})
		if err != nil {
			failed++
			e.logger.Warn("Candidate upsert failed", "job_id", job.ID, "provider_id", identity, "error", err)
			continue
		}

		status := item.Status
		if status == matching.StatusVerified && e.cfg.RequireResumeBeforeFinalVerify {
			status = "needs_resume"
		}
		match, err := e.deps.Matches.EnsureMatch(ctx, job.ID, cand.ID, item.Score, status, item.Notes)
		if err != nil {
			failed++
			e.logger.Warn("Match upsert failed", "job_id", job.ID, "candidate_id", cand.ID, "error", err)
			continue
		}

		score := item.Score * 100
		reason, _ := item.Notes["verify_explanation"].(string)
		if _, err := e.deps.Assessments.UpsertAssessment(ctx, services.UpsertAssessmentInput{
			JobID:       job.ID,
			CandidateID: cand.ID,
			AgentKey:    scoring.AgentSourcing,
			StageKey:    models.StepVerify,
			Score:       &score,
			Status:      item.Status,
			Reason:      reason,
			Details:     item.Notes,
		}); err != nil {
			e.logger.Warn("Sourcing assessment failed", "job_id", job.ID, "candidate_id", cand.ID, "error", err)
		}

		if item.Status == matching.StatusRejected {
			rejected++
		} else {
			stored++
		}
		added = append(added, models.AddedCandidate{
			CandidateID: cand.ID,
			MatchID:     match.ID,
			Score:       item.Score,
			Status:      string(match.Status),
		})
	}

	return &models.StageSummary{
		Step:   models.StepAdd,
		JobID:  job.ID,
		Status: "completed",
		Counts: map[string]int{
			"total":    len(req.Items),
			"added":    stored,
			"rejected": rejected,
			"failed":   failed,
		},
		Details: map[string]any{"added": added},
	}, nil
}

// outreach opens a conversation per candidate, composes the first message,
// and enqueues it for the dispatcher. When the match still needs a CV the
// message is a resume request and a pre-resume session opens with the
// composed copy as its recorded intro. Per-candidate failures are counted
// and never abort the batch.
func (e *Engine) outreach(ctx context.Context, job *ent.Job, req models.StageRequest) (*models.StageSummary, error) {
	ids := req.CandidateIDs
	if len(ids) == 0 {
		// No explicit targets: every pair still waiting on first contact.
		matches, err := e.deps.Matches.ListByJob(ctx, job.ID, []string{"verified", "needs_resume"}, nil)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			ids = append(ids, m.CandidateID)
		}
	}

	counts := map[string]int{
		"total":            len(ids),
		"enqueued":         0,
		"intros":           0,
		"resume_requests":  0,
		"sessions_started": 0,
		"skipped":          0,
		"failed":           0,
	}
	details := map[string]any{}
	var errs []string

	for _, candidateID := range ids {
		if err := e.outreachOne(ctx, job, candidateID, counts); err != nil {
			counts["failed"]++
			errs = append(errs, fmt.Sprintf("%s: %v", candidateID, err))
			e.logger.Warn("Outreach failed", "job_id", job.ID, "candidate_id", candidateID, "error", err)
		}
	}
	if len(errs) > 0 {
		details["errors"] = errs
	}

	if e.dispatchMode == config.DispatchModeInline && e.deps.Dispatcher != nil && counts["enqueued"] > 0 {
		report, err := e.deps.Dispatcher.Dispatch(ctx, counts["enqueued"])
		if err != nil {
			e.logger.Error("Inline dispatch failed", "job_id", job.ID, "error", err)
		} else {
			details["dispatch"] = map[string]int{
				"processed":          report.Processed,
				"sent":               report.Sent,
				"pending_connection": report.PendingConnection,
				"deferred":           report.Deferred,
				"failed":             report.Failed,
			}
		}
	}

	return &models.StageSummary{
		Step:    models.StepOutreach,
		JobID:   job.ID,
		Status:  "completed",
		Counts:  counts,
		Details: details,
	}, nil
}

func (e *Engine) outreachOne(ctx context.Context, job *ent.Job, candidateID string, counts map[string]int) error {
	cand, err := e.deps.Candidates.GetCandidate(ctx, candidateID)
	if err != nil {
		return err
	}
	match, err := e.deps.Matches.GetByJobCandidate(ctx, job.ID, candidateID)
	if err != nil {
		return err
	}

	conv, err := e.deps.Conversations.EnsureConversation(ctx, job.ID, candidateID)
	if err != nil {
		return err
	}

	// An open action means an earlier run already wrote the message and
	// queued the send; replaying must not double-message the candidate.
	open, err := e.deps.Queue.HasOpenAction(ctx, conv.ID, "message")
	if err != nil {
		return err
	}
	if open {
		counts["skipped"]++
		return nil
	}

	kind := agents.KindIntro
	if e.cfg.RequireResumeBeforeFinalVerify && match.Status == "needs_resume" {
		kind = agents.KindResumeRequest
	}

	composed, err := e.deps.Outreach.Compose(ctx, agents.OutreachInput{
		Job:            job,
		Candidate:      cand,
		ConversationID: conv.ID,
		Kind:           kind,
	})
	if err != nil {
		return err
	}

	// The message row is written before delivery; the dispatcher flips the
	// delivery meta when the send lands.
	msg, _, err := e.deps.Messages.AddMessage(ctx, services.AddMessageInput{
		ConversationID: conv.ID,
		Direction:      "outbound",
		Language:       composed.Language,
		Content:        composed.Text,
		Meta: map[string]any{
			"delivery": "pending",
			"type":     kind,
			"source":   composed.Source,
		},
	})
	if err != nil {
		return err
	}

	if kind == agents.KindResumeRequest {
		vars := agents.OutreachVars(job, cand)
		_, err := e.deps.Sessions.StartSession(ctx, preresume.StartSessionInput{
			ConversationID:     conv.ID,
			JobID:              job.ID,
			CandidateID:        candidateID,
			CandidateName:      vars.Name,
			JobTitle:           vars.JobTitle,
			ScopeSummary:       vars.ScopeSummary,
			CoreProfileSummary: vars.CoreProfileSummary,
			Language:           composed.Language,
			Intro:              composed.Text,
		})
		switch {
		case err == nil:
			counts["sessions_started"]++
		case errors.Is(err, services.ErrAlreadyExists):
			// Replay; the open session stands.
		default:
			return err
		}
	}

	_, created, err := e.deps.Queue.EnqueueAction(ctx, services.EnqueueActionInput{
		JobID:          job.ID,
		CandidateID:    candidateID,
		ConversationID: conv.ID,
		Kind:           "message",
		Payload: map[string]any{
			"text":       composed.Text,
			"language":   composed.Language,
			"purpose":    composed.Purpose,
			"message_id": msg.ID,
		},
	})
	if err != nil {
		return err
	}
	if created {
		counts["enqueued"]++
	}
	if kind == agents.KindResumeRequest {
		counts["resume_requests"]++
	} else {
		counts["intros"]++
	}

	if match.Status == "verified" {
		if _, err := e.deps.Matches.UpdateStatus(ctx, job.ID, candidateID, "outreached"); err != nil {
			return err
		}
	}

	e.record(ctx, "agent.outreach", "ok", job.ID, candidateID, map[string]any{
		"kind":            kind,
		"conversation_id": conv.ID,
	})
	return nil
}
