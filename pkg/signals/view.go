package signals

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/pkg/services"
)

// CandidateRank is one row of the live ranking.
type CandidateRank struct {
	CandidateID       string  `json:"candidate_id"`
	BaseScore         float64 `json:"base_score"`
	ImpactPoints      float64 `json:"impact_points"`
	LiveScore         float64 `json:"live_score"`
	Rank              int     `json:"rank"`
	PreviousRank      int     `json:"previous_rank"`
	RankDelta         int     `json:"rank_delta"`
	SignalsTotal      int     `json:"signal_count_total"`
	SignalsEvaluative int     `json:"signal_count_evaluative"`
}

// JobView is the live ranking plus the signal timeline for one job.
type JobView struct {
	JobID          string                 `json:"job_id"`
	Candidates     []CandidateRank        `json:"candidates"`
	Timeline       []*ent.CandidateSignal `json:"timeline"`
	CategoryCounts map[string]int         `json:"category_counts"`
	GeneratedAt    time.Time              `json:"generated_at"`
}

// BuildJobView ranks the job's candidates by live score. The live score is
// the match score shifted by accumulated evaluative signal impact; the
// previous rank orders by match score alone, so rank_delta shows how the
// signals moved each candidate.
func (e *Engine) BuildJobView(ctx context.Context, jobID string, statuses []string) (*JobView, error) {
	if jobID == "" {
		return nil, services.NewValidationError("job_id", "job id is required")
	}

	matches, err := e.deps.Matches.ListByJob(ctx, jobID, statuses, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load matches for view: %w", err)
	}
	signals, err := e.deps.Signals.ListByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to load signals for view: %w", err)
	}

	selected := make(map[string]bool, len(matches))
	for _, m := range matches {
		selected[m.CandidateID] = true
	}
	byCandidate := make(map[string][]*ent.CandidateSignal, len(matches))
	timeline := make([]*ent.CandidateSignal, 0, len(signals))
	counts := make(map[string]int, 4)
	for _, s := range signals {
		if !selected[s.CandidateID] {
			continue
		}
		byCandidate[s.CandidateID] = append(byCandidate[s.CandidateID], s)
		timeline = append(timeline, s)
		counts[s.Category]++
	}

	rows := make([]CandidateRank, 0, len(matches))
	for _, m := range matches {
		base := clamp(m.Score*100, 0, 100)
		row := CandidateRank{CandidateID: m.CandidateID, BaseScore: base}

		sum := 0.0
		for _, s := range byCandidate[m.CandidateID] {
			row.SignalsTotal++
			if metaString(s.SignalMeta, "role") != RoleEvaluative {
				continue
			}
			row.SignalsEvaluative++
			sum += s.Impact * metaWeight(s.SignalMeta)
		}
		row.ImpactPoints = clamp(sum*e.cfg.ImpactMultiplier, -e.cfg.MaxImpactPoints, e.cfg.MaxImpactPoints)
		row.LiveScore = clamp(base+row.ImpactPoints, 0, 100)
		rows = append(rows, row)
	}

	previous := make(map[string]int, len(rows))
	byBase := make([]CandidateRank, len(rows))
	copy(byBase, rows)
	sort.Slice(byBase, func(i, j int) bool {
		if byBase[i].BaseScore != byBase[j].BaseScore {
			return byBase[i].BaseScore > byBase[j].BaseScore
		}
		return byBase[i].CandidateID > byBase[j].CandidateID
	})
	for i, row := range byBase {
		previous[row.CandidateID] = i + 1
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].LiveScore != rows[j].LiveScore {
			return rows[i].LiveScore > rows[j].LiveScore
		}
		if rows[i].BaseScore != rows[j].BaseScore {
			return rows[i].BaseScore > rows[j].BaseScore
		}
		return rows[i].CandidateID > rows[j].CandidateID
	})
	for i := range rows {
		rows[i].Rank = i + 1
		rows[i].PreviousRank = previous[rows[i].CandidateID]
		rows[i].RankDelta = rows[i].PreviousRank - rows[i].Rank
	}

	sort.Slice(timeline, func(i, j int) bool {
		if !timeline[i].ObservedAt.Equal(timeline[j].ObservedAt) {
			return timeline[i].ObservedAt.After(timeline[j].ObservedAt)
		}
		return timeline[i].ID > timeline[j].ID
	})
	if limit := e.cfg.TimelineLimit; limit > 0 && len(timeline) > limit {
		timeline = timeline[:limit]
	}

	return &JobView{
		JobID:          jobID,
		Candidates:     rows,
		Timeline:       timeline,
		CategoryCounts: counts,
		GeneratedAt:    time.Now().UTC(),
	}, nil
}

func metaString(meta map[string]interface{}, key string) string {
	if meta == nil {
		return ""
	}
	s, _ := meta[key].(string)
	return s
}

// metaWeight reads the classifier-stamped score weight. Signals written
// before classification existed count at full weight.
func metaWeight(meta map[string]interface{}) float64 {
	if meta == nil {
		return 1
	}
	switch v := meta["weight"].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 1
}
