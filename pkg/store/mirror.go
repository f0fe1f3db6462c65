package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"entgo.io/ent/dialect"
)

// Mirror is the dual-write proxy. After every tracked primary write the
// owning service calls the matching Mirror method with the row's key; the
// mirror re-reads the row from the primary (never trusting the caller's
// struct, so defaulted timestamps and trigger effects are observed) and
// upserts it into the secondary backend.
//
// In strict mode a mirror failure propagates to the caller; otherwise it is
// counted and swallowed. All methods are no-ops on a nil receiver so callers
// never need to branch on whether dual-write is configured.
//
// Rows with store-assigned integer ids are mirrored through raw SQL with the
// primary's id carried over verbatim; the secondary's sequences are not
// advanced at runtime (the backfill utility resets them after a bulk load).
type Mirror struct {
	primary   *Backend
	secondary *Backend

	strict atomic.Bool

	mu            sync.Mutex
	mirrorSuccess int64
	mirrorErrors  int64
	lastError     string
}

// MirrorStatus reports the mirror counters.
type MirrorStatus struct {
	Strict        bool   `json:"strict"`
	MirrorSuccess int64  `json:"mirror_success"`
	MirrorErrors  int64  `json:"mirror_errors"`
	LastError     string `json:"last_error,omitempty"`
}

func newMirror(primary, secondary *Backend, strict bool) *Mirror {
	m := &Mirror{primary: primary, secondary: secondary}
	m.strict.Store(strict)
	return m
}

// SetStrict toggles the failure mode at runtime.
func (m *Mirror) SetStrict(strict bool) {
	if m == nil {
		return
	}
	m.strict.Store(strict)
}

// Strict reports the current failure mode.
func (m *Mirror) Strict() bool {
	if m == nil {
		return false
	}
	return m.strict.Load()
}

// Status returns a snapshot of the mirror counters.
func (m *Mirror) Status() MirrorStatus {
	if m == nil {
		return MirrorStatus{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return MirrorStatus{
		Strict:        m.strict.Load(),
		MirrorSuccess: m.mirrorSuccess,
		MirrorErrors:  m.mirrorErrors,
		LastError:     m.lastError,
	}
}

// finish applies the strict/best-effort policy to one mirror attempt.
func (m *Mirror) finish(entity string, err error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err == nil {
		m.mirrorSuccess++
		return nil
	}

	m.mirrorErrors++
	m.lastError = fmt.Sprintf("%s: %v", entity, err)
	if m.strict.Load() {
		return fmt.Errorf("mirror write for %s failed: %w", entity, err)
	}
	slog.Warn("Mirror write failed", "entity", entity, "error", err)
	return nil
}

// ── Entities with client-assigned string ids ─────────────────

// Job mirrors one job row.
func (m *Mirror) Job(ctx context.Context, id string) error {
	if m == nil {
		return nil
	}
	row, err := m.primary.Client.Job.Get(ctx, id)
	if err != nil {
		return m.finish("job", fmt.Errorf("read back: %w", err))
	}
	err = m.secondary.Client.Job.Create().
		SetID(row.ID).
		SetTitle(row.Title).
		SetJdText(row.JdText).
		SetLocation(row.Location).
		SetPreferredLanguages(row.PreferredLanguages).
		SetSeniority(row.Seniority).
		SetRoutingMode(row.RoutingMode).
		SetCreatedAt(row.CreatedAt).
		SetUpdatedAt(row.UpdatedAt).
		OnConflictColumns("id").
		UpdateNewValues().
		Exec(ctx)
	return m.finish("job", err)
}

// Candidate mirrors one candidate row.
func (m *Mirror) Candidate(ctx context.Context, id string) error {
	if m == nil {
		return nil
	}
	row, err := m.primary.Client.Candidate.Get(ctx, id)
	if err != nil {
		return m.finish("candidate", fmt.Errorf("read back: %w", err))
	}
	err = m.secondary.Client.Candidate.Create().
		SetID(row.ID).
		SetProviderID(row.ProviderID).
		SetFullName(row.FullName).
		SetHeadline(row.Headline).
		SetLocation(row.Location).
		SetLanguages(row.Languages).
		SetSkills(row.Skills).
		SetYearsExperience(row.YearsExperience).
		SetCreatedAt(row.CreatedAt).
		SetUpdatedAt(row.UpdatedAt).
		OnConflictColumns("id").
		UpdateNewValues().
		Exec(ctx)
	return m.finish("candidate", err)
}

// Match mirrors one match row.
func (m *Mirror) Match(ctx context.Context, id string) error {
	if m == nil {
		return nil
	}
	row, err := m.primary.Client.Match.Get(ctx, id)
	if err != nil {
		return m.finish("match", fmt.Errorf("read back: %w", err))
	}
	err = m.secondary.Client.Match.Create().
		SetID(row.ID).
		SetJobID(row.JobID).
		SetCandidateID(row.CandidateID).
		SetScore(row.Score).
		SetStatus(row.Status).
		SetVerificationNotes(row.VerificationNotes).
		SetCreatedAt(row.CreatedAt).
		SetUpdatedAt(row.UpdatedAt).
		OnConflictColumns("id").
		UpdateNewValues().
		Exec(ctx)
	return m.finish("match", err)
}

// Conversation mirrors one conversation row. Cleared fields (an external
// chat id lost to a newer conversation) clear on the mirror too.
func (m *Mirror) Conversation(ctx context.Context, id string) error {
	if m == nil {
		return nil
	}
	row, err := m.primary.Client.Conversation.Get(ctx, id)
	if err != nil {
		return m.finish("conversation", fmt.Errorf("read back: %w", err))
	}
	create := m.secondary.Client.Conversation.Create().
		SetID(row.ID).
		SetJobID(row.JobID).
		SetCandidateID(row.CandidateID).
		SetChannel(row.Channel).
		SetStatus(row.Status).
		SetNillableExternalChatID(row.ExternalChatID).
		SetNillableAccountID(row.AccountID).
		SetNillableLastMessageAt(row.LastMessageAt).
		SetCreatedAt(row.CreatedAt)
	err = create.
		OnConflictColumns("id").
		UpdateNewValues().
		Exec(ctx)
	if err == nil && row.ExternalChatID == nil {
		// UpdateNewValues skips unset fields; dropping a chat id needs an
		// explicit clear.
		err = m.secondary.Client.Conversation.UpdateOneID(row.ID).
			ClearExternalChatID().
			Exec(ctx)
	}
	return m.finish("conversation", err)
}

// Session mirrors one pre-resume session row.
func (m *Mirror) Session(ctx context.Context, id string) error {
	if m == nil {
		return nil
	}
	row, err := m.primary.Client.PreResumeSession.Get(ctx, id)
	if err != nil {
		return m.finish("pre_resume_session", fmt.Errorf("read back: %w", err))
	}
	err = m.secondary.Client.PreResumeSession.Create().
		SetID(row.ID).
		SetNillableConversationID(row.ConversationID).
		SetJobID(row.JobID).
		SetCandidateID(row.CandidateID).
		SetStatus(row.Status).
		SetLanguage(row.Language).
		SetFollowupsSent(row.FollowupsSent).
		SetTurns(row.Turns).
		SetLastIntent(row.LastIntent).
		SetResumeLinks(row.ResumeLinks).
		SetNillableNextFollowupAt(row.NextFollowupAt).
		SetState(row.State).
		SetNillableLastError(row.LastError).
		SetCreatedAt(row.CreatedAt).
		SetUpdatedAt(row.UpdatedAt).
		OnConflictColumns("id").
		UpdateNewValues().
		Exec(ctx)
	if err == nil && row.NextFollowupAt == nil {
		err = m.secondary.Client.PreResumeSession.UpdateOneID(row.ID).
			ClearNextFollowupAt().
			Exec(ctx)
	}
	return m.finish("pre_resume_session", err)
}

// Assessment mirrors one agent assessment row.
func (m *Mirror) Assessment(ctx context.Context, id string) error {
	if m == nil {
		return nil
	}
	row, err := m.primary.Client.AgentAssessment.Get(ctx, id)
	if err != nil {
		return m.finish("agent_assessment", fmt.Errorf("read back: %w", err))
	}
	err = m.secondary.Client.AgentAssessment.Create().
		SetID(row.ID).
		SetJobID(row.JobID).
		SetCandidateID(row.CandidateID).
		SetAgentKey(row.AgentKey).
		SetStageKey(row.StageKey).
		SetNillableScore(row.Score).
		SetStatus(row.Status).
		SetReason(row.Reason).
		SetDetails(row.Details).
		SetCreatedAt(row.CreatedAt).
		SetUpdatedAt(row.UpdatedAt).
		OnConflictColumns("id").
		UpdateNewValues().
		Exec(ctx)
	if err == nil && row.Score == nil {
		err = m.secondary.Client.AgentAssessment.UpdateOneID(row.ID).
			ClearScore().
			Exec(ctx)
	}
	return m.finish("agent_assessment", err)
}

// Action mirrors one outbound action row.
func (m *Mirror) Action(ctx context.Context, id string) error {
	if m == nil {
		return nil
	}
	row, err := m.primary.Client.OutboundAction.Get(ctx, id)
	if err != nil {
		return m.finish("outbound_action", fmt.Errorf("read back: %w", err))
	}
	err = m.secondary.Client.OutboundAction.Create().
		SetID(row.ID).
		SetJobID(row.JobID).
		SetCandidateID(row.CandidateID).
		SetConversationID(row.ConversationID).
		SetKind(row.Kind).
		SetStatus(row.Status).
		SetPayload(row.Payload).
		SetNillableAccountID(row.AccountID).
		SetAttempts(row.Attempts).
		SetLastError(row.LastError).
		SetCreatedAt(row.CreatedAt).
		SetUpdatedAt(row.UpdatedAt).
		OnConflictColumns("id").
		UpdateNewValues().
		Exec(ctx)
	return m.finish("outbound_action", err)
}

// Account mirrors one sender account row.
func (m *Mirror) Account(ctx context.Context, id string) error {
	if m == nil {
		return nil
	}
	row, err := m.primary.Client.SenderAccount.Get(ctx, id)
	if err != nil {
		return m.finish("sender_account", fmt.Errorf("read back: %w", err))
	}
	err = m.secondary.Client.SenderAccount.Create().
		SetID(row.ID).
		SetProviderAccountID(row.ProviderAccountID).
		SetProviderUserID(row.ProviderUserID).
		SetLabel(row.Label).
		SetStatus(row.Status).
		SetNillableConnectedAt(row.ConnectedAt).
		SetNillableLastSyncedAt(row.LastSyncedAt).
		SetCreatedAt(row.CreatedAt).
		SetUpdatedAt(row.UpdatedAt).
		OnConflictColumns("id").
		UpdateNewValues().
		Exec(ctx)
	return m.finish("sender_account", err)
}

// ── Entities with store-assigned integer ids ─────────────────

// Message mirrors one message row, carrying the primary's id.
func (m *Mirror) Message(ctx context.Context, id int) error {
	if m == nil {
		return nil
	}
	row, err := m.primary.Client.Message.Get(ctx, id)
	if err != nil {
		return m.finish("message", fmt.Errorf("read back: %w", err))
	}
	err = m.rawUpsert(ctx, "messages",
		[]string{"id", "conversation_id", "direction", "language", "content", "meta", "created_at"},
		[]any{row.ID, row.ConversationID, string(row.Direction), row.Language, row.Content, jsonValue(row.Meta), row.CreatedAt},
		[]string{"content", "meta"})
	return m.finish("message", err)
}

// Event mirrors one pre-resume event row.
func (m *Mirror) Event(ctx context.Context, id int) error {
	if m == nil {
		return nil
	}
	row, err := m.primary.Client.PreResumeEvent.Get(ctx, id)
	if err != nil {
		return m.finish("pre_resume_event", fmt.Errorf("read back: %w", err))
	}
	err = m.rawUpsert(ctx, "pre_resume_events",
		[]string{"id", "session_id", "job_id", "candidate_id", "event_type", "intent", "inbound_text", "outbound_text", "status", "created_at"},
		[]any{row.ID, row.SessionID, row.JobID, row.CandidateID, string(row.EventType), row.Intent, row.InboundText, row.OutboundText, row.Status, row.CreatedAt},
		nil)
	return m.finish("pre_resume_event", err)
}

// OperationLog mirrors one operation log row.
func (m *Mirror) OperationLog(ctx context.Context, id int) error {
	if m == nil {
		return nil
	}
	row, err := m.primary.Client.OperationLog.Get(ctx, id)
	if err != nil {
		return m.finish("operation_log", fmt.Errorf("read back: %w", err))
	}
	err = m.rawUpsert(ctx, "operation_logs",
		[]string{"id", "operation", "status", "entity_type", "entity_id", "job_id", "candidate_id", "details", "created_at"},
		[]any{row.ID, row.Operation, row.Status, row.EntityType, row.EntityID, row.JobID, row.CandidateID, jsonValue(row.Details), row.CreatedAt},
		nil)
	return m.finish("operation_log", err)
}

// Signal mirrors one candidate signal row.
func (m *Mirror) Signal(ctx context.Context, id int) error {
	if m == nil {
		return nil
	}
	row, err := m.primary.Client.CandidateSignal.Get(ctx, id)
	if err != nil {
		return m.finish("candidate_signal", fmt.Errorf("read back: %w", err))
	}
	err = m.rawUpsert(ctx, "candidate_signals",
		[]string{"id", "job_id", "candidate_id", "source_type", "source_id", "signal_type", "category", "title", "detail", "impact", "confidence", "signal_meta", "observed_at", "created_at"},
		[]any{row.ID, row.JobID, row.CandidateID, string(row.SourceType), row.SourceID, row.SignalType, row.Category, row.Title, row.Detail, row.Impact, row.Confidence, jsonValue(row.SignalMeta), row.ObservedAt, row.CreatedAt},
		[]string{"signal_type", "category", "title", "detail", "impact", "confidence", "signal_meta", "observed_at"})
	return m.finish("candidate_signal", err)
}

// Counter mirrors one account counter row.
func (m *Mirror) Counter(ctx context.Context, id int) error {
	if m == nil {
		return nil
	}
	row, err := m.primary.Client.AccountCounter.Get(ctx, id)
	if err != nil {
		return m.finish("account_counter", fmt.Errorf("read back: %w", err))
	}
	err = m.rawUpsert(ctx, "account_counters",
		[]string{"id", "account_id", "period", "period_start", "new_threads_sent", "connects_sent", "updated_at"},
		[]any{row.ID, row.AccountID, string(row.Period), row.PeriodStart, row.NewThreadsSent, row.ConnectsSent, row.UpdatedAt},
		[]string{"new_threads_sent", "connects_sent", "updated_at"})
	return m.finish("account_counter", err)
}

// Assignment mirrors one job-account assignment row.
func (m *Mirror) Assignment(ctx context.Context, id int) error {
	if m == nil {
		return nil
	}
	row, err := m.primary.Client.JobAccountAssignment.Get(ctx, id)
	if err != nil {
		return m.finish("job_account_assignment", fmt.Errorf("read back: %w", err))
	}
	err = m.rawUpsert(ctx, "job_account_assignments",
		[]string{"id", "job_id", "account_id", "created_at"},
		[]any{row.ID, row.JobID, row.AccountID, row.CreatedAt},
		nil)
	return m.finish("job_account_assignment", err)
}

// StepProgress mirrors one job step progress row.
func (m *Mirror) StepProgress(ctx context.Context, id int) error {
	if m == nil {
		return nil
	}
	row, err := m.primary.Client.JobStepProgress.Get(ctx, id)
	if err != nil {
		return m.finish("job_step_progress", fmt.Errorf("read back: %w", err))
	}
	err = m.rawUpsert(ctx, "job_step_progress",
		[]string{"id", "job_id", "step", "status", "output", "last_error", "started_at", "completed_at", "created_at", "updated_at"},
		[]any{row.ID, row.JobID, row.Step, string(row.Status), jsonValue(row.Output), row.LastError, row.StartedAt, row.CompletedAt, row.CreatedAt, row.UpdatedAt},
		[]string{"status", "output", "last_error", "started_at", "completed_at", "updated_at"})
	return m.finish("job_step_progress", err)
}

// Idempotency mirrors one idempotency record.
func (m *Mirror) Idempotency(ctx context.Context, id int) error {
	if m == nil {
		return nil
	}
	row, err := m.primary.Client.IdempotencyRecord.Get(ctx, id)
	if err != nil {
		return m.finish("idempotency_record", fmt.Errorf("read back: %w", err))
	}
	err = m.rawUpsert(ctx, "idempotency_records",
		[]string{"id", "route", "key", "payload_hash", "status_code", "response", "created_at"},
		[]any{row.ID, row.Route, row.Key, row.PayloadHash, row.StatusCode, row.Response, row.CreatedAt},
		nil)
	return m.finish("idempotency_record", err)
}

// rawUpsert writes one row into the secondary backend with an explicit id.
// An empty updateCols list means conflicts are ignored (append-only tables).
func (m *Mirror) rawUpsert(ctx context.Context, table string, cols []string, vals []any, updateCols []string) error {
	query := buildUpsert(m.secondary.Dialect, table, cols, updateCols)
	_, err := m.secondary.DB.ExecContext(ctx, query, vals...)
	return err
}

// jsonValue renders a JSON field as its text form for a raw insert. Both
// drivers accept text for JSON columns and ent decodes either on read.
func jsonValue(v any) any {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return string(b)
}

// buildUpsert renders INSERT ... ON CONFLICT for the given dialect. Both
// backends speak the same ON CONFLICT grammar; only placeholders and JSON
// casts differ.
func buildUpsert(d, table string, cols, updateCols []string) string {
	quoted := make([]string, len(cols))
	params := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = `"` + c + `"`
		if d == dialect.Postgres {
			params[i] = fmt.Sprintf("$%d", i+1)
			if isJSONColumn(table, c) {
				params[i] += "::jsonb"
			}
		} else {
			params[i] = "?"
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, `INSERT INTO "%s" (%s) VALUES (%s)`,
		table, strings.Join(quoted, ", "), strings.Join(params, ", "))

	if len(updateCols) == 0 {
		b.WriteString(` ON CONFLICT ("id") DO NOTHING`)
		return b.String()
	}

	sets := make([]string, len(updateCols))
	for i, c := range updateCols {
		sets[i] = fmt.Sprintf(`"%s" = excluded."%s"`, c, c)
	}
	fmt.Fprintf(&b, ` ON CONFLICT ("id") DO UPDATE SET %s`, strings.Join(sets, ", "))
	return b.String()
}
