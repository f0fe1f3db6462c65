// Package dispatch drains queued outbound actions across sender accounts
// under daily thread and weekly connect budgets.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/ent/accountcounter"
	"github.com/hireflow/scout/ent/conversation"
	"github.com/hireflow/scout/ent/job"
	"github.com/hireflow/scout/ent/jobaccountassignment"
	"github.com/hireflow/scout/ent/outboundaction"
	"github.com/hireflow/scout/ent/senderaccount"
	"github.com/hireflow/scout/pkg/config"
	"github.com/hireflow/scout/pkg/metrics"
	"github.com/hireflow/scout/pkg/provider"
	"github.com/hireflow/scout/pkg/services"
	"github.com/hireflow/scout/pkg/store"
)

// Per-action outcomes, also used as metric labels.
const (
	outcomeSent              = "sent"
	outcomePendingConnection = "pending_connection"
	outcomeDeferred          = "deferred"
	outcomeFailed            = "failed"
	outcomeSkipped           = "skipped"
)

// Deps bundles the dispatcher's collaborators.
type Deps struct {
	Store    *store.Switchboard
	Provider provider.Client
	Queue    *services.OutboundService
	Audit    *services.AuditService
}

// Dispatcher claims open actions one at a time and resolves each inside a
// single transaction: budget counters, action status, and the conversation
// binding commit together, so a crash never double-spends an account's
// budget.
type Dispatcher struct {
	cfg    *config.DispatchConfig
	budget *Budget
	store  *store.Switchboard
	client provider.Client
	queue  *services.OutboundService
	audit  *services.AuditService
	logger *slog.Logger
	now    func() time.Time
}

// New creates a dispatcher. Config nil means defaults.
func New(cfg *config.DispatchConfig, deps Deps, logger *slog.Logger) *Dispatcher {
	if cfg == nil {
		cfg = config.DefaultDispatchConfig()
	}
	if deps.Store == nil {
		panic("dispatch.New: store must not be nil")
	}
	if deps.Provider == nil {
		panic("dispatch.New: provider must not be nil")
	}
	if deps.Queue == nil {
		panic("dispatch.New: outbound service must not be nil")
	}
	if deps.Audit == nil {
		panic("dispatch.New: audit service must not be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		cfg:    cfg,
		budget: NewBudget(cfg),
		store:  deps.Store,
		client: deps.Provider,
		queue:  deps.Queue,
		audit:  deps.Audit,
		logger: logger,
		now:    time.Now,
	}
}

// Report summarizes one dispatch batch.
type Report struct {
	Processed         int `json:"processed"`
	Sent              int `json:"sent"`
	PendingConnection int `json:"pending_connection"`
	Deferred          int `json:"deferred"`
	Failed            int `json:"failed"`
}

func (r *Report) add(outcome string) {
	if outcome == outcomeSkipped {
		return
	}
	r.Processed++
	switch outcome {
	case outcomeSent:
		r.Sent++
	case outcomePendingConnection:
		r.PendingConnection++
	case outcomeDeferred:
		r.Deferred++
	case outcomeFailed:
		r.Failed++
	}
}

// Dispatch drains up to limit open actions, oldest first. Limit zero or
// below uses the configured batch size. Per-action failures are recorded on
// the action and do not abort the batch.
func (d *Dispatcher) Dispatch(ctx context.Context, limit int) (*Report, error) {
	return d.DispatchJob(ctx, "", limit)
}

// DispatchJob drains like Dispatch but restricted to one job's actions when
// jobID is non-empty.
func (d *Dispatcher) DispatchJob(ctx context.Context, jobID string, limit int) (*Report, error) {
	if limit <= 0 {
		limit = d.cfg.BatchLimit
	}
	open := []string{string(outboundaction.StatusPending), string(outboundaction.StatusDeferred)}
	actions, err := d.queue.ListByStatus(ctx, open, jobID, limit)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	for _, action := range actions {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		outcome, err := d.dispatchOne(ctx, action.ID)
		if err != nil {
			d.logger.Error("Dispatch failed", "action_id", action.ID, "error", err)
			outcome = outcomeFailed
		}
		report.add(outcome)
		metrics.DispatchActions.WithLabelValues(outcome).Inc()
	}

	if report.Processed > 0 {
		d.logger.Info("Dispatch batch complete",
			"processed", report.Processed,
			"sent", report.Sent,
			"pending_connection", report.PendingConnection,
			"deferred", report.Deferred,
			"failed", report.Failed)
	}
	return report, nil
}

// dispatchOne resolves a single action inside one transaction.
func (d *Dispatcher) dispatchOne(ctx context.Context, actionID string) (string, error) {
	now := d.now().UTC()

	tx, err := d.store.Writer().Tx(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := tx.OutboundAction.Query().
		Where(
			outboundaction.ID(actionID),
			outboundaction.StatusIn(outboundaction.StatusPending, outboundaction.StatusDeferred),
		)
	if d.store.SupportsRowLocks() {
		query = query.ForUpdate(sql.WithLockAction(sql.SkipLocked))
	}
	action, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			// Claimed by another worker or already resolved.
			return outcomeSkipped, nil
		}
		return "", fmt.Errorf("failed to claim action: %w", err)
	}

	jobRow, err := tx.Job.Get(ctx, action.JobID)
	if err != nil {
		return "", fmt.Errorf("failed to load job for action: %w", err)
	}
	cand, err := tx.Candidate.Get(ctx, action.CandidateID)
	if err != nil {
		return "", fmt.Errorf("failed to load candidate for action: %w", err)
	}

	accounts, emptyReason, err := eligibleAccounts(ctx, tx, jobRow)
	if err != nil {
		return "", err
	}
	if len(accounts) == 0 {
		return d.deferAction(ctx, tx, action, emptyReason, outboundaction.StatusPending)
	}

	states, err := loadAccountStates(ctx, tx, accounts, now)
	if err != nil {
		return "", err
	}
	chosen := pickAccount(states, d.budget.DailyNewThreads())
	if chosen == nil {
		return d.deferAction(ctx, tx, action, ReasonDailyBudgetReached, outboundaction.StatusDeferred)
	}

	switch action.Kind {
	case outboundaction.KindConnectRequest:
		return d.sendConnect(ctx, tx, action, chosen, candidateProfile(cand), now, true)
	default:
		return d.sendMessage(ctx, tx, action, chosen, candidateProfile(cand), now)
	}
}

func (d *Dispatcher) sendMessage(ctx context.Context, tx *ent.Tx, action *ent.OutboundAction, chosen *accountState, profile provider.Profile, now time.Time) (string, error) {
	text, _ := action.Payload["text"].(string)
	if strings.TrimSpace(text) == "" {
		return d.failPermanently(ctx, tx, action, "action payload has no text")
	}

	res, err := d.send(ctx, func(callCtx context.Context) (provider.SendResult, error) {
		return d.client.SendMessage(callCtx, providerAccount(chosen.account), profile, text)
	})
	switch {
	case err == nil && res.Sent:
		return d.completeSend(ctx, tx, action, chosen, res, now)
	case provider.IsNoConnection(err):
		return d.sendConnect(ctx, tx, action, chosen, profile, now, false)
	default:
		return d.failTransiently(ctx, tx, action, chosen.account.ID, sendError(res, err))
	}
}

// sendConnect asks for a first-degree connection under the weekly budget.
// For a message action the action parks as pending_connection; a dedicated
// connect action completes outright.
func (d *Dispatcher) sendConnect(ctx context.Context, tx *ent.Tx, action *ent.OutboundAction, chosen *accountState, profile provider.Profile, now time.Time, dedicated bool) (string, error) {
	if chosen.weekConnects >= d.budget.ConnectCap(chosen.account, now) {
		return d.deferAction(ctx, tx, action, ReasonConnectBudget, outboundaction.StatusDeferred)
	}

	note, _ := action.Payload["connect_note"].(string)
	res, err := d.send(ctx, func(callCtx context.Context) (provider.SendResult, error) {
		return d.client.SendConnectionRequest(callCtx, providerAccount(chosen.account), profile, note)
	})
	if err != nil || !res.Sent {
		return d.failTransiently(ctx, tx, action, chosen.account.ID, sendError(res, err))
	}

	counterID, err := bumpCounter(ctx, tx, chosen.account.ID, accountcounter.PeriodWeek, weekStart(now), 0, 1)
	if err != nil {
		return "", err
	}

	status := outboundaction.StatusPendingConnection
	if dedicated {
		status = outboundaction.StatusCompleted
	}
	if err := tx.OutboundAction.UpdateOneID(action.ID).
		SetStatus(status).
		SetAccountID(chosen.account.ID).
		AddAttempts(1).
		ClearLastError().
		Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to update action: %w", err)
	}
	if err := tx.Conversation.UpdateOneID(action.ConversationID).
		SetAccountID(chosen.account.ID).
		SetStatus(conversation.StatusWaitingConnection).
		Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to update conversation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}
	if err := d.mirrorAll(ctx, action.ID, action.ConversationID, 0, counterID); err != nil {
		return "", err
	}

	d.record(ctx, action, "scheduler.connect", "sent", map[string]any{"account_id": chosen.account.ID})
	outcome := outcomePendingConnection
	if dedicated {
		outcome = outcomeSent
	}
	return outcome, nil
}

// completeSend finishes a delivered message: daily counter, action done,
// chat id bound, conversation active.
func (d *Dispatcher) completeSend(ctx context.Context, tx *ent.Tx, action *ent.OutboundAction, chosen *accountState, res provider.SendResult, now time.Time) (string, error) {
	counterID, err := bumpCounter(ctx, tx, chosen.account.ID, accountcounter.PeriodDay, dayStart(now), 1, 0)
	if err != nil {
		return "", err
	}

	if err := tx.OutboundAction.UpdateOneID(action.ID).
		SetStatus(outboundaction.StatusCompleted).
		SetAccountID(chosen.account.ID).
		AddAttempts(1).
		ClearLastError().
		Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to update action: %w", err)
	}

	convUpdate := tx.Conversation.UpdateOneID(action.ConversationID).
		SetAccountID(chosen.account.ID).
		SetStatus(conversation.StatusActive).
		SetLastMessageAt(now)
	if res.ChatID != "" {
		if err := releaseChatID(ctx, tx, action.ConversationID, action.CandidateID, res.ChatID); err != nil {
			return "", err
		}
		convUpdate = convUpdate.SetExternalChatID(res.ChatID)
	}
	if err := convUpdate.Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to update conversation: %w", err)
	}

	messageID, err := markMessageDelivered(ctx, tx, action, res)
	if err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}
	if err := d.mirrorAll(ctx, action.ID, action.ConversationID, messageID, counterID); err != nil {
		return "", err
	}

	d.record(ctx, action, "scheduler.dispatch", "sent", map[string]any{
		"account_id": chosen.account.ID,
		"chat_id":    res.ChatID,
	})
	return outcomeSent, nil
}

// deferAction leaves the action open with the reason in last_error.
func (d *Dispatcher) deferAction(ctx context.Context, tx *ent.Tx, action *ent.OutboundAction, reason string, status outboundaction.Status) (string, error) {
	if err := tx.OutboundAction.UpdateOneID(action.ID).
		SetStatus(status).
		SetLastError(reason).
		AddAttempts(1).
		Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to defer action: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}
	if err := d.store.Mirror().Action(ctx, action.ID); err != nil {
		return "", err
	}
	d.record(ctx, action, "scheduler.dispatch", "skipped", map[string]any{"reason": reason})
	return outcomeDeferred, nil
}

// failTransiently keeps the action pending for the next batch.
func (d *Dispatcher) failTransiently(ctx context.Context, tx *ent.Tx, action *ent.OutboundAction, accountID, cause string) (string, error) {
	if err := tx.OutboundAction.UpdateOneID(action.ID).
		SetStatus(outboundaction.StatusPending).
		SetLastError(cause).
		AddAttempts(1).
		Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to record send failure: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}
	if err := d.store.Mirror().Action(ctx, action.ID); err != nil {
		return "", err
	}
	d.record(ctx, action, "scheduler.dispatch", "error", map[string]any{
		"account_id": accountID,
		"error":      cause,
	})
	return outcomeFailed, nil
}

// failPermanently closes an unfixable action.
func (d *Dispatcher) failPermanently(ctx context.Context, tx *ent.Tx, action *ent.OutboundAction, cause string) (string, error) {
	if err := tx.OutboundAction.UpdateOneID(action.ID).
		SetStatus(outboundaction.StatusFailed).
		SetLastError(cause).
		AddAttempts(1).
		Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to close action: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}
	if err := d.store.Mirror().Action(ctx, action.ID); err != nil {
		return "", err
	}
	d.record(ctx, action, "scheduler.dispatch", "error", map[string]any{"error": cause})
	return outcomeFailed, nil
}

// ReconcileConnections re-opens parked actions whose connection request has
// been accepted, so the next batch delivers the original message.
func (d *Dispatcher) ReconcileConnections(ctx context.Context, limit int) (int, error) {
	if limit <= 0 {
		limit = d.cfg.BatchLimit
	}
	parked, err := d.queue.ListByStatus(ctx, []string{string(outboundaction.StatusPendingConnection)}, "", limit)
	if err != nil {
		return 0, err
	}

	reopened := 0
	for _, action := range parked {
		if err := ctx.Err(); err != nil {
			return reopened, err
		}
		if action.AccountID == nil || *action.AccountID == "" {
			continue
		}
		account, err := d.store.Reader().SenderAccount.Get(ctx, *action.AccountID)
		if err != nil {
			d.logger.Error("Reconcile: account lookup failed", "action_id", action.ID, "error", err)
			continue
		}
		cand, err := d.store.Reader().Candidate.Get(ctx, action.CandidateID)
		if err != nil {
			d.logger.Error("Reconcile: candidate lookup failed", "action_id", action.ID, "error", err)
			continue
		}

		callCtx, cancel := context.WithTimeout(ctx, time.Duration(d.cfg.ProviderTimeout))
		connected, err := d.client.CheckConnectionStatus(callCtx, providerAccount(account), candidateProfile(cand))
		cancel()
		if err != nil {
			d.logger.Error("Reconcile: connection check failed", "action_id", action.ID, "error", err)
			continue
		}
		if !connected {
			continue
		}

		if err := d.store.Writer().OutboundAction.UpdateOneID(action.ID).
			SetStatus(outboundaction.StatusPending).
			ClearLastError().
			Exec(ctx); err != nil {
			return reopened, fmt.Errorf("failed to reopen action: %w", err)
		}
		if err := d.store.Mirror().Action(ctx, action.ID); err != nil {
			return reopened, err
		}
		d.record(ctx, action, "scheduler.reconnect", "ok", map[string]any{"account_id": *action.AccountID})
		reopened++
	}
	return reopened, nil
}

// send runs one provider call under the configured timeout.
func (d *Dispatcher) send(ctx context.Context, call func(context.Context) (provider.SendResult, error)) (provider.SendResult, error) {
	callCtx, cancel := context.WithTimeout(ctx, time.Duration(d.cfg.ProviderTimeout))
	defer cancel()
	return call(callCtx)
}

func (d *Dispatcher) record(ctx context.Context, action *ent.OutboundAction, operation, status string, details map[string]any) {
	_, err := d.audit.Record(ctx, services.RecordOperationInput{
		Operation:   operation,
		Status:      status,
		EntityType:  "outbound_action",
		EntityID:    action.ID,
		JobID:       action.JobID,
		CandidateID: action.CandidateID,
		Details:     details,
	})
	if err != nil {
		d.logger.Error("Failed to record dispatch operation", "action_id", action.ID, "error", err)
	}
}

func (d *Dispatcher) mirrorAll(ctx context.Context, actionID, conversationID string, messageID, counterID int) error {
	mirror := d.store.Mirror()
	if err := mirror.Action(ctx, actionID); err != nil {
		return err
	}
	if conversationID != "" {
		if err := mirror.Conversation(ctx, conversationID); err != nil {
			return err
		}
	}
	if messageID != 0 {
		if err := mirror.Message(ctx, messageID); err != nil {
			return err
		}
	}
	if counterID != 0 {
		if err := mirror.Counter(ctx, counterID); err != nil {
			return err
		}
	}
	return nil
}

// accountState is one eligible account with its current period counters.
type accountState struct {
	account      *ent.SenderAccount
	dayThreads   int
	weekConnects int
}

// eligibleAccounts returns the connected accounts the job may send from,
// plus the deferral reason to use when none qualify.
func eligibleAccounts(ctx context.Context, tx *ent.Tx, jobRow *ent.Job) ([]*ent.SenderAccount, string, error) {
	if jobRow.RoutingMode == job.RoutingModeManual {
		assignments, err := tx.JobAccountAssignment.Query().
			Where(jobaccountassignment.JobID(jobRow.ID)).
			All(ctx)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load job account assignments: %w", err)
		}
		ids := make([]string, 0, len(assignments))
		for _, a := range assignments {
			ids = append(ids, a.AccountID)
		}
		if len(ids) == 0 {
			return nil, ReasonNoAssignedAccounts, nil
		}
		accounts, err := tx.SenderAccount.Query().
			Where(senderaccount.IDIn(ids...), senderaccount.StatusEQ(senderaccount.StatusConnected)).
			Order(ent.Asc(senderaccount.FieldID)).
			All(ctx)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load assigned accounts: %w", err)
		}
		return accounts, ReasonNoAssignedAccounts, nil
	}

	accounts, err := tx.SenderAccount.Query().
		Where(senderaccount.StatusEQ(senderaccount.StatusConnected)).
		Order(ent.Asc(senderaccount.FieldID)).
		All(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load connected accounts: %w", err)
	}
	return accounts, ReasonNoConnectedAccounts, nil
}

// loadAccountStates attaches the current day and week counters.
func loadAccountStates(ctx context.Context, tx *ent.Tx, accounts []*ent.SenderAccount, now time.Time) ([]accountState, error) {
	ids := make([]string, 0, len(accounts))
	for _, a := range accounts {
		ids = append(ids, a.ID)
	}
	rows, err := tx.AccountCounter.Query().
		Where(
			accountcounter.AccountIDIn(ids...),
			accountcounter.Or(
				accountcounter.And(
					accountcounter.PeriodEQ(accountcounter.PeriodDay),
					accountcounter.PeriodStartEQ(dayStart(now)),
				),
				accountcounter.And(
					accountcounter.PeriodEQ(accountcounter.PeriodWeek),
					accountcounter.PeriodStartEQ(weekStart(now)),
				),
			),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load account counters: %w", err)
	}

	day := make(map[string]int, len(accounts))
	week := make(map[string]int, len(accounts))
	for _, row := range rows {
		switch row.Period {
		case accountcounter.PeriodDay:
			day[row.AccountID] = row.NewThreadsSent
		case accountcounter.PeriodWeek:
			week[row.AccountID] = row.ConnectsSent
		}
	}

	states := make([]accountState, 0, len(accounts))
	for _, a := range accounts {
		states = append(states, accountState{account: a, dayThreads: day[a.ID], weekConnects: week[a.ID]})
	}
	return states, nil
}

// pickAccount orders by least daily threads, then least weekly connects,
// then id, and returns the first with daily headroom.
func pickAccount(states []accountState, dailyCap int) *accountState {
	sort.Slice(states, func(i, j int) bool {
		if states[i].dayThreads != states[j].dayThreads {
			return states[i].dayThreads < states[j].dayThreads
		}
		if states[i].weekConnects != states[j].weekConnects {
			return states[i].weekConnects < states[j].weekConnects
		}
		return states[i].account.ID < states[j].account.ID
	})
	for i := range states {
		if dailyCap <= 0 || states[i].dayThreads < dailyCap {
			return &states[i]
		}
	}
	return nil
}

// bumpCounter upserts the (account, period, start) row and adds the deltas
// with a relative SQL update, returning the row id for mirroring.
func bumpCounter(ctx context.Context, tx *ent.Tx, accountID string, period accountcounter.Period, start time.Time, threads, connects int) (int, error) {
	id, err := tx.AccountCounter.Create().
		SetAccountID(accountID).
		SetPeriod(period).
		SetPeriodStart(start).
		SetNewThreadsSent(threads).
		SetConnectsSent(connects).
		OnConflictColumns(accountcounter.FieldAccountID, accountcounter.FieldPeriod, accountcounter.FieldPeriodStart).
		Update(func(u *ent.AccountCounterUpsert) {
			if threads > 0 {
				u.AddNewThreadsSent(threads)
			}
			if connects > 0 {
				u.AddConnectsSent(connects)
			}
		}).
		ID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to bump account counter: %w", err)
	}
	return id, nil
}

// releaseChatID frees the chat id from a previous conversation of the same
// candidate; a holder belonging to someone else is a hard conflict.
func releaseChatID(ctx context.Context, tx *ent.Tx, conversationID, candidateID, chatID string) error {
	holder, err := tx.Conversation.Query().
		Where(conversation.ExternalChatID(chatID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to query chat id holder: %w", err)
	}
	if holder.ID == conversationID {
		return nil
	}
	if holder.CandidateID != candidateID {
		return fmt.Errorf("%w: chat id %s belongs to another candidate", services.ErrConflict, chatID)
	}
	if err := tx.Conversation.UpdateOneID(holder.ID).ClearExternalChatID().Exec(ctx); err != nil {
		return fmt.Errorf("failed to release chat id: %w", err)
	}
	return nil
}

// markMessageDelivered flips the optimistic outbound message's delivery
// meta when the enqueuer referenced it in the payload.
func markMessageDelivered(ctx context.Context, tx *ent.Tx, action *ent.OutboundAction, res provider.SendResult) (int, error) {
	raw, ok := action.Payload["message_id"]
	if !ok {
		return 0, nil
	}
	var messageID int
	switch v := raw.(type) {
	case float64:
		messageID = int(v)
	case int:
		messageID = v
	default:
		return 0, nil
	}

	row, err := tx.Message.Get(ctx, messageID)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to load outbound message: %w", err)
	}
	meta := make(map[string]interface{}, len(row.Meta)+2)
	for k, v := range row.Meta {
		meta[k] = v
	}
	meta["delivery"] = "sent"
	if res.MessageID != "" {
		meta["provider_message_id"] = res.MessageID
	}
	if err := tx.Message.UpdateOneID(messageID).SetMeta(meta).Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to mark message delivered: %w", err)
	}
	return messageID, nil
}

func candidateProfile(c *ent.Candidate) provider.Profile {
	return provider.Profile{
		ProviderID:      c.ProviderID,
		FullName:        c.FullName,
		Headline:        c.Headline,
		Location:        c.Location,
		Languages:       c.Languages,
		Skills:          c.Skills,
		YearsExperience: c.YearsExperience,
	}
}

// providerAccount is the identifier the provider knows the account by.
func providerAccount(a *ent.SenderAccount) string {
	if a.ProviderAccountID != "" {
		return a.ProviderAccountID
	}
	return a.ID
}

func sendError(res provider.SendResult, err error) string {
	if err != nil {
		return err.Error()
	}
	if res.Error != "" {
		return res.Error
	}
	return "provider did not accept the send"
}
