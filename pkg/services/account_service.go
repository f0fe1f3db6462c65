package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hireflow/scout/ent"
	"github.com/hireflow/scout/ent/jobaccountassignment"
	"github.com/hireflow/scout/ent/senderaccount"
	"github.com/hireflow/scout/pkg/store"
)

// UpsertAccountInput contains the provider-side identity of a sender
// account. Accounts are keyed by provider account id.
type UpsertAccountInput struct {
	ProviderAccountID string
	ProviderUserID    string
	Label             string
	Status            string
}

// AccountService handles the sender accounts outbound traffic is
// partitioned across, and their per-job assignments for manual routing.
type AccountService struct {
	store *store.Switchboard
}

// NewAccountService creates a new AccountService.
func NewAccountService(sb *store.Switchboard) *AccountService {
	if sb == nil {
		panic("NewAccountService: store must not be nil")
	}
	return &AccountService{store: sb}
}

// UpsertAccount creates or refreshes a sender account by provider account
// id and returns the stored row.
func (s *AccountService) UpsertAccount(ctx context.Context, in UpsertAccountInput) (*ent.SenderAccount, error) {
	if in.ProviderAccountID == "" {
		return nil, NewValidationError("provider_account_id", "provider account id is required")
	}
	status := senderaccount.Status(in.Status)
	if in.Status == "" {
		status = senderaccount.StatusPending
	} else if err := senderaccount.StatusValidator(status); err != nil {
		return nil, NewValidationError("status", fmt.Sprintf("unknown account status %q", in.Status))
	}

	builder := s.store.Writer().SenderAccount.Create().
		SetID(uuid.New().String()).
		SetProviderAccountID(in.ProviderAccountID).
		SetStatus(status)
	if in.ProviderUserID != "" {
		builder.SetProviderUserID(in.ProviderUserID)
	}
	if in.Label != "" {
		builder.SetLabel(in.Label)
	}
	if status == senderaccount.StatusConnected {
		builder.SetConnectedAt(time.Now().UTC())
	}

	err := builder.
		OnConflictColumns(senderaccount.FieldProviderAccountID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert account: %w", err)
	}

	row, err := s.store.Writer().SenderAccount.Query().
		Where(senderaccount.ProviderAccountID(in.ProviderAccountID)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read back account: %w", err)
	}

	if err := s.store.Mirror().Account(ctx, row.ID); err != nil {
		return nil, err
	}
	return row, nil
}

// GetAccount returns an account by id.
func (s *AccountService) GetAccount(ctx context.Context, id string) (*ent.SenderAccount, error) {
	if id == "" {
		return nil, NewValidationError("account_id", "account id is required")
	}
	row, err := s.store.Reader().SenderAccount.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return row, nil
}

// SetStatus moves an account to the given status, stamping connected_at on
// a connect and last_synced_at always.
func (s *AccountService) SetStatus(ctx context.Context, id, status string) (*ent.SenderAccount, error) {
	st := senderaccount.Status(status)
	if err := senderaccount.StatusValidator(st); err != nil {
		return nil, NewValidationError("status", fmt.Sprintf("unknown account status %q", status))
	}

	update := s.store.Writer().SenderAccount.UpdateOneID(id).
		SetStatus(st).
		SetLastSyncedAt(time.Now().UTC())
	if st == senderaccount.StatusConnected {
		update.SetConnectedAt(time.Now().UTC())
	}

	row, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to set account status: %w", err)
	}
	if err := s.store.Mirror().Account(ctx, row.ID); err != nil {
		return nil, err
	}
	return row, nil
}

// ListAccounts returns accounts, optionally filtered by status, in stable
// id order.
func (s *AccountService) ListAccounts(ctx context.Context, status string) ([]*ent.SenderAccount, error) {
	query := s.store.Reader().SenderAccount.Query()
	if status != "" {
		st := senderaccount.Status(status)
		if err := senderaccount.StatusValidator(st); err != nil {
			return nil, NewValidationError("status", fmt.Sprintf("unknown account status %q", status))
		}
		query = query.Where(senderaccount.StatusEQ(st))
	}
	rows, err := query.Order(ent.Asc(senderaccount.FieldID)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return rows, nil
}

// AssignToJob records that a job's manual routing may use the account.
// Repeat assignments are no-ops.
func (s *AccountService) AssignToJob(ctx context.Context, jobID, accountID string) (bool, error) {
	if jobID == "" {
		return false, NewValidationError("job_id", "job id is required")
	}
	if accountID == "" {
		return false, NewValidationError("account_id", "account id is required")
	}

	// account_id is not a foreign key; check it by hand.
	known, err := s.store.Writer().SenderAccount.Query().
		Where(senderaccount.ID(accountID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check account: %w", err)
	}
	if !known {
		return false, fmt.Errorf("%w: account %s", ErrNotFound, accountID)
	}

	row, err := s.store.Writer().JobAccountAssignment.Create().
		SetJobID(jobID).
		SetAccountID(accountID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Already assigned, or the job is missing.
			exists, qerr := s.store.Writer().JobAccountAssignment.Query().
				Where(
					jobaccountassignment.JobID(jobID),
					jobaccountassignment.AccountID(accountID),
				).
				Exist(ctx)
			if qerr != nil {
				return false, fmt.Errorf("failed to check assignment: %w", qerr)
			}
			if exists {
				return false, nil
			}
			return false, fmt.Errorf("%w: job %s", ErrNotFound, jobID)
		}
		return false, fmt.Errorf("failed to assign account: %w", err)
	}

	if err := s.store.Mirror().Assignment(ctx, row.ID); err != nil {
		return false, err
	}
	return true, nil
}

// AssignedAccountIDs returns the account ids assigned to a job.
func (s *AccountService) AssignedAccountIDs(ctx context.Context, jobID string) ([]string, error) {
	if jobID == "" {
		return nil, NewValidationError("job_id", "job id is required")
	}
	rows, err := s.store.Reader().JobAccountAssignment.Query().
		Where(jobaccountassignment.JobID(jobID)).
		Order(ent.Asc(jobaccountassignment.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.AccountID)
	}
	return ids, nil
}
