package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertAccount(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/accounts", UpsertAccountRequest{
		ProviderAccountID: "acct-1",
		Label:             "recruiter-a",
		Status:            "connected",
	})
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	var account struct {
		ID          string `json:"id"`
		Status      string `json:"status"`
		ConnectedAt string `json:"connected_at"`
	}
	decode(t, rec, &account)
	assert.NotEmpty(t, account.ID)
	assert.Equal(t, "connected", account.Status)
	assert.NotEmpty(t, account.ConnectedAt)

	t.Run("re-registration keeps the row", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/accounts", UpsertAccountRequest{
			ProviderAccountID: "acct-1",
			Label:             "recruiter-a-renamed",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		var again struct {
			ID    string `json:"id"`
			Label string `json:"label"`
		}
		decode(t, rec, &again)
		assert.Equal(t, account.ID, again.ID)
		assert.Equal(t, "recruiter-a-renamed", again.Label)
	})

	t.Run("validates input", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/accounts", UpsertAccountRequest{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = f.do(t, http.MethodPost, "/api/v1/accounts", UpsertAccountRequest{
			ProviderAccountID: "acct-2",
			Status:            "sleeping",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListAccounts_FiltersByStatus(t *testing.T) {
	f := newAPIFixture(t)
	f.connectAccount(t, "acct-1")
	f.connectAccount(t, "acct-2")

	rec := f.do(t, http.MethodPost, "/api/v1/accounts", UpsertAccountRequest{
		ProviderAccountID: "acct-3",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var listing struct {
		Accounts []struct {
			Status string `json:"status"`
		} `json:"accounts"`
		Total int `json:"total"`
	}

	rec = f.do(t, http.MethodGet, "/api/v1/accounts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &listing)
	assert.Equal(t, 3, listing.Total)

	rec = f.do(t, http.MethodGet, "/api/v1/accounts?status=connected", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &listing)
	require.Equal(t, 2, listing.Total)
	for _, a := range listing.Accounts {
		assert.Equal(t, "connected", a.Status)
	}

	rec = f.do(t, http.MethodGet, "/api/v1/accounts?status=sleeping", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetAccountStatus(t *testing.T) {
	f := newAPIFixture(t)
	account := f.connectAccount(t, "acct-1")

	rec := f.do(t, http.MethodPost, "/api/v1/accounts/"+account.ID+"/status", AccountStatusRequest{
		Status: "disconnected",
	})
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	var updated struct {
		Status       string `json:"status"`
		LastSyncedAt string `json:"last_synced_at"`
	}
	decode(t, rec, &updated)
	assert.Equal(t, "disconnected", updated.Status)
	assert.NotEmpty(t, updated.LastSyncedAt)

	t.Run("unknown account", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/accounts/missing/status", AccountStatusRequest{
			Status: "connected",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing status", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/accounts/"+account.ID+"/status", AccountStatusRequest{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAssignAccountToJob(t *testing.T) {
	f := newAPIFixture(t)
	jobID := f.createJob(t)
	account := f.connectAccount(t, "acct-1")

	rec := f.do(t, http.MethodPost, "/api/v1/jobs/"+jobID+"/accounts", AssignAccountRequest{
		AccountID: account.ID,
	})
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	var resp struct {
		JobID     string `json:"job_id"`
		AccountID string `json:"account_id"`
		Created   bool   `json:"created"`
	}
	decode(t, rec, &resp)
	assert.Equal(t, jobID, resp.JobID)
	assert.True(t, resp.Created)

	t.Run("repeat assignment is a no-op", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/jobs/"+jobID+"/accounts", AssignAccountRequest{
			AccountID: account.ID,
		})
		require.Equal(t, http.StatusOK, rec.Code)
		decode(t, rec, &resp)
		assert.False(t, resp.Created)
	})

	t.Run("unknown account", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/jobs/"+jobID+"/accounts", AssignAccountRequest{
			AccountID: "missing",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown job", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/jobs/missing/accounts", AssignAccountRequest{
			AccountID: account.ID,
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
