package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/hireflow/scout/pkg/services"
)

// UpsertAccountRequest registers or refreshes a sender account. Accounts are
// keyed by provider account id, so repeating a registration is safe.
type UpsertAccountRequest struct {
	ProviderAccountID string `json:"provider_account_id"`
	ProviderUserID    string `json:"provider_user_id,omitempty"`
	Label             string `json:"label,omitempty"`
	Status            string `json:"status,omitempty"`
}

// AccountStatusRequest moves an account to a new status.
type AccountStatusRequest struct {
	Status string `json:"status"`
}

// AssignAccountRequest adds an account to a job's manual-routing set.
type AssignAccountRequest struct {
	AccountID string `json:"account_id"`
}

// upsertAccountHandler handles POST /api/v1/accounts.
func (s *Server) upsertAccountHandler(c *echo.Context) error {
	var req UpsertAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := s.deps.Accounts.UpsertAccount(c.Request().Context(), services.UpsertAccountInput{
		ProviderAccountID: req.ProviderAccountID,
		ProviderUserID:    req.ProviderUserID,
		Label:             req.Label,
		Status:            req.Status,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, account)
}

// listAccountsHandler handles GET /api/v1/accounts.
func (s *Server) listAccountsHandler(c *echo.Context) error {
	accounts, err := s.deps.Accounts.ListAccounts(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"accounts": accounts,
		"total":    len(accounts),
	})
}

// setAccountStatusHandler handles POST /api/v1/accounts/:id/status.
func (s *Server) setAccountStatusHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "account id is required")
	}
	var req AccountStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Status == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "status is required")
	}

	account, err := s.deps.Accounts.SetStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, account)
}

// assignAccountHandler handles POST /api/v1/jobs/:id/accounts. Assigning an
// already-assigned account reports created=false.
func (s *Server) assignAccountHandler(c *echo.Context) error {
	jobID := c.Param("id")
	if jobID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "job id is required")
	}
	var req AssignAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.AccountID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "account_id is required")
	}

	created, err := s.deps.Accounts.AssignToJob(c.Request().Context(), jobID, req.AccountID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"job_id":     jobID,
		"account_id": req.AccountID,
		"created":    created,
	})
}
