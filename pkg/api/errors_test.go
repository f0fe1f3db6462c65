package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"

	"github.com/hireflow/scout/pkg/provider"
	"github.com/hireflow/scout/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{
			name:       "validation error maps to 400",
			err:        services.NewValidationError("title", "title is required"),
			expectCode: http.StatusBadRequest,
			expectMsg:  "title is required",
		},
		{
			name:       "not found maps to 404",
			err:        fmt.Errorf("wrapped: %w", services.ErrNotFound),
			expectCode: http.StatusNotFound,
			expectMsg:  "resource not found",
		},
		{
			name:       "already exists maps to 409",
			err:        fmt.Errorf("wrapped: %w", services.ErrAlreadyExists),
			expectCode: http.StatusConflict,
			expectMsg:  "resource already exists",
		},
		{
			name:       "conflict maps to 409",
			err:        fmt.Errorf("payload diverged: %w", services.ErrConflict),
			expectCode: http.StatusConflict,
			expectMsg:  "payload diverged",
		},
		{
			name:       "precondition failed maps to 422",
			err:        fmt.Errorf("job has no verified candidates: %w", services.ErrPreconditionFailed),
			expectCode: http.StatusUnprocessableEntity,
			expectMsg:  "no verified candidates",
		},
		{
			name:       "provider error maps to 502",
			err:        fmt.Errorf("source stage: %w", &provider.Error{Op: "search", Err: errors.New("rate limited")}),
			expectCode: http.StatusBadGateway,
			expectMsg:  "provider search failed",
		},
		{
			name:       "unknown error maps to 500",
			err:        errors.New("something unexpected happened"),
			expectCode: http.StatusInternalServerError,
			expectMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := mapServiceError(tt.err)
			assert.IsType(t, &echo.HTTPError{}, he)
			assert.Equal(t, tt.expectCode, he.Code)
			assert.Contains(t, he.Error(), tt.expectMsg)
		})
	}
}
