package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// InboundRequest is the body of POST /api/v1/inbound.
type InboundRequest struct {
	ConversationID string `json:"conversation_id"`
	Text           string `json:"text"`
}

// inboundHandler handles POST /api/v1/inbound. The message is persisted and
// routed through the pre-resume FSM when a live session owns the
// conversation, through the FAQ composer otherwise.
func (s *Server) inboundHandler(c *echo.Context) error {
	var req InboundRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := s.deps.Workflow.ProcessInbound(c.Request().Context(), req.ConversationID, req.Text)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}
