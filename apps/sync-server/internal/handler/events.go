package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oyaguma3/radsync/apps/sync-server/internal/events"
	"github.com/oyaguma3/radsync/pkg/logging"
)

// HandleCustomerEvent はPOST /api/v1/events/customers のハンドラー。
// オブザーバーの処理完了後に応答する。同期失敗は応答に影響しない。
func (h *Handler) HandleCustomerEvent(c *gin.Context) {
	var req CustomerEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "EVENT_REJECTED", "Invalid request body", err)
		return
	}

	typ := events.CustomerEventType(req.Type)
	if !typ.Valid() {
		badRequest(c, "EVENT_REJECTED", "Unknown customer event type", nil)
		return
	}

	h.publisher.PublishCustomer(c.Request.Context(), events.CustomerEvent{
		Type:     typ,
		Customer: req.Customer,
		Previous: req.Previous,
		Changed:  req.Changed,
	})

	slog.Debug("customer event accepted",
		logging.WithTraceID(c.GetString(TraceIDKey)),
		logging.WithEventID("EVENT_ACCEPTED"),
		logging.WithCustomerID(req.Customer.ID),
		"type", req.Type,
	)
	c.JSON(http.StatusAccepted, AcceptedResponse{Status: "accepted"})
}

// HandleRouterEvent はPOST /api/v1/events/routers のハンドラー。
func (h *Handler) HandleRouterEvent(c *gin.Context) {
	var req RouterEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "EVENT_REJECTED", "Invalid request body", err)
		return
	}

	typ := events.RouterEventType(req.Type)
	if !typ.Valid() {
		badRequest(c, "EVENT_REJECTED", "Unknown router event type", nil)
		return
	}

	h.publisher.PublishRouter(c.Request.Context(), events.RouterEvent{
		Type:     typ,
		Router:   req.Router,
		Previous: req.Previous,
		Changed:  req.Changed,
	})

	slog.Debug("router event accepted",
		logging.WithTraceID(c.GetString(TraceIDKey)),
		logging.WithEventID("EVENT_ACCEPTED"),
		logging.WithRouterID(req.Router.ID),
		"type", req.Type,
	)
	c.JSON(http.StatusAccepted, AcceptedResponse{Status: "accepted"})
}
