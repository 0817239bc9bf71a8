// Package handler はHTTPリクエストハンドラーを提供する。
package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oyaguma3/radsync/pkg/httputil"
	"github.com/oyaguma3/radsync/pkg/logging"
)

// TraceIDKey はコンテキストにTraceIDを格納するキー。
const TraceIDKey = "trace_id"

// Handler はSync Server APIのハンドラー。
type Handler struct {
	publisher EventPublisher
	passwords PasswordUpdater
	resyncer  Resyncer
	presence  PresenceReader
	failures  FailureLister
	nas       NasLister
}

// NewHandler は新しいHandlerを生成する。
func NewHandler(publisher EventPublisher, passwords PasswordUpdater, resyncer Resyncer,
	presence PresenceReader, failures FailureLister, nas NasLister) *Handler {
	return &Handler{
		publisher: publisher,
		passwords: passwords,
		resyncer:  resyncer,
		presence:  presence,
		failures:  failures,
		nas:       nas,
	}
}

// HandleHealth はGET /health のハンドラー。
func (h *Handler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// badRequest は不正リクエストをログに残して400を返す。
func badRequest(c *gin.Context, eventID, detail string, err error) {
	args := []any{
		logging.WithTraceID(c.GetString(TraceIDKey)),
		logging.WithEventID(eventID),
		"path", c.FullPath(),
	}
	if err != nil {
		args = append(args, logging.WithError(err))
	}
	slog.Warn("invalid request", args...)
	httputil.WriteError(c, httputil.BadRequest(detail).WithReason("invalid_request"))
}
