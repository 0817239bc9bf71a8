package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/oyaguma3/radsync/pkg/httputil"
)

// HandleFailures はGET /api/v1/audit/failures のハンドラー。
func (h *Handler) HandleFailures(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 0 {
		badRequest(c, "AUDIT_REJECTED", "limit must be a non-negative integer", err)
		return
	}
	c.JSON(http.StatusOK, FailuresResponse{Failures: h.failures.RecentFailures(limit)})
}

// HandleListNas はGET /api/v1/nas のハンドラー。共有シークレットは含めない。
func (h *Handler) HandleListNas(c *gin.Context) {
	entries, err := h.nas.List(c.Request.Context())
	if err != nil {
		httputil.WriteAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, NasListResponse{Entries: entries})
}
