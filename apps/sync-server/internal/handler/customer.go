package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oyaguma3/radsync/pkg/httputil"
)

// HandleUpdatePassword はPOST /api/v1/customers/password のハンドラー。
// デバイスエラーは詳細を含まない問題詳細として返す。
func (h *Handler) HandleUpdatePassword(c *gin.Context) {
	var req PasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "PASSWORD_REJECTED", "Invalid request body", err)
		return
	}

	if err := h.passwords.UpdatePassword(c.Request.Context(), req.Customer, req.Router, req.Password); err != nil {
		httputil.WriteAppError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// HandleResync はPOST /api/v1/customers/sync のハンドラー。
func (h *Handler) HandleResync(c *gin.Context) {
	var req ResyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "RESYNC_REJECTED", "Invalid request body", err)
		return
	}

	res := h.resyncer.Resync(c.Request.Context(), req.Customers)
	c.JSON(http.StatusOK, res)
}
