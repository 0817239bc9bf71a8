package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oyaguma3/radsync/apps/sync-server/internal/config"
)

// defaultUsageWindow は通信量照会の期間指定がない場合の遡り期間
const defaultUsageWindow = 30 * 24 * time.Hour

// HandlePresence はGET /api/v1/presence/:username のハンドラー。
func (h *Handler) HandlePresence(c *gin.Context) {
	ctx := c.Request.Context()
	username := c.Param("username")

	resp := PresenceResponse{Username: username}
	if h.presence.IsOnline(ctx, username) {
		// 照会の間にセッションが終了した場合はオフラインとして返す
		resp.Session = h.presence.CurrentSession(ctx, username)
		if resp.Session != nil {
			resp.Online = true
			resp.DurationSeconds = int64(h.presence.SessionDuration(ctx, username).Seconds())
		}
	}
	c.JSON(http.StatusOK, resp)
}

// HandleClassify はPOST /api/v1/presence/classify のハンドラー。
func (h *Handler) HandleClassify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "PRESENCE_REJECTED", "Invalid request body", err)
		return
	}
	if len(req.Usernames) > config.MaxClassifyBatch {
		badRequest(c, "PRESENCE_REJECTED",
			fmt.Sprintf("At most %d usernames per request", config.MaxClassifyBatch), nil)
		return
	}

	online, offline := h.presence.Classify(c.Request.Context(), req.Usernames)
	c.JSON(http.StatusOK, ClassifyResponse{Online: online, Offline: offline})
}

// HandleHistory はGET /api/v1/presence/:username/history のハンドラー。
func (h *Handler) HandleHistory(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			badRequest(c, "PRESENCE_REJECTED", "limit must be a non-negative integer", err)
			return
		}
		limit = n
	}

	username := c.Param("username")
	sessions := h.presence.History(c.Request.Context(), username, limit)
	c.JSON(http.StatusOK, HistoryResponse{Username: username, Sessions: sessions})
}

// HandleUsage はGET /api/v1/presence/:username/usage のハンドラー。
// from/to はRFC3339または日付（YYYY-MM-DD）。省略時は直近30日間。
func (h *Handler) HandleUsage(c *gin.Context) {
	now := time.Now().UTC()
	to, err := parseTimeParam(c.Query("to"), now, true)
	if err != nil {
		badRequest(c, "PRESENCE_REJECTED", "to must be RFC3339 or YYYY-MM-DD", err)
		return
	}
	from, err := parseTimeParam(c.Query("from"), to.Add(-defaultUsageWindow), false)
	if err != nil {
		badRequest(c, "PRESENCE_REJECTED", "from must be RFC3339 or YYYY-MM-DD", err)
		return
	}
	if from.After(to) {
		badRequest(c, "PRESENCE_REJECTED", "from must not be after to", nil)
		return
	}

	username := c.Param("username")
	u := h.presence.Usage(c.Request.Context(), username, from, to)
	c.JSON(http.StatusOK, UsageResponse{
		Username: username,
		From:     from.Format(time.RFC3339),
		To:       to.Format(time.RFC3339),
		Upload:   u.Upload,
		Download: u.Download,
		Total:    u.Total,
	})
}

// parseTimeParam は時刻パラメータを解釈する。日付のみの場合、endOfDay なら当日末尾とする。
func parseTimeParam(raw string, def time.Time, endOfDay bool) (time.Time, error) {
	if raw == "" {
		return def, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Second)
	}
	return t, nil
}
