package server

import (
	"github.com/gin-gonic/gin"

	"github.com/oyaguma3/radsync/apps/sync-server/internal/handler"
)

// SetupRouter はルーティングを設定する。
func SetupRouter(engine *gin.Engine, h *handler.Handler) {
	// ヘルスチェック
	engine.GET("/health", h.HandleHealth)

	// API v1
	v1 := engine.Group("/api/v1")
	{
		v1.POST("/events/customers", h.HandleCustomerEvent)
		v1.POST("/events/routers", h.HandleRouterEvent)

		v1.POST("/customers/password", h.HandleUpdatePassword)
		v1.POST("/customers/sync", h.HandleResync)

		v1.POST("/presence/classify", h.HandleClassify)
		v1.GET("/presence/:username", h.HandlePresence)
		v1.GET("/presence/:username/history", h.HandleHistory)
		v1.GET("/presence/:username/usage", h.HandleUsage)

		v1.GET("/audit/failures", h.HandleFailures)
		v1.GET("/nas", h.HandleListNas)
	}
}
