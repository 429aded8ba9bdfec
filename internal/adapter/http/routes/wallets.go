package routes

import (
	"repairhub/internal/adapter/http/handlers"
	"repairhub/internal/adapter/http/middleware"
	"repairhub/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathWallets      = "/wallets"
	PathAdminWallets = "/admin/wallets"
)

func addWalletRoutes(rg *gin.RouterGroup, h *handlers.WalletHandler) {
	wallets := rg.Group(PathWallets)
	{
		wallets.POST("", h.Create)

		me := wallets.Group("/me")
		me.GET("", h.Me)
		me.POST("/deposit", h.Deposit)
		me.POST("/withdraw", h.Withdraw)
		me.POST("/transfer", h.Transfer)
		me.POST("/topup", h.TopUp)
		me.GET("/transactions", h.Transactions)
		me.GET("/reconcile", h.Reconcile)
	}

	admin := rg.Group(PathAdminWallets, middleware.RequireRole(entities.RoleAdmin))
	{
		admin.GET("/:id/reconcile", h.ReconcileByID)
	}
}
