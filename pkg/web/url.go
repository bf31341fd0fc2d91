package web

import (
	// 外部依赖
	"context"

	gin "github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	// 内部引用
	auth "github.com/warehub/warehub/service/pkg/middleware/auth"
	assetViews "github.com/warehub/warehub/service/pkg/web/views/asset"
	clientViews "github.com/warehub/warehub/service/pkg/web/views/client"
	feedViews "github.com/warehub/warehub/service/pkg/web/views/feed"
	health "github.com/warehub/warehub/service/pkg/web/views/health"
	maintenanceViews "github.com/warehub/warehub/service/pkg/web/views/maintenance"
	presetViews "github.com/warehub/warehub/service/pkg/web/views/preset"
	registryViews "github.com/warehub/warehub/service/pkg/web/views/registry"
	statsViews "github.com/warehub/warehub/service/pkg/web/views/stats"
	transactionViews "github.com/warehub/warehub/service/pkg/web/views/transaction"
)

func InstallURL(ctx context.Context, g *gin.Engine) func() {
	api := g.Group("/api")
	api.GET("/health", health.Health)
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	feedHandle := feedViews.New(ctx)
	v1 := api.Group("/v1", auth.AuthWeb())

	{
		handle := clientViews.NewHandle()
		clients := v1.Group("/clients")
		clients.POST("", handle.Insert)
		clients.GET("", handle.Query)
		clients.GET("/:uuid", handle.Get)
		clients.PUT("", handle.Update)
		clients.DELETE("", handle.Delete)
	}

	{
		handle := assetViews.NewHandle()
		assets := v1.Group("/assets")
		assets.POST("", handle.Insert)
		assets.GET("", handle.Query)
		assets.GET("/:uuid", handle.Get)
		assets.PUT("", handle.Update)
		assets.POST("/retire", handle.Retire)
		assets.POST("/numbers/allocate", handle.Allocate)
		assets.POST("/numbers/repair", handle.Repair)
	}

	{
		handle := registryViews.NewHandle()
		registries := v1.Group("/registries/:kind")
		registries.POST("", handle.Insert)
		registries.GET("", handle.Query)
		registries.GET("/:uuid", handle.Get)
		registries.PUT("", handle.Update)
		registries.DELETE("", handle.Delete)
	}

	{
		handle := transactionViews.NewHandle()
		transactions := v1.Group("/transactions")
		transactions.POST("/checkout", handle.Checkout)
		transactions.POST("/checkin", handle.Checkin)
		transactions.GET("", handle.Query)
		transactions.GET("/:uuid", handle.Get)
		transactions.POST("/sweep-overdue", handle.SweepOverdue)
	}

	{
		handle := maintenanceViews.NewHandle()
		maintenance := v1.Group("/maintenance")
		maintenance.POST("", handle.Schedule)
		maintenance.GET("", handle.Query)
		maintenance.GET("/:uuid", handle.Get)
		maintenance.POST("/start", handle.Start)
		maintenance.POST("/complete", handle.Complete)
		maintenance.POST("/cancel", handle.Cancel)
		maintenance.POST("/sweep-overdue", handle.SweepOverdue)
	}

	{
		handle := presetViews.NewHandle()
		presets := v1.Group("/presets")
		presets.POST("", handle.Insert)
		presets.GET("", handle.Query)
		presets.GET("/:uuid", handle.Get)
		presets.PUT("", handle.Update)
		presets.DELETE("", handle.Delete)
		presets.POST("/:uuid/reconcile", handle.Reconcile)

		checkouts := v1.Group("/preset-checkouts")
		checkouts.GET("", handle.QueryCheckouts)
		checkouts.GET("/:uuid", handle.GetCheckout)
		checkouts.POST("/process", handle.ProcessCheckout)
		checkouts.POST("/return", handle.ReturnCheckout)
		checkouts.POST("/cancel", handle.CancelCheckout)
	}

	{
		handle := statsViews.NewHandle()
		stats := v1.Group("/stats")
		stats.GET("/dashboard", handle.Dashboard)
		stats.GET("/usage", handle.Usage)
	}

	{
		ws := api.Group("/v1/ws", auth.AuthWeb())
		ws.GET("/feed", feedHandle.Connect)
	}

	return func() {
		feedHandle.Close(ctx)
	}
}
