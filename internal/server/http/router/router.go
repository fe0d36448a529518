package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/autoservice/internal/metrics"
	"github.com/polkiloo/autoservice/internal/server/http/handlers"
	"github.com/polkiloo/autoservice/internal/server/http/middleware"
)

type routerParams struct {
	fx.In

	Facade  handlers.ShopFacade
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// Setup configures gin router with handlers and middleware.
func Setup(p routerParams) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(p.Logger))
	engine.Use(middleware.Metrics(p.Metrics))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	orderHandler := handlers.NewOrderHandler(p.Facade)
	calendarHandler := handlers.NewCalendarHandler(p.Facade)
	dashboardHandler := handlers.NewDashboardHandler(p.Facade)
	referenceHandler := handlers.NewReferenceHandler(p.Facade)

	engine.GET("/ping", handlers.Ping(p.Facade))
	engine.GET("/metrics", gin.WrapH(p.Metrics.Handler()))

	api := engine.Group("/api")

	orders := api.Group("/orders")
	orders.GET("", orderHandler.List)
	orders.POST("", orderHandler.Create)
	orders.GET("/:id", orderHandler.Get)
	orders.PUT("/:id", orderHandler.Update)
	orders.DELETE("/:id", orderHandler.Delete)
	orders.PUT("/query/search", orderHandler.Search)
	orders.PUT("/query/status", orderHandler.FilterStatus)
	orders.PUT("/query/sort", orderHandler.Sort)
	orders.POST("/query/sort/toggle", orderHandler.ToggleSort)

	calendar := api.Group("/calendar")
	calendar.GET("/appointments", calendarHandler.List)
	calendar.POST("/appointments", calendarHandler.Create)
	calendar.GET("/appointments/:id", calendarHandler.Get)
	calendar.PUT("/appointments/:id", calendarHandler.Update)
	calendar.DELETE("/appointments/:id", calendarHandler.Delete)
	calendar.POST("/appointments/:id/move", calendarHandler.Move)
	calendar.POST("/appointments/:id/relocate", calendarHandler.Relocate)
	calendar.POST("/orders/:id/schedule", calendarHandler.ScheduleOrder)
	calendar.GET("/week", calendarHandler.Week)
	calendar.GET("/day", calendarHandler.Day)
	calendar.GET("/selected-date", calendarHandler.SelectedDate)
	calendar.PUT("/selected-date", calendarHandler.SetSelectedDate)

	dashboard := api.Group("/dashboard")
	dashboard.GET("/stats", dashboardHandler.Stats)
	dashboard.GET("/chart", dashboardHandler.Chart)

	reference := api.Group("/reference")
	reference.GET("/services", referenceHandler.Services)
	reference.GET("/clients", referenceHandler.Clients)
	reference.GET("/statuses", referenceHandler.Statuses)

	return engine
}
