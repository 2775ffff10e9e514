package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Availability(c *ginext.Context)
	Slots(c *ginext.Context)
	GetInventory(c *ginext.Context)
	CreateReservation(c *ginext.Context)
	CancelReservation(c *ginext.Context)
	GetUserReservations(c *ginext.Context)
}

// InitRouter registers the API. A nil metrics handler leaves /metrics out.
func InitRouter(mode string, h Handler, metrics http.Handler, metricsPath string, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Venue
		api.GET("/inventory", h.GetInventory)
		api.GET("/slots", h.Slots)
		api.POST("/availability", h.Availability)

		// Reservations
		api.POST("/reservations", h.CreateReservation)
		api.POST("/reservations/:id/cancel", h.CancelReservation)
		api.GET("/users/:id/reservations", h.GetUserReservations)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	if metrics != nil {
		router.GET(metricsPath, func(c *ginext.Context) {
			metrics.ServeHTTP(c.Writer, c.Request)
		})
	}

	return router
}
