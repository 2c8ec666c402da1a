package routes

import (
	"detailcrm/config"
	"detailcrm/controllers"
	"detailcrm/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func SetupRouter(h *controllers.Handler, cfg config.Config, log logrus.FieldLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.RequestLogger(log))

	auth := r.Group("/auth")
	{
		auth.POST("/login", h.Login)
		if cfg.AuthEnabled() {
			auth.GET("/me", utils.AuthMiddleware(cfg.JWTSecret), h.Me)
		}
	}

	api := r.Group("/api")
	if cfg.AuthEnabled() {
		api.Use(utils.AuthMiddleware(cfg.JWTSecret))
	}
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", h.CreateCustomer)
			customers.GET("", h.GetCustomers)
			customers.GET("/:id", h.GetCustomer)
			customers.PUT("/:id", h.UpdateCustomer)
			customers.DELETE("/:id", h.DeleteCustomer)
			customers.GET("/:id/appointments", h.GetCustomerAppointments)
			customers.GET("/:id/invoices", h.GetCustomerInvoices)
		}

		// Service routes
		services := api.Group("/services")
		{
			services.POST("", h.CreateService)
			services.GET("", h.GetServices)
			services.GET("/:id", h.GetService)
			services.PUT("/:id", h.UpdateService)
			services.DELETE("/:id", h.DeleteService)
		}

		// Appointment routes
		appointments := api.Group("/appointments")
		{
			appointments.POST("", h.CreateAppointment)
			appointments.GET("", h.GetAppointments)
			appointments.GET("/upcoming", h.GetUpcomingAppointments)
			appointments.GET("/:id", h.GetAppointment)
			appointments.PUT("/:id", h.UpdateAppointment)
			appointments.DELETE("/:id", h.DeleteAppointment)
		}

		// Invoice routes
		invoices := api.Group("/invoices")
		{
			invoices.POST("", h.CreateInvoice)
			invoices.GET("", h.GetInvoices)
			invoices.GET("/:id", h.GetInvoice)
			invoices.PUT("/:id/status", h.UpdateInvoiceStatus)
			invoices.DELETE("/:id", h.DeleteInvoice)
		}

		api.GET("/dashboard", h.GetDashboardOverview)
		api.GET("/reports", h.GetReport)
		api.POST("/reminders/send", h.SendReminders)
		api.POST("/backup", h.CreateBackup)
	}

	return r
}
