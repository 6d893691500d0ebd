package devapi

import (
	"github.com/gin-gonic/gin"
)

func (s *Server) registerRoutes(r *gin.Engine) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(CORSMiddleware())
	if s.opts.RateLimit > 0 {
		r.Use(RateLimit(s.opts.RateLimit, s.opts.Burst))
	}

	authHandler := &AuthHandler{store: s.store, secret: s.secret, ttl: s.opts.TokenTTL, now: s.opts.Now, audit: s.opts.Audit}
	barbershopHandler := &BarbershopHandler{store: s.store, audit: s.opts.Audit}
	appointmentHandler := &AppointmentHandler{store: s.store, audit: s.opts.Audit}
	scheduleHandler := &ScheduleHandler{store: s.store}

	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/register/client", authHandler.RegisterClient)
		api.POST("/auth/register/barbershop", authHandler.RegisterBarbershop)

		// ------------------------------
		// PUBLIC CATALOG
		// ------------------------------
		api.GET("/barbershops", barbershopHandler.List)
		api.GET("/barbershops/:id", barbershopHandler.Get)
		api.GET("/barbershops/:id/services/all", barbershopHandler.Services)
		api.GET("/barbershops/:id/barbers/active", barbershopHandler.ActiveBarbers)

		secured := api.Group("/")
		secured.Use(AuthMiddleware(s.secret))
		{
			owner := secured.Group("/barbershops")
			owner.Use(requireRole("BARBERSHOP"))
			{
				owner.POST("/:id/services", barbershopHandler.AddService)
				owner.DELETE("/services/:id", barbershopHandler.DeleteService)
				owner.POST("/:id/barbers", barbershopHandler.AddBarber)
				owner.DELETE("/barbers/:id", barbershopHandler.DeleteBarber)
				owner.GET("/:id/appointments", barbershopHandler.Appointments)
			}

			secured.POST("/appointments", requireRole("CLIENT"), appointmentHandler.Create)
			secured.GET("/appointments/me", appointmentHandler.Mine)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)
			secured.PUT("/appointments/:id/status", requireRole("BARBER", "BARBERSHOP"), appointmentHandler.UpdateStatus)

			secured.GET("/schedules/barber/:id", scheduleHandler.ByBarber)
		}
	}
}
