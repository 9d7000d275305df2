package httpx

import (
	"github.com/gin-gonic/gin"

	"court-reservation-server/internal/service"
	"court-reservation-server/pkg/config"
)

type Handler struct {
	reservations *service.ReservationService
	registry     *service.RegistryService
	audit        *service.AuditService
	backup       *service.BackupService
	defaultActor string
}

func NewRouter(cfg config.App, reservations *service.ReservationService, registry *service.RegistryService, audit *service.AuditService, backup *service.BackupService) *gin.Engine {
	r := gin.Default()
	r.Use(RequestID())
	r.LoadHTMLGlob(cfg.TemplateGlob)

	h := &Handler{
		reservations: reservations,
		registry:     registry,
		audit:        audit,
		backup:       backup,
		defaultActor: cfg.DefaultActor,
	}

	r.GET("/", h.Index)

	r.GET("/clientes", h.ListClients)
	r.GET("/clientes/nuevo", h.NewClientForm)
	r.POST("/clientes/nuevo", h.CreateClient)

	r.GET("/canchas", h.ListCourts)
	r.GET("/canchas/nueva", h.NewCourtForm)
	r.POST("/canchas/nueva", h.CreateCourt)

	r.GET("/reservas", h.ListReservations)
	r.POST("/reservar", h.CreateReservation)
	r.GET("/historial/:id", h.ClientHistory)

	r.GET("/auditoria", h.AuditTrail)
	r.GET("/backup", h.Backup)

	r.GET("/api/disponibilidad", h.Availability)

	return r
}
