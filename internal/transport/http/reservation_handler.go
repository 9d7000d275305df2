package httpx

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"court-reservation-server/internal/domain"
	"court-reservation-server/internal/service"
)

// GET / — booking screen: courts plus the client list for the form.
func (h *Handler) Index(c *gin.Context) {
	courts, err := h.registry.ListCourts(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "error cargando canchas")
		return
	}
	clients, err := h.registry.ListClients(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "error cargando clientes")
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Courts":  courts,
		"Clients": clients,
		"Msg":     c.Query("msg"),
		"Error":   c.Query("error"),
	})
}

// POST /reservar — always redirects back to the booking screen.
func (h *Handler) CreateReservation(c *gin.Context) {
	actor := h.actor(c)
	clientID, errC := strconv.Atoi(c.PostForm("cliente_id"))
	courtID, errK := strconv.Atoi(c.PostForm("cancha_id"))
	if errC != nil || errK != nil {
		h.audit.Record(c.Request.Context(), actor,
			"reservation attempt with malformed form data",
			domain.OutcomeFailure, c.ClientIP())
		redirectError(c, "/", "Error: datos del formulario inválidos.")
		return
	}

	_, err := h.reservations.Create(c.Request.Context(), actor, c.ClientIP(), service.CreateInput{
		ClientID:  uint(clientID),
		CourtID:   uint(courtID),
		Date:      c.PostForm("fecha"),
		StartTime: c.PostForm("hora_inicio"),
		EndTime:   c.PostForm("hora_fin"),
	})
	switch {
	case err == nil:
		redirectMsg(c, "/", "Reserva creada con éxito.")
	case errors.Is(err, domain.ErrConflict):
		redirectError(c, "/", "Error: la reserva entra en conflicto con otra existente.")
	case errors.Is(err, domain.ErrInvalidTimeRange):
		redirectError(c, "/", "Error: fecha u horario inválido.")
	case errors.Is(err, domain.ErrClientNotFound), errors.Is(err, domain.ErrCourtNotFound):
		redirectError(c, "/", "Error: cliente o cancha inexistente.")
	default:
		redirectError(c, "/", "Ocurrió un error al crear la reserva.")
	}
}

// GET /reservas
func (h *Handler) ListReservations(c *gin.Context) {
	reservations, err := h.reservations.ListAll(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "error cargando reservas")
		return
	}
	c.HTML(http.StatusOK, "reservas.html", gin.H{"Reservations": reservations})
}

// GET /historial/:id
func (h *Handler) ClientHistory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "cliente no encontrado")
		return
	}
	client, err := h.registry.ClientByID(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			c.String(http.StatusNotFound, "cliente no encontrado")
			return
		}
		c.String(http.StatusInternalServerError, "error cargando cliente")
		return
	}
	reservations, err := h.reservations.ListByClient(c.Request.Context(), client.ID)
	if err != nil {
		c.String(http.StatusInternalServerError, "error cargando historial")
		return
	}
	c.HTML(http.StatusOK, "historial.html", gin.H{
		"Client":       client,
		"Reservations": reservations,
	})
}

// GET /api/disponibilidad?cancha_id=&fecha=&hora_inicio=&hora_fin=
func (h *Handler) Availability(c *gin.Context) {
	courtStr := c.Query("cancha_id")
	date := c.Query("fecha")
	start := c.Query("hora_inicio")
	end := c.Query("hora_fin")
	if courtStr == "" || date == "" || start == "" || end == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "parámetros incompletos"})
		return
	}
	courtID, err := strconv.Atoi(courtStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "parámetros inválidos"})
		return
	}
	free, err := h.reservations.Availability(c.Request.Context(), uint(courtID), date, start, end)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTimeRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "parámetros inválidos"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error interno"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"disponible": free})
}
