package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"court-reservation-server/internal/service"
)

// GET /clientes
func (h *Handler) ListClients(c *gin.Context) {
	clients, err := h.registry.ListClients(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "error cargando clientes")
		return
	}
	c.HTML(http.StatusOK, "clientes.html", gin.H{
		"Clients": clients,
		"Msg":     c.Query("msg"),
	})
}

// GET /clientes/nuevo
func (h *Handler) NewClientForm(c *gin.Context) {
	c.HTML(http.StatusOK, "nuevo_cliente.html", gin.H{})
}

// POST /clientes/nuevo — redirect to the list on success, re-render the
// form with the error otherwise.
func (h *Handler) CreateClient(c *gin.Context) {
	_, err := h.registry.CreateClient(c.Request.Context(), service.ClientInput{
		FirstName: c.PostForm("nombre"),
		LastName:  c.PostForm("apellido"),
		Phone:     c.PostForm("telefono"),
		Email:     c.PostForm("correo"),
	})
	if err != nil {
		c.HTML(http.StatusOK, "nuevo_cliente.html", gin.H{
			"Error": "Error al registrar cliente: " + err.Error(),
		})
		return
	}
	redirectMsg(c, "/clientes", "Cliente registrado con éxito.")
}

// GET /canchas
func (h *Handler) ListCourts(c *gin.Context) {
	courts, err := h.registry.ListCourts(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "error cargando canchas")
		return
	}
	c.HTML(http.StatusOK, "canchas.html", gin.H{
		"Courts": courts,
		"Msg":    c.Query("msg"),
	})
}

// GET /canchas/nueva
func (h *Handler) NewCourtForm(c *gin.Context) {
	c.HTML(http.StatusOK, "nueva_cancha.html", gin.H{})
}

// POST /canchas/nueva
func (h *Handler) CreateCourt(c *gin.Context) {
	_, err := h.registry.CreateCourt(c.Request.Context(), service.CourtInput{
		Name:     c.PostForm("nombre"),
		Category: c.PostForm("tipo"),
		Location: c.PostForm("ubicacion"),
	})
	if err != nil {
		c.HTML(http.StatusOK, "nueva_cancha.html", gin.H{
			"Error": "Error al registrar cancha: " + err.Error(),
		})
		return
	}
	redirectMsg(c, "/canchas", "Cancha registrada con éxito.")
}
