package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dussanclaurer/pepito-s-app/internal/dto"
	"github.com/dussanclaurer/pepito-s-app/internal/service"
)

type ClientesHandler struct{ svc *service.ClienteService }

func NewClientesHandler(svc *service.ClienteService) *ClientesHandler {
	return &ClientesHandler{svc: svc}
}

// ListarClientes godoc
// @Summary      Listar o buscar clientes
// @Description  Sin query lista todos; con ?telefono= busca el cliente exacto (404 si no existe).
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        telefono query string false "Teléfono exacto"
// @Success      200 {array} model.Cliente
// @Failure      404 {object} apierror.APIError
// @Router       /clientes [get]
func (h *ClientesHandler) ListarClientes(c *gin.Context) {
	if telefono := c.Query("telefono"); telefono != "" {
		cliente, err := h.svc.BuscarPorTelefono(c.Request.Context(), telefono)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cliente)
		return
	}

	clientes, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, clientes)
}

// CrearCliente godoc
// @Summary      Crear cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearClienteRequest true "Nombre y teléfono"
// @Success      201  {object} model.Cliente
// @Failure      409  {object} apierror.APIError
// @Router       /clientes [post]
func (h *ClientesHandler) CrearCliente(c *gin.Context) {
	var req dto.CrearClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cliente, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cliente)
}
