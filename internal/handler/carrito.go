package handler

import (
	"net/http"

	"github.com/FN2184/tiny-business-manager/internal/apierror"
	"github.com/FN2184/tiny-business-manager/internal/dto"
	"github.com/FN2184/tiny-business-manager/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CarritoHandler struct{ svc service.CarritoService }

func NewCarritoHandler(svc service.CarritoService) *CarritoHandler {
	return &CarritoHandler{svc: svc}
}

func (h *CarritoHandler) Ver(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Ver(c.Request.Context()))
}

func (h *CarritoHandler) Agregar(c *gin.Context) {
	var req dto.AgregarItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Agregar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CarritoHandler) Quitar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	c.JSON(http.StatusOK, h.svc.Quitar(c.Request.Context(), id))
}

func (h *CarritoHandler) FijarCantidad(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.FijarCantidadRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.FijarCantidad(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CarritoHandler) Vaciar(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Vaciar(c.Request.Context()))
}

func (h *CarritoHandler) CalcularVuelto(c *gin.Context) {
	var req dto.VueltoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CalcularVuelto(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
