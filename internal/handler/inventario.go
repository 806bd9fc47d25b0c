package handler

import (
	"net/http"
	"strconv"

	"github.com/FN2184/tiny-business-manager/internal/apierror"
	"github.com/FN2184/tiny-business-manager/internal/dto"
	"github.com/FN2184/tiny-business-manager/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InventarioHandler struct{ svc service.InventarioService }

func NewInventarioHandler(svc service.InventarioService) *InventarioHandler {
	return &InventarioHandler{svc: svc}
}

func (h *InventarioHandler) ActualizarStock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ActualizarStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarStock(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventarioHandler) StockBajo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.svc.StockBajo(c.Request.Context())})
}

func (h *InventarioHandler) MasVendidos(c *gin.Context) {
	limite := service.TopVendidosPorDefecto
	if raw := c.Query("limite"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, apierror.New("limite invalido"))
			return
		}
		limite = n
	}
	c.JSON(http.StatusOK, gin.H{"data": h.svc.MasVendidos(c.Request.Context(), limite)})
}
