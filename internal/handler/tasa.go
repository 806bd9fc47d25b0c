package handler

import (
	"net/http"

	"github.com/FN2184/tiny-business-manager/internal/dto"
	"github.com/FN2184/tiny-business-manager/internal/service"

	"github.com/gin-gonic/gin"
)

type TasaHandler struct{ svc service.TasaService }

func NewTasaHandler(svc service.TasaService) *TasaHandler { return &TasaHandler{svc: svc} }

func (h *TasaHandler) Obtener(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Obtener(c.Request.Context()))
}

func (h *TasaHandler) Fijar(c *gin.Context) {
	var req dto.FijarTasaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Fijar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
