package handler

import (
	"net/http"

	"github.com/FN2184/tiny-business-manager/internal/apierror"
	"github.com/FN2184/tiny-business-manager/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogoHandler covers bulk import/export of the product catalog.
type CatalogoHandler struct{ svc service.CatalogoArchivoService }

func NewCatalogoHandler(svc service.CatalogoArchivoService) *CatalogoHandler {
	return &CatalogoHandler{svc: svc}
}

// Importar accepts the raw JSON document as the request body. Both the
// exported spreadsheet schema and the generic name/price schema are
// recognized.
func (h *CatalogoHandler) Importar(c *gin.Context) {
	contenido, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("no se pudo leer el archivo"))
		return
	}
	resp, err := h.svc.Importar(c.Request.Context(), contenido)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogoHandler) Exportar(c *gin.Context) {
	nombre, data, err := h.svc.Exportar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+nombre+`"`)
	c.Data(http.StatusOK, "application/json", data)
}
