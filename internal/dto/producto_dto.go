package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CrearProductoRequest mirrors the manual-add form: the operator enters
// cost plus desired profit percentage and the sale price is derived.
type CrearProductoRequest struct {
	Nombre        string          `json:"nombre"         validate:"required,min=1,max=120"`
	Costo         decimal.Decimal `json:"costo"          validate:"min=0"`
	GananciaPct   decimal.Decimal `json:"ganancia_pct"   validate:"min=0"`
	Stock         string          `json:"stock"`
	Categoria     string          `json:"categoria"`
	StockMinimo   *string         `json:"stock_minimo"`
	Unidad        string          `json:"unidad"`
	Clave         string          `json:"clave"`
	InfoAdicional string          `json:"info_adicional"`
}

// ActualizarStockRequest carries the new absolute stock value. Quantities
// travel as strings so "1,5" style input parses the same as "1.5".
type ActualizarStockRequest struct {
	Stock string `json:"stock" validate:"required"`
}

type ProductoFilter struct {
	Nombre    string `form:"nombre"`
	Categoria string `form:"categoria"`
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID             string          `json:"id"`
	Nombre         string          `json:"nombre"`
	Categoria      string          `json:"categoria"`
	Clave          string          `json:"clave,omitempty"`
	Costo          decimal.Decimal `json:"costo"`
	Precio         decimal.Decimal `json:"precio"`
	PrecioBS       decimal.Decimal `json:"precio_bs"`
	GananciaPct    decimal.Decimal `json:"ganancia_pct"`
	MargenGanancia decimal.Decimal `json:"margen_ganancia"`
	Stock          decimal.Decimal `json:"stock"`
	StockMinimo    decimal.Decimal `json:"stock_minimo"`
	Unidad         string          `json:"unidad"`
	VecesVendido   decimal.Decimal `json:"veces_vendido"`
	StockBajo      bool            `json:"stock_bajo"`
}

type ProductoListResponse struct {
	Data       []ProductoResponse `json:"data"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
}

type ImportarCatalogoResponse struct {
	Importados  int `json:"importados"`
	Descartados int `json:"descartados"`
}
