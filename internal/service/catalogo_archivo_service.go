package service

// catalogo_archivo_service.go — bulk import and export of the catalog.
// The import accepts a JSON document that is either one product object or
// an array of them, in either of two field-name schemes: a generic
// English-keyed one (name/price/cost/...) and the Spanish spreadsheet
// labels used by the export (Nombre/Precio/Costo/...). Field lookup is
// data-driven: each logical field has an alias list tried in order.

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/FN2184/tiny-business-manager/internal/dto"
	"github.com/FN2184/tiny-business-manager/internal/infra"
	"github.com/FN2184/tiny-business-manager/internal/model"
	"github.com/FN2184/tiny-business-manager/internal/repository"
	"github.com/FN2184/tiny-business-manager/internal/worker"

	"github.com/shopspring/decimal"
)

type CatalogoArchivoService interface {
	// Importar parses, validates and deduplicates the whole document
	// before any catalog mutation. A parse failure leaves the catalog
	// untouched.
	Importar(ctx context.Context, contenido []byte) (*dto.ImportarCatalogoResponse, error)
	// Exportar returns the dated download filename and the serialized
	// catalog in the spreadsheet schema.
	Exportar(ctx context.Context) (string, []byte, error)
}

type catalogoArchivoService struct {
	catalogo   repository.CatalogoRepository
	categorias repository.CategoriaRepository
	dispatcher *worker.Dispatcher
}

func NewCatalogoArchivoService(
	catalogo repository.CatalogoRepository,
	categorias repository.CategoriaRepository,
	dispatcher *worker.Dispatcher,
) CatalogoArchivoService {
	return &catalogoArchivoService{catalogo: catalogo, categorias: categorias, dispatcher: dispatcher}
}

// Alias lists per logical field, in priority order. The Spanish labels
// match the export schema; the English ones the generic scheme.
var camposImportacion = map[string][]string{
	"nombre":              {"Nombre", "name"},
	"precio":              {"Precio", "price"},
	"costo":               {"Costo", "cost"},
	"stock":               {"Cantidad", "stock"},
	"stock_minimo":        {"Cantidad Mínima", "Cantidad Minima", "min_stock"},
	"categoria":           {"Categoría", "Categoria", "category"},
	"unidad":              {"Unidad", "unit"},
	"clave":               {"Clave", "id", "key"},
	"info_adicional":      {"Información Adicional", "Informacion Adicional"},
	"precios_adicionales": {"Precios Adicionales"},
	"veces_vendido":       {"sales_count"},
}

func (s *catalogoArchivoService) Importar(_ context.Context, contenido []byte) (*dto.ImportarCatalogoResponse, error) {
	registros, err := decodificarRegistros(contenido)
	if err != nil || len(registros) == 0 {
		return nil, model.ErrArchivoVacio
	}

	// Coerce everything first; no mutation happens until the whole
	// document proved usable.
	var candidatos []model.Producto
	descartados := 0
	for _, registro := range registros {
		p, ok := coercionarRegistro(registro)
		if !ok {
			descartados++
			continue
		}
		candidatos = append(candidatos, p)
	}
	if len(candidatos) == 0 {
		return nil, model.ErrSinRegistrosValidos
	}

	importados := 0
	vistos := make(map[string]struct{}, len(candidatos))
	for _, p := range candidatos {
		claveNombre := strings.ToLower(p.Nombre)
		if _, dup := vistos[claveNombre]; dup {
			descartados++
			continue
		}
		// Existing catalog entries win; the duplicate import is dropped.
		if _, existe := s.catalogo.BuscarPorNombre(p.Nombre); existe {
			descartados++
			continue
		}
		vistos[claveNombre] = struct{}{}

		if normalizada, err := s.categorias.Agregar(p.Categoria); err == nil {
			p.Categoria = normalizada
		}
		s.catalogo.Crear(p)
		importados++
	}

	s.dispatcher.EncolarSnapshot(infra.ClaveProductos)
	s.dispatcher.EncolarSnapshot(infra.ClaveCategorias)

	return &dto.ImportarCatalogoResponse{Importados: importados, Descartados: descartados}, nil
}

// filaExportacion is the spreadsheet schema used for download files.
type filaExportacion struct {
	Clave              string          `json:"Clave"`
	Unidad             string          `json:"Unidad"`
	Nombre             string          `json:"Nombre"`
	Cantidad           decimal.Decimal `json:"Cantidad"`
	Costo              decimal.Decimal `json:"Costo"`
	Precio             decimal.Decimal `json:"Precio"`
	CantidadMinima     decimal.Decimal `json:"Cantidad Mínima"`
	PreciosAdicionales string          `json:"Precios Adicionales"`
	InfoAdicional      string          `json:"Información Adicional"`
	Categoria          string          `json:"Categoría"`
	CostoPromedio      decimal.Decimal `json:"Costo Promedio"`
}

func (s *catalogoArchivoService) Exportar(_ context.Context) (string, []byte, error) {
	productos := s.catalogo.Snapshot()

	filas := make([]filaExportacion, 0, len(productos))
	for _, p := range productos {
		filas = append(filas, filaExportacion{
			Clave:              p.Clave,
			Unidad:             p.Unidad,
			Nombre:             p.Nombre,
			Cantidad:           p.Stock,
			Costo:              p.Costo,
			Precio:             p.Precio,
			CantidadMinima:     p.StockMinimo,
			PreciosAdicionales: p.PreciosAdicionales,
			InfoAdicional:      p.InfoAdicional,
			Categoria:          p.Categoria,
			// A single cost is tracked per product, so the average
			// equals the current cost.
			CostoPromedio: p.Costo,
		})
	}

	data, err := json.MarshalIndent(filas, "", "  ")
	if err != nil {
		return "", nil, fmt.Errorf("exportar catálogo: %w", err)
	}

	nombre := fmt.Sprintf("catalogo_%s.json", time.Now().Format("2006-01-02"))
	return nombre, data, nil
}

// decodificarRegistros accepts either a single JSON object or an array.
func decodificarRegistros(contenido []byte) ([]map[string]interface{}, error) {
	var registros []map[string]interface{}
	if err := json.Unmarshal(contenido, &registros); err == nil {
		return registros, nil
	}
	var uno map[string]interface{}
	if err := json.Unmarshal(contenido, &uno); err != nil {
		return nil, err
	}
	return []map[string]interface{}{uno}, nil
}

// coercionarRegistro maps one raw record onto a Producto. A record is
// accepted only if it yields a non-empty name and a numeric price;
// everything else falls back to its default.
func coercionarRegistro(registro map[string]interface{}) (model.Producto, bool) {
	nombre, ok := leerTexto(registro, "nombre")
	if !ok || strings.TrimSpace(nombre) == "" {
		return model.Producto{}, false
	}
	precio, ok := leerNumero(registro, "precio")
	if !ok {
		return model.Producto{}, false
	}

	p := model.Producto{
		Nombre:      strings.TrimSpace(nombre),
		Precio:      precio,
		Categoria:   model.CategoriaPorDefecto,
		Unidad:      model.UnidadPorDefecto,
		StockMinimo: decimal.NewFromInt(5),
	}
	if costo, ok := leerNumero(registro, "costo"); ok {
		p.Costo = costo
	}
	if stock, ok := leerNumero(registro, "stock"); ok && !stock.IsNegative() {
		p.Stock = stock.Round(4)
	}
	if minimo, ok := leerNumero(registro, "stock_minimo"); ok && !minimo.IsNegative() {
		p.StockMinimo = minimo
	}
	if categoria, ok := leerTexto(registro, "categoria"); ok && strings.TrimSpace(categoria) != "" {
		p.Categoria = strings.TrimSpace(categoria)
	}
	if unidad, ok := leerTexto(registro, "unidad"); ok && strings.TrimSpace(unidad) != "" {
		p.Unidad = strings.TrimSpace(unidad)
	}
	if clave, ok := leerTexto(registro, "clave"); ok {
		p.Clave = clave
	}
	if info, ok := leerTexto(registro, "info_adicional"); ok {
		p.InfoAdicional = info
	}
	if precios, ok := leerTexto(registro, "precios_adicionales"); ok {
		p.PreciosAdicionales = precios
	}
	return p, true
}

func leerTexto(registro map[string]interface{}, campo string) (string, bool) {
	for _, alias := range camposImportacion[campo] {
		if v, ok := registro[alias]; ok {
			switch t := v.(type) {
			case string:
				return t, true
			case float64:
				return decimal.NewFromFloat(t).String(), true
			}
		}
	}
	return "", false
}

func leerNumero(registro map[string]interface{}, campo string) (decimal.Decimal, bool) {
	for _, alias := range camposImportacion[campo] {
		v, ok := registro[alias]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case float64:
			return decimal.NewFromFloat(t), true
		case string:
			limpio := strings.TrimSpace(strings.ReplaceAll(t, ",", "."))
			if d, err := decimal.NewFromString(limpio); err == nil {
				return d, true
			}
		}
	}
	return decimal.Zero, false
}
