package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/FN2184/tiny-business-manager/internal/apierror"
	"github.com/FN2184/tiny-business-manager/internal/model"
	"github.com/FN2184/tiny-business-manager/internal/moneda"
	"github.com/FN2184/tiny-business-manager/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondError translates domain errors into the HTTP status they deserve.
// Anything unrecognized goes through c.Error so the ErrorHandler middleware
// logs it and answers 500 without leaking internals.
func respondError(c *gin.Context, err error) {
	var stockErr *model.StockInsuficienteError
	var pagoErr *model.PagoInsuficienteError

	switch {
	case errors.Is(err, model.ErrProductoNoEncontrado),
		errors.Is(err, model.ErrClienteNoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.As(err, &stockErr):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
	case errors.Is(err, service.ErrCredencialesInvalidas):
		c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
	case errors.As(err, &pagoErr),
		errors.Is(err, model.ErrCarritoVacio),
		errors.Is(err, model.ErrClienteRequerido),
		errors.Is(err, model.ErrMontoInvalido),
		errors.Is(err, model.ErrStockInvalido),
		errors.Is(err, model.ErrMetodoPagoInvalido),
		errors.Is(err, model.ErrNombreRequerido),
		errors.Is(err, model.ErrCategoriaVacia),
		errors.Is(err, model.ErrArchivoVacio),
		errors.Is(err, model.ErrSinRegistrosValidos),
		errors.Is(err, moneda.ErrTasaInvalida),
		errors.Is(err, moneda.ErrCantidadInvalida):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	default:
		_ = c.Error(err)
	}
}
