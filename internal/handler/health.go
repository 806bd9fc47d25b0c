package handler

import (
	"net/http"

	"github.com/FN2184/tiny-business-manager/internal/infra"
	"github.com/FN2184/tiny-business-manager/internal/worker"

	"github.com/gin-gonic/gin"
)

// Health returns a JSON health check response.
// Reports the snapshot backend in use and the async job backlog; the
// circuit breaker state is included when the backend is remote.
func Health(store infra.SnapshotStore, dispatcher *worker.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := gin.H{
			"ok":       true,
			"backend":  store.Nombre(),
			"trabajos": dispatcher.Pendientes(),
		}
		if rs, ok := store.(*infra.RedisStore); ok {
			body["circuit_breaker"] = rs.Breaker().State().String()
		}
		c.JSON(http.StatusOK, body)
	}
}
