package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RegisterDocs(r *gin.Engine) {
	r.GET("/docs", func(c *gin.Context) {
		c.Header("Content-Type", "text/markdown; charset=utf-8")
		c.String(http.StatusOK, `# AlgoConfig Service

CRUD API for algorithm configuration records.

## Routes

- GET /health
- GET /configs
- GET /configs/:id
- POST /configs
- PUT /configs/:id
- DELETE /configs/:id

## Responses

- Success: {"data": ...} (list adds "count")
- Not found: 404 {"error": "Config not found."}
- Validation failure: 422 {"errors": {"field": "message"}}
- Unknown route: 404 {"error": "Route not found"}
`)
	})
}
