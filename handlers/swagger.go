package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the robot store.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg gin.IRoutes) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>robot-store Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "robot-store", "version": "v1.0.0" },
  "components": {
    "schemas": {
      "Envelope": { "type": "object", "properties": { "message": { "type": "string" }, "data": {} } }
    }
  },
  "paths": {
    "/products": {
      "get": {
        "summary": "List products, optionally filtered by category and character",
        "parameters": [
          { "name": "categories", "in": "query", "schema": { "type": "string" }, "description": "comma-separated categories" },
          { "name": "characters", "in": "query", "schema": { "type": "string" }, "description": "comma-separated characters" }
        ],
        "responses": {
          "200": { "description": "Successfully found products." },
          "400": { "description": "Unknown category / Unknown character" },
          "500": { "description": "Unexpected error" }
        }
      },
      "post": {
        "summary": "Create a product",
        "requestBody": { "content": { "application/json": { "schema": { "type": "object" } } } },
        "responses": {
          "201": { "description": "Successfully created product.", "headers": { "Location": { "schema": { "type": "string" } } } },
          "400": { "description": "Invalid product data" },
          "500": { "description": "Unexpected error" }
        }
      }
    },
    "/products/{id}": {
      "get": {
        "summary": "Get one product by id",
        "parameters": [ { "name": "id", "in": "path", "required": true, "schema": { "type": "string" } } ],
        "responses": {
          "200": { "description": "Successfully found product." },
          "400": { "description": "Invalid product ID" },
          "404": { "description": "Unknown product ID" },
          "500": { "description": "Unexpected error" }
        }
      }
    },
    "/categories": {
      "get": { "summary": "Distinct product categories", "responses": { "200": { "description": "Successfully found categories." }, "500": { "description": "Unexpected error" } } }
    },
    "/characters": {
      "get": { "summary": "Distinct product characters", "responses": { "200": { "description": "Successfully found characters." }, "500": { "description": "Unexpected error" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "metrics" } } } }
  }
}`
