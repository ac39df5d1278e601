package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers the API documentation endpoints.
// - GET /swagger/index.html  -> Swagger UI page loading the document below
// - GET /swagger/doc.json    -> OpenAPI 3 document for the charadas routes
func RegisterSwagger(rg *gin.Engine) {
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
    <title>charadas-api - Swagger</title>
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
  "info": { "title": "charadas-api", "version": "v1.0.0" },
  "components": {
    "schemas": {
      "Charada": { "type": "object", "properties": { "id": {"type":"integer"}, "pergunta": {"type":"string"}, "resposta": {"type":"string"} } },
      "CharadaInput": { "type": "object", "required": ["pergunta","resposta"], "properties": { "pergunta": {"type":"string"}, "resposta": {"type":"string"} } },
      "Mensagem": { "type": "object", "properties": { "mensagem": {"type":"string"} } }
    }
  },
  "paths": {
    "/": { "get": { "summary": "Service banner", "responses": { "200": { "description": "CHARADAS API" } } } },
    "/charadas": {
      "get": { "summary": "Random charada", "responses": { "200": { "description": "one charada", "content": { "application/json": { "schema": {"$ref":"#/components/schemas/Charada"} } } }, "404": { "description": "no charadas stored" } } },
      "post": {
        "summary": "Create charada",
        "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/CharadaInput"} } } },
        "responses": { "201": { "description": "created" }, "400": { "description": "invalid data" } }
      }
    },
    "/charadas/{id}": {
      "parameters": [ { "name": "id", "in": "path", "required": true, "schema": {"type":"string"} } ],
      "get": { "summary": "Get charada by id", "responses": { "200": { "description": "charada" }, "404": { "description": "not found" } } },
      "put": {
        "summary": "Replace pergunta and resposta",
        "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/CharadaInput"} } } },
        "responses": { "201": { "description": "updated" }, "400": { "description": "invalid data" }, "404": { "description": "not found" } }
      },
      "delete": { "summary": "Delete charada", "responses": { "200": { "description": "deleted" }, "404": { "description": "not found" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "exposition format" } } } }
  }
}`
