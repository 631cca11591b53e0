package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the employee API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg gin.IRouter) {
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
    <title>employeedir — Swagger</title>
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
  "info": { "title": "employeedir", "version": "v0.1.0" },
  "components": {
    "schemas": {
      "Draft": { "type": "object", "properties": {
        "name": {"type":"string"}, "position": {"type":"string"}, "department": {"type":"string"},
        "email": {"type":"string"}, "phone": {"type":"string"} } },
      "Employee": { "allOf": [ {"$ref":"#/components/schemas/Draft"}, {"type":"object","properties":{"id":{"type":"integer"}}} ] },
      "Message": { "type": "object", "properties": { "message": {"type":"string"} } }
    }
  },
  "paths": {
    "/employees": {
      "get": { "summary": "List employees", "responses": { "200": { "description": "all employees", "content": { "application/json": { "schema": {"type":"array","items":{"$ref":"#/components/schemas/Employee"}}}}} } },
      "post": {
        "summary": "Create employee",
        "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/Draft"}}}},
        "responses": { "201": { "description": "created employee" }, "400": { "description": "malformed body" } }
      }
    },
    "/employees/{id}": {
      "parameters": [ { "name": "id", "in": "path", "required": true, "schema": {"type":"integer"} } ],
      "get": { "summary": "Get employee", "responses": { "200": { "description": "employee" }, "404": { "description": "Employee not found" } } },
      "put": {
        "summary": "Replace employee",
        "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/Draft"}}}},
        "responses": { "200": { "description": "updated employee" }, "400": { "description": "malformed body" }, "404": { "description": "Employee not found" } }
      },
      "delete": { "summary": "Delete employee", "responses": { "200": { "description": "deleted employee" }, "404": { "description": "Employee not found" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
