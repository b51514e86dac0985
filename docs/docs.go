// Package docs registers the OpenAPI document served by /swagger.
// Mirrors the handler annotations; swag init -g cmd/server/main.go rebuilds it.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/health": {
            "get": {"tags": ["health"], "summary": "Estado del servicio", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Envelope"}},
                              "503": {"description": "Base de datos no disponible", "schema": {"$ref": "#/definitions/dto.Envelope"}}}}
        },
        "/api/auth/register": {
            "post": {"tags": ["auth"], "summary": "Registrar persona", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CrearPersonaRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.Envelope"}},
                              "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.Envelope"}},
                              "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.Envelope"}}}}
        },
        "/api/auth/login": {
            "post": {"tags": ["auth"], "summary": "Login de persona", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Envelope"}},
                              "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.Envelope"}}}}
        },
        "/api/auth/verify": {
            "post": {"tags": ["auth"], "summary": "Verificar credenciales", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Envelope"}},
                              "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.Envelope"}}}}
        },
        "/api/auth/users": {
            "get": {"tags": ["auth"], "summary": "Listar usuarios", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Envelope"}}}}
        },
        "/api/personas": {
            "get": {"tags": ["personas"], "summary": "Listar personas", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "search", "in": "query"},
                               {"type": "integer", "name": "page", "in": "query"},
                               {"type": "integer", "name": "limit", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Envelope"}}}},
            "post": {"tags": ["personas"], "summary": "Crear persona", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CrearPersonaRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.Envelope"}},
                              "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.Envelope"}},
                              "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.Envelope"}}}}
        },
        "/api/personas/search": {
            "get": {"tags": ["personas"], "summary": "Buscar por nombre o apellido", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "term", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Envelope"}},
                              "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.Envelope"}}}}
        },
        "/api/personas/stats": {
            "get": {"tags": ["personas"], "summary": "Estadísticas de personas", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Envelope"}}}}
        },
        "/api/personas/role/{role}": {
            "get": {"tags": ["personas"], "summary": "Personas por rol", "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "role", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Envelope"}}}}
        },
        "/api/personas/{id}": {
            "get": {"tags": ["personas"], "summary": "Obtener persona", "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Envelope"}},
                              "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.Envelope"}}}},
            "put": {"tags": ["personas"], "summary": "Actualizar persona", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true},
                               {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ActualizarPersonaRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Envelope"}},
                              "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.Envelope"}},
                              "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.Envelope"}}}},
            "delete": {"tags": ["personas"], "summary": "Eliminar persona", "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Envelope"}},
                              "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.Envelope"}}}}
        },
        "/api/roles": {
            "get": {"tags": ["roles"], "summary": "Listar roles", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Envelope"}}}},
            "post": {"tags": ["roles"], "summary": "Crear rol", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CrearRolRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.Envelope"}},
                              "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.Envelope"}}}}
        },
        "/api/roles/stats": {
            "get": {"tags": ["roles"], "summary": "Estadísticas de roles", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Envelope"}}}}
        },
        "/api/roles/{id}": {
            "get": {"tags": ["roles"], "summary": "Obtener rol", "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Envelope"}},
                              "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.Envelope"}}}},
            "put": {"tags": ["roles"], "summary": "Actualizar rol", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true},
                               {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ActualizarRolRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Envelope"}},
                              "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.Envelope"}},
                              "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.Envelope"}}}},
            "delete": {"tags": ["roles"], "summary": "Eliminar rol", "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Envelope"}},
                              "400": {"description": "Rol en uso", "schema": {"$ref": "#/definitions/dto.Envelope"}},
                              "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.Envelope"}}}}
        }
    },
    "definitions": {
        "dto.Envelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {},
                "error": {"type": "string"}
            }
        },
        "dto.CrearPersonaRequest": {
            "type": "object",
            "required": ["nombre", "apellido", "correo", "contraseña", "rol_id"],
            "properties": {
                "nombre": {"type": "string", "minLength": 2, "maxLength": 100},
                "apellido": {"type": "string", "minLength": 2, "maxLength": 100},
                "correo": {"type": "string", "maxLength": 100},
                "contraseña": {"type": "string", "minLength": 6, "maxLength": 255},
                "rol_id": {"type": "integer"},
                "telefono": {"type": "string", "maxLength": 20},
                "fecha_nacimiento": {"type": "string", "example": "1990-05-17"},
                "direccion": {"type": "string", "maxLength": 500}
            }
        },
        "dto.ActualizarPersonaRequest": {
            "type": "object",
            "properties": {
                "nombre": {"type": "string", "minLength": 2, "maxLength": 100},
                "apellido": {"type": "string", "minLength": 2, "maxLength": 100},
                "correo": {"type": "string", "maxLength": 100},
                "contraseña": {"type": "string", "minLength": 6, "maxLength": 255},
                "rol_id": {"type": "integer"},
                "telefono": {"type": "string", "maxLength": 20},
                "fecha_nacimiento": {"type": "string"},
                "direccion": {"type": "string", "maxLength": 500}
            }
        },
        "dto.CrearRolRequest": {
            "type": "object",
            "required": ["nombre"],
            "properties": {"nombre": {"type": "string", "minLength": 2, "maxLength": 50}}
        },
        "dto.ActualizarRolRequest": {
            "type": "object",
            "required": ["nombre"],
            "properties": {"nombre": {"type": "string", "minLength": 2, "maxLength": 50}}
        },
        "dto.LoginRequest": {
            "type": "object",
            "required": ["correo", "contraseña"],
            "properties": {
                "correo": {"type": "string"},
                "contraseña": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "API de Gestión de Personas",
	Description:      "CRUD de personas y roles con autenticación de demostración.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
