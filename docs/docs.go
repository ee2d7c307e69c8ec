// Package docs holds the OpenAPI document served on /swagger/*. Regenerate it
// from the handler annotations with `go generate ./cmd/server`.
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["projects"],
                "summary": "Approved projects",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.listPage"}}
                }
            }
        },
        "/browse": {
            "get": {
                "produces": ["application/json"],
                "tags": ["projects"],
                "summary": "Search approved projects",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive search text", "name": "q", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.listPage"}}
                }
            }
        },
        "/register": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Registration page",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.page"}}
                }
            },
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "tags": ["auth"],
                "summary": "Register a new student",
                "parameters": [
                    {"type": "string", "description": "Username", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "description": "Password", "name": "password", "in": "formData", "required": true}
                ],
                "responses": {
                    "302": {"description": "Found"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/login": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login page",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.page"}}
                }
            },
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"type": "string", "description": "Username", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "description": "Password", "name": "password", "in": "formData", "required": true}
                ],
                "responses": {
                    "302": {"description": "Found"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/logout": {
            "get": {
                "tags": ["auth"],
                "summary": "Logout",
                "responses": {"302": {"description": "Found"}}
            }
        },
        "/upload": {
            "get": {
                "produces": ["application/json"],
                "tags": ["projects"],
                "summary": "Upload page",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.page"}},
                    "302": {"description": "anonymous visitors are sent to /login"}
                }
            },
            "post": {
                "consumes": ["multipart/form-data"],
                "tags": ["projects"],
                "summary": "Upload a project",
                "parameters": [
                    {"type": "string", "description": "Title", "name": "title", "in": "formData", "required": true},
                    {"type": "string", "description": "Description", "name": "description", "in": "formData"},
                    {"type": "file", "description": "Project file (pdf, doc, docx, png, jpg, jpeg, gif)", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "302": {"description": "Found"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/project/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["projects"],
                "summary": "Project detail",
                "parameters": [
                    {"type": "integer", "description": "Project ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.projectPage"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/edit/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["projects"],
                "summary": "Edit page",
                "parameters": [
                    {"type": "integer", "description": "Project ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.projectPage"}}
                }
            },
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "tags": ["projects"],
                "summary": "Edit a project",
                "parameters": [
                    {"type": "integer", "description": "Project ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Title", "name": "title", "in": "formData", "required": true},
                    {"type": "string", "description": "Description", "name": "description", "in": "formData"}
                ],
                "responses": {"302": {"description": "Found"}}
            }
        },
        "/delete/{id}": {
            "post": {
                "tags": ["projects"],
                "summary": "Delete a project",
                "parameters": [
                    {"type": "integer", "description": "Project ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"302": {"description": "Found"}}
            }
        },
        "/uploads/{filename}": {
            "get": {
                "tags": ["projects"],
                "summary": "Download an uploaded file",
                "parameters": [
                    {"type": "string", "description": "Stored file name", "name": "filename", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/admin": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Moderation dashboard",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.listPage"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/approve/{id}": {
            "get": {
                "tags": ["admin"],
                "summary": "Approve a project",
                "parameters": [
                    {"type": "integer", "description": "Project ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "302": {"description": "Found"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handler.userResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "username": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "handler.projectLinks": {
            "type": "object",
            "properties": {
                "self": {"type": "string"},
                "file": {"type": "string"}
            }
        },
        "handler.projectResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "file": {"type": "string"},
                "status": {"type": "string", "enum": ["pending", "approved"]},
                "owner_id": {"type": "integer"},
                "owner_name": {"type": "string"},
                "_links": {"$ref": "#/definitions/handler.projectLinks"}
            }
        },
        "handler.page": {
            "type": "object",
            "properties": {
                "view": {"type": "string"},
                "flashes": {"type": "array", "items": {"type": "string"}},
                "user": {"$ref": "#/definitions/handler.userResponse"}
            }
        },
        "handler.listPage": {
            "type": "object",
            "properties": {
                "view": {"type": "string"},
                "flashes": {"type": "array", "items": {"type": "string"}},
                "user": {"$ref": "#/definitions/handler.userResponse"},
                "projects": {"type": "array", "items": {"$ref": "#/definitions/handler.projectResponse"}},
                "query": {"type": "string"}
            }
        },
        "handler.projectPage": {
            "type": "object",
            "properties": {
                "view": {"type": "string"},
                "flashes": {"type": "array", "items": {"type": "string"}},
                "user": {"$ref": "#/definitions/handler.userResponse"},
                "project": {"$ref": "#/definitions/handler.projectResponse"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Project Showcase",
	Description:      "Students upload projects, admins moderate them, visitors browse approved work.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
