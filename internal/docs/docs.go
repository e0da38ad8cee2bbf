// Package docs registra el documento OpenAPI del backend de adopciones.
// Se regenera a partir de los godoc de los handlers con:
//
//	swag init -g cmd/api/main.go -o internal/docs --parseInternal
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
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Iniciar sesión",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/sessions.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/sessions.loginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}},
                    "401": {"description": "INVALID_CREDENTIALS", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["auth"],
                "summary": "Cerrar sesión",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpx.MessageBody"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["auth"],
                "summary": "Usuario actual",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/sessions.meResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            }
        },
        "/pets": {
            "get": {
                "tags": ["pets"],
                "summary": "Catálogo público de mascotas",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/pets.PetResponse"}}}
                }
            },
            "post": {
                "tags": ["pets"],
                "summary": "Registrar mascota",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/pets.createPetRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/pets.PetResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            }
        },
        "/pets/all": {
            "get": {
                "tags": ["pets"],
                "summary": "Todas las mascotas (incluye adoptadas)",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/pets.PetResponse"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            }
        },
        "/pets/{petID}": {
            "get": {
                "tags": ["pets"],
                "summary": "Detalle de mascota",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "petID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.PetResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            },
            "patch": {
                "tags": ["pets"],
                "summary": "Editar mascota",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "petID", "in": "path", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/pets.createPetRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.PetResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            },
            "delete": {
                "tags": ["pets"],
                "summary": "Borrar mascota",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "petID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpx.MessageBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            }
        },
        "/applications": {
            "get": {
                "tags": ["applications"],
                "summary": "Listar solicitudes",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "petId", "in": "query"},
                    {"enum": ["pending", "approved", "rejected"], "type": "string", "name": "status", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/applications.ApplicationResponse"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            },
            "post": {
                "tags": ["applications"],
                "summary": "Enviar solicitud de adopción",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/applications.submitApplicationRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/applications.ApplicationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            }
        },
        "/applications/{applicationID}": {
            "get": {
                "tags": ["applications"],
                "summary": "Detalle de solicitud",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "applicationID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/applications.ApplicationResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            }
        },
        "/applications/{applicationID}/status": {
            "patch": {
                "tags": ["applications"],
                "summary": "Aprobar o rechazar solicitud",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "applicationID", "in": "path", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/applications.updateStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/applications.ApplicationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            }
        },
        "/applications/{applicationID}/approve": {
            "post": {
                "tags": ["adoptions"],
                "summary": "Aprobar solicitud y registrar la adopción",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "applicationID", "in": "path", "required": true},
                    {"name": "payload", "in": "body", "schema": {"$ref": "#/definitions/adoptions.approveRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/adoptions.AdoptionResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            }
        },
        "/adoptions": {
            "get": {
                "tags": ["adoptions"],
                "summary": "Listar adopciones",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/adoptions.AdoptionResponse"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            },
            "post": {
                "tags": ["adoptions"],
                "summary": "Registrar adopción",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/adoptions.recordAdoptionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/adoptions.AdoptionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            }
        },
        "/stats": {
            "get": {
                "tags": ["stats"],
                "summary": "Indicadores del panel",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/stats.StatsResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            }
        },
        "/staff/users": {
            "get": {
                "tags": ["staff"],
                "summary": "Listar usuarios del staff (admin)",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/staff.StaffUserResponse"}}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            },
            "post": {
                "tags": ["staff"],
                "summary": "Crear usuario del staff (admin)",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/staff.createStaffRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/staff.StaffUserResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            }
        },
        "/staff/users/{userID}": {
            "patch": {
                "tags": ["staff"],
                "summary": "Editar usuario del staff (admin)",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "userID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/staff.StaffUserResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            }
        },
        "/staff/users/{userID}/deactivate": {
            "post": {
                "tags": ["staff"],
                "summary": "Desactivar usuario del staff (admin)",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "userID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/staff.StaffUserResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}},
                    "409": {"description": "la propia cuenta", "schema": {"$ref": "#/definitions/httpx.ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "httpx.ErrorBody": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "errors": {"type": "object", "additionalProperties": {"type": "string"}},
                "message": {"type": "string"}
            }
        },
        "httpx.MessageBody": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "auth.Identity": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "fullName": {"type": "string"},
                "id": {"type": "string"},
                "role": {"type": "string", "enum": ["admin", "staff"]},
                "username": {"type": "string"}
            }
        },
        "sessions.loginRequest": {
            "type": "object",
            "properties": {"password": {"type": "string"}, "username": {"type": "string"}}
        },
        "sessions.loginResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "user": {"$ref": "#/definitions/auth.Identity"}}
        },
        "sessions.meResponse": {
            "type": "object",
            "properties": {"user": {"$ref": "#/definitions/auth.Identity"}}
        },
        "pets.createPetRequest": {
            "type": "object",
            "properties": {
                "age": {"type": "string"},
                "breed": {"type": "string"},
                "description": {"type": "string"},
                "gender": {"type": "string", "enum": ["male", "female"]},
                "healthStatus": {"type": "array", "items": {"type": "string"}},
                "imageUrl": {"type": "string"},
                "name": {"type": "string"},
                "species": {"type": "string", "enum": ["dog", "cat", "rabbit", "other"]},
                "weight": {"type": "string"}
            }
        },
        "pets.PetResponse": {
            "type": "object",
            "properties": {
                "age": {"type": "string"},
                "breed": {"type": "string"},
                "createdAt": {"type": "string"},
                "description": {"type": "string"},
                "gender": {"type": "string"},
                "healthStatus": {"type": "array", "items": {"type": "string"}},
                "id": {"type": "string"},
                "imageUrl": {"type": "string"},
                "isAdopted": {"type": "boolean"},
                "name": {"type": "string"},
                "species": {"type": "string"},
                "weight": {"type": "string"}
            }
        },
        "applications.submitApplicationRequest": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "age": {"type": "integer", "minimum": 18},
                "email": {"type": "string"},
                "experience": {"type": "string"},
                "fullName": {"type": "string"},
                "livingCondition": {"type": "string", "enum": ["apartment", "house", "house-with-yard"]},
                "petId": {"type": "string"},
                "phoneNumber": {"type": "string"},
                "reason": {"type": "string"}
            }
        },
        "applications.updateStatusRequest": {
            "type": "object",
            "properties": {"status": {"type": "string", "enum": ["pending", "approved", "rejected"]}}
        },
        "applications.ApplicationResponse": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "age": {"type": "integer"},
                "createdAt": {"type": "string"},
                "email": {"type": "string"},
                "experience": {"type": "string"},
                "fullName": {"type": "string"},
                "id": {"type": "string"},
                "livingCondition": {"type": "string"},
                "petId": {"type": "string"},
                "phoneNumber": {"type": "string"},
                "reason": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "adoptions.recordAdoptionRequest": {
            "type": "object",
            "properties": {
                "adoptedBy": {"type": "string"},
                "applicationId": {"type": "string"},
                "petId": {"type": "string"},
                "story": {"type": "string"}
            }
        },
        "adoptions.approveRequest": {
            "type": "object",
            "properties": {"story": {"type": "string"}}
        },
        "adoptions.AdoptionResponse": {
            "type": "object",
            "properties": {
                "adoptedBy": {"type": "string"},
                "adoptionDate": {"type": "string"},
                "applicationId": {"type": "string"},
                "id": {"type": "string"},
                "petId": {"type": "string"},
                "story": {"type": "string"}
            }
        },
        "stats.StatsResponse": {
            "type": "object",
            "properties": {
                "activePets": {"type": "integer"},
                "currentPets": {"type": "integer"},
                "happyFamilies": {"type": "integer"},
                "monthlyAdoptions": {"type": "integer"},
                "pendingApplications": {"type": "integer"},
                "pendingPets": {"type": "integer"},
                "todayApplications": {"type": "integer"},
                "totalAdopted": {"type": "integer"}
            }
        },
        "staff.createStaffRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "fullName": {"type": "string"},
                "password": {"type": "string", "minLength": 6, "maxLength": 72},
                "role": {"type": "string", "enum": ["admin", "staff"]},
                "username": {"type": "string"}
            }
        },
        "staff.StaffUserResponse": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "email": {"type": "string"},
                "fullName": {"type": "string"},
                "id": {"type": "string"},
                "isActive": {"type": "boolean"},
                "lastLoginAt": {"type": "string"},
                "role": {"type": "string"},
                "updatedAt": {"type": "string"},
                "username": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Pet Adoption API",
	Description:      "Catálogo público de mascotas, solicitudes de adopción y panel del staff.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
