// Package docs registra la spec OpenAPI que sirve /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Registra una cuenta nueva e inicia sesión",
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Email ya registrado"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Inicia sesión con email y password",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Credenciales inválidas"}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["auth"],
                "summary": "Cierra la sesión activa",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["auth"],
                "summary": "Identidad del token actual",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/pets": {
            "post": {
                "tags": ["pets"],
                "summary": "Registra una mascota propia",
                "responses": {"201": {"description": "Created"}}
            },
            "get": {
                "tags": ["pets"],
                "summary": "Lista las mascotas propias",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/pets/{petID}": {
            "get": {
                "tags": ["pets"],
                "summary": "Perfil de una mascota (owner o admin)",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/appointments": {
            "post": {
                "tags": ["appointments"],
                "summary": "Agenda una cita (siempre nace scheduled)",
                "responses": {"201": {"description": "Created"}}
            },
            "get": {
                "tags": ["appointments"],
                "summary": "Lista las citas propias",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/appointments/{appointmentID}/complete": {
            "post": {
                "tags": ["appointments"],
                "summary": "Marca la cita como completada (admin)",
                "responses": {
                    "200": {"description": "OK"},
                    "409": {"description": "Estado terminal"}
                }
            }
        },
        "/appointments/{appointmentID}/cancel": {
            "post": {
                "tags": ["appointments"],
                "summary": "Cancela la cita (admin)",
                "responses": {
                    "200": {"description": "OK"},
                    "409": {"description": "Estado terminal"}
                }
            }
        },
        "/admin/appointments": {
            "get": {
                "tags": ["admin"],
                "summary": "Lista citas con filtro por status y búsqueda",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/users": {
            "get": {
                "tags": ["admin"],
                "summary": "Lista clientes (excluye admins)",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/users/{userID}": {
            "get": {
                "tags": ["admin"],
                "summary": "Ficha de cliente: usuario, mascotas y citas",
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Vet Clinic Portal API",
	Description:      "Portal de clientes de la clínica veterinaria: cuentas, mascotas y citas.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
