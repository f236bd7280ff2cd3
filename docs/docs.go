// Package docs holds the generated swagger specification.
// Code generated by swag init; edits belong in the handler annotations.
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
                "summary": "Register a new user",
                "responses": {
                    "201": {"description": "User registered"},
                    "400": {"description": "Invalid or duplicate registration data"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in",
                "responses": {
                    "200": {"description": "Signed token"},
                    "400": {"description": "Incorrect credentials"}
                }
            }
        },
        "/projects/": {
            "get": {
                "tags": ["projects"],
                "summary": "List projects",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "Projects"}}
            }
        },
        "/projects/create": {
            "post": {
                "tags": ["projects"],
                "summary": "Create a project",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Created project"},
                    "400": {"description": "Invalid or duplicate project data"}
                }
            }
        },
        "/projects/{id}": {
            "get": {
                "tags": ["projects"],
                "summary": "Get a project",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "Project"},
                    "403": {"description": "Owned by another user"},
                    "404": {"description": "Project not found"}
                }
            }
        },
        "/projects/{id}/update": {
            "put": {
                "tags": ["projects"],
                "summary": "Update a project",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "Updated project"},
                    "400": {"description": "Nothing to update or invalid data"},
                    "403": {"description": "Owned by another user"},
                    "404": {"description": "Project not found"}
                }
            }
        },
        "/projects/{id}/delete": {
            "delete": {
                "tags": ["projects"],
                "summary": "Delete a project",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "Project deleted"},
                    "403": {"description": "Owned by another user"},
                    "404": {"description": "Project not found"}
                }
            }
        },
        "/charges/": {
            "get": {
                "tags": ["charges"],
                "summary": "List charges",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Charges"},
                    "400": {"description": "Invalid date range"}
                }
            }
        },
        "/charges/create": {
            "post": {
                "tags": ["charges"],
                "summary": "Create charges",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "Inserted charges"},
                    "400": {"description": "Invalid charge data or occupied slot"},
                    "403": {"description": "Project owned by another user"},
                    "404": {"description": "Referenced project not found"}
                }
            }
        },
        "/charges/update": {
            "put": {
                "tags": ["charges"],
                "summary": "Update charges",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Updated charges"},
                    "400": {"description": "Invalid update data"},
                    "403": {"description": "Charge owned by another user"},
                    "404": {"description": "Charge not found"}
                }
            }
        },
        "/charges/delete": {
            "delete": {
                "tags": ["charges"],
                "summary": "Delete charges",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "Deletion count"},
                    "400": {"description": "No charges provided"},
                    "403": {"description": "Charge owned by another user"},
                    "404": {"description": "Charge not found"}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "TRS API",
	Description:      "Time recording service: users, projects and hourly charges.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
