// Package docs registers the CardFlow API description served under /swagger.
// It is maintained by hand alongside internal/server's route table.
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
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Report API and database health",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/auth/register": {
            "post": {
                "tags": ["Auth"],
                "summary": "Create an account and return a token",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Exchange credentials for a token",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Auth"],
                "summary": "Current user",
                "responses": {"200": {"description": "OK"}},
                "security": [{"BearerAuth": []}]
            }
        },
        "/workspaces": {
            "get": {
                "tags": ["Workspaces"],
                "summary": "List the caller's workspaces",
                "responses": {"200": {"description": "OK"}},
                "security": [{"BearerAuth": []}]
            },
            "post": {
                "tags": ["Workspaces"],
                "summary": "Create a workspace",
                "responses": {"200": {"description": "OK"}},
                "security": [{"BearerAuth": []}]
            }
        },
        "/workspaces/{id}": {
            "get": {
                "tags": ["Workspaces"],
                "summary": "Get a workspace",
                "responses": {"200": {"description": "OK"}},
                "security": [{"BearerAuth": []}]
            },
            "put": {
                "tags": ["Workspaces"],
                "summary": "Update a workspace",
                "responses": {"200": {"description": "OK"}},
                "security": [{"BearerAuth": []}]
            },
            "delete": {
                "tags": ["Workspaces"],
                "summary": "Delete a workspace with its boards, cards and links",
                "responses": {"200": {"description": "OK"}},
                "security": [{"BearerAuth": []}]
            }
        },
        "/boards": {
            "get": {
                "tags": ["Boards"],
                "summary": "List boards, optionally by workspace_id",
                "responses": {"200": {"description": "OK"}},
                "security": [{"BearerAuth": []}]
            },
            "post": {
                "tags": ["Boards"],
                "summary": "Create a board",
                "responses": {"200": {"description": "OK"}},
                "security": [{"BearerAuth": []}]
            }
        },
        "/boards/{id}": {
            "get": {
                "tags": ["Boards"],
                "summary": "Get a board",
                "responses": {"200": {"description": "OK"}},
                "security": [{"BearerAuth": []}]
            },
            "put": {
                "tags": ["Boards"],
                "summary": "Update a board",
                "responses": {"200": {"description": "OK"}},
                "security": [{"BearerAuth": []}]
            },
            "delete": {
                "tags": ["Boards"],
                "summary": "Delete a board with its cards and links",
                "responses": {"200": {"description": "OK"}},
                "security": [{"BearerAuth": []}]
            }
        },
        "/boards/{id}/kanban": {
            "get": {
                "tags": ["Boards"],
                "summary": "Board cards grouped into status columns",
                "responses": {"200": {"description": "OK"}},
                "security": [{"BearerAuth": []}]
            }
        },
        "/cards": {
            "get": {
                "tags": ["Cards"],
                "summary": "List the cards of board_id",
                "responses": {"200": {"description": "OK"}},
                "security": [{"BearerAuth": []}]
            },
            "post": {
                "tags": ["Cards"],
                "summary": "Create a card",
                "responses": {"200": {"description": "OK"}},
                "security": [{"BearerAuth": []}]
            }
        },
        "/cards/{id}": {
            "get": {
                "tags": ["Cards"],
                "summary": "Get a card",
                "responses": {"200": {"description": "OK"}},
                "security": [{"BearerAuth": []}]
            },
            "put": {
                "tags": ["Cards"],
                "summary": "Update a card",
                "responses": {"200": {"description": "OK"}},
                "security": [{"BearerAuth": []}]
            },
            "delete": {
                "tags": ["Cards"],
                "summary": "Delete a card and its links",
                "responses": {"200": {"description": "OK"}},
                "security": [{"BearerAuth": []}]
            }
        },
        "/links": {
            "get": {
                "tags": ["Links"],
                "summary": "List the links of board_id",
                "responses": {"200": {"description": "OK"}},
                "security": [{"BearerAuth": []}]
            },
            "post": {
                "tags": ["Links"],
                "summary": "Link two cards",
                "responses": {"200": {"description": "OK"}},
                "security": [{"BearerAuth": []}]
            }
        },
        "/links/{id}": {
            "put": {
                "tags": ["Links"],
                "summary": "Update a link",
                "responses": {"200": {"description": "OK"}},
                "security": [{"BearerAuth": []}]
            },
            "delete": {
                "tags": ["Links"],
                "summary": "Delete a link",
                "responses": {"200": {"description": "OK"}},
                "security": [{"BearerAuth": []}]
            }
        },
        "/search": {
            "get": {
                "tags": ["Search"],
                "summary": "Search the caller's cards by q",
                "responses": {"200": {"description": "OK"}},
                "security": [{"BearerAuth": []}]
            }
        },
        "/export/{board_id}": {
            "get": {
                "tags": ["Transfer"],
                "summary": "Export a board document",
                "responses": {"200": {"description": "OK"}},
                "security": [{"BearerAuth": []}]
            }
        },
        "/import": {
            "post": {
                "tags": ["Transfer"],
                "summary": "Import a board document into workspace_id",
                "responses": {"200": {"description": "OK"}},
                "security": [{"BearerAuth": []}]
            }
        },
        "/settings/{key}": {
            "get": {
                "tags": ["Settings"],
                "summary": "Read a setting",
                "responses": {"200": {"description": "OK"}},
                "security": [{"BearerAuth": []}]
            },
            "put": {
                "tags": ["Settings"],
                "summary": "Write a setting",
                "responses": {"200": {"description": "OK"}},
                "security": [{"BearerAuth": []}]
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds the API metadata. Host and schemes may be changed at start up.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "CardFlow API",
	Description:      "Workspaces, boards, cards and typed links between cards.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
