// Package docs holds the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/expense_backend/main.go -o cmd/docs
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
        "/auth/token": {"post": {"tags": ["auth"], "summary": "Issue an access token"}},
        "/users": {
            "get": {"tags": ["users"], "summary": "List users", "security": [{"BearerAuth": []}]},
            "post": {"tags": ["users"], "summary": "Register a user"}
        },
        "/users/me": {"get": {"tags": ["users"], "summary": "Current user", "security": [{"BearerAuth": []}]}},
        "/accounts": {
            "get": {"tags": ["accounts"], "summary": "List accounts", "security": [{"BearerAuth": []}]},
            "post": {"tags": ["accounts"], "summary": "Create an account", "security": [{"BearerAuth": []}]}
        },
        "/accounts/{id}": {
            "get": {"tags": ["accounts"], "summary": "Get an account", "security": [{"BearerAuth": []}]},
            "delete": {"tags": ["accounts"], "summary": "Delete an account", "security": [{"BearerAuth": []}]}
        },
        "/transactions": {
            "get": {"tags": ["transactions"], "summary": "List transactions", "security": [{"BearerAuth": []}]},
            "post": {"tags": ["transactions"], "summary": "Record a transaction", "security": [{"BearerAuth": []}]}
        },
        "/transactions/filter": {"post": {"tags": ["transactions"], "summary": "Search transactions", "security": [{"BearerAuth": []}]}},
        "/transactions/{id}": {
            "get": {"tags": ["transactions"], "summary": "Get a transaction", "security": [{"BearerAuth": []}]},
            "delete": {"tags": ["transactions"], "summary": "Delete a transaction", "security": [{"BearerAuth": []}]}
        },
        "/transactions/{id}/status": {"put": {"tags": ["transactions"], "summary": "Change a transaction's status", "security": [{"BearerAuth": []}]}},
        "/balances": {"get": {"tags": ["reports"], "summary": "Aggregate balances", "security": [{"BearerAuth": []}]}},
        "/spending/category": {"get": {"tags": ["reports"], "summary": "Spending by category", "security": [{"BearerAuth": []}]}},
        "/spending/monthly": {"get": {"tags": ["reports"], "summary": "Monthly spending", "security": [{"BearerAuth": []}]}}
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

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Expense Manager API",
	Description:      "Personal finance ledger with running and aggregate balances.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
