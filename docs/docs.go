// Package docs registers the OpenAPI document served under /swagger/.
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
        "/": {"get": {"tags": ["meta"], "summary": "Greeting", "responses": {"200": {"description": "OK"}}}},
        "/add": {"get": {"tags": ["meta"], "summary": "Add two integers",
            "parameters": [
                {"type": "integer", "name": "a", "in": "query", "required": true},
                {"type": "integer", "name": "b", "in": "query", "required": true}
            ],
            "responses": {"200": {"description": "OK"}, "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}}}},
        "/articles": {
            "get": {"tags": ["articles"], "summary": "List articles",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Article"}}}}},
            "post": {"tags": ["articles"], "summary": "Create an article",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CreateArticleRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Article"}}, "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}}}
        },
        "/articles/preview": {"post": {"tags": ["articles"], "summary": "Sanitised body preview",
            "responses": {"200": {"description": "OK"}}}},
        "/articles/{id}": {
            "get": {"tags": ["articles"], "summary": "Get an article",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Article"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}}},
            "patch": {"tags": ["articles"], "summary": "Merge fields into an article",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Article"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}}},
            "delete": {"tags": ["articles"], "summary": "Delete an article",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.DeleteResult"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}}}
        },
        "/comments": {
            "get": {"tags": ["comments"], "summary": "List comments",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Comment"}}}}},
            "post": {"tags": ["comments"], "summary": "Comment on an article",
                "parameters": [
                    {"type": "integer", "name": "articleId", "in": "query", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CreateCommentRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Comment"}}, "404": {"description": "parent article missing", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}}}
        },
        "/comments/{id}": {
            "get": {"tags": ["comments"], "summary": "Get a comment",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Comment"}}}},
            "patch": {"tags": ["comments"], "summary": "Merge fields into a comment",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Comment"}}}},
            "delete": {"tags": ["comments"], "summary": "Delete a comment",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.DeleteResult"}}}}
        },
        "/login": {"post": {"tags": ["auth"], "summary": "Check credentials",
            "parameters": [
                {"type": "string", "name": "username", "in": "query", "required": true},
                {"type": "string", "name": "password", "in": "query", "required": true}
            ],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.User"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}}}},
        "/users/{id}": {"get": {"tags": ["users"], "summary": "Get a user",
            "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.User"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}}}}
    },
    "definitions": {
        "helpers.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "models.Article": {"type": "object", "properties": {
            "id": {"type": "integer"}, "author": {"type": "string"}, "title": {"type": "string"},
            "body": {"type": "string", "x-nullable": true}, "createdAt": {"type": "string"}}},
        "models.CreateArticleRequest": {"type": "object", "required": ["author", "title"], "properties": {
            "author": {"type": "string"}, "title": {"type": "string"}, "body": {"type": "string"}}},
        "models.Comment": {"type": "object", "properties": {
            "id": {"type": "integer"}, "articleId": {"type": "integer"}, "author": {"type": "string"},
            "body": {"type": "string", "x-nullable": true}, "createdAt": {"type": "string"}}},
        "models.CreateCommentRequest": {"type": "object", "required": ["author"], "properties": {
            "author": {"type": "string"}, "body": {"type": "string"}}},
        "models.DeleteResult": {"type": "object", "properties": {"deleted": {"type": "boolean"}}},
        "models.User": {"type": "object", "properties": {
            "id": {"type": "integer"}, "username": {"type": "string"}, "password": {"type": "string"},
            "role": {"type": "string", "enum": ["admin", "user"]}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "MyBlog API",
	Description:      "Articles, comments and users.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
