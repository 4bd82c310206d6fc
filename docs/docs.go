// Package docs registra el documento OpenAPI servido en /api-docs.
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
        "/personalities": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Personalities"],
                "summary": "Get available personalities",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/http.personalitiesResponse"}
                    }
                }
            }
        },
        "/profiles": {
            "get": {
                "produces": ["text/html"],
                "tags": ["Profiles"],
                "summary": "Render the first profile, seeding one if the store is empty",
                "responses": {
                    "200": {"description": "Profile rendered as HTML", "schema": {"type": "string"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Profiles"],
                "summary": "Create a new profile",
                "parameters": [
                    {
                        "description": "Profile data",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.createProfileRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Profile"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/profiles/{id}": {
            "get": {
                "produces": ["text/html"],
                "tags": ["Profiles"],
                "summary": "Get profile by ID",
                "parameters": [
                    {"type": "string", "description": "Profile ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Profile rendered as HTML", "schema": {"type": "string"}},
                    "404": {"description": "Profile not found", "schema": {"type": "string"}}
                }
            }
        },
        "/api/profiles/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Profiles"],
                "summary": "Get profile by ID as JSON",
                "parameters": [
                    {"type": "string", "description": "Profile ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Profile"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/profiles/{id}/comments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Profile Comments"],
                "summary": "Get comments of a profile",
                "parameters": [
                    {"type": "string", "description": "Profile ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Personality system to filter by (mbti, enneagram, zodiac)", "name": "filter", "in": "query"},
                    {"type": "string", "description": "Sort order (recent, best)", "name": "sort", "in": "query"},
                    {"type": "integer", "description": "Page size (1-100)", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "Items to skip", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Comment"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Profile Comments"],
                "summary": "Create a comment (with optional personality votes) for a profile",
                "parameters": [
                    {"type": "string", "description": "Profile ID", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Comment data",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.createCommentRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Comment"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/profiles/{id}/comments/{commentId}/like": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Profile Comments"],
                "summary": "Toggle like/unlike a comment",
                "parameters": [
                    {"type": "string", "description": "Profile ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Comment ID", "name": "commentId", "in": "path", "required": true},
                    {
                        "description": "Liking user",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.likeRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Comment"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        },
        "/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "List users",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.User"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Create a new user",
                "parameters": [
                    {
                        "description": "User data",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.createUserRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.User"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Author": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "domain.Comment": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "profileId": {"type": "string"},
                "userId": {"type": "string"},
                "author": {"$ref": "#/definitions/domain.Author"},
                "title": {"type": "string"},
                "text": {"type": "string"},
                "mbti": {"type": "string"},
                "enneagram": {"type": "string"},
                "zodiac": {"type": "string"},
                "likes": {"type": "array", "items": {"type": "string"}},
                "likeCount": {"type": "integer"},
                "createdAt": {"type": "string", "format": "date-time"},
                "updatedAt": {"type": "string", "format": "date-time"}
            }
        },
        "domain.Profile": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "mbti": {"type": "string"},
                "enneagram": {"type": "string"},
                "zodiac": {"type": "string"},
                "variant": {"type": "string"},
                "tritype": {"type": "integer"},
                "socionics": {"type": "string"},
                "sloan": {"type": "string"},
                "psyche": {"type": "string"},
                "temperaments": {"type": "string"},
                "image": {"type": "string"},
                "createdAt": {"type": "string", "format": "date-time"},
                "updatedAt": {"type": "string", "format": "date-time"}
            }
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "createdAt": {"type": "string", "format": "date-time"},
                "updatedAt": {"type": "string", "format": "date-time"}
            }
        },
        "http.createCommentRequest": {
            "type": "object",
            "required": ["text", "title", "userId"],
            "properties": {
                "userId": {"type": "string"},
                "title": {"type": "string"},
                "text": {"type": "string"},
                "mbti": {"type": "string"},
                "enneagram": {"type": "string"},
                "zodiac": {"type": "string"}
            }
        },
        "http.createProfileRequest": {
            "type": "object",
            "required": ["description", "name"],
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "mbti": {"type": "string"},
                "enneagram": {"type": "string"},
                "zodiac": {"type": "string"},
                "variant": {"type": "string"},
                "tritype": {"type": "integer"},
                "socionics": {"type": "string"},
                "sloan": {"type": "string"},
                "psyche": {"type": "string"},
                "temperaments": {"type": "string"},
                "image": {"type": "string"}
            }
        },
        "http.createUserRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"}
            }
        },
        "http.errorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "http.likeRequest": {
            "type": "object",
            "required": ["userId"],
            "properties": {
                "userId": {"type": "string"}
            }
        },
        "http.personalitiesResponse": {
            "type": "object",
            "properties": {
                "mbti": {"type": "array", "items": {"type": "string"}},
                "enneagram": {"type": "array", "items": {"type": "string"}},
                "zodiac": {"type": "array", "items": {"type": "string"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Profile Votes API",
	Description:      "Personality profiles, users, and comment/vote feeds.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
