// Package docs registers the OpenAPI document served by the swagger UI.
// Regenerate with `swag init -g cmd/homeprice/docs.go`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {"name": "homeprice maintainers"},
        "license": {"name": "MIT", "url": "https://opensource.org/licenses/MIT"},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/regions": {
            "get": {
                "produces": ["application/json"],
                "summary": "List regions",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.RegionsResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/types": {
            "get": {
                "produces": ["application/json"],
                "summary": "List property types",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.TypesResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/estimate-price": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Estimate a property price",
                "parameters": [
                    {"description": "Property", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.EstimateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.EstimateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/status": {
            "get": {
                "produces": ["application/json"],
                "summary": "Loaded artifact summary",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.StatusResponse"}}
                }
            }
        }
    },
    "definitions": {
        "types.EstimateRequest": {
            "type": "object",
            "properties": {
                "bhk": {"type": "number", "example": 2},
                "area": {"type": "number", "example": 1000},
                "region": {"type": "string", "example": "wakad"},
                "type": {"type": "string", "example": "flat"}
            }
        },
        "types.EstimateResponse": {
            "type": "object",
            "properties": {"estimated_price": {"type": "number", "example": 50.25}}
        },
        "types.RegionsResponse": {
            "type": "object",
            "properties": {"regions": {"type": "array", "items": {"type": "string"}}}
        },
        "types.TypesResponse": {
            "type": "object",
            "properties": {"types": {"type": "array", "items": {"type": "string"}}}
        },
        "types.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "invalid JSON body"},
                "code": {"type": "integer", "example": 400}
            }
        },
        "types.StatusResponse": {
            "type": "object",
            "properties": {
                "state": {"type": "string", "example": "ready"},
                "model_kind": {"type": "string", "example": "linear"},
                "columns_path": {"type": "string"},
                "model_path": {"type": "string"},
                "columns": {"type": "integer", "example": 6},
                "regions": {"type": "integer", "example": 2},
                "types": {"type": "integer", "example": 2},
                "trees": {"type": "integer", "example": 100},
                "loaded_at_unix": {"type": "integer", "example": 1700000000},
                "uptime_seconds": {"type": "integer", "example": 3600},
                "server_time_unix": {"type": "integer", "example": 1700000000}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "homeprice API",
	Description:      "HTTP API for real-estate price estimation.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
