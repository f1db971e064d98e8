// Package docs 网关接口文档，由 /swagger/*any 提供
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
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "存活检查",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/readyz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "就绪检查（数据库连通性）",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "database unavailable"}
                }
            }
        },
        "/metrics": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["health"],
                "summary": "Prometheus 指标",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/rpc/{pattern}": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["rpc"],
                "summary": "调用 message pattern",
                "description": "pattern 为 Kafka topic 形式（如 fetchAllCountry），请求体即 payload，auth.id 由 token 决定",
                "parameters": [
                    {"type": "string", "description": "message pattern", "name": "pattern", "in": "path", "required": true},
                    {"description": "payload", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.Payload"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperr.Error"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/apperr.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apperr.Error"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/apperr.Error"}}
                }
            }
        }
    },
    "definitions": {
        "apperr.Error": {
            "type": "object",
            "properties": {
                "statusCode": {"type": "integer"},
                "message": {"type": "string"}
            }
        },
        "dto.Payload": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "page": {"type": "integer"},
                "query": {"type": "object", "properties": {"searchText": {"type": "string"}}},
                "uuid": {"type": "string"},
                "id": {"type": "integer"},
                "lang": {"type": "string"}
            }
        },
        "dto.Response": {
            "type": "object",
            "properties": {
                "status": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Master Microservice Gateway",
	Description:      "健康检查、指标与 JWT 保护的 message pattern 调试网关",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
