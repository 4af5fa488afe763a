// Package docs holds the Swagger 2.0 document served under /swagger. It is
// maintained by hand alongside the handler annotations in internal/http/handler.
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
        "/diaries": {
            "get": {
                "produces": ["application/json"],
                "tags": ["diaries"],
                "summary": "List diaries",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/model.Diary"}
                        }
                    }
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["diaries"],
                "summary": "Create a diary",
                "parameters": [
                    {
                        "description": "Diary",
                        "name": "diary",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/model.DiaryData"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/model.Diary"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/handler.errorPayload"}
                    }
                }
            }
        },
        "/diaries/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["diaries"],
                "summary": "Get a diary",
                "parameters": [
                    {"type": "integer", "description": "Diary ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/model.Diary"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/handler.errorPayload"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/handler.errorPayload"}
                    }
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["diaries"],
                "summary": "Delete a diary",
                "parameters": [
                    {"type": "integer", "description": "Diary ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/model.Diary"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/handler.errorPayload"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/handler.errorPayload"}
                    }
                }
            }
        },
        "/diaries/{id}/export": {
            "post": {
                "produces": ["application/json"],
                "tags": ["diaries"],
                "summary": "Export a diary to object storage",
                "parameters": [
                    {"type": "integer", "description": "Diary ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/model.ExportResult"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/handler.errorPayload"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/handler.errorPayload"}
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {"$ref": "#/definitions/handler.errorPayload"}
                    }
                }
            }
        },
        "/diaries/{id}/tasks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "List tasks",
                "parameters": [
                    {"type": "integer", "description": "Diary ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/model.TaskResult"}
                        }
                    }
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "Create a task",
                "parameters": [
                    {"type": "integer", "description": "Diary ID", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Task",
                        "name": "task",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/model.TaskData"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/model.TaskResult"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/handler.errorPayload"}
                    }
                }
            }
        },
        "/diaries/{id}/tasks/{taskId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "Get a task",
                "parameters": [
                    {"type": "integer", "description": "Diary ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Task ID", "name": "taskId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/model.TaskResult"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/handler.errorPayload"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/handler.errorPayload"}
                    }
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "Delete a task",
                "parameters": [
                    {"type": "integer", "description": "Diary ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Task ID", "name": "taskId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/model.TaskResult"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/handler.errorPayload"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/handler.errorPayload"}
                    }
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "Rename a task",
                "parameters": [
                    {"type": "integer", "description": "Diary ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Task ID", "name": "taskId", "in": "path", "required": true},
                    {
                        "description": "Task",
                        "name": "task",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/model.TaskData"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/model.TaskResult"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/handler.errorPayload"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/handler.errorPayload"}
                    }
                }
            }
        }
    },
    "definitions": {
        "handler.errorEnvelope": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "fields": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/validation.FieldError"}
                }
            }
        },
        "handler.errorPayload": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/handler.errorEnvelope"},
                "request_id": {"type": "string"}
            }
        },
        "model.Diary": {
            "type": "object",
            "properties": {
                "comment": {"type": "string"},
                "id": {"type": "integer"},
                "title": {"type": "string"}
            }
        },
        "model.DiaryData": {
            "type": "object",
            "properties": {
                "comment": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "model.ExportResult": {
            "type": "object",
            "properties": {
                "key": {"type": "string"},
                "size": {"type": "integer"},
                "url": {"type": "string"}
            }
        },
        "model.TaskData": {
            "type": "object",
            "properties": {
                "title": {"type": "string"}
            }
        },
        "model.TaskResult": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"}
            }
        },
        "validation.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"}
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
	Title:            "Diary API",
	Description:      "Diaries and their tasks over REST.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
