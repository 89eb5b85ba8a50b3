// Package docs holds the swagger document served at /docs. It follows the
// layout swag generates so gin-swagger can render it, but the paths are
// maintained by hand.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": ["http"],
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "consumes": ["application/json"],
    "produces": ["application/json"],
    "paths": {
        "/api-key": {
            "post": {
                "summary": "Get API token",
                "description": "Get an API token for given user credentials",
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "required": ["username", "password"],
                            "properties": {
                                "username": {"type": "string"},
                                "password": {"type": "string"}
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "API key for the user",
                        "schema": {"$ref": "#/definitions/auth.APIKeyResponse"}
                    },
                    "401": {
                        "description": "Credentials provided were incorrect",
                        "schema": {"$ref": "#/definitions/auth.ErrorResponse"}
                    },
                    "404": {
                        "description": "No API key provisioned for the user",
                        "schema": {"$ref": "#/definitions/auth.ErrorResponse"}
                    }
                }
            }
        },
        "/salary": {
            "get": {
                "summary": "Get all salary records",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {
                        "description": "All salary records",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/salary.SalaryResponse"}
                        }
                    }
                }
            },
            "put": {
                "summary": "Add a new salary record",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/salary.CreateSalaryRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Inserted salary record with its id",
                        "schema": {"$ref": "#/definitions/salary.SalaryResponse"}
                    }
                }
            }
        },
        "/salary/{id}": {
            "delete": {
                "summary": "Delete a salary record",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {
                        "description": "Record deleted",
                        "schema": {"$ref": "#/definitions/salary.DeleteSalaryResponse"}
                    },
                    "410": {
                        "description": "No record matched the id",
                        "schema": {"$ref": "#/definitions/salary.DeleteSalaryResponse"}
                    }
                }
            }
        },
        "/salary/stats": {
            "get": {
                "summary": "Get salary statistics",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "currency", "in": "query", "type": "string"},
                    {"name": "on_contract", "in": "query", "type": "boolean"}
                ],
                "responses": {
                    "200": {
                        "description": "Aggregate statistics over matching records",
                        "schema": {"$ref": "#/definitions/salary.Stats"}
                    }
                }
            }
        },
        "/salary/stats/department": {
            "get": {
                "summary": "Get salary statistics per department",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "currency", "in": "query", "type": "string"},
                    {"name": "on_contract", "in": "query", "type": "boolean"}
                ],
                "responses": {
                    "200": {
                        "description": "Statistics grouped by department",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/salary.DepartmentStats"}
                        }
                    }
                }
            }
        },
        "/salary/stats/department/sub-department": {
            "get": {
                "summary": "Get salary statistics per department and sub-department",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "currency", "in": "query", "type": "string"},
                    {"name": "on_contract", "in": "query", "type": "boolean"}
                ],
                "responses": {
                    "200": {
                        "description": "Statistics grouped by department and sub-department",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/salary.SubDepartmentStats"}
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "auth.APIKeyResponse": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "apiKey": {"type": "string"}
            }
        },
        "auth.ErrorResponse": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "salary.CreateSalaryRequest": {
            "type": "object",
            "required": ["name", "salary", "currency", "department", "sub_department"],
            "properties": {
                "name": {"type": "string"},
                "salary": {"type": "number", "minimum": 0},
                "currency": {"type": "string"},
                "on_contract": {"type": "boolean"},
                "department": {"type": "string"},
                "sub_department": {"type": "string"}
            }
        },
        "salary.SalaryResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "salary": {"type": "number"},
                "currency": {"type": "string"},
                "on_contract": {"type": "boolean"},
                "department": {"type": "string"},
                "sub_department": {"type": "string"}
            }
        },
        "salary.DeleteSalaryResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "deleted": {"type": "boolean"}
            }
        },
        "salary.Stats": {
            "type": "object",
            "properties": {
                "avg": {"type": "number"},
                "max": {"type": "number"},
                "min": {"type": "number"}
            }
        },
        "salary.DepartmentStats": {
            "type": "object",
            "properties": {
                "department": {"type": "string"},
                "avg": {"type": "number"},
                "max": {"type": "number"},
                "min": {"type": "number"}
            }
        },
        "salary.SubDepartmentStats": {
            "type": "object",
            "properties": {
                "department": {"type": "string"},
                "sub_department": {"type": "string"},
                "avg": {"type": "number"},
                "max": {"type": "number"},
                "min": {"type": "number"}
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

var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Sqlary – Salary API",
	Description:      "Salary API endpoints from the Sqlary service",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
