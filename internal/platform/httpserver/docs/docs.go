// Package docs is generated by swag from the httpserver annotations.
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
		"/applications": {
			"get": {
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "application status filter",
						"name": "status",
						"in": "query",
						"required": false
					}
				],
				"responses": {
					"200": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/applicationhttp.ListApplicationsResponse"
						}
					}
				},
				"summary": "List all applications for review",
				"tags": [
					"applications"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/applications/checkout": {
			"post": {
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "checkout",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/applicationhttp.InitiateCheckoutRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/applicationhttp.InitiateCheckoutResponse"
						}
					},
					"409": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/applicationhttp.ErrorResponse"
						}
					},
					"429": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/applicationhttp.ErrorResponse"
						}
					}
				},
				"summary": "Open a checkout session for a scholarship",
				"tags": [
					"applications"
				],
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/applications/feedback/{application_id}": {
			"put": {
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "application id",
						"name": "application_id",
						"in": "path",
						"required": true
					},
					{
						"description": "feedback",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/applicationhttp.UpdateFeedbackRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/applicationhttp.ApplicationDTO"
						}
					}
				},
				"summary": "Set reviewer feedback",
				"tags": [
					"applications"
				],
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/applications/status/{application_id}": {
			"patch": {
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "application id",
						"name": "application_id",
						"in": "path",
						"required": true
					},
					{
						"description": "status",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/applicationhttp.UpdateStatusRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/applicationhttp.ApplicationDTO"
						}
					},
					"409": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/applicationhttp.ErrorResponse"
						}
					}
				},
				"summary": "Set an application's review status",
				"tags": [
					"applications"
				],
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/applications/user/{email}": {
			"get": {
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "applicant email",
						"name": "email",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/applicationhttp.ListApplicationsResponse"
						}
					}
				},
				"summary": "List the caller's applications",
				"tags": [
					"applications"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/applications/{application_id}": {
			"put": {
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "application id",
						"name": "application_id",
						"in": "path",
						"required": true
					},
					{
						"description": "applicant details",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/applicationhttp.UpdateApplicationRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/applicationhttp.ApplicationDTO"
						}
					},
					"409": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/applicationhttp.ErrorResponse"
						}
					}
				},
				"summary": "Edit a pending application",
				"tags": [
					"applications"
				],
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "application id",
						"name": "application_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/applicationhttp.DeleteApplicationResponse"
						}
					},
					"409": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/applicationhttp.ErrorResponse"
						}
					}
				},
				"summary": "Delete a pending application",
				"tags": [
					"applications"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/healthz": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"platform"
				],
				"summary": "Liveness check",
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/payment-cancelled": {
			"get": {
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "checkout session id",
						"name": "session_id",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/applicationhttp.CancelCheckoutResponse"
						}
					}
				},
				"summary": "Record an abandoned checkout",
				"tags": [
					"applications"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/payment-success": {
			"get": {
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "checkout session id",
						"name": "session_id",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/applicationhttp.ApplicationDTO"
						}
					},
					"402": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/applicationhttp.ErrorResponse"
						}
					}
				},
				"summary": "Record a completed checkout",
				"tags": [
					"applications"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/scholarships": {
			"post": {
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "scholarship",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/scholarshiphttp.CreateScholarshipRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/scholarshiphttp.ScholarshipDTO"
						}
					},
					"403": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/scholarshiphttp.ErrorResponse"
						}
					}
				},
				"summary": "Publish a scholarship",
				"tags": [
					"scholarships"
				],
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"get": {
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/scholarshiphttp.ListScholarshipsResponse"
						}
					}
				},
				"summary": "List scholarships",
				"tags": [
					"scholarships"
				]
			}
		},
		"/scholarships/{scholarship_id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "scholarship id",
						"name": "scholarship_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/scholarshiphttp.ScholarshipDTO"
						}
					},
					"404": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/scholarshiphttp.ErrorResponse"
						}
					}
				},
				"summary": "Get a scholarship",
				"tags": [
					"scholarships"
				]
			}
		},
		"/users": {
			"post": {
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"description": "profile",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/authzhttp.RegisterAccountRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/authzhttp.RegisterAccountResponse"
						}
					},
					"200": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/authzhttp.RegisterAccountResponse"
						}
					},
					"401": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/authzhttp.ErrorResponse"
						}
					}
				},
				"summary": "Register the caller's account",
				"tags": [
					"users"
				],
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/users/role/{email}": {
			"get": {
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "account email",
						"name": "email",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/authzhttp.RoleResponse"
						}
					},
					"403": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/authzhttp.ErrorResponse"
						}
					}
				},
				"summary": "Read an account role",
				"tags": [
					"users"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/users/{account_id}": {
			"delete": {
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "account id",
						"name": "account_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/authzhttp.DeleteAccountResponse"
						}
					},
					"409": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/authzhttp.ErrorResponse"
						}
					}
				},
				"summary": "Delete a non-admin account",
				"tags": [
					"users"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/users/{account_id}/role": {
			"patch": {
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "account id",
						"name": "account_id",
						"in": "path",
						"required": true
					},
					{
						"description": "new role",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/authzhttp.UpdateRoleRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/authzhttp.AccountDTO"
						}
					},
					"403": {
						"description": "",
						"schema": {
							"$ref": "#/definitions/authzhttp.ErrorResponse"
						}
					}
				},
				"summary": "Change an account role",
				"tags": [
					"users"
				],
				"consumes": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		}
	},
	"definitions": {
		"applicationhttp.ApplicationDTO": {
			"type": "object",
			"properties": {
				"application_id": {
					"type": "string"
				},
				"scholarship_id": {
					"type": "string"
				},
				"user_id": {
					"type": "string"
				},
				"user_email": {
					"type": "string"
				},
				"user_name": {
					"type": "string"
				},
				"university_name": {
					"type": "string"
				},
				"scholarship_category": {
					"type": "string"
				},
				"degree": {
					"type": "string"
				},
				"application_fees": {
					"type": "number"
				},
				"service_charge": {
					"type": "number"
				},
				"payment_status": {
					"type": "string"
				},
				"application_status": {
					"type": "string"
				},
				"feedback": {
					"type": "string"
				},
				"applicant_phone": {
					"type": "string"
				},
				"applicant_address": {
					"type": "string"
				},
				"applicant_gender": {
					"type": "string"
				},
				"ssc_result": {
					"type": "string"
				},
				"hsc_result": {
					"type": "string"
				},
				"study_gap": {
					"type": "string"
				},
				"application_date": {
					"type": "string",
					"format": "date-time"
				},
				"payment_date": {
					"type": "string",
					"format": "date-time"
				},
				"transaction_id": {
					"type": "string"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				},
				"scholarship_name": {
					"type": "string"
				},
				"university_country": {
					"type": "string"
				},
				"university_city": {
					"type": "string"
				},
				"subject_category": {
					"type": "string"
				},
				"application_deadline": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"applicationhttp.CancelCheckoutResponse": {
			"type": "object",
			"properties": {
				"created": {
					"type": "boolean"
				},
				"application": {
					"$ref": "#/definitions/applicationhttp.ApplicationDTO"
				}
			}
		},
		"applicationhttp.DeleteApplicationResponse": {
			"type": "object",
			"properties": {
				"application_id": {
					"type": "string"
				},
				"deleted": {
					"type": "boolean"
				}
			}
		},
		"applicationhttp.ErrorResponse": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"applicationhttp.InitiateCheckoutRequest": {
			"type": "object",
			"properties": {
				"scholarship_id": {
					"type": "string"
				},
				"user_name": {
					"type": "string"
				}
			}
		},
		"applicationhttp.InitiateCheckoutResponse": {
			"type": "object",
			"properties": {
				"session_id": {
					"type": "string"
				},
				"url": {
					"type": "string"
				},
				"amount_minor": {
					"type": "integer"
				},
				"currency": {
					"type": "string"
				}
			}
		},
		"applicationhttp.ListApplicationsResponse": {
			"type": "object",
			"properties": {
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/applicationhttp.ApplicationDTO"
					}
				}
			}
		},
		"applicationhttp.UpdateApplicationRequest": {
			"type": "object",
			"properties": {
				"applicant_phone": {
					"type": "string"
				},
				"applicant_address": {
					"type": "string"
				},
				"applicant_gender": {
					"type": "string"
				},
				"ssc_result": {
					"type": "string"
				},
				"hsc_result": {
					"type": "string"
				},
				"study_gap": {
					"type": "string"
				}
			}
		},
		"applicationhttp.UpdateFeedbackRequest": {
			"type": "object",
			"properties": {
				"feedback": {
					"type": "string"
				}
			}
		},
		"applicationhttp.UpdateStatusRequest": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string"
				}
			}
		},
		"authzhttp.AccountDTO": {
			"type": "object",
			"properties": {
				"account_id": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"photo_url": {
					"type": "string"
				},
				"role": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"authzhttp.DeleteAccountResponse": {
			"type": "object",
			"properties": {
				"account_id": {
					"type": "string"
				},
				"deleted": {
					"type": "boolean"
				}
			}
		},
		"authzhttp.ErrorResponse": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"authzhttp.RegisterAccountRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"photo_url": {
					"type": "string"
				}
			}
		},
		"authzhttp.RegisterAccountResponse": {
			"type": "object",
			"properties": {
				"created": {
					"type": "boolean"
				},
				"message": {
					"type": "string"
				},
				"account": {
					"$ref": "#/definitions/authzhttp.AccountDTO"
				}
			}
		},
		"authzhttp.RoleResponse": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"role": {
					"type": "string"
				}
			}
		},
		"authzhttp.UpdateRoleRequest": {
			"type": "object",
			"properties": {
				"role": {
					"type": "string"
				}
			}
		},
		"scholarshiphttp.CreateScholarshipRequest": {
			"type": "object",
			"properties": {
				"scholarship_name": {
					"type": "string"
				},
				"university_name": {
					"type": "string"
				},
				"university_country": {
					"type": "string"
				},
				"university_city": {
					"type": "string"
				},
				"scholarship_category": {
					"type": "string"
				},
				"subject_category": {
					"type": "string"
				},
				"degree": {
					"type": "string"
				},
				"application_fees": {
					"type": "number"
				},
				"service_charge": {
					"type": "number"
				},
				"application_deadline": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"scholarshiphttp.ErrorResponse": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"scholarshiphttp.ListScholarshipsResponse": {
			"type": "object",
			"properties": {
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/scholarshiphttp.ScholarshipDTO"
					}
				}
			}
		},
		"scholarshiphttp.ScholarshipDTO": {
			"type": "object",
			"properties": {
				"scholarship_id": {
					"type": "string"
				},
				"scholarship_name": {
					"type": "string"
				},
				"university_name": {
					"type": "string"
				},
				"university_country": {
					"type": "string"
				},
				"university_city": {
					"type": "string"
				},
				"scholarship_category": {
					"type": "string"
				},
				"subject_category": {
					"type": "string"
				},
				"degree": {
					"type": "string"
				},
				"application_fees": {
					"type": "number"
				},
				"service_charge": {
					"type": "number"
				},
				"application_deadline": {
					"type": "string",
					"format": "date-time"
				},
				"posted_by_email": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				}
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
	Title:            "ScholarStream API",
	Description:      "Scholarship catalog, applications and checkout reconciliation.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
