// Package docs Code generated by swaggo/swag. DO NOT EDIT
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
        "/auth/forgot-password": {
            "post": {
                "description": "Send password reset email to user",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Request password reset",
                "parameters": [
                    {
                        "description": "Forgot password request",
                        "name": "forgot",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_user_dto.ForgotPasswordRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/auth/login": {
            "post": {
                "description": "Login user with email and password",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Login user",
                "parameters": [
                    {
                        "description": "User login request",
                        "name": "login",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_user_dto.UserLoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_user_dto_UserLoginResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/auth/register": {
            "post": {
                "description": "Register new user with email and password",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Register new user",
                "parameters": [
                    {
                        "description": "User register request",
                        "name": "register",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_user_dto.UserRegisterRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_user_dto_UserRegisterResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/auth/reset-password": {
            "post": {
                "description": "Reset user password using reset token",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Reset user password",
                "parameters": [
                    {
                        "description": "Reset password request",
                        "name": "reset",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_user_dto.ResetPasswordRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/auth/token/refresh": {
            "post": {
                "description": "Exchange a refresh token for a new access and refresh token pair",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Refresh access token",
                "parameters": [
                    {
                        "description": "Refresh token request",
                        "name": "refresh",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_user_dto.RefreshTokenRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_user_dto_UserLoginResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/auth/verify-email": {
            "get": {
                "description": "Verify user's email address using verification token",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Verify email address",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Email verification token",
                        "name": "token",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/bookings/slots": {
            "get": {
                "description": "Get booked slots for a court on a specific date",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bookings"
                ],
                "summary": "Get booked slots",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Court ID",
                        "name": "court_id",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Booking date (2006-01-02)",
                        "name": "date",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_bookings_dto_GetBookedSlotsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/bookings/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get one booking of the authenticated user",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bookings"
                ],
                "summary": "Get booking by ID",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Booking ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_bookings_dto_BookingResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/bookings/{id}/cancel": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Cancel a booking for the authenticated user",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bookings"
                ],
                "summary": "Cancel user booking",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Booking ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/courts/": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Create new court in one of the authenticated user's venues",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "courts"
                ],
                "summary": "Create new court",
                "parameters": [
                    {
                        "description": "Court create request",
                        "name": "court",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_courts_dto.CreateCourtRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/courts/slots/{id}": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Delete a time slot, owner or admin only",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "courts"
                ],
                "summary": "Delete time slot",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Time slot ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            },
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Block or unblock a time slot, owner or admin only",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "courts"
                ],
                "summary": "Block or unblock a time slot",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Time slot ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Time slot update request",
                        "name": "slot",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_courts_dto.UpdateTimeSlotRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/courts/venue/{id}": {
            "get": {
                "description": "Get all courts of one venue with pagination",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "courts"
                ],
                "summary": "Get courts by venue",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Venue ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Page number",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Items per page",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_courts_dto_GetCourtsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/courts/{id}": {
            "get": {
                "description": "Get court details with its defined time slots",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "courts"
                ],
                "summary": "Get court by id",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Court ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_courts_dto_CourtResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Delete court, owner or admin only",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "courts"
                ],
                "summary": "Delete court",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Court ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            },
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Update court fields, owner or admin only",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "courts"
                ],
                "summary": "Update court",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Court ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Court update request",
                        "name": "court",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_courts_dto.UpdateCourtRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/courts/{id}/slots": {
            "get": {
                "description": "Get the time slots defined for one court",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "courts"
                ],
                "summary": "Get court time slots",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Court ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_courts_dto_GetTimeSlotsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Define a new one-hour time slot for a court, owner or admin only",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "courts"
                ],
                "summary": "Create time slot",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Court ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Time slot create request",
                        "name": "slot",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_courts_dto.CreateTimeSlotRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/courts/{id}/status": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Set court status to active, maintenance or inactive",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "courts"
                ],
                "summary": "Update court status",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Court ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Court status request",
                        "name": "status",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_courts_dto.UpdateCourtStatusRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/dashboard/": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get venue, court, booking and earnings totals for the authenticated owner",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "dashboard"
                ],
                "summary": "Get owner dashboard KPIs",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_dashboard_dto_KpisResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/dashboard/booking-trends": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get booking and earnings counts grouped by day, week or month",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "dashboard"
                ],
                "summary": "Get booking trends",
                "parameters": [
                    {
                        "enum": [
                            "daily",
                            "weekly",
                            "monthly"
                        ],
                        "type": "string",
                        "default": "daily",
                        "description": "Aggregation period",
                        "name": "period",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_dashboard_dto_BookingTrendsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/dashboard/court-stats": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get booking and earnings totals per court for the authenticated owner",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "dashboard"
                ],
                "summary": "Get per court statistics",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_dashboard_dto_CourtStatsResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/dashboard/peak-hours": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get booking counts per hour of day across the owner's courts",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "dashboard"
                ],
                "summary": "Get peak booking hours",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_dashboard_dto_PeakHoursResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/dashboard/recent-bookings": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get the most recent bookings across the owner's venues",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "dashboard"
                ],
                "summary": "Get recent bookings",
                "parameters": [
                    {
                        "maximum": 50,
                        "minimum": 1,
                        "type": "integer",
                        "default": 10,
                        "description": "Maximum number of bookings",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_dashboard_dto_RecentBookingsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/oauth/google/callback": {
            "get": {
                "description": "Handle the Google OAuth callback and return JWT tokens",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Google OAuth callback",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Authorization code from Google",
                        "name": "code",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_user_dto_UserLoginResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/oauth/google/login": {
            "get": {
                "description": "Redirects to Google OAuth consent screen",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Login with Google",
                "responses": {
                    "302": {
                        "description": "Redirect to Google",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/payments/create_order": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Create a provider payment order for the computed amount with a receipt label and contextual notes",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payments"
                ],
                "summary": "Create payment order",
                "parameters": [
                    {
                        "description": "Create order request",
                        "name": "order",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_payments_dto.CreateOrderRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_payments_dto_CreateOrderResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/payments/verify_and_book": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Verify the provider payment signature, re-validate the booking window and price, and create the confirmed booking",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payments"
                ],
                "summary": "Verify payment and create booking",
                "parameters": [
                    {
                        "description": "Verify payment request",
                        "name": "payment",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_payments_dto.VerifyPaymentRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_payments_dto_VerifyPaymentResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/users/admin": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get all users with pagination and filtering",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Get all users (Admin only)",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Filter by email",
                        "name": "email",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by full name",
                        "name": "full_name",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Filter by user role",
                        "name": "role",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Page number (default: 1)",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Items per page (default: 10, max: 100)",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_user_dto_PaginatedUserResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/users/admin/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get user details by ID",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Get user by ID (Admin only)",
                "parameters": [
                    {
                        "type": "string",
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_user_dto_UserAdminResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/users/admin/{id}/role": {
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Update user role",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Update user role (Admin only)",
                "parameters": [
                    {
                        "type": "string",
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Update role request",
                        "name": "role",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_user_dto.UpdateUserRoleRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_user_dto_UserAdminResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/users/bookings": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get bookings for the authenticated user",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bookings"
                ],
                "summary": "Get user bookings",
                "parameters": [
                    {
                        "minLength": 3,
                        "type": "string",
                        "name": "filter",
                        "in": "query"
                    },
                    {
                        "maximum": 100,
                        "minimum": 1,
                        "type": "integer",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "minimum": 1,
                        "type": "integer",
                        "name": "page",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_bookings_dto_GetBookingsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/users/profile": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get user profile",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Get user profile",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_user_dto_UserProfileResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Update the authenticated user's name and profile image",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Update user profile",
                "parameters": [
                    {
                        "description": "Update profile request",
                        "name": "profile",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_user_dto.UpdateProfileRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_user_dto_UserProfileResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/venues/": {
            "get": {
                "description": "Get all active venues with pagination and filters",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "venues"
                ],
                "summary": "Get all venues",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Page number",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Items per page",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Name or address filter",
                        "name": "filter",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "City filter",
                        "name": "city",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_venues_dto_GetVenuesResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Create new venue owned by the authenticated user",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "venues"
                ],
                "summary": "Create new venue",
                "parameters": [
                    {
                        "description": "Venue create request",
                        "name": "venue",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_venues_dto.CreateVenueRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/venues/owner": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get the venues owned by the authenticated user",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "venues"
                ],
                "summary": "Get own venues",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Page number",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Items per page",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_venues_dto_GetVenuesResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/venues/{id}": {
            "get": {
                "description": "Get venue details with courts and the per-date slot snapshot",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "venues"
                ],
                "summary": "Get venue availability",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Venue ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Date (YYYY-MM-DD), defaults to today",
                        "name": "date",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_venues_dto_VenueAvailabilityResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Delete venue, owner or admin only",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "venues"
                ],
                "summary": "Delete venue",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Venue ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            },
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Update venue fields, owner or admin only",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "venues"
                ],
                "summary": "Update venue",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Venue ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Venue update request",
                        "name": "venue",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_venues_dto.UpdateVenueRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/venues/{id}/photos": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Upload one or more photos for a venue, owner or admin only",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "venues"
                ],
                "summary": "Upload venue photos",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Venue ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "file",
                        "description": "Photo files",
                        "name": "photos",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_venues_dto_UploadPhotosResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Delete one venue photo by its URL, owner or admin only",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "venues"
                ],
                "summary": "Delete venue photo",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Venue ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Photo delete request",
                        "name": "photo",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_venues_dto.DeleteVenuePhotoRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_bookings_dto_BookingResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_bookings_dto.BookingResponse"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_bookings_dto_GetBookedSlotsResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_bookings_dto.GetBookedSlotsResponse"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_bookings_dto_GetBookingsResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_bookings_dto.GetBookingsResponse"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_courts_dto_CourtResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_courts_dto.CourtResponse"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_courts_dto_GetCourtsResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_courts_dto.GetCourtsResponse"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_courts_dto_GetTimeSlotsResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_courts_dto.GetTimeSlotsResponse"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_dashboard_dto_BookingTrendsResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_dashboard_dto.BookingTrendsResponse"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_dashboard_dto_CourtStatsResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_dashboard_dto.CourtStatsResponse"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_dashboard_dto_KpisResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_dashboard_dto.KpisResponse"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_dashboard_dto_PeakHoursResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_dashboard_dto.PeakHoursResponse"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_dashboard_dto_RecentBookingsResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_dashboard_dto.RecentBookingsResponse"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_payments_dto_CreateOrderResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_payments_dto.CreateOrderResponse"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_payments_dto_VerifyPaymentResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_payments_dto.VerifyPaymentResponse"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_user_dto_PaginatedUserResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_user_dto.PaginatedUserResponse"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_user_dto_UserAdminResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_user_dto.UserAdminResponse"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_user_dto_UserLoginResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_user_dto.UserLoginResponse"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_user_dto_UserProfileResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_user_dto.UserProfileResponse"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_user_dto_UserRegisterResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_user_dto.UserRegisterResponse"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_venues_dto_GetVenuesResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_venues_dto.GetVenuesResponse"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_venues_dto_UploadPhotosResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_venues_dto.UploadPhotosResponse"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_delivery_http_response.Data-github_com_quickcourt_quickcourt_internal_domains_venues_dto_VenueAvailabilityResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_venues_dto.VenueAvailabilityResponse"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_delivery_http_response.Error": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_delivery_http_response.Message": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_bookings_dto.BookedSlot": {
            "type": "object",
            "properties": {
                "end_time": {
                    "type": "string"
                },
                "start_time": {
                    "type": "string"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_bookings_dto.BookingResponse": {
            "type": "object",
            "properties": {
                "booking_date": {
                    "type": "string"
                },
                "canceled_by": {
                    "type": "string"
                },
                "court_id": {
                    "type": "integer"
                },
                "court_name": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "duration_hours": {
                    "type": "integer"
                },
                "end_time": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "payment_status": {
                    "type": "string"
                },
                "special_requests": {
                    "type": "string"
                },
                "sport": {
                    "type": "string"
                },
                "start_time": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "total_amount": {
                    "type": "integer"
                },
                "venue_name": {
                    "type": "string"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_bookings_dto.GetBookedSlotsResponse": {
            "type": "object",
            "properties": {
                "booked_slots": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_bookings_dto.BookedSlot"
                    }
                },
                "court_id": {
                    "type": "integer"
                },
                "date": {
                    "type": "string"
                },
                "total_items": {
                    "type": "integer"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_bookings_dto.GetBookingsResponse": {
            "type": "object",
            "properties": {
                "bookings": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_bookings_dto.BookingResponse"
                    }
                },
                "total_items": {
                    "type": "integer"
                },
                "total_pages": {
                    "type": "integer"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_courts_dto.CourtResponse": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "price_per_hour": {
                    "type": "integer"
                },
                "sport": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "time_slots": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_courts_dto.TimeSlotResponse"
                    }
                },
                "updated_at": {
                    "type": "string"
                },
                "venue_id": {
                    "type": "integer"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_courts_dto.CreateCourtRequest": {
            "type": "object",
            "required": [
                "name",
                "price_per_hour",
                "sport",
                "venue_id"
            ],
            "properties": {
                "description": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "price_per_hour": {
                    "type": "integer"
                },
                "sport": {
                    "type": "string"
                },
                "venue_id": {
                    "type": "integer"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_courts_dto.CreateTimeSlotRequest": {
            "type": "object",
            "required": [
                "end_time",
                "start_time"
            ],
            "properties": {
                "end_time": {
                    "type": "string"
                },
                "start_time": {
                    "type": "string"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_courts_dto.GetCourtsResponse": {
            "type": "object",
            "properties": {
                "courts": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_courts_dto.CourtResponse"
                    }
                },
                "total_items": {
                    "type": "integer"
                },
                "total_pages": {
                    "type": "integer"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_courts_dto.GetTimeSlotsResponse": {
            "type": "object",
            "properties": {
                "time_slots": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_courts_dto.TimeSlotResponse"
                    }
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_courts_dto.TimeSlotResponse": {
            "type": "object",
            "properties": {
                "block_reason": {
                    "type": "string"
                },
                "court_id": {
                    "type": "integer"
                },
                "end_time": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "is_blocked": {
                    "type": "boolean"
                },
                "start_time": {
                    "type": "string"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_courts_dto.UpdateCourtRequest": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "price_per_hour": {
                    "type": "integer"
                },
                "sport": {
                    "type": "string"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_courts_dto.UpdateCourtStatusRequest": {
            "type": "object",
            "required": [
                "status"
            ],
            "properties": {
                "status": {
                    "type": "string",
                    "enum": [
                        "active",
                        "maintenance",
                        "inactive"
                    ]
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_courts_dto.UpdateTimeSlotRequest": {
            "type": "object",
            "required": [
                "is_blocked"
            ],
            "properties": {
                "block_reason": {
                    "type": "string"
                },
                "is_blocked": {
                    "type": "boolean"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_dashboard_dto.BookingTrendsResponse": {
            "type": "object",
            "properties": {
                "period": {
                    "type": "string"
                },
                "points": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_dashboard_dto.TrendPoint"
                    }
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_dashboard_dto.CourtStat": {
            "type": "object",
            "properties": {
                "bookings": {
                    "type": "integer"
                },
                "court_id": {
                    "type": "integer"
                },
                "court_name": {
                    "type": "string"
                },
                "earnings": {
                    "type": "integer"
                },
                "sport": {
                    "type": "string"
                },
                "venue_name": {
                    "type": "string"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_dashboard_dto.CourtStatsResponse": {
            "type": "object",
            "properties": {
                "courts": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_dashboard_dto.CourtStat"
                    }
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_dashboard_dto.KpisResponse": {
            "type": "object",
            "properties": {
                "active_courts": {
                    "type": "integer"
                },
                "total_bookings": {
                    "type": "integer"
                },
                "total_earnings": {
                    "type": "integer"
                },
                "total_venues": {
                    "type": "integer"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_dashboard_dto.PeakHour": {
            "type": "object",
            "properties": {
                "bookings": {
                    "type": "integer"
                },
                "hour": {
                    "type": "integer"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_dashboard_dto.PeakHoursResponse": {
            "type": "object",
            "properties": {
                "hours": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_dashboard_dto.PeakHour"
                    }
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_dashboard_dto.RecentBooking": {
            "type": "object",
            "properties": {
                "booking_date": {
                    "type": "string"
                },
                "court_name": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "end_time": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "start_time": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "total_amount": {
                    "type": "integer"
                },
                "venue_name": {
                    "type": "string"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_dashboard_dto.RecentBookingsResponse": {
            "type": "object",
            "properties": {
                "bookings": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_dashboard_dto.RecentBooking"
                    }
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_dashboard_dto.TrendPoint": {
            "type": "object",
            "properties": {
                "bookings": {
                    "type": "integer"
                },
                "bucket": {
                    "type": "string"
                },
                "earnings": {
                    "type": "integer"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_payments_dto.CreateOrderRequest": {
            "type": "object",
            "required": [
                "amount",
                "notes",
                "receipt"
            ],
            "properties": {
                "amount": {
                    "type": "integer",
                    "example": 100000
                },
                "currency": {
                    "type": "string",
                    "example": "INR"
                },
                "notes": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                },
                "receipt": {
                    "type": "string",
                    "maxLength": 64,
                    "example": "receipt_1755072000000"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_payments_dto.CreateOrderResponse": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "integer"
                },
                "currency": {
                    "type": "string"
                },
                "key_id": {
                    "type": "string"
                },
                "order_id": {
                    "type": "string"
                },
                "receipt": {
                    "type": "string"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_payments_dto.VerifyPaymentRequest": {
            "type": "object",
            "required": [
                "booking_date",
                "court_id",
                "end_time",
                "razorpay_order_id",
                "razorpay_payment_id",
                "razorpay_signature",
                "start_time"
            ],
            "properties": {
                "booking_date": {
                    "type": "string",
                    "example": "2006-01-02"
                },
                "court_id": {
                    "type": "integer",
                    "example": 3
                },
                "end_time": {
                    "type": "string",
                    "example": "20:00"
                },
                "razorpay_order_id": {
                    "type": "string"
                },
                "razorpay_payment_id": {
                    "type": "string"
                },
                "razorpay_signature": {
                    "type": "string"
                },
                "special_requests": {
                    "type": "string",
                    "maxLength": 500
                },
                "start_time": {
                    "type": "string",
                    "example": "18:00"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_payments_dto.VerifyPaymentResponse": {
            "type": "object",
            "properties": {
                "booking_id": {
                    "type": "string"
                },
                "payment_id": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_user_dto.ForgotPasswordRequest": {
            "type": "object",
            "required": [
                "email"
            ],
            "properties": {
                "email": {
                    "type": "string"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_user_dto.PaginatedUserResponse": {
            "type": "object",
            "properties": {
                "total_items": {
                    "type": "integer"
                },
                "total_pages": {
                    "type": "integer"
                },
                "users": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_user_dto.UserAdminResponse"
                    }
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_user_dto.RefreshTokenRequest": {
            "type": "object",
            "required": [
                "refresh_token"
            ],
            "properties": {
                "refresh_token": {
                    "type": "string"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_user_dto.ResetPasswordRequest": {
            "type": "object",
            "required": [
                "password",
                "token"
            ],
            "properties": {
                "password": {
                    "type": "string",
                    "minLength": 8
                },
                "token": {
                    "type": "string"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_user_dto.UpdateProfileRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "minLength": 3
                },
                "profile_image": {
                    "type": "string"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_user_dto.UpdateUserRoleRequest": {
            "type": "object",
            "required": [
                "role"
            ],
            "properties": {
                "role": {
                    "type": "string",
                    "enum": [
                        "player",
                        "owner",
                        "admin"
                    ]
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_user_dto.UserAdminResponse": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "is_verified": {
                    "type": "boolean"
                },
                "last_login": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_user_dto.UserLoginRequest": {
            "type": "object",
            "required": [
                "email",
                "password"
            ],
            "properties": {
                "email": {
                    "type": "string",
                    "example": "string@gmail.com"
                },
                "password": {
                    "type": "string",
                    "minLength": 8
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_user_dto.UserLoginResponse": {
            "type": "object",
            "properties": {
                "access_token": {
                    "type": "string"
                },
                "refresh_token": {
                    "type": "string"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_user_dto.UserProfileResponse": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "is_verified": {
                    "type": "boolean"
                },
                "name": {
                    "type": "string"
                },
                "profile_image": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_user_dto.UserRegisterRequest": {
            "type": "object",
            "required": [
                "email",
                "name",
                "password"
            ],
            "properties": {
                "email": {
                    "type": "string",
                    "example": "string@gmail.com"
                },
                "name": {
                    "type": "string"
                },
                "password": {
                    "type": "string",
                    "minLength": 8
                },
                "role": {
                    "type": "string",
                    "enum": [
                        "player",
                        "owner"
                    ]
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_user_dto.UserRegisterResponse": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_venues_dto.CourtAvailability": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "price_per_hour": {
                    "type": "integer"
                },
                "sport": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "time_slots": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/github_com_quickcourt_quickcourt_pkg_timeslot.Slot"
                    }
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_venues_dto.CreateVenueRequest": {
            "type": "object",
            "required": [
                "address",
                "city",
                "closing_time",
                "name",
                "opening_time"
            ],
            "properties": {
                "address": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "closing_time": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "latitude": {
                    "type": "number"
                },
                "longitude": {
                    "type": "number"
                },
                "name": {
                    "type": "string"
                },
                "opening_time": {
                    "type": "string"
                },
                "phone": {
                    "type": "string",
                    "maxLength": 15,
                    "minLength": 7
                },
                "pincode": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_venues_dto.DeleteVenuePhotoRequest": {
            "type": "object",
            "required": [
                "url"
            ],
            "properties": {
                "url": {
                    "type": "string"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_venues_dto.GetVenuesResponse": {
            "type": "object",
            "properties": {
                "total_items": {
                    "type": "integer"
                },
                "total_pages": {
                    "type": "integer"
                },
                "venues": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_venues_dto.VenueResponse"
                    }
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_venues_dto.UpdateVenueRequest": {
            "type": "object",
            "properties": {
                "address": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "closing_time": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "is_active": {
                    "type": "boolean"
                },
                "latitude": {
                    "type": "number"
                },
                "longitude": {
                    "type": "number"
                },
                "name": {
                    "type": "string"
                },
                "opening_time": {
                    "type": "string"
                },
                "phone": {
                    "type": "string",
                    "maxLength": 15,
                    "minLength": 7
                },
                "pincode": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_venues_dto.UploadPhotosResponse": {
            "type": "object",
            "properties": {
                "urls": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_venues_dto.VenueAvailabilityResponse": {
            "type": "object",
            "properties": {
                "courts": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_venues_dto.CourtAvailability"
                    }
                },
                "date": {
                    "type": "string"
                },
                "venue": {
                    "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_venues_dto.VenueResponse"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_venues_dto.VenuePhotoResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "is_primary": {
                    "type": "boolean"
                },
                "url": {
                    "type": "string"
                }
            }
        },
        "github_com_quickcourt_quickcourt_internal_domains_venues_dto.VenueResponse": {
            "type": "object",
            "properties": {
                "address": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "closing_time": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "is_active": {
                    "type": "boolean"
                },
                "latitude": {
                    "type": "number"
                },
                "longitude": {
                    "type": "number"
                },
                "name": {
                    "type": "string"
                },
                "opening_time": {
                    "type": "string"
                },
                "owner_id": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "photos": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/github_com_quickcourt_quickcourt_internal_domains_venues_dto.VenuePhotoResponse"
                    }
                },
                "pincode": {
                    "type": "string"
                },
                "rating": {
                    "type": "number"
                },
                "state": {
                    "type": "string"
                },
                "total_reviews": {
                    "type": "integer"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "github_com_quickcourt_quickcourt_pkg_timeslot.Slot": {
            "type": "object",
            "properties": {
                "end_time": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "is_available": {
                    "type": "boolean"
                },
                "price": {
                    "description": "Price is a per-slot override carried from the backend. It is not\nsummed into totals: the booking price is always hourly rate times\nslot count.",
                    "type": "integer"
                },
                "start_time": {
                    "type": "string"
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
	Version:          "",
	Host:             "",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "quickcourt API",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
