package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Academically API",
        "description": "Institutes, careers and institute blog events",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Institutes", "description": "Institute directory"},
        {"name": "Events", "description": "Institute blog events"},
        {"name": "Auth", "description": "Token verification stub"},
        {"name": "Exports", "description": "Downloadable listings"}
    ],
    "paths": {
        "/institutes": {
            "get": {
                "tags": ["Institutes"],
                "summary": "List institutes",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/InstituteListResponse"}}
                }
            }
        },
        "/institutes/search": {
            "get": {
                "tags": ["Institutes"],
                "summary": "Search institutes by name or acronym",
                "parameters": [
                    {"name": "q", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/InstituteSearchResponse"}},
                    "400": {"description": "Missing or blank query", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/institutes/stats": {
            "get": {
                "tags": ["Institutes"],
                "summary": "Institute statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/InstituteStats"}}
                }
            }
        },
        "/institutes/export": {
            "get": {
                "tags": ["Exports"],
                "summary": "Export the institute directory",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["pdf", "csv"]}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/institutes/{id}": {
            "get": {
                "tags": ["Institutes"],
                "summary": "Get one institute",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Institute"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/institutes/{id}/events": {
            "get": {
                "tags": ["Events"],
                "summary": "Active events of one institute",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/InstituteEventsResponse"}}
                }
            }
        },
        "/events": {
            "get": {
                "tags": ["Events"],
                "summary": "List active events",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/EventsListResponse"}}
                }
            },
            "post": {
                "tags": ["Events"],
                "summary": "Create an event",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateEventRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/EventRecord"}},
                    "400": {"description": "Blank title", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/events/search": {
            "get": {
                "tags": ["Events"],
                "summary": "Search events",
                "parameters": [
                    {"name": "q", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/EventSearchResponse"}},
                    "400": {"description": "Missing or blank query", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/events/category/{category}": {
            "get": {
                "tags": ["Events"],
                "summary": "Events by category",
                "parameters": [
                    {"name": "category", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/EventsByCategoryResponse"}}
                }
            }
        },
        "/events/upcoming": {
            "get": {
                "tags": ["Events"],
                "summary": "Events starting within 30 days",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/UpcomingEventsResponse"}}
                }
            }
        },
        "/events/stats": {
            "get": {
                "tags": ["Events"],
                "summary": "Event statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/EventStats"}}
                }
            }
        },
        "/events/export": {
            "get": {
                "tags": ["Exports"],
                "summary": "Export the upcoming-events agenda",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["pdf", "csv"]}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/events/{id}": {
            "get": {
                "tags": ["Events"],
                "summary": "Get one event regardless of active state",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/EventRecord"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "put": {
                "tags": ["Events"],
                "summary": "Update an event",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateEventRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/EventRecord"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "delete": {
                "tags": ["Events"],
                "summary": "Soft-delete an event",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/MessageResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/auth/client-info": {
            "get": {
                "tags": ["Auth"],
                "summary": "Client type table",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Auth"],
                "summary": "Current principal",
                "parameters": [
                    {"name": "Authorization", "in": "header", "required": true, "type": "string"},
                    {"name": "X-Client-Type", "in": "header", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Principal"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/auth/google": {
            "post": {
                "tags": ["Auth"],
                "summary": "Federated sign-in (stub)",
                "responses": {
                    "501": {"description": "Not implemented", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/auth/validate": {
            "post": {
                "tags": ["Auth"],
                "summary": "Token validation (stub)",
                "responses": {
                    "501": {"description": "Not implemented", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "Career": {
            "type": "object",
            "properties": {
                "careerID": {"type": "integer"},
                "name": {"type": "string"},
                "acronym": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "Institute": {
            "type": "object",
            "properties": {
                "instituteID": {"type": "integer"},
                "acronym": {"type": "string"},
                "name": {"type": "string"},
                "address": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "studentNumber": {"type": "integer"},
                "teacherNumber": {"type": "integer"},
                "webSite": {"type": "string"},
                "facebook": {"type": "string"},
                "instagram": {"type": "string"},
                "twitter": {"type": "string"},
                "youtube": {"type": "string"},
                "listCareer": {"type": "array", "items": {"$ref": "#/definitions/Career"}}
            }
        },
        "InstituteListResponse": {
            "type": "object",
            "properties": {
                "institutes": {"type": "array", "items": {"$ref": "#/definitions/Institute"}},
                "total": {"type": "integer"}
            }
        },
        "InstituteSearchResponse": {
            "type": "object",
            "properties": {
                "institutes": {"type": "array", "items": {"$ref": "#/definitions/Institute"}},
                "total": {"type": "integer"},
                "query": {"type": "string"}
            }
        },
        "InstituteStats": {
            "type": "object",
            "properties": {
                "totalInstitutes": {"type": "integer"},
                "totalCareers": {"type": "integer"},
                "totalStudents": {"type": "integer"},
                "totalTeachers": {"type": "integer"}
            }
        },
        "EventRecord": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "shortDescription": {"type": "string"},
                "longDescription": {"type": "string"},
                "location": {"type": "string"},
                "startDate": {"type": "string"},
                "endDate": {"type": "string"},
                "category": {"type": "string"},
                "imagePath": {"type": "string"},
                "instituteId": {"type": "integer"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"},
                "isActive": {"type": "boolean"}
            }
        },
        "EventsListResponse": {
            "type": "object",
            "properties": {
                "events": {"type": "array", "items": {"$ref": "#/definitions/EventRecord"}},
                "total": {"type": "integer"}
            }
        },
        "EventSearchResponse": {
            "type": "object",
            "properties": {
                "events": {"type": "array", "items": {"$ref": "#/definitions/EventRecord"}},
                "total": {"type": "integer"},
                "query": {"type": "string"}
            }
        },
        "EventsByCategoryResponse": {
            "type": "object",
            "properties": {
                "events": {"type": "array", "items": {"$ref": "#/definitions/EventRecord"}},
                "total": {"type": "integer"},
                "category": {"type": "string"}
            }
        },
        "UpcomingEventsResponse": {
            "type": "object",
            "properties": {
                "events": {"type": "array", "items": {"$ref": "#/definitions/EventRecord"}},
                "total": {"type": "integer"},
                "description": {"type": "string"}
            }
        },
        "InstituteEventsResponse": {
            "type": "object",
            "properties": {
                "events": {"type": "array", "items": {"$ref": "#/definitions/EventRecord"}},
                "total": {"type": "integer"},
                "instituteInfo": {"$ref": "#/definitions/Institute"}
            }
        },
        "EventStats": {
            "type": "object",
            "properties": {
                "totalEvents": {"type": "integer"},
                "eventsByCategory": {"type": "object"},
                "lastUpdated": {"type": "string"}
            }
        },
        "CreateEventRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "shortDescription": {"type": "string"},
                "longDescription": {"type": "string"},
                "location": {"type": "string"},
                "startDate": {"type": "string"},
                "endDate": {"type": "string"},
                "category": {"type": "string"},
                "imagePath": {"type": "string"},
                "instituteId": {"type": "integer"}
            },
            "required": ["title", "instituteId"]
        },
        "UpdateEventRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "shortDescription": {"type": "string"},
                "longDescription": {"type": "string"},
                "location": {"type": "string"},
                "startDate": {"type": "string"},
                "endDate": {"type": "string"},
                "category": {"type": "string"},
                "imagePath": {"type": "string"}
            },
            "required": ["title"]
        },
        "Principal": {
            "type": "object",
            "properties": {
                "uid": {"type": "string"},
                "email": {"type": "string"},
                "name": {"type": "string"},
                "role": {"type": "string"},
                "clientType": {"type": "string"},
                "permissions": {"type": "array", "items": {"type": "string"}}
            }
        },
        "MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
