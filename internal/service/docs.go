package service

import "net/http"

type endpointDoc struct {
	Path        string            `json:"path"`
	Method      string            `json:"method"`
	Description string            `json:"description"`
	Body        map[string]string `json:"body,omitempty"`
	Auth        string            `json:"auth,omitempty"`
}

type apiDoc struct {
	Message   string        `json:"message"`
	Version   string        `json:"version"`
	Endpoints []endpointDoc `json:"endpoints"`
}

/* Константный ответ на корне: краткая документация API. */
var docs = apiDoc{
	Message: "GP-AgileTchat API",
	Version: "1.0.0",
	Endpoints: []endpointDoc{
		{
			Path:        "/api/register",
			Method:      "POST",
			Description: "Register a new user",
			Body: map[string]string{
				"email":     "string (required, max 320 chars)",
				"password":  "string (required, min 8 chars)",
				"firstName": "string (required, max 50 chars)",
				"lastName":  "string (required, max 50 chars)",
			},
		},
		{
			Path:        "/api/login",
			Method:      "POST",
			Description: "Login user",
			Body: map[string]string{
				"email":    "string (required)",
				"password": "string (required)",
			},
		},
		{
			Path:        "/api/user",
			Method:      "GET",
			Description: "Get user profile",
			Auth:        "Bearer token required",
		},
	},
}

func (service *AuthService) HandleDocs(w http.ResponseWriter, req *http.Request) {
	service.writeJSON(w, http.StatusOK, docs)
}
