package handler

import (
	"net/http"
	"strings"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Status   string `json:"status"`
	Username string `json:"username"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "username and password are required")
		return
	}

	if _, err := h.Users.Register(r.Context(), req.Username, req.Password); err != nil {
		h.writeServiceError(w, "users.register", err, "username", req.Username)
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Message: "ok"})
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	username, err := h.Users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		h.writeServiceError(w, "users.login", err, "username", req.Username)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Status: "success", Username: username})
}
