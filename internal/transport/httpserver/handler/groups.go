package handler

import "net/http"

type createGroupResponse struct {
	InviteCode string `json:"invite_code"`
}

type groupsResponse struct {
	Groups []string `json:"groups"`
}

func (h *Handlers) CreateGroup(w http.ResponseWriter, r *http.Request) {
	username, err := requireQuery(r.URL.Query(), "username")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	code, err := h.Groups.CreateGroup(r.Context(), username)
	if err != nil {
		h.writeServiceError(w, "groups.create", err, "username", username)
		return
	}

	writeJSON(w, http.StatusCreated, createGroupResponse{InviteCode: code})
}

func (h *Handlers) JoinGroup(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	username, err := requireQuery(query, "username")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	code, err := requireQuery(query, "invite_code")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	if err := h.Groups.JoinGroup(r.Context(), username, code); err != nil {
		h.writeServiceError(w, "groups.join", err, "username", username, "code", code)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "ok"})
}

func (h *Handlers) GetMyGroups(w http.ResponseWriter, r *http.Request) {
	username, err := requireQuery(r.URL.Query(), "username")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	groups, err := h.Groups.ListGroups(r.Context(), username)
	if err != nil {
		h.writeServiceError(w, "groups.list", err, "username", username)
		return
	}

	writeJSON(w, http.StatusOK, groupsResponse{Groups: groups})
}
