package handler

import "net/http"

func (h *Handlers) GetCategories(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	groupID := queryString(query, "group_id")
	categoryType := queryString(query, "type")

	names, err := h.Categories.ListCategories(r.Context(), groupID, categoryType)
	if err != nil {
		h.writeServiceError(w, "categories.list", err, "group_id", groupID, "type", categoryType)
		return
	}

	writeJSON(w, http.StatusOK, names)
}

func (h *Handlers) AddCategory(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	groupID := queryString(query, "group_id")
	categoryType := queryString(query, "type")
	name := queryString(query, "name")

	if err := h.Categories.AddCategory(r.Context(), groupID, categoryType, name); err != nil {
		h.writeServiceError(w, "categories.add", err, "group_id", groupID, "type", categoryType)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "ok"})
}
