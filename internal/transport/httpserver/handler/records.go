package handler

import (
	"net/http"
	"strings"
	"time"

	ledgerdomain "shared-ledger/internal/domain/ledger"
)

type addRecordRequest struct {
	Username string  `json:"username"`
	Amount   float64 `json:"amount"`
	Type     string  `json:"type"`
	Category string  `json:"category"`
	Note     string  `json:"note"`
	Time     string  `json:"time"`
	GroupID  string  `json:"group_id"`
}

type recordResponse struct {
	ID       int64   `json:"id"`
	UserID   int64   `json:"user_id"`
	Amount   float64 `json:"amount"`
	Type     string  `json:"type"`
	Category string  `json:"category"`
	Note     string  `json:"note"`
	Time     string  `json:"time"`
	GroupID  string  `json:"group_id"`
	Username string  `json:"username"`
}

type summaryResponse struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

type searchResponse struct {
	Data    []recordResponse `json:"data"`
	Summary summaryResponse  `json:"summary"`
}

type recordsResponse struct {
	Data []recordResponse `json:"data"`
}

type categoryTotalResponse struct {
	Type     string  `json:"type"`
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

type analyticsResponse struct {
	Income  []categoryTotalResponse `json:"income"`
	Expense []categoryTotalResponse `json:"expense"`
}

func (h *Handlers) AddRecord(w http.ResponseWriter, r *http.Request) {
	var req addRecordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.GroupID = strings.TrimSpace(req.GroupID)
	if req.Username == "" || req.GroupID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "username and group_id are required")
		return
	}

	record, err := h.Ledger.AddRecord(r.Context(), ledgerdomain.AddRecordInput{
		Username: req.Username,
		GroupID:  req.GroupID,
		Amount:   req.Amount,
		Type:     req.Type,
		Category: req.Category,
		Note:     req.Note,
		Time:     req.Time,
	})
	if err != nil {
		h.writeServiceError(w, "records.add", err, "username", req.Username, "group_id", req.GroupID)
		return
	}

	writeJSON(w, http.StatusCreated, toRecordResponse(ledgerdomain.RecordView{Record: *record, Username: req.Username}))
}

func (h *Handlers) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	id, err := parseRequiredInt64(r.URL.Query(), "record_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	if err := h.Ledger.DeleteRecord(r.Context(), id); err != nil {
		h.writeServiceError(w, "records.delete", err, "record_id", id)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "ok"})
}

func (h *Handlers) SearchRecords(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	username := queryString(query, "username")
	groupID := queryString(query, "group_id")

	var filter ledgerdomain.SearchFilter
	var err error
	if filter.Year, err = parseOptionalInt(query, "year"); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	if filter.Month, err = parseOptionalInt(query, "month"); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	if filter.Day, err = parseOptionalInt(query, "day"); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	filter.Type = queryString(query, "filter_type")

	result, err := h.Ledger.SearchRecords(r.Context(), username, groupID, filter)
	if err != nil {
		h.writeServiceError(w, "records.search", err, "username", username, "group_id", groupID)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Data:    toRecordResponses(result.Records),
		Summary: toSummaryResponse(result.Summary),
	})
}

func (h *Handlers) GetSummary(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	username := queryString(query, "username")
	groupID := queryString(query, "group_id")

	year, err := parseRequiredInt(query, "year")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	month, err := parseRequiredInt(query, "month")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	summary, err := h.Ledger.GetSummary(r.Context(), username, groupID, year, month)
	if err != nil {
		h.writeServiceError(w, "records.summary", err, "username", username, "group_id", groupID)
		return
	}

	writeJSON(w, http.StatusOK, toSummaryResponse(summary))
}

func (h *Handlers) GetRecords(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	username := queryString(query, "username")
	groupID := queryString(query, "group_id")

	records, err := h.Ledger.GetRecords(r.Context(), username, groupID)
	if err != nil {
		h.writeServiceError(w, "records.recent", err, "username", username, "group_id", groupID)
		return
	}

	writeJSON(w, http.StatusOK, recordsResponse{Data: toRecordResponses(records)})
}

func (h *Handlers) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	username := queryString(query, "username")
	groupID := queryString(query, "group_id")

	now := time.Now()
	year, err := parseIntParam(query, "year", now.Year())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	month, err := parseIntParam(query, "month", int(now.Month()))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	analytics, err := h.Ledger.Analytics(r.Context(), username, groupID, year, month)
	if err != nil {
		h.writeServiceError(w, "records.analytics", err, "username", username, "group_id", groupID)
		return
	}

	writeJSON(w, http.StatusOK, analyticsResponse{
		Income:  toCategoryTotals("income", analytics.Income),
		Expense: toCategoryTotals("expense", analytics.Expense),
	})
}

func toRecordResponse(record ledgerdomain.RecordView) recordResponse {
	return recordResponse{
		ID:       record.ID,
		UserID:   record.UserID,
		Amount:   record.Amount,
		Type:     record.Type,
		Category: record.Category,
		Note:     record.Note,
		Time:     record.Time,
		GroupID:  record.GroupID,
		Username: record.Username,
	}
}

func toRecordResponses(records []ledgerdomain.RecordView) []recordResponse {
	result := make([]recordResponse, 0, len(records))
	for _, record := range records {
		result = append(result, toRecordResponse(record))
	}
	return result
}

func toSummaryResponse(summary ledgerdomain.Summary) summaryResponse {
	return summaryResponse{
		Income:  summary.Income,
		Expense: summary.Expense,
		Balance: summary.Balance,
	}
}

func toCategoryTotals(recordType string, totals []ledgerdomain.CategoryTotal) []categoryTotalResponse {
	result := make([]categoryTotalResponse, 0, len(totals))
	for _, total := range totals {
		result = append(result, categoryTotalResponse{
			Type:     recordType,
			Category: total.Category,
			Total:    total.Total,
		})
	}
	return result
}
