package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/becom/pointage-backend-go/internal/domain/record"
	"github.com/becom/pointage-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

type RecordHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetMyRecords(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type recordHandlerImpl struct {
	recordService record.RecordService
}

func NewRecordHandler(recordService record.RecordService) RecordHandler {
	return &recordHandlerImpl{
		recordService: recordService,
	}
}

// employeeIDFromClaims extracts the caller's employee id from the verified
// token.
func employeeIDFromClaims(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	employeeID, ok := claims["employee_id"].(string)
	return employeeID, ok && employeeID != ""
}

// Create implements RecordHandler.
func (h *recordHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	var req record.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode create record request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	result, err := h.recordService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance record created", result)
}

// GetMyRecords implements RecordHandler. Defaults to the current month when
// no range is given.
func (h *recordHandlerImpl) GetMyRecords(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", fromStr, time.UTC)
		if err != nil {
			response.BadRequest(w, "Invalid from parameter, expected YYYY-MM-DD", nil)
			return
		}
		from = parsed
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", toStr, time.UTC)
		if err != nil {
			response.BadRequest(w, "Invalid to parameter, expected YYYY-MM-DD", nil)
			return
		}
		to = parsed
	}

	result, err := h.recordService.ListByEmployeeAndRange(r.Context(), record.RangeFilter{
		EmployeeID: employeeID,
		From:       from,
		To:         to,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListPending implements RecordHandler.
func (h *recordHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	filter := record.PendingFilter{Page: 1, Limit: 20}

	if p := r.URL.Query().Get("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			filter.Page = pageNum
		}
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if limitNum, err := strconv.Atoi(l); err == nil && limitNum > 0 && limitNum <= 100 {
			filter.Limit = limitNum
		}
	}

	result, err := h.recordService.ListPending(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *recordHandlerImpl) decide(w http.ResponseWriter, r *http.Request, decision record.Decision) {
	adminID, ok := employeeIDFromClaims(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	req := record.DecideRecordRequest{
		RecordID: chi.URLParam(r, "recordID"),
		AdminID:  adminID,
		Decision: string(decision),
	}

	result, err := h.recordService.Decide(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Decision recorded", result)
}

// Approve implements RecordHandler.
func (h *recordHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, record.DecisionApprove)
}

// Reject implements RecordHandler.
func (h *recordHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, record.DecisionReject)
}

// Delete implements RecordHandler.
func (h *recordHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	recordID := chi.URLParam(r, "recordID")

	if err := h.recordService.Delete(r.Context(), recordID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record deleted", nil)
}
