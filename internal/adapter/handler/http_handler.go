package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/lqhuy182/art-registry/internal/core/domain"
	"github.com/lqhuy182/art-registry/internal/core/service"
)

type HTTPHandler struct {
	registry *service.RegistryService
}

func NewHTTPHandler(registry *service.RegistryService) *HTTPHandler {
	return &HTTPHandler{registry: registry}
}

// RegisterRoutes mounts the registry surface on mux. Item-scoped routes
// are addressed by content id.
func (h *HTTPHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.HealthCheck)
	mux.HandleFunc("POST /api/artworks", h.Mint)
	mux.HandleFunc("GET /api/artworks/{id}/exists", h.Exists)
	mux.HandleFunc("POST /api/artworks/{id}/sell", h.Sell)
	mux.HandleFunc("GET /api/artworks/{id}/owner", h.OwnerOf)
	mux.HandleFunc("GET /api/artworks/{id}/count", h.OwnerCount)
	mux.HandleFunc("GET /api/artworks/{id}/approved", h.GetApproved)
	mux.HandleFunc("POST /api/artworks/{id}/approve", h.Approve)
	mux.HandleFunc("GET /api/artworks/{id}/operators", h.IsOperator)
	mux.HandleFunc("POST /api/artworks/{id}/operators", h.SetOperator)
	mux.HandleFunc("POST /api/artworks/{id}/transfer", h.DirectTransfer)
	mux.HandleFunc("POST /api/artworks/{id}/safe-transfer", h.SafeTransfer)
	mux.HandleFunc("GET /api/capabilities/{id}", h.Capability)
}

type MintHTTPRequest struct {
	ContentID   uint64 `json:"content_id"`
	DisplayName string `json:"display_name"`
	Caller      string `json:"caller"`
}

type SellHTTPRequest struct {
	NewOwner string `json:"new_owner"`
	Caller   string `json:"caller"`
}

type ApproveHTTPRequest struct {
	Delegate string `json:"delegate"`
	Caller   string `json:"caller"`
}

type OperatorHTTPRequest struct {
	Operator string `json:"operator"`
	Approved bool   `json:"approved"`
	Caller   string `json:"caller"`
}

type TransferHTTPRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Caller string `json:"caller"`
	Data   []byte `json:"data,omitempty"`
}

type StatusHTTPResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ArtworkHTTPResponse struct {
	ContentID   uint64 `json:"content_id"`
	DisplayName string `json:"display_name"`
	Owner       string `json:"owner"`
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HTTPHandler) Mint(w http.ResponseWriter, r *http.Request) {
	var req MintHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, StatusHTTPResponse{Success: false, Message: "invalid request body"})
		return
	}
	if req.Caller == "" {
		writeJSON(w, http.StatusBadRequest, StatusHTTPResponse{Success: false, Message: "missing required fields"})
		return
	}

	work, err := h.registry.Mint(r.Context(), domain.ItemID(req.ContentID), req.DisplayName, domain.Account(req.Caller))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ArtworkHTTPResponse{
		ContentID:   uint64(work.ContentID()),
		DisplayName: work.DisplayName(),
		Owner:       string(work.Owner()),
	})
}

func (h *HTTPHandler) Exists(w http.ResponseWriter, r *http.Request) {
	contentID, ok := contentIDFromPath(w, r)
	if !ok {
		return
	}
	caller := r.URL.Query().Get("caller")

	exists, err := h.registry.Exists(r.Context(), contentID, domain.Account(caller))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"content_id": uint64(contentID), "exists": exists})
}

func (h *HTTPHandler) Sell(w http.ResponseWriter, r *http.Request) {
	contentID, ok := contentIDFromPath(w, r)
	if !ok {
		return
	}
	var req SellHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, StatusHTTPResponse{Success: false, Message: "invalid request body"})
		return
	}
	if req.NewOwner == "" || req.Caller == "" {
		writeJSON(w, http.StatusBadRequest, StatusHTTPResponse{Success: false, Message: "missing required fields"})
		return
	}

	err := h.registry.Sell(r.Context(), contentID, domain.Account(req.NewOwner), domain.Account(req.Caller))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, StatusHTTPResponse{Success: true, Message: "artwork sold"})
}

func (h *HTTPHandler) OwnerOf(w http.ResponseWriter, r *http.Request) {
	contentID, ok := contentIDFromPath(w, r)
	if !ok {
		return
	}

	// source=mirror serves dashboards from the cache, falling back to
	// the ledger when the mirror is cold.
	if r.URL.Query().Get("source") == "mirror" {
		owner, hit, err := h.registry.MirroredOwner(r.Context(), contentID)
		if err == nil && hit {
			writeJSON(w, http.StatusOK, map[string]any{"content_id": uint64(contentID), "owner": string(owner), "source": "mirror"})
			return
		}
	}

	owner, err := h.registry.OwnerOf(r.Context(), contentID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"content_id": uint64(contentID), "owner": string(owner), "source": "ledger"})
}

func (h *HTTPHandler) OwnerCount(w http.ResponseWriter, r *http.Request) {
	contentID, ok := contentIDFromPath(w, r)
	if !ok {
		return
	}
	account := r.URL.Query().Get("account")

	count, err := h.registry.OwnerCount(r.Context(), contentID, domain.Account(account))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"account": account, "count": count})
}

func (h *HTTPHandler) GetApproved(w http.ResponseWriter, r *http.Request) {
	contentID, ok := contentIDFromPath(w, r)
	if !ok {
		return
	}

	delegate, err := h.registry.GetApproved(r.Context(), contentID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"content_id": uint64(contentID), "delegate": string(delegate)})
}

func (h *HTTPHandler) Approve(w http.ResponseWriter, r *http.Request) {
	contentID, ok := contentIDFromPath(w, r)
	if !ok {
		return
	}
	var req ApproveHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, StatusHTTPResponse{Success: false, Message: "invalid request body"})
		return
	}
	if req.Caller == "" {
		writeJSON(w, http.StatusBadRequest, StatusHTTPResponse{Success: false, Message: "missing required fields"})
		return
	}

	err := h.registry.Approve(r.Context(), contentID, domain.Account(req.Delegate), domain.Account(req.Caller))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, StatusHTTPResponse{Success: true, Message: "delegate approved"})
}

func (h *HTTPHandler) IsOperator(w http.ResponseWriter, r *http.Request) {
	contentID, ok := contentIDFromPath(w, r)
	if !ok {
		return
	}
	owner := r.URL.Query().Get("owner")
	operator := r.URL.Query().Get("operator")

	approved, err := h.registry.IsOperator(r.Context(), contentID, domain.Account(owner), domain.Account(operator))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"owner": owner, "operator": operator, "approved": approved})
}

func (h *HTTPHandler) SetOperator(w http.ResponseWriter, r *http.Request) {
	contentID, ok := contentIDFromPath(w, r)
	if !ok {
		return
	}
	var req OperatorHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, StatusHTTPResponse{Success: false, Message: "invalid request body"})
		return
	}
	if req.Operator == "" || req.Caller == "" {
		writeJSON(w, http.StatusBadRequest, StatusHTTPResponse{Success: false, Message: "missing required fields"})
		return
	}

	err := h.registry.SetOperator(r.Context(), contentID, domain.Account(req.Operator), req.Approved, domain.Account(req.Caller))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, StatusHTTPResponse{Success: true, Message: "operator updated"})
}

func (h *HTTPHandler) DirectTransfer(w http.ResponseWriter, r *http.Request) {
	h.transfer(w, r, false)
}

func (h *HTTPHandler) SafeTransfer(w http.ResponseWriter, r *http.Request) {
	h.transfer(w, r, true)
}

func (h *HTTPHandler) transfer(w http.ResponseWriter, r *http.Request, safe bool) {
	contentID, ok := contentIDFromPath(w, r)
	if !ok {
		return
	}
	var req TransferHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, StatusHTTPResponse{Success: false, Message: "invalid request body"})
		return
	}
	if req.From == "" || req.To == "" || req.Caller == "" {
		writeJSON(w, http.StatusBadRequest, StatusHTTPResponse{Success: false, Message: "missing required fields"})
		return
	}

	var err error
	if safe {
		err = h.registry.SafeTransfer(r.Context(), contentID, domain.Account(req.From), domain.Account(req.To), domain.Account(req.Caller), req.Data)
	} else {
		err = h.registry.DirectTransfer(r.Context(), contentID, domain.Account(req.From), domain.Account(req.To), domain.Account(req.Caller))
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, StatusHTTPResponse{Success: true, Message: "transfer complete"})
}

func (h *HTTPHandler) Capability(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimPrefix(r.PathValue("id"), "0x")
	id, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, StatusHTTPResponse{Success: false, Message: "invalid capability id"})
		return
	}
	supported := h.registry.SupportsCapability(domain.Capability(id))
	writeJSON(w, http.StatusOK, map[string]any{"capability": r.PathValue("id"), "supported": supported})
}

func contentIDFromPath(w http.ResponseWriter, r *http.Request) (domain.ItemID, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, StatusHTTPResponse{Success: false, Message: "invalid content id"})
		return 0, false
	}
	return domain.ItemID(id), true
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrReceiverRejected):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrInvalidState):
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, StatusHTTPResponse{Success: false, Message: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
