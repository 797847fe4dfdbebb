package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lqhuy182/art-registry/internal/adapter/receiver"
	"github.com/lqhuy182/art-registry/internal/core/domain"
	"github.com/lqhuy182/art-registry/internal/core/service"
)

type mapCacheRepo struct {
	owners map[domain.ItemID]domain.Account
}

func (m *mapCacheRepo) SetOwner(ctx context.Context, itemID domain.ItemID, owner domain.Account) error {
	m.owners[itemID] = owner
	return nil
}

func (m *mapCacheRepo) ReplaceOwner(ctx context.Context, itemID domain.ItemID, from, to domain.Account) (bool, error) {
	if current, ok := m.owners[itemID]; ok && current != from {
		return false, nil
	}
	m.owners[itemID] = to
	return true, nil
}

func (m *mapCacheRepo) GetOwner(ctx context.Context, itemID domain.ItemID) (domain.Account, bool, error) {
	owner, ok := m.owners[itemID]
	return owner, ok, nil
}

func (m *mapCacheRepo) DeleteOwner(ctx context.Context, itemID domain.ItemID) error {
	delete(m.owners, itemID)
	return nil
}

func newTestMux(t *testing.T) (*http.ServeMux, *service.RegistryService) {
	t.Helper()
	artist, err := domain.NewArtist("artist", "registry")
	if err != nil {
		t.Fatalf("NewArtist failed: %v", err)
	}
	cache := &mapCacheRepo{owners: make(map[domain.ItemID]domain.Account)}
	svc := service.NewRegistryService(artist, receiver.NewRegistry(), cache, 100)
	t.Cleanup(svc.Close)

	mux := http.NewServeMux()
	NewHTTPHandler(svc).RegisterRoutes(mux)
	return mux, svc
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func mintPiece(t *testing.T, mux *http.ServeMux) {
	t.Helper()
	rec := doJSON(t, mux, http.MethodPost, "/api/artworks", MintHTTPRequest{
		ContentID: 42, DisplayName: "Blue Study", Caller: "artist",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("mint returned %d: %s", rec.Code, rec.Body.String())
	}
}

func TestMintEndpoint(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/api/artworks", MintHTTPRequest{
		ContentID: 42, DisplayName: "Blue Study", Caller: "artist",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp ArtworkHTTPResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ContentID != 42 || resp.Owner != "registry" || resp.DisplayName != "Blue Study" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestMintEndpoint_Unauthorized(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/api/artworks", MintHTTPRequest{
		ContentID: 42, DisplayName: "forged", Caller: "mallory",
	})
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestMintEndpoint_Duplicate(t *testing.T) {
	mux, _ := newTestMux(t)
	mintPiece(t, mux)

	rec := doJSON(t, mux, http.MethodPost, "/api/artworks", MintHTTPRequest{
		ContentID: 42, DisplayName: "copy", Caller: "artist",
	})
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", rec.Code)
	}
}

func TestMintEndpoint_BadBody(t *testing.T) {
	mux, _ := newTestMux(t)

	req := httptest.NewRequest(http.MethodPost, "/api/artworks", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestOwnerEndpoint(t *testing.T) {
	mux, _ := newTestMux(t)
	mintPiece(t, mux)

	rec := doJSON(t, mux, http.MethodGet, "/api/artworks/42/owner", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["owner"] != "registry" || resp["source"] != "ledger" {
		t.Errorf("unexpected response: %v", resp)
	}
}

func TestOwnerEndpoint_Unminted(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := doJSON(t, mux, http.MethodGet, "/api/artworks/99/owner", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestOwnerEndpoint_MirrorSource(t *testing.T) {
	mux, _ := newTestMux(t)
	mintPiece(t, mux)

	rec := doJSON(t, mux, http.MethodGet, "/api/artworks/42/owner?source=mirror", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["owner"] != "registry" || resp["source"] != "mirror" {
		t.Errorf("unexpected response: %v", resp)
	}
}

func TestSellEndpoint(t *testing.T) {
	mux, svc := newTestMux(t)
	mintPiece(t, mux)

	go func() {
		for range svc.Events() {
		}
	}()

	rec := doJSON(t, mux, http.MethodPost, "/api/artworks/42/sell", SellHTTPRequest{
		NewOwner: "buyer", Caller: "artist",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, mux, http.MethodGet, "/api/artworks/42/owner", nil)
	var resp map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["owner"] != "buyer" {
		t.Errorf("expected buyer, got %v", resp["owner"])
	}

	// Registry no longer custodian
	rec = doJSON(t, mux, http.MethodPost, "/api/artworks/42/sell", SellHTTPRequest{
		NewOwner: "other", Caller: "artist",
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", rec.Code)
	}
}

func TestTransferEndpoint_SelfTransfer(t *testing.T) {
	mux, _ := newTestMux(t)
	mintPiece(t, mux)

	rec := doJSON(t, mux, http.MethodPost, "/api/artworks/42/transfer", TransferHTTPRequest{
		From: "registry", To: "registry", Caller: "registry",
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", rec.Code)
	}
}

func TestExistsEndpoint_Unauthorized(t *testing.T) {
	mux, _ := newTestMux(t)
	mintPiece(t, mux)

	rec := doJSON(t, mux, http.MethodGet, "/api/artworks/42/exists?caller=mallory", nil)
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}

	rec = doJSON(t, mux, http.MethodGet, "/api/artworks/42/exists?caller=artist", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["exists"] != true {
		t.Errorf("expected exists true, got %v", resp["exists"])
	}
}

func TestCapabilityEndpoint(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := doJSON(t, mux, http.MethodGet, "/api/capabilities/0x80ac58cd", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["supported"] != true {
		t.Errorf("expected supported true, got %v", resp["supported"])
	}

	rec = doJSON(t, mux, http.MethodGet, "/api/capabilities/0x12345678", nil)
	json.NewDecoder(rec.Body).Decode(&resp)
	if resp["supported"] != false {
		t.Errorf("expected supported false, got %v", resp["supported"])
	}
}

func TestApproveEndpoint_OwnerDelegate(t *testing.T) {
	mux, svc := newTestMux(t)
	mintPiece(t, mux)

	go func() {
		for range svc.Events() {
		}
	}()

	// Approving the current owner is invalid
	rec := doJSON(t, mux, http.MethodPost, "/api/artworks/42/approve", ApproveHTTPRequest{
		Delegate: "registry", Caller: "registry",
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", rec.Code)
	}

	rec = doJSON(t, mux, http.MethodPost, "/api/artworks/42/approve", ApproveHTTPRequest{
		Delegate: "carol", Caller: "registry",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, mux, http.MethodGet, "/api/artworks/42/approved", nil)
	var resp map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["delegate"] != "carol" {
		t.Errorf("expected carol, got %v", resp["delegate"])
	}
}
