package billing

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	svc, _ := newTestService()
	handler := NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)
	r := chi.NewRouter()
	r.Route("/api/bills", handler.MountRoutes)
	return r
}

func postJSON(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandlerCreateBill(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/api/bills/", validInput())
	require.Equal(t, http.StatusCreated, rec.Code)

	var detail BillDetail
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&detail))
	require.Equal(t, "1732.50", detail.Total)
	require.Equal(t, "₹1,732.50", detail.TotalDisplay)
	require.Equal(t, "10", detail.Configuration.MakingChargesPercent)
}

func TestHandlerCreateBillEmptySelection(t *testing.T) {
	router := newTestRouter(t)

	input := validInput()
	input.Items = nil

	rec := postJSON(t, router, "/api/bills/", input)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "please select at least one product")
}

func TestHandlerCreateBillBadCurrency(t *testing.T) {
	router := newTestRouter(t)

	input := validInput()
	input.Currency = "USD"

	rec := postJSON(t, router, "/api/bills/", input)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerGetMissingBill(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/bills/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerGetInvalidBillID(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/bills/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
