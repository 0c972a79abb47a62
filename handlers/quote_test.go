package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staycalc/handlers"
	"staycalc/models"
	"staycalc/routes"
	"staycalc/services/parser"
	"staycalc/services/pricing"
	"staycalc/services/quote"
	"staycalc/services/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(repo session.Repository) *gin.Engine {
	fixed := time.Date(2025, time.June, 20, 9, 0, 0, 0, time.UTC)
	analyzer := parser.NewAnalyzer(parser.DefaultLexicon(), parser.WithClock(func() time.Time { return fixed }))
	svc := quote.NewQuoteService(repo, analyzer, pricing.NewCalculator(pricing.DefaultTables()), quote.Options{CurrencySuffix: "TL"})

	r := gin.New()
	routes.RegisterRoutes(r, handlers.NewHandlerBundle(handlers.NewQuoteHandler(svc)))
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w, out
}

func TestCalculateQuote_Priced(t *testing.T) {
	r := newRouter(session.NewMemoryStore(0))

	w, out := do(t, r, http.MethodPost, "/api/quote",
		`{"sessionId":"h1","checkin":"2025-07-15","nightCount":"4","adults":2}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, out["completed"])
	assert.Equal(t, float64(25400), out["price"])
	assert.Equal(t, "25.400 TL", out["formattedPrice"])
	assert.Equal(t, "15 Temmuz Salı", out["checkin"])
	assert.Equal(t, "19 Temmuz Cumartesi", out["checkout"])
	assert.NotContains(t, out, "error")
	assert.NotContains(t, out, "missing")
}

func TestCalculateQuote_Incomplete(t *testing.T) {
	r := newRouter(session.NewMemoryStore(0))

	w, out := do(t, r, http.MethodPost, "/api/quote", `{"sessionId":"h2","message":"2 yetişkin 3 gece"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, out["completed"])
	assert.Equal(t, "giriş tarihi", out["missing"])
	assert.Equal(t, "Lütfen eksik bilgileri girin: giriş tarihi", out["message"])
	assert.NotContains(t, out, "price")
}

func TestCalculateQuote_UnsupportedOccupancy(t *testing.T) {
	r := newRouter(session.NewMemoryStore(0))

	w, out := do(t, r, http.MethodPost, "/api/quote",
		`{"sessionId":"h3","message":"3 yetişkin 2 çocuk yaşları 5 ve 8, 14 temmuz, 4 gece"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, out["completed"])
	assert.Equal(t, "Bu kişi/çocuk kombinasyonuna göre fiyatlandırma yapılamıyor.", out["error"])
	assert.NotContains(t, out, "price")
}

func TestCalculateQuote_EmptyBodyUsesGlobalSession(t *testing.T) {
	r := newRouter(session.NewMemoryStore(0))

	w, out := do(t, r, http.MethodPost, "/api/quote", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, out["completed"])
	assert.Equal(t, "giriş tarihi, gece sayısı, yetişkin sayısı", out["missing"])
}

func TestCalculateQuote_MalformedJSON(t *testing.T) {
	r := newRouter(session.NewMemoryStore(0))

	w, out := do(t, r, http.MethodPost, "/api/quote", `{"message":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Geçersiz istek gövdesi", out["error"])
}

func TestQuote_OtherMethodsAreRejected(t *testing.T) {
	r := newRouter(session.NewMemoryStore(0))

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		w, out := do(t, r, method, "/api/quote", "")
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, method)
		assert.Equal(t, "POST kullanın", out["error"], method)
	}
}

func TestSessionEndpoints(t *testing.T) {
	r := newRouter(session.NewMemoryStore(0))

	do(t, r, http.MethodPost, "/api/quote", `{"sessionId":"s","message":"2 yetişkin\n15 temmuz"}`)

	w, out := do(t, r, http.MethodGet, "/api/quote/session/s", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, out["completed"])
	assert.Equal(t, []interface{}{"gece sayısı"}, out["missing"])
	stored := out["session"].(map[string]interface{})
	assert.Equal(t, "2025-07-15", stored["checkin"])
	assert.Equal(t, float64(2), stored["adults"])

	w, out = do(t, r, http.MethodDelete, "/api/quote/session/s", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cleared", out["status"])

	_, out = do(t, r, http.MethodGet, "/api/quote/session/s", "")
	assert.Len(t, out["missing"], 3)
}

func TestGetSeasons(t *testing.T) {
	r := newRouter(session.NewMemoryStore(0))

	w, out := do(t, r, http.MethodGet, "/api/pricing/seasons", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, out["seasons"], 5)
	assert.Equal(t, "TL", out["currency"])
}

type brokenRepo struct{}

func (brokenRepo) Get(context.Context, string) (*models.BookingFields, error) {
	return nil, errors.New("connection refused")
}
func (brokenRepo) Put(context.Context, string, *models.BookingFields) error { return nil }
func (brokenRepo) Delete(context.Context, string) error { return nil }

func TestCalculateQuote_StoreFailureIs500(t *testing.T) {
	r := newRouter(brokenRepo{})

	w, out := do(t, r, http.MethodPost, "/api/quote", `{"message":"2 yetişkin"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Oturum kaydına erişilemedi", out["error"])
}
