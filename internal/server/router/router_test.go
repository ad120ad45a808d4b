package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/fdiazguiza/almacen/internal/database"
	"github.com/fdiazguiza/almacen/internal/domain/models"
	"github.com/fdiazguiza/almacen/internal/server/handlers"
	"github.com/fdiazguiza/almacen/internal/service/inventory"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	articleSvc := inventory.NewArticleService(db, nil)
	engine := New(Handlers{
		General:  handlers.NewGeneralHandler(articleSvc, db, nil),
		Articles: handlers.NewArticleHandler(articleSvc, nil),
		Clients:  handlers.NewClientHandler(inventory.NewClientService(db, nil), nil),
		Orders:   handlers.NewOrderHandler(inventory.NewOrderService(db, nil), nil),
	}, nil)
	return engine, db
}

func do(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func seedArticle(t *testing.T, db *gorm.DB, code, name string, price float64) {
	t.Helper()
	require.NoError(t, db.Create(&models.Article{
		Code: code, Section: "Tools", Name: name, Price: price,
		AddedOn: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Origin: "ES",
	}).Error)
}

func TestIndexSummary(t *testing.T) {
	engine, db := setupRouter(t)
	seedArticle(t, db, "A1", "Hammer", 9.99)
	seedArticle(t, db, "B2", "Rake", 14.5)

	w := do(engine, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		Articulos      []map[string]any `json:"articulos"`
		TotalArticulos int              `json:"total_articulos"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, 2, payload.TotalArticulos)
	require.Len(t, payload.Articulos, 2)
	// The summary carries the compact field set only.
	assert.Contains(t, payload.Articulos[0], "codigo_articulo")
	assert.NotContains(t, payload.Articulos[0], "pais_origen")
}

func TestHealthz(t *testing.T) {
	engine, _ := setupRouter(t)

	w := do(engine, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok"`)
}

func TestArticleCreateAndGet(t *testing.T) {
	engine, _ := setupRouter(t)

	body := `{"codigo_articulo":"A1","seccion":"Tools","nombre_articulo":"Hammer","precio":9.99,"fecha":"2025-01-01","importado":0,"pais_origen":"ES"}`
	w := do(engine, http.MethodPost, "/articulos", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(engine, http.MethodGet, "/articulos/A1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Article
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Hammer", got.Name)
	assert.Equal(t, 9.99, got.Price)
}

func TestArticleCreateValidationFailure(t *testing.T) {
	engine, _ := setupRouter(t)

	body := `{"codigo_articulo":"A1","seccion":"Tools","nombre_articulo":"Hammer","fecha":"2025-01-01","pais_origen":"ES"}`
	w := do(engine, http.MethodPost, "/articulos", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "precio")
}

func TestArticleGetNotFound(t *testing.T) {
	engine, _ := setupRouter(t)

	w := do(engine, http.MethodGet, "/articulos/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestArticleUpdate(t *testing.T) {
	engine, db := setupRouter(t)
	seedArticle(t, db, "A1", "Hammer", 9.99)

	body := `{"seccion":"Tools","nombre_articulo":"Hammer","precio":12.50,"importado":0,"pais_origen":"ES"}`
	w := do(engine, http.MethodPut, "/articulos/A1", body)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(engine, http.MethodGet, "/articulos/A1", "")
	var got models.Article
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 12.50, got.Price)
}

func TestArticleDelete(t *testing.T) {
	engine, db := setupRouter(t)
	seedArticle(t, db, "A1", "Hammer", 9.99)

	w := do(engine, http.MethodDelete, "/articulos/A1", "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(engine, http.MethodGet, "/articulos/A1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestArticleDeleteReferencedConflict(t *testing.T) {
	engine, db := setupRouter(t)
	seedArticle(t, db, "A1", "Hammer", 9.99)
	require.NoError(t, db.Create(&models.Client{Code: "C1", Company: "Ferretería Sur"}).Error)
	require.NoError(t, db.Create(&models.Order{
		ClientCode: "C1", ArticleCode: "A1", Quantity: 1,
		OrderedOn: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	}).Error)

	w := do(engine, http.MethodDelete, "/articulos/A1", "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestArticleSearchEmptyTerm(t *testing.T) {
	engine, db := setupRouter(t)
	seedArticle(t, db, "A1", "Hammer", 9.99)

	w := do(engine, http.MethodGet, "/articulos/buscar", "")
	require.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		Articulos []models.Article `json:"articulos"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Empty(t, payload.Articulos)
}

func TestArticleSearchByTerm(t *testing.T) {
	engine, db := setupRouter(t)
	seedArticle(t, db, "A1", "Hammer", 9.99)
	seedArticle(t, db, "B2", "Rake", 14.5)

	w := do(engine, http.MethodGet, "/articulos/buscar?termino=hammer", "")
	require.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		Articulos []models.Article `json:"articulos"`
		Termino   string           `json:"termino"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	require.Len(t, payload.Articulos, 1)
	assert.Equal(t, "A1", payload.Articulos[0].Code)
	assert.Equal(t, "hammer", payload.Termino)
}

func TestArticleExportCSV(t *testing.T) {
	engine, db := setupRouter(t)
	seedArticle(t, db, "A1", "Hammer", 9.99)

	w := do(engine, http.MethodGet, "/articulos/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "codigo_articulo,seccion,nombre_articulo,precio,fecha,importado,pais_origen,foto", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "A1,Tools,Hammer,9.99,2025-01-01"))
}

func TestClientsList(t *testing.T) {
	engine, db := setupRouter(t)
	require.NoError(t, db.Create(&models.Client{Code: "C1", Company: "Ferretería Sur"}).Error)

	w := do(engine, http.MethodGet, "/clientes", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ferretería Sur")
}

func TestOrdersListDetailed(t *testing.T) {
	engine, db := setupRouter(t)
	seedArticle(t, db, "A1", "Hammer", 9.99)
	require.NoError(t, db.Create(&models.Client{Code: "C1", Company: "Ferretería Sur"}).Error)
	require.NoError(t, db.Create(&models.Order{
		ClientCode: "C1", ArticleCode: "A1", Quantity: 2,
		OrderedOn: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	}).Error)

	w := do(engine, http.MethodGet, "/pedidos", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Ferretería Sur")

	w = do(engine, http.MethodGet, "/pedidos?detalle=1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ferretería Sur")
	assert.Contains(t, w.Body.String(), "Hammer")
}

func TestUnknownRoute(t *testing.T) {
	engine, _ := setupRouter(t)

	w := do(engine, http.MethodGet, "/no-such-page", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "la página solicitada no existe")
}

func TestRequestIDHeader(t *testing.T) {
	engine, _ := setupRouter(t)

	w := do(engine, http.MethodGet, "/healthz", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}
