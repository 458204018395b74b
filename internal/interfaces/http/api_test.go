package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/gestion-stock/internal/application/analytics"
	"github.com/jhoicas/gestion-stock/internal/application/inventory"
	"github.com/jhoicas/gestion-stock/internal/application/report"
	"github.com/jhoicas/gestion-stock/internal/application/usecase"
	"github.com/jhoicas/gestion-stock/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/gestion-stock/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// App completa sobre el driver en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakePDF struct{}

func (fakePDF) GenerateStockReport(context.Context, *report.StockReport) ([]byte, error) {
	return []byte("%PDF-1.3 fake"), nil
}

func newAPI(t *testing.T, health func(context.Context) error) *fiber.App {
	t.Helper()
	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)
	categoryRepo := memory.NewCategoryRepository(store)
	supplierRepo := memory.NewSupplierRepository(store)
	productRepo := memory.NewProductRepository(store)
	saleRepo := memory.NewSaleRepository(store)

	errs := apphttp.NewErrorMapper(nil, false)
	app := fiber.New(fiber.Config{ErrorHandler: errs.FiberErrorHandler()})
	apphttp.Router(app, apphttp.RouterDeps{
		UserUC:      usecase.NewUserUseCase(userRepo),
		CategoryUC:  usecase.NewCategoryUseCase(categoryRepo),
		SupplierUC:  usecase.NewSupplierUseCase(supplierRepo),
		ProductUC:   usecase.NewProductUseCase(productRepo, categoryRepo, supplierRepo),
		SaleLedger:  inventory.NewSaleLedgerUseCase(memory.NewTxRunner(store), saleRepo),
		Movements:   inventory.NewMovementUseCase(productRepo, saleRepo),
		Stats:       appanalytics.NewStatsUseCase(memory.NewStatsRepository(store)),
		Report:      report.NewStockReportUseCase(productRepo, userRepo, fakePDF{}),
		Errors:      errs,
		JWTSecret:   testJWTSecret,
		JWTIssuer:   testIssuer,
		HealthCheck: health,
		AppName:     "gestion-stock",
	})
	return app
}

// call ejecuta una petición y decodifica la respuesta JSON en out (si no es nil).
func call(t *testing.T, app *fiber.App, method, path, token string, body any, out any) int {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// syncedToken sincroniza al usuario y devuelve su header Authorization.
func syncedToken(t *testing.T, app *fiber.App, userID string) string {
	t.Helper()
	tok := bearer(t, userID)
	require.Equal(t, http.StatusOK, call(t, app, http.MethodPost, "/api/users/sync", tok, nil, nil))
	return tok
}

type productJSON struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Stock     int    `json:"stock"`
	InitStock int    `json:"initStock"`
	Price     string `json:"price"`
	Category  *struct {
		Name string `json:"name"`
	} `json:"category"`
}

type saleJSON struct {
	ID         string `json:"id"`
	Quantity   int    `json:"quantity"`
	TotalPrice string `json:"totalPrice"`
}

type errorJSON struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func createProduct(t *testing.T, app *fiber.App, tok string, body map[string]any) productJSON {
	t.Helper()
	var p productJSON
	require.Equal(t, http.StatusCreated, call(t, app, http.MethodPost, "/api/products", tok, body, &p))
	return p
}

func getProduct(t *testing.T, app *fiber.App, tok, id string) productJSON {
	t.Helper()
	var p productJSON
	require.Equal(t, http.StatusOK, call(t, app, http.MethodGet, "/api/products/"+id, tok, nil, &p))
	return p
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios
// ──────────────────────────────────────────────────────────────────────────────

func TestUsers_SyncIdempotente(t *testing.T) {
	app := newAPI(t, nil)
	tok := bearer(t, testUserID)

	var first, second struct {
		Message string `json:"message"`
		Created bool   `json:"created"`
	}
	require.Equal(t, http.StatusOK, call(t, app, http.MethodPost, "/api/users/sync", tok, nil, &first))
	require.Equal(t, http.StatusOK, call(t, app, http.MethodPost, "/api/users/sync", tok, nil, &second))
	assert.True(t, first.Created)
	assert.False(t, second.Created)

	var me struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	require.Equal(t, http.StatusOK, call(t, app, http.MethodGet, "/api/users/me", tok, nil, &me))
	assert.Equal(t, testUserID, me.ID)
	assert.Equal(t, "ana@example.com", me.Email)
}

func TestUsers_SinSincronizarRetorna403(t *testing.T) {
	app := newAPI(t, nil)
	var e errorJSON
	status := call(t, app, http.MethodGet, "/api/products", bearer(t, testUserID), nil, &e)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "USER_NOT_SYNCED", e.Code)
}

func TestUsers_SinTokenRetorna401(t *testing.T) {
	app := newAPI(t, nil)
	assert.Equal(t, http.StatusUnauthorized, call(t, app, http.MethodGet, "/api/stats", "", nil, nil))
	assert.Equal(t, http.StatusUnauthorized, call(t, app, http.MethodPost, "/api/users/sync", "", nil, nil))
}

func TestUsers_ActualizarNombre(t *testing.T) {
	app := newAPI(t, nil)
	tok := syncedToken(t, app, testUserID)

	assert.Equal(t, http.StatusBadRequest, call(t, app, http.MethodPut, "/api/users/me", tok, map[string]any{"name": ""}, nil))
	assert.Equal(t, http.StatusOK, call(t, app, http.MethodPut, "/api/users/me", tok, map[string]any{"name": "Ana María"}, nil))

	var me struct {
		Name string `json:"name"`
	}
	call(t, app, http.MethodGet, "/api/users/me", tok, nil, &me)
	assert.Equal(t, "Ana María", me.Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas: escenario completo de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestSales_EscenarioDeStock(t *testing.T) {
	app := newAPI(t, nil)
	tok := syncedToken(t, app, testUserID)
	p := createProduct(t, app, tok, map[string]any{"name": "Café", "stock": 10, "price": 100})

	// Vender 3 → stock 7, total 300.
	var sale saleJSON
	require.Equal(t, http.StatusCreated, call(t, app, http.MethodPost, "/api/sales", tok,
		map[string]any{"productId": p.ID, "quantity": 3}, &sale))
	assert.Equal(t, "300", sale.TotalPrice)
	assert.Equal(t, 7, getProduct(t, app, tok, p.ID).Stock)

	// Vender 10 → 400 y el stock no cambia.
	var e errorJSON
	assert.Equal(t, http.StatusBadRequest, call(t, app, http.MethodPost, "/api/sales", tok,
		map[string]any{"productId": p.ID, "quantity": 10}, &e))
	assert.Equal(t, "INSUFFICIENT_STOCK", e.Code)
	assert.Equal(t, 7, getProduct(t, app, tok, p.ID).Stock)

	// Anular la venta → stock 10.
	assert.Equal(t, http.StatusOK, call(t, app, http.MethodDelete, "/api/sales/"+sale.ID, tok, nil, nil))
	assert.Equal(t, 10, getProduct(t, app, tok, p.ID).Stock)

	// Venta inexistente → 404.
	assert.Equal(t, http.StatusNotFound, call(t, app, http.MethodDelete, "/api/sales/"+sale.ID, tok, nil, nil))
}

func TestSales_Validaciones(t *testing.T) {
	app := newAPI(t, nil)
	tok := syncedToken(t, app, testUserID)
	p := createProduct(t, app, tok, map[string]any{"name": "Café", "stock": 10, "price": 100})

	tests := []struct {
		name string
		body map[string]any
		want int
	}{
		{"cantidad cero", map[string]any{"productId": p.ID, "quantity": 0}, http.StatusBadRequest},
		{"cantidad negativa", map[string]any{"productId": p.ID, "quantity": -1}, http.StatusBadRequest},
		{"sin cantidad", map[string]any{"productId": p.ID}, http.StatusBadRequest},
		{"producto inexistente", map[string]any{"productId": "no-existe", "quantity": 1}, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, call(t, app, http.MethodPost, "/api/sales", tok, tt.body, nil))
		})
	}
	assert.Equal(t, 10, getProduct(t, app, tok, p.ID).Stock)
}

func TestSales_AisladasPorUsuario(t *testing.T) {
	app := newAPI(t, nil)
	ana := syncedToken(t, app, testUserID)
	luis := syncedToken(t, app, "00000000-0000-0000-0000-000000000009")
	p := createProduct(t, app, ana, map[string]any{"name": "Café", "stock": 10, "price": 100})

	assert.Equal(t, http.StatusNotFound, call(t, app, http.MethodPost, "/api/sales", luis,
		map[string]any{"productId": p.ID, "quantity": 1}, nil))
	assert.Equal(t, http.StatusNotFound, call(t, app, http.MethodGet, "/api/products/"+p.ID, luis, nil, nil))

	var list []productJSON
	require.Equal(t, http.StatusOK, call(t, app, http.MethodGet, "/api/products", luis, nil, &list))
	assert.Empty(t, list)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos, categorías y proveedores
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_CRUD(t *testing.T) {
	app := newAPI(t, nil)
	tok := syncedToken(t, app, testUserID)

	var cat struct {
		ID string `json:"id"`
	}
	require.Equal(t, http.StatusCreated, call(t, app, http.MethodPost, "/api/categories", tok, map[string]any{"name": "Bebidas"}, &cat))

	p := createProduct(t, app, tok, map[string]any{"name": "Café", "stock": 4, "price": "12.50", "categoryId": cat.ID})
	assert.Equal(t, 4, p.InitStock)
	require.NotNil(t, p.Category)
	assert.Equal(t, "Bebidas", p.Category.Name)

	var updated productJSON
	require.Equal(t, http.StatusOK, call(t, app, http.MethodPut, "/api/products/"+p.ID, tok,
		map[string]any{"name": "Café molido", "stock": 8, "price": 15}, &updated))
	assert.Equal(t, "Café molido", updated.Name)
	assert.Equal(t, 4, updated.InitStock)
	assert.Nil(t, updated.Category)

	var overview struct {
		LowStockProducts []productJSON `json:"lowStockProducts"`
		RecentProducts   []productJSON `json:"recentProducts"`
	}
	require.Equal(t, http.StatusOK, call(t, app, http.MethodGet, "/api/products/overview", tok, nil, &overview))
	assert.Empty(t, overview.LowStockProducts)
	assert.Len(t, overview.RecentProducts, 1)

	var deleted struct {
		Message string      `json:"message"`
		Product productJSON `json:"product"`
	}
	require.Equal(t, http.StatusOK, call(t, app, http.MethodDelete, "/api/products/"+p.ID, tok, nil, &deleted))
	assert.Equal(t, p.ID, deleted.Product.ID)
	assert.Equal(t, http.StatusNotFound, call(t, app, http.MethodGet, "/api/products/"+p.ID, tok, nil, nil))
}

func TestProducts_Validaciones(t *testing.T) {
	app := newAPI(t, nil)
	tok := syncedToken(t, app, testUserID)

	for _, body := range []map[string]any{
		{"stock": 1, "price": 1},
		{"name": "x", "price": 1},
		{"name": "x", "stock": 1},
		{"name": "x", "stock": -1, "price": 1},
		{"name": "x", "stock": 1, "price": 1, "categoryId": "no-existe"},
		{"name": "x", "stock": 1 << 40, "price": 1},
		{"name": "x", "stock": 1, "price": "1.005"},
		{"name": "x", "stock": 1, "price": 10000000000000},
	} {
		assert.Equal(t, http.StatusBadRequest, call(t, app, http.MethodPost, "/api/products", tok, body, nil), "%v", body)
	}
	assert.Equal(t, http.StatusNotFound, call(t, app, http.MethodPut, "/api/products/no-existe", tok,
		map[string]any{"name": "x", "stock": 1, "price": 1}, nil))

	var list []productJSON
	require.Equal(t, http.StatusOK, call(t, app, http.MethodGet, "/api/products", tok, nil, &list))
	assert.Empty(t, list)
}

func TestCategories_BorrarPorQuery(t *testing.T) {
	app := newAPI(t, nil)
	tok := syncedToken(t, app, testUserID)

	var cat struct {
		ID string `json:"id"`
	}
	require.Equal(t, http.StatusCreated, call(t, app, http.MethodPost, "/api/categories", tok, map[string]any{"name": "Bebidas"}, &cat))
	assert.Equal(t, http.StatusBadRequest, call(t, app, http.MethodPost, "/api/categories", tok, map[string]any{"name": ""}, nil))

	assert.Equal(t, http.StatusBadRequest, call(t, app, http.MethodDelete, "/api/categories", tok, nil, nil))
	assert.Equal(t, http.StatusOK, call(t, app, http.MethodDelete, "/api/categories?id="+cat.ID, tok, nil, nil))
	assert.Equal(t, http.StatusNotFound, call(t, app, http.MethodDelete, "/api/categories?id="+cat.ID, tok, nil, nil))

	var list []any
	require.Equal(t, http.StatusOK, call(t, app, http.MethodGet, "/api/categories", tok, nil, &list))
	assert.Empty(t, list)
}

func TestSuppliers_BorrarPorCuerpo(t *testing.T) {
	app := newAPI(t, nil)
	tok := syncedToken(t, app, testUserID)

	assert.Equal(t, http.StatusBadRequest, call(t, app, http.MethodPost, "/api/suppliers", tok, map[string]any{"name": "Acme"}, nil))

	var sup struct {
		ID    string `json:"id"`
		Phone string `json:"phone"`
	}
	require.Equal(t, http.StatusCreated, call(t, app, http.MethodPost, "/api/suppliers", tok, map[string]any{"name": "Acme", "phone": "555"}, &sup))
	assert.Equal(t, "555", sup.Phone)

	assert.Equal(t, http.StatusBadRequest, call(t, app, http.MethodDelete, "/api/suppliers", tok, map[string]any{}, nil))
	assert.Equal(t, http.StatusOK, call(t, app, http.MethodDelete, "/api/suppliers", tok, map[string]any{"id": sup.ID}, nil))
	assert.Equal(t, http.StatusNotFound, call(t, app, http.MethodDelete, "/api/suppliers", tok, map[string]any{"id": sup.ID}, nil))
}

// ──────────────────────────────────────────────────────────────────────────────
// Panel, movimientos y reporte
// ──────────────────────────────────────────────────────────────────────────────

func TestStatsYMovimientos(t *testing.T) {
	app := newAPI(t, nil)
	tok := syncedToken(t, app, testUserID)
	p := createProduct(t, app, tok, map[string]any{"name": "Café", "stock": 10, "price": 100})
	createProduct(t, app, tok, map[string]any{"name": "Té", "stock": 2, "price": "2.50"})
	createProduct(t, app, tok, map[string]any{"name": "Chicle", "stock": 3, "price": "0.99"})
	require.Equal(t, http.StatusCreated, call(t, app, http.MethodPost, "/api/sales", tok,
		map[string]any{"productId": p.ID, "quantity": 3}, nil))

	luis := syncedToken(t, app, "00000000-0000-0000-0000-000000000009")
	createProduct(t, app, luis, map[string]any{"name": "Ajeno", "stock": 4, "price": 50})

	var stats struct {
		TotalProducts   int    `json:"totalProducts"`
		LowStock        int    `json:"lowStock"`
		RecentMovements int    `json:"recentMovements"`
		StockValue      string `json:"stockValue"`
	}
	require.Equal(t, http.StatusOK, call(t, app, http.MethodGet, "/api/stats", tok, nil, &stats))
	assert.Equal(t, 3, stats.TotalProducts)
	assert.Equal(t, 2, stats.LowStock)
	assert.Equal(t, 4, stats.RecentMovements)
	// 100×7 + 2.50×2 + 0.99×3
	assert.Equal(t, "707.97", stats.StockValue)

	var movements []struct {
		Type         string  `json:"type"`
		SupplierName *string `json:"supplierName"`
	}
	require.Equal(t, http.StatusOK, call(t, app, http.MethodGet, "/api/movements", tok, nil, &movements))
	require.Len(t, movements, 4)
	assert.Equal(t, "Sale", movements[0].Type)
	assert.Nil(t, movements[0].SupplierName)
}

func TestReporteStock_DevuelvePDF(t *testing.T) {
	app := newAPI(t, nil)
	tok := syncedToken(t, app, testUserID)

	req := httptest.NewRequest(http.MethodGet, "/api/reports/stock", nil)
	req.Header.Set("Authorization", tok)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "stock-")
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

func TestHealth(t *testing.T) {
	ok := newAPI(t, nil)
	assert.Equal(t, http.StatusOK, call(t, ok, http.MethodGet, "/health", "", nil, nil))

	down := newAPI(t, func(context.Context) error { return errors.New("sin conexión") })
	assert.Equal(t, http.StatusServiceUnavailable, call(t, down, http.MethodGet, "/health", "", nil, nil))
}
