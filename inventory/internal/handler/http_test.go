package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"shelf_life/inventory/internal/auth"
	"shelf_life/inventory/internal/logic"
	"shelf_life/inventory/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeRunner ages the sqlite-backed shelf and remembers aged dates.
type fakeRunner struct {
	store *store.Store
	aged  map[string]bool
	calls []bool
}

func (f *fakeRunner) RunOnce(ctx context.Context, date time.Time, force bool) (*store.DayReport, error) {
	f.calls = append(f.calls, force)
	key := date.UTC().Format("2006-01-02")
	if f.aged[key] && !force {
		return nil, errors.AlreadyExistsf("aging for %s", key)
	}
	f.aged[key] = true

	items, err := f.store.AgeStock(ctx, logic.AdvanceOneDay)
	if err != nil {
		return nil, err
	}
	return &store.DayReport{RunID: "run", Date: key, AgedAt: date, Items: items}, nil
}

type fakeReports map[string]*store.DayReport

func (f fakeReports) GetDayReport(_ context.Context, date string) (*store.DayReport, error) {
	if r, ok := f[date]; ok {
		return r, nil
	}
	return nil, errors.NotFoundf("report for %s", date)
}

const (
	staffUsername = "allison"
	staffPassword = "correct horse"
)

type testServer struct {
	router *gin.Engine
	store  *store.Store
	runner *fakeRunner
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	require.NoError(t, auth.InitJWTKey("handler-secret"))

	db, err := store.Open(store.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, store.Migrate(context.Background(), db, store.DriverSQLite))

	s := store.NewStore(db, store.DriverSQLite)
	hash, err := auth.HashPassword(staffPassword)
	require.NoError(t, err)
	_, err = s.CreateStaff(context.Background(), staffUsername, hash)
	require.NoError(t, err)

	runner := &fakeRunner{store: s, aged: map[string]bool{}}
	reports := fakeReports{
		"2026-10-16": {RunID: "earlier", Date: "2026-10-16"},
	}
	return &testServer{
		router: NewRouter(s, s, reports, runner),
		store:  s,
		runner: runner,
	}
}

func (ts *testServer) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

// login signs in as the staff member every test server starts with.
func (ts *testServer) login(t *testing.T) string {
	t.Helper()
	return ts.loginAs(t, staffUsername, staffPassword)
}

func (ts *testServer) loginAs(t *testing.T, username, password string) string {
	t.Helper()
	creds := map[string]string{"username": username, "password": password}
	w := ts.do(t, http.MethodPost, "/api/staff/login", creds, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, http.MethodGet, "/healthz", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStaffLoginRejectsBadPassword(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	w := ts.do(t, http.MethodPost, "/api/staff/login", map[string]string{"username": "allison", "password": "wrong password"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = ts.do(t, http.MethodPost, "/api/staff/login", map[string]string{"username": "nobody", "password": "wrong password"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = ts.do(t, http.MethodPost, "/api/staff/register", map[string]string{"username": "allison", "password": "correct horse"}, token)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = ts.do(t, http.MethodPost, "/api/staff/register", map[string]string{"username": "leeroy", "password": "short"}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterRequiresStaff(t *testing.T) {
	ts := newTestServer(t)
	creds := map[string]string{"username": "leeroy", "password": "at least eight"}

	w := ts.do(t, http.MethodPost, "/api/staff/register", creds, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = ts.do(t, http.MethodPost, "/api/staff/login", creds, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = ts.do(t, http.MethodPost, "/api/staff/register", creds, ts.login(t))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	token := ts.loginAs(t, "leeroy", "at least eight")
	w = ts.do(t, http.MethodPost, "/api/days/advance?date=2026-10-17", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestItemLifecycle(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/api/items", map[string]interface{}{"name": "Aged Brie", "sell_in": 2, "quality": 0}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := ts.login(t)

	w = ts.do(t, http.MethodPost, "/api/items", map[string]interface{}{"sku": "AB-1", "name": "Aged Brie", "sell_in": 2, "quality": 0}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created store.StockItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "AB-1", created.SKU)
	assert.Equal(t, logic.AgedCheese, created.Category)

	w = ts.do(t, http.MethodPost, "/api/items", map[string]interface{}{"sku": "AB-1", "name": "Aged Brie", "sell_in": 2, "quality": 0}, token)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = ts.do(t, http.MethodPost, "/api/items", map[string]interface{}{"name": "House Wine", "category": "aged_cheese", "sell_in": 30, "quality": 5}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var wine store.StockItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &wine))
	assert.NotEmpty(t, wine.SKU)
	assert.Equal(t, logic.AgedCheese, wine.Category)

	w = ts.do(t, http.MethodGet, "/api/items", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Items []store.StockItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Items, 2)

	w = ts.do(t, http.MethodDelete, "/api/items/"+itoa(wine.ID), nil, token)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = ts.do(t, http.MethodGet, "/api/items/"+itoa(wine.ID), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(t, http.MethodGet, "/api/items/abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateItemValidation(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	for name, body := range map[string]interface{}{
		"missing name":      map[string]interface{}{"sell_in": 1, "quality": 1},
		"unknown category":  map[string]interface{}{"name": "x", "category": "wine"},
		"negative quality":  map[string]interface{}{"name": "x", "quality": -1},
		"quality overflow":  map[string]interface{}{"name": "x", "quality": int64(math.MaxInt32) + 1},
		"sell-in overflow":  map[string]interface{}{"name": "x", "sell_in": int64(math.MaxInt32) + 1},
		"sell-in underflow": map[string]interface{}{"name": "x", "sell_in": int64(math.MinInt32) - 1},
	} {
		t.Run(name, func(t *testing.T) {
			w := ts.do(t, http.MethodPost, "/api/items", body, token)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func TestAdvanceDay(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	_, err := ts.store.CreateItem(context.Background(), store.StockItem{SKU: "CM-1", Item: logic.NewItem("Conjured Mana Cake", 0, 50)})
	require.NoError(t, err)

	w := ts.do(t, http.MethodPost, "/api/days/advance?date=2026-10-17", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = ts.do(t, http.MethodPost, "/api/days/advance?date=2026-10-17", nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var report store.DayReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, "2026-10-17", report.Date)
	require.Len(t, report.Items, 1)
	assert.Equal(t, 46, report.Items[0].Quality)

	w = ts.do(t, http.MethodPost, "/api/days/advance?date=2026-10-17", nil, token)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = ts.do(t, http.MethodPost, "/api/days/advance?date=2026-10-17&force=true", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []bool{false, false, true}, ts.runner.calls)

	w = ts.do(t, http.MethodPost, "/api/days/advance?date=yesterday", nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDayReport(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/api/days/2026-10-16", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"run_id":"earlier"`)

	w = ts.do(t, http.MethodGet, "/api/days/2026-10-15", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(t, http.MethodGet, "/api/days/october", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
