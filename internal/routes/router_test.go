package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"fleetflow/internal/analytics"
	"fleetflow/internal/config"
	"fleetflow/internal/controllers"
	"fleetflow/internal/middleware"
	"fleetflow/internal/repository"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	// An in-memory database exists per connection; keep the pool at one.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	auth := middleware.NewAuth("test-secret")
	stats := analytics.NewService(db)
	ctrl := Controllers{
		Auth:        controllers.NewAuthController(repository.NewUserRepo(db), auth),
		Vehicle:     controllers.NewVehicleController(repository.NewVehicleRepo(db), stats),
		Driver:      controllers.NewDriverController(repository.NewDriverRepo(db), stats),
		Customer:    controllers.NewCustomerController(repository.NewCustomerRepo(db)),
		Route:       controllers.NewRouteController(repository.NewRouteRepo(db)),
		Delivery:    controllers.NewDeliveryController(repository.NewDeliveryRepo(db), stats),
		Maintenance: controllers.NewMaintenanceController(repository.NewMaintenanceRepo(db)),
		Fuel:        controllers.NewFuelController(repository.NewFuelRepo(db), stats),
		Trip:        controllers.NewTripController(repository.NewTripRepo(db)),
		Analytics:   controllers.NewAnalyticsController(stats),
	}
	return SetupRouter(auth, ctrl)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, r *gin.Engine, email, role string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Test " + role,
		"email":    email,
		"password": "secret123",
		"role":     role,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: %d %s", role, w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Token == "" {
		t.Fatalf("register response: %v %s", err, w.Body.String())
	}
	return resp.Token
}

func TestHealthIsPublic(t *testing.T) {
	r := newTestServer(t)
	w := doJSON(t, r, http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("health: %d", w.Code)
	}
}

func TestVehicleEndpointsRequireAuth(t *testing.T) {
	r := newTestServer(t)

	if w := doJSON(t, r, http.MethodGet, "/api/vehicles/", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated list: %d", w.Code)
	}

	token := registerAndLogin(t, r, "user@fleet.test", "user")
	if w := doJSON(t, r, http.MethodGet, "/api/vehicles/", token, nil); w.Code != http.StatusOK {
		t.Fatalf("authenticated list: %d %s", w.Code, w.Body.String())
	}
}

func TestVehicleWriteRoleRules(t *testing.T) {
	r := newTestServer(t)
	admin := registerAndLogin(t, r, "admin@fleet.test", "admin")
	manager := registerAndLogin(t, r, "manager@fleet.test", "manager")
	plain := registerAndLogin(t, r, "plain@fleet.test", "user")

	// Plain users cannot create.
	w := doJSON(t, r, http.MethodPost, "/api/vehicles/", plain, gin.H{
		"vehicle_number": "HTTP-001", "vehicle_type": "truck",
	})
	if w.Code != http.StatusForbidden {
		t.Fatalf("user create: %d", w.Code)
	}

	// Managers can.
	w = doJSON(t, r, http.MethodPost, "/api/vehicles/", manager, gin.H{
		"vehicle_number": "HTTP-001", "vehicle_type": "truck",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("manager create: %d %s", w.Code, w.Body.String())
	}
	var created struct {
		Data struct {
			ID uint `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil || created.Data.ID == 0 {
		t.Fatalf("create response: %v %s", err, w.Body.String())
	}

	// Duplicate numbers are a 400.
	w = doJSON(t, r, http.MethodPost, "/api/vehicles/", admin, gin.H{
		"vehicle_number": "HTTP-001", "vehicle_type": "van",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate create: %d %s", w.Code, w.Body.String())
	}

	// Delete is admin only.
	path := "/api/vehicles/" + strconv.Itoa(int(created.Data.ID))
	if w = doJSON(t, r, http.MethodDelete, path, manager, nil); w.Code != http.StatusForbidden {
		t.Fatalf("manager delete: %d", w.Code)
	}
	if w = doJSON(t, r, http.MethodDelete, path, admin, nil); w.Code != http.StatusOK {
		t.Fatalf("admin delete: %d %s", w.Code, w.Body.String())
	}
	if w = doJSON(t, r, http.MethodDelete, path, admin, nil); w.Code != http.StatusNotFound {
		t.Fatalf("second delete: %d", w.Code)
	}
}

func TestCreateVehicleNormalizesFormValues(t *testing.T) {
	r := newTestServer(t)
	admin := registerAndLogin(t, r, "forms@fleet.test", "admin")

	// Numeric strings coerce, empty strings mean null.
	w := doJSON(t, r, http.MethodPost, "/api/vehicles/", admin, gin.H{
		"vehicle_number": "FORM-001",
		"vehicle_type":   "truck",
		"year":           "2021",
		"capacity":       "",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", w.Code, w.Body.String())
	}
	var resp struct {
		Data struct {
			Year     *int     `json:"year"`
			Capacity *float64 `json:"capacity"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Year == nil || *resp.Data.Year != 2021 {
		t.Fatalf("year = %v, want 2021", resp.Data.Year)
	}
	if resp.Data.Capacity != nil {
		t.Fatalf("capacity should be null, got %v", *resp.Data.Capacity)
	}
}

func TestAnalyticsDashboardAuth(t *testing.T) {
	r := newTestServer(t)

	if w := doJSON(t, r, http.MethodGet, "/api/analytics/dashboard", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated dashboard: %d", w.Code)
	}
	token := registerAndLogin(t, r, "dash@fleet.test", "user")
	w := doJSON(t, r, http.MethodGet, "/api/analytics/dashboard", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("dashboard: %d %s", w.Code, w.Body.String())
	}
}
