//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pricepoint-api/internal/datapoint"
	"pricepoint-api/internal/logs"
	"pricepoint-api/internal/provider"
	"pricepoint-api/internal/settings"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&provider.Provider{},
		&datapoint.DataPoint{},
		&settings.Setting{},
		&logs.SystemLog{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func newAppRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	logService := &logs.LogService{DB: db}
	provider.RegisterRoutes(r, &provider.ProviderService{DB: db})
	datapoint.RegisterRoutes(r, &datapoint.DataPointService{DB: db}, logService)
	settings.RegisterRoutes(r, &settings.SettingsService{DB: db})

	return r
}

func do(r http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestDataPointLifecycle_CreateListUpdateDelete(t *testing.T) {
	db := newIntegrationDB(t)
	r := newAppRouter(db)

	// create the provider the data points will reference
	w := do(r, http.MethodPost, "/api/providers", []byte(`{"name":"ACME Capital"}`))
	if w.Code != http.StatusCreated {
		t.Fatalf("create provider: %d %s", w.Code, w.Body.String())
	}
	var provOut struct {
		Provider provider.Provider `json:"provider"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &provOut); err != nil {
		t.Fatalf("decode provider: %v", err)
	}

	body := fmt.Sprintf(`{"provider":"%d","asset_class":"Growth","quarter":"Q3 2024","min_price":1.5,"max_price":3.0}`, provOut.Provider.ID)
	w = do(r, http.MethodPost, "/api/datapoints", []byte(body))
	if w.Code != http.StatusCreated {
		t.Fatalf("create data point: %d %s", w.Code, w.Body.String())
	}
	var createOut struct {
		DataPoint datapoint.DataPoint `json:"data_point"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &createOut); err != nil {
		t.Fatalf("decode data point: %v", err)
	}
	if createOut.DataPoint.Provider.Name != "ACME Capital" {
		t.Fatalf("expected embedded provider, got %#v", createOut.DataPoint)
	}

	// list shows it
	w = do(r, http.MethodGet, "/api/datapoints", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: %d %s", w.Code, w.Body.String())
	}
	var listOut struct {
		DataPoints []datapoint.DataPoint `json:"data_points"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listOut); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listOut.DataPoints) != 1 || listOut.DataPoints[0].ID != createOut.DataPoint.ID {
		t.Fatalf("unexpected list: %#v", listOut.DataPoints)
	}

	// update
	body = fmt.Sprintf(`{"provider":"%d","asset_class":"Venture","quarter":"Q4 2024","min_price":2,"max_price":4}`, provOut.Provider.ID)
	w = do(r, http.MethodPut, fmt.Sprintf("/api/datapoints/%d", createOut.DataPoint.ID), []byte(body))
	if w.Code != http.StatusOK {
		t.Fatalf("update: %d %s", w.Code, w.Body.String())
	}

	// delete
	w = do(r, http.MethodDelete, fmt.Sprintf("/api/datapoints/%d", createOut.DataPoint.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: %d %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodGet, "/api/datapoints", nil)
	if err := json.Unmarshal(w.Body.Bytes(), &listOut); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listOut.DataPoints) != 0 {
		t.Fatalf("expected empty list after delete, got %#v", listOut.DataPoints)
	}
}

func TestProvidersFailure_DoesNotAffectDataPointsLoad(t *testing.T) {
	goodDB := newIntegrationDB(t)
	brokenDB := newIntegrationDB(t)

	sqlDB, err := brokenDB.DB()
	if err != nil {
		t.Fatalf("db.DB(): %v", err)
	}
	_ = sqlDB.Close()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	provider.RegisterRoutes(r, &provider.ProviderService{DB: brokenDB})
	datapoint.RegisterRoutes(r, &datapoint.DataPointService{DB: goodDB}, &logs.LogService{DB: goodDB})

	if w := do(r, http.MethodGet, "/api/providers", nil); w.Code != http.StatusInternalServerError {
		t.Fatalf("expected providers load to fail, got %d", w.Code)
	}
	if w := do(r, http.MethodGet, "/api/datapoints", nil); w.Code != http.StatusOK {
		t.Fatalf("expected data points load to survive, got %d: %s", w.Code, w.Body.String())
	}
}
