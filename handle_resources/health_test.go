package handle_resources

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/domainlens/domainlens/config"
	"github.com/domainlens/domainlens/utils"
)

func withMemoryCacheManager(t *testing.T) {
	t.Helper()
	old := config.CacheManager
	config.CacheManager = utils.NewMemoryCache(10, 0)
	t.Cleanup(func() { config.CacheManager = old })
}

func TestHandleHealth(t *testing.T) {
	withMemoryCacheManager(t)

	w := httptest.NewRecorder()
	HandleHealth(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var status HealthStatus
	if err := json.Unmarshal(w.Body.Bytes(), &status); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if status.Status != "ok" {
		t.Errorf("Status = %q", status.Status)
	}
	if status.Checks["cache"].Message != "memory" {
		t.Errorf("cache check = %+v, want memory backend", status.Checks["cache"])
	}
}

func TestHandleReadyWithoutCache(t *testing.T) {
	old := config.CacheManager
	config.CacheManager = nil
	t.Cleanup(func() { config.CacheManager = old })

	w := httptest.NewRecorder()
	HandleReady(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503 with no cache manager", w.Code)
	}
}

func TestHandleReadyReportsRouting(t *testing.T) {
	withMemoryCacheManager(t)

	w := httptest.NewRecorder()
	HandleReady(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

	var status HealthStatus
	if err := json.Unmarshal(w.Body.Bytes(), &status); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if status.Checks["routing"].Status != "ok" {
		t.Errorf("routing check = %+v, want ok with populated tables", status.Checks["routing"])
	}
}

func TestHandleInfoIncludesRoutingCounts(t *testing.T) {
	w := httptest.NewRecorder()
	HandleInfo(w, httptest.NewRequest(http.MethodGet, "/info", nil))

	var info RuntimeInfo
	if err := json.Unmarshal(w.Body.Bytes(), &info); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if info.RdapTLDs == 0 || info.WhoisTLDs == 0 {
		t.Errorf("routing counts = %d/%d, want non-zero", info.RdapTLDs, info.WhoisTLDs)
	}
	if info.GoVersion == "" {
		t.Error("goVersion missing")
	}
}
