package handle_resources

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/domainlens/domainlens/config"
	"github.com/domainlens/domainlens/server_lists"
	"github.com/domainlens/domainlens/utils"
)

// startTime records the server start time for uptime calculation
var startTime = time.Now()

// HealthStatus is the JSON body of the /health and /ready endpoints.
type HealthStatus struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Uptime    string           `json:"uptime,omitempty"`
	Checks    map[string]Check `json:"checks"`
}

// Check is one named probe inside a HealthStatus.
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// redisBacked reports whether lookup results are currently being served
// from Redis rather than the in-process fallback.
func redisBacked() bool {
	if config.CacheManager == nil {
		return false
	}
	if fc, ok := config.CacheManager.(*utils.FallbackCache); ok {
		return fc.IsPrimaryHealthy()
	}
	return config.CacheManager.IsHealthy()
}

// cacheCheck reports which cache backend is holding lookup results.
func cacheCheck() (Check, bool) {
	if config.CacheManager == nil {
		return Check{Status: "fail", Message: "not initialized"}, false
	}
	if redisBacked() {
		return Check{Status: "ok", Message: "redis"}, true
	}
	return Check{Status: "ok", Message: "memory"}, true
}

// capacityCheck reports how many of the concurrent lookup slots are busy.
func capacityCheck() Check {
	inFlight := len(config.ConcurrencyLimiter)
	if inFlight >= config.RateLimit {
		return Check{Status: "warning", Message: fmt.Sprintf("all %d lookup slots busy", config.RateLimit)}
	}
	return Check{Status: "ok", Message: fmt.Sprintf("%d/%d lookup slots busy", inFlight, config.RateLimit)}
}

// routingCheck reports how many TLDs the RDAP and WHOIS tables cover. Empty
// tables mean every lookup would classify as unsupported.
func routingCheck() Check {
	rdap := len(server_lists.TLDToRdapServers)
	whois := len(server_lists.TLDToWhoisServers)
	if rdap == 0 && whois == 0 {
		return Check{Status: "fail", Message: "no RDAP or WHOIS routing entries"}
	}
	return Check{Status: "ok", Message: fmt.Sprintf("%d RDAP TLDs, %d WHOIS TLDs", rdap, whois)}
}

// HandleHealth handles the /health endpoint. It answers 200 whenever the
// process is up; the checks are informational.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	cache, _ := cacheCheck()

	status := HealthStatus{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(startTime).Round(time.Second).String(),
		Checks: map[string]Check{
			"cache": cache,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(status)
}

// HandleReady handles the /ready endpoint. It answers 503 when lookups
// cannot be served: the cache is missing, or Redis is both required and
// down.
func HandleReady(w http.ResponseWriter, r *http.Request) {
	httpStatus := http.StatusOK
	overall := "ok"

	cache, cacheOk := cacheCheck()
	if config.RequireRedis && !redisBacked() {
		overall = "unavailable"
		cache = Check{Status: "fail", Message: "redis required but unavailable"}
		httpStatus = http.StatusServiceUnavailable
	} else if !cacheOk {
		overall = "unavailable"
		httpStatus = http.StatusServiceUnavailable
	}

	status := HealthStatus{
		Status:    overall,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(startTime).Round(time.Second).String(),
		Checks: map[string]Check{
			"cache":    cache,
			"capacity": capacityCheck(),
			"routing":  routingCheck(),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	json.NewEncoder(w).Encode(status)
}

// RuntimeInfo is the JSON body of the /info endpoint.
type RuntimeInfo struct {
	Version      string `json:"version"`
	BuildTime    string `json:"buildTime,omitempty"`
	GitCommit    string `json:"gitCommit,omitempty"`
	GoVersion    string `json:"goVersion"`
	Uptime       string `json:"uptime"`
	NumGoroutine int    `json:"numGoroutine"`
	NumCPU       int    `json:"numCPU"`
	RdapTLDs     int    `json:"rdapTLDs"`
	WhoisTLDs    int    `json:"whoisTLDs"`
}

// HandleInfo handles the /info endpoint with build and routing-table
// details for debugging.
func HandleInfo(w http.ResponseWriter, r *http.Request) {
	info := RuntimeInfo{
		Version:      config.Version,
		GoVersion:    runtime.Version(),
		Uptime:       time.Since(startTime).Round(time.Second).String(),
		NumGoroutine: runtime.NumGoroutine(),
		NumCPU:       runtime.NumCPU(),
		RdapTLDs:     len(server_lists.TLDToRdapServers),
		WhoisTLDs:    len(server_lists.TLDToWhoisServers),
	}

	if config.BuildTime != "unknown" {
		info.BuildTime = config.BuildTime
	}
	if config.GitCommit != "unknown" {
		info.GitCommit = config.GitCommit
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(info)
}
