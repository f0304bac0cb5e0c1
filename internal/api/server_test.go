package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratus-io/stratus/internal/audit"
	"github.com/stratus-io/stratus/internal/cloud"
	"github.com/stratus-io/stratus/internal/engine"
	"github.com/stratus-io/stratus/internal/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	auditLog, err := audit.NewLogger(filepath.Join(t.TempDir(), "audit.jsonl"))
	require.NoError(t, err)
	t.Cleanup(func() { auditLog.Close() })

	eng := engine.New(cloud.NewRegistry(), store.New(), auditLog)
	reg := prometheus.NewRegistry()
	handler := NewHandler(eng, auditLog, NewMetrics(reg))

	srv := httptest.NewServer(handler.Router(reg))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Requested-By", "tester")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func fullStackRequest() map[string]any {
	return map[string]any{
		"provider":              "aws",
		"name":                  "prod-stack",
		"region":                "us-east-1",
		"include_database":      true,
		"include_load_balancer": true,
		"include_storage":       true,
		"vm_config": map[string]any{
			"instance_type": "t3.medium",
			"ami":           "ami-0abcdef1234567890",
			"vpc_id":        "vpc-12345",
		},
		"database_config": map[string]any{
			"engine": "mysql", "instance_class": "db.t3.micro", "allocated_storage": 20,
		},
		"load_balancer_config": map[string]any{"vpc_id": "vpc-12345"},
		"storage_config":       map[string]any{},
	}
}

func TestAPI_CreateInfrastructure(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/cloud/infrastructure", fullStackRequest())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	infra := body["infrastructure"].(map[string]any)
	assert.NotEmpty(t, infra["id"])
	resources := infra["resources"].([]any)
	require.Len(t, resources, 4)

	first := resources[0].(map[string]any)
	assert.Equal(t, "vm", first["kind"])
	assert.Equal(t, "creating", first["status"])
	assert.Regexp(t, `^i-[0-9a-f]{8}$`, first["id"])
}

func TestAPI_CreateInfrastructureValidationError(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/cloud/infrastructure", map[string]any{
		"provider":  "aws",
		"name":      "broken",
		"region":    "us-east-1",
		"vm_config": map[string]any{"instance_type": "t3.medium"},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])

	msg := body["error"].(string)
	assert.Contains(t, msg, "ami")
	assert.Contains(t, msg, "vpc_id")
	assert.Contains(t, msg, "aws")
}

func TestAPI_CreateInfrastructureUnknownProvider(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/cloud/infrastructure", map[string]any{
		"provider": "ibm", "name": "nope", "vm_config": map[string]any{},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["error"].(string), "ibm")
}

func TestAPI_InfrastructureGetListDelete(t *testing.T) {
	srv := newTestServer(t)

	_, created := doJSON(t, http.MethodPost, srv.URL+"/cloud/infrastructure", fullStackRequest())
	id := created["infrastructure"].(map[string]any)["id"].(string)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/cloud/infrastructure", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["count"])

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/cloud/infrastructure/"+id, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/cloud/infrastructure/"+id, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/cloud/infrastructure/"+id, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_Providers(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/cloud/providers", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	providers := body["providers"].([]any)
	assert.Len(t, providers, 5)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/cloud/providers/gcp", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	info := body["provider"].(map[string]any)
	assert.Equal(t, "gcp", info["code"])

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/cloud/providers/ibm", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_VMLifecycle(t *testing.T) {
	srv := newTestServer(t)

	// 1. create
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/vm", map[string]any{
		"provider": "onprem",
		"name":     "build-agent",
		"config":   map[string]any{"cpu": 4, "ram_gb": 8, "disk_gb": 100, "nic": "eth0"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	vm := body["vm"].(map[string]any)
	id := vm["id"].(string)
	assert.Equal(t, "creating", vm["status"])

	// 2. start
	resp, body = doJSON(t, http.MethodPost, srv.URL+"/vm/"+id+"/action", map[string]any{"action": "start"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "running", body["vm"].(map[string]any)["status"])

	// 3. invalid action
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/vm/"+id+"/action", map[string]any{"action": "hibernate"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// 4. update
	resp, body = doJSON(t, http.MethodPut, srv.URL+"/vm/"+id, map[string]any{"cpu": 8})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(8), body["vm"].(map[string]any)["specs"].(map[string]any)["cpu"])

	// 5. list and delete
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/vm", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["count"])

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/vm/"+id, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/vm/"+id, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_AuditLogEndpoints(t *testing.T) {
	srv := newTestServer(t)

	doJSON(t, http.MethodPost, srv.URL+"/cloud/infrastructure", fullStackRequest())
	doJSON(t, http.MethodPost, srv.URL+"/vm", map[string]any{
		"provider": "gcp", "name": "w", "config": map[string]any{"machine_type": "e2-micro"},
	})

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/logs?action=create_vm", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["total"])

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/logs/recent?limit=1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	entries := body["entries"].([]any)
	require.Len(t, entries, 1)
	assert.Equal(t, "create_vm", entries[0].(map[string]any)["action"])

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/api/logs?page=zero", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_HealthAndMetrics(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])

	doJSON(t, http.MethodPost, srv.URL+"/cloud/infrastructure", fullStackRequest())

	metricsResp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer metricsResp.Body.Close()
	require.Equal(t, http.StatusOK, metricsResp.StatusCode)

	raw, err := io.ReadAll(metricsResp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `stratus_provision_requests_total{outcome="success",provider="aws"} 1`)
}
