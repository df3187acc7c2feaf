package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/railkit/railsignal/pkg/cache"
	"github.com/railkit/railsignal/pkg/pipeline"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	runner := pipeline.NewRunner(cache.NewMemoryCache(), nil, logger)
	return NewServer(runner, logger)
}

// mergeStationBody is a station where two approaches converge before the exit.
const mergeStationBody = `{
	"name": "merge",
	"nodes": [
		{"id": "A", "type": "entry"},
		{"id": "B", "type": "entry"},
		{"id": "M", "type": "track"},
		{"id": "EXIT", "type": "exit"}
	],
	"edges": [
		{"from": "A", "to": "M", "length": 550},
		{"from": "B", "to": "M", "length": 550},
		{"from": "M", "to": "EXIT", "length": 500}
	],
	"formats": ["dot", "json"]
}`

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want %q", body["status"], "ok")
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
}

func TestGenerate(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(mergeStationBody))
	req.Header.Set("Content-Type", "application/json")

	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp analysisResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}

	if resp.Station != "merge" {
		t.Errorf("Station = %q, want %q", resp.Station, "merge")
	}
	if resp.NetworkHash == "" {
		t.Error("NetworkHash is empty")
	}
	if len(resp.Zones) != 1 || resp.Zones[0].ID != "M" {
		t.Errorf("Zones = %+v, want one zone M", resp.Zones)
	}
	if len(resp.Zones) == 1 && len(resp.Zones[0].Approaches) != 2 {
		t.Errorf("zone approaches = %v, want 2", resp.Zones[0].Approaches)
	}
	if len(resp.Signals) != 2 {
		t.Fatalf("Signals = %+v, want 2 signals", resp.Signals)
	}
	for _, sig := range resp.Signals {
		if sig.ProtectsZone != "M" {
			t.Errorf("signal %s protects %q, want M", sig.ID, sig.ProtectsZone)
		}
		if sig.Distance != pipeline.DefaultSignalDistance {
			t.Errorf("signal %s distance = %g, want %g", sig.ID, sig.Distance, pipeline.DefaultSignalDistance)
		}
	}
	if !strings.Contains(resp.Artifacts["dot"], "SIG_A_M") {
		t.Error("dot artifact missing placed signal")
	}
	if _, ok := resp.Artifacts["json"]; !ok {
		t.Error("missing json artifact")
	}
}

func TestGenerateCachedOnRepeat(t *testing.T) {
	srv := newTestServer(t)
	router := srv.Router()

	for i, wantCached := range []bool{false, true} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(mergeStationBody))
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("run %d: status = %d: %s", i, rec.Code, rec.Body.String())
		}
		var resp analysisResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("run %d: decode body: %v", i, err)
		}
		if resp.Cached != wantCached {
			t.Errorf("run %d: Cached = %v, want %v", i, resp.Cached, wantCached)
		}
	}
}

func TestGenerateRejectsBadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed json", `{`, http.StatusBadRequest},
		{"no nodes", `{"name": "empty"}`, http.StatusBadRequest},
		{
			"unknown role",
			`{"nodes": [{"id": "A", "type": "spaceship"}]}`,
			http.StatusBadRequest,
		},
		{
			"dangling edge",
			`{"nodes": [{"id": "A", "type": "track"}], "edges": [{"from": "A", "to": "GHOST"}]}`,
			http.StatusBadRequest,
		},
		{
			"negative distance",
			`{"nodes": [{"id": "A", "type": "track"}], "signal_distance": -5}`,
			http.StatusBadRequest,
		},
		{
			"unknown format",
			`{"nodes": [{"id": "A", "type": "track"}], "formats": ["gif"]}`,
			http.StatusBadRequest,
		},
	}

	srv := newTestServer(t)
	router := srv.Router()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(tt.body))
			router.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d: %s", rec.Code, tt.want, rec.Body.String())
			}
			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if resp.Error == "" {
				t.Error("error body has no message")
			}
		})
	}
}

const railmlUpload = `<?xml version="1.0" encoding="UTF-8"?>
<railml xmlns="https://www.railml.org/schemas/2021">
  <infrastructure>
    <operationControlPoint id="ocp1" name="Uploaded Station"/>
    <track id="T1"/>
    <track id="T2"/>
    <track id="M"/>
    <track id="OUT"/>
    <connection ref="T1" to="M" length="600"/>
    <connection ref="T2" to="M" length="600"/>
    <connection ref="M" to="OUT"/>
  </infrastructure>
</railml>`

func TestUpload(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "station.railml")
	if err != nil {
		t.Fatalf("CreateFormFile() error = %v", err)
	}
	if _, err := part.Write([]byte(railmlUpload)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.WriteField("signal_distance", "400"); err != nil {
		t.Fatalf("WriteField() error = %v", err)
	}
	if err := mw.WriteField("formats", "dot"); err != nil {
		t.Fatalf("WriteField() error = %v", err)
	}
	mw.Close()

	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp analysisResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Station != "Uploaded Station" {
		t.Errorf("Station = %q, want %q", resp.Station, "Uploaded Station")
	}
	if len(resp.Zones) != 1 || resp.Zones[0].ID != "M" {
		t.Errorf("Zones = %+v, want one zone M", resp.Zones)
	}
	for _, sig := range resp.Signals {
		if sig.Distance != 400 {
			t.Errorf("signal %s distance = %g, want 400", sig.ID, sig.Distance)
		}
	}
}

func TestUploadMissingFile(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("signal_distance", "400"); err != nil {
		t.Fatalf("WriteField() error = %v", err)
	}
	mw.Close()

	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestRequestIDPropagated(t *testing.T) {
	srv := newTestServer(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "upstream-id")

	srv.Router().ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "upstream-id" {
		t.Errorf("X-Request-ID = %q, want %q", got, "upstream-id")
	}
}
