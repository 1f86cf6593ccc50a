package system_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	models "github.com/datatweets/greeting-service/internal/models/system"
	"github.com/datatweets/greeting-service/internal/transport/system"
)

func TestHealth(t *testing.T) {
	s := system.New()

	// health must report the same constant regardless of prior calls
	for i := 0; i < 3; i++ {
		r := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()

		s.Health(w, r)

		res := w.Result()
		defer res.Body.Close()

		if res.StatusCode != http.StatusOK {
			t.Errorf("invalid status code, got: %d, want: %d", res.StatusCode, http.StatusOK)
		}
		if ct := res.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("invalid content type, got: %s, want: application/json", ct)
		}

		var resp models.HealthResponse
		if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
			t.Fatalf("error decoding body of response, error: %s", err)
		}
		if resp.Status != "healthy" {
			t.Errorf("invalid status, got: %s, want: healthy", resp.Status)
		}
	}
}

func TestStatus(t *testing.T) {
	s := system.New()

	r := httptest.NewRequest(http.MethodGet, "/status", nil)
	w := httptest.NewRecorder()

	s.Status(w, r)

	res := w.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Errorf("invalid status code, got: %d, want: %d", res.StatusCode, http.StatusOK)
	}

	var resp models.StatusResponse
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding body of response, error: %s", err)
	}

	if resp.Status != "operational" {
		t.Errorf("invalid status, got: %s, want: operational", resp.Status)
	}
	if resp.Version != "1.0.0" {
		t.Errorf("invalid version, got: %s, want: 1.0.0", resp.Version)
	}

	// runtime version varies by host, only its shape is checked
	if resp.RuntimeVersion == "" {
		t.Error("runtime version is empty")
	}
	if !strings.HasPrefix(resp.RuntimeVersion, "go") {
		t.Errorf("invalid runtime version, got: %s, want prefix: go", resp.RuntimeVersion)
	}

	expectedEndpoints := []string{
		"/hello/<name>",
		"/goodbye/<name>",
		"/health",
		"/status",
		"/calculate/<operation>/<num1>/<num2>",
	}
	if len(resp.Endpoints) != len(expectedEndpoints) {
		t.Fatalf("invalid number of endpoints, got: %d, want: %d", len(resp.Endpoints), len(expectedEndpoints))
	}
	for i, endpoint := range expectedEndpoints {
		if resp.Endpoints[i] != endpoint {
			t.Errorf("invalid endpoint at %d, got: %s, want: %s", i, resp.Endpoints[i], endpoint)
		}
	}
}
