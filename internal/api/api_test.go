package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/spf13/cobra"
)

func TestOutputTo(t *testing.T) {
	data := map[string]any{"name": "Goblin", "value": 15}

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		if err := OutputTo(&buf, OutputFormatYAML, data); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), "name: Goblin") {
			t.Errorf("yaml output = %q", buf.String())
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := OutputTo(&buf, OutputFormatJSON, data); err != nil {
			t.Fatal(err)
		}
		var round map[string]any
		if err := json.Unmarshal(buf.Bytes(), &round); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if round["name"] != "Goblin" {
			t.Errorf("json output = %v", round)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if err := OutputTo(&bytes.Buffer{}, OutputFormat("toml"), data); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}

func TestSetOutputFormat(t *testing.T) {
	defer SetOutputFormat("yaml")

	SetOutputFormat("json")
	if GetOutputFormat() != OutputFormatJSON {
		t.Errorf("format = %q, want json", GetOutputFormat())
	}
	SetOutputFormat("bogus")
	if GetOutputFormat() != DefaultOutput {
		t.Errorf("format = %q, want default", GetOutputFormat())
	}
}

type stubEndpoint struct{}

func (s *stubEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/stub", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}
}

func (s *stubEndpoint) Command(func() string) *cobra.Command {
	return &cobra.Command{Use: "stub"}
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&stubEndpoint{})

	if len(reg.Endpoints()) != 1 {
		t.Fatalf("endpoints = %d, want 1", len(reg.Endpoints()))
	}

	mux := http.NewServeMux()
	reg.RegisterRoutes(mux)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest("GET", "/stub", nil))
	if rr.Code != http.StatusTeapot {
		t.Errorf("status = %d, want 418", rr.Code)
	}
}

func TestClientGet(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer ts.Close()

	var out map[string]string
	if err := NewClient(ts.URL).Get(context.Background(), "/health", &out); err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if out["status"] != "ok" {
		t.Errorf("response = %v", out)
	}
}

func TestClientDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "no content to parse"})
	}))
	defer ts.Close()

	err := NewClient(ts.URL).Post(context.Background(), "/api/v1/parse", map[string]string{"text": ""}, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "no content to parse") {
		t.Errorf("error = %v", err)
	}
	if calls.Load() != 1 {
		t.Errorf("server called %d times, want 1 (no retry on 400)", calls.Load())
	}
}

func TestClientRetriesTransportErrors(t *testing.T) {
	// Point the client at a closed listener: every attempt fails at the
	// transport level and the retry budget is exhausted.
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	if err := NewClient(url).Get(context.Background(), "/health", nil); err == nil {
		t.Fatal("expected error against closed server")
	}
}
