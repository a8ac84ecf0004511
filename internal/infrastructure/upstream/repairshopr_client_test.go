package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewRepairShoprClient_EnvConfig(t *testing.T) {
	t.Run("migration key preferred", func(t *testing.T) {
		t.Setenv("REPAIRSHOPR_BASE_URL", "https://vendor.example.com/api/v1")
		t.Setenv("REPAIRSHOPR_API_KEY", "general-key")
		t.Setenv("MIGRATION_API_KEY", "migration-key")

		c := NewRepairShoprClient()
		if c.baseURL != "https://vendor.example.com/api/v1" {
			t.Fatalf("unexpected base url %q", c.baseURL)
		}
		if c.apiKey != "migration-key" {
			t.Fatalf("expected migration key, got %q", c.apiKey)
		}
	})

	t.Run("falls back to general key", func(t *testing.T) {
		t.Setenv("REPAIRSHOPR_BASE_URL", "")
		t.Setenv("REPAIRSHOPR_API_KEY", "general-key")
		t.Setenv("MIGRATION_API_KEY", "")

		c := NewRepairShoprClient()
		if c.baseURL != defaultBaseURL {
			t.Fatalf("unexpected base url %q", c.baseURL)
		}
		if c.apiKey != "general-key" {
			t.Fatalf("expected general key, got %q", c.apiKey)
		}
	})
}

func TestRepairShoprClient_FetchTicketByNumber(t *testing.T) {
	t.Run("decodes envelope and sends bearer", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Authorization"); got != "Bearer migration-key" {
				t.Errorf("unexpected auth header %q", got)
			}
			if got := r.URL.Query().Get("number"); got != "5000" {
				t.Errorf("unexpected number %q", got)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"ticket":{"number":5000,"subject":"iPhone screen","customer":{"business_and_full_name":"Jane Doe"}}}`))
		}))
		defer srv.Close()

		c := &RepairShoprClient{httpClient: srv.Client(), baseURL: srv.URL, apiKey: "migration-key"}
		up, err := c.FetchTicketByNumber(context.Background(), 5000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if up.Number != 5000 || up.Subject != "iPhone screen" || up.Customer.BusinessAndFullName != "Jane Doe" {
			t.Fatalf("unexpected ticket: %+v", up)
		}
	})

	t.Run("rejects mismatched number", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"ticket":{"number":4999}}`))
		}))
		defer srv.Close()

		c := &RepairShoprClient{httpClient: srv.Client(), baseURL: srv.URL, apiKey: "k"}
		_, err := c.FetchTicketByNumber(context.Background(), 5000)
		if err == nil || !strings.Contains(err.Error(), "requested 5000") {
			t.Fatalf("expected mismatch error, got %v", err)
		}
	})

	t.Run("non-200 fails", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		c := &RepairShoprClient{httpClient: srv.Client(), baseURL: srv.URL, apiKey: "k"}
		if _, err := c.FetchTicketByNumber(context.Background(), 5000); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestRepairShoprClient_DownloadAttachment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("image bytes"))
	}))
	defer srv.Close()

	c := &RepairShoprClient{httpClient: srv.Client()}
	data, err := c.DownloadAttachment(context.Background(), srv.URL+"/a.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "image bytes" {
		t.Fatalf("unexpected data %q", data)
	}
}
