package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchSendsAuthorizationHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"shop": []}`))
	}))
	defer server.Close()

	client := NewClient(Config{URL: server.URL, APIKey: "secret-key"})
	body, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if gotAuth != "secret-key" {
		t.Fatalf("expected api key in Authorization header, got %q", gotAuth)
	}
	if string(body) != `{"shop": []}` {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestFetchRejectsNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(Config{URL: server.URL, APIKey: "secret-key"})
	if _, err := client.Fetch(context.Background()); !errors.Is(err, ErrRequestFailed) {
		t.Fatalf("expected ErrRequestFailed, got %v", err)
	}
}

func TestFetchRequiresConfig(t *testing.T) {
	cases := []Config{
		{},
		{URL: "https://shop.example/api"},
		{APIKey: "secret-key"},
	}
	for _, cfg := range cases {
		client := NewClient(cfg)
		if _, err := client.Fetch(context.Background()); !errors.Is(err, ErrConfigMissing) {
			t.Fatalf("config %+v: expected ErrConfigMissing, got %v", cfg, err)
		}
	}
}

func TestFetchReportsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // 端口已关闭，请求必然失败

	client := NewClient(Config{URL: server.URL, APIKey: "secret-key"})
	if _, err := client.Fetch(context.Background()); !errors.Is(err, ErrRequestFailed) {
		t.Fatalf("expected ErrRequestFailed, got %v", err)
	}
}
