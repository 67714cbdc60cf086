package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, slog.New(slog.DiscardHandler))
}

func TestClientClassification(t *testing.T) {
	t.Run("unreachable host -> NetworkError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		base := srv.URL
		srv.Close()

		c := NewClient(base, time.Second, slog.New(slog.DiscardHandler))
		err := c.Get(context.Background(), "/products", nil, nil)
		if !IsNetwork(err) {
			t.Fatalf("expected NetworkError, got %v", err)
		}
	})

	t.Run("500 with message -> ServerError", func(t *testing.T) {
		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"message":"boom"}`))
		}))

		err := c.Get(context.Background(), "/products", nil, nil)
		se, ok := AsServer(err)
		if !ok {
			t.Fatalf("expected ServerError, got %v", err)
		}
		if se.Status != http.StatusInternalServerError || se.Message != "boom" {
			t.Fatalf("got (%d, %q)", se.Status, se.Message)
		}
	})

	t.Run("400 with field errors -> ServerError.Fields", func(t *testing.T) {
		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"userId":"User ID already exists","userEmail":"Invalid email format"}`))
		}))

		err := c.Post(context.Background(), "/register/", map[string]string{}, nil)
		se, ok := AsServer(err)
		if !ok {
			t.Fatalf("expected ServerError, got %v", err)
		}
		if se.Fields["userId"] != "User ID already exists" {
			t.Fatalf("field errors not decoded: %+v", se.Fields)
		}
		if se.Fields["userEmail"] != "Invalid email format" {
			t.Fatalf("field errors not decoded: %+v", se.Fields)
		}
	})

	t.Run("non-JSON error body -> message is raw text", func(t *testing.T) {
		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream timeout"))
		}))

		err := c.Get(context.Background(), "/products", nil, nil)
		se, ok := AsServer(err)
		if !ok {
			t.Fatalf("expected ServerError, got %v", err)
		}
		if se.Message != "upstream timeout" {
			t.Fatalf("got %q", se.Message)
		}
	})

	t.Run("malformed success body -> ServerError", func(t *testing.T) {
		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"truncated`))
		}))

		var out map[string]any
		err := c.Get(context.Background(), "/products", nil, &out)
		if _, ok := AsServer(err); !ok {
			t.Fatalf("expected ServerError for malformed body, got %v", err)
		}
	})

	t.Run("2xx with empty body and nil out -> no error", func(t *testing.T) {
		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		if err := c.Delete(context.Background(), "/cart/remove", nil); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}

func TestClientSendsRequestID(t *testing.T) {
	var got string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("X-Request-ID")
	}))

	if err := c.Get(context.Background(), "/products", nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == "" {
		t.Fatal("expected a request id header")
	}
}
