package account

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/phonekart/storefront/internal/session"
	"github.com/phonekart/storefront/pkg/httpx"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(httpx.NewClient(srv.URL, 2*time.Second, slog.New(slog.DiscardHandler)))
}

func TestLogin(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/user/login", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "asha123", req["userId"])
		require.Equal(t, "hunter22", req["userPassword"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"userId":"asha123","userName":"Asha","userRole":"VENDOR"}`))
	}))

	info, err := client.Login(context.Background(), Credentials{UserID: "asha123", Password: "hunter22"})
	require.NoError(t, err)
	require.Equal(t, "asha123", info.UserID)
	require.Equal(t, session.RoleVendor, info.Role)
	require.WithinDuration(t, time.Now(), info.LastLogin, time.Minute)
}

func TestLoginRejectedByServer(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid user ID or password"}`))
	}))

	_, err := client.Login(context.Background(), Credentials{UserID: "asha123", Password: "wrong"})
	se, ok := httpx.AsServer(err)
	require.True(t, ok, "expected ServerError, got %v", err)
	require.Equal(t, http.StatusUnauthorized, se.Status)
}

func TestLoginValidatesLocallyFirst(t *testing.T) {
	called := false
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	_, err := client.Login(context.Background(), Credentials{UserID: "onlyletters", Password: "pw"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.False(t, called, "invalid credentials must not hit the server")
}

func TestRegister(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/register/", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "ASHA123", req["userId"])
		require.Equal(t, "CUSTOMER", req["userRole"])
		_, hasGST := req["userGstNumber"]
		require.False(t, hasGST, "empty GST must be omitted")

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"userId":"ASHA123","status":"REGISTERED"}`))
	}))

	require.NoError(t, client.Register(context.Background(), validForm()))
}

func TestRegisterSurfacesServerFieldErrors(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"userId":"User ID already exists"}`))
	}))

	err := client.Register(context.Background(), validForm())
	se, ok := httpx.AsServer(err)
	require.True(t, ok, "expected ServerError, got %v", err)
	require.Equal(t, "User ID already exists", se.Fields["userId"])
}
