package session

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testLog() *slog.Logger { return slog.New(slog.DiscardHandler) }

func TestHolderRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	h := Open(path, testLog())
	_, ok := h.Current()
	require.False(t, ok, "fresh holder must start signed out")

	info := Info{
		UserID:    "CUST1",
		UserName:  "Asha",
		Role:      RoleCustomer,
		LastLogin: time.Now().Truncate(time.Second),
	}
	require.NoError(t, h.Set(info))

	// A new holder over the same file sees the persisted record.
	h2 := Open(path, testLog())
	got, ok := h2.Current()
	require.True(t, ok)
	require.Equal(t, "CUST1", got.UserID)
	require.Equal(t, RoleCustomer, got.Role)

	userID, ok := h2.CurrentUserID()
	require.True(t, ok)
	require.Equal(t, "CUST1", userID)
}

func TestClearRemovesRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	h := Open(path, testLog())
	require.NoError(t, h.Set(Info{UserID: "VEND1", Role: RoleVendor}))

	require.NoError(t, h.Clear())
	require.Equal(t, RoleNone, h.Role())
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err), "record file should be gone")

	// Clearing an already signed-out holder is fine.
	require.NoError(t, h.Clear())
}

func TestOpenCorruptRecordStartsSignedOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	h := Open(path, testLog())
	_, ok := h.Current()
	require.False(t, ok)
}

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"VENDOR":   RoleVendor,
		"vendor":   RoleVendor,
		"CUSTOMER": RoleCustomer,
		"customer": RoleCustomer,
		" Customer ": RoleCustomer,
		"":         RoleNone,
		"admin":    RoleNone,
	}
	for in, want := range cases {
		require.Equal(t, want, ParseRole(in), "input %q", in)
	}
}

func TestSetRequiresUserID(t *testing.T) {
	h := Open(filepath.Join(t.TempDir(), "session.json"), testLog())
	require.Error(t, h.Set(Info{}))
}
