package route

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phonekart/storefront/internal/session"
)

func TestDefault(t *testing.T) {
	require.Equal(t, Login, Default(session.RoleNone))
	require.Equal(t, VendorProducts, Default(session.RoleVendor))
	require.Equal(t, CustomerProducts, Default(session.RoleCustomer))
}

func TestAuthorize(t *testing.T) {
	cases := []struct {
		name    string
		path    string
		role    session.Role
		want    string
		allowed bool
	}{
		{"customer visits cart", CustomerCart, session.RoleCustomer, CustomerCart, true},
		{"vendor visits own products", VendorProducts, session.RoleVendor, VendorProducts, true},
		{"signed out gated path -> login", CustomerCart, session.RoleNone, Login, false},
		{"customer on vendor path -> customer home", VendorAddProduct, session.RoleCustomer, CustomerProducts, false},
		{"vendor on customer path -> vendor home", CustomerProducts, session.RoleVendor, VendorProducts, false},
		{"anyone may visit login", Login, session.RoleNone, Login, true},
		{"unknown path -> role home", "/nope", session.RoleVendor, VendorProducts, false},
		{"unknown path signed out -> login", "/nope", session.RoleNone, Login, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Authorize(tc.path, tc.role)
			require.Equal(t, tc.allowed, ok)
			require.Equal(t, tc.want, got)
		})
	}
}
