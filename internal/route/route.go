// Package route decides where a navigation lands based on the current
// session: signed-out users go to the login page, everyone else to their
// role's home, and role-gated paths redirect rather than render.
package route

import "github.com/phonekart/storefront/internal/session"

const (
	Login            = "/login"
	VendorProducts   = "/vendor/products"
	VendorAddProduct = "/vendor/addproduct"
	CustomerProducts = "/customer/products"
	CustomerCart     = "/customer/cart"
)

// requiredRole maps each gated path to the role allowed to visit it.
var requiredRole = map[string]session.Role{
	VendorProducts:   session.RoleVendor,
	VendorAddProduct: session.RoleVendor,
	CustomerProducts: session.RoleCustomer,
	CustomerCart:     session.RoleCustomer,
}

// Default returns the landing route for a role: the login page when signed
// out, otherwise the role's product listing.
func Default(role session.Role) string {
	switch role {
	case session.RoleVendor:
		return VendorProducts
	case session.RoleCustomer:
		return CustomerProducts
	default:
		return Login
	}
}

// Authorize reports whether a role may visit path. When not allowed, the
// returned route is where the navigation should land instead: login when
// signed out, the role's home on a role mismatch, and Default for unknown
// paths.
func Authorize(path string, role session.Role) (string, bool) {
	need, known := requiredRole[path]
	if !known {
		if path == Login {
			return Login, true
		}
		return Default(role), false
	}
	if role == session.RoleNone {
		return Login, false
	}
	if role != need {
		return Default(role), false
	}
	return path, true
}
