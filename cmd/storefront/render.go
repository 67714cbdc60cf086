package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/phonekart/storefront/internal/account"
	cartdomain "github.com/phonekart/storefront/internal/cart/domain"
	catalogapp "github.com/phonekart/storefront/internal/catalog/app"
	catalogdomain "github.com/phonekart/storefront/internal/catalog/domain"
	"github.com/phonekart/storefront/pkg/httpx"
)

func renderProducts(w io.Writer, products []catalogdomain.Product, brands []string) {
	if len(products) == 0 {
		fmt.Fprintln(w, "No products match the filter.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tMODEL\tBRAND\tPRICE\tSTOCK")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n",
			p.ProductID, p.Model, p.Brand, p.Price.StringFixed(2), p.Quantity)
	}
	tw.Flush()

	if len(brands) > 0 {
		fmt.Fprintf(w, "\nBrands: %s\n", strings.Join(brands, ", "))
	}
}

func renderCart(w io.Writer, snap cartdomain.Snapshot) {
	if snap.Status == cartdomain.StatusFailed && snap.Err != "" {
		fmt.Fprintf(w, "! %s\n\n", snap.Err)
	}

	if len(snap.Items) == 0 {
		fmt.Fprintln(w, "Your cart is empty.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tMODEL\tQTY\tUNIT\tTOTAL")
	for _, item := range snap.Items {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
			item.ProductID, item.Model, item.Quantity,
			item.UnitPrice.StringFixed(2), item.LineTotal.StringFixed(2))
	}
	tw.Flush()

	fmt.Fprintf(w, "\n%d item(s), total %s\n", snap.TotalQuantity, snap.TotalPrice.StringFixed(2))
}

// renderError turns the error taxonomy into something readable: field
// errors one per line, server errors with their message, network errors
// with a hint that the backend is unreachable.
func renderError(err error) string {
	var b strings.Builder

	var formErr *account.ValidationError
	var productErr *catalogapp.ValidationError
	switch {
	case errors.As(err, &formErr):
		b.WriteString("Form errors:\n")
		writeFields(&b, formErr.Fields)
	case errors.As(err, &productErr):
		b.WriteString("Product errors:\n")
		writeFields(&b, productErr.Fields)
	default:
		if se, ok := httpx.AsServer(err); ok && len(se.Fields) > 0 {
			fmt.Fprintf(&b, "%s:\n", se.Message)
			writeFields(&b, se.Fields)
			break
		}
		if httpx.IsNetwork(err) {
			fmt.Fprintf(&b, "Cannot reach the storefront API: %v", err)
			break
		}
		b.WriteString(err.Error())
	}
	return b.String()
}

func writeFields(b *strings.Builder, fields map[string]string) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(b, "  %s: %s\n", name, fields[name])
	}
}
