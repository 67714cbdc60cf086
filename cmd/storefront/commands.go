package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/phonekart/storefront/internal/account"
	catalogdomain "github.com/phonekart/storefront/internal/catalog/domain"
	"github.com/phonekart/storefront/internal/route"
	"github.com/phonekart/storefront/internal/session"
	"github.com/phonekart/storefront/internal/storefront"
)

func newRootCmd(svc *storefront.Service) *cobra.Command {
	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Terminal client for the phonekart storefront",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCmd(svc),
		newLogoutCmd(svc),
		newWhoamiCmd(svc),
		newRegisterCmd(svc),
		newProductsCmd(svc),
		newProductAddCmd(svc),
		newCartCmd(svc),
		newCheckoutCmd(svc),
	)
	return root
}

func newLoginCmd(svc *storefront.Service) *cobra.Command {
	var userID, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and load your cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := svc.Login(cmd.Context(), account.Credentials{UserID: userID, Password: password})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s)\n", info.UserName, info.Role)
			fmt.Fprintf(cmd.OutOrStdout(), "Home: %s\n", svc.Home())
			return nil
		},
	}
	cmd.Flags().StringVarP(&userID, "user", "u", "", "user ID")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(svc *storefront.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and discard the local cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := svc.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func newWhoamiCmd(svc *storefront.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			info, ok := svc.Session().Current()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s), role %s, last login %s\n",
				info.UserName, info.UserID, info.Role, info.LastLogin.Format("2006-01-02 15:04"))
			return nil
		},
	}
}

func newRegisterCmd(svc *storefront.Service) *cobra.Command {
	var form account.RegistrationForm
	var vendor bool

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a customer or vendor account",
		RunE: func(cmd *cobra.Command, args []string) error {
			form.Role = session.RoleCustomer
			if vendor {
				form.Role = session.RoleVendor
			}
			if err := svc.Register(cmd.Context(), form); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Registration submitted")
			return nil
		},
	}

	cmd.Flags().StringVar(&form.UserID, "user", "", "user ID (uppercase letters and digits)")
	cmd.Flags().StringVar(&form.UserName, "name", "", "display name")
	cmd.Flags().StringVar(&form.Password, "password", "", "password")
	cmd.Flags().StringVar(&form.ConfirmPassword, "confirm-password", "", "password confirmation")
	cmd.Flags().StringVar(&form.Email, "email", "", "email address")
	cmd.Flags().StringVar(&form.Phone, "phone", "", "10-digit phone number")
	cmd.Flags().StringVar(&form.Address, "address", "", "postal address")
	cmd.Flags().StringVar(&form.Pincode, "pincode", "", "6-digit pincode")
	cmd.Flags().StringVar(&form.PANNumber, "pan", "", "PAN number")
	cmd.Flags().StringVar(&form.GSTNumber, "gst", "", "GST number (vendors)")
	cmd.Flags().BoolVar(&vendor, "vendor", false, "register as a vendor")
	return cmd
}

func newProductsCmd(svc *storefront.Service) *cobra.Command {
	var brand, minPrice, maxPrice string

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List the catalog, optionally filtered by brand and price",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := svc.Catalog().Load(cmd.Context()); err != nil {
				return err
			}

			filter := catalogdomain.Filter{Brand: brand}
			var err error
			if filter.MinPrice, err = parsePrice(minPrice); err != nil {
				return fmt.Errorf("--min: %w", err)
			}
			if filter.MaxPrice, err = parsePrice(maxPrice); err != nil {
				return fmt.Errorf("--max: %w", err)
			}

			renderProducts(cmd.OutOrStdout(), svc.Catalog().FilterProducts(filter), svc.Catalog().Brands())
			return nil
		},
	}
	cmd.Flags().StringVar(&brand, "brand", "", "only this brand")
	cmd.Flags().StringVar(&minPrice, "min", "", "minimum price")
	cmd.Flags().StringVar(&maxPrice, "max", "", "maximum price")
	return cmd
}

func newProductAddCmd(svc *storefront.Service) *cobra.Command {
	var p catalogdomain.Product
	var price string

	cmd := &cobra.Command{
		Use:   "product-add",
		Short: "Add a product to the catalog (vendors only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := route.Authorize(route.VendorAddProduct, svc.Session().Role()); !ok {
				return fmt.Errorf("only vendors can add products")
			}
			var err error
			if p.Price, err = parsePrice(price); err != nil {
				return fmt.Errorf("--price: %w", err)
			}
			created, err := svc.Catalog().Create(cmd.Context(), p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%s %s)\n", created.ProductID, created.Brand, created.Model)
			return nil
		},
	}

	cmd.Flags().StringVar(&p.ProductID, "id", "", "product ID (uppercase letters and digits)")
	cmd.Flags().StringVar(&p.Model, "model", "", "model name")
	cmd.Flags().StringVar(&p.Brand, "brand", "", "brand")
	cmd.Flags().StringVar(&p.Description, "description", "", "description")
	cmd.Flags().StringVar(&price, "price", "", "unit price")
	cmd.Flags().Int64Var(&p.Quantity, "stock", 0, "units in stock")
	cmd.Flags().StringVar(&p.Color, "color", "", "color")
	cmd.Flags().StringVar(&p.Features, "features", "", "comma-separated features")
	cmd.Flags().StringVar(&p.ImageRef, "image", "", "image reference")
	return cmd
}

func newCartCmd(svc *storefront.Service) *cobra.Command {
	cart := &cobra.Command{
		Use:   "cart",
		Short: "Show the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := svc.Bootstrap(cmd.Context()); err != nil {
				return err
			}
			renderCart(cmd.OutOrStdout(), svc.Cart().Snapshot())
			return nil
		},
	}

	var qty int64
	add := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add units of a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := svc.Bootstrap(cmd.Context()); err != nil {
				return err
			}
			if err := svc.AddToCart(cmd.Context(), args[0], qty); err != nil {
				return err
			}
			renderCart(cmd.OutOrStdout(), svc.Cart().Snapshot())
			return nil
		},
	}
	add.Flags().Int64Var(&qty, "qty", 1, "quantity delta, negative to decrement")

	remove := &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a product from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := svc.Bootstrap(cmd.Context()); err != nil {
				return err
			}
			if err := svc.RemoveFromCart(cmd.Context(), args[0]); err != nil {
				return err
			}
			renderCart(cmd.OutOrStdout(), svc.Cart().Snapshot())
			return nil
		},
	}

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Empty the local cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc.Cart().Clear()
			fmt.Fprintln(cmd.OutOrStdout(), "Cart cleared")
			return nil
		},
	}

	cart.AddCommand(add, remove, clear)
	return cart
}

func newCheckoutCmd(svc *storefront.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Submit the cart as an order",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := svc.Bootstrap(cmd.Context()); err != nil {
				return err
			}
			if err := svc.Checkout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Checkout complete, thank you!")
			return nil
		},
	}
}

func parsePrice(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
