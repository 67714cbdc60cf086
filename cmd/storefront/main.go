package main

import (
	"context"
	"fmt"
	"os"

	"github.com/phonekart/storefront/internal/account"
	cartapp "github.com/phonekart/storefront/internal/cart/app"
	cartrest "github.com/phonekart/storefront/internal/cart/infra/rest"
	catalogapp "github.com/phonekart/storefront/internal/catalog/app"
	catalogrest "github.com/phonekart/storefront/internal/catalog/infra/rest"
	"github.com/phonekart/storefront/internal/session"
	"github.com/phonekart/storefront/internal/storefront"
	"github.com/phonekart/storefront/pkg/config"
	"github.com/phonekart/storefront/pkg/httpx"
	"github.com/phonekart/storefront/pkg/logger"
	"github.com/phonekart/storefront/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service: "storefront",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	api := httpx.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, log)
	svc := storefront.New(
		session.Open(cfg.SessionFile, log),
		account.NewClient(api),
		catalogapp.NewStore(catalogrest.New(api), log),
		cartapp.NewStore(cartrest.New(api), log),
		log,
	)

	root := newRootCmd(svc)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, renderError(err))
		os.Exit(1)
	}
}
