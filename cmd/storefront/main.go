package main

import (
	"time"

	"github.com/kanoha/storefront/config"
	"github.com/kanoha/storefront/internal/app"
	"github.com/kanoha/storefront/pkg/sigctx"
)

const closeTimeout = 5 * time.Second

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()
	cfg.Print()

	storefront := app.New(sigCtx, cfg)

	storefront.Run(closeApp)

	<-sigCtx.Done()
	ctx, cancel := sigctx.ShutdownContext(closeTimeout)
	defer cancel()

	storefront.Close(ctx)
}
