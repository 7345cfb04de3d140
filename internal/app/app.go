package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/kanoha/storefront/config"
	"github.com/kanoha/storefront/internal/adapter"
	"github.com/kanoha/storefront/internal/adapter/content"
	"github.com/kanoha/storefront/internal/adapter/httphandler"
	"github.com/kanoha/storefront/internal/adapter/kafka"
	"github.com/kanoha/storefront/internal/adapter/metrics"
	"github.com/kanoha/storefront/internal/adapter/storage"
	"github.com/kanoha/storefront/internal/core/domain"
	"github.com/kanoha/storefront/internal/core/port"
	"github.com/kanoha/storefront/internal/core/service"
	"github.com/kanoha/storefront/pkg/schema"
	"github.com/redis/go-redis/v9"
	"github.com/twmb/franz-go/pkg/sr"
)

// Carts in Redis expire after a month of inactivity.
const redisCartTTL = 30 * 24 * time.Hour

type outbound struct {
	catalog     storage.Catalog
	carts       port.CartStorage
	submissions port.SubmissionsStorage
	producer    port.SubmissionsProducer
}

// closers run in reverse order of acquisition.
type closers []func()

type App struct {
	ctx        context.Context
	cfg        config.Config
	metrics    *metrics.Metrics
	outbound   outbound
	service    *service.Service
	httpServer httphandler.HTTPServer
	closers    closers
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initMetrics()
	app.initCatalog()
	app.initSQLStorage()
	app.initCartStorage()
	app.initProducer()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	level, _ := app.cfg.SlogLevel()
	opts := &slog.HandlerOptions{Level: level}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initMetrics() {
	app.metrics = metrics.New()
}

func (app *App) initCatalog() {
	const op = "App.initCatalog"

	catalog, err := storage.LoadCatalogFile(
		app.cfg.Catalog.File, app.cfg.Catalog.StaticDir,
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.outbound.catalog = catalog
}

// initSQLStorage connects the database when configured. Submissions are
// kept in memory otherwise.
func (app *App) initSQLStorage() {
	const op = "App.initSQLStorage"

	if app.cfg.SQLDB == "" {
		app.outbound.submissions = storage.NewMemorySubmissions()
		return
	}

	sqldb, err := storage.NewSQLDB(app.ctx, app.cfg.SQLDB)
	if err != nil {
		app.fallDown(op, err)
	}
	app.closers = append(app.closers, sqldb.Close)

	app.outbound.submissions = storage.NewSubmissionsRepository(sqldb)
	if app.cfg.Cart.Storage == config.CartStoragePostgres {
		app.outbound.carts = storage.NewCartsRepository(sqldb)
	}
}

func (app *App) initCartStorage() {
	const op = "App.initCartStorage"

	switch app.cfg.Cart.Storage {
	case config.CartStorageMemory:
		app.outbound.carts = storage.NewMemoryCarts()
	case config.CartStorageRedis:
		client, err := storage.DialRedis(
			app.ctx,
			app.cfg.Cart.RedisAddr,
			app.cfg.Cart.RedisPassword,
			app.cfg.Cart.RedisDB,
		)
		if err != nil {
			app.fallDown(op, err)
		}
		app.closers = append(app.closers, closeRedis(client))
		app.outbound.carts = storage.NewRedisCarts(client, redisCartTTL)
	case config.CartStoragePostgres:
		// Set up by initSQLStorage.
	}
}

func closeRedis(client *redis.Client) func() {
	return func() {
		if err := client.Close(); err != nil {
			slog.Error("failed to close redis client", "err", err)
		}
	}
}

func (app *App) initProducer() {
	const op = "App.initProducer"

	if !app.cfg.BrokerEnabled() {
		slog.Info("broker is not configured, submissions are not published")
		return
	}
	broker := app.cfg.Broker

	tlsCfg, err := adapter.MakeTLSConfig(broker.TLS.CA, broker.TLS.Cert, broker.TLS.Key)
	if err != nil {
		app.fallDown(op, err)
	}

	srClient, err := sr.NewClient(sr.URLs(broker.SchemaRegistryURLs...))
	if err != nil {
		app.fallDown(op, err)
	}

	serde, err := schema.NewSerdeSubmissionV1(
		app.ctx,
		schema.SubjectOpt(broker.SubmissionsTopic+"-value"),
		schema.SchemaIdentifierOpt(schema.NewRegistrar(srClient)),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	producer, err := kafka.NewSubmissionsProducer(
		kafka.ProducerClientOpt(app.ctx, broker.SeedBrokers, broker.SubmissionsTopic, tlsCfg),
		kafka.ProducerEncoderOpt(serde),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.closers = append(app.closers, producer.Close)
	app.outbound.producer = producer
}

func (app *App) initCoreService() {
	app.service = service.New(
		app.outbound.catalog,
		app.outbound.carts,
		app.outbound.submissions,
		app.outbound.producer,
		app.metrics,
		service.Options{
			PageSize: app.cfg.Catalog.PageSize,
			AckDelay: app.cfg.Submission.AckDelay,
		},
	)
}

func (app *App) initInboundAdapters() {
	const op = "App.initInboundAdapters"

	theme, err := domain.ParseTheme(app.cfg.Theme.Default)
	if err != nil {
		app.fallDown(op, err)
	}
	themeSettings := httphandler.ThemeSettings{
		Default:    theme,
		Switchable: app.cfg.Theme.Switchable,
	}

	mux := http.NewServeMux()
	httphandler.RegisterCart(mux, app.service)
	httphandler.RegisterProducts(mux, app.service)
	httphandler.RegisterSubmissions(mux, app.service)
	httphandler.RegisterTheme(mux, themeSettings)
	httphandler.RegisterHealth(mux)
	httphandler.RegisterStatic(mux, app.cfg.Catalog.StaticDir)
	mux.Handle("GET /metrics", app.metrics.Handler())

	err = httphandler.RegisterPages(mux, content.NewSite(), app.service, app.service)
	if err != nil {
		app.fallDown(op, err)
	}

	var handler http.Handler = app.metrics.Instrument(mux)
	handler = httphandler.AllowJSON(handler)
	handler = httphandler.Theme(themeSettings)(handler)
	handler = httphandler.Visitor(handler)

	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler,
		httphandler.WithRequestTimeout(app.cfg.RequestTimeout))
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	for i := len(app.closers) - 1; i >= 0; i-- {
		app.closers[i]()
	}

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
