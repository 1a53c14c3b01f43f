package app

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/contentdesk/internal/adapter/llm"
	"github.com/heartmarshall/contentdesk/internal/adapter/rest"
	"github.com/heartmarshall/contentdesk/internal/adapter/scheduler"
	"github.com/heartmarshall/contentdesk/internal/adapter/webhook"
	"github.com/heartmarshall/contentdesk/internal/config"
	"github.com/heartmarshall/contentdesk/internal/domain"
	"github.com/heartmarshall/contentdesk/internal/scope"
	"github.com/heartmarshall/contentdesk/internal/service/publish"
	"github.com/heartmarshall/contentdesk/internal/store"
)

// App wires the resource stores, the brand selection, and the external
// service clients into one session-lifetime object the UI layer drives.
type App struct {
	Config *config.Config
	Log    *slog.Logger

	Scope *scope.Selection

	Brands       *store.Store[domain.Brand]
	Categories   *store.Store[domain.Category]
	Topics       *store.Store[domain.Topic]
	ContentTypes *store.Store[domain.ContentType]
	Ideas        *store.Store[domain.Idea]
	Inspirations *store.Store[domain.Inspiration]
	Publications *store.Store[domain.Publication]

	Publish *publish.Service
}

// New builds the application object from configuration. No network traffic
// happens here; call LoadAll for the initial fetch.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	restOpts := rest.Options{
		BaseURL: cfg.API.BaseURL,
		Token:   cfg.API.Token,
		Timeout: cfg.API.Timeout,
	}

	sel := scope.NewSelection()

	a := &App{
		Config: cfg,
		Log:    logger,
		Scope:  sel,

		Brands:       store.NewBrandStore(logger, rest.NewBrandClient(restOpts, logger)),
		Categories:   store.NewCategoryStore(logger, rest.NewCategoryClient(restOpts, logger)),
		Topics:       store.NewTopicStore(logger, rest.NewTopicClient(restOpts, logger)),
		ContentTypes: store.NewContentTypeStore(logger, rest.NewContentTypeClient(restOpts, logger)),
		Ideas:        store.NewIdeaStore(logger, rest.NewIdeaClient(restOpts, logger), sel),
		Inspirations: store.NewInspirationStore(logger, rest.NewInspirationClient(restOpts, logger), sel),
		Publications: store.NewPublicationStore(logger, rest.NewPublicationClient(restOpts, logger), sel),
	}

	postClient := scheduler.NewClient(scheduler.Options{
		BaseURL:   cfg.Scheduler.BaseURL,
		Token:     cfg.Scheduler.Token,
		Platform:  cfg.Scheduler.Platform,
		AccountID: cfg.Scheduler.AccountID,
		Timeout:   cfg.Scheduler.Timeout,
	}, logger)

	generator := llm.NewClient(llm.Options{
		APIKey:    cfg.LLM.APIKey,
		Model:     cfg.LLM.Model,
		MaxTokens: cfg.LLM.MaxTokens,
	}, logger)

	automation := webhook.NewClient(webhook.Options{
		URL:     cfg.Webhook.URL,
		Secret:  cfg.Webhook.Secret,
		Timeout: cfg.Webhook.Timeout,
	}, logger)

	publishSvc, err := publish.NewService(
		logger,
		a.Publications,
		postClient,
		generator,
		automation,
		cfg.Scheduler.Timezone,
	)
	if err != nil {
		return nil, err
	}
	a.Publish = publishSvc

	return a, nil
}

// BindScopeReloads subscribes the brand-scoped stores to selection changes:
// every Set or Clear re-derives their effective filter and reloads them.
// Reloads run in the background; an overtaken completion is discarded by the
// stores' own sequence numbering.
func (a *App) BindScopeReloads(ctx context.Context) {
	a.Scope.Subscribe(func(id uuid.UUID, selected bool) {
		filter := domain.ListFilter{}
		if selected {
			filter.BrandID = &id
		}
		go func() { _ = a.Ideas.Load(ctx, filter) }()
		go func() { _ = a.Inspirations.Load(ctx, filter) }()
		go func() { _ = a.Publications.Load(ctx, filter) }()
	})
}

// LoadAll performs the initial fetch for every store.
func (a *App) LoadAll(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	filter := a.scopedFilter()
	g.Go(func() error { return a.Brands.Load(ctx, domain.ListFilter{}) })
	g.Go(func() error { return a.Categories.Load(ctx, domain.ListFilter{}) })
	g.Go(func() error { return a.Topics.Load(ctx, domain.ListFilter{}) })
	g.Go(func() error { return a.ContentTypes.Load(ctx, domain.ListFilter{}) })
	g.Go(func() error { return a.Ideas.Load(ctx, filter) })
	g.Go(func() error { return a.Inspirations.Load(ctx, filter) })
	g.Go(func() error { return a.Publications.Load(ctx, filter) })

	return g.Wait()
}

// scopedFilter is the effective listing filter for brand-scoped stores.
func (a *App) scopedFilter() domain.ListFilter {
	filter := domain.ListFilter{}
	if id, ok := a.Scope.Current(); ok {
		filter.BrandID = &id
	}
	return filter
}

// Run is the application entry point: configuration, logger, wiring, and the
// initial load.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting contentdesk",
		slog.String("version", BuildVersion()),
		slog.String("api", cfg.API.BaseURL),
		slog.String("log_level", cfg.Log.Level),
	)

	a, err := New(cfg, logger)
	if err != nil {
		return err
	}
	a.BindScopeReloads(ctx)

	return a.LoadAll(ctx)
}
