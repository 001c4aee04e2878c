package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/RogueMods_Go/internal/catalog"
	"github.com/osse101/RogueMods_Go/internal/cheat"
	"github.com/osse101/RogueMods_Go/internal/commit"
	"github.com/osse101/RogueMods_Go/internal/config"
	"github.com/osse101/RogueMods_Go/internal/event"
	"github.com/osse101/RogueMods_Go/internal/gamedata"
	"github.com/osse101/RogueMods_Go/internal/handler"
	"github.com/osse101/RogueMods_Go/internal/server"
	"github.com/osse101/RogueMods_Go/internal/session"
	"github.com/osse101/RogueMods_Go/internal/settings"
	"github.com/osse101/RogueMods_Go/internal/shop"
	"github.com/osse101/RogueMods_Go/internal/worker"
)

// App is the fully wired application
type App struct {
	Config   *config.Config
	GameData *gamedata.Registry
	Bus      *event.MemoryBus
	Store    *Store
	Pool     *worker.Pool
	Sessions *session.Manager
	Settings *settings.Registry
	Shop     shop.Service
	Items    cheat.Service
	Queue    *cheat.Queue
	Server   *server.Server
}

// LoadGameData reads and validates the static game data file
func LoadGameData(path string) (*gamedata.Registry, error) {
	loader, err := gamedata.NewLoader()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadGameData, err)
	}
	reg, err := loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadGameData, err)
	}
	slog.Info(LogMsgGameDataLoaded, "path", path, "items", len(reg.Items()))
	return reg, nil
}

// New wires every component. sink receives applied item modifiers; when nil
// they are queued per player for the HTTP API to drain.
func New(ctx context.Context, cfg *config.Config, sink cheat.ModifierSink) (*App, error) {
	reg, err := LoadGameData(cfg.GameDataPath)
	if err != nil {
		return nil, err
	}

	store, err := InitializeStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	bus := InitializeEventSystem()

	pool := worker.NewPool(cfg.CommitWorkers, cfg.CommitWorkers*CommitQueuePerWorker)
	pool.Start()

	gateway := commit.NewGateway(pool, store.Saves, bus, cfg.CommitTimeout)
	sessions := session.NewManager(reg, store.Saves, gateway, cfg.SessionCacheSize, cfg.SessionTTL)
	mods := settings.NewRegistry(cfg.Mods, bus)

	queue := cheat.NewQueue(ModifierQueueLimit)
	if sink == nil {
		sink = queue
	}
	builder := catalog.NewBuilder(reg.Items(), reg, catalog.RegistryExtension(reg), catalog.WithPublisher(bus))

	app := &App{
		Config:   cfg,
		GameData: reg,
		Bus:      bus,
		Store:    store,
		Pool:     pool,
		Sessions: sessions,
		Settings: mods,
		Shop:     shop.NewService(reg, mods, bus),
		Items:    cheat.NewService(builder, reg, sink, bus),
		Queue:    queue,
	}

	menus := handler.NewMenuStore(cfg.SessionCacheSize, cfg.SessionTTL)
	app.Server = server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
	}, server.Handlers{
		Menus:    handler.NewMenuHandlers(menus),
		Shop:     handler.NewShopHandlers(sessions, app.Shop, reg, menus),
		Items:    handler.NewItemHandlers(app.Items, queue, menus),
		Settings: handler.NewSettingsHandlers(mods),
		Players:  handler.NewPlayerHandlers(sessions, store.Players, reg),
		Store:    store.Pinger,
	})

	return app, nil
}

// Shutdown stops the app in dependency order
func (a *App) Shutdown(ctx context.Context) {
	GracefulShutdown(ctx, ShutdownComponents{
		Server: a.Server,
		Pool:   a.Pool,
		Store:  a.Store,
	})
}
