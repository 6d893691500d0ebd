package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"github.com/Kaleth2216/FadeApp/internal/apiclient"
	"github.com/Kaleth2216/FadeApp/internal/audit"
	"github.com/Kaleth2216/FadeApp/internal/config"
	"github.com/Kaleth2216/FadeApp/internal/logger"
	"github.com/Kaleth2216/FadeApp/internal/services"
	"github.com/Kaleth2216/FadeApp/internal/session"
	"github.com/Kaleth2216/FadeApp/internal/sessionstore"
	"github.com/Kaleth2216/FadeApp/internal/shell"
	"github.com/Kaleth2216/FadeApp/internal/timezone"
)

func main() {

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store, closeStore := openStore(ctx, cfg, log)
	defer closeStore()

	dispatcher := audit.NewDispatcher(audit.New(log), log)
	defer dispatcher.Close()

	sess := session.NewManager(store, log, dispatcher)
	st := sess.Hydrate(ctx)
	log.Debug().Str("phase", st.Phase.String()).Msg("session hydrated")

	client := apiclient.New(apiclient.Options{
		BaseURL:     cfg.APIBaseURL,
		Timeout:     cfg.APITimeout,
		MockEnabled: cfg.MockEnabled,
	}, store, log)

	sh := shell.New(shell.Deps{
		API:     services.New(client, log),
		Session: sess,
		Clock:   timezone.SystemClock(cfg.Timezone),
		Log:     log,
	}, os.Stdin, os.Stdout)

	if err := sh.Run(ctx); err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("shell stopped")
	}
}

// openStore picks the session backend. An unreachable durable store falls
// back to memory so the client still starts.
func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (sessionstore.Store, func()) {
	noop := func() {}

	switch cfg.Store {
	case config.StoreRedis:
		r, err := sessionstore.OpenRedis(ctx, cfg.RedisURL, cfg.RedisPrefix)
		if err == nil {
			return r, func() { _ = r.Close() }
		}
		log.Error().Err(err).Msg("redis session store unavailable, using memory")
	case config.StorePostgres:
		g, err := sessionstore.OpenPostgres(cfg.DBUrl)
		if err == nil {
			return g, func() { _ = g.Close() }
		}
		log.Error().Err(err).Msg("postgres session store unavailable, using memory")
	case config.StoreMemory:
	default:
		log.Warn().Str("store", cfg.Store).Msg("unknown session store, using memory")
	}
	return sessionstore.NewMemory(), noop
}
