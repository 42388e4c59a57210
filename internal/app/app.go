// Package app wires the store, the catalog, the mailer and the http server
// together and owns their lifecycle.
package app

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/lumioapp/lumio-site-manager/config"
	httpapi "github.com/lumioapp/lumio-site-manager/internal/api/http"
	"github.com/lumioapp/lumio-site-manager/internal/catalog"
	"github.com/lumioapp/lumio-site-manager/internal/content"
	"github.com/lumioapp/lumio-site-manager/internal/dependency"
	"github.com/lumioapp/lumio-site-manager/internal/mail"
	"github.com/lumioapp/lumio-site-manager/internal/store"
)

type App struct {
	c      *config.Config
	db     dependency.Repository
	mailer dependency.Mailer
	hs     *httpapi.Server
	done   chan struct{}
}

func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// Done closes when any component exits, signaling the process to shut down.
func (a *App) Done() chan struct{} {
	return a.done
}

// Start brings the application up. A missing database configuration keeps
// the read-only catalog serving while write endpoints answer with a
// configuration error.
func (a *App) Start(ctx context.Context) error {
	l := slog.Default()

	if a.c.DB.DSN == "" {
		l.WarnContext(ctx, "database is not configured, waitlist intake disabled")
	} else {
		db, err := store.New(ctx, a.c.DB)
		if err != nil {
			return fmt.Errorf("can't init database: %w", err)
		}
		a.db = db
		l.InfoContext(ctx, "connected to database")
	}

	if a.c.Mailer.APIKey != "" && a.db != nil {
		m, err := mail.New(&a.c.Mailer, a.db.Mail())
		if err != nil {
			a.stopComponents(ctx)
			return fmt.Errorf("can't init mailer: %w", err)
		}
		if err := m.Start(ctx); err != nil {
			a.stopComponents(ctx)
			return fmt.Errorf("can't start mailer: %w", err)
		}
		a.mailer = m
		l.InfoContext(ctx, "mailer started")
	} else {
		l.WarnContext(ctx, "mailer is not configured, welcome mail disabled")
	}

	cat := catalog.New(content.Articles(), content.Authors(), content.Categories(), content.Tags())

	a.hs = httpapi.New(&a.c.HTTP, a.db, cat, a.mailer)
	if err := a.hs.Start(ctx); err != nil {
		a.stopComponents(ctx)
		return fmt.Errorf("can't start http server: %w", err)
	}

	go func() {
		<-a.hs.Done()
		close(a.done)
	}()

	return nil
}

// Stop shuts components down in reverse start order.
func (a *App) Stop(ctx context.Context) {
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "can't stop http server",
				slog.String("err", err.Error()),
			)
		}
	}
	a.stopComponents(ctx)
}

func (a *App) stopComponents(ctx context.Context) {
	if a.mailer != nil {
		if err := a.mailer.Stop(); err != nil {
			slog.Default().ErrorContext(ctx, "can't stop mailer",
				slog.String("err", err.Error()),
			)
		}
		a.mailer = nil
	}
	if a.db != nil {
		a.db.Close()
		a.db = nil
	}
}
