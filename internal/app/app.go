// File: internal/app/app.go
package app

import (
	"unichoice_core/internal/compare"
	"unichoice_core/internal/config"
	"unichoice_core/internal/favorites"
	"unichoice_core/internal/platform/store"
	"unichoice_core/internal/review"
	"unichoice_core/internal/university"
	"unichoice_core/internal/user"

	"go.uber.org/zap"
)

// App is the composition root of the data layer: one record store, one
// session, and the services every view talks to. It plays the role the
// context providers play in a client application; UI layers hold an App and
// call into its services.
type App struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *store.Store

	Users        *user.Service
	Universities *university.Service
	Reviews      *review.Service
	Compare      *compare.Service
	Favorites    *favorites.Service
}

// NewApp assembles the application facade.
func NewApp(
	cfg *config.Config,
	logger *zap.Logger,
	st *store.Store,
	users *user.Service,
	universities *university.Service,
	reviews *review.Service,
	cmp *compare.Service,
	favs *favorites.Service,
) *App {
	return &App{
		cfg:          cfg,
		logger:       logger,
		store:        st,
		Users:        users,
		Universities: universities,
		Reviews:      reviews,
		Compare:      cmp,
		Favorites:    favs,
	}
}

// Subscribe exposes the record store's change feed so views can react to
// writes instead of polling storage on an interval.
func (a *App) Subscribe() (<-chan store.Event, func()) {
	return a.store.Subscribe()
}

// Close releases the record store and flushes the logger.
func (a *App) Close() error {
	err := a.store.Close()
	if syncErr := a.logger.Sync(); err == nil {
		err = syncErr
	}
	return err
}
