// File: internal/app/wire.go
//go:build wireinject
// +build wireinject

package app

import (
	"unichoice_core/internal/compare"
	"unichoice_core/internal/config"
	"unichoice_core/internal/favorites"
	"unichoice_core/internal/platform/logger"
	"unichoice_core/internal/platform/store"
	"unichoice_core/internal/review"
	"unichoice_core/internal/university"
	"unichoice_core/internal/user"

	"github.com/google/wire"
)

// InitializeApp is the main Wire injector.
func InitializeApp(cfg *config.Config) (*App, error) {
	wire.Build(
		// Platform Layer
		logger.New,
		store.New,

		// Identity & Session
		user.NewStoreRepository, // Provides user.Repository
		user.NewService,

		// Directory, Reviews, Collections
		university.NewStoreRepository,
		university.NewService,
		review.NewStoreRepository,
		review.NewService,
		compare.NewService,
		favorites.NewService,

		// Application Layer
		NewApp,
	)
	return nil, nil
}
