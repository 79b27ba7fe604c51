package service

import (
	"sync"

	"github.com/tobenna/animon/config"
	"github.com/tobenna/animon/internal/jsonlog"
	"github.com/tobenna/animon/repository"
)

type Service interface {
	items
	reviews
	votes
	aggregator
}

// service defines the app's service layer.
type service struct {
	config config.Config
	wg     *sync.WaitGroup
	logger *jsonlog.Logger
	repo   repository.Repository
}

// New creates a new instance of Service.
func New(cfg config.Config, wg *sync.WaitGroup, logger *jsonlog.Logger, repo repository.Repository) *service {
	return &service{
		config: cfg,
		wg:     wg,
		logger: logger,
		repo:   repo,
	}
}
