package handler

import (
	"github.com/jellydator/ttlcache/v3"
	"github.com/tobenna/animon/clients"
	"github.com/tobenna/animon/config"
	"github.com/tobenna/animon/data"
	"github.com/tobenna/animon/internal/jsonlog"
	"github.com/tobenna/animon/service"
)

// Handler defines the handler layer.
type Handler struct {
	config   config.Config
	logger   *jsonlog.Logger
	cache    *ttlcache.Cache[string, *data.User]
	identity *clients.IdentityClient
	service  service.Service
}

// New creates a new instance of Handler.
func New(cfg config.Config, logger *jsonlog.Logger, cache *ttlcache.Cache[string, *data.User], identity *clients.IdentityClient, service service.Service) *Handler {
	return &Handler{
		config:   cfg,
		logger:   logger,
		cache:    cache,
		identity: identity,
		service:  service,
	}
}
