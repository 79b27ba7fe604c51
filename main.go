package main

import (
	"os"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/tobenna/animon/clients"
	"github.com/tobenna/animon/config"
	"github.com/tobenna/animon/data"
	"github.com/tobenna/animon/handler"
	"github.com/tobenna/animon/internal/jsonlog"
	"github.com/tobenna/animon/repository"
	"github.com/tobenna/animon/repository/postgres"
	"github.com/tobenna/animon/service"
)

// @title Animon Review Engine API
// @version 1.0.0
// @description Review, rating aggregation and vote tracking service for the animon catalog.

// @contact.name API Support
// @contact.email support@animon.dev

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	logger := jsonlog.New(os.Stdout, jsonlog.LevelInfo)

	cfg, err := config.Decode()
	if err != nil {
		logger.PrintFatal(err, nil)
	}

	db, err := postgres.OpenDBConn(cfg)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	defer db.Close()
	logger.PrintInfo("database connection pool established", nil)

	identityTimeout, err := time.ParseDuration(cfg.Identity.Timeout)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	identity := clients.NewIdentityClient(cfg.Identity.BaseURL, identityTimeout)

	// Cache for resolved bearer tokens. A hot session should not hit the
	// identity provider on every request.
	cache := ttlcache.New(
		ttlcache.WithTTL[string, *data.User](10 * time.Minute),
	)
	go cache.Start()

	var wg sync.WaitGroup

	repo := repository.New(db)
	svc := service.New(cfg, &wg, logger, repo)
	h := handler.New(cfg, logger, cache, identity, svc)

	app := application{
		config:  cfg,
		logger:  logger,
		handler: h,
		wg:      &wg,
	}

	err = app.serve()
	if err != nil {
		logger.PrintFatal(err, nil)
	}
}
