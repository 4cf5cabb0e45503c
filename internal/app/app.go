package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DRSN-tech/catalog-live/internal/cfg"
	v1Http "github.com/DRSN-tech/catalog-live/internal/delivery/v1/http"
	"github.com/DRSN-tech/catalog-live/internal/delivery/v1/ws"
	"github.com/DRSN-tech/catalog-live/internal/repository/mongodb"
	"github.com/DRSN-tech/catalog-live/internal/repository/mongodb/converter"
	redisRepo "github.com/DRSN-tech/catalog-live/internal/repository/redis"
	"github.com/DRSN-tech/catalog-live/internal/usecase"
	"github.com/DRSN-tech/catalog-live/pkg/clients"
	"github.com/DRSN-tech/catalog-live/pkg/closer"
	"github.com/DRSN-tech/catalog-live/pkg/logger"
	"github.com/go-chi/chi/v5"
)

const shutdownTimeout = 10 * time.Second

// Run wires the whole process: clients, repositories, usecases and delivery.
// Every connection handle is constructed here and injected downward; teardown
// runs through the closer in reverse construction order.
func Run(config *cfg.Config, log logger.Logger) error {
	cl := closer.NewCloser(0)

	mongoClient, err := clients.NewMongoClient(config.Mongo)
	if err != nil {
		log.Errorf(err, "failed to connect to mongodb")
		return err
	}
	cl.Add(mongoClient.Close)

	redisClient := clients.NewRedisClient(config.Redis)

	pingCtx, pingCancel := context.WithTimeout(context.Background(), config.Redis.DialTimeout)
	err = redisClient.Ping(pingCtx)
	pingCancel()
	if err != nil {
		log.Errorf(err, "failed to connect to redis")
		return err
	}
	cl.Add(func(context.Context) error { return redisClient.Close() })

	db := mongoClient.Database()
	productRepo := mongodb.NewProductRepo(db, converter.NewProductConverter())
	messageRepo := mongodb.NewMessageRepo(db, converter.NewMessageConverter())
	cacheRepo := redisRepo.NewCacheRepo(redisClient, config.Redis, log)

	catalogUC := usecase.NewCatalogUC(productRepo, cacheRepo, log)
	chatUC := usecase.NewChatUC(messageRepo, log)

	coordinator := ws.NewCoordinator(catalogUC, chatUC, log)
	hub := ws.NewHub(coordinator, config.Ws, log)
	cl.Add(hub.Shutdown)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	if err := router.Init(catalogUC, hub); err != nil {
		log.Errorf(err, "failed to initialize router")
		return err
	}

	httpSrv := v1Http.NewServer(r, config.Http)
	cl.Add(httpSrv.Stop)

	errCh := make(chan error, 1)
	go func() {
		log.Infof("HTTP server started on port %s", config.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		log.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		log.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := cl.Close(shutdownCtx); err != nil {
		log.Errorf(err, "shutdown error")
	}

	log.Infof("Application shutdown complete")
	return appErr
}
