package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	grpcreflect "github.com/bufbuild/connect-grpcreflect-go"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"droscher.com/BreweryDB/configs"
	"droscher.com/BreweryDB/pkg/auth"
	"droscher.com/BreweryDB/pkg/integrations"
	"droscher.com/BreweryDB/pkg/repository"
	"droscher.com/BreweryDB/pkg/search"
	"droscher.com/BreweryDB/pkg/server"
)

const timeout = 5 * time.Second

type ServeCmd struct {
	ConfigFile string `default:".BreweryDB.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(ctx *Context) error {
	logConfig := zap.NewProductionConfig()
	if ctx != nil && ctx.Debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	searchClient, err := search.Connect(conf)
	if err != nil {
		logger.Error("error connecting to search index", zap.Error(err))

		return err
	}

	index := search.NewIndex(searchClient, conf.Search.Index, logger)
	defer index.Close()

	indexCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := index.EnsureIndex(indexCtx); err != nil {
		logger.Error("error creating search index", zap.Error(err))

		return err
	}

	breweries, err := server.NewBreweryServer(repo, index, integrations.GetGeocoder(conf.Geocoder, logger), conf, logger)
	if err != nil {
		return err
	}

	authManager := auth.NewAuthManager(conf, repo, logger)

	mux := http.NewServeMux()
	mux.Handle("/", server.NewRouter(breweries, authManager, conf, logger))

	mountHealth(mux)

	address := fmt.Sprintf(":%d", conf.Server.Port)

	corsHandler := configureCORS(mux, conf.Server.AllowedOrigins)
	serverHandler := h2c.NewHandler(corsHandler, &http2.Server{})

	svr := &http.Server{
		Addr:              address,
		ReadHeaderTimeout: timeout,
		Handler:           serverHandler,
	}

	logger.Info("starting server", zap.String("address", address), zap.Bool("writes", conf.Server.EnableWrites))

	err = svr.ListenAndServe()
	if err != nil {
		logger.Error("failed to start server", zap.Error(err))

		return err
	}

	return nil
}

// mountHealth serves the gRPC health protocol for load balancer probes. The health service is the
// only gRPC service, so it is the only one reported and reflected.
func mountHealth(mux *http.ServeMux) {
	reflector := grpcreflect.NewStaticReflector(grpchealth.HealthV1ServiceName)
	checker := grpchealth.NewStaticChecker(grpchealth.HealthV1ServiceName)
	mux.Handle(grpchealth.NewHandler(checker))
	mux.Handle(grpcreflect.NewHandlerV1(reflector))
	mux.Handle(grpcreflect.NewHandlerV1Alpha(reflector))
}

func configureCORS(mux *http.ServeMux, allowedOrigins []string) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD"},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"authorization",
			"cache-control",
			"connect-protocol-version",
			"content-encoding",
			"content-length",
			"content-type",
			"grpc-timeout",
			"origin",
			"referer",
			"user-agent",
			"x-grpc-web",
		},
		ExposedHeaders: []string{
			"x-total-count",
			"grpc-message",
			"grpc-status",
		},
		MaxAge:             86400, // 24 hours
		OptionsPassthrough: false,
	})

	return corsOpts.Handler(mux)
}
