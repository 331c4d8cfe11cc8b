package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"campuscctv.xyz/inventory-service/pkg/auth"
	"campuscctv.xyz/inventory-service/pkg/cctv"
	"campuscctv.xyz/inventory-service/pkg/common"
	"campuscctv.xyz/inventory-service/pkg/db"
	cctvGrpc "campuscctv.xyz/inventory-service/pkg/grpc"
	cctvHttp "campuscctv.xyz/inventory-service/pkg/http"
)

const (
	limiterSweepInterval = 5 * time.Minute
	limiterIdleTimeout   = 30 * time.Minute
	shutdownTimeout      = 10 * time.Second
)

func sweepLimiters(ctx context.Context, store *cctv.RateLimiterStore, logger *zap.Logger) {
	ticker := time.NewTicker(limiterSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := store.Sweep(limiterIdleTimeout); removed > 0 {
				logger.Info("Swept idle device limiters", zap.Int("removed", removed), zap.Int("remaining", store.Len()))
			}
		}
	}
}

func main() {
	cfg, err := common.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	dialector, err := db.DialectorFor(cfg.DBType, cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	dbInstance := db.GetInstance(dialector)

	tokens, err := auth.NewTokenManager(cfg.JwtSecret, auth.DefaultTokenTTL)
	if err != nil {
		log.Fatal(err)
	}

	logger := common.GetLogger()

	cctvCore := cctv.New(dbInstance)
	limiterStore := cctv.NewRateLimiterStore(rate.Limit(cfg.DefaultRate), cfg.DefaultBurst)
	defaultLimiter := zap.String("default_limiter",
		fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", cfg.DefaultRate, cfg.DefaultBurst))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go sweepLimiters(ctx, limiterStore, logger)

	if cfg.GrpcHostPort != "" {
		statusServer := cctvGrpc.StatusServer{
			Cctv:             cctvCore,
			RateLimiterStore: limiterStore,
		}
		s := statusServer.NewServer()
		logger.Info("gRPC server created with:", defaultLimiter)

		listener, err := net.Listen("tcp", cfg.GrpcHostPort)
		if err != nil {
			log.Fatalf("failed to listen: %v", err)
		}

		go func() {
			logger.Info("Starting gRPC server on: " + cfg.GrpcHostPort)
			if err := s.Serve(listener); err != nil {
				log.Fatalf("grpc server failed to serve: %v", err)
			}
		}()
		defer s.GracefulStop()
	}

	rs := &cctvHttp.RestfulServer{
		Server:           gin.Default(),
		Cctv:             cctvCore,
		RateLimiterStore: limiterStore,
		Tokens:           tokens,
	}
	rs.Setup()

	logger.Info("http server created with:", defaultLimiter)

	srv := &http.Server{
		Addr:    cfg.HttpHostPort,
		Handler: rs.Server,
	}

	go func() {
		logger.Info("Starting HTTP server on: " + cfg.HttpHostPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server failed to serve: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", zap.Error(err))
	}
}
