package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	"vet-clinic-portal/internal/adapters/auth/token"
	kvmem "vet-clinic-portal/internal/adapters/kv/memory"
	kvpg "vet-clinic-portal/internal/adapters/kv/postgres"
	kvredis "vet-clinic-portal/internal/adapters/kv/redis"
	"vet-clinic-portal/internal/platform/config"
	"vet-clinic-portal/internal/platform/logger"
	"vet-clinic-portal/internal/ports/kv"
	"vet-clinic-portal/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	lg := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	store, err := openStore(cfg)
	if err != nil {
		lg.Error("kv store error", map[string]any{"backend": cfg.KVBackend, "err": err.Error()})
		log.Fatalf("kv store error: %v", err)
	}

	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTTTL)

	r := router.NewRouter(router.Options{
		Verifier: tokens,
		Issuer:   tokens,
		KV:       store,
		Log:      lg,
	})

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	lg.Info("starting server", map[string]any{"addr": cfg.HTTPAddr, "kv_backend": cfg.KVBackend})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

func openStore(cfg *config.Config) (kv.Store, error) {
	switch strings.ToLower(cfg.KVBackend) {
	case "redis":
		return kvredis.Open(cfg.RedisAddr)
	case "postgres":
		return kvpg.Open(cfg.DBDSN)
	default:
		return kvmem.New(), nil
	}
}
