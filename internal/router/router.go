package router

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "vet-clinic-portal/docs"
	"vet-clinic-portal/internal/adapters/auth/token"
	kvmem "vet-clinic-portal/internal/adapters/kv/memory"
	kvpg "vet-clinic-portal/internal/adapters/kv/postgres"
	kvredis "vet-clinic-portal/internal/adapters/kv/redis"
	"vet-clinic-portal/internal/adapters/storage/kvjson"
	"vet-clinic-portal/internal/domain/admin"
	"vet-clinic-portal/internal/domain/appointments"
	authdomain "vet-clinic-portal/internal/domain/auth"
	"vet-clinic-portal/internal/domain/pets"
	"vet-clinic-portal/internal/domain/users"
	"vet-clinic-portal/internal/middleware"
	"vet-clinic-portal/internal/platform/logger"
	"vet-clinic-portal/internal/ports/auth"
	"vet-clinic-portal/internal/ports/kv"
)

type Options struct {
	// Verifier puede ser nil (modo dev: headers X-Debug-*).
	Verifier auth.TokenVerifier

	// Issuer firma los tokens que devuelve login/register.
	Issuer auth.TokenIssuer

	// KV explícito; si es nil se resuelve por env (dev/handoff).
	KV kv.Store

	// Log opcional; si viene, se loguea cada request.
	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if opts.Log != nil {
		r.Use(middleware.RequestLogger(opts.Log))
	}
	r.Use(middleware.AuthContext(opts.Verifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Si no te pasan store explícito, intenta por env (para dev/handoff)
	store := opts.KV
	if store == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			if opened, err := kvpg.Open(dsn); err == nil {
				store = opened
			}
		}
	}
	if store == nil {
		if addr := os.Getenv("REDIS_ADDR"); addr != "" {
			if opened, err := kvredis.Open(addr); err == nil {
				store = opened
			}
		}
	}
	if store == nil {
		store = kvmem.New()
	}

	// Issuer por defecto para modo dev
	issuer := opts.Issuer
	if issuer == nil {
		issuer = token.NewManager("dev-secret-change-me", 0)
	}

	// Record store: un Source compartido, un repo por colección
	src := kvjson.NewSource(store)
	usersRepo := kvjson.NewUsersRepo(src)
	petsRepo := kvjson.NewPetsRepo(src)
	apptsRepo := kvjson.NewAppointmentsRepo(src)

	// Services por módulo
	usersSvc := users.NewService(usersRepo)
	petsSvc := pets.NewService(petsRepo)
	apptsSvc := appointments.NewService(apptsRepo)
	authSvc := authdomain.NewService(usersRepo, store, issuer)

	// Rutas por módulo
	authdomain.RegisterRoutes(r, authSvc)
	pets.RegisterRoutes(r, petsSvc)
	appointments.RegisterRoutes(r, apptsSvc, petsSvc)
	admin.RegisterRoutes(r, usersSvc, petsSvc, apptsSvc)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}
