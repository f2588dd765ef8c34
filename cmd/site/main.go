package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"eduportal.org/internal/auth"
	"eduportal.org/internal/bootstrap"
	"eduportal.org/internal/content"
	"eduportal.org/internal/httpapi"
	"eduportal.org/internal/memstore"
	"eduportal.org/internal/obs"
	"eduportal.org/internal/web"
)

var (
	version = "0.3.1"
	commit  = "dev"
)

func main() {
	obs.Init()
	obs.InitBuildInfo(version, commit)

	secret := os.Getenv("EDUPORTAL_AUTH_SECRET")
	if secret == "" {
		log.Fatal("missing EDUPORTAL_AUTH_SECRET")
	}

	issuerOpts := []auth.IssuerOption{auth.WithIssuer("eduportal")}
	if raw := os.Getenv("EDUPORTAL_TOKEN_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("parse EDUPORTAL_TOKEN_TTL: %v", err)
		}
		issuerOpts = append(issuerOpts, auth.WithTTL(ttl))
	}
	issuer, err := auth.NewIssuer([]byte(secret), issuerOpts...)
	if err != nil {
		log.Fatalf("token issuer: %v", err)
	}

	// PostgreSQL when a DSN is set; otherwise an in-memory store for local
	// development. /readyz pings the DB only when one is attached.
	var (
		db       *sql.DB
		accounts auth.Store
		catalog  content.Store
	)
	if dsn := os.Getenv("EDUPORTAL_PG_DSN"); dsn != "" {
		db, err = sql.Open("pgx", dsn)
		if err != nil {
			log.Fatalf("open db: %v", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(30 * time.Minute)
		accounts = auth.NewPGStore(db)
		catalog = content.NewPGStore(db)
	} else {
		mem := memstore.New()
		accounts = mem
		catalog = mem
		log.Println("EDUPORTAL_PG_DSN not set, using in-memory store")
	}

	svc := auth.NewService(accounts, issuer)
	catalogSvc := content.NewService(catalog)

	pages, err := web.NewRenderer()
	if err != nil {
		log.Fatalf("templates: %v", err)
	}

	// Default credentials are for first boot; override via env in production.
	adminUser := envOr("EDUPORTAL_ADMIN_USER", "admin")
	adminPass := envOr("EDUPORTAL_ADMIN_PASSWORD", "admin123")
	bootCtx, bootCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := bootstrap.EnsureAdmin(bootCtx, accounts, adminUser, adminPass); err != nil {
		log.Fatalf("bootstrap admin: %v", err)
	}
	if err := bootstrap.EnsureSampleContent(bootCtx, catalog); err != nil {
		log.Fatalf("bootstrap content: %v", err)
	}
	bootCancel()

	api := httpapi.New(httpapi.ReadyProbe{DB: db}, version, svc, accounts, catalogSvc, pages)

	srv := &http.Server{
		Addr:              envOr("EDUPORTAL_ADDR", ":8080"),
		Handler:           api.Handler(),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("Starting eduportal %s on %s", version, srv.Addr)

	// graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = srv.Shutdown(ctx)
	if db != nil {
		_ = db.Close()
	}
	log.Println("Stopped")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
