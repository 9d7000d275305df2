package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"court-reservation-server/internal/repository"
	"court-reservation-server/internal/service"
	httpx "court-reservation-server/internal/transport/http"
	"court-reservation-server/pkg/config"
	"court-reservation-server/pkg/mq"
	"court-reservation-server/pkg/obs"
)

func must[T any](v T, err error) T {
	if err != nil {
		log.Fatal(err)
	}
	return v
}

func main() {
	_ = godotenv.Load()
	cfg := must(config.Load())

	db := must(repository.Open(cfg.DBDriver, cfg.DBDSN))
	must(0, repository.Migrate(db))
	must(0, repository.Seed(db))
	log.Printf("[server] connected to %s database", cfg.DBDriver)

	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		shutdown := obs.InitTracer("court-reservation-server")
		defer shutdown(context.Background())
	}

	var pub *mq.Publisher
	if cfg.RabbitURL != "" {
		pub = must(mq.NewPublisher(cfg.RabbitURL, cfg.ReservationExchange))
		defer pub.Close()
		log.Printf("[server] publishing events on %s", cfg.ReservationExchange)
	}

	auditSvc := service.NewAuditService(repository.NewAuditRepo(db))
	reservationSvc := service.NewReservationService(repository.NewReservationRepo(db), auditSvc, pub)
	registrySvc := service.NewRegistryService(repository.NewClientRepo(db), repository.NewCourtRepo(db))
	backupSvc := service.NewBackupService(db, cfg.BackupDir, auditSvc, pub)

	router := httpx.NewRouter(cfg, reservationSvc, registrySvc, auditSvc, backupSvc)
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Printf("[server] http on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[server] http: %v", err)
		}
	}()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	log.Println("[server] shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}
