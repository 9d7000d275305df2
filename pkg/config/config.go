package config

import (
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// HTTP
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	// Database
	DBDriver string `envconfig:"DB_DRIVER" default:"sqlite"` // sqlite | postgres
	DBDSN    string `envconfig:"DB_DSN" default:"database.db"`

	// Backups (in-engine snapshots, sqlite only)
	BackupDir string `envconfig:"BACKUP_DIR" default:"backups"`

	// Presentation
	TemplateGlob string `envconfig:"TEMPLATE_GLOB" default:"web/templates/*.html"`

	// Messaging; empty RABBIT_URL disables publishing entirely
	RabbitURL           string `envconfig:"RABBIT_URL"`
	ReservationExchange string `envconfig:"RESERVATION_EXCHANGE" default:"reservation.exchange"`

	// Actor recorded in the audit trail when no identity is supplied
	DefaultActor string `envconfig:"DEFAULT_ACTOR" default:"system"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
