package driver

import (
	"database/sql"

	"acad-service/config"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ConnectDB opens the PostgreSQL pool and verifies connectivity once at
// startup. A store that is unreachable at boot is fatal.
func ConnectDB(cfg config.Config) *sql.DB {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to open database"))
	}
	if err := db.Ping(); err != nil {
		log.Fatal(errors.Wrap(err, "PostgreSQL connection error"))
	}
	log.Info("Acad Service: connected to PostgreSQL")
	return db
}
