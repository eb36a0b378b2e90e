package infra

import (
	"errors"
	"io"
	"log"
	"time"

	"github.com/amirasaad/banking/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDBConnection opens the postgres connection pool described by cnf.
// GORM warnings go to logOut, and only in development.
func NewDBConnection(
	cnf *config.DB,
	appEnv string,
	logOut io.Writer,
) (*gorm.DB, error) {
	if cnf == nil || cnf.Host == "" {
		return nil, errors.New("DB_HOST is not set")
	}

	connection, err := gorm.Open(postgres.Open(cnf.DSN()), &gorm.Config{
		Logger:                 newGormLogger(logOut, appEnv),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	return connection, nil
}

// newGormLogger keeps GORM output off the console; a nil w discards it.
func newGormLogger(w io.Writer, appEnv string) logger.Interface {
	if w == nil {
		w = io.Discard
	}
	logMode := logger.Silent
	if appEnv == "development" {
		logMode = logger.Warn
	}
	return logger.New(log.New(w, "\r\n", log.LstdFlags), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logMode,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
