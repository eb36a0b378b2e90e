package config

import (
	"fmt"
	"net/url"
)

type DB struct {
	User     string `envconfig:"USER" default:"postgres"`
	Password string `envconfig:"PASSWORD"`
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     int    `envconfig:"PORT" default:"5432"`
	Name     string `envconfig:"NAME" default:"banking"`
	SSLMode  string `envconfig:"SSLMODE" default:"disable"`
}

// DSN builds a postgres connection URL. Credentials are escaped.
func (d *DB) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     d.Name,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return u.String()
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	File       string `envconfig:"FILE" default:"logs/banking_app.log"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[banking]"`
}

type App struct {
	Env string `envconfig:"APP_ENV" default:"development"`
	Log *Log   `envconfig:"LOG"`
	DB  *DB    `envconfig:"DB"`
}
