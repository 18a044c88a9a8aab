package config

import (
	"fmt"
	"net/url"
	"time"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
// Each tracker service listens on its own port so the three resource
// families stay operationally isolated.
type ServerConfig struct {
	FitnessPort int    `mapstructure:"fitness_port" validate:"required,gt=0,lt=65536"`
	UserPort    int    `mapstructure:"user_port"    validate:"required,gt=0,lt=65536"`
	FoodPort    int    `mapstructure:"food_port"    validate:"required,gt=0,lt=65536"`
	LogLevel    string `mapstructure:"log_level"    validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
// Host and credentials are environment-supplied, matching the deployment
// model where the database is provisioned out of band.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"     validate:"required"`
	Port     int    `mapstructure:"port"     validate:"required,gt=0,lt=65536"`
	User     string `mapstructure:"user"     validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
	Name     string `mapstructure:"name"     validate:"required"`

	// TimeZone is applied to every checked-out connection as a session
	// setting, so all date arithmetic happens in one fixed zone.
	TimeZone string `mapstructure:"time_zone" validate:"required"`

	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"required,gt=0"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN builds the PostgreSQL connection string from the discrete settings.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		url.QueryEscape(c.User),
		url.QueryEscape(c.Password),
		c.Host,
		c.Port,
		c.Name,
	)
}
