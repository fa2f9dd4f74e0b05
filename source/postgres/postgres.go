package postgres

import (
	"context"
	"flag"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/peterbourgon/ff"

	"rangefilter/source"
)

type Config struct {
	Host         string
	Port         int
	User         string
	Password     string
	DatabaseName string
	SSLMode      string
}

// DSN renders the config as a lib/pq connection string
func (c *Config) DSN() string {
	dsn := fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=%s",
		c.Host,
		c.Port,
		c.User,
		c.DatabaseName,
		c.SSLMode,
	)
	if c.Password != "" {
		dsn += " password=" + c.Password
	}
	return dsn
}

// connect to Postgres and return a database handle representing a pool of connections
func Connect(ctx context.Context, config *Config) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", config.DSN())
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}

	err = source.CreateSettingsTable(ctx, db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating settings table: %w", err)
	}

	return db, nil
}

// Parse the flags in the flag set from the command line.
// Additional options may be provided to parse from environment variables, but flags get priority.
//
// Example .env file
// 	POSTGRES_HOST=localhost
// 	POSTGRES_PORT=5432
// 	POSTGRES_USER=alice
// 	POSTGRES_DB_NAME=survey_dev
func Parse(args []string) (*Config, error) {
	var err error

	postgresFlags := flag.NewFlagSet("postgres", flag.ContinueOnError)
	var (
		host     = postgresFlags.String("host", "localhost", "host to connect to")
		port     = postgresFlags.Int("port", 5432, "port to bind to")
		user     = postgresFlags.String("user", "", "user to sign in as")
		password = postgresFlags.String("password", "", "password of the user")
		dbName   = postgresFlags.String("db_name", "", "name of the database")
		sslMode  = postgresFlags.String("ssl_mode", "disable", "lib/pq sslmode")
	)

	err = ff.Parse(postgresFlags, args,
		ff.WithIgnoreUndefined(true),
		ff.WithEnvVarPrefix("POSTGRES"),
	)
	if err != nil {
		return nil, err
	}

	return &Config{
		Host:         *host,
		Port:         *port,
		User:         *user,
		Password:     *password,
		DatabaseName: *dbName,
		SSLMode:      *sslMode,
	}, nil
}
