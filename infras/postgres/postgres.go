package postgres

//nolint:revive
import (
	"net"
	"net/url"
	"summit/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName = "postgres"

	maxIdleConnections = 10
	maxOpenConnections = 10
	connMaxLifetime    = 30 * time.Minute
)

// Connection splits catalog and listing reads from the booking and review writes.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// Endpoint is one side of the read/write pair.
type Endpoint struct {
	Role     string
	Host     string
	Port     string
	Username string
	Password string
	Database string
	SSLMode  string
	Timezone string
}

func New(config *config.Config) *Connection {
	pg := config.DB.Postgres

	return &Connection{
		Read:  connect(ReadEndpoint(config), pg.MaxRetry, pg.RetryWaitTime),
		Write: connect(WriteEndpoint(config), pg.MaxRetry, pg.RetryWaitTime),
	}
}

func ReadEndpoint(config *config.Config) Endpoint {
	read := config.DB.Postgres.Read

	return Endpoint{
		Role:     "read",
		Host:     read.Host,
		Port:     read.Port,
		Username: read.Username,
		Password: read.Password,
		Database: config.DB.Postgres.Prefix + read.Name,
		SSLMode:  read.SSLMode,
		Timezone: read.Timezone,
	}
}

func WriteEndpoint(config *config.Config) Endpoint {
	write := config.DB.Postgres.Write

	return Endpoint{
		Role:     "write",
		Host:     write.Host,
		Port:     write.Port,
		Username: write.Username,
		Password: write.Password,
		Database: config.DB.Postgres.Prefix + write.Name,
		SSLMode:  write.SSLMode,
		Timezone: write.Timezone,
	}
}

// DSN renders the endpoint as a postgres URL. Extra query values are merged in.
func (e Endpoint) DSN(extra url.Values) string {
	query := url.Values{}
	if e.SSLMode != "" {
		query.Set("sslmode", e.SSLMode)
	}

	if e.Timezone != "" {
		query.Set("timezone", e.Timezone)
	}

	for key, values := range extra {
		for _, value := range values {
			query.Add(key, value)
		}
	}

	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(e.Username, e.Password),
		Host:     net.JoinHostPort(e.Host, e.Port),
		Path:     e.Database,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func connect(endpoint Endpoint, maxRetry, waitSeconds int) *sqlx.DB {
	logger := log.With().
		Str("role", endpoint.Role).
		Str("host", endpoint.Host).
		Str("port", endpoint.Port).
		Str("database", endpoint.Database).
		Logger()

	for attempt := 1; attempt <= maxRetry; attempt++ {
		db, err := sqlx.Connect(driverName, endpoint.DSN(nil))
		if err == nil {
			db.SetMaxIdleConns(maxIdleConnections)
			db.SetMaxOpenConns(maxOpenConnections)
			db.SetConnMaxLifetime(connMaxLifetime)

			logger.Info().Msg("connected to database")

			return db
		}

		logger.Error().Err(err).Int("attempt", attempt).Msg("failed connecting to database, retrying")

		time.Sleep(time.Duration(waitSeconds) * time.Second)
	}

	logger.Error().Int("attempts", maxRetry).Msg("giving up on database connection")

	return nil
}
