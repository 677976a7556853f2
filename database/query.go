package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"net/url"
	"photomagnet_server/config"
	"photomagnet_server/structs"
	"strconv"
	"time"

	"github.com/MonkyMars/gecho"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
)

// DB wraps the bun database handle with the retry policy used by the query builder
type DB struct {
	*bun.DB
	retry        RetryConfig
	readTimeout  time.Duration
	writeTimeout time.Duration
}

var instance *DB

// DSN builds a postgres connection URL from the configuration
func DSN(dbCfg *structs.DatabaseConfig) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(dbCfg.User, dbCfg.Password),
		Host:   dbCfg.Host + ":" + strconv.Itoa(dbCfg.Port),
		Path:   "/" + dbCfg.Name,
	}
	q := u.Query()
	q.Set("sslmode", dbCfg.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// Connect establishes a connection to the database using centralized configuration
func Connect(dbCfg *structs.DatabaseConfig, logger *gecho.Logger) (*DB, error) {
	sqldb, err := sql.Open("pgx", DSN(dbCfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Apply pool settings from configuration
	sqldb.SetMaxOpenConns(dbCfg.MaxConns)
	sqldb.SetMaxIdleConns(dbCfg.MinConns)
	sqldb.SetConnMaxLifetime(dbCfg.MaxLifetime)
	sqldb.SetConnMaxIdleTime(dbCfg.MaxIdleTime)

	db := NewDB(sqldb, dbCfg, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = sqldb.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Connected to database successfully", gecho.Field("host", dbCfg.Host), gecho.Field("name", dbCfg.Name))

	return db, nil
}

// NewDB wraps an already opened *sql.DB.
func NewDB(sqldb *sql.DB, dbCfg *structs.DatabaseConfig, logger *gecho.Logger) *DB {
	bunDB := bun.NewDB(sqldb, pgdialect.New())
	bunDB.AddQueryHook(&connectionHealthHook{logger: logger})

	retry := DefaultRetryConfig()
	retry.EnableRetry = dbCfg.EnableRetry

	return &DB{
		DB:           bunDB,
		retry:        retry,
		readTimeout:  dbCfg.ReadTimeout,
		writeTimeout: dbCfg.WriteTimeout,
	}
}

// ReadContext bounds ctx by DB_READ_TIMEOUT for reads issued outside Query[T]
func (db *DB) ReadContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return db.withTimeout(ctx, false)
}

func (db *DB) withTimeout(ctx context.Context, write bool) (context.Context, context.CancelFunc) {
	timeout := db.readTimeout
	if write {
		timeout = db.writeTimeout
	}
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// Initialize sets up the global database instance using centralized configuration
func Initialize() error {
	db, err := Connect(config.GetConfig().Database, config.GetLogger())
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	instance = db
	return nil
}

// GetInstance returns the global database instance
func GetInstance() *DB {
	if instance == nil {
		log.Fatal("Database instance is not initialized. Call Initialize() first.")
	}
	return instance
}

// CloseInstance closes the global database instance
func CloseInstance() error {
	if instance != nil {
		return instance.Close()
	}
	return nil
}

// Health checks the database connection health
func (db *DB) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return db.PingContext(ctx)
}

// GetStats returns connection pool statistics for monitoring
func (db *DB) GetStats() sql.DBStats {
	return db.DB.DB.Stats()
}

// connectionHealthHook implements bun.QueryHook to monitor connection health
type connectionHealthHook struct {
	logger *gecho.Logger
}

func (h *connectionHealthHook) BeforeQuery(ctx context.Context, event *bun.QueryEvent) context.Context {
	return ctx
}

func (h *connectionHealthHook) AfterQuery(ctx context.Context, event *bun.QueryEvent) {
	// Log slow queries (over 1 second)
	if duration := time.Since(event.StartTime); duration > time.Second {
		h.logger.Warn("Slow database query detected",
			gecho.Field("query", event.Query),
			gecho.Field("duration", duration),
		)
	}

	if event.Err != nil && (errors.Is(event.Err, io.EOF) || errors.Is(event.Err, io.ErrUnexpectedEOF)) {
		h.logger.Error("Database connection EOF error - connection may have been closed by server",
			gecho.Field("error", event.Err),
			gecho.Field("query", event.Query),
		)
	}
}
