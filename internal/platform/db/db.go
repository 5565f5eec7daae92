package db

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"go.mongodb.org/mongo-driver/mongo"
	_ "modernc.org/sqlite"

	"workhours/internal/platform/config"
)

const (
	mysqlDriverName  = "mysql"
	sqliteDriverName = "sqlite"
	connectTimeout   = 5 * time.Second
)

// Handle is the process-wide connection pool. Exactly one of SQL / Mongo is set.
type Handle struct {
	Driver string
	SQL    *sql.DB
	Mongo  *mongo.Database
}

// Open connects to the configured store. It does not run migrations.
func Open(ctx context.Context, c config.DatabaseConfig) (*Handle, error) {
	switch c.Driver {
	case config.DriverMongo:
		mdb, err := connectMongo(ctx, c)
		if err != nil {
			return nil, err
		}
		return &Handle{Driver: c.Driver, Mongo: mdb}, nil
	case config.DriverMySQL:
		conn, err := connectMySQL(ctx, c)
		if err != nil {
			return nil, err
		}
		return &Handle{Driver: c.Driver, SQL: conn}, nil
	case config.DriverSQLite:
		conn, err := OpenSQLite(ctx, c.URL)
		if err != nil {
			return nil, err
		}
		return &Handle{Driver: c.Driver, SQL: conn}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", c.Driver)
	}
}

func (h *Handle) Close(ctx context.Context) error {
	if h.SQL != nil {
		return h.SQL.Close()
	}
	if h.Mongo != nil {
		return h.Mongo.Client().Disconnect(ctx)
	}
	return nil
}

// Migrate creates tables (SQL) or indexes (Mongo). Safe to run repeatedly.
func (h *Handle) Migrate(ctx context.Context) error {
	if h.Mongo != nil {
		return ensureMongoIndexes(ctx, h.Mongo)
	}
	return ApplyMigrations(ctx, h.SQL, h.Driver)
}

// Name is used in startup logs; it never includes credentials.
func (h *Handle) Name() string {
	if h.Mongo != nil {
		return "mongodb/" + h.Mongo.Name()
	}
	return h.Driver
}

func mysqlDSN(c config.DatabaseConfig) (string, error) {
	var mc *mysql.Config
	if c.URL != "" {
		parsed, err := mysql.ParseDSN(strings.TrimPrefix(c.URL, "mysql://"))
		if err != nil {
			return "", fmt.Errorf("parse mysql dsn: %w", err)
		}
		mc = parsed
	} else {
		mc = mysql.NewConfig()
		mc.User = c.Username
		mc.Passwd = c.Password
		mc.Net = "tcp"
		port := c.Port
		if port == 0 {
			port = 3306
		}
		mc.Addr = net.JoinHostPort(c.Host, strconv.Itoa(port))
		mc.DBName = c.DBName
	}
	mc.Loc = time.UTC
	mc.Timeout = 3 * time.Second
	mc.ReadTimeout = 5 * time.Second
	mc.WriteTimeout = 5 * time.Second
	return mc.FormatDSN(), nil
}

func connectMySQL(ctx context.Context, c config.DatabaseConfig) (*sql.DB, error) {
	dsn, err := mysqlDSN(c)
	if err != nil {
		return nil, err
	}
	conn, err := sql.Open(mysqlDriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("connect mysql: %w", err)
	}

	// single user; a small pool is plenty
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(30 * time.Minute)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	return conn, nil
}

// OpenSQLite opens a SQLite database through the pure-Go driver.
// dsn may be ":memory:" (tests) or a file path / file: URI.
func OpenSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	conn, err := sql.Open(sqliteDriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// one connection: serialises writers and keeps :memory: databases alive
	conn.SetMaxOpenConns(1)
	conn.SetConnMaxLifetime(0)

	if _, err := conn.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite pragma: %w", err)
	}
	return conn, nil
}
