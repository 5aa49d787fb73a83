package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/reflectx"
	go_ora "github.com/sijms/go-ora/v2"
	_ "modernc.org/sqlite"

	"quiz-coach/internal/config"
)

// Supported values of database.driver. DriverMemory selects the in-process store
// and never reaches Open.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
	DriverOracle = "oracle"
)

func init() {
	// Repositories write "?" placeholders and rebind per driver.
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)
	sqlx.BindDriver(DriverOracle, sqlx.NAMED)
}

// DSN renders the driver specific connection string.
func DSN(cfg config.DBConfig) (string, error) {
	switch cfg.Driver {
	case DriverMySQL:
		mc := mysql.NewConfig()
		mc.User = cfg.User
		mc.Passwd = cfg.Password
		mc.Net = "tcp"
		mc.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
		mc.DBName = cfg.DBName
		mc.ParseTime = true
		mc.Loc = time.UTC
		mc.Params = map[string]string{"charset": "utf8mb4"}
		return mc.FormatDSN(), nil
	case DriverSQLite:
		if cfg.Path == "" {
			return "", fmt.Errorf("database.path is required for sqlite")
		}
		return "file:" + cfg.Path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", nil
	case DriverOracle:
		return go_ora.BuildUrl(cfg.Host, cfg.Port, cfg.DBName, cfg.User, cfg.Password, nil), nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// ConfigureMapper makes lower-case db tags match Oracle's upper-case column names.
func ConfigureMapper(db *sqlx.DB) {
	if db.DriverName() == DriverOracle {
		db.Mapper = reflectx.NewMapperTagFunc("db", strings.ToUpper, strings.ToUpper)
	}
}

// Open connects to the configured database and verifies the connection.
func Open(ctx context.Context, cfg config.DBConfig) (*sqlx.DB, error) {
	dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.Driver, err)
	}

	ConfigureMapper(db)

	if cfg.Driver == DriverSQLite {
		// a single writer avoids SQLITE_BUSY under concurrent requests
		db.SetMaxOpenConns(1)
	} else {
		if cfg.MaxOpenConns > 0 {
			db.SetMaxOpenConns(cfg.MaxOpenConns)
		}
		if cfg.MaxIdleConns > 0 {
			db.SetMaxIdleConns(cfg.MaxIdleConns)
		}
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", cfg.Driver, err)
	}
	return db, nil
}
