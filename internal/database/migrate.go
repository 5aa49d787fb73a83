package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"

	"quiz-coach/internal/logger"
)

//go:embed migrations
var migrationFS embed.FS

// Direction selects which half of the migration files is applied.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// oracleObjectExists is raised when a table or sequence name is already in use.
const oracleObjectExists = "ORA-00955"

// RunMigrations applies the embedded migrations for driver to db. mysql and
// sqlite are versioned through golang-migrate; oracle runs every file of the
// direction in order and skips objects that already exist. db is closed by
// the versioned runners.
func RunMigrations(db *sql.DB, driver string, dir Direction) error {
	switch driver {
	case DriverMySQL, DriverSQLite:
		return runVersioned(db, driver, dir)
	case DriverOracle:
		return runPlain(db, dir)
	default:
		return fmt.Errorf("no migrations for driver %q", driver)
	}
}

func runVersioned(db *sql.DB, driver string, dir Direction) error {
	src, err := iofs.New(migrationFS, path.Join("migrations", driver))
	if err != nil {
		return fmt.Errorf("could not load migrations: %w", err)
	}

	var target migratedb.Driver
	switch driver {
	case DriverMySQL:
		target, err = migratemysql.WithInstance(db, &migratemysql.Config{})
	case DriverSQLite:
		target, err = migratesqlite.WithInstance(db, &migratesqlite.Config{})
	}
	if err != nil {
		return fmt.Errorf("could not create %s migration driver: %w", driver, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, driver, target)
	if err != nil {
		return fmt.Errorf("could not create migrator: %w", err)
	}
	defer m.Close()

	if dir == Down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration %s failed: %w", dir, err)
	}

	version, dirty, verr := m.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return fmt.Errorf("could not read migration version: %w", verr)
	}
	logger.Get().Info("Migrations completed",
		zap.String("driver", driver),
		zap.String("direction", string(dir)),
		zap.Uint("version", version),
		zap.Bool("dirty", dirty))
	return nil
}

func runPlain(db *sql.DB, dir Direction) error {
	root := path.Join("migrations", DriverOracle)
	entries, err := fs.ReadDir(migrationFS, root)
	if err != nil {
		return fmt.Errorf("could not read migrations directory: %w", err)
	}

	suffix := "." + string(dir) + ".sql"
	var files []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), suffix) {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	if dir == Down {
		sort.Sort(sort.Reverse(sort.StringSlice(files)))
	}

	l := logger.Get()
	for _, name := range files {
		content, err := fs.ReadFile(migrationFS, path.Join(root, name))
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", name, err)
		}
		stmt := strings.TrimSuffix(strings.TrimSpace(string(content)), ";")
		if _, err := db.Exec(stmt); err != nil {
			if dir == Up && strings.Contains(err.Error(), oracleObjectExists) {
				l.Info("Skipping existing object", zap.String("file", name))
				continue
			}
			return fmt.Errorf("could not execute migration %s: %w", name, err)
		}
		l.Info("Executed migration", zap.String("file", name))
	}
	return nil
}
