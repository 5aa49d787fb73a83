package repository

import (
	"context"
	"fmt"
	"strings"

	"quiz-coach/internal/database"
)

// insertSQL builds an INSERT with "?" placeholders, prefixed with an id column when withID is set.
func insertSQL(table string, columns []string, withID bool) string {
	if withID {
		columns = append([]string{"id"}, columns...)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(columns, ", "), placeholders)
}

// insertReturningID inserts a row and returns its id. Oracle draws the id from
// the table's sequence; the other drivers report the auto-increment value.
func insertReturningID(ctx context.Context, exec DBTX, driver, table string, columns []string, args ...interface{}) (int64, error) {
	if driver == database.DriverOracle {
		var id int64
		if err := exec.GetContext(ctx, &id, fmt.Sprintf("SELECT %s_seq.NEXTVAL FROM DUAL", table)); err != nil {
			return 0, fmt.Errorf("failed to draw %s id: %w", table, err)
		}
		query := exec.Rebind(insertSQL(table, columns, true))
		if _, err := exec.ExecContext(ctx, query, append([]interface{}{id}, args...)...); err != nil {
			return 0, err
		}
		return id, nil
	}

	res, err := exec.ExecContext(ctx, exec.Rebind(insertSQL(table, columns, false)), args...)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read %s id: %w", table, err)
	}
	return id, nil
}
