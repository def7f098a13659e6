package repository

import (
	"context"
	"errors"
	"strings"

	"fitlog/internal/observability"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation    = "23505"
	mysqlDuplicateEntry  = 1062
	sqliteUniqueFragment = "unique constraint failed"
)

// isUniqueConstraintError checks if a DB error is a unique constraint violation on any
// supported driver, whether or not GORM translated it.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, sqliteUniqueFragment) ||
		strings.Contains(msg, "duplicate key")
}

// startSpan opens a repository span tagged with the database system of db and returns a
// func that records latency and ends the span.
func startSpan(ctx context.Context, db *gorm.DB, method, table string) (context.Context, trace.Span, func()) {
	system := "unknown"
	if db != nil && db.Dialector != nil {
		system = db.Dialector.Name()
	}
	ctx, span := observability.GetTraceLayer().TraceRepositoryMethod(ctx, system, method, table)
	track := observability.TrackQuery(method, table)
	return ctx, span, func() {
		track()
		span.End()
	}
}
