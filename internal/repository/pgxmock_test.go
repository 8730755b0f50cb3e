package repository

import (
	"context"
	"database/sql"

	"job-board/internal/database"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

// mockDB adapts a pgxmock pool to the database.DB surface the repositories
// consume, so SQL expectations run against the real query text and args.
type mockDB struct {
	pool pgxmock.PgxPoolIface
}

func (m mockDB) Ping(ctx context.Context) error { return m.pool.Ping(ctx) }

func (m mockDB) Close() error {
	m.pool.Close()
	return nil
}

func (m mockDB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	tag, err := m.pool.Exec(ctx, query, args...)
	return tag.RowsAffected(), err
}

func (m mockDB) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	return m.pool.Query(ctx, query, args...)
}

func (m mockDB) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return m.pool.QueryRow(ctx, query, args...)
}

func (m mockDB) Begin(ctx context.Context) (database.Tx, error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return mockTx{tx: tx}, nil
}

func (m mockDB) SQLDB() *sql.DB { return nil }

type mockTx struct {
	tx pgx.Tx
}

func (t mockTx) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	tag, err := t.tx.Exec(ctx, query, args...)
	return tag.RowsAffected(), err
}

func (t mockTx) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	return t.tx.Query(ctx, query, args...)
}

func (t mockTx) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return t.tx.QueryRow(ctx, query, args...)
}

func (t mockTx) Commit(ctx context.Context) error   { return t.tx.Commit(ctx) }
func (t mockTx) Rollback(ctx context.Context) error { return t.tx.Rollback(ctx) }
