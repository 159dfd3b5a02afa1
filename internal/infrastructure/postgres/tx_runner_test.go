package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTx solo implementa lo que usan Migrate y TxRunner; el resto del pgx.Tx embebido queda nil.
type fakeTx struct {
	pgx.Tx
	execs      []string
	execErr    error
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sql)
	return pgconn.CommandTag{}, f.execErr
}

func (f *fakeTx) Commit(context.Context) error {
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(context.Context) error {
	if !f.committed {
		f.rolledBack = true
	}
	return nil
}

type fakeBeginner struct {
	tx  *fakeTx
	err error
}

func (b fakeBeginner) Begin(context.Context) (pgx.Tx, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.tx, nil
}

func TestMigrateTx_Commit(t *testing.T) {
	tx := &fakeTx{}
	require.NoError(t, MigrateTx(context.Background(), fakeBeginner{tx: tx}))

	require.NotEmpty(t, tx.execs)
	assert.Contains(t, tx.execs[0], "CREATE TABLE IF NOT EXISTS categories")
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
}

func TestMigrateTx_ErrorHaceRollback(t *testing.T) {
	tx := &fakeTx{execErr: errors.New("syntax error")}
	err := MigrateTx(context.Background(), fakeBeginner{tx: tx})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "001_init.sql")
	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack)
}

func TestTxRunner_BeginFalla(t *testing.T) {
	err := NewTxRunner(fakeBeginner{err: errors.New("sin conexión")}).Run(context.Background(), func(Querier) error {
		t.Fatal("no debe ejecutarse")
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "begin transaction")
}
