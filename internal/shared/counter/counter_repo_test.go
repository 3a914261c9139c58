package counter_test

import (
	"context"
	"regexp"
	"testing"

	"go-crm/internal/shared/counter"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "SUB-000007", counter.Format("SUB", 6, 7))
	assert.Equal(t, "SUB-1234567", counter.Format("SUB", 6, 1234567))
}

func TestRepository_GetNextValue(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO counters")).
		WithArgs("subscription").
		WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(int64(42)))

	got, err := counter.NewRepository(gdb).GetNextValue(context.Background(), "subscription")
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetNextValueOnTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO counters")).
		WithArgs("quotation").
		WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(int64(3)))
	mock.ExpectRollback()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	got, err := counter.NewRepository(gdb).WithTx(tx).GetNextValue(context.Background(), "quotation")
	require.NoError(t, err)
	assert.Equal(t, int64(3), got)

	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}
