package repositories

import (
	"testing"
	"time"

	"payflow/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	selectWalletForUpdate = `SELECT \* FROM "wallets" WHERE user_id = \$1 ORDER BY "wallets"\."id" LIMIT \$2 FOR UPDATE`
	updateWallet          = `UPDATE "wallets" SET .+ WHERE "id" = \$5`
)

// newMockDB opens a gorm handle over a sqlmock connection. The default
// per-write transaction is disabled because MoveBalance always runs
// inside a caller-owned transaction in production.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func walletRows(w models.Wallet) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "balance_cents", "created_at", "updated_at"}).
		AddRow(w.ID, w.UserID, w.BalanceCents, time.Time{}, time.Time{})
}

func TestMoveBalance_LocksAscendingAndConservesTotal(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWalletRepository(db)

	// Payer has the higher user id, so the payee row must be locked
	// first. sqlmock enforces expectation order, which pins the
	// deterministic lock ordering.
	payerWallet := models.Wallet{ID: 1, UserID: 7, BalanceCents: 10000}
	payeeWallet := models.Wallet{ID: 2, UserID: 3, BalanceCents: 500}
	amount := models.NewMoneyFromCents(2500)

	mock.ExpectQuery(selectWalletForUpdate).
		WithArgs(int64(3), 1).
		WillReturnRows(walletRows(payeeWallet))
	mock.ExpectQuery(selectWalletForUpdate).
		WithArgs(int64(7), 1).
		WillReturnRows(walletRows(payerWallet))

	// Debit and credit are the same amount, so the pair's total stays
	// at 10500 cents.
	mock.ExpectExec(updateWallet).
		WithArgs(int64(7), int64(7500), sqlmock.AnyArg(), sqlmock.AnyArg(), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(updateWallet).
		WithArgs(int64(3), int64(3000), sqlmock.AnyArg(), sqlmock.AnyArg(), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	moved, err := repo.MoveBalance(db, 7, 3, amount)

	require.NoError(t, err)
	assert.True(t, moved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMoveBalance_InsufficientUnderLockWritesNothing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWalletRepository(db)

	payerWallet := models.Wallet{ID: 1, UserID: 3, BalanceCents: 2000}
	payeeWallet := models.Wallet{ID: 2, UserID: 7, BalanceCents: 500}

	mock.ExpectQuery(selectWalletForUpdate).
		WithArgs(int64(3), 1).
		WillReturnRows(walletRows(payerWallet))
	mock.ExpectQuery(selectWalletForUpdate).
		WithArgs(int64(7), 1).
		WillReturnRows(walletRows(payeeWallet))

	// The locked balance cannot go negative, so the move is refused
	// before any UPDATE is issued.
	moved, err := repo.MoveBalance(db, 3, 7, models.NewMoneyFromCents(2001))

	require.NoError(t, err)
	assert.False(t, moved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMoveBalance_MissingWalletIsAnError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWalletRepository(db)

	payerWallet := models.Wallet{ID: 1, UserID: 3, BalanceCents: 10000}

	mock.ExpectQuery(selectWalletForUpdate).
		WithArgs(int64(3), 1).
		WillReturnRows(walletRows(payerWallet))
	mock.ExpectQuery(selectWalletForUpdate).
		WithArgs(int64(7), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "balance_cents", "created_at", "updated_at"}))

	moved, err := repo.MoveBalance(db, 3, 7, models.NewMoneyFromCents(100))

	assert.False(t, moved)
	assert.ErrorIs(t, err, ErrWalletNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
