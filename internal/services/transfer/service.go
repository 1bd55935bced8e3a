// Package transfer implements the funds transfer engine. It validates
// a transfer request, atomically debits one wallet and credits the
// other, and records an auditable transaction status.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"log"

	domainerrors "payflow/internal/errors"
	"payflow/internal/models"
	"payflow/internal/repositories"
	"payflow/internal/services/authorization"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Currency is the single currency of the ledger.
const Currency = "BRL"

// errMoveFailed signals that the ledger mutation reported a business
// failure; the outer transaction rolls back on it.
var errMoveFailed = errors.New("ledger mutation rejected")

// service implements the transfer Service interface.
type service struct {
	db           DB
	users        repositories.UserRepository
	wallets      repositories.WalletRepository
	transactions repositories.TransactionRepository
	authorizer   authorization.Service
	notifier     Notifier
}

// NewService creates a new transfer service instance.
func NewService(
	db DB,
	users repositories.UserRepository,
	wallets repositories.WalletRepository,
	transactions repositories.TransactionRepository,
	authorizer authorization.Service,
	notifier Notifier,
) Service {
	if db == nil {
		panic("db is required")
	}
	if users == nil {
		panic("user repository is required")
	}
	if wallets == nil {
		panic("wallet repository is required")
	}
	if transactions == nil {
		panic("transaction repository is required")
	}
	if authorizer == nil {
		panic("authorization service is required")
	}

	return &service{
		db:           db,
		users:        users,
		wallets:      wallets,
		transactions: transactions,
		authorizer:   authorizer,
		notifier:     notifier,
	}
}

// Transfer moves funds from payer to payee. Preconditions are checked
// in a fixed order and each violation returns its own DomainError with
// no state mutated. The advisory balance check here is re-validated
// under lock inside MoveBalance, which is the authoritative check.
func (s *service) Transfer(ctx context.Context, payerID, payeeID uint, amount models.Money) (*models.Transaction, error) {
	if !amount.IsPositive() {
		return nil, domainerrors.ErrInvalidAmount
	}

	payer, err := s.users.GetByID(payerID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve payer: %w", err)
	}
	if _, err := s.users.GetByID(payeeID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve payee: %w", err)
	}

	if payerID == payeeID {
		return nil, domainerrors.ErrSelfTransfer
	}

	payerWallet, err := s.wallets.GetByUserID(payerID)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return nil, domainerrors.ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to resolve payer wallet: %w", err)
	}
	if _, err := s.wallets.GetByUserID(payeeID); err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return nil, domainerrors.ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to resolve payee wallet: %w", err)
	}

	if !payer.CanSendMoney() {
		return nil, domainerrors.ErrMerchantPayer
	}

	authorized, err := s.authorizer.CheckAuthorization(ctx)
	if err != nil {
		log.Printf("authorization check failed: %v", err)
		return nil, domainerrors.ErrAuthorizationUnavailable
	}
	if !authorized {
		return nil, domainerrors.ErrNotAuthorized
	}

	if !payerWallet.HasSufficientBalance(amount) {
		return nil, s.insufficientBalance(payerWallet)
	}

	txn := &models.Transaction{
		Reference:   uuid.NewString(),
		PayerID:     payerID,
		PayeeID:     payeeID,
		AmountCents: amount.Cents(),
		Status:      models.TransactionStatusPending,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.transactions.Create(tx, txn); err != nil {
			return err
		}

		moved, err := s.wallets.MoveBalance(tx, payerID, payeeID, amount)
		if err != nil {
			return err
		}
		if !moved {
			return errMoveFailed
		}

		return s.transactions.UpdateStatus(tx, txn.ID, models.TransactionStatusCompleted)
	})
	if err != nil {
		if errors.Is(err, errMoveFailed) {
			// The rollback erased the pending row, so the failed
			// attempt is recorded durably in its own transaction to
			// keep an audit trail of the rejection.
			s.recordFailedAttempt(payerID, payeeID, amount)

			// Both wallets were resolved before the transaction opened,
			// so a business rejection under lock can only mean the
			// balance lost a race.
			if current, werr := s.wallets.GetByUserID(payerID); werr == nil {
				return nil, s.insufficientBalance(current)
			}
			return nil, domainerrors.ErrInsufficientBalance
		}
		return nil, domainerrors.ErrTransactionFailed
	}
	txn.Status = models.TransactionStatusCompleted

	// The transfer is committed; notification failures are logged and
	// never unwind it.
	if s.notifier != nil {
		message := fmt.Sprintf("You received %s %s from %s.",
			amount.Format(2, ".", ","), Currency, payer.Name)
		if err := s.notifier.Notify(ctx, payeeID, message); err != nil {
			log.Printf("failed to notify payee %d: %v", payeeID, err)
		}
	}

	return txn, nil
}

func (s *service) insufficientBalance(wallet *models.Wallet) error {
	return domainerrors.ErrInsufficientBalance.WithMessage(fmt.Sprintf(
		"insufficient balance. Your balance is: %s %s",
		wallet.Balance().Format(2, ".", ","), Currency))
}

// recordFailedAttempt writes a failed transaction row after the outer
// unit of work has rolled back.
func (s *service) recordFailedAttempt(payerID, payeeID uint, amount models.Money) {
	failed := &models.Transaction{
		Reference:   uuid.NewString(),
		PayerID:     payerID,
		PayeeID:     payeeID,
		AmountCents: amount.Cents(),
		Status:      models.TransactionStatusFailed,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.transactions.Create(tx, failed)
	})
	if err != nil {
		log.Printf("failed to record failed transfer attempt: %v", err)
	}
}
