// Package ledger posts deposits and withdrawals against a logged-in
// individual's accounts.
package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/repository"
	"github.com/amirasaad/banking/pkg/session"
)

// DefaultHistoryLimit caps History when the caller passes no limit.
const DefaultHistoryLimit = 20

type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

func New(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, logger: logger}
}

// Deposit debits the named account.
func (s *Service) Deposit(
	ctx context.Context,
	sess *session.Context,
	kind string,
	amount int64,
) (*account.Transaction, error) {
	return s.post(ctx, sess, kind, amount, account.Debit)
}

// Withdraw credits the named account.
func (s *Service) Withdraw(
	ctx context.Context,
	sess *session.Context,
	kind string,
	amount int64,
) (*account.Transaction, error) {
	return s.post(ctx, sess, kind, amount, account.Credit)
}

// post applies the entry to a copy of the account, persists the new balance
// and the transaction in one unit of work and only then updates the session.
// Any failure leaves both the session and the database unchanged.
func (s *Service) post(
	ctx context.Context,
	sess *session.Context,
	kind string,
	amount int64,
	txKind account.TransactionKind,
) (tx *account.Transaction, err error) {
	log := s.logger.With(
		"user", sess.User().Username,
		"account", kind,
		"amount", amount,
		"type", txKind,
	)
	log.Debug("Posting transaction")

	acc, err := sess.Account(kind)
	if err != nil {
		log.Warn("Transaction rejected", "error", err)
		return nil, err
	}

	staged := acc.Clone()
	if txKind == account.Debit {
		tx, err = staged.Debit(amount)
	} else {
		tx, err = staged.Credit(amount)
	}
	if err != nil {
		log.Warn("Transaction rejected", "error", err, "balance", acc.Balance())
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accRepo, err := uow.AccountRepository()
		if err != nil {
			return fmt.Errorf("failed to get account repository: %w", err)
		}
		if err := accRepo.Update(ctx, staged); err != nil {
			return fmt.Errorf("update balance: %w", err)
		}
		txRepo, err := uow.TransactionRepository()
		if err != nil {
			return fmt.Errorf("failed to get transaction repository: %w", err)
		}
		if err := txRepo.Create(ctx, tx); err != nil {
			return fmt.Errorf("record transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error("Transaction failed", "error", err)
		return nil, err
	}

	if err := sess.Refresh(staged); err != nil {
		return nil, err
	}
	log.Info("Transaction posted", "transaction_id", tx.ID, "balance", staged.Balance())
	return tx, nil
}

// History returns the named account's transactions, newest first. A
// non-positive limit means DefaultHistoryLimit.
func (s *Service) History(
	ctx context.Context,
	sess *session.Context,
	kind string,
	limit int,
) ([]*account.Transaction, error) {
	acc, err := sess.Account(kind)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	repo, err := s.uow.TransactionRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction repository: %w", err)
	}
	txs, err := repo.ListByAccount(ctx, acc.ID, limit)
	if err != nil {
		s.logger.Error("History failed", "account", acc.ID, "error", err)
		return nil, err
	}
	return txs, nil
}
