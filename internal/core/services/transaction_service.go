package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fincontrol/fincontrol_app/internal/apperrors"
	"github.com/fincontrol/fincontrol_app/internal/core/domain"
	portsrepo "github.com/fincontrol/fincontrol_app/internal/core/ports/repositories"
	portssvc "github.com/fincontrol/fincontrol_app/internal/core/ports/services"
	"github.com/fincontrol/fincontrol_app/internal/core/schedule"
	"github.com/fincontrol/fincontrol_app/internal/dto"
	"github.com/google/uuid"
)

// transactionServiceImpl implements the TransactionSvcFacade interface
type transactionServiceImpl struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	purchaseService portssvc.PurchaseSvcFacade
	location        *time.Location
}

// TransactionOption is a functional option for configuring the transaction service
type TransactionOption func(*transactionServiceImpl)

// WithPurchaseServiceImpl adds the purchase service the cascade delegates to
func WithPurchaseServiceImpl(svc portssvc.PurchaseSvcFacade) TransactionOption {
	return func(s *transactionServiceImpl) {
		s.purchaseService = svc
	}
}

// WithTransactionLocation sets the zone local calendar dates are parsed in
func WithTransactionLocation(loc *time.Location) TransactionOption {
	return func(s *transactionServiceImpl) {
		s.location = loc
	}
}

// NewTransactionServiceImpl creates a new transaction service with the provided options
func NewTransactionServiceImpl(repo portsrepo.TransactionRepositoryFacade, options ...TransactionOption) portssvc.TransactionSvcFacade {
	svc := &transactionServiceImpl{
		transactionRepo: repo,
		location:        time.Local,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure transactionServiceImpl implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionServiceImpl)(nil)

func (s *transactionServiceImpl) parseDate(value string) (time.Time, error) {
	date, err := schedule.ParseLocalDate(value, s.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return schedule.ToPersistInstant(date), nil
}

func (s *transactionServiceImpl) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if !req.Amount.IsPositive() {
		err := fmt.Errorf("%w: amount must be positive, got %s", apperrors.ErrValidation, req.Amount.String())
		s.LogError(ctx, err, "Transaction failed validation")
		return nil, err
	}
	date, err := s.parseDate(req.Date)
	if err != nil {
		s.LogError(ctx, err, "Invalid transaction date", slog.String("date", req.Date))
		return nil, err
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Kind:          req.Kind,
		Description:   req.Description,
		Amount:        req.Amount,
		Date:          date,
		CategoryID:    req.CategoryID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created successfully",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("kind", string(txn.Kind)))
	return &txn, nil
}

func (s *transactionServiceImpl) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction by ID", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

func (s *transactionServiceImpl) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	var (
		txns []domain.Transaction
		err  error
	)
	if params.Year != 0 && params.Month != 0 {
		first, last := schedule.MonthBounds(params.Year, time.Month(params.Month), s.location)
		// Persisted instants are noon UTC; widen the window by a day on each
		// side so zone offsets cannot clip the month edges, then filter by
		// local calendar day.
		candidates, listErr := s.transactionRepo.ListTransactionsBetween(ctx, first.AddDate(0, 0, -1), last.AddDate(0, 0, 2))
		if listErr != nil {
			err = listErr
		} else {
			for _, t := range candidates {
				d := schedule.LocalDay(t.Date, s.location)
				if d.Year() == params.Year && d.Month() == time.Month(params.Month) {
					txns = append(txns, t)
				}
			}
		}
	} else {
		txns, err = s.transactionRepo.ListTransactions(ctx)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, err
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

func (s *transactionServiceImpl) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.GetTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.IsParcel() {
		err := fmt.Errorf("%w: parcels are immutable, delete the purchase instead", apperrors.ErrValidation)
		s.LogError(ctx, err, "Refusing to update parcel", slog.String("transaction_id", transactionID))
		return nil, err
	}

	updated := false
	if req.Description != nil {
		txn.Description = *req.Description
		updated = true
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			err := fmt.Errorf("%w: amount must be positive, got %s", apperrors.ErrValidation, req.Amount.String())
			s.LogError(ctx, err, "Transaction update failed validation", slog.String("transaction_id", transactionID))
			return nil, err
		}
		txn.Amount = *req.Amount
		updated = true
	}
	if req.CategoryID != nil {
		txn.CategoryID = *req.CategoryID
		updated = true
	}
	if req.Date != nil {
		date, err := s.parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		txn.Date = date
		updated = true
	}
	if !updated {
		s.LogDebug(ctx, "No fields provided for transaction update", slog.String("transaction_id", transactionID))
		return txn, nil
	}

	txn.LastUpdatedAt = time.Now()
	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated successfully", slog.String("transaction_id", transactionID))
	return txn, nil
}

// DeleteTransaction removes a variable transaction. When the target is an
// installment parcel the whole purchase goes with it: partial installment
// deletion is unsupported, so the call cascades through the purchase
// service, the single deletion entry point for the aggregate.
func (s *transactionServiceImpl) DeleteTransaction(ctx context.Context, transactionID string) error {
	txn, err := s.GetTransactionByID(ctx, transactionID)
	if err != nil {
		return err
	}

	if txn.IsParcel() {
		if s.purchaseService == nil {
			err := fmt.Errorf("%w: no purchase service configured for parcel cascade", apperrors.ErrValidation)
			s.LogError(ctx, err, "Cannot cascade parcel deletion", slog.String("transaction_id", transactionID))
			return err
		}
		s.LogInfo(ctx, "Parcel deletion cascades to its purchase",
			slog.String("transaction_id", transactionID),
			slog.String("purchase_id", txn.PurchaseID))
		return s.purchaseService.DeletePurchase(ctx, txn.PurchaseID)
	}

	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return err
	}

	s.LogInfo(ctx, "Transaction deleted successfully", slog.String("transaction_id", transactionID))
	return nil
}
