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

// purchaseServiceImpl implements the PurchaseSvcFacade interface
type purchaseServiceImpl struct {
	BaseService
	purchaseRepo portsrepo.PurchaseRepositoryFacade
	location     *time.Location
}

// PurchaseOption is a functional option for configuring the purchase service
type PurchaseOption func(*purchaseServiceImpl)

// WithPurchaseLocation sets the zone local calendar dates are parsed in
func WithPurchaseLocation(loc *time.Location) PurchaseOption {
	return func(s *purchaseServiceImpl) {
		s.location = loc
	}
}

// NewPurchaseServiceImpl creates a new purchase service with the provided options
func NewPurchaseServiceImpl(repo portsrepo.PurchaseRepositoryFacade, options ...PurchaseOption) portssvc.PurchaseSvcFacade {
	svc := &purchaseServiceImpl{
		purchaseRepo: repo,
		location:     time.Local,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure purchaseServiceImpl implements the PurchaseSvcFacade interface
var _ portssvc.PurchaseSvcFacade = (*purchaseServiceImpl)(nil)

// CreatePurchase validates the purchase, derives its parcels through the
// schedule engine, and persists purchase and parcels atomically.
func (s *purchaseServiceImpl) CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest) (*domain.InstallmentPurchase, []domain.Transaction, error) {
	anchor, err := schedule.ParseLocalDate(req.AnchorDate, s.location)
	if err != nil {
		wrapped := fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		s.LogError(ctx, wrapped, "Invalid anchor date for purchase", slog.String("anchor_date", req.AnchorDate))
		return nil, nil, wrapped
	}

	now := time.Now()
	purchase := domain.InstallmentPurchase{
		PurchaseID:  uuid.NewString(),
		Description: req.Description,
		TotalAmount: req.TotalAmount,
		AnchorDate:  schedule.ToPersistInstant(anchor),
		CategoryID:  req.CategoryID,
		Count:       req.Count,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	parcels, err := schedule.GenerateParcels(purchase, s.location)
	if err != nil {
		s.LogError(ctx, err, "Purchase failed validation", slog.String("purchase_id", purchase.PurchaseID))
		return nil, nil, err
	}
	for i := range parcels {
		parcels[i].TransactionID = uuid.NewString()
		parcels[i].AuditFields = domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		}
	}

	if err := s.purchaseRepo.SavePurchase(ctx, purchase, parcels); err != nil {
		s.LogError(ctx, err, "Failed to save purchase", slog.String("purchase_id", purchase.PurchaseID))
		return nil, nil, err
	}

	s.LogInfo(ctx, "Purchase created successfully",
		slog.String("purchase_id", purchase.PurchaseID),
		slog.Int("count", purchase.Count),
		slog.String("total_amount", purchase.TotalAmount.String()))
	return &purchase, parcels, nil
}

func (s *purchaseServiceImpl) GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.InstallmentPurchase, []domain.Transaction, error) {
	purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find purchase by ID", slog.String("purchase_id", purchaseID))
		}
		return nil, nil, err
	}

	parcels, err := s.purchaseRepo.ListParcels(ctx, purchaseID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list parcels", slog.String("purchase_id", purchaseID))
		return nil, nil, err
	}
	return purchase, parcels, nil
}

func (s *purchaseServiceImpl) ListPurchases(ctx context.Context) ([]domain.InstallmentPurchase, error) {
	purchases, err := s.purchaseRepo.ListPurchases(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list purchases")
		return nil, err
	}
	if purchases == nil {
		return []domain.InstallmentPurchase{}, nil
	}
	return purchases, nil
}

// DeletePurchase removes the purchase and all of its parcels in one database
// transaction. This is the only deletion entry point for the aggregate.
func (s *purchaseServiceImpl) DeletePurchase(ctx context.Context, purchaseID string) error {
	if _, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find purchase", slog.String("purchase_id", purchaseID))
		}
		return err
	}

	if err := s.purchaseRepo.DeletePurchase(ctx, purchaseID); err != nil {
		s.LogError(ctx, err, "Failed to delete purchase", slog.String("purchase_id", purchaseID))
		return err
	}

	s.LogInfo(ctx, "Purchase and parcels deleted successfully", slog.String("purchase_id", purchaseID))
	return nil
}
