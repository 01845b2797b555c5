package services

import (
	"time"

	portsrepo "github.com/fincontrol/fincontrol_app/internal/core/ports/repositories"
	portssvc "github.com/fincontrol/fincontrol_app/internal/core/ports/services"
)

// NewServiceContainer wires every service over the given repositories.
// loc is the zone local calendar dates are interpreted in; nil means
// time.Local.
func NewServiceContainer(repos portsrepo.RepositoryProvider, loc *time.Location) *portssvc.ServiceContainer {
	if loc == nil {
		loc = time.Local
	}

	purchaseService := NewPurchaseServiceImpl(repos.PurchaseRepo, WithPurchaseLocation(loc))

	return &portssvc.ServiceContainer{
		Category:  NewCategoryServiceImpl(repos.CategoryRepo),
		FixedItem: NewFixedItemServiceImpl(repos.FixedItemRepo, WithFixedItemLocation(loc)),
		Variation: NewVariationServiceImpl(repos.VariationRepo, repos.FixedItemRepo),
		Transaction: NewTransactionServiceImpl(repos.TransactionRepo,
			WithPurchaseServiceImpl(purchaseService),
			WithTransactionLocation(loc)),
		Purchase:  purchaseService,
		Reporting: NewReportingServiceImpl(repos, WithReportingLocation(loc)),
	}
}
