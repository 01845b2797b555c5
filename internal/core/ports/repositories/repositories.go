package repositories

// RepositoryProvider bundles every repository facade the service layer
// needs, so wiring code can pass one value around.
type RepositoryProvider struct {
	CategoryRepo    CategoryRepositoryFacade
	FixedItemRepo   FixedItemRepositoryFacade
	VariationRepo   VariationRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	PurchaseRepo    PurchaseRepositoryFacade
}
