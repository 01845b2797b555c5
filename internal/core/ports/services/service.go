package services

// ServiceContainer bundles every service facade for route registration.
type ServiceContainer struct {
	Category    CategorySvcFacade
	FixedItem   FixedItemSvcFacade
	Variation   VariationSvcFacade
	Transaction TransactionSvcFacade
	Purchase    PurchaseSvcFacade
	Reporting   ReportingSvcFacade
}
