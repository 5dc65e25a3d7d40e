package services

import (
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// parser and publisher may be nil: auto add is then disabled and no change events are sent.
func NewServiceContainer(repos portsrepo.RepositoryProvider, parser portssvc.SuggestionParser, publisher portssvc.ChangePublisher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	txnOptions := []TransactionServiceOption{WithLookupReader(repos.LookupRepo)}
	if parser != nil {
		txnOptions = append(txnOptions, WithSuggestionParser(parser))
	}
	var reconOptions []ReconciliationServiceOption
	if publisher != nil {
		txnOptions = append(txnOptions, WithTransactionPublisher(publisher))
		reconOptions = append(reconOptions, WithReconciliationPublisher(publisher))
	}

	container.Transaction = NewTransactionService(repos.TransactionRepo, txnOptions...)
	container.Reconciliation = NewReconciliationService(repos.TransactionRepo, reconOptions...)
	container.Dashboard = NewDashboardService(repos.TransactionRepo, repos.LookupRepo)
	container.Lookup = NewLookupService(repos.LookupRepo)
	container.Currency = NewCurrencyService()

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.ReconciliationSvc    = (*ReconciliationService)(nil)
	_ portssvc.DashboardSvc         = (*DashboardService)(nil)
)
