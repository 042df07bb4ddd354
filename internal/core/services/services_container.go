package services

import (
	"github.com/quantilytix/qbeta-backend/internal/core/accounting"
	portsrepo "github.com/quantilytix/qbeta-backend/internal/core/ports/repositories"
	portssvc "github.com/quantilytix/qbeta-backend/internal/core/ports/services"
	"github.com/quantilytix/qbeta-backend/internal/utils/clock"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, clk clock.Clock) *portssvc.ServiceContainer {
	rule := accounting.SingleEntryRule{}
	classifier := accounting.NewClassifier()

	return &portssvc.ServiceContainer{
		Account:      NewAccountService(repos.AccountRepo, repos.TransactionRepo, rule, clk),
		Transaction:  NewTransactionService(repos.TransactionRepo, repos.AccountRepo, clk),
		Asset:        NewAssetService(repos.AssetRepo, repos.AccountRepo, clk),
		Depreciation: NewDepreciationService(repos.AssetRepo, repos.AccountRepo, clk),
		Reporting:    NewReportingService(repos, rule, classifier),
	}
}
