package accounting

import (
	"strings"

	"github.com/quantilytix/qbeta-backend/internal/core/domain"
)

// CashFlowSection identifies the statement section a cash movement belongs to.
type CashFlowSection string

const (
	SectionOperating CashFlowSection = "operating"
	SectionInvesting CashFlowSection = "investing"
	SectionFinancing CashFlowSection = "financing"
)

// Classifier assigns accounts to balance-sheet sections and transactions to
// cash-flow sections. An explicit domain.AccountClass tag always wins; when
// absent, classification falls back to case-insensitive substring matching
// against the seeded keyword sets. The keyword heuristic is brittle (an
// account named outside the keyword sets is simply not picked up) and is
// retained for compatibility with the data it was built against.
type Classifier struct {
	CurrentAssetKeywords        []string
	CurrentLiabilityKeywords    []string
	NonCurrentLiabilityKeywords []string
	InvestingKeywords           []string
	FinancingKeywords           []string
}

// NewClassifier returns a Classifier seeded with the default keyword sets.
func NewClassifier() *Classifier {
	return &Classifier{
		CurrentAssetKeywords:        []string{"bank", "cash", "receivable"},
		CurrentLiabilityKeywords:    []string{"payable", "current liability", "credit facility"},
		NonCurrentLiabilityKeywords: []string{"loan", "long-term"},
		InvestingKeywords:           []string{"equipment", "property", "asset", "vehicle"},
		FinancingKeywords:           []string{"loan", "members loan", "shareholders loan", "credit facility"},
	}
}

func matchesAny(s string, keywords []string) bool {
	lower := strings.ToLower(s)
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// IsCurrentAsset reports whether an Asset-type account belongs in the
// current assets section.
func (c *Classifier) IsCurrentAsset(account domain.Account) bool {
	if account.Type != domain.AccountTypeAsset {
		return false
	}
	if account.Class != domain.ClassUnspecified {
		return account.Class == domain.ClassCurrentAsset
	}
	return matchesAny(account.Name, c.CurrentAssetKeywords)
}

// IsCurrentLiability reports whether a Liability-type account belongs in the
// current liabilities section.
func (c *Classifier) IsCurrentLiability(account domain.Account) bool {
	if account.Type != domain.AccountTypeLiability {
		return false
	}
	if account.Class != domain.ClassUnspecified {
		return account.Class == domain.ClassCurrentLiability
	}
	return matchesAny(account.Name, c.CurrentLiabilityKeywords)
}

// IsNonCurrentLiability reports whether a Liability-type account belongs in
// the non-current liabilities section.
func (c *Classifier) IsNonCurrentLiability(account domain.Account) bool {
	if account.Type != domain.AccountTypeLiability {
		return false
	}
	if account.Class != domain.ClassUnspecified {
		return account.Class == domain.ClassNonCurrentLiability
	}
	return matchesAny(account.Name, c.NonCurrentLiabilityKeywords)
}

// ClassifyCashFlow assigns a transaction to a cash-flow section by substring
// match on its category. Investing keywords are checked before financing;
// anything unmatched defaults to operating.
func (c *Classifier) ClassifyCashFlow(txn domain.Transaction) CashFlowSection {
	if matchesAny(txn.Category, c.InvestingKeywords) {
		return SectionInvesting
	}
	if matchesAny(txn.Category, c.FinancingKeywords) {
		return SectionFinancing
	}
	return SectionOperating
}
