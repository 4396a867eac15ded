package ledger

import (
	"context"

	"github.com/Yashuu213/MoneyViewer/internal/models"
)

// Adapter is the persistence strategy behind a Store. Two implementations
// exist: a self-contained local slot store (ledger/local) and a client for
// the authenticated MoneyViewer API (ledger/remote). The strategy is chosen
// at configuration time, never per call.
type Adapter interface {
	LoadTransactions(ctx context.Context) ([]models.Transaction, error)
	LoadDebts(ctx context.Context) ([]models.Debt, error)

	// CreateTransaction persists the record. An authoritative adapter updates
	// it in place with the fields the backing store assigned.
	CreateTransaction(ctx context.Context, tx *models.Transaction) error
	DeleteTransaction(ctx context.Context, id string) error

	CreateDebt(ctx context.Context, debt *models.Debt) error
	DeleteDebt(ctx context.Context, id string) error

	// Authoritative reports whether the backing store assigns or rewrites
	// record fields. A Store re-lists after each create when true instead of
	// trusting its optimistic local copy.
	Authoritative() bool
}
