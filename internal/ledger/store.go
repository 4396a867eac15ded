// Package ledger implements the record store of the MoneyViewer engine: it
// owns the in-memory transaction and debt collections for the current
// session and delegates durability to a configured Adapter.
package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/Yashuu213/MoneyViewer/internal/errors"
	"github.com/Yashuu213/MoneyViewer/internal/logger"
	"github.com/Yashuu213/MoneyViewer/internal/models"
	"github.com/Yashuu213/MoneyViewer/internal/uuid"
)

// TransactionInput carries the caller-supplied fields of a new transaction.
// ID and a missing Date are assigned by the store.
type TransactionInput struct {
	Amount      decimal.Decimal
	Description string
	Type        models.TransactionType
	Category    string
	Date        time.Time
}

// DebtInput carries the caller-supplied fields of a new debt entry.
type DebtInput struct {
	Name        string
	Amount      decimal.Decimal
	Type        models.DebtType
	Description string
	Date        time.Time
}

// Store holds the current user's records in memory and keeps them in step
// with the persistence adapter. The mutex only makes each snapshot
// replace/prepend/removal atomic; concurrent mutators are not serialized
// against each other, so two simultaneous adds both succeed independently.
type Store struct {
	adapter Adapter

	mu           sync.Mutex
	transactions []models.Transaction
	debts        []models.Debt
}

// NewStore creates a Store backed by the given adapter. The snapshot starts
// empty; call Reload to populate it.
func NewStore(adapter Adapter) *Store {
	return &Store{adapter: adapter}
}

// Reload replaces both collections with the adapter's current contents.
// On any load failure the previous snapshot is kept.
func (s *Store) Reload(ctx context.Context) error {
	transactions, err := s.adapter.LoadTransactions(ctx)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrPersistence, err)
	}
	debts, err := s.adapter.LoadDebts(ctx)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrPersistence, err)
	}

	s.mu.Lock()
	s.transactions = transactions
	s.debts = debts
	s.mu.Unlock()
	return nil
}

// Clear discards both collections without touching the adapter. Used on
// session teardown; no record survives a user switch.
func (s *Store) Clear() {
	s.mu.Lock()
	s.transactions = nil
	s.debts = nil
	s.mu.Unlock()
}

// Transactions returns a copy of the current snapshot, newest first.
func (s *Store) Transactions() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Debts returns a copy of the current snapshot, newest first.
func (s *Store) Debts() []models.Debt {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Debt, len(s.debts))
	copy(out, s.debts)
	return out
}

// AddTransaction validates the input, persists the record through the
// adapter and makes it visible in the snapshot. Against an authoritative
// adapter the whole collection is re-listed so server-assigned fields are
// reflected; otherwise the record is prepended directly.
func (s *Store) AddTransaction(ctx context.Context, in TransactionInput) (*models.Transaction, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	rec := &models.Transaction{
		Base:        models.Base{ID: uuid.New()},
		Amount:      in.Amount,
		Description: in.Description,
		Type:        in.Type,
		Category:    in.Category,
		Date:        in.Date,
	}
	if rec.Date.IsZero() {
		rec.Date = time.Now()
	}

	if err := s.adapter.CreateTransaction(ctx, rec); err != nil {
		logger.Get().Warnw("transaction create failed", "error", err)
		return nil, apperrors.Wrap(apperrors.ErrPersistence, err)
	}

	if s.adapter.Authoritative() {
		list, err := s.adapter.LoadTransactions(ctx)
		if err != nil {
			logger.Get().Warnw("transaction re-list failed", "error", err)
			return nil, apperrors.Wrap(apperrors.ErrPersistence, err)
		}
		s.mu.Lock()
		s.transactions = list
		s.mu.Unlock()
		return rec, nil
	}

	s.mu.Lock()
	s.transactions = append([]models.Transaction{*rec}, s.transactions...)
	s.mu.Unlock()
	return rec, nil
}

// DeleteTransaction removes the record with the given id. An id absent from
// the snapshot is a no-op and never reaches the adapter. The in-memory
// removal happens only after the adapter confirms.
func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	if !s.hasTransaction(id) {
		return nil
	}
	if err := s.adapter.DeleteTransaction(ctx, id); err != nil {
		logger.Get().Warnw("transaction delete failed", "id", id, "error", err)
		return apperrors.Wrap(apperrors.ErrPersistence, err)
	}

	s.mu.Lock()
	s.transactions = removeTransaction(s.transactions, id)
	s.mu.Unlock()
	return nil
}

// AddDebt validates the input and persists a new debt entry; behavior
// mirrors AddTransaction.
func (s *Store) AddDebt(ctx context.Context, in DebtInput) (*models.Debt, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	rec := &models.Debt{
		Base:        models.Base{ID: uuid.New()},
		Name:        in.Name,
		Amount:      in.Amount,
		Type:        in.Type,
		Description: in.Description,
		Date:        in.Date,
	}
	if rec.Date.IsZero() {
		rec.Date = time.Now()
	}

	if err := s.adapter.CreateDebt(ctx, rec); err != nil {
		logger.Get().Warnw("debt create failed", "error", err)
		return nil, apperrors.Wrap(apperrors.ErrPersistence, err)
	}

	if s.adapter.Authoritative() {
		list, err := s.adapter.LoadDebts(ctx)
		if err != nil {
			logger.Get().Warnw("debt re-list failed", "error", err)
			return nil, apperrors.Wrap(apperrors.ErrPersistence, err)
		}
		s.mu.Lock()
		s.debts = list
		s.mu.Unlock()
		return rec, nil
	}

	s.mu.Lock()
	s.debts = append([]models.Debt{*rec}, s.debts...)
	s.mu.Unlock()
	return rec, nil
}

// DeleteDebt removes the debt with the given id; absent ids are a no-op.
func (s *Store) DeleteDebt(ctx context.Context, id string) error {
	if !s.hasDebt(id) {
		return nil
	}
	if err := s.adapter.DeleteDebt(ctx, id); err != nil {
		logger.Get().Warnw("debt delete failed", "id", id, "error", err)
		return apperrors.Wrap(apperrors.ErrPersistence, err)
	}

	s.mu.Lock()
	s.debts = removeDebt(s.debts, id)
	s.mu.Unlock()
	return nil
}

func (in TransactionInput) validate() error {
	if in.Amount.IsNegative() {
		return apperrors.WithMessage(apperrors.ErrValidation, "amount must not be negative")
	}
	if in.Description == "" {
		return apperrors.WithMessage(apperrors.ErrValidation, "description is required")
	}
	switch in.Type {
	case models.TransactionTypeIncome, models.TransactionTypeExpense:
		return nil
	default:
		return apperrors.WithMessage(apperrors.ErrValidation, "type must be income or expense")
	}
}

func (in DebtInput) validate() error {
	if in.Name == "" {
		return apperrors.WithMessage(apperrors.ErrValidation, "name is required")
	}
	if in.Amount.IsNegative() {
		return apperrors.WithMessage(apperrors.ErrValidation, "amount must not be negative")
	}
	switch in.Type {
	case models.DebtTypeLent, models.DebtTypeBorrowed:
		return nil
	default:
		return apperrors.WithMessage(apperrors.ErrValidation, "type must be lent or borrowed")
	}
}

func (s *Store) hasTransaction(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, tx := range s.transactions {
		if tx.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) hasDebt(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.debts {
		if d.ID == id {
			return true
		}
	}
	return false
}

func removeTransaction(list []models.Transaction, id string) []models.Transaction {
	out := list[:0]
	for _, tx := range list {
		if tx.ID != id {
			out = append(out, tx)
		}
	}
	return out
}

func removeDebt(list []models.Debt, id string) []models.Debt {
	out := list[:0]
	for _, d := range list {
		if d.ID != id {
			out = append(out, d)
		}
	}
	return out
}
