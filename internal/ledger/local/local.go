// Package local implements the ledger adapter backed by an on-device
// SQLite slot store: one row per record kind holding the JSON-serialized
// full collection. Every mutation rewrites the affected slot synchronously,
// so the durable copy always matches the in-memory collection.
package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Yashuu213/MoneyViewer/internal/models"
)

const (
	slotTransactions = "transactions"
	slotDebts        = "debts"
)

// slot is one durable key-value entry.
type slot struct {
	Key       string `gorm:"primaryKey"`
	Payload   []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (slot) TableName() string { return "ledger_slots" }

// Adapter is the local, non-authoritative persistence strategy.
type Adapter struct {
	db *gorm.DB
}

// New opens (or creates) the slot store at the given path.
func New(path string) (*Adapter, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("opening slot store: %w", err)
	}
	if err := db.AutoMigrate(&slot{}); err != nil {
		return nil, fmt.Errorf("migrating slot store: %w", err)
	}
	return &Adapter{db: db}, nil
}

// Authoritative is false: the in-memory collection is the source of truth
// and this adapter only mirrors it.
func (a *Adapter) Authoritative() bool { return false }

// LoadTransactions returns the saved collection, or an empty one if the
// slot has never been written.
func (a *Adapter) LoadTransactions(ctx context.Context) ([]models.Transaction, error) {
	var list []models.Transaction
	if err := a.read(ctx, slotTransactions, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// LoadDebts returns the saved collection, or an empty one if the slot has
// never been written.
func (a *Adapter) LoadDebts(ctx context.Context) ([]models.Debt, error) {
	var list []models.Debt
	if err := a.read(ctx, slotDebts, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// CreateTransaction prepends the record to the stored collection and
// writes the whole slot back.
func (a *Adapter) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	list, err := a.LoadTransactions(ctx)
	if err != nil {
		return err
	}
	list = append([]models.Transaction{*tx}, list...)
	return a.write(ctx, slotTransactions, list)
}

// DeleteTransaction filters the record out of the stored collection and
// writes the whole slot back. Unknown ids leave the slot as-is.
func (a *Adapter) DeleteTransaction(ctx context.Context, id string) error {
	list, err := a.LoadTransactions(ctx)
	if err != nil {
		return err
	}
	kept := list[:0]
	for _, tx := range list {
		if tx.ID != id {
			kept = append(kept, tx)
		}
	}
	return a.write(ctx, slotTransactions, kept)
}

// CreateDebt prepends the record to the stored collection and writes the
// whole slot back.
func (a *Adapter) CreateDebt(ctx context.Context, debt *models.Debt) error {
	list, err := a.LoadDebts(ctx)
	if err != nil {
		return err
	}
	list = append([]models.Debt{*debt}, list...)
	return a.write(ctx, slotDebts, list)
}

// DeleteDebt filters the record out of the stored collection and writes
// the whole slot back.
func (a *Adapter) DeleteDebt(ctx context.Context, id string) error {
	list, err := a.LoadDebts(ctx)
	if err != nil {
		return err
	}
	kept := list[:0]
	for _, d := range list {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	return a.write(ctx, slotDebts, kept)
}

func (a *Adapter) read(ctx context.Context, key string, out any) error {
	var row slot
	err := a.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading slot %s: %w", key, err)
	}
	if err := json.Unmarshal(row.Payload, out); err != nil {
		return fmt.Errorf("decoding slot %s: %w", key, err)
	}
	return nil
}

func (a *Adapter) write(ctx context.Context, key string, collection any) error {
	payload, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("encoding slot %s: %w", key, err)
	}
	row := slot{Key: key, Payload: payload, UpdatedAt: time.Now()}
	if err := a.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row).Error; err != nil {
		return fmt.Errorf("writing slot %s: %w", key, err)
	}
	return nil
}
