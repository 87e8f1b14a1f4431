package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	// NumbersForDate returns every slip number carrying the given YYYY-MM-DD
	// prefix. The set is small (one day of slips), so the max sequence is
	// parsed in the service rather than relying on string ordering.
	NumbersForDate(ctx context.Context, db *gorm.DB, datePrefix string) ([]string, error)

	CreateSlip(ctx context.Context, db *gorm.DB, slip *Slip) error
	CreateItem(ctx context.Context, db *gorm.DB, item *SlipItem) error
	CreateSerials(ctx context.Context, db *gorm.DB, serials []Serial) error

	FindSlipByNumber(ctx context.Context, db *gorm.DB, number string) (*Slip, error)
	ListSlips(ctx context.Context, db *gorm.DB, filter ListFilter) ([]Slip, error)

	FindItemRows(ctx context.Context, db *gorm.DB, slipID int64) ([]ItemRow, error)
	FindSerialsForItems(ctx context.Context, db *gorm.DB, itemIDs []int64) ([]Serial, error)
}

// ItemRow is one slip line joined with its product and category names.
type ItemRow struct {
	ItemID   int64  `json:"item_id"`
	Quantity int    `json:"quantity"`
	Category string `json:"category"`
	Product  string `json:"product"`
}

// ListFilter narrows the slip listing. Query matches order number or customer,
// From/To bound created_at by calendar date (inclusive).
type ListFilter struct {
	Query string
	From  string
	To    string
}
