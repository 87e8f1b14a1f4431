package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	// NextNumber computes the next daily-sequential slip number,
	// YYYY-MM-DD-NNN. The value is advisory: uniqueness is only guaranteed by
	// the constraint on slips.number at insert time.
	NextNumber(ctx context.Context) (string, error)

	// Save inserts the slip with its items and serials in one transaction.
	// When the requested number was taken by a concurrent writer, a fresh
	// number is allocated and the insert retried, so no save is silently lost.
	Save(ctx context.Context, req SaveRequest) (*Slip, error)

	List(ctx context.Context, filter ListFilter) ([]Slip, error)

	// Document loads everything the renderer needs for one slip.
	Document(ctx context.Context, number string) (*Document, error)
}

type SaveRequest struct {
	Number   string     `json:"number"`
	OrderNo  string     `json:"order_no"`
	Customer string     `json:"customer"`
	Items    []SaveItem `json:"items"`
}

type SaveItem struct {
	ProductID     int64    `json:"product_id"`
	Quantity      int      `json:"quantity"`
	SerialNumbers []string `json:"sns"`
}

// Document is a fully joined slip ready for rendering.
type Document struct {
	Number    string
	OrderNo   string
	Customer  string
	CreatedAt time.Time
	Rows      []DocumentRow
}

// DocumentRow is one rendered table row. Serials is sorted and may be empty.
type DocumentRow struct {
	Position int
	Quantity int
	Category string
	Product  string
	Serials  []string
}

var (
	ErrNotFound       = errors.New("not_found")
	ErrInvalidRequest = errors.New("invalid_request")
	ErrNumberConflict = errors.New("number_conflict")
)
