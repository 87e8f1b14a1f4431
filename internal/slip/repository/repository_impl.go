package repository

import (
	"context"
	"errors"

	"github.com/serialtrack/serialtrack/internal/slip/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) NumbersForDate(ctx context.Context, db *gorm.DB, datePrefix string) ([]string, error) {
	var numbers []string
	err := db.WithContext(ctx).
		Model(&domain.Slip{}).
		Where("number LIKE ?", datePrefix+"-%").
		Pluck("number", &numbers).Error
	if err != nil {
		return nil, err
	}
	return numbers, nil
}

func (r *repo) CreateSlip(ctx context.Context, db *gorm.DB, slip *domain.Slip) error {
	return db.WithContext(ctx).Create(slip).Error
}

func (r *repo) CreateItem(ctx context.Context, db *gorm.DB, item *domain.SlipItem) error {
	return db.WithContext(ctx).Create(item).Error
}

func (r *repo) CreateSerials(ctx context.Context, db *gorm.DB, serials []domain.Serial) error {
	if len(serials) == 0 {
		return nil
	}
	return db.WithContext(ctx).Create(&serials).Error
}

func (r *repo) FindSlipByNumber(ctx context.Context, db *gorm.DB, number string) (*domain.Slip, error) {
	var s domain.Slip
	err := db.WithContext(ctx).Where("number = ?", number).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repo) ListSlips(ctx context.Context, db *gorm.DB, filter domain.ListFilter) ([]domain.Slip, error) {
	stmt := db.WithContext(ctx).
		Model(&domain.Slip{}).
		Order("created_at DESC")

	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		stmt = stmt.Where("LOWER(order_no) LIKE LOWER(?) OR LOWER(customer) LIKE LOWER(?)", like, like)
	}
	if filter.From != "" {
		stmt = stmt.Where("created_at >= ?", filter.From)
	}
	if filter.To != "" {
		// inclusive upper bound on the calendar date
		stmt = stmt.Where("created_at < ?", filter.To+" 23:59:59")
	}

	var items []domain.Slip
	if err := stmt.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindItemRows(ctx context.Context, db *gorm.DB, slipID int64) ([]domain.ItemRow, error) {
	var rows []domain.ItemRow
	err := db.WithContext(ctx).Raw(
		`SELECT i.id AS item_id, i.quantity, c.name AS category, p.name AS product
		 FROM slip_items i
		 JOIN products p ON p.id = i.product_id
		 JOIN categories c ON c.id = p.category_id
		 WHERE i.slip_id = ?
		 ORDER BY i.id`,
		slipID,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) FindSerialsForItems(ctx context.Context, db *gorm.DB, itemIDs []int64) ([]domain.Serial, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	var serials []domain.Serial
	err := db.WithContext(ctx).
		Where("item_id IN ?", itemIDs).
		Order("sn ASC").
		Find(&serials).Error
	if err != nil {
		return nil, err
	}
	return serials, nil
}
