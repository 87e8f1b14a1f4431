package domain

import "time"

// Slip is one protocol document. Rows are written once at save time and only
// read afterwards, for listing and rendering.
type Slip struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Number    string    `json:"number" gorm:"type:text;not null;uniqueIndex:ux_slips_number"`
	OrderNo   string    `json:"order_no" gorm:"type:text;not null;default:''"`
	Customer  string    `json:"customer" gorm:"type:text;not null;default:''"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP;index:ix_slips_created_at"`
}

func (Slip) TableName() string { return "slips" }

type SlipItem struct {
	ID        int64 `json:"id" gorm:"primaryKey"`
	SlipID    int64 `json:"slip_id" gorm:"not null;index:ix_slip_items_slip_id"`
	ProductID int64 `json:"product_id" gorm:"not null"`
	Quantity  int   `json:"quantity" gorm:"not null;default:1"`
}

func (SlipItem) TableName() string { return "slip_items" }

type Serial struct {
	ID     int64  `json:"id" gorm:"primaryKey"`
	ItemID int64  `json:"item_id" gorm:"not null;index:ix_serials_item_id"`
	SN     string `json:"sn" gorm:"column:sn;type:text;not null"`
}

func (Serial) TableName() string { return "serials" }
