package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Item — конкретный физический экземпляр товара, выставляемый на продажу.
type Item struct {
	ID           uuid.UUID  `gorm:"primaryKey;type:uuid"`
	SourceItemID *uuid.UUID `gorm:"type:uuid;index"` // опциональная ссылка на source_items.id

	SourceItem *SourceItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`

	ItemName        string
	Condition       Condition `gorm:"size:20;not null"`
	Photos          datatypes.JSON
	ShippingZipcode string
	ItemDetails     datatypes.JSON
}

func (Item) TableName() string { return "items" }

func (i *Item) BeforeCreate(*gorm.DB) error {
	ensureID(&i.ID)
	return nil
}

// ListingItem maps a listing to its item.
type ListingItem struct {
	ListingID uuid.UUID `gorm:"primaryKey;type:uuid"`
	ItemID    uuid.UUID `gorm:"primaryKey;type:uuid"`

	Listing *Listing `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Item    *Item    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (ListingItem) TableName() string { return "listing_items" }
