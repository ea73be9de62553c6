package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Listing — запись маркетплейса, опубликованная пользователем внутри сообщества.
// ListingType выбирает детальную таблицу (items / lodgings), связанную через join-таблицу.
type Listing struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid"`
	CommunityID uuid.UUID `gorm:"type:uuid;not null;index"`
	ListedByID  uuid.UUID `gorm:"type:uuid;not null;index"`

	// Связи
	Community *Community `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	ListedBy  *User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	CreatedOn time.Time  `gorm:"autoCreateTime"`
	ListedOn  *time.Time // выставляется только при создании со status=active
	ClosedOn  *time.Time

	Status            ListingStatus `gorm:"size:20;not null"`
	ListingType       ListingType   `gorm:"size:20;not null"`
	SaleType          SaleType      `gorm:"size:20;not null"`
	ListingPriceCents int           `gorm:"not null"`
	ListingTitle      string        `gorm:"size:100;not null"`
	ListingDesc       *string       `gorm:"type:text"`
	AvailableCount    int           `gorm:"not null"`
}

func (Listing) TableName() string { return "listings" }

func (l *Listing) BeforeCreate(*gorm.DB) error {
	ensureID(&l.ID)
	return nil
}
