package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Lodging — проживание: адрес, даты заезда/выезда, тип, внешняя ссылка.
type Lodging struct {
	ID             uuid.UUID `gorm:"primaryKey;type:uuid"`
	LodgingName    string
	Address        string
	StartDate      time.Time `gorm:"type:date"`
	EndDate        time.Time `gorm:"type:date"`
	LodgingType    LodgingType
	LodgingURL     *string `gorm:"column:lodging_url"`
	LodgingDetails datatypes.JSON
}

func (Lodging) TableName() string { return "lodgings" }

func (l *Lodging) BeforeCreate(*gorm.DB) error {
	ensureID(&l.ID)
	return nil
}

// ListingLodging maps a listing to its lodging.
type ListingLodging struct {
	ListingID uuid.UUID `gorm:"primaryKey;type:uuid"`
	LodgingID uuid.UUID `gorm:"primaryKey;type:uuid"`

	Listing *Listing `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Lodging *Lodging `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (ListingLodging) TableName() string { return "listing_lodgings" }
