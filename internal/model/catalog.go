package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Category — узел дерева категорий. Полная классификация — путь по ParentID до корня.
type Category struct {
	ID       uuid.UUID  `gorm:"primaryKey;type:uuid"`
	Name     string     `gorm:"size:100"`
	ParentID *uuid.UUID `gorm:"type:uuid;index"`
	Parent   *Category  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

func (Category) TableName() string { return "categories" }

func (c *Category) BeforeCreate(*gorm.DB) error {
	ensureID(&c.ID)
	return nil
}

// SourceItem is the canonical definition of an item, independent of any physical instance.
type SourceItem struct {
	ID                uuid.UUID `gorm:"primaryKey;type:uuid"`
	SourceItemName    string
	CategoryID        *uuid.UUID `gorm:"type:uuid;index"`
	Category          *Category  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	SourceItemDetails datatypes.JSON
}

func (SourceItem) TableName() string { return "source_items" }

func (s *SourceItem) BeforeCreate(*gorm.DB) error {
	ensureID(&s.ID)
	return nil
}
