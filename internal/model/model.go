package model

import "github.com/google/uuid"

// All возвращает все модели схемы в порядке, пригодном для AutoMigrate.
func All() []any {
	return []any{
		&Community{},
		&User{},
		&CommunityProfile{},
		&Category{},
		&SourceItem{},
		&Item{},
		&Lodging{},
		&Listing{},
		&ListingItem{},
		&ListingLodging{},
	}
}

// ensureID assigns a fresh UUID when the primary key was left unset.
func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
