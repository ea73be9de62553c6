package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Community — отдельный инстанс маркетплейса (тенант).
type Community struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid"`
	Name      string    `gorm:"size:128"`
	URI       string    `gorm:"column:uri;size:50"`
	CreatedOn time.Time `gorm:"autoCreateTime"`
}

func (Community) TableName() string { return "communities" }

func (c *Community) BeforeCreate(*gorm.DB) error {
	ensureID(&c.ID)
	return nil
}

// CommunityProfile is a user's identity within one community.
// The composite primary key allows at most one profile per (community, user).
type CommunityProfile struct {
	CommunityID uuid.UUID `gorm:"primaryKey;type:uuid"`
	UserID      uuid.UUID `gorm:"primaryKey;type:uuid"`

	Community *Community `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	User      *User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Alias       string
	ActiveSince time.Time `gorm:"type:date"`
}

func (CommunityProfile) TableName() string { return "community_profiles" }

func (p *CommunityProfile) BeforeCreate(*gorm.DB) error {
	if p.ActiveSince.IsZero() {
		p.ActiveSince = time.Now().UTC().Truncate(24 * time.Hour)
	}
	return nil
}
