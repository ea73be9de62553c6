package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User — учётная запись; пароль хранится только в виде bcrypt-хеша.
type User struct {
	ID           uuid.UUID `gorm:"primaryKey;type:uuid"`
	Email        string    `gorm:"not null;uniqueIndex"`
	FirstName    string
	LastName     string
	PasswordHash string
	CreatedOn    time.Time `gorm:"autoCreateTime"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(*gorm.DB) error {
	ensureID(&u.ID)
	return nil
}

// SetPassword hashes password and stores the hash.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	if u.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
