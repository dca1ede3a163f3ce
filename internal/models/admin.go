package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Admin is a back-office user who can list and allot bookings.
type Admin struct {
	ID                uint       `json:"id" gorm:"primaryKey"`
	Email             string     `json:"email" gorm:"uniqueIndex;not null"`
	Password          string     `json:"-" gorm:"-"` // Transient, only read by HashPassword
	PasswordHash      string     `json:"-" gorm:"column:password_hash;not null"`
	Name              string     `json:"name"`
	ResetToken        *string    `json:"-" gorm:"column:reset_token"`
	ResetExpires      *time.Time `json:"-" gorm:"column:reset_expires"`
	PasswordChangedAt *time.Time `json:"-" gorm:"column:password_changed_at"`
	CreatedAt         time.Time  `json:"createdAt" gorm:"column:created_at"`
}

// TableName specifies the table name
func (Admin) TableName() string {
	return "admins"
}

func (a *Admin) HashPassword() error {
	if a.Password == "" {
		return nil
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hashedPassword)
	return nil
}

func (a *Admin) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password))
}
