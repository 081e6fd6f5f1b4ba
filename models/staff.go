package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type StaffRole string

const (
	RoleSuperadmin StaffRole = "superadmin"
	RoleManager    StaffRole = "manager"
	RoleEmployee   StaffRole = "employee"
)

func ValidRole(r string) bool {
	switch StaffRole(r) {
	case RoleSuperadmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// Staff is the single account table behind all three dashboards. Role
// scoping happens in middleware; passwords are only ever stored hashed.
type Staff struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"unique;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         StaffRole `gorm:"type:VARCHAR(20);not null" json:"role"`
	Store        string    `json:"store"` // optional store assignment
	Active       bool      `gorm:"default:true" json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

func (s *Staff) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	s.PasswordHash = string(hash)
	return nil
}

func (s *Staff) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(s.PasswordHash), []byte(password)) == nil
}
