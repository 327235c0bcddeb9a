package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`

	// one merchant account owns at most one business
	Business *Business `gorm:"foreignKey:UserID" json:"-"`
}
