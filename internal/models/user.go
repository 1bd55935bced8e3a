package models

import (
	"gorm.io/gorm"
)

// User types
const (
	UserTypeCommon   = "common"
	UserTypeMerchant = "merchant"
)

type User struct {
	gorm.Model
	Name     string `gorm:"not null"`
	Email    string `gorm:"uniqueIndex;not null"`
	Document string `gorm:"uniqueIndex;not null"` // CPF/CNPJ
	UserType string `gorm:"default:'common'"`
}

// IsMerchant reports whether the user is a merchant account.
func (u *User) IsMerchant() bool {
	return u.UserType == UserTypeMerchant
}

// CanSendMoney reports whether the user may act as payer.
// Only common users can send money.
func (u *User) CanSendMoney() bool {
	return u.UserType == UserTypeCommon
}
