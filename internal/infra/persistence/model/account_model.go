// Package model contains the GORM persistence models mirroring the
// database tables. Table names keep the German names of the schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'konto' table. One row per login identity;
// the salt is unique so no two accounts ever share one.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(250);unique;not null"`
	PasswordHash string    `gorm:"type:text;not null"`
	Salt         string    `gorm:"type:text;unique;not null"`
	CreatedAt    time.Time

	Profiles []ProfileModel `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "konto"
}

// ProfileModel mirrors the 'nutzer' table. AccountID references
// konto.id; deleting the account cascades here.
type ProfileModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:text;unique;not null"`
	AccountID uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "nutzer"
}
