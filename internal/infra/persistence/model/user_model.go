package model

import (
	"time"

	"chaintrace/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Unique index names; repositories inspect them to tell duplicates apart.
const (
	IndexUsersUsername       = "idx_users_username"
	IndexUsersEmail          = "idx_users_email"
	IndexUsersWallet         = "idx_users_wallet_address"
	IndexPurchasesPurchaseID = "idx_purchases_purchase_id"
	IndexPurchasesTxHash     = "idx_purchases_transaction_hash"
)

// UserModel mirrors the 'users' table. Username, email and wallet are stored lower-cased.
type UserModel struct {
	ID             uuid.UUID                                  `gorm:"type:uuid;primaryKey"`
	Username       string                                     `gorm:"type:varchar(64);not null;uniqueIndex:idx_users_username"`
	Email          string                                     `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email"`
	PasswordHash   string                                     `gorm:"type:varchar(255);not null"`
	WalletAddress  string                                     `gorm:"type:varchar(64);not null;uniqueIndex:idx_users_wallet_address"`
	Role           string                                     `gorm:"type:varchar(20);not null;index"`
	Profile        datatypes.JSONType[entity.Profile]         `gorm:"type:jsonb;not null"`
	CompanyProfile datatypes.JSONType[*entity.CompanyProfile] `gorm:"type:jsonb"`
	Preferences    datatypes.JSONType[entity.Preferences]     `gorm:"type:jsonb;not null"`
	IsActive       bool                                       `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
