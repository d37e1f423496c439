package models

import (
	"time"
)

// VaultAccount is one custodial balance, keyed by (owner, mint). The platform
// vault authority owns the raise/token/dividend/stake reserves; user rows are
// the settlement-side ledger for amounts paid out to them.
type VaultAccount struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	Owner     string `gorm:"size:44;not null;uniqueIndex:idx_vault_owner_mint" json:"owner"`
	TokenMint string `gorm:"size:44;not null;uniqueIndex:idx_vault_owner_mint" json:"token_mint"`

	Balance uint64 `gorm:"not null;default:0" json:"balance"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (VaultAccount) TableName() string {
	return "vault_account"
}
