package business

import (
	"gorm.io/gorm"

	"github.com/OramaLabs/launchpad-program/internal/models"
)

// The vault ledger tracks custodial balances per (owner, mint). The platform
// authority row holds raise capital, unsold tokens, dividend reserves and
// stakes; crediting a user row is the settlement-side record of a payout. The
// on-chain transfer itself is the external collaborator's job.

func lockVaultAccount(tx *gorm.DB, owner, mint string) (*models.VaultAccount, error) {
	var account models.VaultAccount
	err := forUpdate(tx).
		Where(models.VaultAccount{Owner: owner, TokenMint: mint}).
		FirstOrCreate(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func vaultBalance(tx *gorm.DB, owner, mint string) (uint64, error) {
	account, err := lockVaultAccount(tx, owner, mint)
	if err != nil {
		return 0, err
	}
	return account.Balance, nil
}

func vaultCredit(tx *gorm.DB, owner, mint string, amount uint64) error {
	if amount == 0 {
		return nil
	}
	account, err := lockVaultAccount(tx, owner, mint)
	if err != nil {
		return err
	}
	balance, err := checkedAdd(account.Balance, amount)
	if err != nil {
		return err
	}
	return tx.Model(account).Update("balance", balance).Error
}

func vaultDebit(tx *gorm.DB, owner, mint string, amount uint64) error {
	if amount == 0 {
		return nil
	}
	account, err := lockVaultAccount(tx, owner, mint)
	if err != nil {
		return err
	}
	if account.Balance < amount {
		return ErrInsufficientVaultBalance
	}
	return tx.Model(account).Update("balance", account.Balance-amount).Error
}

// vaultTransfer moves amount between two ledger owners. Zero-amount transfers
// are skipped rather than attempted.
func vaultTransfer(tx *gorm.DB, fromOwner, toOwner, mint string, amount uint64) error {
	if amount == 0 {
		return nil
	}
	if err := vaultDebit(tx, fromOwner, mint, amount); err != nil {
		return err
	}
	return vaultCredit(tx, toOwner, mint, amount)
}
