package business

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/OramaLabs/launchpad-program/internal/models"
	"github.com/OramaLabs/launchpad-program/pkg/oracle"
)

// ClaimDividendParams claims dividends up to an oracle-signed lifetime total.
// TotalAmount is cumulative: the payable amount is the gap between it and the
// user's watermark, which makes replays and reordered claims harmless.
type ClaimDividendParams struct {
	User        string
	TokenMint   string
	TotalAmount uint64
	Signature   []byte
}

// ClaimDividend pays the user the signed total minus what they already took
// and advances the watermark to the signed total.
func (s *Service) ClaimDividend(params ClaimDividendParams) (uint64, error) {
	now := s.now()

	var (
		claimed uint64
		event   DividendClaimedEvent
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		config, err := lockConfig(tx)
		if err != nil {
			return err
		}
		if config.Paused {
			return ErrPlatformPaused
		}

		message := oracle.FormatDividendMessage(params.User, params.TokenMint, params.TotalAmount)
		if err := s.verifier.Verify(config.PointsSigner, message, params.Signature); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
		}

		var record models.UserDividendRecord
		err = forUpdate(tx).
			Where(models.UserDividendRecord{User: params.User, TokenMint: params.TokenMint}).
			FirstOrCreate(&record).Error
		if err != nil {
			return err
		}

		if params.TotalAmount < record.TotalClaimed {
			// the signed total can never move backwards
			return ErrInvalidAmount
		}
		payable := params.TotalAmount - record.TotalClaimed
		if payable == 0 {
			return ErrNoClaimableAmount
		}

		reserve, err := vaultBalance(tx, VaultAuthority, params.TokenMint)
		if err != nil {
			return err
		}
		if reserve < payable {
			return ErrInsufficientVaultBalance
		}
		if err := vaultTransfer(tx, VaultAuthority, params.User, params.TokenMint, payable); err != nil {
			return err
		}

		record.TotalClaimed = params.TotalAmount
		if record.FirstClaimedAt == 0 {
			record.FirstClaimedAt = now
		}
		record.LastClaimedAt = now
		if err := tx.Save(&record).Error; err != nil {
			return err
		}

		claimed = payable
		event = DividendClaimedEvent{
			User:                params.User,
			TokenMint:           params.TokenMint,
			ClaimedAmount:       payable,
			TotalClaimed:        record.TotalClaimed,
			SignedTotalDividend: params.TotalAmount,
			Timestamp:           now,
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Infof("Dividend claimed: user %s, mint %s, amount %d (watermark %d)",
		params.User, params.TokenMint, claimed, event.TotalClaimed)

	s.emit(EventDividendClaimed, event)
	return claimed, nil
}

// GetDividendRecord returns the watermark row for (user, mint), if any.
func (s *Service) GetDividendRecord(user, mint string) (*models.UserDividendRecord, error) {
	var record models.UserDividendRecord
	err := s.db.Where("\"user\" = ? AND token_mint = ?", user, mint).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}
