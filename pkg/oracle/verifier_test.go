package oracle

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEd25519Verifier(t *testing.T) {
	wallet := solana.NewWallet()
	signer := wallet.PublicKey().String()
	verifier := NewEd25519Verifier()

	t.Run("Valid Signature", func(t *testing.T) {
		message := FormatPointsMessage("user-address", 500, 1000, 7)
		signature, err := Sign(wallet.PrivateKey, message)
		require.NoError(t, err)

		assert.NoError(t, verifier.Verify(signer, message, signature))
	})

	t.Run("Tampered Message", func(t *testing.T) {
		message := FormatPointsMessage("user-address", 500, 1000, 7)
		signature, err := Sign(wallet.PrivateKey, message)
		require.NoError(t, err)

		// same fields, larger spend
		forged := FormatPointsMessage("user-address", 900, 1000, 7)
		assert.ErrorIs(t, verifier.Verify(signer, forged, signature), ErrInvalidSignature)
	})

	t.Run("Wrong Signer", func(t *testing.T) {
		message := FormatDividendMessage("user-address", "mint-address", 42)
		signature, err := Sign(wallet.PrivateKey, message)
		require.NoError(t, err)

		other := solana.NewWallet().PublicKey().String()
		assert.ErrorIs(t, verifier.Verify(other, message, signature), ErrInvalidSignature)
	})

	t.Run("Malformed Public Key", func(t *testing.T) {
		message := []byte("anything")
		signature, err := Sign(wallet.PrivateKey, message)
		require.NoError(t, err)

		assert.ErrorIs(t, verifier.Verify("not-base58!!!", message, signature), ErrInvalidPublicKey)
	})

	t.Run("Truncated Signature", func(t *testing.T) {
		message := []byte("anything")
		assert.ErrorIs(t, verifier.Verify(signer, message, []byte{1, 2, 3}), ErrInvalidSignature)
	})
}

func TestCanonicalMessages(t *testing.T) {
	assert.Equal(t, "alice,500,1000,3", string(FormatPointsMessage("alice", 500, 1000, 3)))
	assert.Equal(t, "alice,mint,12345", string(FormatDividendMessage("alice", "mint", 12345)))
}
