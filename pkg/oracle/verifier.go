package oracle

import (
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

var (
	ErrInvalidSignature = errors.New("invalid oracle signature")
	ErrInvalidPublicKey = errors.New("invalid oracle public key")
)

// Verifier checks that a canonical message was signed by the trusted oracle
// key. Injected into the participation and dividend operations so tests can
// swap in a stub.
type Verifier interface {
	Verify(signer string, message []byte, signature []byte) error
}

// Ed25519Verifier verifies standard Ed25519 signatures over the raw message
// bytes, with keys and signatures in Solana base58 wire form.
type Ed25519Verifier struct{}

func NewEd25519Verifier() *Ed25519Verifier {
	return &Ed25519Verifier{}
}

func (v *Ed25519Verifier) Verify(signer string, message []byte, signature []byte) error {
	pubkey, err := solana.PublicKeyFromBase58(signer)
	if err != nil {
		return ErrInvalidPublicKey
	}

	sig := solana.SignatureFromBytes(signature)

	if !sig.Verify(pubkey, message) {
		return ErrInvalidSignature
	}
	return nil
}

// FormatPointsMessage builds the canonical points-authorization message. The
// oracle signs exactly these bytes; any field mismatch fails verification.
func FormatPointsMessage(user string, pointsToUse, totalPoints uint64, poolIndex uint64) []byte {
	return []byte(fmt.Sprintf("%s,%d,%d,%d", user, pointsToUse, totalPoints, poolIndex))
}

// FormatDividendMessage builds the canonical dividend-total message for one
// (user, mint) pair.
func FormatDividendMessage(user, tokenMint string, totalDividendAmount uint64) []byte {
	return []byte(fmt.Sprintf("%s,%s,%d", user, tokenMint, totalDividendAmount))
}

// Sign produces an oracle signature over message with the given private key.
// Used by tooling and tests; the production oracle signs off-process.
func Sign(key solana.PrivateKey, message []byte) ([]byte, error) {
	sig, err := key.Sign(message)
	if err != nil {
		return nil, err
	}
	return sig[:], nil
}
