package solver

import (
	"crypto/ecdsa"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/crypto"
)

// Scheme is the closed set of signature schemes the protocol recognizes.
type Scheme uint8

const (
	// SchemeSecp256k1 is the scheme these flows sign and verify with.
	SchemeSecp256k1 Scheme = iota

	// SchemeEd25519 is recognized on the wire but not supported by this
	// client; it surfaces as UnsupportedSchemeError, never a silent fallback.
	SchemeEd25519
)

// String returns the scheme name.
func (s Scheme) String() string {
	switch s {
	case SchemeSecp256k1:
		return "secp256k1"
	case SchemeEd25519:
		return "ed25519"
	default:
		return fmt.Sprintf("scheme(%d)", uint8(s))
	}
}

// PublicKey is a scheme-tagged public key in its canonical byte form.
// For secp256k1 that is the 33-byte compressed SEC1 point.
type PublicKey struct {
	Scheme Scheme
	Bytes  []byte
}

// Signature is a scheme-tagged signature. For secp256k1 it is the 65-byte
// recoverable form R ‖ S ‖ V.
type Signature struct {
	Scheme Scheme
	Bytes  []byte
}

// Wallet is the external key-holding collaborator. Implementations own key
// storage and persistence; this library only asks for public keys and
// signatures over word vectors.
type Wallet interface {
	// PublicKey returns the account's public key, or AccountNotFoundError.
	PublicKey(account string) (PublicKey, error)

	// SignWords signs the canonical byte encoding of data with the
	// account's key.
	SignWords(account string, data []Word) (Signature, error)
}

// MemoryWallet is an in-memory secp256k1 Wallet for tests, examples, and
// local development. Keys live only for the process lifetime.
type MemoryWallet struct {
	mu   sync.Mutex
	keys map[string]*ecdsa.PrivateKey
}

// NewMemoryWallet creates an empty in-memory wallet.
func NewMemoryWallet() *MemoryWallet {
	return &MemoryWallet{keys: make(map[string]*ecdsa.PrivateKey)}
}

// NewKeyPair generates and stores a fresh key pair for account. Generating
// over an existing account replaces its key.
func (w *MemoryWallet) NewKeyPair(account string, scheme Scheme) error {
	if scheme != SchemeSecp256k1 {
		return &UnsupportedSchemeError{Scheme: scheme}
	}
	key, err := crypto.GenerateKey()
	if err != nil {
		return fmt.Errorf("solver: generate key for %q: %w", account, err)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.keys[account] = key
	return nil
}

// ImportKey stores a secp256k1 private key given as hex (no 0x prefix).
func (w *MemoryWallet) ImportKey(account string, hexKey string) error {
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return fmt.Errorf("solver: import key for %q: %w", account, err)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.keys[account] = key
	return nil
}

// PublicKey returns the account's compressed public key.
func (w *MemoryWallet) PublicKey(account string) (PublicKey, error) {
	w.mu.Lock()
	key, ok := w.keys[account]
	w.mu.Unlock()
	if !ok {
		return PublicKey{}, &AccountNotFoundError{Account: account}
	}
	return PublicKey{
		Scheme: SchemeSecp256k1,
		Bytes:  crypto.CompressPubkey(&key.PublicKey),
	}, nil
}

// SignWords signs the Keccak-256 digest of the canonical byte encoding of
// data, producing a 65-byte recoverable signature.
func (w *MemoryWallet) SignWords(account string, data []Word) (Signature, error) {
	w.mu.Lock()
	key, ok := w.keys[account]
	w.mu.Unlock()
	if !ok {
		return Signature{}, &AccountNotFoundError{Account: account}
	}
	digest := HashWords(data)
	sig, err := crypto.Sign(digest[:], key)
	if err != nil {
		return Signature{}, fmt.Errorf("solver: sign for %q: %w", account, err)
	}
	return Signature{Scheme: SchemeSecp256k1, Bytes: sig}, nil
}
