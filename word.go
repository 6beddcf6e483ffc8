package solver

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/crypto"
)

// Word is the atomic unit of all ledger values, keys, and signatures.
// Every structured value the ledger stores is ultimately a word sequence.
type Word = int64

// WordBytes is the encoded width of one Word.
const WordBytes = 8

// Key is an ordered word sequence addressing one storage slot within a
// contract's state. Keys are derived from a Schema, never hand-built.
type Key []Word

// WordsToBytes encodes words big-endian, WordBytes per word.
func WordsToBytes(words []Word) []byte {
	out := make([]byte, len(words)*WordBytes)
	for i, w := range words {
		binary.BigEndian.PutUint64(out[i*WordBytes:], uint64(w))
	}
	return out
}

// BytesToWords packs bytes big-endian into words, zero-padding the final
// word when len(b) is not a multiple of WordBytes.
func BytesToWords(b []byte) []Word {
	n := (len(b) + WordBytes - 1) / WordBytes
	out := make([]Word, n)
	for i := range out {
		var chunk [WordBytes]byte
		copy(chunk[:], b[i*WordBytes:])
		out[i] = Word(binary.BigEndian.Uint64(chunk[:]))
	}
	return out
}

// Word4FromHash packs a 32-byte hash into four big-endian words.
func Word4FromHash(h [32]byte) [4]Word {
	var out [4]Word
	for i := range out {
		out[i] = Word(binary.BigEndian.Uint64(h[i*WordBytes:]))
	}
	return out
}

// HashWords returns the Keccak-256 digest of the canonical byte encoding
// of words. This is the hash behind account identities, signing digests,
// and content addresses.
func HashWords(words []Word) [32]byte {
	var out [32]byte
	copy(out[:], crypto.Keccak256(WordsToBytes(words)))
	return out
}
