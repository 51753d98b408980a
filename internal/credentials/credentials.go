package credentials

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math/big"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltBytes = 16

	// Key-derivation parameters. Changing either invalidates every stored
	// hash, so they are fixed.
	hashIterations = 100000
	hashKeyLength  = 32
)

// GenerateSalt returns a fresh random salt, hex encoded.
func GenerateSalt() (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hex.EncodeToString(salt), nil
}

// HashValue derives a one-way hash from a secret and a hex-encoded salt
// using PBKDF2-SHA256 with 100,000 iterations and a 256-bit output.
func HashValue(value, saltHex string) (string, error) {
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return "", fmt.Errorf("invalid salt: %w", err)
	}
	derived := pbkdf2.Key([]byte(value), salt, hashIterations, hashKeyLength, sha256.New)
	return hex.EncodeToString(derived), nil
}

// VerifyValue recomputes the hash for a secret under the stored salt and
// compares it against the stored hash over the full derived output.
func VerifyValue(value, saltHex, expectedHex string) (bool, error) {
	derivedHex, err := HashValue(value, saltHex)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare([]byte(derivedHex), []byte(expectedHex)) == 1, nil
}

// GeneratePIN generates a child login PIN of exactly four decimal digits.
// Leading zeros are allowed.
func GeneratePIN() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", fmt.Errorf("failed to generate PIN: %w", err)
	}
	return fmt.Sprintf("%04d", n.Int64()), nil
}

// randomElement picks a random element from a string slice
func randomElement(slice []string) (string, error) {
	if len(slice) == 0 {
		return "", nil
	}

	num, err := rand.Int(rand.Reader, big.NewInt(int64(len(slice))))
	if err != nil {
		return "", err
	}

	return slice[num.Int64()], nil
}
