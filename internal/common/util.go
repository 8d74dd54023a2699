package common

import (
	"crypto/rand"
	"encoding/hex"
)

// MakeRandHexString returns size random bytes encoded as a hex string.
func MakeRandHexString(size int) (string, error) {
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// IsKnownProvider reports whether name is one of the supported identity providers.
func IsKnownProvider(name string) bool {
	switch name {
	case ProviderGitHub, ProviderGoogle:
		return true
	}
	return false
}
