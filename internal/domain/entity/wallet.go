package entity

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// NormalizeWallet returns the canonical lower-case form used for storage and comparison.
func NormalizeWallet(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// SameWallet compares two wallet addresses case-insensitively.
func SameWallet(a, b string) bool {
	a, b = NormalizeWallet(a), NormalizeWallet(b)

	return a != "" && a == b
}

// IsWalletAddress reports whether s is a 20-byte hex address with or without 0x prefix.
func IsWalletAddress(s string) bool {
	return common.IsHexAddress(strings.TrimSpace(s))
}

// NormalizeIdentifier lower-cases usernames and emails.
func NormalizeIdentifier(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
