package util

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash/fnv"
)

// HashString returns a uint64 hash of the input string using FNV-1a
func HashString(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

// HashIP derives an irreversible visitor identifier from a client IP.
// HMAC-SHA256 keyed with a deployment secret, hex encoded. The raw
// address must never reach storage; this is the only form that does.
func HashIP(secret, ip string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(ip))
	return hex.EncodeToString(mac.Sum(nil))
}
