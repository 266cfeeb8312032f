package encoder

import (
	"lark/pkg/util"
)

const (
	// SlugAlphabet is the character set for generated slugs. Caller
	// supplied slugs may additionally contain '-' and '_'.
	SlugAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	// MinLength is the minimum generated slug length
	MinLength = 5
	// MaxLength is the maximum generated slug length
	MaxLength = 8
	// MaxSlugLength bounds any slug, generated or caller supplied
	MaxSlugLength = 50
)

// SlugEncoder derives short slugs from numeric hashes
type SlugEncoder struct{}

// NewSlugEncoder creates a new SlugEncoder
func NewSlugEncoder() *SlugEncoder {
	return &SlugEncoder{}
}

// Encode encodes a uint64 to a slug of the specified length
func (e *SlugEncoder) Encode(n uint64, length int) string {
	if length < MinLength || length > MaxLength {
		length = MinLength
	}

	result := make([]byte, length)
	alphabetLen := uint64(len(SlugAlphabet))

	for i := length - 1; i >= 0; i-- {
		result[i] = SlugAlphabet[n%alphabetLen]
		n = n / alphabetLen
	}

	return string(result)
}

// EncodeString derives a slug of the specified length from a string
func (e *SlugEncoder) EncodeString(s string, length int) string {
	hash := util.HashString(s)
	return e.Encode(hash, length)
}

// IsValidSlug reports whether s is acceptable as a slug: non-empty, at
// most MaxSlugLength characters, charset [a-z0-9-_]. Matching is
// case-sensitive, uppercase is rejected rather than folded.
func IsValidSlug(s string) bool {
	if len(s) == 0 || len(s) > MaxSlugLength {
		return false
	}
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_':
		default:
			return false
		}
	}
	return true
}

// MaxCapacity returns the number of distinct slugs of a given length
func (e *SlugEncoder) MaxCapacity(length int) uint64 {
	alphabetLen := uint64(len(SlugAlphabet))
	capacity := uint64(1)
	for i := 0; i < length; i++ {
		capacity *= alphabetLen
	}
	return capacity
}
