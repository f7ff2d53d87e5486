package types

import (
	"fmt"

	"github.com/Skryptex/SKX-EDIT/common/util"
)

// Hash32Length is 32, the expected length of the hash.
const Hash32Length = 32

// Hash32 is a 256-bit block identifier.
type Hash32 [Hash32Length]byte

// EmptyHash32 is the zero value of Hash32.
var EmptyHash32 = Hash32{}

// HexToHash32 parses a hex string (with or without 0x prefix) into a Hash32.
func HexToHash32(s string) (Hash32, error) {
	var h Hash32
	if err := h.UnmarshalText([]byte(s)); err != nil {
		return EmptyHash32, err
	}
	return h, nil
}

// MustHexToHash32 is like HexToHash32 but panics on malformed input.
// Only use with literal data.
func MustHexToHash32(s string) Hash32 {
	h, err := HexToHash32(s)
	if err != nil {
		panic(err)
	}
	return h
}

// Hex converts a hash to a hex string.
func (h Hash32) Hex() string { return util.Encode(h[:]) }

// String implements the stringer interface and is used also by the logger when
// doing full logging into a file.
func (h Hash32) String() string {
	return h.Hex()
}

// ShortString returns the first 10 characters of the hash, for logging purposes.
func (h Hash32) ShortString() string {
	return Shorten(h.Hex()[2:], 10)
}

// Shorten shortens a string to a specified length.
func Shorten(s string, maxlen int) string {
	return s[:min(maxlen, len(s))]
}

// Format implements fmt.Formatter, forcing the byte slice to be formatted as is,
// without going through the stringer interface used for logging.
func (h Hash32) Format(s fmt.State, c rune) {
	if c == 's' || c == 'v' {
		_, _ = fmt.Fprint(s, h.Hex())
		return
	}
	_, _ = fmt.Fprintf(s, "%"+string(c), h[:])
}

// UnmarshalText parses a hash in hex syntax.
func (h *Hash32) UnmarshalText(input []byte) error {
	return util.UnmarshalFixedText("Hash32", input, h[:])
}

// MarshalText returns the hex representation of h.
func (h Hash32) MarshalText() ([]byte, error) {
	return []byte(h.Hex()), nil
}

