// Copyright 2016 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package util

/*
Encoding Rules

Hex data is written with a "0x" prefix. Decoding accepts data with or without
the prefix, but it must be of even length and fit the destination exactly.
*/

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// Errors.
var (
	ErrSyntax     = errors.New("invalid hex string")
	ErrOddLength  = errors.New("hex string of odd length")
	ErrWrongSize  = errors.New("hex string has wrong length")
	ErrEmptyInput = errors.New("empty hex string")
)

// Encode encodes b as a hex string with 0x prefix.
func Encode(b []byte) string {
	enc := make([]byte, len(b)*2+2)
	copy(enc, "0x")
	hex.Encode(enc[2:], b)
	return string(enc)
}

func trimPrefix(s string) string {
	if len(s) > 1 && (s[0:2] == "0x" || s[0:2] == "0X") {
		return s[2:]
	}
	return s
}

// FromHex returns the bytes represented by the hexadecimal string s.
// Parameter s may be prefixed with "0x".
func FromHex(s string) ([]byte, error) {
	s = trimPrefix(s)
	if len(s) == 0 {
		return nil, ErrEmptyInput
	}
	if len(s)%2 == 1 {
		return nil, ErrOddLength
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	return b, nil
}

// UnmarshalFixedText decodes the input as a string with optional 0x prefix. The length of out
// determines the required input length.
func UnmarshalFixedText(typname string, input []byte, out []byte) error {
	raw, err := FromHex(string(input))
	if err != nil {
		return fmt.Errorf("decode %s: %w", typname, err)
	}
	if len(raw) != len(out) {
		return fmt.Errorf("decode %s: %w: want %d bytes, got %d", typname, ErrWrongSize, len(out), len(raw))
	}
	copy(out, raw)
	return nil
}
