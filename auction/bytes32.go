// Copyright (c) 2023 The Archworks developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Bytes32 is a 32-byte value used for listing IDs and storage keys.
type Bytes32 [32]byte

// String returns the hex representation with 0x prefix.
func (b Bytes32) String() string {
	return "0x" + hex.EncodeToString(b[:])
}

// AbbrevString returns an abbreviated form like 0x1234…abcd.
func (b Bytes32) AbbrevString() string {
	s := hex.EncodeToString(b[:])
	return "0x" + s[:4] + "…" + s[len(s)-4:]
}

// Bytes returns the value as a byte slice.
func (b Bytes32) Bytes() []byte {
	return b[:]
}

// IsZero returns true if the value is all zero.
func (b Bytes32) IsZero() bool {
	return b == Bytes32{}
}

// ParseBytes32 converts a 0x-prefixed hex string to a Bytes32.
func ParseBytes32(s string) (Bytes32, error) {
	if len(s) == 64+2 {
		if strings.ToLower(s[:2]) != "0x" {
			return Bytes32{}, fmt.Errorf("bytes32 must begin with 0x")
		}
		s = s[2:]
	} else if len(s) != 64 {
		return Bytes32{}, fmt.Errorf("bytes32 must be 64 hex chars")
	}

	var b Bytes32
	if _, err := hex.Decode(b[:], []byte(s)); err != nil {
		return Bytes32{}, err
	}
	return b, nil
}

// MustParseBytes32 is like ParseBytes32 but panics on error.
func MustParseBytes32(s string) Bytes32 {
	b, err := ParseBytes32(s)
	if err != nil {
		panic(err)
	}
	return b
}

// BytesToBytes32 sets b to Bytes32 with right-alignment.
func BytesToBytes32(b []byte) Bytes32 {
	var b32 Bytes32
	if len(b) > len(b32) {
		b = b[len(b)-32:]
	}
	copy(b32[32-len(b):], b)
	return b32
}
