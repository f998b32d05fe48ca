// Copyright (c) 2023 The Archworks developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Address is the 20-byte account identifier used across the auction house.
type Address [20]byte

var (
	// ZeroAddress is the all-zero address, used as the sender of mint-like transfers.
	ZeroAddress = Address{}
)

// String returns the checksum-less hex representation with 0x prefix.
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// Bytes returns the address as a byte slice.
func (a Address) Bytes() []byte {
	return a[:]
}

// IsZero returns true if the address is all zero.
func (a Address) IsZero() bool {
	return a == Address{}
}

// AbbrevString returns an abbreviated form like 0x1234…abcd.
func (a Address) AbbrevString() string {
	s := hex.EncodeToString(a[:])
	return "0x" + s[:4] + "…" + s[len(s)-4:]
}

// ParseAddress converts a 0x-prefixed hex string to an Address.
func ParseAddress(s string) (Address, error) {
	if len(s) == 40+2 {
		if strings.ToLower(s[:2]) != "0x" {
			return Address{}, fmt.Errorf("address must begin with 0x")
		}
		s = s[2:]
	} else if len(s) != 40 {
		return Address{}, fmt.Errorf("address must be 40 hex chars")
	}

	var addr Address
	if _, err := hex.Decode(addr[:], []byte(s)); err != nil {
		return Address{}, err
	}
	return addr, nil
}

// MustParseAddress is like ParseAddress but panics on error.
func MustParseAddress(s string) Address {
	addr, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return addr
}

// BytesToAddress sets b to Address with right-alignment.
func BytesToAddress(b []byte) Address {
	var addr Address
	if len(b) > len(addr) {
		b = b[len(b)-20:]
	}
	copy(addr[20-len(b):], b)
	return addr
}
