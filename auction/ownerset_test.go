// Copyright (c) 2023 The Archworks developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/archworks/auctionhouse/auction"
)

func addrWithSeed(seed byte) auction.Address {
	var addr auction.Address
	addr[19] = seed
	return addr
}

func TestOwnerSetAddRemove(t *testing.T) {
	set := auction.NewOwnerSet(nil)
	assert.Equal(t, 0, set.Count())

	a := addrWithSeed(1)
	b := addrWithSeed(2)

	set.Add(a)
	set.Add(b)
	assert.Equal(t, 2, set.Count())
	assert.True(t, set.Contains(a))
	assert.True(t, set.Contains(b))

	// adding a member twice changes nothing
	set.Add(a)
	assert.Equal(t, 2, set.Count())

	set.Remove(a)
	assert.Equal(t, 1, set.Count())
	assert.False(t, set.Contains(a))

	// removing an absent member is a no-op
	set.Remove(a)
	assert.Equal(t, 1, set.Count())
}

func TestOwnerSetOrdered(t *testing.T) {
	set := auction.NewOwnerSet(nil)
	for i := byte(9); i >= 1; i-- {
		set.Add(addrWithSeed(i))
	}

	prev := []byte{}
	for _, o := range set.ToList() {
		assert.True(t, bytes.Compare(prev, o.Bytes()) < 0)
		prev = o.Bytes()
	}
}
