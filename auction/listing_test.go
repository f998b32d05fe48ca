// Copyright (c) 2023 The Archworks developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction_test

import (
	"bytes"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/archworks/auctionhouse/auction"
)

func newTestListing(collection string, seed byte) *auction.Listing {
	var assetID auction.Bytes32
	assetID[31] = seed
	var owner auction.Address
	owner[19] = seed
	return auction.NewListing(
		assetID,
		collection,
		owner,
		auction.NewCoin(100, "uarch"),
		auction.NewCoin(500, "uarch"),
		uint64(1700000000),
	)
}

func TestListingID(t *testing.T) {
	l := newTestListing("galleries", 1)
	assert.Equal(t, auction.ListingID("galleries", l.AssetID), l.ID())

	// the same asset id under another collection is another listing
	other := auction.ListingID("statues", l.AssetID)
	assert.NotEqual(t, l.ID(), other)
}

func TestListingExpiry(t *testing.T) {
	l := newTestListing("galleries", 1)
	assert.Equal(t, l.CreateTime+auction.AuctionDuration, l.EndTime)
	assert.False(t, l.Expired(l.EndTime))
	assert.True(t, l.Expired(l.EndTime+1))
}

func TestListingHasBid(t *testing.T) {
	l := newTestListing("galleries", 1)
	assert.False(t, l.HasBid())

	bidder := auction.MustParseAddress("0x0205c2d862ca051010698b69b54278cbaf945c0b")
	l.CurrentBid = &auction.Coin{Denom: "uarch", Amount: big.NewInt(150)}
	l.CurrentBidder = &bidder
	assert.True(t, l.HasBid())
}

func TestListingListAddGetRemove(t *testing.T) {
	list := auction.NewListingList(nil)
	assert.Equal(t, 0, list.Count())

	for i := byte(1); i <= 5; i++ {
		list.Add(newTestListing("galleries", i))
	}
	assert.Equal(t, 5, list.Count())

	l := newTestListing("galleries", 3)
	assert.True(t, list.Exist(l.ID()))
	got := list.Get(l.ID())
	assert.NotNil(t, got)
	assert.Equal(t, l.AssetID, got.AssetID)

	// adding an existing id replaces the entry
	l.MinBid = auction.NewCoin(250, "uarch")
	list.Add(l)
	assert.Equal(t, 5, list.Count())
	assert.Equal(t, big.NewInt(250), list.Get(l.ID()).MinBid.Amount)

	list.Remove(l.ID())
	assert.Equal(t, 4, list.Count())
	assert.False(t, list.Exist(l.ID()))
	assert.Nil(t, list.Get(l.ID()))

	// removing an absent id is a no-op
	list.Remove(l.ID())
	assert.Equal(t, 4, list.Count())
}

func TestListingListOrdered(t *testing.T) {
	list := auction.NewListingList(nil)
	for i := byte(10); i >= 1; i-- {
		list.Add(newTestListing(fmt.Sprintf("c%d", i), i))
	}

	prev := []byte{}
	for _, l := range list.ToList() {
		id := l.ID()
		assert.True(t, bytes.Compare(prev, id.Bytes()) < 0)
		prev = id.Bytes()
	}
}
