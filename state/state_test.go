// Copyright (c) 2023 The Archworks developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/archworks/auctionhouse/auction"
	"github.com/archworks/auctionhouse/lvldb"
	"github.com/archworks/auctionhouse/state"
)

func newTestState(t *testing.T) (*state.Creator, *state.State) {
	db, err := lvldb.NewMem()
	assert.Nil(t, err)
	creator := state.NewCreator(db)
	st, err := creator.NewState()
	assert.Nil(t, err)
	return creator, st
}

func TestBalance(t *testing.T) {
	_, st := newTestState(t)
	addr := auction.AuctionHouseModuleAddr

	assert.Equal(t, 0, st.GetBalance(addr, "uarch").Sign())

	st.AddBalance(addr, "uarch", big.NewInt(150))
	st.AddBalance(addr, "uarch", big.NewInt(50))
	assert.Equal(t, big.NewInt(200), st.GetBalance(addr, "uarch"))

	// denoms do not mix
	assert.Equal(t, 0, st.GetBalance(addr, "uatom").Sign())

	assert.True(t, st.SubBalance(addr, "uarch", big.NewInt(120)))
	assert.Equal(t, big.NewInt(80), st.GetBalance(addr, "uarch"))

	// overdrawing fails and leaves the balance alone
	assert.False(t, st.SubBalance(addr, "uarch", big.NewInt(81)))
	assert.Equal(t, big.NewInt(80), st.GetBalance(addr, "uarch"))

	assert.Nil(t, st.Err())
}

func TestListingListRoundTrip(t *testing.T) {
	creator, st := newTestState(t)

	// empty storage decodes to an empty list
	assert.Equal(t, 0, st.GetListingList().Count())

	var assetID auction.Bytes32
	assetID[31] = 7
	owner := auction.MustParseAddress("0x1de8ca2f973d026300af89041b0ecb1c0803a7e6")
	bidder := auction.MustParseAddress("0x0205c2d862ca051010698b69b54278cbaf945c0b")

	listing := auction.NewListing(assetID, "galleries", owner,
		auction.NewCoin(100, "uarch"), auction.NewCoin(500, "uarch"), 1700000000)
	listing.CurrentBid = &auction.Coin{Denom: "uarch", Amount: big.NewInt(150)}
	listing.CurrentBidder = &bidder

	bare := auction.NewListing(assetID, "statues", owner,
		auction.NewCoin(10, "uarch"), auction.NewCoin(90, "uarch"), 1700000000)

	list := auction.NewListingList(nil)
	list.Add(listing)
	list.Add(bare)
	st.SetListingList(list)
	assert.Nil(t, st.Err())
	assert.Nil(t, st.Stage().Commit())

	// a fresh state sees the committed registry
	st2, err := creator.NewState()
	assert.Nil(t, err)
	loaded := st2.GetListingList()
	assert.Equal(t, 2, loaded.Count())

	got := loaded.Get(listing.ID())
	assert.NotNil(t, got)
	assert.True(t, got.HasBid())
	assert.Equal(t, bidder, *got.CurrentBidder)
	assert.Equal(t, big.NewInt(150), got.CurrentBid.Amount)

	gotBare := loaded.Get(bare.ID())
	assert.NotNil(t, gotBare)
	assert.False(t, gotBare.HasBid())
}

func TestOwnerSetRoundTrip(t *testing.T) {
	creator, st := newTestState(t)

	assert.Equal(t, 0, st.GetOwnerSet().Count())

	set := auction.NewOwnerSet(nil)
	set.Add(auction.MustParseAddress("0x1de8ca2f973d026300af89041b0ecb1c0803a7e6"))
	set.Add(auction.MustParseAddress("0x0205c2d862ca051010698b69b54278cbaf945c0b"))
	st.SetOwnerSet(set)
	assert.Nil(t, st.Stage().Commit())

	st2, err := creator.NewState()
	assert.Nil(t, err)
	loaded := st2.GetOwnerSet()
	assert.Equal(t, 2, loaded.Count())
	assert.True(t, loaded.Contains(auction.MustParseAddress("0x1de8ca2f973d026300af89041b0ecb1c0803a7e6")))
}

func TestRewardsAddressRoundTrip(t *testing.T) {
	creator, st := newTestState(t)

	assert.True(t, st.GetRewardsAddress().IsZero())

	addr := auction.MustParseAddress("0x8a88c59bf15451f9deb1d62f7734fece2002668e")
	st.SetRewardsAddress(addr)
	assert.Nil(t, st.Stage().Commit())

	st2, err := creator.NewState()
	assert.Nil(t, err)
	assert.Equal(t, addr, st2.GetRewardsAddress())
}

func TestUncommittedChangesInvisible(t *testing.T) {
	creator, st := newTestState(t)

	st.SetRewardsAddress(auction.MustParseAddress("0x8a88c59bf15451f9deb1d62f7734fece2002668e"))

	// no commit, a fresh state still sees nothing
	st2, err := creator.NewState()
	assert.Nil(t, err)
	assert.True(t, st2.GetRewardsAddress().IsZero())
}
