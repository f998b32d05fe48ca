// Copyright (c) 2023 The Archworks developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package rewardsvc_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/archworks/auctionhouse/auction"
	"github.com/archworks/auctionhouse/rewardsvc"
)

func TestOutstandingEmpty(t *testing.T) {
	p := rewardsvc.NewMemProvider()
	out, err := rewardsvc.Outstanding(p, auction.AuctionHouseModuleAddr)
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), out.TotalRecords)
	assert.Equal(t, 0, len(out.Balance))
}

func TestOutstandingNormalizes(t *testing.T) {
	p := rewardsvc.NewMemProvider()
	contract := auction.AuctionHouseModuleAddr

	p.AddRecord(contract, auction.NewCoin(100, "uarch"))
	p.AddRecord(contract, auction.NewCoin(25, "uarch"), auction.NewCoin(10, "uatom"))
	p.AddRecord(contract, auction.NewCoin(0, "uosmo"))

	out, err := rewardsvc.Outstanding(p, contract)
	assert.Nil(t, err)
	assert.Equal(t, uint64(3), out.TotalRecords)

	// merged by denom, zero amounts dropped, sorted
	assert.Equal(t, 2, len(out.Balance))
	assert.Equal(t, "uarch", out.Balance[0].Denom)
	assert.Equal(t, big.NewInt(125), out.Balance[0].Amount)
	assert.Equal(t, "uatom", out.Balance[1].Denom)
	assert.Equal(t, big.NewInt(10), out.Balance[1].Amount)
}
