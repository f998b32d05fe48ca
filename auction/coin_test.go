// Copyright (c) 2023 The Archworks developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/archworks/auctionhouse/auction"
)

func TestFindCoin(t *testing.T) {
	funds := []auction.Coin{
		auction.NewCoin(100, "uarch"),
		auction.NewCoin(50, "uatom"),
	}

	assert.Equal(t, big.NewInt(100), auction.FindCoin(funds, "uarch"))
	assert.Equal(t, big.NewInt(50), auction.FindCoin(funds, "uatom"))
	assert.Nil(t, auction.FindCoin(funds, "uosmo"))
	assert.Nil(t, auction.FindCoin(nil, "uarch"))
}

func TestNormalizeCoins(t *testing.T) {
	coins := []auction.Coin{
		auction.NewCoin(100, "uatom"),
		auction.NewCoin(50, "uarch"),
		auction.NewCoin(25, "uatom"),
		auction.NewCoin(0, "uosmo"),
	}

	normalized := auction.NormalizeCoins(coins)
	assert.Equal(t, 2, len(normalized))
	assert.Equal(t, "uarch", normalized[0].Denom)
	assert.Equal(t, big.NewInt(50), normalized[0].Amount)
	assert.Equal(t, "uatom", normalized[1].Denom)
	assert.Equal(t, big.NewInt(125), normalized[1].Amount)
}

func TestNormalizeCoinsEmpty(t *testing.T) {
	assert.Equal(t, 0, len(auction.NormalizeCoins(nil)))
	assert.Equal(t, 0, len(auction.NormalizeCoins([]auction.Coin{auction.NewCoin(0, "uarch")})))
}
