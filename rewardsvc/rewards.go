// Copyright (c) 2023 The Archworks developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package rewardsvc

import (
	"github.com/archworks/auctionhouse/auction"
)

// Record is one accrual entry held for the contract by the rewards module.
type Record struct {
	ID      uint64
	Rewards []auction.Coin
}

// OutstandingRewards is the normalized pending balance plus record count.
type OutstandingRewards struct {
	Balance      []auction.Coin
	TotalRecords uint64
}

// Provider is the query side of the external rewards module.
type Provider interface {
	RewardsRecords(contract auction.Address) ([]Record, error)
}

// Outstanding flattens the record coins into one normalized balance.
func Outstanding(p Provider, contract auction.Address) (*OutstandingRewards, error) {
	records, err := p.RewardsRecords(contract)
	if err != nil {
		return nil, err
	}
	coins := make([]auction.Coin, 0)
	for _, r := range records {
		coins = append(coins, r.Rewards...)
	}
	return &OutstandingRewards{
		Balance:      auction.NormalizeCoins(coins),
		TotalRecords: uint64(len(records)),
	}, nil
}

// MemProvider is an in-memory Provider for tests and solo runs.
type MemProvider struct {
	records map[auction.Address][]Record
}

func NewMemProvider() *MemProvider {
	return &MemProvider{records: make(map[auction.Address][]Record)}
}

func (p *MemProvider) RewardsRecords(contract auction.Address) ([]Record, error) {
	return p.records[contract], nil
}

// AddRecord accrues a reward record for the contract.
func (p *MemProvider) AddRecord(contract auction.Address, rewards ...auction.Coin) {
	id := uint64(len(p.records[contract]) + 1)
	p.records[contract] = append(p.records[contract], Record{ID: id, Rewards: rewards})
}
