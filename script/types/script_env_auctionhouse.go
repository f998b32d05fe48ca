package types

// Copyright (c) 2023 The Archworks developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/archworks/auctionhouse/auction"
)

// ==================== escrow account operations ===========================

// EscrowBid moves the attached funds into module custody. The host already
// collected the payment, the balance entry mirrors it for accounting.
func (env *ScriptEnv) EscrowBid(bidder auction.Address, amount *big.Int, denom string) {
	if amount.Sign() == 0 {
		return
	}
	state := env.GetState()
	state.AddBalance(auction.AuctionHouseModuleAddr, denom, amount)
	env.AddTransfer(bidder, auction.AuctionHouseModuleAddr, amount, denom)
}

// RefundBid returns a superseded bid from module custody to its bidder.
func (env *ScriptEnv) RefundBid(bidder auction.Address, amount *big.Int, denom string) error {
	if amount.Sign() == 0 {
		return nil
	}
	state := env.GetState()
	if !state.SubBalance(auction.AuctionHouseModuleAddr, denom, amount) {
		return errors.New("not enough escrow balance")
	}
	env.AddTransfer(auction.AuctionHouseModuleAddr, bidder, amount, denom)
	return nil
}

// PayProceeds settles auction proceeds from module custody to the listing owner.
func (env *ScriptEnv) PayProceeds(owner auction.Address, amount *big.Int, denom string) error {
	if amount.Sign() == 0 {
		return nil
	}
	state := env.GetState()
	if !state.SubBalance(auction.AuctionHouseModuleAddr, denom, amount) {
		return errors.New("not enough escrow balance")
	}
	env.AddTransfer(auction.AuctionHouseModuleAddr, owner, amount, denom)
	return nil
}
