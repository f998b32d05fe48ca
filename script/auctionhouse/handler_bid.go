package auctionhouse

import (
	"time"

	"github.com/pkg/errors"

	"github.com/archworks/auctionhouse/auction"
	setypes "github.com/archworks/auctionhouse/script/types"
)

func (a *AuctionHouse) HandleBid(env *setypes.ScriptEnv, ab *AuctionHouseBody, gas uint64) (leftOverGas uint64, err error) {
	var ret []byte
	start := time.Now()
	defer func() {
		if err != nil {
			ret = []byte(err.Error())
		}
		env.SetReturnData(ret)
		a.logger.Debug("bid completed", "elapsed", time.Since(start))
	}()
	state := env.GetState()
	caller := env.GetTxCtx().Origin
	now := env.GetBlockCtx().Time

	if gas < auction.ClauseGas {
		leftOverGas = 0
	} else {
		leftOverGas = gas - auction.ClauseGas
	}

	listingList := state.GetListingList()
	id := auction.ListingID(ab.Collection, ab.AssetID)
	listing := listingList.Get(id)
	if listing == nil {
		a.logger.Info("bid on unknown auction", "listing", id.AbbrevString())
		err = ErrNoAuction
		return
	}

	if listing.Expired(now) {
		a.logger.Info("bid after end time", "listing", id.AbbrevString(), "now", now, "endTime", listing.EndTime)
		err = ErrAuctionFinished
		return
	}

	denom := listing.MinBid.Denom
	amount := auction.FindCoin(env.GetTxCtx().Funds, denom)
	if amount == nil {
		a.logger.Info("no funds attached in auction denom", "denom", denom, "bidder", caller)
		err = ErrNoFunds
		return
	}

	if amount.Cmp(listing.MinBid.Amount) < 0 {
		a.logger.Info("amount lower than minimum bid", "amount", amount, "minBid", listing.MinBid.Amount)
		err = ErrBidUnderMinimum
		return
	}

	if listing.HasBid() {
		// only strictly higher bids supersede
		if amount.Cmp(listing.CurrentBid.Amount) <= 0 {
			a.logger.Info("amount not above current bid", "amount", amount, "currentBid", listing.CurrentBid.Amount)
			err = ErrBidNotEnough
			return
		}
		prevBidder := *listing.CurrentBidder
		prevAmount := listing.CurrentBid.Amount
		if rerr := env.RefundBid(prevBidder, prevAmount, denom); rerr != nil {
			a.logger.Error("error happened during bid refund", "address", prevBidder, "err", rerr)
			err = errors.Wrap(rerr, "refund superseded bid")
			return
		}
		env.AddEvent(auction.AuctionHouseModuleAddr,
			[]auction.Bytes32{methodTopic("bid"), id},
			append(prevBidder.Bytes(), caller.Bytes()...))
	} else {
		env.AddEvent(auction.AuctionHouseModuleAddr,
			[]auction.Bytes32{methodTopic("bid"), id},
			caller.Bytes())
	}

	env.EscrowBid(caller, amount, denom)

	listing.CurrentBid = &auction.Coin{Denom: denom, Amount: amount}
	bidder := caller
	listing.CurrentBidder = &bidder

	state.SetListingList(listingList)
	a.logger.Info("accepted bid", "listing", id.AbbrevString(), "bidder", caller, "amount", amount)
	return
}
