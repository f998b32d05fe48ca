package auctionhouse

import (
	"time"

	"github.com/pkg/errors"

	"github.com/archworks/auctionhouse/auction"
	setypes "github.com/archworks/auctionhouse/script/types"
)

func (a *AuctionHouse) HandleBuyout(env *setypes.ScriptEnv, ab *AuctionHouseBody, gas uint64) (leftOverGas uint64, err error) {
	var ret []byte
	start := time.Now()
	defer func() {
		if err != nil {
			ret = []byte(err.Error())
		}
		env.SetReturnData(ret)
		a.logger.Debug("buyout completed", "elapsed", time.Since(start))
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
		a.logger.Info("buyout on unknown auction", "listing", id.AbbrevString())
		err = ErrNoAuction
		return
	}

	if listing.Expired(now) {
		a.logger.Info("buyout after end time", "listing", id.AbbrevString(), "now", now, "endTime", listing.EndTime)
		err = ErrAuctionFinished
		return
	}

	denom := listing.BuyoutPrice.Denom
	amount := auction.FindCoin(env.GetTxCtx().Funds, denom)
	if amount == nil {
		a.logger.Info("no funds attached in auction denom", "denom", denom, "buyer", caller)
		err = ErrNoFunds
		return
	}

	if amount.Cmp(listing.BuyoutPrice.Amount) < 0 {
		a.logger.Info("amount below buyout price", "amount", amount, "buyoutPrice", listing.BuyoutPrice.Amount)
		err = ErrPriceNotMet
		return
	}

	if listing.HasBid() {
		prevBidder := *listing.CurrentBidder
		prevAmount := listing.CurrentBid.Amount
		if rerr := env.RefundBid(prevBidder, prevAmount, denom); rerr != nil {
			a.logger.Error("error happened during buyout refund", "address", prevBidder, "err", rerr)
			err = errors.Wrap(rerr, "refund outbid bidder")
			return
		}
	}

	env.EscrowBid(caller, amount, denom)
	if perr := env.PayProceeds(listing.Owner, amount, denom); perr != nil {
		err = errors.Wrap(perr, "pay buyout proceeds")
		return
	}
	env.AddAssetTransfer(listing.Collection, listing.AssetID, auction.AuctionHouseModuleAddr, caller)

	listingList.Remove(id)
	state.SetListingList(listingList)
	env.AddEvent(auction.AuctionHouseModuleAddr, []auction.Bytes32{methodTopic("buyout"), id}, caller.Bytes())
	a.logger.Info("buyout settled", "listing", id.AbbrevString(), "buyer", caller, "amount", amount)
	return
}
