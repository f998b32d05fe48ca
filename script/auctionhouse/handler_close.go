package auctionhouse

import (
	"time"

	"github.com/pkg/errors"

	"github.com/archworks/auctionhouse/auction"
	setypes "github.com/archworks/auctionhouse/script/types"
)

// HandleClose drives the terminal state machine of a listing. Who may close
// and what settles depends on three things: whether a bid is recorded,
// whether the end time passed, and who is calling.
//
//	no bid,  any time,  owner          -> return asset to owner
//	no bid,  any time,  not owner      -> Unauthorized
//	bid,     not ended, owner          -> accept the current bid early
//	bid,     not ended, not owner      -> Unauthorized
//	bid,     ended,     owner | winner -> settle
//	bid,     ended,     anyone else    -> CannotClose
func (a *AuctionHouse) HandleClose(env *setypes.ScriptEnv, ab *AuctionHouseBody, gas uint64) (leftOverGas uint64, err error) {
	var ret []byte
	start := time.Now()
	defer func() {
		if err != nil {
			ret = []byte(err.Error())
		}
		env.SetReturnData(ret)
		a.logger.Debug("close completed", "elapsed", time.Since(start))
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
		a.logger.Info("close on unknown auction", "listing", id.AbbrevString())
		err = ErrNoAuction
		return
	}

	isOwner := caller == listing.Owner

	if !listing.HasBid() {
		if !isOwner {
			a.logger.Info("close without bid by non-owner", "listing", id.AbbrevString(), "caller", caller)
			err = ErrUnauthorized
			return
		}
		// nothing to settle, hand the asset back
		env.AddAssetTransfer(listing.Collection, listing.AssetID, auction.AuctionHouseModuleAddr, listing.Owner)
		listingList.Remove(id)
		state.SetListingList(listingList)
		env.AddEvent(auction.AuctionHouseModuleAddr, []auction.Bytes32{methodTopic("close"), id}, caller.Bytes())
		a.logger.Info("cancelled auction without bids", "listing", id.AbbrevString())
		return
	}

	winner := *listing.CurrentBidder
	isWinner := caller == winner

	if !listing.Expired(now) {
		if !isOwner {
			a.logger.Info("early close by non-owner", "listing", id.AbbrevString(), "caller", caller)
			err = ErrUnauthorized
			return
		}
	} else if !isOwner && !isWinner {
		a.logger.Info("expired close by stranger", "listing", id.AbbrevString(), "caller", caller)
		err = ErrCannotClose
		return
	}

	denom := listing.CurrentBid.Denom
	if perr := env.PayProceeds(listing.Owner, listing.CurrentBid.Amount, denom); perr != nil {
		err = errors.Wrap(perr, "pay close proceeds")
		return
	}
	env.AddAssetTransfer(listing.Collection, listing.AssetID, auction.AuctionHouseModuleAddr, winner)

	listingList.Remove(id)
	state.SetListingList(listingList)
	env.AddEvent(auction.AuctionHouseModuleAddr,
		[]auction.Bytes32{methodTopic("close"), id},
		append(winner.Bytes(), caller.Bytes()...))
	a.logger.Info("settled auction", "listing", id.AbbrevString(), "winner", winner, "amount", listing.CurrentBid.Amount)
	return
}
