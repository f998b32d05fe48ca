package auctionhouse

import (
	"time"

	"github.com/pkg/errors"

	"github.com/archworks/auctionhouse/auction"
	"github.com/archworks/auctionhouse/nftreg"
	setypes "github.com/archworks/auctionhouse/script/types"
)

func (a *AuctionHouse) HandleCreateAuction(env *setypes.ScriptEnv, ab *AuctionHouseBody, gas uint64) (leftOverGas uint64, err error) {
	var ret []byte
	start := time.Now()
	defer func() {
		if err != nil {
			ret = []byte(err.Error())
		}
		env.SetReturnData(ret)
		a.logger.Debug("create auction completed", "elapsed", time.Since(start))
	}()
	state := env.GetState()
	caller := env.GetTxCtx().Origin
	now := env.GetBlockCtx().Time

	if gas < auction.ClauseGas {
		leftOverGas = 0
	} else {
		leftOverGas = gas - auction.ClauseGas
	}

	ownerSet := state.GetOwnerSet()
	if err = a.authorize(ownerSet, caller); err != nil {
		a.logger.Info("create auction not authorized", "caller", caller)
		return
	}

	// the NFT must already sit in module custody, listing someone else's
	// asset is not possible
	holder, aerr := a.assets.OwnerOf(ab.Collection, ab.AssetID)
	if aerr != nil {
		if errors.Is(aerr, nftreg.ErrUnknownAsset) {
			err = ErrNoNFT
			return
		}
		err = errors.Wrap(aerr, "query asset registry")
		return
	}
	if holder != auction.AuctionHouseModuleAddr {
		a.logger.Info("asset not held by auction house", "collection", ab.Collection, "asset", ab.AssetID, "holder", holder)
		err = ErrNoNFT
		return
	}

	listingList := state.GetListingList()
	id := auction.ListingID(ab.Collection, ab.AssetID)
	if listingList.Exist(id) {
		a.logger.Info("auction already exists", "listing", id.AbbrevString())
		err = ErrAuctionExists
		return
	}

	listing := auction.NewListing(
		ab.AssetID,
		ab.Collection,
		caller,
		auction.Coin{Denom: ab.Denom, Amount: ab.MinBid},
		auction.Coin{Denom: ab.Denom, Amount: ab.BuyoutPrice},
		now,
	)
	listingList.Add(listing)

	state.SetListingList(listingList)
	env.AddEvent(auction.AuctionHouseModuleAddr, []auction.Bytes32{methodTopic("create_auction"), id}, caller.Bytes())
	a.logger.Info("created auction", "listing", listing.ToString())
	return
}
