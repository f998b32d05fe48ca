package auctionhouse

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/archworks/auctionhouse/api/utils"
	"github.com/archworks/auctionhouse/auction"
	"github.com/archworks/auctionhouse/rewardsvc"
	"github.com/archworks/auctionhouse/script/auctionhouse"
)

type AuctionHouse struct {
	rewards rewardsvc.Provider
}

func New(rewards rewardsvc.Provider) *AuctionHouse {
	return &AuctionHouse{rewards: rewards}
}

func (ah *AuctionHouse) handleGetOpenAuctions(w http.ResponseWriter, req *http.Request) error {
	list, err := auctionhouse.GetOpenListings()
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, convertListingList(list))
}

func (ah *AuctionHouse) handleGetAuctionByID(w http.ResponseWriter, req *http.Request) error {
	list, err := auctionhouse.GetOpenListings()
	if err != nil {
		return err
	}
	id := mux.Vars(req)["id"]
	bytes, err := auction.ParseBytes32(id)
	if err != nil {
		return utils.BadRequest(err)
	}
	listing := list.Get(bytes)
	if listing == nil {
		return utils.HTTPError(auctionhouse.ErrNoAuction, http.StatusNotFound)
	}
	return utils.WriteJSON(w, convertListing(*listing))
}

func (ah *AuctionHouse) handleGetMetadata(w http.ResponseWriter, req *http.Request) error {
	ownerSet, err := auctionhouse.GetOwnerSet()
	if err != nil {
		return err
	}
	rewardsAddr, err := auctionhouse.GetRewardsAddress()
	if err != nil {
		return err
	}
	owners := make([]string, 0)
	for _, o := range ownerSet.ToList() {
		owners = append(owners, o.String())
	}
	return utils.WriteJSON(w, &Metadata{Owners: owners, RewardsAddress: rewardsAddr.String()})
}

func (ah *AuctionHouse) handleGetOutstandingRewards(w http.ResponseWriter, req *http.Request) error {
	outstanding, err := rewardsvc.Outstanding(ah.rewards, auction.AuctionHouseModuleAddr)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, convertOutstanding(outstanding))
}

func (ah *AuctionHouse) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()
	sub.Path("/auctions").Methods("Get").HandlerFunc(utils.WrapHandlerFunc(ah.handleGetOpenAuctions))
	sub.Path("/auctions/{id}").Methods("Get").HandlerFunc(utils.WrapHandlerFunc(ah.handleGetAuctionByID))
	sub.Path("/metadata").Methods("Get").HandlerFunc(utils.WrapHandlerFunc(ah.handleGetMetadata))
	sub.Path("/rewards/outstanding").Methods("Get").HandlerFunc(utils.WrapHandlerFunc(ah.handleGetOutstandingRewards))
}
