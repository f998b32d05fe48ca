package auctionhouse

import (
	"github.com/archworks/auctionhouse/auction"
	"github.com/archworks/auctionhouse/rewardsvc"
)

type Coin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

type Listing struct {
	ID            string  `json:"id"`
	AssetID       string  `json:"assetID"`
	Collection    string  `json:"collection"`
	Owner         string  `json:"owner"`
	MinBid        Coin    `json:"minBid"`
	BuyoutPrice   Coin    `json:"buyoutPrice"`
	CurrentBid    *Coin   `json:"currentBid,omitempty"`
	CurrentBidder *string `json:"currentBidder,omitempty"`
	CreateTime    uint64  `json:"createTime"`
	EndTime       uint64  `json:"endTime"`
}

type Metadata struct {
	Owners         []string `json:"owners"`
	RewardsAddress string   `json:"rewardsAddress"`
}

type OutstandingRewards struct {
	Balance      []Coin `json:"balance"`
	TotalRecords uint64 `json:"totalRecords"`
}

func convertCoin(c auction.Coin) Coin {
	amount := "0"
	if c.Amount != nil {
		amount = c.Amount.String()
	}
	return Coin{Denom: c.Denom, Amount: amount}
}

func convertListing(l auction.Listing) *Listing {
	converted := &Listing{
		ID:          l.ID().String(),
		AssetID:     l.AssetID.String(),
		Collection:  l.Collection,
		Owner:       l.Owner.String(),
		MinBid:      convertCoin(l.MinBid),
		BuyoutPrice: convertCoin(l.BuyoutPrice),
		CreateTime:  l.CreateTime,
		EndTime:     l.EndTime,
	}
	if l.HasBid() {
		bid := convertCoin(*l.CurrentBid)
		bidder := l.CurrentBidder.String()
		converted.CurrentBid = &bid
		converted.CurrentBidder = &bidder
	}
	return converted
}

func convertListingList(list *auction.ListingList) []*Listing {
	listings := make([]*Listing, 0)
	for _, l := range list.ToList() {
		listings = append(listings, convertListing(l))
	}
	return listings
}

func convertOutstanding(o *rewardsvc.OutstandingRewards) *OutstandingRewards {
	balance := make([]Coin, 0)
	for _, c := range o.Balance {
		balance = append(balance, convertCoin(c))
	}
	return &OutstandingRewards{Balance: balance, TotalRecords: o.TotalRecords}
}
