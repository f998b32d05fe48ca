// Copyright (c) 2023 The Archworks developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
)

// Listing indicates the structure of one open auction.
type Listing struct {
	AssetID       Bytes32
	Collection    string
	Owner         Address
	MinBid        Coin
	BuyoutPrice   Coin
	CurrentBid    *Coin    `rlp:"nil"`
	CurrentBidder *Address `rlp:"nil"`
	CreateTime    uint64
	EndTime       uint64
}

func NewListing(assetID Bytes32, collection string, owner Address, minBid, buyoutPrice Coin, createTime uint64) *Listing {
	return &Listing{
		AssetID:     assetID,
		Collection:  collection,
		Owner:       owner,
		MinBid:      minBid,
		BuyoutPrice: buyoutPrice,
		CreateTime:  createTime,
		EndTime:     createTime + AuctionDuration,
	}
}

// ListingID derives the registry key for an asset. AssetID and collection
// are unique together, so both feed the hash.
func ListingID(collection string, assetID Bytes32) Bytes32 {
	return Blake2b([]byte(collection), assetID.Bytes())
}

func (l *Listing) ID() Bytes32 {
	return ListingID(l.Collection, l.AssetID)
}

// HasBid reports whether a current bid is recorded. CurrentBid and
// CurrentBidder are always both present or both absent.
func (l *Listing) HasBid() bool {
	return l.CurrentBid != nil && l.CurrentBidder != nil
}

// Expired reports whether the listing is past its end time.
func (l *Listing) Expired(now uint64) bool {
	return now > l.EndTime
}

func (l *Listing) ToString() string {
	bid := "none"
	bidder := "none"
	if l.HasBid() {
		bid = l.CurrentBid.String()
		bidder = l.CurrentBidder.String()
	}
	return fmt.Sprintf("Listing(%v) Asset=%v, Collection=%v, Owner=%v, MinBid=%v, BuyoutPrice=%v, CurrentBid=%v, CurrentBidder=%v, EndTime=%v",
		l.ID().AbbrevString(), l.AssetID.AbbrevString(), l.Collection, l.Owner, l.MinBid.String(), l.BuyoutPrice.String(), bid, bidder, l.EndTime)
}

type ListingList struct {
	Listings []*Listing
}

func NewListingList(listings []*Listing) *ListingList {
	if listings == nil {
		listings = make([]*Listing, 0)
	}
	sort.SliceStable(listings, func(i, j int) bool {
		return bytes.Compare(listings[i].ID().Bytes(), listings[j].ID().Bytes()) <= 0
	})
	return &ListingList{Listings: listings}
}

func (ll *ListingList) indexOf(id Bytes32) (int, int) {
	// return values:
	//     first parameter: if found, the index of the item
	//     second parameter: if not found, the correct insert index of the item
	if len(ll.Listings) <= 0 {
		return -1, 0
	}
	l := 0
	r := len(ll.Listings)
	for l < r {
		m := (l + r) / 2
		cmp := bytes.Compare(id.Bytes(), ll.Listings[m].ID().Bytes())
		if cmp < 0 {
			r = m
		} else if cmp > 0 {
			l = m + 1
		} else {
			return m, -1
		}
	}
	return -1, r
}

func (ll *ListingList) Get(id Bytes32) *Listing {
	index, _ := ll.indexOf(id)
	if index < 0 {
		return nil
	}
	return ll.Listings[index]
}

func (ll *ListingList) Exist(id Bytes32) bool {
	index, _ := ll.indexOf(id)
	return index >= 0
}

func (ll *ListingList) Add(l *Listing) {
	index, insertIndex := ll.indexOf(l.ID())
	if index < 0 {
		if len(ll.Listings) == 0 {
			ll.Listings = append(ll.Listings, l)
			return
		}
		newList := make([]*Listing, insertIndex)
		copy(newList, ll.Listings[:insertIndex])
		newList = append(newList, l)
		newList = append(newList, ll.Listings[insertIndex:]...)
		ll.Listings = newList
	} else {
		ll.Listings[index] = l
	}
}

func (ll *ListingList) Remove(id Bytes32) {
	index, _ := ll.indexOf(id)
	if index >= 0 {
		ll.Listings = append(ll.Listings[:index], ll.Listings[index+1:]...)
	}
}

func (ll *ListingList) Count() int {
	return len(ll.Listings)
}

func (ll *ListingList) ToString() string {
	if ll == nil || len(ll.Listings) == 0 {
		return "ListingList (size:0)"
	}
	s := []string{fmt.Sprintf("ListingList (size:%v) {", len(ll.Listings))}
	for i, l := range ll.Listings {
		s = append(s, fmt.Sprintf("  %d.%v", i, l.ToString()))
	}
	s = append(s, "}")
	return strings.Join(s, "\n")
}

func (ll *ListingList) ToList() []Listing {
	result := make([]Listing, 0)
	for _, v := range ll.Listings {
		result = append(result, *v)
	}
	return result
}
