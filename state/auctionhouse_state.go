// Copyright (c) 2023 The Archworks developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/archworks/auctionhouse/auction"
)

// Listing List
func (s *State) GetListingList() (result *auction.ListingList) {
	s.DecodeStorage(auction.AuctionHouseModuleAddr, auction.ListingListKey, func(raw []byte) error {
		listings := make([]*auction.Listing, 0)

		if len(strings.TrimSpace(string(raw))) >= 0 {
			err := rlp.Decode(bytes.NewReader(raw), &listings)
			if err != nil {
				if err.Error() == "EOF" && len(raw) == 0 {
					// EOF is caused by no value, is not error case, so returns with empty slice
				} else {
					fmt.Println("Error during decoding listing list", "err", err)
					return err
				}
			}
		}

		result = auction.NewListingList(listings)
		return nil
	})
	return
}

func (s *State) SetListingList(listingList *auction.ListingList) {
	s.EncodeStorage(auction.AuctionHouseModuleAddr, auction.ListingListKey, func() ([]byte, error) {
		return rlp.EncodeToBytes(listingList.Listings)
	})
}

// Owner Set
func (s *State) GetOwnerSet() (result *auction.OwnerSet) {
	s.DecodeStorage(auction.AuctionHouseModuleAddr, auction.OwnerSetKey, func(raw []byte) error {
		owners := make([]auction.Address, 0)

		if len(strings.TrimSpace(string(raw))) >= 0 {
			err := rlp.Decode(bytes.NewReader(raw), &owners)
			if err != nil {
				if err.Error() == "EOF" && len(raw) == 0 {
					// EOF is caused by no value, is not error case, so returns with empty slice
				} else {
					fmt.Println("Error during decoding owner set", "err", err)
					return err
				}
			}
		}

		result = auction.NewOwnerSet(owners)
		return nil
	})
	return
}

func (s *State) SetOwnerSet(ownerSet *auction.OwnerSet) {
	s.EncodeStorage(auction.AuctionHouseModuleAddr, auction.OwnerSetKey, func() ([]byte, error) {
		return rlp.EncodeToBytes(ownerSet.Owners)
	})
}

// Rewards Address
func (s *State) GetRewardsAddress() (result auction.Address) {
	s.DecodeStorage(auction.AuctionHouseModuleAddr, auction.RewardsAddrKey, func(raw []byte) error {
		if len(raw) == 0 {
			result = auction.Address{}
			return nil
		}
		var addr auction.Address
		if err := rlp.Decode(bytes.NewReader(raw), &addr); err != nil {
			fmt.Println("Error during decoding rewards address", "err", err)
			return err
		}
		result = addr
		return nil
	})
	return
}

func (s *State) SetRewardsAddress(addr auction.Address) {
	s.EncodeStorage(auction.AuctionHouseModuleAddr, auction.RewardsAddrKey, func() ([]byte, error) {
		return rlp.EncodeToBytes(addr)
	})
}
