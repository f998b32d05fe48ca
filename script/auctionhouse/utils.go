package auctionhouse

import (
	"errors"

	"github.com/archworks/auctionhouse/auction"
)

//  api routine interface
func GetOpenListings() (*auction.ListingList, error) {
	ah := GetAuctionHouseGlobInst()
	if ah == nil {
		log.Warn("auction house is not initialized...")
		return auction.NewListingList(nil), errors.New("auction house is not initialized")
	}

	state, err := ah.stateCreator.NewState()
	if err != nil {
		return auction.NewListingList(nil), err
	}

	return state.GetListingList(), nil
}

// api routine interface
func GetOwnerSet() (*auction.OwnerSet, error) {
	ah := GetAuctionHouseGlobInst()
	if ah == nil {
		log.Warn("auction house is not initialized...")
		return auction.NewOwnerSet(nil), errors.New("auction house is not initialized")
	}

	state, err := ah.stateCreator.NewState()
	if err != nil {
		return auction.NewOwnerSet(nil), err
	}

	return state.GetOwnerSet(), nil
}

// api routine interface
func GetRewardsAddress() (auction.Address, error) {
	ah := GetAuctionHouseGlobInst()
	if ah == nil {
		log.Warn("auction house is not initialized...")
		return auction.Address{}, errors.New("auction house is not initialized")
	}

	state, err := ah.stateCreator.NewState()
	if err != nil {
		return auction.Address{}, err
	}

	return state.GetRewardsAddress(), nil
}
