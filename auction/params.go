// Copyright (c) 2023 The Archworks developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

// the global variables of the auction house module
var (
	// AuctionHouseModuleAddr is the account holding escrowed bids and NFT custody.
	AuctionHouseModuleAddr = BytesToAddress([]byte("auction-house-module-address"))
	// RewardsModuleAddr is the external rewards module the withdraw instruction targets.
	RewardsModuleAddr = BytesToAddress([]byte("rewards-module-address"))

	ListingListKey = Blake2b([]byte("listing-list-key"))
	OwnerSetKey    = Blake2b([]byte("owner-set-key"))
	RewardsAddrKey = Blake2b([]byte("rewards-address-key"))
)

const (
	// AuctionDuration is the fixed lifetime of every listing in seconds.
	// Not configurable yet, every auction runs for 72 hours.
	AuctionDuration = uint64(72 * 60 * 60)

	// ClauseGas is charged for each handled call.
	ClauseGas = uint64(16000)
)
