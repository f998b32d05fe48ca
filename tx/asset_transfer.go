// Copyright (c) 2023 The Archworks developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"github.com/archworks/auctionhouse/auction"
)

// AssetTransfer is an outbound NFT custody-move instruction, executed by the
// external asset registry through the host.
type AssetTransfer struct {
	Collection string
	AssetID    auction.Bytes32
	From       auction.Address
	To         auction.Address
}

// AssetTransfers slice of asset-transfer instructions.
type AssetTransfers []*AssetTransfer

// RewardsOpKind enumerates the pass-through instructions for the external
// rewards module.
type RewardsOpKind uint32

const (
	RewardsOpUpdateAddress = RewardsOpKind(1)
	RewardsOpWithdraw      = RewardsOpKind(2)
)

// RewardsOp is an outbound instruction for the rewards module.
type RewardsOp struct {
	Kind    RewardsOpKind
	Address auction.Address
}

// RewardsOps slice of rewards instructions.
type RewardsOps []*RewardsOp
