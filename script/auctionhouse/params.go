// Copyright (c) 2023 The Archworks developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auctionhouse

const (
	OP_CREATE              = uint32(1)
	OP_BID                 = uint32(2)
	OP_BUYOUT              = uint32(3)
	OP_CLOSE               = uint32(4)
	OP_ADD_OWNER           = uint32(5)
	OP_REMOVE_OWNER        = uint32(6)
	OP_UPDATE_REWARDS_ADDR = uint32(7)
	OP_WITHDRAW_REWARDS    = uint32(8)
)

func GetOpName(op uint32) string {
	switch op {
	case OP_CREATE:
		return "CreateAuction"
	case OP_BID:
		return "Bid"
	case OP_BUYOUT:
		return "Buyout"
	case OP_CLOSE:
		return "Close"
	case OP_ADD_OWNER:
		return "AddOwner"
	case OP_REMOVE_OWNER:
		return "RemoveOwner"
	case OP_UPDATE_REWARDS_ADDR:
		return "UpdateRewardsAddress"
	case OP_WITHDRAW_REWARDS:
		return "WithdrawRewards"
	default:
		return "Unknown"
	}
}
