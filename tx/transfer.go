// Copyright (c) 2023 The Archworks developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"math/big"

	"github.com/archworks/auctionhouse/auction"
)

// Transfer is an outbound fund-movement instruction. The host executes it
// after the engine returns; if execution fails the host rolls back the
// whole call including the state mutation.
type Transfer struct {
	Sender    auction.Address
	Recipient auction.Address
	Amount    *big.Int
	Denom     string
}

// Transfers slice of transfer instructions.
type Transfers []*Transfer
