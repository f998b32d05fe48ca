// Copyright (c) 2023 The Archworks developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package xenv

import (
	"fmt"

	"github.com/archworks/auctionhouse/auction"
)

// BlockContext block context. Time is the only clock the engine ever sees,
// expiry is judged lazily against it.
type BlockContext struct {
	Number uint32
	Time   uint64
}

// TransactionContext transaction context. Funds carries the payment attached
// to the call, already collected into module custody by the host.
type TransactionContext struct {
	ID     auction.Bytes32
	Origin auction.Address
	Nonce  uint64
	Funds  []auction.Coin
}

func (ctx *TransactionContext) String() string {
	return fmt.Sprintf("txCtx{ID:%s Origin:%s Nonce:%d Funds:%v}", ctx.ID.String(), ctx.Origin.String(), ctx.Nonce, ctx.Funds)
}
