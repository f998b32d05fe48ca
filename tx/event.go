// Copyright (c) 2023 The Archworks developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"github.com/archworks/auctionhouse/auction"
)

// Event is an attribution record emitted alongside a committed transition.
type Event struct {
	Address auction.Address
	Topics  []auction.Bytes32
	Data    []byte
}

// Events slice of event records.
type Events []*Event
