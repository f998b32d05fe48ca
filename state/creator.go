// Copyright (c) 2023 The Archworks developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"github.com/archworks/auctionhouse/kv"
)

// Creator state creator to cut-off kv dependency.
type Creator struct {
	store kv.Store
}

// NewCreator create a new state creator.
func NewCreator(store kv.Store) *Creator {
	return &Creator{store: store}
}

// NewState create a new state object backed by the creator's store.
func (c *Creator) NewState() (*State, error) {
	return newState(c.store), nil
}
