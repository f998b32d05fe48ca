// Copyright (c) 2023 The Archworks developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"github.com/pkg/errors"

	"github.com/archworks/auctionhouse/auction"
)

// Stage abstracts the changes ready to be committed.
type Stage struct {
	state *State
}

// Commit commits the staged changes to the kv store in one batch.
func (stg *Stage) Commit() error {
	s := stg.state
	if s.err != nil {
		return errors.Wrap(s.err, "commit state")
	}
	batch := s.sta.NewBatch()
	for _, slot := range s.order {
		if err := batch.Put(slot.Bytes(), s.changes[slot]); err != nil {
			return errors.Wrap(err, "commit state")
		}
	}
	if err := batch.Write(); err != nil {
		return errors.Wrap(err, "commit state")
	}
	s.changes = make(map[auction.Bytes32][]byte)
	s.order = s.order[:0]
	return nil
}
