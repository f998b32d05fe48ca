// Copyright (c) 2023 The Archworks developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"math/big"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"

	"github.com/archworks/auctionhouse/auction"
	"github.com/archworks/auctionhouse/kv"
)

// State is the persistent contract state owned by the host. Reads fall
// through to the kv store, writes stay in memory until Stage().Commit().
// The host commits only when the whole call succeeded, so a transition is
// all-or-nothing.
type State struct {
	kv      kv.GetPutter
	sta     kv.Store
	changes map[auction.Bytes32][]byte
	order   []auction.Bytes32
	err     error
}

func newState(store kv.Store) *State {
	return &State{
		kv:      store,
		sta:     store,
		changes: make(map[auction.Bytes32][]byte),
		order:   make([]auction.Bytes32, 0),
	}
}

func (s *State) setError(err error) {
	if s.err == nil {
		s.err = err
	}
}

// Err returns the first error encountered while touching the kv store.
// Callers surface it as the wrapped host-failure category.
func (s *State) Err() error {
	return s.err
}

func storageKey(addr auction.Address, key auction.Bytes32) auction.Bytes32 {
	return auction.Blake2b(addr.Bytes(), key.Bytes())
}

func balanceKey(addr auction.Address, denom string) auction.Bytes32 {
	return auction.Blake2b(addr.Bytes(), []byte("balance-"), []byte(denom))
}

func (s *State) getRaw(slot auction.Bytes32) []byte {
	if raw, ok := s.changes[slot]; ok {
		return raw
	}
	raw, err := s.kv.Get(slot.Bytes())
	if err != nil {
		if s.sta != nil && s.sta.IsNotFound(err) {
			return []byte{}
		}
		s.setError(errors.Wrap(err, "get storage"))
		return []byte{}
	}
	return raw
}

func (s *State) setRaw(slot auction.Bytes32, raw []byte) {
	if _, ok := s.changes[slot]; !ok {
		s.order = append(s.order, slot)
	}
	s.changes[slot] = raw
}

// GetRawStorage returns the raw rlp blob stored at (addr, key).
func (s *State) GetRawStorage(addr auction.Address, key auction.Bytes32) rlp.RawValue {
	return s.getRaw(storageKey(addr, key))
}

// SetRawStorage stores a raw rlp blob at (addr, key).
func (s *State) SetRawStorage(addr auction.Address, key auction.Bytes32, raw rlp.RawValue) {
	s.setRaw(storageKey(addr, key), raw)
}

// EncodeStorage set storage value encoded by given enc method.
func (s *State) EncodeStorage(addr auction.Address, key auction.Bytes32, enc func() ([]byte, error)) {
	raw, err := enc()
	if err != nil {
		s.setError(errors.Wrap(err, "encode storage"))
		return
	}
	s.setRaw(storageKey(addr, key), raw)
}

// DecodeStorage get and decode storage value with the given dec method.
func (s *State) DecodeStorage(addr auction.Address, key auction.Bytes32, dec func([]byte) error) {
	raw := s.getRaw(storageKey(addr, key))
	if err := dec(raw); err != nil {
		s.setError(errors.Wrap(err, "decode storage"))
	}
}

// GetBalance returns the balance held by addr in the given denom.
func (s *State) GetBalance(addr auction.Address, denom string) *big.Int {
	raw := s.getRaw(balanceKey(addr, denom))
	if len(raw) == 0 {
		return big.NewInt(0)
	}
	var balance big.Int
	if err := rlp.DecodeBytes(raw, &balance); err != nil {
		s.setError(errors.Wrap(err, "decode balance"))
		return big.NewInt(0)
	}
	return &balance
}

// SetBalance sets the balance held by addr in the given denom.
func (s *State) SetBalance(addr auction.Address, denom string, balance *big.Int) {
	raw, err := rlp.EncodeToBytes(balance)
	if err != nil {
		s.setError(errors.Wrap(err, "encode balance"))
		return
	}
	s.setRaw(balanceKey(addr, denom), raw)
}

// AddBalance adds amount to the balance of addr in the given denom.
func (s *State) AddBalance(addr auction.Address, denom string, amount *big.Int) {
	if amount.Sign() == 0 {
		return
	}
	balance := s.GetBalance(addr, denom)
	s.SetBalance(addr, denom, new(big.Int).Add(balance, amount))
}

// SubBalance subtracts amount from the balance of addr in the given denom.
// Returns false without mutation if the balance is insufficient.
func (s *State) SubBalance(addr auction.Address, denom string, amount *big.Int) bool {
	if amount.Sign() == 0 {
		return true
	}
	balance := s.GetBalance(addr, denom)
	if balance.Cmp(amount) < 0 {
		return false
	}
	s.SetBalance(addr, denom, new(big.Int).Sub(balance, amount))
	return true
}

// Stage makes a stage object to compute the batch of staged changes.
func (s *State) Stage() *Stage {
	return &Stage{state: s}
}
