// Copyright (c) 2023 The Archworks developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package nftreg

import (
	"github.com/pkg/errors"

	"github.com/archworks/auctionhouse/auction"
)

var (
	ErrUnknownAsset = errors.New("unknown asset")
)

// Registry is the external asset-registry service. The engine only queries
// custody through it; custody moves travel as tx.AssetTransfer instructions
// executed by the host.
type Registry interface {
	// OwnerOf returns the account currently holding custody of the asset.
	OwnerOf(collection string, assetID auction.Bytes32) (auction.Address, error)
}

type assetKey struct {
	collection string
	assetID    auction.Bytes32
}

// MemRegistry is an in-memory Registry for tests and solo runs.
type MemRegistry struct {
	holders map[assetKey]auction.Address
}

func NewMemRegistry() *MemRegistry {
	return &MemRegistry{holders: make(map[assetKey]auction.Address)}
}

func (r *MemRegistry) OwnerOf(collection string, assetID auction.Bytes32) (auction.Address, error) {
	holder, ok := r.holders[assetKey{collection, assetID}]
	if !ok {
		return auction.Address{}, ErrUnknownAsset
	}
	return holder, nil
}

// SetOwner records custody of an asset, standing in for a mint or deposit.
func (r *MemRegistry) SetOwner(collection string, assetID auction.Bytes32, holder auction.Address) {
	r.holders[assetKey{collection, assetID}] = holder
}
