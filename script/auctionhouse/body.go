// Copyright (c) 2023 The Archworks developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auctionhouse

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/archworks/auctionhouse/auction"
)

// AuctionHouseBody is the rlp-decoded payload of one auction house call.
// Which fields are meaningful depends on the opcode: MinBid/BuyoutPrice/Denom
// only on create, Address only on the owner and rewards ops.
type AuctionHouseBody struct {
	Opcode      uint32
	Version     uint32
	Option      uint32
	Collection  string
	AssetID     auction.Bytes32
	MinBid      *big.Int
	BuyoutPrice *big.Int
	Denom       string
	Address     auction.Address
	Timestamp   uint64
	Nonce       uint64
}

func (ab *AuctionHouseBody) ToString() string {
	return fmt.Sprintf("AuctionHouseBody: Opcode=%v, Version=%v, Option=%v, Collection=%v, AssetID=%v, MinBid=%v, BuyoutPrice=%v, Denom=%v, Address=%v, Timestamp=%v, Nonce=%v",
		ab.Opcode, ab.Version, ab.Option, ab.Collection, ab.AssetID.AbbrevString(), ab.MinBid, ab.BuyoutPrice, ab.Denom, ab.Address.String(), ab.Timestamp, ab.Nonce)
}

func (ab *AuctionHouseBody) String() string {
	return ab.ToString()
}

func (ab *AuctionHouseBody) GetOpName(op uint32) string {
	return GetOpName(op)
}

func EncodeBytes(ab *AuctionHouseBody) []byte {
	bodyBytes, err := rlp.EncodeToBytes(ab)
	if err != nil {
		log.Error("rlp encode failed", "error", err)
		return []byte{}
	}
	return bodyBytes
}

func DecodeFromBytes(bytes []byte) (*AuctionHouseBody, error) {
	ab := AuctionHouseBody{}
	err := rlp.DecodeBytes(bytes, &ab)
	return &ab, err
}

func (ab *AuctionHouseBody) UniteHash() (hash auction.Bytes32) {
	hw := auction.NewBlake2b()
	err := rlp.Encode(hw, []interface{}{
		ab.Opcode,
		ab.Version,
		ab.Option,
		ab.Collection,
		ab.AssetID,
		ab.MinBid,
		ab.BuyoutPrice,
		ab.Denom,
		ab.Address,
	})
	if err != nil {
		return
	}

	hw.Sum(hash[:0])
	return
}
