// Copyright (c) 2023 The Archworks developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package types

import (
	"math/big"

	"github.com/archworks/auctionhouse/auction"
	"github.com/archworks/auctionhouse/state"
	"github.com/archworks/auctionhouse/tx"
	"github.com/archworks/auctionhouse/xenv"
)

// ScriptEnv carries one call through the engine: the loaded state, the
// transaction/block context, and every outbound instruction the transition
// wants executed. Instructions and the state mutation commit together or
// not at all; the host enforces that.
type ScriptEnv struct {
	state    *state.State
	txCtx    *xenv.TransactionContext
	blockCtx *xenv.BlockContext
	toAddr   *auction.Address

	returnData     []byte
	transfers      []*tx.Transfer
	assetTransfers []*tx.AssetTransfer
	events         []*tx.Event
	rewardsOps     []*tx.RewardsOp
}

func NewScriptEnv(state *state.State, txCtx *xenv.TransactionContext, blockCtx *xenv.BlockContext, to *auction.Address) *ScriptEnv {
	return &ScriptEnv{
		state:          state,
		txCtx:          txCtx,
		blockCtx:       blockCtx,
		toAddr:         to,
		returnData:     make([]byte, 0),
		transfers:      make([]*tx.Transfer, 0),
		assetTransfers: make([]*tx.AssetTransfer, 0),
		events:         make([]*tx.Event, 0),
		rewardsOps:     make([]*tx.RewardsOp, 0),
	}
}

func (env *ScriptEnv) GetState() *state.State                { return env.state }
func (env *ScriptEnv) GetTxCtx() *xenv.TransactionContext    { return env.txCtx }
func (env *ScriptEnv) GetBlockCtx() *xenv.BlockContext       { return env.blockCtx }
func (env *ScriptEnv) GetToAddr() *auction.Address           { return env.toAddr }

func (env *ScriptEnv) SetReturnData(data []byte) {
	env.returnData = data
}

func (env *ScriptEnv) GetReturnData() []byte {
	if env.returnData == nil || len(env.returnData) <= 0 {
		return nil
	}
	return env.returnData
}

func (env *ScriptEnv) AddTransfer(sender, recipient auction.Address, amount *big.Int, denom string) {
	env.transfers = append(env.transfers, &tx.Transfer{
		Sender:    sender,
		Recipient: recipient,
		Amount:    amount,
		Denom:     denom,
	})
}

func (env *ScriptEnv) AddAssetTransfer(collection string, assetID auction.Bytes32, from, to auction.Address) {
	env.assetTransfers = append(env.assetTransfers, &tx.AssetTransfer{
		Collection: collection,
		AssetID:    assetID,
		From:       from,
		To:         to,
	})
}

func (env *ScriptEnv) AddEvent(address auction.Address, topics []auction.Bytes32, data []byte) {
	env.events = append(env.events, &tx.Event{
		Address: address,
		Topics:  topics,
		Data:    data,
	})
}

func (env *ScriptEnv) AddRewardsOp(kind tx.RewardsOpKind, addr auction.Address) {
	env.rewardsOps = append(env.rewardsOps, &tx.RewardsOp{
		Kind:    kind,
		Address: addr,
	})
}

func (env *ScriptEnv) GetTransfers() tx.Transfers {
	return env.transfers
}

func (env *ScriptEnv) GetAssetTransfers() tx.AssetTransfers {
	return env.assetTransfers
}

func (env *ScriptEnv) GetEvents() tx.Events {
	return env.events
}

func (env *ScriptEnv) GetRewardsOps() tx.RewardsOps {
	return env.rewardsOps
}

func (env *ScriptEnv) GetOutput() *ScriptEngineOutput {
	return &ScriptEngineOutput{
		data:           env.GetReturnData(),
		transfers:      env.transfers,
		assetTransfers: env.assetTransfers,
		events:         env.events,
		rewardsOps:     env.rewardsOps,
	}
}
