// Copyright (c) 2023 The Archworks developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auctionhouse

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/archworks/auctionhouse/auction"
	"github.com/archworks/auctionhouse/nftreg"
	setypes "github.com/archworks/auctionhouse/script/types"
	"github.com/archworks/auctionhouse/state"
)

var (
	AuctionHouseGlobInst *AuctionHouse
	log                  = slog.Default().With("pkg", "auctionhouse")
)

// AuctionHouse is the lifecycle engine module. It holds no auction state of
// its own, every call loads the registry from state and stores it back.
type AuctionHouse struct {
	stateCreator *state.Creator
	assets       nftreg.Registry
	logger       *slog.Logger
}

func GetAuctionHouseGlobInst() *AuctionHouse {
	return AuctionHouseGlobInst
}

func SetAuctionHouseGlobInst(inst *AuctionHouse) {
	AuctionHouseGlobInst = inst
}

func NewAuctionHouse(sc *state.Creator, assets nftreg.Registry) *AuctionHouse {
	ah := &AuctionHouse{
		stateCreator: sc,
		assets:       assets,
		logger:       slog.Default().With("pkg", "auctionhouse"),
	}
	SetAuctionHouseGlobInst(ah)
	return ah
}

func (a *AuctionHouse) Start() error {
	a.logger.Info("auction house module started")
	return nil
}

// Handle dispatches one decoded call to its operation handler. The returned
// output bundles the new state's instructions; on error there is no output
// and nothing is committed.
func (a *AuctionHouse) Handle(env *setypes.ScriptEnv, payload []byte, to *auction.Address, gas uint64) (seOutput *setypes.ScriptEngineOutput, leftOverGas uint64, err error) {
	ab, err := DecodeFromBytes(payload)
	if err != nil {
		a.logger.Error("decode auction house body failed", "error", err)
		return nil, gas, err
	}

	a.logger.Debug("received auction house call", "body", ab.ToString())
	switch ab.Opcode {
	case OP_CREATE:
		leftOverGas, err = a.HandleCreateAuction(env, ab, gas)
	case OP_BID:
		leftOverGas, err = a.HandleBid(env, ab, gas)
	case OP_BUYOUT:
		leftOverGas, err = a.HandleBuyout(env, ab, gas)
	case OP_CLOSE:
		leftOverGas, err = a.HandleClose(env, ab, gas)
	case OP_ADD_OWNER:
		leftOverGas, err = a.HandleAddOwner(env, ab, gas)
	case OP_REMOVE_OWNER:
		leftOverGas, err = a.HandleRemoveOwner(env, ab, gas)
	case OP_UPDATE_REWARDS_ADDR:
		leftOverGas, err = a.HandleUpdateRewardsAddress(env, ab, gas)
	case OP_WITHDRAW_REWARDS:
		leftOverGas, err = a.HandleWithdrawRewards(env, ab, gas)
	default:
		a.logger.Error("unknown Opcode", "Opcode", ab.Opcode)
		return nil, gas, errors.New("unknown auction house opcode")
	}
	if err != nil {
		return nil, leftOverGas, err
	}
	if serr := env.GetState().Err(); serr != nil {
		// storage trouble is not a rejection, it is a host failure
		return nil, leftOverGas, errors.Wrap(serr, "auction house state")
	}
	return env.GetOutput(), leftOverGas, nil
}

// authorize is the capability check of every privileged operation.
func (a *AuctionHouse) authorize(ownerSet *auction.OwnerSet, caller auction.Address) error {
	if !ownerSet.Contains(caller) {
		return ErrUnauthorized
	}
	return nil
}

func methodTopic(method string) auction.Bytes32 {
	return auction.Blake2b([]byte(method))
}
