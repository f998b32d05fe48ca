package auctionhouse

import (
	"time"

	"github.com/archworks/auctionhouse/auction"
	setypes "github.com/archworks/auctionhouse/script/types"
	"github.com/archworks/auctionhouse/tx"
)

// The rewards operations are thin pass-throughs to the external rewards
// module: authorize, then hand the host an instruction.

func (a *AuctionHouse) HandleUpdateRewardsAddress(env *setypes.ScriptEnv, ab *AuctionHouseBody, gas uint64) (leftOverGas uint64, err error) {
	var ret []byte
	start := time.Now()
	defer func() {
		if err != nil {
			ret = []byte(err.Error())
		}
		env.SetReturnData(ret)
		a.logger.Debug("update rewards address completed", "elapsed", time.Since(start))
	}()
	state := env.GetState()
	caller := env.GetTxCtx().Origin

	if gas < auction.ClauseGas {
		leftOverGas = 0
	} else {
		leftOverGas = gas - auction.ClauseGas
	}

	ownerSet := state.GetOwnerSet()
	if err = a.authorize(ownerSet, caller); err != nil {
		a.logger.Info("update rewards address not authorized", "caller", caller)
		return
	}

	state.SetRewardsAddress(ab.Address)
	env.AddRewardsOp(tx.RewardsOpUpdateAddress, ab.Address)
	env.AddEvent(auction.AuctionHouseModuleAddr, []auction.Bytes32{methodTopic("update_rewards_address")}, ab.Address.Bytes())
	a.logger.Info("updated rewards address", "address", ab.Address, "caller", caller)
	return
}

func (a *AuctionHouse) HandleWithdrawRewards(env *setypes.ScriptEnv, ab *AuctionHouseBody, gas uint64) (leftOverGas uint64, err error) {
	var ret []byte
	start := time.Now()
	defer func() {
		if err != nil {
			ret = []byte(err.Error())
		}
		env.SetReturnData(ret)
		a.logger.Debug("withdraw rewards completed", "elapsed", time.Since(start))
	}()
	state := env.GetState()
	caller := env.GetTxCtx().Origin

	if gas < auction.ClauseGas {
		leftOverGas = 0
	} else {
		leftOverGas = gas - auction.ClauseGas
	}

	ownerSet := state.GetOwnerSet()
	if err = a.authorize(ownerSet, caller); err != nil {
		a.logger.Info("withdraw rewards not authorized", "caller", caller)
		return
	}

	env.AddRewardsOp(tx.RewardsOpWithdraw, state.GetRewardsAddress())
	env.AddEvent(auction.AuctionHouseModuleAddr, []auction.Bytes32{methodTopic("withdraw_rewards")}, caller.Bytes())
	a.logger.Info("requested rewards withdrawal", "caller", caller)
	return
}
