package auctionhouse

import (
	"time"

	"github.com/archworks/auctionhouse/auction"
	setypes "github.com/archworks/auctionhouse/script/types"
)

func (a *AuctionHouse) HandleAddOwner(env *setypes.ScriptEnv, ab *AuctionHouseBody, gas uint64) (leftOverGas uint64, err error) {
	var ret []byte
	start := time.Now()
	defer func() {
		if err != nil {
			ret = []byte(err.Error())
		}
		env.SetReturnData(ret)
		a.logger.Debug("add owner completed", "elapsed", time.Since(start))
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
		a.logger.Info("add owner not authorized", "caller", caller)
		return
	}

	// adding a present member is a no-op, not an error
	ownerSet.Add(ab.Address)

	state.SetOwnerSet(ownerSet)
	env.AddEvent(auction.AuctionHouseModuleAddr, []auction.Bytes32{methodTopic("add_owner")}, ab.Address.Bytes())
	a.logger.Info("added owner", "owner", ab.Address, "caller", caller)
	return
}

func (a *AuctionHouse) HandleRemoveOwner(env *setypes.ScriptEnv, ab *AuctionHouseBody, gas uint64) (leftOverGas uint64, err error) {
	var ret []byte
	start := time.Now()
	defer func() {
		if err != nil {
			ret = []byte(err.Error())
		}
		env.SetReturnData(ret)
		a.logger.Debug("remove owner completed", "elapsed", time.Since(start))
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
		a.logger.Info("remove owner not authorized", "caller", caller)
		return
	}

	ownerSet.Remove(ab.Address)
	if ownerSet.Count() == 0 {
		a.logger.Info("remove owner would empty the set", "owner", ab.Address)
		err = ErrNoOwner
		return
	}

	state.SetOwnerSet(ownerSet)
	env.AddEvent(auction.AuctionHouseModuleAddr, []auction.Bytes32{methodTopic("remove_owner")}, ab.Address.Bytes())
	a.logger.Info("removed owner", "owner", ab.Address, "caller", caller)
	return
}
