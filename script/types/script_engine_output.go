package types

import (
	"github.com/archworks/auctionhouse/tx"
)

// ScriptEngineOutput bundles the return data with the ordered outbound
// instructions of one committed transition.
type ScriptEngineOutput struct {
	data           []byte
	transfers      []*tx.Transfer
	assetTransfers []*tx.AssetTransfer
	events         []*tx.Event
	rewardsOps     []*tx.RewardsOp
}

func NewScriptEngineOutput(data []byte) *ScriptEngineOutput {
	return &ScriptEngineOutput{
		data:           data,
		transfers:      make([]*tx.Transfer, 0),
		assetTransfers: make([]*tx.AssetTransfer, 0),
		events:         make([]*tx.Event, 0),
		rewardsOps:     make([]*tx.RewardsOp, 0),
	}
}

func (o *ScriptEngineOutput) SetData(d []byte) {
	o.data = d
}

func (o *ScriptEngineOutput) GetData() []byte {
	if o.data == nil || len(o.data) <= 0 {
		return nil
	}
	return o.data
}

func (o *ScriptEngineOutput) GetTransfers() tx.Transfers {
	return o.transfers
}

func (o *ScriptEngineOutput) GetAssetTransfers() tx.AssetTransfers {
	return o.assetTransfers
}

func (o *ScriptEngineOutput) GetEvents() tx.Events {
	return o.events
}

func (o *ScriptEngineOutput) GetRewardsOps() tx.RewardsOps {
	return o.rewardsOps
}
