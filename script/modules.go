package script

import (
	"github.com/archworks/auctionhouse/nftreg"
	"github.com/archworks/auctionhouse/script/auctionhouse"
)

const (
	AUCTIONHOUSE_MODULE_NAME = string("auctionhouse")
	AUCTIONHOUSE_MODULE_ID   = uint32(1000)
)

func ModuleAuctionHouseInit(se *ScriptEngine, assets nftreg.Registry) *auctionhouse.AuctionHouse {
	ah := auctionhouse.NewAuctionHouse(se.stateCreator, assets)
	if ah == nil {
		panic("init auction house module failed")
	}

	mod := &Module{
		modName:    AUCTIONHOUSE_MODULE_NAME,
		modID:      AUCTIONHOUSE_MODULE_ID,
		modHandler: ah.Handle,
	}
	if err := se.modReg.Register(AUCTIONHOUSE_MODULE_ID, mod); err != nil {
		panic("register auction house module failed")
	}

	ah.Start()
	se.logger.Info("ScriptEngine", "started module", mod.modName)
	return ah
}
