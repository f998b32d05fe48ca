// Copyright (c) 2023 The Archworks developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package script

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"

	"github.com/archworks/auctionhouse/auction"
	"github.com/archworks/auctionhouse/nftreg"
	"github.com/archworks/auctionhouse/script/auctionhouse"
	setypes "github.com/archworks/auctionhouse/script/types"
	"github.com/archworks/auctionhouse/state"
)

var (
	ScriptGlobInst *ScriptEngine
)

// ScriptEngine routes one call per transaction to the module it addresses.
// The host serializes calls, nothing here runs concurrently.
type ScriptEngine struct {
	stateCreator *state.Creator
	logger       *slog.Logger
	modReg       Registry
}

// Glob Instance
func GetScriptGlobInst() *ScriptEngine {
	return ScriptGlobInst
}

func SetScriptGlobInst(inst *ScriptEngine) {
	ScriptGlobInst = inst
}

func NewScriptEngine(stateCreator *state.Creator, assets nftreg.Registry) *ScriptEngine {
	se := &ScriptEngine{
		stateCreator: stateCreator,
		logger:       slog.Default().With("pkg", "se"),
	}
	SetScriptGlobInst(se)

	ModuleAuctionHouseInit(se, assets)
	return se
}

func (se *ScriptEngine) StateCreator() *state.Creator {
	return se.stateCreator
}

func (se *ScriptEngine) HandleScriptData(senv *setypes.ScriptEnv, data []byte, to *auction.Address, gas uint64) (seOutput *setypes.ScriptEngineOutput, leftOverGas uint64, err error) {
	if len(data) < len(ScriptPattern) || !bytes.Equal(data[:len(ScriptPattern)], ScriptPattern[:]) {
		err = fmt.Errorf("pattern mismatch, pattern = %v", hex.EncodeToString(data[:min(len(data), len(ScriptPattern))]))
		se.logger.Error("invalid script data", "error", err)
		return nil, gas, err
	}
	script, err := DecodeScriptData(data[len(ScriptPattern):])
	if err != nil {
		se.logger.Error("decode script message failed", "error", err)
		return nil, gas, err
	}

	header := script.Header

	mod, find := se.modReg.Find(header.GetModID())
	if !find {
		err = errors.Errorf("could not address module %v", header.GetModID())
		se.logger.Error("unknown module", "error", err)
		return nil, gas, err
	}

	//module handler
	seOutput, leftOverGas, err = mod.modHandler(senv, script.Payload, to, gas)
	return
}

// EncodeScriptData wraps a module body into the on-wire script envelope.
func EncodeScriptData(body interface{}) ([]byte, error) {
	modId := uint32(999)
	switch body.(type) {
	case auctionhouse.AuctionHouseBody:
		modId = AUCTIONHOUSE_MODULE_ID
	case *auctionhouse.AuctionHouseBody:
		modId = AUCTIONHOUSE_MODULE_ID
	default:
		return []byte{}, errors.New("unrecognized body")
	}
	payload, err := rlp.EncodeToBytes(body)
	if err != nil {
		return []byte{}, errors.Wrap(err, "rlp encode body")
	}
	s := &ScriptData{Header: ScriptHeader{Version: uint32(0), ModID: modId}, Payload: payload}
	data, err := rlp.EncodeToBytes(s)
	if err != nil {
		return []byte{}, errors.Wrap(err, "rlp encode script data")
	}
	data = append(ScriptPattern[:], data...)

	return data, nil
}
