// Copyright (c) 2023 The Archworks developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lmittmann/tint"
	isatty "github.com/mattn/go-isatty"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/archworks/auctionhouse/api"
	"github.com/archworks/auctionhouse/auction"
	"github.com/archworks/auctionhouse/lvldb"
	"github.com/archworks/auctionhouse/nftreg"
	"github.com/archworks/auctionhouse/rewardsvc"
	"github.com/archworks/auctionhouse/script"
	"github.com/archworks/auctionhouse/state"
)

var (
	version   string
	gitCommit string
	gitTag    string
	log       = slog.Default().With("pkg", "main")
)

func fullVersion() string {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	return fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
}

func main() {
	app := cli.App{
		Version:   fullVersion(),
		Name:      "AuctionHouse",
		Usage:     "NFT auction house node",
		Copyright: "2023 Archworks",
		Flags: []cli.Flag{
			dataDirFlag,
			apiAddrFlag,
			apiCorsFlag,
			verbosityFlag,
			genesisOwnerFlag,
		},
		Action: defaultAction,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initLogger(ctx *cli.Context) {
	verbosity := ctx.Int(verbosityFlag.Name)
	level := slog.LevelInfo
	switch {
	case verbosity >= 5:
		level = slog.LevelDebug
	case verbosity <= 1:
		level = slog.LevelError
	case verbosity == 2:
		level = slog.LevelWarn
	}

	w := os.Stderr
	handler := tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		NoColor:    !isatty.IsTerminal(w.Fd()),
	})
	slog.SetDefault(slog.New(handler))
}

func openMainDB(ctx *cli.Context) *lvldb.LevelDB {
	dataDir := ctx.String(dataDirFlag.Name)
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		fatal(fmt.Sprintf("create data directory [%v]: %v", dataDir, err))
	}
	dir := filepath.Join(dataDir, "main.db")
	db, err := lvldb.New(dir, lvldb.Options{})
	if err != nil {
		fatal(fmt.Sprintf("open main database [%v]: %v", dir, err))
	}
	return db
}

// seedOwnerSet puts the genesis owner into an empty owner set so the
// first privileged call has someone to authorize.
func seedOwnerSet(ctx *cli.Context, creator *state.Creator) error {
	st, err := creator.NewState()
	if err != nil {
		return err
	}
	ownerSet := st.GetOwnerSet()
	if ownerSet.Count() > 0 {
		return nil
	}

	ownerStr := ctx.String(genesisOwnerFlag.Name)
	if ownerStr == "" {
		fatal("owner set is empty, -" + genesisOwnerFlag.Name + " is required on first start")
	}
	owner, err := auction.ParseAddress(ownerStr)
	if err != nil {
		fatal(fmt.Sprintf("invalid -%s [%v]: %v", genesisOwnerFlag.Name, ownerStr, err))
	}

	ownerSet.Add(owner)
	st.SetOwnerSet(ownerSet)
	if err := st.Stage().Commit(); err != nil {
		return err
	}
	log.Info("seeded owner set", "owner", owner)
	return nil
}

func defaultAction(ctx *cli.Context) error {
	exitSignal := handleExitSignal()

	defer func() { log.Info("exited") }()

	initLogger(ctx)

	mainDB := openMainDB(ctx)
	defer func() { log.Info("closing main database..."); mainDB.Close() }()

	stateCreator := state.NewCreator(mainDB)
	if err := seedOwnerSet(ctx, stateCreator); err != nil {
		return err
	}

	assets := nftreg.NewMemRegistry()
	rewards := rewardsvc.NewMemProvider()
	script.NewScriptEngine(stateCreator, assets)

	apiHandler := api.New(rewards, ctx.String(apiCorsFlag.Name))
	apiURL, srvCloser := startAPIServer(ctx.String(apiAddrFlag.Name), apiHandler)
	defer func() { log.Info("stopping API server..."); srvCloser() }()

	log.Info("auction house started", "api", apiURL, "version", fullVersion())

	<-exitSignal.Done()
	return nil
}
