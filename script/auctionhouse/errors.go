// Copyright (c) 2023 The Archworks developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auctionhouse

import "errors"

// Terminal failure reasons, surfaced verbatim as the rejection reason of the
// failing call. Host/storage failures travel separately, wrapped with
// pkg/errors by the handler layer.
var (
	ErrUnauthorized    = errors.New("not owner, unauthorized")
	ErrNoOwner         = errors.New("must have at least 1 owner")
	ErrAuctionExists   = errors.New("auction already exists")
	ErrNoAuction       = errors.New("no auction for asset")
	ErrNoNFT           = errors.New("asset is not in auction house custody")
	ErrNoFunds         = errors.New("no funds attached in auction denom")
	ErrBidUnderMinimum = errors.New("bid amount under minimum bid")
	ErrBidNotEnough    = errors.New("bid amount not above current bid")
	ErrPriceNotMet     = errors.New("amount below buyout price")
	ErrCannotClose     = errors.New("cannot close auction")
	ErrAuctionFinished = errors.New("auction finished")
)
