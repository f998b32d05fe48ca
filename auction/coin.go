// Copyright (c) 2023 The Archworks developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"bytes"
	"fmt"
	"math/big"
	"sort"
)

// Coin is a monetary amount tagged with the denomination it is measured in.
type Coin struct {
	Denom  string
	Amount *big.Int
}

func NewCoin(amount int64, denom string) Coin {
	return Coin{Denom: denom, Amount: big.NewInt(amount)}
}

func (c Coin) String() string {
	return fmt.Sprintf("%v%v", c.Amount.String(), c.Denom)
}

func (c Coin) IsZero() bool {
	return c.Amount == nil || c.Amount.Sign() == 0
}

// FindCoin returns the amount carried in funds for the given denom, nil if absent.
func FindCoin(funds []Coin, denom string) *big.Int {
	for _, c := range funds {
		if c.Denom == denom && c.Amount != nil {
			return c.Amount
		}
	}
	return nil
}

// NormalizeCoins merges coins with the same denom, drops zero amounts and
// returns the result sorted by denom.
func NormalizeCoins(coins []Coin) []Coin {
	merged := make(map[string]*big.Int)
	denoms := make([]string, 0)
	for _, c := range coins {
		if c.Amount == nil || c.Amount.Sign() == 0 {
			continue
		}
		if amt, ok := merged[c.Denom]; ok {
			merged[c.Denom] = new(big.Int).Add(amt, c.Amount)
		} else {
			merged[c.Denom] = new(big.Int).Set(c.Amount)
			denoms = append(denoms, c.Denom)
		}
	}
	sort.SliceStable(denoms, func(i, j int) bool {
		return bytes.Compare([]byte(denoms[i]), []byte(denoms[j])) <= 0
	})

	result := make([]Coin, 0, len(denoms))
	for _, d := range denoms {
		result = append(result, Coin{Denom: d, Amount: merged[d]})
	}
	return result
}
