// Copyright (c) 2023 The Archworks developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
)

// OwnerSet is the group of accounts with privileged authority over the
// auction house. It is seeded with the instantiating account and must
// never become empty.
type OwnerSet struct {
	Owners []Address
}

func NewOwnerSet(owners []Address) *OwnerSet {
	if owners == nil {
		owners = make([]Address, 0)
	}
	sort.SliceStable(owners, func(i, j int) bool {
		return bytes.Compare(owners[i].Bytes(), owners[j].Bytes()) <= 0
	})
	return &OwnerSet{Owners: owners}
}

func (os *OwnerSet) indexOf(addr Address) (int, int) {
	if len(os.Owners) <= 0 {
		return -1, 0
	}
	l := 0
	r := len(os.Owners)
	for l < r {
		m := (l + r) / 2
		cmp := bytes.Compare(addr.Bytes(), os.Owners[m].Bytes())
		if cmp < 0 {
			r = m
		} else if cmp > 0 {
			l = m + 1
		} else {
			return m, -1
		}
	}
	return -1, r
}

// Contains is the capability check every privileged operation goes through.
func (os *OwnerSet) Contains(addr Address) bool {
	index, _ := os.indexOf(addr)
	return index >= 0
}

// Add appends a member, no-op if already present.
func (os *OwnerSet) Add(addr Address) {
	index, insertIndex := os.indexOf(addr)
	if index >= 0 {
		return
	}
	if len(os.Owners) == 0 {
		os.Owners = append(os.Owners, addr)
		return
	}
	newList := make([]Address, insertIndex)
	copy(newList, os.Owners[:insertIndex])
	newList = append(newList, addr)
	newList = append(newList, os.Owners[insertIndex:]...)
	os.Owners = newList
}

// Remove drops a member, no-op if absent.
func (os *OwnerSet) Remove(addr Address) {
	index, _ := os.indexOf(addr)
	if index >= 0 {
		os.Owners = append(os.Owners[:index], os.Owners[index+1:]...)
	}
}

func (os *OwnerSet) Count() int {
	return len(os.Owners)
}

func (os *OwnerSet) ToString() string {
	if os == nil || len(os.Owners) == 0 {
		return "OwnerSet (size:0)"
	}
	s := []string{fmt.Sprintf("OwnerSet (size:%v) {", len(os.Owners))}
	for i, o := range os.Owners {
		s = append(s, fmt.Sprintf("  %d.%v", i, o.String()))
	}
	s = append(s, "}")
	return strings.Join(s, "\n")
}

func (os *OwnerSet) ToList() []Address {
	result := make([]Address, 0)
	result = append(result, os.Owners...)
	return result
}
