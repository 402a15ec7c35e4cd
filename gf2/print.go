//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package gf2

import (
	"fmt"
	"io"

	"github.com/markkurossi/tabulate"
)

// Table renders the matrix as a table. Each table row holds one
// matrix row with its bits from the most significant (bit M-1) to the
// least significant (bit 0).
func (m *Matrix[V, R]) Table() *tabulate.Tabulate {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Row").SetAlign(tabulate.MR)
	for j := m.m - 1; j >= 0; j-- {
		tab.Header(fmt.Sprintf("%d", j)).SetAlign(tabulate.MR)
	}
	for i, r := range m.rows {
		row := tab.Row()
		row.Column(fmt.Sprintf("%d", i))
		for j := m.m - 1; j >= 0; j-- {
			row.Column(fmt.Sprintf("%d", r.Bit(j)))
		}
	}
	return tab
}

// Print prints the matrix table to w.
func (m *Matrix[V, R]) Print(w io.Writer) {
	m.Table().Print(w)
}
