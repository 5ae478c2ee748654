// SPDX-License-Identifier: MIT

// Package balance equalises total supply and total demand of a
// transportation problem before it is handed to a constructive solver.
//
// When ΣSupply > ΣDemand a zero-cost dummy column absorbs the excess; when
// ΣDemand > ΣSupply a zero-cost dummy row provides it. Balanced input is
// returned unchanged (as a copy), so Balance is idempotent.
//
//	bp, meta, err := balance.Balance(p)
//	// meta.Kind ∈ {balanced, dummy_column_added, dummy_row_added}
//	// meta.Difference is the padded amount (0 when balanced)
//
// Complexity: O(M·N) for the copy.
package balance
