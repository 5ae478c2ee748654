// SPDX-License-Identifier: MIT

// Package render turns solver output into plain-text tables for terminals
// and logs.
//
// Every step is shown as a "before" table and an "after" table with the
// explanation between them. A table lists costs with the chosen cell in
// brackets, the remaining supply per row and the remaining demand per column.
// Vogel steps add a penalty column and a penalty row; an exhausted line shows
// "-" instead of the −1 sentinel. Dummy lines added by balancing are labelled
// "(dummy)".
//
// Tables are drawn with lipgloss/table; colours are applied only when the
// output is a colour-capable terminal.
package render
