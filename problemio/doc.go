// SPDX-License-Identifier: MIT

// Package problemio reads and writes transportation problems as YAML
// documents. JSON is a subset of YAML, so the same decoder accepts both:
//
//	costs:  [[4, 8], [6, 3]]
//	supply: [6, 4]
//	demand: [5, 5]
//
// The Spanish keys costos/oferta/demanda are accepted as aliases.
// Unknown keys are rejected so a typo never silently drops a vector.
package problemio
