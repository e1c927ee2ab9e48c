// SPDX-License-Identifier: MIT
package precision

import "errors"

// ErrNegativeStep indicates a step index below zero was used to address
// the per-step mark map.
var ErrNegativeStep = errors.New("precision: step index must be >= 0")
