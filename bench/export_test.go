// SPDX-License-Identifier: MIT

package bench

// Compare exposes the distance cross-check to tests.
var Compare = compare
