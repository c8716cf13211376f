// SPDX-License-Identifier: MIT

// Package report renders benchmark rows, graphs and distance arrays as text.
//
// Two layouts are available for benchmark rows:
//
//	ModeConsole – a boxed ASCII table with a header row:
//	  +--------------------+---------------------+---------------------+
//	  | Number of vertices | min-heap            | queue               |
//	  +--------------------+---------------------+---------------------+
//	  |                 10 |            1.234000 |            0.987000 |
//	ModeFile    – one tab-separated line per size, without a header:
//	  10 \t1.234000 \t0.987000
//
// Means are printed in microseconds.
//
// Writer buffers output and remembers the first write error. Later calls
// become no-ops, and Flush reports that error.
package report
