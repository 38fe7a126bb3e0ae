// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package chunkq

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent scenarios: the detector cannot track
// happens-before edges established through atomix acquire/release
// orderings on separate variables and reports false positives.
const RaceEnabled = true
