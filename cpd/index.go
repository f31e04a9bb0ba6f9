// SPDX-License-Identifier: MIT
// Package: tsbngen/cpd
//
// index.go — mixed-radix composite index over discrete parent assignments.
//
// Layout:
//   • For values v_1..v_k (1-based) and level counts L_1..L_k:
//       multiplier_i = L_{i+1} * … * L_k   (multiplier_k = 1)
//       index        = Σ (v_i − 1) * multiplier_i
//   • The last parent varies fastest. Tables MUST be authored in this row
//     order; the engine only computes the index, it never reorders rows.
//   • An empty assignment maps to index 0.

package cpd

// CompositeIndex encodes a discrete parent assignment into a table row.
// Returns ErrLengthMismatch if len(values) != len(levels) and
// ErrLevelOutOfRange if any level < 1 or any value outside 1..level.
// Complexity: O(k) time, O(1) space.
func CompositeIndex(values, levels []int) (int, error) {
	// 1. Shape check
	if len(values) != len(levels) {
		return 0, cpdErrorf("CompositeIndex", ErrLengthMismatch, "%d values, %d levels", len(values), len(levels))
	}
	// 2. Horner scheme from the most significant parent
	index := 0
	for i, v := range values {
		l := levels[i]
		if l < 1 {
			return 0, cpdErrorf("CompositeIndex", ErrLevelOutOfRange, "parent %d has %d levels", i, l)
		}
		if v < 1 || v > l {
			return 0, cpdErrorf("CompositeIndex", ErrLevelOutOfRange, "parent %d value %d not in 1..%d", i, v, l)
		}
		index = index*l + (v - 1)
	}

	return index, nil
}

// DecodeIndex inverts CompositeIndex: it returns the 1-based values that
// encode to index under levels.
// Complexity: O(k) time, O(k) space.
func DecodeIndex(index int, levels []int) ([]int, error) {
	rows := Rows(levels)
	if rows == 0 {
		return nil, cpdErrorf("DecodeIndex", ErrLevelOutOfRange, "levels %v", levels)
	}
	if index < 0 || index >= rows {
		return nil, cpdErrorf("DecodeIndex", ErrLevelOutOfRange, "index %d not in [0,%d)", index, rows)
	}
	values := make([]int, len(levels))
	// Peel digits from the least significant (last) parent.
	for i := len(levels) - 1; i >= 0; i-- {
		values[i] = index%levels[i] + 1
		index /= levels[i]
	}

	return values, nil
}

// Rows returns the number of rows a table indexed by levels must carry:
// the product of the level counts, 1 for an empty list, 0 if any level < 1.
func Rows(levels []int) int {
	rows := 1
	for _, l := range levels {
		if l < 1 {
			return 0
		}
		rows *= l
	}

	return rows
}
