package core

import "strings"

// ChangedLines compares two content snapshots line by line and returns the
// indices of lines that differ, in ascending order. The comparison is
// positional: line i of the previous snapshot is compared to line i of the
// current one, with a missing line (length mismatch) treated as empty. An
// insertion or deletion that shifts subsequent lines therefore marks every
// following line as changed even when its text matches a nearby line in the
// other snapshot. That tradeoff is deliberate; callers depend on the exact
// line-index semantics for highlighting, so this must not be replaced with
// an alignment-based diff.
func ChangedLines(previous, current string) []int {
	prevLines := strings.Split(previous, "\n")
	currLines := strings.Split(current, "\n")

	n := len(prevLines)
	if len(currLines) > n {
		n = len(currLines)
	}

	var changed []int
	for i := 0; i < n; i++ {
		var prev, curr string
		if i < len(prevLines) {
			prev = prevLines[i]
		}
		if i < len(currLines) {
			curr = currLines[i]
		}
		if prev != curr {
			changed = append(changed, i)
		}
	}
	return changed
}
