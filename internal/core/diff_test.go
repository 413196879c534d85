package core

import (
	"reflect"
	"testing"
)

func TestChangedLinesIdenticalContent(t *testing.T) {
	content := "line one\nline two\nline three"
	if got := ChangedLines(content, content); len(got) != 0 {
		t.Errorf("identical snapshots should yield no changed lines, got %v", got)
	}
}

func TestChangedLinesSingleLineEdit(t *testing.T) {
	previous := "clause 1\nclause 2\nclause 3"
	current := "clause 1\nclause 2 (amended)\nclause 3"
	if got := ChangedLines(previous, current); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("ChangedLines = %v, want [1]", got)
	}
}

func TestChangedLinesAppendedLines(t *testing.T) {
	previous := "clause 1"
	current := "clause 1\nclause 2\nclause 3"
	if got := ChangedLines(previous, current); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("ChangedLines = %v, want [1 2]", got)
	}
}

func TestChangedLinesTruncatedContent(t *testing.T) {
	previous := "clause 1\nclause 2\nclause 3"
	current := "clause 1"
	// Missing lines compare as empty, so removed lines are reported changed.
	if got := ChangedLines(previous, current); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("ChangedLines = %v, want [1 2]", got)
	}
}

func TestChangedLinesPositionalComparison(t *testing.T) {
	// Inserting a line at the top shifts everything; the comparison is
	// strictly by index, so all lines report changed even though the old
	// text still exists one line lower.
	previous := "alpha\nbeta"
	current := "intro\nalpha\nbeta"
	if got := ChangedLines(previous, current); !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Errorf("ChangedLines = %v, want [0 1 2]", got)
	}
}

func TestChangedLinesAscendingOrder(t *testing.T) {
	previous := "a\nb\nc\nd"
	current := "x\nb\ny\nd"
	got := ChangedLines(previous, current)
	if !reflect.DeepEqual(got, []int{0, 2}) {
		t.Errorf("ChangedLines = %v, want [0 2]", got)
	}
}

func TestChangedLinesBothEmpty(t *testing.T) {
	if got := ChangedLines("", ""); len(got) != 0 {
		t.Errorf("two empty snapshots should yield no changes, got %v", got)
	}
}
