package core

import (
	"fmt"
	"sort"

	"clausecraft-backend-go/internal/models"
)

// AnnotateContent projects a set of highlights onto a content snapshot and
// returns the marked-up view. Each highlight's covered range is wrapped in a
// span carrying its id and type, so every character belonging to a highlight
// can be traced back to all covering highlight ids. Text outside any
// highlight passes through untouched, and the function is pure: same inputs,
// same output.
//
// Inserting markup at one offset shifts every offset to its right, so the
// open and close tags are inserted from the highest offset down; offsets of
// the remaining, leftward insertions stay valid. At equal offsets the
// insertion order is chosen so that a range containing another wraps it as a
// nested span, and a range ending where another begins sits adjacent to it.
// Overlapping highlights are never merged or split into a canonical
// partition; each highlight's span is independently emitted.
//
// Highlights whose offsets no longer fit the snapshot (the document was
// edited after they were created) are skipped rather than corrupting the
// output; in-bounds highlights are rendered at their stored offsets even if
// their captured text no longer matches. There is no re-anchoring.
func AnnotateContent(content string, highlights []models.Highlight) string {
	if len(highlights) == 0 {
		return content
	}

	working := []rune(content)
	origLen := len(working)

	// pair holds the highlight's other endpoint; sorting it ascending makes
	// the longer of two ranges opening (or closing) at the same offset land
	// further out, which is what produces proper nesting.
	type tagInsertion struct {
		pos  int
		open bool
		pair int
		text []rune
	}

	var insertions []tagInsertion
	for _, h := range highlights {
		if h.Start < 0 || h.Start >= h.End || h.End > origLen {
			continue
		}
		openTag := []rune(fmt.Sprintf(`<mark data-highlight-id="%s" data-type="%s">`, h.ID, h.Type))
		insertions = append(insertions,
			tagInsertion{pos: h.Start, open: true, pair: h.End, text: openTag},
			tagInsertion{pos: h.End, open: false, pair: h.Start, text: []rune("</mark>")},
		)
	}

	sort.SliceStable(insertions, func(i, j int) bool {
		a, b := insertions[i], insertions[j]
		if a.pos != b.pos {
			return a.pos > b.pos
		}
		// Same offset: a later insertion lands left of an earlier one, so
		// open tags go first (closes end up left of opens, keeping adjacent
		// ranges sequential), then nearer endpoints first.
		if a.open != b.open {
			return a.open
		}
		return a.pair < b.pair
	})

	for _, ins := range insertions {
		out := make([]rune, 0, len(working)+len(ins.text))
		out = append(out, working[:ins.pos]...)
		out = append(out, ins.text...)
		out = append(out, working[ins.pos:]...)
		working = out
	}
	return string(working)
}
