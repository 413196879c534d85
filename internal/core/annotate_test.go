package core

import (
	"fmt"
	"strings"
	"testing"

	"clausecraft-backend-go/internal/models"
)

func mark(id, hlType, text string) string {
	return fmt.Sprintf(`<mark data-highlight-id="%s" data-type="%s">%s</mark>`, id, hlType, text)
}

func TestAnnotateContentNoHighlights(t *testing.T) {
	content := "plain contract text"
	if got := AnnotateContent(content, nil); got != content {
		t.Errorf("content without highlights should pass through untouched, got %q", got)
	}
}

func TestAnnotateContentSingleHighlight(t *testing.T) {
	content := "The party of the first part"
	highlights := []models.Highlight{
		{ID: "h1", Start: 4, End: 9, Type: models.HighlightImportant},
	}
	want := "The " + mark("h1", models.HighlightImportant, "party") + " of the first part"
	if got := AnnotateContent(content, highlights); got != want {
		t.Errorf("AnnotateContent = %q, want %q", got, want)
	}
}

func TestAnnotateContentAppliesRightToLeft(t *testing.T) {
	content := "aaa bbb ccc"
	// Given in ascending order; the renderer must still produce correct
	// offsets for the earlier highlight after the later one is inserted.
	highlights := []models.Highlight{
		{ID: "left", Start: 0, End: 3, Type: models.HighlightInfo},
		{ID: "right", Start: 8, End: 11, Type: models.HighlightWarning},
	}
	want := mark("left", models.HighlightInfo, "aaa") + " bbb " + mark("right", models.HighlightWarning, "ccc")
	if got := AnnotateContent(content, highlights); got != want {
		t.Errorf("AnnotateContent = %q, want %q", got, want)
	}
}

func TestAnnotateContentNestsContainedHighlight(t *testing.T) {
	content := "abcdef"
	highlights := []models.Highlight{
		{ID: "inner", Start: 2, End: 4, Type: models.HighlightInfo},
		{ID: "outer", Start: 0, End: 6, Type: models.HighlightImportant},
	}
	// Same Start ties break by descending End, so the outer range wraps the
	// already-marked inner range rather than being split by it.
	inner := "ab" + mark("inner", models.HighlightInfo, "cd") + "ef"
	want := mark("outer", models.HighlightImportant, inner)
	if got := AnnotateContent(content, highlights); got != want {
		t.Errorf("AnnotateContent = %q, want %q", got, want)
	}
}

func TestAnnotateContentSameStartNestsLongerOutside(t *testing.T) {
	content := "abcdef"
	highlights := []models.Highlight{
		{ID: "long", Start: 0, End: 6, Type: models.HighlightImportant},
		{ID: "short", Start: 0, End: 3, Type: models.HighlightInfo},
	}
	inner := mark("short", models.HighlightInfo, "abc") + "def"
	want := mark("long", models.HighlightImportant, inner)
	if got := AnnotateContent(content, highlights); got != want {
		t.Errorf("AnnotateContent = %q, want %q", got, want)
	}
}

func TestAnnotateContentAdjacentRangesSequential(t *testing.T) {
	content := "abcdef"
	highlights := []models.Highlight{
		{ID: "a", Start: 0, End: 3, Type: models.HighlightInfo},
		{ID: "b", Start: 3, End: 6, Type: models.HighlightWarning},
	}
	want := mark("a", models.HighlightInfo, "abc") + mark("b", models.HighlightWarning, "def")
	if got := AnnotateContent(content, highlights); got != want {
		t.Errorf("AnnotateContent = %q, want %q", got, want)
	}
}

func TestAnnotateContentOverlapKeepsBothIDs(t *testing.T) {
	content := "0123456789"
	highlights := []models.Highlight{
		{ID: "a", Start: 0, End: 6, Type: models.HighlightInfo},
		{ID: "b", Start: 4, End: 9, Type: models.HighlightWarning},
	}
	got := AnnotateContent(content, highlights)
	if strings.Count(got, `data-highlight-id="a"`) != 1 || strings.Count(got, `data-highlight-id="b"`) != 1 {
		t.Errorf("both overlapping highlight ids must appear exactly once: %q", got)
	}
	// All original characters must survive in order.
	stripped := got
	for _, tag := range []string{mark("a", models.HighlightInfo, ""), mark("b", models.HighlightWarning, "")} {
		open := tag[:len(tag)-len("</mark>")]
		stripped = strings.ReplaceAll(stripped, open, "")
	}
	stripped = strings.ReplaceAll(stripped, "</mark>", "")
	if stripped != content {
		t.Errorf("stripping markup should restore the content, got %q", stripped)
	}
}

func TestAnnotateContentIsPure(t *testing.T) {
	content := "same input, same output"
	highlights := []models.Highlight{
		{ID: "h1", Start: 0, End: 4, Type: models.HighlightInfo},
		{ID: "h2", Start: 5, End: 10, Type: models.HighlightCustom},
	}
	first := AnnotateContent(content, highlights)
	second := AnnotateContent(content, highlights)
	if first != second {
		t.Errorf("rendering is not deterministic: %q vs %q", first, second)
	}
	if highlights[0].Start != 0 || highlights[1].Start != 5 {
		t.Errorf("input slice was mutated: %+v", highlights)
	}
}

func TestAnnotateContentSkipsDriftedHighlight(t *testing.T) {
	// The document shrank after the highlight was created.
	content := "short"
	highlights := []models.Highlight{
		{ID: "stale", Start: 2, End: 40, Type: models.HighlightInfo},
		{ID: "live", Start: 0, End: 5, Type: models.HighlightWarning},
	}
	want := mark("live", models.HighlightWarning, "short")
	if got := AnnotateContent(content, highlights); got != want {
		t.Errorf("out-of-bounds highlight must be skipped, got %q", got)
	}
}

func TestAnnotateContentRuneOffsets(t *testing.T) {
	content := "秘密保持契約"
	highlights := []models.Highlight{
		{ID: "h1", Start: 4, End: 6, Type: models.HighlightImportant},
	}
	want := "秘密保持" + mark("h1", models.HighlightImportant, "契約")
	if got := AnnotateContent(content, highlights); got != want {
		t.Errorf("AnnotateContent = %q, want %q", got, want)
	}
}
