package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"clausecraft-backend-go/internal/models"
)

// Errors returned by highlight validation.
var (
	ErrInvalidRange         = errors.New("highlight range is invalid")
	ErrInvalidHighlightType = errors.New("invalid highlight type")
	ErrHighlightNotFound    = errors.New("highlight not found")
)

func validHighlightType(t string) bool {
	switch t {
	case models.HighlightImportant, models.HighlightWarning, models.HighlightInfo, models.HighlightCustom:
		return true
	}
	return false
}

// NewHighlight validates a candidate range against the current content
// snapshot and builds the highlight, capturing the covered substring.
// Offsets are rune offsets; the range is half-open [start, end). Empty
// ranges and ranges outside the snapshot are rejected outright, so no
// partial highlight is ever stored.
func NewHighlight(content string, start, end int, highlightType, note, authorID, authorName string) (models.Highlight, error) {
	runes := []rune(content)
	if start < 0 || end > len(runes) || start >= end {
		return models.Highlight{}, fmt.Errorf("%w: start=%d end=%d length=%d", ErrInvalidRange, start, end, len(runes))
	}
	if !validHighlightType(highlightType) {
		return models.Highlight{}, fmt.Errorf("%w: '%s'", ErrInvalidHighlightType, highlightType)
	}

	return models.Highlight{
		ID:         uuid.NewString(),
		Start:      start,
		End:        end,
		Text:       string(runes[start:end]),
		Type:       highlightType,
		Note:       note,
		AuthorID:   authorID,
		AuthorName: authorName,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// RemoveHighlightByID returns the highlight slice without the given id.
// Other highlights keep their offsets untouched; offsets are independent
// per highlight, so no adjustment is needed.
func RemoveHighlightByID(highlights []models.Highlight, highlightID string) ([]models.Highlight, error) {
	for i, h := range highlights {
		if h.ID == highlightID {
			out := make([]models.Highlight, 0, len(highlights)-1)
			out = append(out, highlights[:i]...)
			out = append(out, highlights[i+1:]...)
			return out, nil
		}
	}
	return nil, fmt.Errorf("%w: id '%s'", ErrHighlightNotFound, highlightID)
}
