package content

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidContent is returned when an item's content is not a string,
	// a mapping or a list.
	ErrInvalidContent = errors.New("invalid type for content")

	// ErrInvalidOrder is returned when an item's order is present but not a
	// string.
	ErrInvalidOrder = errors.New("invalid type for 'order'")

	// ErrUnsupportedFormat is returned for document files that are neither
	// JSON nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported document format")
)

// ShapeError identifies the item whose raw content could not be normalized.
type ShapeError struct {
	Item  int    // zero-based item index
	Title string // item title, may be empty
	Field string // "content" or "order"
	Found string // what was found instead, e.g. "number"
	err   error
}

func (e *ShapeError) Error() string {
	where := fmt.Sprintf("item %d", e.Item)
	if e.Title != "" {
		where = fmt.Sprintf("item %d (%q)", e.Item, e.Title)
	}
	return fmt.Sprintf("%v in %s: found %s", e.err, where, e.Found)
}

func (e *ShapeError) Unwrap() error {
	return e.err
}
