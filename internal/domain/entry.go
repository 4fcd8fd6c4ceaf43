package domain

import (
	"fmt"
	"strconv"
)

// SoftTagKeys is the allow-list of soft tag keys, in display order.
// Display order is fixed and independent of key order in the source document.
var SoftTagKeys = []string{"author", "year", "network"}

// SoftTag is a fixed-vocabulary attribute rendered as a "key: value" chip.
type SoftTag struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Entry is one validated list item of a category.
type Entry struct {
	// Index is the 0-based position in the source array.
	Index int `json:"index"`

	Title string `json:"title"`

	// Link is empty when the entry has no link.
	Link string `json:"link,omitempty"`

	SoftTags []SoftTag `json:"soft_tags,omitempty"`

	// Tags are the hard tags, in source order.
	Tags []string `json:"tags,omitempty"`
}

// HasLink reports whether the entry renders as a hyperlink.
func (e Entry) HasLink() bool {
	return e.Link != ""
}

// DisplayTitle is the visible title. Linked entries carry their 1-based
// position as a prefix: "3. Title".
func (e Entry) DisplayTitle() string {
	if !e.HasLink() {
		return e.Title
	}
	return strconv.Itoa(e.Index+1) + ". " + e.Title
}

// EntryError describes why the entry at Index could not be rendered. Index is
// 0-based; messages count from 1 like the page does.
type EntryError struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("Entry %d: %s", e.Index+1, e.Reason)
}

// Projection is the display list of one category.
type Projection struct {
	// NotAList is set when the category content is not a JSON array; the
	// page then shows a placeholder instead of entries.
	NotAList bool `json:"not_a_list"`

	Entries []Entry      `json:"entries"`
	Errors  []EntryError `json:"errors,omitempty"`
}

// OK reports whether every entry of the category was valid.
func (p Projection) OK() bool {
	return !p.NotAList && len(p.Errors) == 0
}
