package domain

import (
	"errors"
	"fmt"
)

// Project turns the parsed JSON content of one category into its display
// list. Each array element is validated on its own: an invalid element is
// recorded in Errors and the remaining elements still render.
func Project(content any) Projection {
	items, ok := content.([]any)
	if !ok {
		return Projection{NotAList: true, Entries: []Entry{}}
	}

	p := Projection{Entries: make([]Entry, 0, len(items))}
	for i, item := range items {
		entry, err := ParseEntry(i, item)
		if err != nil {
			var entryErr *EntryError
			if errors.As(err, &entryErr) {
				p.Errors = append(p.Errors, *entryErr)
			} else {
				p.Errors = append(p.Errors, EntryError{Index: i, Reason: err.Error()})
			}
			continue
		}
		p.Entries = append(p.Entries, entry)
	}
	return p
}

// ParseEntry validates a single array element. The returned error is always
// an *EntryError.
func ParseEntry(index int, item any) (Entry, error) {
	fail := func(format string, args ...any) (Entry, error) {
		return Entry{}, &EntryError{Index: index, Reason: fmt.Sprintf(format, args...)}
	}

	obj, ok := item.(map[string]any)
	if !ok {
		return fail("entry must be an object")
	}

	rawTitle, ok := obj["title"]
	if !ok {
		return fail("title is required")
	}
	title, ok := rawTitle.(string)
	if !ok {
		return fail("title must be a string")
	}

	entry := Entry{Index: index, Title: title}

	if rawLink, ok := obj["link"]; ok {
		link, ok := rawLink.(string)
		if !ok {
			return fail("link must be a string")
		}
		entry.Link = link
	}

	for _, key := range SoftTagKeys {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		value, ok := raw.(string)
		if !ok {
			return fail("%s must be a string", key)
		}
		entry.SoftTags = append(entry.SoftTags, SoftTag{Key: key, Value: value})
	}

	if rawTags, ok := obj["tags"]; ok {
		arr, ok := rawTags.([]any)
		if !ok {
			return fail("tags must be an array")
		}
		entry.Tags = make([]string, 0, len(arr))
		for i, rawTag := range arr {
			tag, ok := rawTag.(string)
			if !ok {
				return fail("tags[%d] must be a string", i)
			}
			entry.Tags = append(entry.Tags, tag)
		}
	}

	return entry, nil
}
