package domain

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("invalid test JSON %q: %v", s, err)
	}
	return v
}

func TestProjectEmptyArray(t *testing.T) {
	p := Project(decode(t, `[]`))

	if p.NotAList {
		t.Fatal("Project([]) flagged NotAList")
	}
	if len(p.Entries) != 0 {
		t.Errorf("Project([]) returned %d entries, want 0", len(p.Entries))
	}
	if len(p.Errors) != 0 {
		t.Errorf("Project([]) returned errors: %v", p.Errors)
	}
	if !p.OK() {
		t.Error("Project([]) should be OK")
	}
}

func TestProjectNotAList(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "object", content: `{"not": "an array"}`},
		{name: "string", content: `"books"`},
		{name: "number", content: `42`},
		{name: "null", content: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Project(decode(t, tt.content))
			if !p.NotAList {
				t.Errorf("Project(%s).NotAList = false, want true", tt.content)
			}
			if p.OK() {
				t.Errorf("Project(%s).OK() = true, want false", tt.content)
			}
			if p.Entries == nil || len(p.Entries) != 0 {
				t.Errorf("Project(%s).Entries = %v, want empty non-nil slice", tt.content, p.Entries)
			}
		})
	}
}

func TestProjectTitleOnly(t *testing.T) {
	p := Project(decode(t, `[{"title": "X"}]`))

	if len(p.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(p.Entries))
	}
	e := p.Entries[0]
	if e.Title != "X" {
		t.Errorf("Title = %q, want X", e.Title)
	}
	if e.HasLink() {
		t.Error("entry without link should not have a link")
	}
	if e.DisplayTitle() != "X" {
		t.Errorf("DisplayTitle() = %q, want X", e.DisplayTitle())
	}
}

func TestProjectLink(t *testing.T) {
	p := Project(decode(t, `[{"title": "A"}, {"title": "X", "link": "https://example.com"}]`))

	if len(p.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(p.Entries))
	}
	e := p.Entries[1]
	if e.Link != "https://example.com" {
		t.Errorf("Link = %q, want https://example.com", e.Link)
	}
	if e.DisplayTitle() != "2. X" {
		t.Errorf("DisplayTitle() = %q, want %q", e.DisplayTitle(), "2. X")
	}
}

func TestProjectHardTagsKeepOrder(t *testing.T) {
	p := Project(decode(t, `[{"title": "X", "tags": ["b", "a", "c"]}]`))

	if len(p.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(p.Entries))
	}
	want := []string{"b", "a", "c"}
	if !reflect.DeepEqual(p.Entries[0].Tags, want) {
		t.Errorf("Tags = %v, want %v", p.Entries[0].Tags, want)
	}
}

func TestProjectSoftTagsFixedOrder(t *testing.T) {
	p := Project(decode(t, `[{"network": "N", "title": "X", "year": "1999", "author": "A"}]`))

	if len(p.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(p.Entries))
	}
	want := []SoftTag{
		{Key: "author", Value: "A"},
		{Key: "year", Value: "1999"},
		{Key: "network", Value: "N"},
	}
	if !reflect.DeepEqual(p.Entries[0].SoftTags, want) {
		t.Errorf("SoftTags = %v, want %v", p.Entries[0].SoftTags, want)
	}
}

func TestProjectIgnoresUnknownKeys(t *testing.T) {
	p := Project(decode(t, `[{"title": "X", "publisher": "P", "rating": 5}]`))

	if !p.OK() {
		t.Fatalf("unknown keys produced errors: %v", p.Errors)
	}
	if len(p.Entries[0].SoftTags) != 0 {
		t.Errorf("unknown keys produced soft tags: %v", p.Entries[0].SoftTags)
	}
	if len(p.Entries[0].Tags) != 0 {
		t.Errorf("unknown keys produced hard tags: %v", p.Entries[0].Tags)
	}
}

func TestProjectIsolatesInvalidEntries(t *testing.T) {
	content := `[
		{"title": "first"},
		{"link": "https://example.com"},
		"not an object",
		{"title": "fourth", "tags": ["ok"]},
		{"title": "fifth", "tags": "single"},
		{"title": "sixth", "year": 2001},
		{"title": 7},
		{"title": "eighth", "link": 8},
		{"title": "ninth", "tags": ["a", 1]},
		{"title": "tenth", "link": null}
	]`

	p := Project(decode(t, content))

	if p.NotAList {
		t.Fatal("array content flagged NotAList")
	}

	var titles []string
	for _, e := range p.Entries {
		titles = append(titles, e.Title)
	}
	if !reflect.DeepEqual(titles, []string{"first", "fourth"}) {
		t.Errorf("valid titles = %v, want [first fourth]", titles)
	}
	if p.Entries[1].Index != 3 {
		t.Errorf("second valid entry Index = %d, want 3", p.Entries[1].Index)
	}

	wantErrors := []EntryError{
		{Index: 1, Reason: "title is required"},
		{Index: 2, Reason: "entry must be an object"},
		{Index: 4, Reason: "tags must be an array"},
		{Index: 5, Reason: "year must be a string"},
		{Index: 6, Reason: "title must be a string"},
		{Index: 7, Reason: "link must be a string"},
		{Index: 8, Reason: "tags[1] must be a string"},
		{Index: 9, Reason: "link must be a string"},
	}
	if !reflect.DeepEqual(p.Errors, wantErrors) {
		t.Errorf("Errors = %v\nwant %v", p.Errors, wantErrors)
	}
}

func TestParseEntryErrorType(t *testing.T) {
	_, err := ParseEntry(4, []any{})
	if err == nil {
		t.Fatal("ParseEntry(array) should fail")
	}

	var entryErr *EntryError
	if !errors.As(err, &entryErr) {
		t.Fatalf("error %T is not *EntryError", err)
	}
	if entryErr.Index != 4 {
		t.Errorf("Index = %d, want 4", entryErr.Index)
	}
	if err.Error() != "Entry 5: entry must be an object" {
		t.Errorf("Error() = %q", err.Error())
	}
}
