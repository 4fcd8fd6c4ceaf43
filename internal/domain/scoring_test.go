package domain

import "testing"

func sampleHits() []Hit {
	return []Hit{
		{Category: "books", Entry: Entry{Index: 0, Title: "The Left Hand of Darkness", Tags: []string{"sci-fi", "classic"},
			SoftTags: []SoftTag{{Key: "author", Value: "Ursula K. Le Guin"}}}},
		{Category: "books", Entry: Entry{Index: 1, Title: "The Dispossessed", Tags: []string{"sci-fi"},
			SoftTags: []SoftTag{{Key: "author", Value: "Ursula K. Le Guin"}}}},
		{Category: "films", Entry: Entry{Index: 0, Title: "Stalker", Tags: []string{"slow", "sci-fi"}}},
		{Category: "podcasts", Entry: Entry{Index: 0, Title: "Radiolab", Tags: []string{"science"},
			SoftTags: []SoftTag{{Key: "network", Value: "WNYC Studios"}}}},
	}
}

func TestRankEntriesTitleBeatsTag(t *testing.T) {
	hits := append(sampleHits(), Hit{
		Category: "zines", Entry: Entry{Index: 0, Title: "Classic", Tags: []string{"paper"}},
	})

	candidates := RankEntries(ParseQuery("classic"), hits)
	if len(candidates) != 2 {
		t.Fatalf("got %d candidates, want 2", len(candidates))
	}
	if candidates[0].Hit.Category != "zines" {
		t.Errorf("top candidate = %s/%s, want title match first",
			candidates[0].Hit.Category, candidates[0].Hit.Entry.Title)
	}
	if candidates[1].TagScore == 0 || candidates[1].TitleScore != 0 {
		t.Errorf("second candidate should match on tags only: %+v", candidates[1])
	}
}

func TestRankEntriesRequiresAllFragments(t *testing.T) {
	candidates := RankEntries(ParseQuery("le guin darkness"), sampleHits())
	if len(candidates) != 1 {
		t.Fatalf("got %d candidates, want 1", len(candidates))
	}
	if candidates[0].Hit.Entry.Title != "The Left Hand of Darkness" {
		t.Errorf("top = %q", candidates[0].Hit.Entry.Title)
	}
}

func TestRankEntriesTieKeepsCatalogueOrder(t *testing.T) {
	candidates := RankEntries(ParseQuery("sci-fi"), sampleHits())
	if len(candidates) < 3 {
		t.Fatalf("got %d candidates, want at least 3", len(candidates))
	}

	want := []struct {
		category string
		index    int
	}{
		{"books", 0},
		{"books", 1},
		{"films", 0},
	}
	for i, w := range want {
		got := candidates[i].Hit
		if got.Category != w.category || got.Entry.Index != w.index {
			t.Errorf("candidate %d = %s/%d, want %s/%d", i, got.Category, got.Entry.Index, w.category, w.index)
		}
	}
}

func TestRankEntriesSoftTagValues(t *testing.T) {
	candidates := RankEntries(ParseQuery("wnyc"), sampleHits())
	if len(candidates) != 1 || candidates[0].Hit.Entry.Title != "Radiolab" {
		t.Fatalf("expected Radiolab via network soft tag, got %v", candidates)
	}
}

func TestRankEntriesEmptyQuery(t *testing.T) {
	if got := RankEntries(ParseQuery("   "), sampleHits()); len(got) != 0 {
		t.Errorf("empty query returned %d candidates", len(got))
	}
}

func TestScoreFragment(t *testing.T) {
	tests := []struct {
		name  string
		frag  string
		word  string
		check func(float64) bool
	}{
		{"exact", "stalker", "stalker", func(s float64) bool { return s >= ScoreExactMatch }},
		{"prefix", "stal", "stalker", func(s float64) bool { return s >= ScorePrefixMatch && s < ScoreExactMatch }},
		{"substring", "alk", "stalker", func(s float64) bool { return s >= ScoreSubstringMatch && s < ScorePrefixMatch }},
		{"fuzzy", "stlkr", "stalker", func(s float64) bool { return s > 0 && s <= ScoreFuzzyMatch }},
		{"short fragment never fuzzy", "zs", "stalker", func(s float64) bool { return s == 0 }},
		{"no match", "xyz", "stalker", func(s float64) bool { return s == 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := scoreFragment(tt.frag, tt.word, 0)
			if !tt.check(s) {
				t.Errorf("scoreFragment(%q, %q) = %.2f", tt.frag, tt.word, s)
			}
		})
	}
}

func TestCollectHitsSkipsInvalidEntries(t *testing.T) {
	content := map[string]any{
		"books": []any{
			map[string]any{"title": "A"},
			map[string]any{"link": "https://example.com"},
		},
		"odd": map[string]any{"not": "an array"},
	}
	get := func(name string) (any, bool) {
		c, ok := content[name]
		return c, ok
	}

	hits := CollectHits([]string{"books", "missing", "odd"}, get)
	if len(hits) != 1 {
		t.Fatalf("got %d hits, want 1", len(hits))
	}
	if hits[0].Category != "books" || hits[0].Entry.Title != "A" {
		t.Errorf("unexpected hit %+v", hits[0])
	}
}
