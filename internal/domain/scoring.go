package domain

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	// Scoring weights
	ScoreExactMatch     = 100.0
	ScorePrefixMatch    = 75.0
	ScoreSubstringMatch = 50.0
	ScoreFuzzyMatch     = 25.0

	// Position bonus (earlier words are better)
	ScorePositionBonus = 10.0

	// Tag matches count for less than title matches
	ScoreTagWeight = 0.6

	// Fuzzy matching needs this share of query characters present in the word
	FuzzyThreshold = 0.75

	// Fragments shorter than this never fuzzy-match
	FuzzyMinLength = 3
)

// Hit is a valid entry together with the category it belongs to.
type Hit struct {
	Category string `json:"category"`
	Entry    Entry  `json:"entry"`
}

// Candidate is a hit with its match score.
type Candidate struct {
	Hit        Hit
	TitleScore float64
	TagScore   float64
	TotalScore float64
}

// Score calculates how well an entry matches a query. Every query fragment
// must match the title or a tag, otherwise the score is zero.
func Score(query *Query, entry Entry) (titleScore, tagScore float64) {
	if query.Empty() {
		return 0, 0
	}

	titleWords := Words(entry.Title)
	tagWords := tagWords(entry)

	for _, frag := range query.Fragments {
		bestTitle := bestFragmentScore(frag, titleWords)
		bestTag := bestFragmentScore(frag, tagWords) * ScoreTagWeight
		if bestTitle == 0 && bestTag == 0 {
			return 0, 0
		}
		if bestTitle >= bestTag {
			titleScore += bestTitle
		} else {
			tagScore += bestTag
		}
	}
	return titleScore, tagScore
}

// tagWords collects the words of hard tags and soft tag values.
func tagWords(entry Entry) []string {
	var words []string
	for _, tag := range entry.Tags {
		words = append(words, Words(tag)...)
	}
	for _, st := range entry.SoftTags {
		words = append(words, Words(st.Value)...)
	}
	return words
}

func bestFragmentScore(frag string, words []string) float64 {
	best := 0.0
	for i, w := range words {
		if s := scoreFragment(frag, w, i); s > best {
			best = s
		}
	}
	return best
}

// scoreFragment scores a single query fragment against a single word.
func scoreFragment(queryFrag, word string, position int) float64 {
	if queryFrag == "" || word == "" {
		return 0.0
	}

	if queryFrag == word {
		return ScoreExactMatch + calculatePositionBonus(position)
	}

	if strings.HasPrefix(word, queryFrag) {
		return ScorePrefixMatch + calculatePositionBonus(position)
	}

	if index := strings.Index(word, queryFrag); index >= 0 {
		// Earlier substring matches get higher score
		substringBonus := ScorePositionBonus * (1.0 - float64(index)/float64(len(word)))
		return ScoreSubstringMatch + substringBonus
	}

	if utf8.RuneCountInString(queryFrag) < FuzzyMinLength {
		return 0.0
	}
	if similarity := calculateSimilarity(queryFrag, word); similarity >= FuzzyThreshold {
		return ScoreFuzzyMatch * similarity
	}

	return 0.0
}

// calculatePositionBonus gives bonus for earlier positions
func calculatePositionBonus(position int) float64 {
	return ScorePositionBonus * math.Exp(-float64(position)*0.3)
}

// calculateSimilarity is the ratio of query runes that occur in the word.
func calculateSimilarity(s1, s2 string) float64 {
	total := utf8.RuneCountInString(s1)
	if total == 0 || s2 == "" {
		return 0.0
	}

	matches := 0
	for _, c := range s1 {
		if strings.ContainsRune(s2, c) {
			matches++
		}
	}

	return float64(matches) / float64(total)
}

// RankEntries scores every hit and returns the matching ones, best first.
// Ties keep catalogue order: category name, then entry position.
func RankEntries(query *Query, hits []Hit) []*Candidate {
	candidates := make([]*Candidate, 0, len(hits))

	for _, hit := range hits {
		titleScore, tagScore := Score(query, hit.Entry)
		total := titleScore + tagScore
		if total == 0 {
			continue
		}
		candidates = append(candidates, &Candidate{
			Hit:        hit,
			TitleScore: titleScore,
			TagScore:   tagScore,
			TotalScore: total,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.TotalScore != b.TotalScore {
			return a.TotalScore > b.TotalScore
		}
		if a.Hit.Category != b.Hit.Category {
			return a.Hit.Category < b.Hit.Category
		}
		return a.Hit.Entry.Index < b.Hit.Entry.Index
	})

	return candidates
}

// CollectHits returns every valid entry of every category, in name order.
func CollectHits(names []string, get func(string) (any, bool)) []Hit {
	var hits []Hit
	for _, name := range names {
		content, ok := get(name)
		if !ok {
			continue
		}
		for _, entry := range Project(content).Entries {
			hits = append(hits, Hit{Category: name, Entry: entry})
		}
	}
	return hits
}
