package spotlight

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

type QuickLink struct {
	Label string
	Link  string
	// Command is the console invocation that opens the screen.
	Command string
	// Keywords are other names users know the screen by.
	Keywords []string
}

func NewQuickLink(label, link, command string, keywords ...string) *QuickLink {
	return &QuickLink{Label: label, Link: link, Command: command, Keywords: keywords}
}

func (l *QuickLink) terms() []string {
	return append([]string{l.Label, l.Command}, l.Keywords...)
}

type QuickLinks struct {
	items []*QuickLink
}

// Find ranks links whose label, command or keywords fuzzily contain q,
// best match first. A link is ranked by its closest term. An empty query
// returns every link in registration order.
func (ql *QuickLinks) Find(q string) []*QuickLink {
	if q == "" {
		return append([]*QuickLink(nil), ql.items...)
	}
	var (
		words []string
		owner []int
	)
	for i, it := range ql.items {
		for _, term := range it.terms() {
			words = append(words, term)
			owner = append(owner, i)
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(q, words)
	sort.Stable(ranks)

	seen := map[int]bool{}
	result := make([]*QuickLink, 0, len(ranks))
	for _, rank := range ranks {
		i := owner[rank.OriginalIndex]
		if seen[i] {
			continue
		}
		seen[i] = true
		result = append(result, ql.items[i])
	}
	return result
}

func (ql *QuickLinks) Add(links ...*QuickLink) {
	ql.items = append(ql.items, links...)
}

func (ql *QuickLinks) All() []*QuickLink {
	return ql.items
}
