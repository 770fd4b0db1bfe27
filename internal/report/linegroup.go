package report

import (
	"sort"
	"strconv"
)

// nonNumericLineKey is the primary sort key assigned to lines with no leading
// numeric prefix ("N/A") so they order after every numbered line; ties among
// them fall through to the lexicographic comparison.
const nonNumericLineKey = 999

// CategoryAmount is one category's contribution within a Schedule C line.
type CategoryAmount struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Count    int     `json:"count,omitempty"`
}

// LineGroup is the set of categories that report on a single Schedule C line.
type LineGroup struct {
	Line       string           `json:"line"`
	Total      float64          `json:"total"`
	Categories []CategoryAmount `json:"categories"`
}

// GroupByLine groups category amounts by Schedule C line and returns a
// deterministically ordered slice: lines sorted by their leading number
// ("20b" sorts as 20, so it lands between 18 and 26), lines without a number
// after all numbered ones, lexicographic comparison breaking ties. Categories
// within a line are sorted by amount descending, name ascending on equal
// amounts. The ordering never depends on map iteration order.
func GroupByLine(entries []CategoryAmount, lineFor func(category string) string) []LineGroup {
	byLine := make(map[string]*LineGroup)
	var order []string

	for _, e := range entries {
		line := lineFor(e.Category)
		g, ok := byLine[line]
		if !ok {
			g = &LineGroup{Line: line}
			byLine[line] = g
			order = append(order, line)
		}
		g.Total += e.Amount
		g.Categories = append(g.Categories, e)
	}

	sort.Slice(order, func(i, j int) bool {
		ki, kj := lineSortKey(order[i]), lineSortKey(order[j])
		if ki != kj {
			return ki < kj
		}
		return order[i] < order[j]
	})

	groups := make([]LineGroup, 0, len(order))
	for _, line := range order {
		g := byLine[line]
		sort.Slice(g.Categories, func(i, j int) bool {
			if g.Categories[i].Amount != g.Categories[j].Amount {
				return g.Categories[i].Amount > g.Categories[j].Amount
			}
			return g.Categories[i].Category < g.Categories[j].Category
		})
		groups = append(groups, *g)
	}
	return groups
}

// lineSortKey extracts the leading numeric prefix of a line label ("20b" is
// 20, "16a" is 16). Labels with no numeric prefix get the fallback key.
func lineSortKey(line string) float64 {
	end := 0
	for end < len(line) && (line[end] >= '0' && line[end] <= '9' || line[end] == '.') {
		end++
	}
	if end == 0 {
		return nonNumericLineKey
	}
	f, err := strconv.ParseFloat(line[:end], 64)
	if err != nil {
		return nonNumericLineKey
	}
	return f
}
