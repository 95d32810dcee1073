// Package trending classifies a set of tweets into keyword categories and
// ranks the results by retweet count.
package trending

import (
	"sort"
	"strings"

	g "github.com/anacrolix/generics"
	"github.com/anacrolix/multiless"
	"github.com/anacrolix/sync"

	"github.com/trendlib/tweetset"
)

// Category names a list of keywords. A tweet belongs to the category when its
// text contains any keyword as a substring. Matching is case sensitive;
// include both spellings in the keyword list if you want both.
type Category struct {
	Name     string
	Keywords []string
}

func (me Category) Matches(t tweetset.Tweet) bool {
	for _, k := range me.Keywords {
		if strings.Contains(t.Text, k) {
			return true
		}
	}
	return false
}

// Report holds the per-category subsets of a base tweet set. Category sets
// are filtered eagerly at construction; the combined set is unioned lazily on
// first use since not every caller wants it.
type Report struct {
	categories []Category
	sets       []tweetset.Set

	combinedOnce sync.Once
	combined     tweetset.Set
}

func NewReport(base tweetset.Set, categories ...Category) *Report {
	me := &Report{
		categories: categories,
		sets:       make([]tweetset.Set, 0, len(categories)),
	}
	for _, c := range categories {
		me.sets = append(me.sets, base.Filter(c.Matches))
	}
	return me
}

// CategorySet returns the subset for the named category.
func (me *Report) CategorySet(name string) (ret g.Option[tweetset.Set]) {
	for i, c := range me.categories {
		if c.Name == name {
			ret.Set(me.sets[i])
			break
		}
	}
	return
}

// Combined returns the union of all category sets. Computed once and reused;
// the inputs are immutable so it never needs invalidating.
func (me *Report) Combined() tweetset.Set {
	me.combinedOnce.Do(func() {
		for _, s := range me.sets {
			me.combined = s.Union(me.combined)
		}
	})
	return me.combined
}

// Trending returns every classified tweet, most retweeted first.
func (me *Report) Trending() tweetset.List {
	return me.Combined().DescendingByRetweet()
}

// CategoryStats summarizes one category. Top is unset when the category
// matched nothing.
type CategoryStats struct {
	Name       string
	TweetCount int
	Top        g.Option[tweetset.Tweet]
}

// CategoryRanking returns per-category stats ordered by each category's most
// retweeted tweet, most popular first. Categories that matched nothing sort
// last; remaining ties break on category name.
func (me *Report) CategoryRanking() []CategoryStats {
	stats := make([]CategoryStats, 0, len(me.sets))
	for i, s := range me.sets {
		cs := CategoryStats{
			Name:       me.categories[i].Name,
			TweetCount: s.Len(),
		}
		if top, err := s.MostRetweeted(); err == nil {
			cs.Top.Set(top)
		}
		stats = append(stats, cs)
	}
	sort.Slice(stats, func(i, j int) bool {
		l, r := stats[i], stats[j]
		return multiless.New().Bool(
			!l.Top.Ok, !r.Top.Ok,
		).Int(
			// Unset Top has zero retweets, already settled by the Bool above.
			r.Top.Value.Retweets, l.Top.Value.Retweets,
		).Cmp(
			strings.Compare(l.Name, r.Name),
		).Less()
	})
	return stats
}
