package trending

import (
	"testing"

	qt "github.com/go-quicktest/qt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendlib/tweetset"
)

var (
	google = Category{Name: "google", Keywords: []string{"android", "Android", "galaxy", "Galaxy", "nexus", "Nexus"}}
	apple  = Category{Name: "apple", Keywords: []string{"ios", "iOS", "iphone", "iPhone", "ipad", "iPad"}}
)

func baseSet() (ret tweetset.Set) {
	for _, tw := range []tweetset.Tweet{
		{Author: "gizmodo", Text: "iphone 5 review roundup", Retweets: 51},
		{Author: "gizmodo", Text: "android fragmentation, visualized", Retweets: 24},
		{Author: "TechCrunch", Text: "galaxy nexus reviewed", Retweets: 70},
		{Author: "TechCrunch", Text: "new ipad mini rumors", Retweets: 12},
		{Author: "engadget", Text: "laptop refresh season", Retweets: 33},
	} {
		ret = ret.Insert(tw)
	}
	return
}

func TestCategoryMatches(t *testing.T) {
	qt.Assert(t, qt.IsTrue(google.Matches(tweetset.Tweet{Text: "galaxy nexus reviewed"})))
	qt.Assert(t, qt.IsFalse(google.Matches(tweetset.Tweet{Text: "laptop refresh season"})))
	// Matching is case sensitive; variants must be listed explicitly.
	qt.Assert(t, qt.IsTrue(apple.Matches(tweetset.Tweet{Text: "new iPad!"})))
	qt.Assert(t, qt.IsFalse(apple.Matches(tweetset.Tweet{Text: "IPAD"})))
}

func TestReportCategorySets(t *testing.T) {
	r := NewReport(baseSet(), google, apple)

	googleSet := r.CategorySet("google")
	require.True(t, googleSet.Ok)
	assert.Equal(t, 2, googleSet.Value.Len())

	appleSet := r.CategorySet("apple")
	require.True(t, appleSet.Ok)
	assert.Equal(t, 2, appleSet.Value.Len())

	qt.Assert(t, qt.IsFalse(r.CategorySet("missing").Ok))
}

func TestReportCombined(t *testing.T) {
	r := NewReport(baseSet(), google, apple)
	combined := r.Combined()
	// The unclassified laptop tweet is excluded.
	assert.Equal(t, 4, combined.Len())
	qt.Assert(t, qt.IsFalse(combined.Contains(tweetset.Tweet{Text: "laptop refresh season"})))
	// Memoized: later calls hand back the same computed set.
	assert.Equal(t, combined, r.Combined())
}

func TestReportTrending(t *testing.T) {
	r := NewReport(baseSet(), google, apple)
	var counts []int
	r.Trending().ForEach(func(tw tweetset.Tweet) {
		counts = append(counts, tw.Retweets)
	})
	assert.Equal(t, []int{70, 51, 24, 12}, counts)
}

func TestCategoryRanking(t *testing.T) {
	empty := Category{Name: "nothing", Keywords: []string{"zzz not appearing"}}
	r := NewReport(baseSet(), apple, empty, google)
	stats := r.CategoryRanking()
	require.Len(t, stats, 3)

	assert.Equal(t, "google", stats[0].Name)
	require.True(t, stats[0].Top.Ok)
	assert.Equal(t, 70, stats[0].Top.Value.Retweets)

	assert.Equal(t, "apple", stats[1].Name)
	require.True(t, stats[1].Top.Ok)
	assert.Equal(t, 51, stats[1].Top.Value.Retweets)

	// Categories that matched nothing sort last, with no top tweet.
	assert.Equal(t, "nothing", stats[2].Name)
	assert.Equal(t, 0, stats[2].TweetCount)
	qt.Assert(t, qt.IsFalse(stats[2].Top.Ok))
}

func TestCategoryRankingTieBreaksOnName(t *testing.T) {
	// Two categories matching the same single tweet tie on retweets and
	// order by name.
	s := tweetset.Set{}.Insert(tweetset.Tweet{Author: "x", Text: "shared keyword", Retweets: 5})
	b := Category{Name: "bravo", Keywords: []string{"keyword"}}
	a := Category{Name: "alpha", Keywords: []string{"shared"}}
	stats := NewReport(s, b, a).CategoryRanking()
	require.Len(t, stats, 2)
	assert.Equal(t, "alpha", stats[0].Name)
	assert.Equal(t, "bravo", stats[1].Name)
}
