// Package feed supplies tweets to the set engine: parsing corpus documents
// and caching them in a local bolt database.
package feed

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/anacrolix/log"
	"github.com/titanous/json5"

	"github.com/trendlib/tweetset"
)

// Wire shape of a tweet in a corpus document.
type corpusTweet struct {
	User     string `json:"user"`
	Text     string `json:"text"`
	Retweets int    `json:"retweets"`
}

// Corpus is a collection of named tweet groups, decoded from a document
// mapping group names to tweet arrays. JSON5 rather than plain JSON so
// hand-maintained corpus files can carry comments and trailing commas.
type Corpus struct {
	groups map[string][]tweetset.Tweet
	// Group names in sorted order, for deterministic iteration.
	names []string
}

// ParseCorpus decodes a corpus document. Tweets with empty text or negative
// retweet counts are rejected.
func ParseCorpus(r io.Reader) (ret Corpus, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		err = fmt.Errorf("reading corpus: %w", err)
		return
	}
	var raw map[string][]corpusTweet
	if err = json5.Unmarshal(data, &raw); err != nil {
		err = fmt.Errorf("decoding corpus: %w", err)
		return
	}
	groups := make(map[string][]tweetset.Tweet, len(raw))
	for group, tweets := range raw {
		out := make([]tweetset.Tweet, 0, len(tweets))
		for i, ct := range tweets {
			if ct.Text == "" {
				err = fmt.Errorf("group %q: tweet %d has empty text", group, i)
				return
			}
			if ct.Retweets < 0 {
				err = fmt.Errorf("group %q: tweet %d has negative retweet count %d", group, i, ct.Retweets)
				return
			}
			out = append(out, tweetset.Tweet{
				Author:   ct.User,
				Text:     ct.Text,
				Retweets: ct.Retweets,
			})
		}
		groups[group] = out
		log.Default.Levelf(log.Debug, "parsed %d tweets in group %q", len(out), group)
	}
	ret.groups = groups
	ret.names = slices.Sorted(maps.Keys(groups))
	return
}

// LoadCorpusFile parses the corpus document at path.
func LoadCorpusFile(path string) (Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return Corpus{}, fmt.Errorf("opening corpus file: %w", err)
	}
	defer f.Close()
	c, err := ParseCorpus(f)
	if err != nil {
		return Corpus{}, fmt.Errorf("parsing %q: %w", path, err)
	}
	return c, nil
}

// Groups returns the group names in sorted order.
func (me Corpus) Groups() []string {
	return slices.Clone(me.names)
}

// Tweets returns the group's tweets in document order.
func (me Corpus) Tweets(group string) []tweetset.Tweet {
	return slices.Clone(me.groups[group])
}

// Set builds the group's ordered set by inserting in document order. Later
// tweets with a text already in the set are dropped, per Set.Insert; drops
// are logged since they usually mean a corpus has duplicate entries.
func (me Corpus) Set(group string) (ret tweetset.Set) {
	for _, t := range me.groups[group] {
		if ret.Contains(t) {
			log.Default.Levelf(log.Warning, "group %q: dropped duplicate tweet text %q", group, t.Text)
		}
		ret = ret.Insert(t)
	}
	return
}

// AllTweets returns the union of every group's set, folding in sorted group
// order. Texts appearing in multiple groups resolve per Set.Union: the tweet
// already in the accumulated union survives.
func (me Corpus) AllTweets() (ret tweetset.Set) {
	for _, name := range me.names {
		ret = me.Set(name).Union(ret)
	}
	return
}
