package tweetset

import "fmt"

// Tweet is the domain item held by Sets and Lists. Text is the identity and
// ordering key: two Tweets are the same element iff their Text matches,
// regardless of Author or Retweets.
type Tweet struct {
	Author   string
	Text     string
	Retweets int
}

func (me Tweet) String() string {
	return fmt.Sprintf("@%v (%v RT): %q", me.Author, me.Retweets, me.Text)
}
