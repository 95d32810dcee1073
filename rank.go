package tweetset

import (
	g "github.com/anacrolix/generics"
)

// MostRetweeted returns the tweet with the highest retweet count, or
// ErrEmptyCollection on the empty set. Ties go to the tweet visited first in
// text order: a later tweet only displaces the current maximum when its count
// is strictly greater.
func (me Set) MostRetweeted() (Tweet, error) {
	top := me.root.mostRetweeted(g.None[Tweet]())
	if !top.Ok {
		return Tweet{}, ErrEmptyCollection
	}
	return top.Value, nil
}

func (n *node) mostRetweeted(cur g.Option[Tweet]) g.Option[Tweet] {
	if n == nil {
		return cur
	}
	cur = n.left.mostRetweeted(cur)
	if !cur.Ok || n.tweet.Retweets > cur.Value.Retweets {
		cur.Set(n.tweet)
	}
	return n.right.mostRetweeted(cur)
}

// DescendingByRetweet returns every tweet in the set, most retweeted first,
// with ties ordered the same way MostRetweeted breaks them. Implemented by
// repeatedly extracting the maximum and removing it, so it's O(n²); fine for
// the sizes this is built for, and simpler to trust than a heap.
func (me Set) DescendingByRetweet() (ret List) {
	var byRank []Tweet
	for s := me; ; {
		top := s.root.mostRetweeted(g.None[Tweet]())
		if !top.Ok {
			break
		}
		byRank = append(byRank, top.Value)
		s = s.Remove(top.Value)
	}
	for i := len(byRank) - 1; i >= 0; i-- {
		ret = ret.prepend(byRank[i])
	}
	return
}
