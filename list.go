package tweetset

import "iter"

// List is a persistent singly linked sequence of Tweets, produced by
// Set.DescendingByRetweet. The zero value is the empty list.
type List struct {
	front *cons
}

type cons struct {
	tweet Tweet
	rest  *cons
}

func (me List) IsEmpty() bool {
	return me.front == nil
}

// Head returns the first tweet, or ErrEmptyCollection on the empty list.
func (me List) Head() (Tweet, error) {
	if me.front == nil {
		return Tweet{}, ErrEmptyCollection
	}
	return me.front.tweet, nil
}

// Tail returns the list without its first tweet, or ErrEmptyCollection on the
// empty list.
func (me List) Tail() (List, error) {
	if me.front == nil {
		return List{}, ErrEmptyCollection
	}
	return List{me.front.rest}, nil
}

// ForEach visits the tweets front to back.
func (me List) ForEach(visitor func(Tweet)) {
	for c := me.front; c != nil; c = c.rest {
		visitor(c.tweet)
	}
}

// All returns a restartable iterator over the list, front to back.
func (me List) All() iter.Seq[Tweet] {
	return func(yield func(Tweet) bool) {
		for c := me.front; c != nil; c = c.rest {
			if !yield(c.tweet) {
				return
			}
		}
	}
}

func (me List) Len() (n int) {
	for c := me.front; c != nil; c = c.rest {
		n++
	}
	return
}

func (me List) prepend(t Tweet) List {
	return List{&cons{tweet: t, rest: me.front}}
}
