// Package tweetset provides a persistent ordered set of tweets keyed by text,
// and ranking queries over it. Sets are immutable values: every operation
// returns a new Set sharing unchanged subtrees with the original, so older
// views stay valid after a "write". The tree is deliberately unbalanced; depth
// is bounded by the number of distinct text keys, which is fine at the scale
// this targets.
package tweetset

import (
	"iter"

	"github.com/trendlib/tweetset/internal/errorsx"
)

// ErrEmptyCollection is returned by operations that are undefined on empty
// collections: Set.MostRetweeted, List.Head and List.Tail. Check IsEmpty
// first.
const ErrEmptyCollection = errorsx.String("empty collection")

// Set is a persistent binary search tree of Tweets ordered by Text. The zero
// value is the empty set and is ready to use.
type Set struct {
	root *node
}

// nil means empty. Nodes are never modified once created.
type node struct {
	tweet       Tweet
	left, right *node
}

func (me Set) IsEmpty() bool {
	return me.root == nil
}

// Contains reports whether the set holds a tweet with the same text as t.
func (me Set) Contains(t Tweet) bool {
	n := me.root
	for n != nil {
		switch {
		case t.Text < n.tweet.Text:
			n = n.left
		case t.Text > n.tweet.Text:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Insert returns a set that also contains t. If a tweet with the same text is
// already present the receiver's membership is unchanged: the first inserted
// tweet for a given text wins, later ones are dropped silently.
func (me Set) Insert(t Tweet) Set {
	return Set{me.root.insert(t)}
}

func (n *node) insert(t Tweet) *node {
	if n == nil {
		return &node{tweet: t}
	}
	switch {
	case t.Text < n.tweet.Text:
		return &node{tweet: n.tweet, left: n.left.insert(t), right: n.right}
	case t.Text > n.tweet.Text:
		return &node{tweet: n.tweet, left: n.left, right: n.right.insert(t)}
	default:
		return n
	}
}

// Remove returns a set without any tweet matching t's text. A removed node is
// replaced by the union of its children rather than by successor promotion,
// so the tree may reshape more aggressively than a textbook deletion. That is
// intended: membership and ordering are what the type guarantees, not shape.
func (me Set) Remove(t Tweet) Set {
	return Set{me.root.remove(t.Text)}
}

func (n *node) remove(text string) *node {
	if n == nil {
		return nil
	}
	switch {
	case text < n.tweet.Text:
		return &node{tweet: n.tweet, left: n.left.remove(text), right: n.right}
	case text > n.tweet.Text:
		return &node{tweet: n.tweet, left: n.left, right: n.right.remove(text)}
	default:
		return n.left.union(n.right)
	}
}

// Filter returns the set of tweets for which pred holds.
func (me Set) Filter(pred func(Tweet) bool) Set {
	return Set{me.root.filterAcc(pred, nil)}
}

// In-order accumulator fold: left subtree, own tweet, right subtree.
func (n *node) filterAcc(pred func(Tweet) bool, acc *node) *node {
	if n == nil {
		return acc
	}
	acc = n.left.filterAcc(pred, acc)
	if pred(n.tweet) {
		acc = acc.insert(n.tweet)
	}
	return n.right.filterAcc(pred, acc)
}

// Union returns the set of tweets present in either set. On a text collision
// the tweet already in other survives, since each of the receiver's tweets is
// added to other via Insert and Insert keeps the existing element. Quadratic
// in the worst case, which is acceptable at the intended scale.
func (me Set) Union(other Set) Set {
	return Set{me.root.union(other.root)}
}

func (n *node) union(other *node) *node {
	if n == nil {
		return other
	}
	return n.right.union(n.left.union(other.insert(n.tweet)))
}

// ForEach visits every tweet exactly once, in ascending text order.
func (me Set) ForEach(visitor func(Tweet)) {
	me.root.forEach(visitor)
}

func (n *node) forEach(visitor func(Tweet)) {
	if n == nil {
		return
	}
	n.left.forEach(visitor)
	visitor(n.tweet)
	n.right.forEach(visitor)
}

// All returns a restartable iterator over the set in ascending text order.
func (me Set) All() iter.Seq[Tweet] {
	return func(yield func(Tweet) bool) {
		me.root.all(yield)
	}
}

func (n *node) all(yield func(Tweet) bool) bool {
	if n == nil {
		return true
	}
	return n.left.all(yield) && yield(n.tweet) && n.right.all(yield)
}

// Len counts the tweets in the set by traversal.
func (me Set) Len() (n int) {
	me.ForEach(func(Tweet) { n++ })
	return
}
