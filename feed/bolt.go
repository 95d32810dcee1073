package feed

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/anacrolix/missinggo/v2/panicif"
	"go.etcd.io/bbolt"

	"github.com/trendlib/tweetset"
)

// BoltStore caches tweet groups in a local bolt database so rankings can be
// rerun without the original corpus files. One bucket per group, keyed by
// tweet text.
type BoltStore struct {
	db *bbolt.DB
}

// Stored values are plain JSON; they're machine written, so none of the JSON5
// niceties apply.
type storedTweet struct {
	User     string `json:"user"`
	Retweets int    `json:"retweets"`
}

// OpenBoltStore opens (creating if needed) tweets.db in dir.
func OpenBoltStore(dir string) (*BoltStore, error) {
	db, err := bbolt.Open(filepath.Join(dir, "tweets.db"), 0o660, &bbolt.Options{
		Timeout: time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("opening tweet db: %w", err)
	}
	return &BoltStore{db}, nil
}

func (me *BoltStore) Close() error {
	return me.db.Close()
}

// PutGroup stores the tweets under the named group. A tweet whose text is
// already present in the bucket overwrites the stored value; first-wins
// semantics belong to Set construction, not the store.
func (me *BoltStore) PutGroup(group string, tweets []tweetset.Tweet) error {
	return me.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(group))
		if err != nil {
			return err
		}
		for _, t := range tweets {
			v, err := json.Marshal(storedTweet{User: t.Author, Retweets: t.Retweets})
			panicif.Err(err)
			if err := b.Put([]byte(t.Text), v); err != nil {
				return err
			}
		}
		return nil
	})
}

// ImportCorpus stores every group of the corpus.
func (me *BoltStore) ImportCorpus(c Corpus) error {
	for _, group := range c.Groups() {
		if err := me.PutGroup(group, c.Tweets(group)); err != nil {
			return fmt.Errorf("storing group %q: %w", group, err)
		}
	}
	return nil
}

// Group rebuilds the named group's set from the store. Bolt iterates keys in
// byte order, so insertion order is deterministic.
func (me *BoltStore) Group(group string) (ret tweetset.Set, err error) {
	err = me.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(group))
		if b == nil {
			return fmt.Errorf("no such group %q", group)
		}
		return b.ForEach(func(k, v []byte) error {
			var st storedTweet
			if err := json.Unmarshal(v, &st); err != nil {
				return fmt.Errorf("decoding stored tweet %q: %w", k, err)
			}
			ret = ret.Insert(tweetset.Tweet{
				Author:   st.User,
				Text:     string(k),
				Retweets: st.Retweets,
			})
			return nil
		})
	})
	return
}

// Groups returns the stored group names in bucket order.
func (me *BoltStore) Groups() (ret []string, err error) {
	err = me.db.View(func(tx *bbolt.Tx) error {
		return tx.ForEach(func(name []byte, _ *bbolt.Bucket) error {
			ret = append(ret, string(name))
			return nil
		})
	})
	return
}

// AllTweets unions every stored group, in group name order.
func (me *BoltStore) AllTweets() (ret tweetset.Set, err error) {
	groups, err := me.Groups()
	if err != nil {
		return
	}
	for _, group := range groups {
		s, err := me.Group(group)
		if err != nil {
			return tweetset.Set{}, err
		}
		ret = s.Union(ret)
	}
	return
}
