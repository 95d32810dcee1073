// Ranks tweets by retweet count from the command line.
//
// Example run:
// $ tweetrank trending --corpus tweets.json5 -k apple=iphone,iPhone,ipad -k google=android,Android
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/anacrolix/envpprof"
	"github.com/anacrolix/log"
	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"

	"github.com/trendlib/tweetset"
	"github.com/trendlib/tweetset/feed"
	"github.com/trendlib/tweetset/trending"
)

type SourceArgs struct {
	Corpus string `arg:"-c,--corpus" help:"corpus document (json5)"`
	DB     string `arg:"--db" help:"directory holding the bolt tweet cache"`
}

type TrendingCmd struct {
	SourceArgs
	Keywords []string `arg:"-k,--keyword,separate" help:"category as name=keyword,keyword,…"`
	Verbose  bool     `arg:"-v" help:"dump category stats to stderr"`
}

type ImportCmd struct {
	Corpus string `arg:"-c,--corpus,required" help:"corpus document (json5)"`
	DB     string `arg:"--db,required" help:"directory to hold the bolt tweet cache"`
}

func main() {
	defer envpprof.Stop()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func mainErr() error {
	var args struct {
		Trending *TrendingCmd `arg:"subcommand:trending"`
		Import   *ImportCmd   `arg:"subcommand:import"`
	}
	p := arg.MustParse(&args)
	switch {
	case args.Trending != nil:
		return runTrending(args.Trending)
	case args.Import != nil:
		return runImport(args.Import)
	default:
		p.Fail("expected a subcommand")
		return nil
	}
}

func loadSet(args SourceArgs) (tweetset.Set, error) {
	switch {
	case args.Corpus != "":
		c, err := feed.LoadCorpusFile(args.Corpus)
		if err != nil {
			return tweetset.Set{}, err
		}
		return c.AllTweets(), nil
	case args.DB != "":
		store, err := feed.OpenBoltStore(args.DB)
		if err != nil {
			return tweetset.Set{}, err
		}
		defer store.Close()
		return store.AllTweets()
	default:
		return tweetset.Set{}, fmt.Errorf("need --corpus or --db")
	}
}

// Parses "name=keyword,keyword,…".
func parseCategory(s string) (ret trending.Category, err error) {
	name, keywords, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		err = fmt.Errorf("bad category %q: expected name=keyword,…", s)
		return
	}
	ret.Name = name
	for _, k := range strings.Split(keywords, ",") {
		if k != "" {
			ret.Keywords = append(ret.Keywords, k)
		}
	}
	if len(ret.Keywords) == 0 {
		err = fmt.Errorf("bad category %q: no keywords", s)
	}
	return
}

func runTrending(cmd *TrendingCmd) error {
	base, err := loadSet(cmd.SourceArgs)
	if err != nil {
		return err
	}
	log.Printf("ranking %d tweets", base.Len())
	ranked := base
	if len(cmd.Keywords) != 0 {
		categories := make([]trending.Category, 0, len(cmd.Keywords))
		for _, s := range cmd.Keywords {
			c, err := parseCategory(s)
			if err != nil {
				return err
			}
			categories = append(categories, c)
		}
		report := trending.NewReport(base, categories...)
		if cmd.Verbose {
			spew.Fdump(os.Stderr, report.CategoryRanking())
		}
		ranked = report.Combined()
	}
	for t := range ranked.DescendingByRetweet().All() {
		fmt.Printf("%7s  @%s: %s\n", humanize.Comma(int64(t.Retweets)), t.Author, t.Text)
	}
	return nil
}

func runImport(cmd *ImportCmd) error {
	c, err := feed.LoadCorpusFile(cmd.Corpus)
	if err != nil {
		return err
	}
	store, err := feed.OpenBoltStore(cmd.DB)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.ImportCorpus(c); err != nil {
		return err
	}
	log.Printf("imported %d groups from %q", len(c.Groups()), cmd.Corpus)
	return nil
}
