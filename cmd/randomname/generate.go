package main

import (
	"fmt"
	"io"

	"github.com/bastiangx/randomname/pkg/phrase"
	"github.com/bastiangx/randomname/pkg/wordlist"
	"github.com/spf13/cobra"
)

func printLines(w io.Writer, lines []string) {
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
}

func newGetCmd(a *app) *cobra.Command {
	var (
		adjectives, nouns []string
		count             int
	)
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print adjective-noun names",
		Long: `Print adjective-noun names. Subcategories narrow the choice of words.

Examples:
  randomname get
  randomname get --adj colors,sizes --noun cats -n 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runGet(cmd, adjectives, nouns, count)
		},
	}
	cmd.Flags().StringSliceVar(&adjectives, "adj", nil, "Adjective subcategories")
	cmd.Flags().StringSliceVar(&nouns, "noun", nil, "Noun subcategories")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of names")
	return cmd
}

func (a *app) runGet(cmd *cobra.Command, adjectives, nouns []string, count int) error {
	g, err := a.generator()
	if err != nil {
		return err
	}
	names, err := g.GenerateN(count, phrase.NameTokens(adjectives, nouns), phrase.WithLiterals(false))
	if err != nil {
		return err
	}
	printLines(cmd.OutOrStdout(), names)
	return nil
}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		count    int
		casing   string
		literals bool
	)
	cmd := &cobra.Command{
		Use:     "generate [tokens...]",
		Aliases: []string{"gen"},
		Short:   "Generate phrases with one word per category token",
		Long: `Generate phrases with one word per category token. Tokens are category
paths such as "a/colors" or "nouns/". Comma separated tokens share one word.
Without tokens the configured template is used.

Examples:
  randomname generate a/colors n/cats
  randomname generate v/ n/ --sep _ -n 5
  randomname generate a/ n/ uuid/8
  randomname generate team a/ n/ --literals`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.generator()
			if err != nil {
				return err
			}
			phrases, err := g.GenerateN(count, args, a.phraseOptions(casing, literals)...)
			if err != nil {
				return err
			}
			printLines(cmd.OutOrStdout(), phrases)
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of distinct phrases")
	cmd.Flags().StringVar(&casing, "case", "", "Phrase case: lower, upper or title")
	cmd.Flags().BoolVarP(&literals, "literals", "l", false, "Use tokens without '/' as literal words")
	return cmd
}

func newSampleCmd(a *app) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "sample [tokens...]",
		Short: "Print distinct words from the given categories",
		Long: `Print up to n distinct words drawn from the union of the categories.

Examples:
  randomname sample nouns -n 5
  randomname sample a/colors,a/sizes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.generator()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("count") {
				count = a.cfg.Generate.DefaultCount
			}
			words, err := g.Sample(count, args...)
			if err != nil {
				return err
			}
			printLines(cmd.OutOrStdout(), words)
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", phrase.DefaultSampleSize, "Number of words")
	return cmd
}

func newAvailableCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "available [filters...]",
		Aliases: []string{"ls"},
		Short:   "List category names",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.generator()
			if err != nil {
				return err
			}
			names, err := g.Available(args...)
			if err != nil {
				return err
			}
			printLines(cmd.OutOrStdout(), names)
			return nil
		},
	}
}

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <glob> [categories...]",
		Short: "Find words matching a glob pattern",
		Long: `Find words matching a shell style glob, optionally within categories.

Examples:
  randomname search 'ca*'
  randomname search '*er' nouns/tools`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.generator()
			if err != nil {
				return err
			}
			words, err := g.Search(args[0], args[1:]...)
			if err != nil {
				return err
			}
			printLines(cmd.OutOrStdout(), words)
			return nil
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	var (
		words bool
		out   string
	)
	cmd := &cobra.Command{
		Use:   "show [tokens...]",
		Short: "Print the tree of lists a query resolves to",
		Long: `Print the tree of lists a query resolves to. With --out the words are
written to a plain text file instead, one per line.

Examples:
  randomname show nouns
  randomname show a/colors --words
  randomname show n/cats --out ~/lists/cats.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.generator()
			if err != nil {
				return err
			}
			sub, err := g.Root().Subset(args...)
			if err != nil {
				return err
			}
			if out != "" {
				if err := wordlist.DumpFile(out, sub); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d words to %s\n", sub.Len(), out)
				return nil
			}
			return wordlist.Dump(cmd.OutOrStdout(), sub, words)
		},
	}
	cmd.Flags().BoolVarP(&words, "words", "w", false, "Print the words of each list")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the words to a file")
	return cmd
}
