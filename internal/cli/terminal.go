package cli

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/bastiangx/randomname/pkg/wordlist"
	"github.com/charmbracelet/lipgloss"
)

// Terminal prints prompt output with styles suited to out.
type Terminal struct {
	out    io.Writer
	title  lipgloss.Style
	hint   lipgloss.Style
	word   lipgloss.Style
	err    lipgloss.Style
	prompt lipgloss.Style
}

// NewTerminal styles for out. Colors are dropped when out is not a terminal.
func NewTerminal(out io.Writer) *Terminal {
	r := lipgloss.NewRenderer(out)
	return &Terminal{
		out:    out,
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("75")),
		hint:   r.NewStyle().Faint(true),
		word:   r.NewStyle().Foreground(lipgloss.Color("75")),
		err:    r.NewStyle().Foreground(lipgloss.Color("203")),
		prompt: r.NewStyle().Foreground(lipgloss.Color("212")),
	}
}

func (t *Terminal) Title(s string) { fmt.Fprintln(t.out, t.title.Render(s)) }
func (t *Terminal) Hint(s string) { fmt.Fprintln(t.out, t.hint.Render(s)) }
func (t *Terminal) Error(s string) { fmt.Fprintln(t.out, t.err.Render("error: "+s)) }
func (t *Terminal) Prompt() { fmt.Fprint(t.out, t.prompt.Render("> ")) }

// Results prints one numbered line per result.
func (t *Terminal) Results(results []string) {
	if len(results) == 0 {
		t.Hint("no results")
		return
	}
	for i, r := range results {
		fmt.Fprintf(t.out, "%2d. %s\n", i+1, t.word.Render(r))
	}
}

// Unresolved prints a failed lookup with its suggestions.
func (t *Terminal) Unresolved(err *wordlist.UnresolvedError) {
	t.Error(err.Error())
	for _, s := range err.Suggestions {
		fmt.Fprintf(t.out, "    %s\n", t.word.Render(s))
	}
}

// Stats prints counters sorted by name.
func (t *Terminal) Stats(stats map[string]int) {
	for _, k := range slices.Sorted(maps.Keys(stats)) {
		fmt.Fprintf(t.out, "%-14s %8s\n", k, formatWithCommas(stats[k]))
	}
}

// Help lists the prompt commands.
func (t *Terminal) Help() {
	fmt.Fprint(t.out, strings.TrimLeft(`
<tokens...>                 generate phrases, one word per token
:n <count> <tokens...>      generate count distinct phrases
:sample [count] <tokens...> sample words from the categories
:available [filters...]     list categories
:search <glob> [tokens...]  find words
:stats                      tree and cache counters
:reload                     re-read word files
:quit                       leave
`, "\n"))
}

// formatWithCommas formats an integer with comma separators
func formatWithCommas(n int) string {
	str := fmt.Sprintf("%d", n)
	if n < 1000 {
		return str
	}
	var b strings.Builder
	for i, char := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(char)
	}
	return b.String()
}
