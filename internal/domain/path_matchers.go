package domain

import (
	"regexp"
	"strings"
)

// pathMatcher recognizes a file path in a single line. The first capture
// group is the raw path.
type pathMatcher struct {
	name string
	re   *regexp.Regexp
}

func (pm pathMatcher) match(line string) (string, bool) {
	sub := pm.re.FindStringSubmatch(line)
	if sub == nil {
		return "", false
	}

	raw := strings.TrimSpace(sub[1])
	if raw == "" {
		return "", false
	}

	return raw, true
}

type pathMatchers []pathMatcher

// first returns the path found by the earliest matcher that accepts line.
func (ms pathMatchers) first(line string) (string, string, bool) {
	for _, pm := range ms {
		if raw, ok := pm.match(line); ok {
			return raw, pm.name, true
		}
	}

	return "", "", false
}

const commentToken = `(?://|#|--|%|"|;)`

// pathBody matches a path that may contain spaces. Without a `./` or `../`
// prefix, a spaced path needs a separator before its extension so prose like
// `Version 1.2` stays unmatched.
const pathBody = `(?:\.{1,2}[\\/])\S.*?|[^\s#\[!](?:\S*|.*?[\\/].*?)\.\w+`

// headerMatchers run over the non-fence lines of a section, in order.
var headerMatchers = pathMatchers{
	{
		name: "title",
		re:   regexp.MustCompile(`^(?:#+\s*)?title\s*=\s*(.+?)\s*$`),
	},
	{
		name: "directive",
		re:   regexp.MustCompile(`^#+\s*(?:File|Path|Location|Source|Module Path|Container Path)\s*:\s*(.+?)\s*$`),
	},
	{
		name: "bracket",
		re:   regexp.MustCompile(`^#+\s*\[([^\]]+)\]\s*$`),
	},
	{
		name: "heading",
		re:   regexp.MustCompile(`^#\s+(` + pathBody + `)\s*$`),
	},
}

// inBlockMatchers run over the first line of a code block.
var inBlockMatchers = pathMatchers{
	{
		name: "comment-directive",
		re:   regexp.MustCompile(`^\s*` + commentToken + `\s*(?:File|Path|Location|Source)\s*:\s*(.+?)\s*$`),
	},
	{
		name: "comment-bracket",
		re:   regexp.MustCompile(`^\s*` + commentToken + `\s*\[([^\]]+)\]\s*$`),
	},
	{
		name: "comment-path",
		re:   regexp.MustCompile(`^\s*` + commentToken + `\s*(` + pathBody + `)\s*$`),
	},
}

var declarationDirectiveRe = regexp.MustCompile(`^#+\s*Declaration\s*:\s*([A-Za-z_][\w.]*)\s*$`)
