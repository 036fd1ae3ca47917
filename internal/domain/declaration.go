package domain

import (
	"regexp"
	"strings"
)

const tabWidth = 4

var (
	declarationRe = regexp.MustCompile(
		`^(?:(?:export|public|private|protected|internal|static|abstract|final|async|default|sealed|data|open|pub(?:\([^)]*\))?)\s+)*` +
			`(class|def|func|function|fn|struct|interface|type|enum|trait|impl|module|object)\s+` +
			`(?:\([^)]*\)\s*)?` + // Go receiver
			`([A-Za-z_]\w*)`,
	)
	attachedPrefixes = []string{"@", "//", "#", "/*", "*", "--"}
)

// declToken is one source line reduced to what the span search needs.
type declToken struct {
	textStart int // offset of the first non-indent byte
	end       int // offset of the line end, newline excluded
	indent    int
	blank     bool
	attached  bool // decorator or comment that belongs to the line below
	keyword   string
	name      string
}

func tokenizeDeclarations(src string) []declToken {
	var tokens []declToken

	for offset := 0; offset <= len(src); {
		end := strings.IndexByte(src[offset:], '\n')
		if end < 0 {
			end = len(src)
		} else {
			end += offset
		}

		line := strings.TrimRight(src[offset:end], "\r")
		body := strings.TrimLeft(line, " \t")
		tok := declToken{
			end:       offset + len(line),
			textStart: offset + len(line) - len(body),
			indent:    indentWidth(line[:len(line)-len(body)]),
			blank:     strings.TrimSpace(body) == "",
		}

		if !tok.blank {
			for _, prefix := range attachedPrefixes {
				if strings.HasPrefix(body, prefix) {
					tok.attached = true
					break
				}
			}

			if sub := declarationRe.FindStringSubmatch(body); sub != nil {
				tok.keyword, tok.name = sub[1], sub[2]
			}
		}

		tokens = append(tokens, tok)

		if end == len(src) {
			break
		}

		offset = end + 1
	}

	return tokens
}

func indentWidth(ws string) int {
	n := 0

	for _, r := range ws {
		if r == '\t' {
			n += tabWidth
		} else {
			n++
		}
	}

	return n
}

// DeclarationSpan locates a declaration inside source text. Start and End are
// byte offsets, End exclusive, and Start skips the declaration's indent. The
// lines are 1-based and inclusive.
type DeclarationSpan struct {
	Start, End         int
	StartLine, EndLine int
}

// FindDeclarationSpan finds the first declaration called name. The span runs
// from its declaration line to the line before the next declaration at the
// same or a lower indent (or a less indented line, or EOF). Trailing blank
// lines and the comments or decorators of that next declaration are left out.
//
// A dotted name such as `Foo.bar` is resolved member by member: `bar` is
// searched inside the body of `Foo`.
func FindDeclarationSpan(src, name string) (DeclarationSpan, bool) {
	outer, inner, nested := strings.Cut(name, ".")

	span, ok := findDeclaration(src, outer)
	if !ok || !nested {
		return span, ok
	}

	nl := strings.IndexByte(src[span.Start:span.End], '\n')
	if nl < 0 {
		return DeclarationSpan{}, false
	}

	body := span.Start + nl + 1

	member, ok := FindDeclarationSpan(src[body:span.End], inner)
	if !ok {
		return DeclarationSpan{}, false
	}

	return DeclarationSpan{
		Start:     body + member.Start,
		End:       body + member.End,
		StartLine: span.StartLine + member.StartLine,
		EndLine:   span.StartLine + member.EndLine,
	}, true
}

func findDeclaration(src, name string) (DeclarationSpan, bool) {
	tokens := tokenizeDeclarations(src)

	for i, decl := range tokens {
		if decl.keyword == "" || decl.name != name {
			continue
		}

		next := len(tokens)

		for j := i + 1; j < len(tokens); j++ {
			tok := tokens[j]
			if tok.blank {
				continue
			}

			if tok.indent < decl.indent || (tok.indent == decl.indent && tok.keyword != "") {
				next = j
				break
			}
		}

		last := next
		if next < len(tokens) {
			for last > i+1 && tokens[last-1].attached && tokens[last-1].indent == tokens[next].indent {
				last--
			}
		}

		for last > i+1 && tokens[last-1].blank {
			last--
		}

		return DeclarationSpan{
			Start:     decl.textStart,
			End:       tokens[last-1].end,
			StartLine: i + 1,
			EndLine:   last,
		}, true
	}

	return DeclarationSpan{}, false
}

// ReplaceDeclaration swaps the declaration called name in src for
// replacement.
func ReplaceDeclaration(src, name, replacement string) (string, bool) {
	span, ok := FindDeclarationSpan(src, name)
	if !ok {
		return "", false
	}

	return src[:span.Start] + replacement + src[span.End:], true
}
