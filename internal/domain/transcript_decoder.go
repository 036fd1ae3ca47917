package domain

import (
	"log/slog"
	"regexp"
	"strings"

	m "github.com/mouse-blink/codedoc/internal/model"
)

var (
	ruleRe       = regexp.MustCompile(`^\s*(?:-{3,}|\*{3,}|_{3,})\s*$`)
	fenceOpenRe  = regexp.MustCompile("^\\s*(`{3,})\\s*([\\w+#.-]*)\\s*$")
	fenceCloseRe = regexp.MustCompile("^\\s*(`{3,})\\s*$")
)

type lineKind int

const (
	lineText lineKind = iota
	lineFenceOpen
	lineFenceBody
	lineFenceClose
)

// classifyLines marks each line as plain text, a fence delimiter or fenced
// content. A fence closes on a backtick run at least as long as its opener.
func classifyLines(lines []string) []lineKind {
	kinds := make([]lineKind, len(lines))
	open := 0

	for i, line := range lines {
		if open > 0 {
			if sub := fenceCloseRe.FindStringSubmatch(line); sub != nil && len(sub[1]) >= open {
				kinds[i] = lineFenceClose
				open = 0

				continue
			}

			kinds[i] = lineFenceBody

			continue
		}

		if sub := fenceOpenRe.FindStringSubmatch(line); sub != nil {
			kinds[i] = lineFenceOpen
			open = len(sub[1])

			continue
		}

		kinds[i] = lineText
	}

	return kinds
}

type section struct {
	lines []string
	kinds []lineKind
}

// splitSections cuts a document at every heading or horizontal rule that is
// not inside a fenced block. The delimiter line starts the next section. A
// `# Declaration:` directive belongs to the section it appears in.
func splitSections(doc string) []section {
	doc = strings.ReplaceAll(doc, "\r\n", "\n")
	lines := strings.Split(doc, "\n")
	kinds := classifyLines(lines)

	var (
		sections []section
		current  section
	)

	for i, line := range lines {
		delimiter := kinds[i] == lineText &&
			(strings.HasPrefix(line, "#") || ruleRe.MatchString(line)) &&
			!declarationDirectiveRe.MatchString(line)
		if delimiter && len(current.lines) > 0 {
			sections = append(sections, current)
			current = section{}
		}

		current.lines = append(current.lines, line)
		current.kinds = append(current.kinds, kinds[i])
	}

	if len(current.lines) > 0 {
		sections = append(sections, current)
	}

	return sections
}

// headerPath tries each header matcher in priority order over every non-fence
// line; the first matcher that accepts any line wins.
func (s section) headerPath() (string, bool) {
	for _, pm := range headerMatchers {
		for i, line := range s.lines {
			if s.kinds[i] != lineText {
				continue
			}

			if raw, ok := pm.match(strings.TrimRight(line, " \t")); ok {
				return raw, true
			}
		}
	}

	return "", false
}

func (s section) declarationTarget() string {
	for i, line := range s.lines {
		if s.kinds[i] != lineText {
			continue
		}

		if sub := declarationDirectiveRe.FindStringSubmatch(line); sub != nil {
			return sub[1]
		}
	}

	return ""
}

// codeBlock returns the language tag and body of the first closed fenced
// block that carries a tag.
func (s section) codeBlock() (string, string, bool) {
	for i := 0; i < len(s.lines); i++ {
		if s.kinds[i] != lineFenceOpen {
			continue
		}

		tag := fenceOpenRe.FindStringSubmatch(s.lines[i])[2]

		end := i + 1
		for end < len(s.lines) && s.kinds[end] == lineFenceBody {
			end++
		}

		if end == len(s.lines) {
			return "", "", false
		}

		if tag != "" {
			return tag, strings.Join(s.lines[i+1:end], "\n"), true
		}

		i = end
	}

	return "", "", false
}

// DecodedTranscript is the result of decoding a transcript document.
type DecodedTranscript struct {
	Blocks   []m.CodeBlock
	Sections int
	Dropped  int
}

// TranscriptDecoder recovers code blocks from loosely structured Markdown.
type TranscriptDecoder struct {
	logger *slog.Logger
}

// NewTranscriptDecoder constructs a TranscriptDecoder.
func NewTranscriptDecoder(logger *slog.Logger) *TranscriptDecoder {
	return &TranscriptDecoder{logger: orDiscard(logger)}
}

// Decode returns the code blocks of doc in document order. Sections without
// both a path and non-empty content are dropped and counted.
func (d *TranscriptDecoder) Decode(doc string) DecodedTranscript {
	sections := splitSections(doc)
	out := DecodedTranscript{Sections: len(sections)}

	for _, sec := range sections {
		block, ok := d.decodeSection(sec)
		if !ok {
			out.Dropped++
			continue
		}

		out.Blocks = append(out.Blocks, block)
	}

	return out
}

func (d *TranscriptDecoder) decodeSection(sec section) (m.CodeBlock, bool) {
	raw, found := sec.headerPath()

	tag, body, ok := sec.codeBlock()
	if !ok {
		if found {
			d.logger.Debug("section has a path but no code block", "path", raw)
		}

		return m.CodeBlock{}, false
	}

	content := strings.TrimSpace(body)
	first, rest, _ := strings.Cut(content, "\n")

	if inBlock, _, matched := inBlockMatchers.first(first); matched {
		switch {
		case !found:
			raw, found = inBlock, true
			content = strings.TrimSpace(rest)
		case NormalizePath(inBlock) == NormalizePath(raw):
			content = strings.TrimSpace(rest)
		}
	}

	if !found {
		d.logger.Debug("dropping section", "error", ErrPathDiscovery)
		return m.CodeBlock{}, false
	}

	normalized := NormalizePath(raw)
	if normalized == "" || content == "" {
		d.logger.Debug("dropping section", "path", raw, "empty_content", content == "")
		return m.CodeBlock{}, false
	}

	return m.CodeBlock{
		Path:              normalized,
		Language:          tag,
		Content:           content,
		Style:             StyleOf(raw),
		DeclarationTarget: sec.declarationTarget(),
	}, true
}
