package domain

import (
	"path"
	"regexp"
	"strings"

	m "github.com/mouse-blink/codedoc/internal/model"
)

var (
	pathPrefixRe  = regexp.MustCompile(`(?i)^(?:file://|path:|source:|location:)\s*`)
	driveLetterRe = regexp.MustCompile(`^[A-Za-z]:$`)
	anchorReplace = strings.NewReplacer(" ", "-", ".", "-", "/", "-", `\`, "-")
	bracketStrip  = strings.NewReplacer("[", "", "]", "", "(", "", ")", "")
)

// NormalizePath converts a path discovered in a document to its canonical
// form: slash-separated, root-relative, without `.` segments. A leading `/`,
// a drive letter and any `..` that would leave the root are dropped, so the
// result always stays inside the materialization root.
func NormalizePath(raw string) string {
	p := strings.TrimSpace(raw)
	p = strings.Trim(p, "\"'`")
	p = bracketStrip.Replace(p)
	p = strings.TrimSpace(p)
	p = pathPrefixRe.ReplaceAllString(p, "")
	p = strings.Trim(p, "\"'`")
	p = strings.ReplaceAll(p, `\`, "/")

	segments := strings.Split(p, "/")
	stack := make([]string, 0, len(segments))

	for i, seg := range segments {
		seg = strings.TrimSpace(seg)

		switch {
		case seg == "" || seg == ".":
			continue
		case seg == "..":
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case i == 0 && driveLetterRe.MatchString(seg):
			continue
		default:
			stack = append(stack, seg)
		}
	}

	return strings.Join(stack, "/")
}

// FormatPath renders a canonical relative path in the given style:
// `..\dir\file.ext` for windows, `./dir/file.ext` for unix.
func FormatPath(rel string, style m.PathStyle) string {
	rel = strings.TrimPrefix(path.Clean("/"+strings.ReplaceAll(rel, `\`, "/")), "/")

	if style == m.PathStyleUnix {
		return "./" + rel
	}

	return `..\` + strings.ReplaceAll(rel, "/", `\`)
}

// Anchor derives the table-of-contents link target for a relative path.
// Anchors are not collision-checked: "a.b" and "a/b" share "a-b".
func Anchor(rel string) string {
	return anchorReplace.Replace(rel)
}

// StyleOf reports the path style a raw discovered path was written in.
func StyleOf(raw string) m.PathStyle {
	if strings.Contains(raw, `\`) {
		return m.PathStyleWindows
	}

	return m.PathStyleUnix
}
