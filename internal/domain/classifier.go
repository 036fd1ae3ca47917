package domain

import (
	"bytes"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/src-d/enry/v2"
)

const (
	binarySniffLen       = 1024
	defaultCommentPrefix = "#"
	defaultLanguage      = "text"
)

var languageByExt = map[string]string{
	".py":    "python",
	".js":    "javascript",
	".jsx":   "javascript",
	".ts":    "typescript",
	".tsx":   "typescript",
	".java":  "java",
	".cpp":   "cpp",
	".c":     "c",
	".cs":    "csharp",
	".html":  "html",
	".css":   "css",
	".php":   "php",
	".rb":    "ruby",
	".go":    "go",
	".rs":    "rust",
	".swift": "swift",
	".kt":    "kotlin",
	".scala": "scala",
	".m":     "objective-c",
	".sh":    "bash",
	".ps1":   "powershell",
	".sql":   "sql",
	".r":     "r",
	".dart":  "dart",
	".vue":   "vue",
	".elm":   "elm",
	".ex":    "elixir",
	".erl":   "erlang",
	".fs":    "fsharp",
	".hs":    "haskell",
	".jl":    "julia",
	".lua":   "lua",
	".ml":    "ocaml",
	".pl":    "perl",
	".rkt":   "racket",
	".txt":   "text",
	".md":    "markdown",
}

var commentPrefixByExt = map[string]string{
	".py":     "#",
	".rb":     "#",
	".sh":     "#",
	".yml":    "#",
	".yaml":   "#",
	".r":      "#",
	".ps1":    "#",
	".toml":   "#",
	".js":     "//",
	".jsx":    "//",
	".ts":     "//",
	".tsx":    "//",
	".java":   "//",
	".cpp":    "//",
	".c":      "//",
	".cs":     "//",
	".php":    "//",
	".go":     "//",
	".swift":  "//",
	".kt":     "//",
	".rs":     "//",
	".dart":   "//",
	".lua":    "--",
	".sql":    "--",
	".hs":     "--",
	".elm":    "--",
	".vim":    `"`,
	".matlab": "%",
	".octave": "%",
}

// IsBinary reports whether data looks binary: a NUL byte within the first
// 1024 bytes. Empty content is never binary.
func IsBinary(data []byte) bool {
	if len(data) > binarySniffLen {
		data = data[:binarySniffLen]
	}

	return bytes.IndexByte(data, 0) >= 0
}

// LanguageOf infers a language tag from a file extension or file name.
// Unknown extensions yield "text".
func LanguageOf(extOrPath string) string {
	ext := normalizeExt(extOrPath)
	if lang, ok := languageByExt[ext]; ok {
		return lang
	}

	if ext != "" {
		if lang, _ := enry.GetLanguageByExtension("file" + ext); lang != "" {
			return strings.ToLower(lang)
		}
	}

	return defaultLanguage
}

// CommentPrefixOf returns the line-comment token for an extension or file
// name, "#" when unknown.
func CommentPrefixOf(extOrPath string) string {
	if prefix, ok := commentPrefixByExt[normalizeExt(extOrPath)]; ok {
		return prefix
	}

	return defaultCommentPrefix
}

// FenceTag returns the info string written after an opening fence: the bare
// extension restricted to word characters, or "text".
func FenceTag(extOrPath string) string {
	ext := strings.TrimPrefix(normalizeExt(extOrPath), ".")

	tag := strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}

		return -1
	}, ext)
	if tag == "" {
		return defaultLanguage
	}

	return tag
}

// normalizeExt accepts an extension (".py") or a path ("dir/file.py") and
// returns the lower-cased extension.
func normalizeExt(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, ".") && strings.Count(s, ".") == 1 && !strings.ContainsAny(s, `/\`) {
		return strings.ToLower(s)
	}

	return strings.ToLower(filepath.Ext(strings.ReplaceAll(s, `\`, "/")))
}
