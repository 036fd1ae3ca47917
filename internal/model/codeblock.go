package model

// CodeBlock is a single file recovered from a document.
type CodeBlock struct {
	Path     string // canonical, slash-separated, root-relative
	Language string
	Content  string
	Style    PathStyle
	// DeclarationTarget, when set, names the declaration to replace inside an
	// existing destination file instead of overwriting the whole file.
	DeclarationTarget string
}
