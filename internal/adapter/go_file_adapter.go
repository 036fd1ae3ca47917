package adapter

import (
	"go/ast"
	"go/parser"
	"go/token"
)

// GoDeclaration is a top-level function, method or type of a Go file. Start
// and End are byte offsets into the source, End exclusive. Doc comments are
// not part of the span.
type GoDeclaration struct {
	Name string
	// Receiver is the receiver type of a method, without pointer or type
	// parameters. Empty for functions and types.
	Receiver   string
	Start, End int
}

// Matches reports whether target names d, either bare or as Receiver.Name.
func (d GoDeclaration) Matches(target string) bool {
	return target == d.Name || (d.Receiver != "" && target == d.Receiver+"."+d.Name)
}

// GoFileAdapter reads the syntax of Go sources so declaration patches can
// target exact spans instead of indentation heuristics.
type GoFileAdapter interface {
	// Declarations lists the top-level declarations of src in file order.
	Declarations(filename string, src []byte) ([]GoDeclaration, error)
}

// LocalGoFileAdapter provides a concrete GoFileAdapter backed by go/parser.
type LocalGoFileAdapter struct{}

// NewLocalGoFileAdapter constructs a LocalGoFileAdapter.
func NewLocalGoFileAdapter() *LocalGoFileAdapter {
	return &LocalGoFileAdapter{}
}

// Declarations parses src and returns its functions, methods and ungrouped
// type declarations. Specs inside a parenthesised type group are skipped.
func (a *LocalGoFileAdapter) Declarations(filename string, src []byte) ([]GoDeclaration, error) {
	fileSet := token.NewFileSet()

	file, err := parser.ParseFile(fileSet, filename, src, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	tokFile := fileSet.File(file.Pos())
	span := func(name string, node ast.Node) GoDeclaration {
		return GoDeclaration{Name: name, Start: tokFile.Offset(node.Pos()), End: tokFile.Offset(node.End())}
	}

	var decls []GoDeclaration

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			decl := span(d.Name.Name, d)
			if d.Recv != nil && len(d.Recv.List) > 0 {
				decl.Receiver = receiverName(d.Recv.List[0].Type)
			}

			decls = append(decls, decl)
		case *ast.GenDecl:
			if d.Tok != token.TYPE || d.Lparen.IsValid() {
				continue
			}

			for _, spec := range d.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok {
					decls = append(decls, span(ts.Name.Name, d))
				}
			}
		}
	}

	return decls, nil
}

func receiverName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return receiverName(t.X)
	case *ast.ParenExpr:
		return receiverName(t.X)
	case *ast.IndexExpr:
		return receiverName(t.X)
	case *ast.IndexListExpr:
		return receiverName(t.X)
	}

	return ""
}
