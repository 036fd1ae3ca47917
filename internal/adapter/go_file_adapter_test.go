package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goSource = `package shapes

// Area is documented.
type Area float64

type (
	Width  int
	Height int
)

// Square returns s*s.
func Square(s int) int {
	return s * s
}

func (a Area) Double() Area { return a * 2 }
`

func TestLocalGoFileAdapter_Declarations(t *testing.T) {
	adapter := NewLocalGoFileAdapter()

	decls, err := adapter.Declarations("shapes.go", []byte(goSource))
	require.NoError(t, err)

	names := make([]string, 0, len(decls))
	for _, d := range decls {
		names = append(names, d.Name)
	}

	assert.Equal(t, []string{"Area", "Square", "Double"}, names)

	text := func(d GoDeclaration) string { return goSource[d.Start:d.End] }

	assert.Equal(t, "type Area float64", text(decls[0]))
	assert.Equal(t, "func Square(s int) int {\n\treturn s * s\n}", text(decls[1]))
	assert.Equal(t, "func (a Area) Double() Area { return a * 2 }", text(decls[2]))

	assert.Empty(t, decls[1].Receiver)
	assert.Equal(t, "Area", decls[2].Receiver)
}

func TestGoDeclaration_Matches(t *testing.T) {
	adapter := NewLocalGoFileAdapter()

	decls, err := adapter.Declarations("list.go", []byte("package list\n\nfunc (l *List[T]) Push(v T) {}\n\nfunc New() {}\n"))
	require.NoError(t, err)
	require.Len(t, decls, 2)

	push, fn := decls[0], decls[1]

	assert.Equal(t, "List", push.Receiver)
	assert.True(t, push.Matches("Push"))
	assert.True(t, push.Matches("List.Push"))
	assert.False(t, push.Matches("Queue.Push"))

	assert.True(t, fn.Matches("New"))
	assert.False(t, fn.Matches(".New"))
}

func TestLocalGoFileAdapter_Declarations_InvalidSource(t *testing.T) {
	adapter := NewLocalGoFileAdapter()

	_, err := adapter.Declarations("broken.go", []byte("package foo\n func"))
	assert.Error(t, err)
}
