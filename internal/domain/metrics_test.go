package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/mouse-blink/codedoc/internal/model"
)

func TestComputeMetrics(t *testing.T) {
	content := []byte("class A:\n    def f(self):\n        x = 1\n")

	got := ComputeMetrics(content)

	assert.Equal(t, m.Metrics{
		SizeKB:        40.0 / 1024,
		CharCount:     40,
		WordCount:     7,
		LineCount:     4,
		ClassCount:    1,
		FunctionCount: 1,
		VariableCount: 1,
	}, got)
	assert.Equal(t, "0.04KB,C40,W7,L4,CL1,F1,V1", got.Pack("KB"))
	assert.Equal(t, got, ComputeMetrics(content))
}

func TestComputeMetrics_Keywords(t *testing.T) {
	content := []byte("func a() {}\nfunction b() {}\nfn c() {}\ndefault := 2\n")

	got := ComputeMetrics(content)

	assert.Equal(t, 3, got.FunctionCount, "default must not count as def")
	assert.Equal(t, 0, got.ClassCount)
}

func TestComputeMetrics_InvalidUTF8(t *testing.T) {
	got := ComputeMetrics([]byte("a\xffb"))

	assert.Equal(t, 3, got.CharCount)
	assert.Equal(t, 1, got.LineCount)
}

func TestDegradeText(t *testing.T) {
	assert.Equal(t, "ab\uFFFDc", degradeText([]byte("a\x00b\xffc")))
}
