package cmd

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/codedoc/internal/domain"
	m "github.com/mouse-blink/codedoc/internal/model"
)

func TestEncodeCmd_ExplicitFiles(t *testing.T) {
	cmd, mockWorkflow, mockUI := newTestRoot(t, newEncodeCmd())
	base := t.TempDir()
	out := t.TempDir()

	reports := []m.EncodeReport{
		{Format: m.FormatTranscript, Outcome: m.OutcomeCompleted, Encoded: 2, Total: 2},
		{Format: m.FormatTabular, Outcome: m.OutcomeCompleted, Encoded: 2, Total: 2},
	}

	mockUI.EXPECT().Start(mock.Anything).Return(nil).Once()
	mockWorkflow.EXPECT().Encode(mock.Anything, mock.MatchedBy(func(req domain.EncodeRequest) bool {
		return len(req.Files) == 2 &&
			req.Files[0] == m.Path(filepath.Join(base, "b", "c.txt")) &&
			req.Files[1] == m.Path(filepath.Join(base, "a.py")) &&
			req.Root == m.Path(base) &&
			req.OutputDir == m.Path(out) &&
			assert.ObjectsAreEqual([]m.Format{m.FormatTranscript, m.FormatTabular}, req.Formats) &&
			req.Style == m.PathStyleUnix &&
			req.TranscriptPrefix == "snap" &&
			req.TabularPrefix == "snap" &&
			req.SizeUnit == "KB" &&
			req.Clipboard &&
			req.Reporter == ui
	})).Return(reports, nil).Once()
	mockUI.EXPECT().Close().Return().Once()
	mockUI.EXPECT().DisplayEncodeReports(reports).Return().Once()

	cmd.SetArgs([]string{
		"encode", "b/c.txt", "a.py",
		"--base", base, "--out", out, "--format", "all", "--style", "unix", "--prefix", "snap", "--clipboard",
	})
	require.NoError(t, cmd.Execute())
}

func TestEncodeCmd_UsesConfiguredSelection(t *testing.T) {
	cmd, mockWorkflow, mockUI := newTestRoot(t, newEncodeCmd())

	collected := []m.Path{"src/main.py"}

	mockWorkflow.EXPECT().Collect(mock.Anything, mock.MatchedBy(func(sel domain.Selection) bool {
		return sel.BaseDir == "src" && !sel.UseSpecific
	})).Return(collected, nil).Once()
	mockUI.EXPECT().Start(mock.Anything).Return(nil).Once()
	mockWorkflow.EXPECT().Encode(mock.Anything, mock.MatchedBy(func(req domain.EncodeRequest) bool {
		return assert.ObjectsAreEqual(collected, req.Files) &&
			req.Root == "src" &&
			req.OutputDir == "docs" &&
			assert.ObjectsAreEqual([]m.Format{m.FormatTranscript}, req.Formats) &&
			req.Style == m.PathStyleUnix &&
			req.TranscriptPrefix == "notes" &&
			req.TabularPrefix == "sheet" &&
			!req.Clipboard
	})).Return(nil, nil).Once()
	mockUI.EXPECT().Close().Return().Once()
	mockUI.EXPECT().DisplayEncodeReports([]m.EncodeReport(nil)).Return().Once()

	cmd.SetArgs([]string{"-c", writeConfig(t, presetsConfig), "encode"})
	require.NoError(t, cmd.Execute())
}

func TestEncodeCmd_Errors(t *testing.T) {
	t.Run("unknown format", func(t *testing.T) {
		cmd, _, _ := newTestRoot(t, newEncodeCmd())

		cmd.SetArgs([]string{"encode", "--format", "pdf", "a.py"})
		err := cmd.Execute()

		require.Error(t, err)
		assert.ErrorIs(t, err, errUnknownFormat)
	})

	t.Run("unknown style", func(t *testing.T) {
		cmd, _, _ := newTestRoot(t, newEncodeCmd())

		cmd.SetArgs([]string{"encode", "--style", "mac", "a.py"})
		require.Error(t, cmd.Execute())
	})

	t.Run("collect fails", func(t *testing.T) {
		cmd, mockWorkflow, _ := newTestRoot(t, newEncodeCmd())
		boom := errors.New("walk failed")

		mockWorkflow.EXPECT().Collect(mock.Anything, mock.Anything).Return(nil, boom).Once()

		cmd.SetArgs([]string{"encode"})
		assert.ErrorIs(t, cmd.Execute(), boom)
	})

	t.Run("encode fails after partial reports", func(t *testing.T) {
		cmd, mockWorkflow, mockUI := newTestRoot(t, newEncodeCmd())
		partial := []m.EncodeReport{{Format: m.FormatTranscript, Encoded: 1, Total: 1}}

		mockUI.EXPECT().Start(mock.Anything).Return(nil).Once()
		mockWorkflow.EXPECT().Encode(mock.Anything, mock.Anything).
			Return(partial, domain.ErrVersionsExhausted).Once()
		mockUI.EXPECT().Close().Return().Once()
		mockUI.EXPECT().DisplayEncodeReports(partial).Return().Once()

		cmd.SetArgs([]string{"encode", "a.py"})
		assert.ErrorIs(t, cmd.Execute(), domain.ErrVersionsExhausted)
	})

	t.Run("ui fails to start", func(t *testing.T) {
		cmd, _, mockUI := newTestRoot(t, newEncodeCmd())
		boom := errors.New("no terminal")

		mockUI.EXPECT().Start(mock.Anything).Return(boom).Once()

		cmd.SetArgs([]string{"encode", "a.py"})
		assert.ErrorIs(t, cmd.Execute(), boom)
	})
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		value string
		want  []m.Format
		err   bool
	}{
		{value: "transcript", want: []m.Format{m.FormatTranscript}},
		{value: "MD", want: []m.Format{m.FormatTranscript}},
		{value: "tabular", want: []m.Format{m.FormatTabular}},
		{value: "xlsx", want: []m.Format{m.FormatTabular}},
		{value: " all ", want: []m.Format{m.FormatTranscript, m.FormatTabular}},
		{value: "csv", err: true},
		{value: "", err: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := parseFormats(tt.value)
			if tt.err {
				assert.ErrorIs(t, err, errUnknownFormat)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveFiles_Explicit(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "x.go")

	files, err := resolveFiles(t.Context(), "base", []string{"./a/../b.py", abs})
	require.NoError(t, err)

	assert.Equal(t, []m.Path{m.Path(filepath.Join("base", "b.py")), m.Path(abs)}, files)
}
