package ocs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/ocsview/internal/logger"
)

func parse(t *testing.T, text string) *Section {
	t.Helper()
	return NewParser(logger.NewNoOpLogger()).Parse(text)
}

func TestParse_SectionsAndValues(t *testing.T) {
	t.Parallel()

	root := parse(t, "[Launchers]\nLauncherCount=dw:2\n")

	sec, ok := root.Child("Launchers")
	require.True(t, ok, "Section should exist")

	n, ok := sec.Int("LauncherCount")
	require.True(t, ok)
	assert.Equal(t, 2, n)
}

func TestParse_NestedSectionPath(t *testing.T) {
	t.Parallel()

	root := parse(t, "[Launchers\\1\\Menu]\nItems=dw:0\n")

	launchers, ok := root.Child("Launchers")
	require.True(t, ok)

	one, ok := launchers.Child("1")
	require.True(t, ok)

	menu, ok := one.Child("Menu")
	require.True(t, ok)

	n, ok := menu.Int("Items")
	require.True(t, ok)
	assert.Equal(t, 0, n)
}

func TestParse_ValueTypes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		line  string
		check func(t *testing.T, sec *Section)
	}{
		{
			name: "dw integer",
			line: "ShowCmd=dw:1",
			check: func(t *testing.T, sec *Section) {
				n, ok := sec.Int("ShowCmd")
				require.True(t, ok)
				assert.Equal(t, 1, n)
			},
		},
		{
			name: "ws string from UTF-16 code units",
			line: "Caption=ws:78,111,116,101,112,97,100",
			check: func(t *testing.T, sec *Section) {
				s, ok := sec.String("Caption")
				require.True(t, ok)
				assert.Equal(t, "Notepad", s)
			},
		},
		{
			name: "ws surrogate pair",
			line: "Caption=ws:55357,56842",
			check: func(t *testing.T, sec *Section) {
				s, ok := sec.String("Caption")
				require.True(t, ok)
				assert.Equal(t, "\U0001F60A", s)
			},
		},
		{
			name: "ws empty value",
			line: "Caption=ws:",
			check: func(t *testing.T, sec *Section) {
				s, ok := sec.String("Caption")
				require.True(t, ok)
				assert.Equal(t, "", s)
			},
		},
		{
			name: "bn byte sequence",
			line: "ItemID=bn:20,0,31,255",
			check: func(t *testing.T, sec *Section) {
				b, ok := sec.Bytes("ItemID")
				require.True(t, ok)
				assert.Equal(t, []byte{20, 0, 31, 255}, b)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := parse(t, "[Main]\n"+tt.line+"\n")
			sec, ok := root.Child("Main")
			require.True(t, ok)
			tt.check(t, sec)
		})
	}
}

func TestParse_SkipsCommentsAndBlankLines(t *testing.T) {
	t.Parallel()

	root := parse(t, "# leading comment\n\n[Main]\n# inner comment\n\nTitle=ws:65\n")

	sec, ok := root.Child("Main")
	require.True(t, ok)
	assert.Equal(t, 1, sec.Len(), "Comments and blank lines should add nothing")
}

func TestParse_CRLFLineEndings(t *testing.T) {
	t.Parallel()

	root := parse(t, "[Main]\r\nTitle=ws:65\r\n")

	sec, ok := root.Child("Main")
	require.True(t, ok)

	s, ok := sec.String("Title")
	require.True(t, ok)
	assert.Equal(t, "A", s)
}

func TestParse_NonFatalDiagnostics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
	}{
		{name: "unknown type tag", text: "[Main]\nKey=zz:1,2,3\n"},
		{name: "value before any section", text: "Key=dw:1\n[Main]\n"},
		{name: "unparseable line", text: "[Main]\nthis is not a value line\n"},
		{name: "invalid dw value", text: "[Main]\nKey=dw:abc\n"},
		{name: "invalid ws unit", text: "[Main]\nKey=ws:70000\n"},
		{name: "invalid bn byte", text: "[Main]\nKey=bn:256\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := parse(t, tt.text)

			sec, ok := root.Child("Main")
			require.True(t, ok, "The section itself should still be created")
			assert.Equal(t, 0, sec.Len(), "The bad line should be skipped, not stored")
		})
	}
}

func TestParse_ReopeningSectionOverwrites(t *testing.T) {
	t.Parallel()

	root := parse(t, "[Main]\nOld=dw:1\n[Main]\nNew=dw:2\n")

	sec, ok := root.Child("Main")
	require.True(t, ok)

	_, ok = sec.Int("Old")
	assert.False(t, ok, "Reopening a section should start it fresh")

	n, ok := sec.Int("New")
	require.True(t, ok)
	assert.Equal(t, 2, n)
}

func TestParse_IntermediateSectionsPreserved(t *testing.T) {
	t.Parallel()

	root := parse(t, "[A]\nX=dw:1\n[A\\B]\nY=dw:2\n")

	a, ok := root.Child("A")
	require.True(t, ok)

	// Opening a child path walks the existing parent rather than replacing it
	x, ok := a.Int("X")
	require.True(t, ok)
	assert.Equal(t, 1, x)

	b, ok := a.Child("B")
	require.True(t, ok)

	y, ok := b.Int("Y")
	require.True(t, ok)
	assert.Equal(t, 2, y)
}
