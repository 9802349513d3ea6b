package subtitle

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_TranslatedBlock(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	file := &File{Lines: []Line{
		{ID: "7", Timecode: "00:00:01,000 --> 00:00:02,000", Text: "Hi", TranslatedText: "Hola"},
	}}

	require.NoError(t, NewWriter(&buf).Write(file))
	assert.Equal(t, "7\n00:00:01,000 --> 00:00:02,000\nHola\n\n", buf.String())
}

func TestWrite_FallsBackToSourceText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	file := &File{Lines: []Line{
		{ID: "1", Timecode: "00:00:01,000 --> 00:00:02,000", Text: "Hi"},
	}}

	require.NoError(t, NewWriter(&buf).Write(file))
	assert.Equal(t, "1\n00:00:01,000 --> 00:00:02,000\nHi\n\n", buf.String())
}

func TestWrite_NilFile(t *testing.T) {
	t.Parallel()

	require.Error(t, NewWriter(&bytes.Buffer{}).Write(nil))
}

// Parsing then serializing (with translations set to the source text)
// reproduces the original block structure.
func TestRoundTrip(t *testing.T) {
	t.Parallel()

	content := "1\n00:00:01,000 --> 00:00:02,000\nFirst\n\n" +
		"2\n00:00:03,000 --> 00:00:04,000\nSecond line one\nSecond line two\n\n"

	file, err := NewParser().Parse(content)
	require.NoError(t, err)
	for i := range file.Lines {
		file.Lines[i].TranslatedText = file.Lines[i].Text
	}

	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf).Write(file))
	assert.Equal(t, content, buf.String())

	reparsed, err := NewParser().Parse(buf.String())
	require.NoError(t, err)
	require.Len(t, reparsed.Lines, len(file.Lines))
	for i, line := range reparsed.Lines {
		assert.Equal(t, file.Lines[i].ID, line.ID)
		assert.Equal(t, file.Lines[i].Timecode, line.Timecode)
		assert.Equal(t, file.Lines[i].Text, line.Text)
	}
}
