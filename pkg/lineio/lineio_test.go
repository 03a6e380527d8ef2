package lineio

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// chunkReader returns its chunks one Read call at a time, then the final
// error, so tests can exercise refills and mid-stream failures.
type chunkReader struct {
	chunks []string
	err    error
}

func (c *chunkReader) Read(p []byte) (int, error) {
	if len(c.chunks) == 0 {
		if c.err != nil {
			return 0, c.err
		}
		return 0, io.EOF
	}
	n := copy(p, c.chunks[0])
	c.chunks[0] = c.chunks[0][n:]
	if c.chunks[0] == "" {
		c.chunks = c.chunks[1:]
	}
	return n, nil
}

func TestReadLine(t *testing.T) {
	require := require.New(t)

	r := NewReader(strings.NewReader("hello\n"))
	line, err := r.ReadLine()
	require.NoError(err)
	require.Equal("hello", line)
}

func TestReadLineCRLF(t *testing.T) {
	require := require.New(t)

	r := NewReader(strings.NewReader("hello\r\n"))
	line, err := r.ReadLine()
	require.NoError(err)
	require.Equal("hello", line)
}

func TestReadLineLoneCRIsContent(t *testing.T) {
	require := require.New(t)

	r := NewReader(strings.NewReader("hel\rlo\n"))
	line, err := r.ReadLine()
	require.NoError(err)
	require.Equal("hel\rlo", line)
}

func TestReadLineUnterminated(t *testing.T) {
	require := require.New(t)

	r := NewReader(strings.NewReader("hello"))
	line, err := r.ReadLine()
	require.NoError(err)
	require.Equal("hello", line)

	_, err = r.ReadLine()
	require.ErrorIs(err, ErrEndOfInput)
}

func TestReadLineEmptySource(t *testing.T) {
	require := require.New(t)

	r := NewReader(strings.NewReader(""))
	line, err := r.ReadLine()
	require.ErrorIs(err, ErrEndOfInput)
	require.Empty(line)
}

func TestReadLineEmptyLine(t *testing.T) {
	require := require.New(t)

	r := NewReader(strings.NewReader("\n"))
	line, err := r.ReadLine()
	require.NoError(err)
	require.Equal("", line)
}

func TestReadLineSequence(t *testing.T) {
	require := require.New(t)

	r := NewReader(strings.NewReader("a\nb\n"))

	line, err := r.ReadLine()
	require.NoError(err)
	require.Equal("a", line)

	line, err = r.ReadLine()
	require.NoError(err)
	require.Equal("b", line)

	_, err = r.ReadLine()
	require.ErrorIs(err, ErrEndOfInput)
}

func TestReadLineAcrossFills(t *testing.T) {
	require := require.New(t)

	r := NewReader(&chunkReader{chunks: []string{"hel", "lo", "\nrest\n"}})

	line, err := r.ReadLine()
	require.NoError(err)
	require.Equal("hello", line)

	line, err = r.ReadLine()
	require.NoError(err)
	require.Equal("rest", line)
}

func TestReadLineSplitCRLF(t *testing.T) {
	require := require.New(t)

	r := NewReader(&chunkReader{chunks: []string{"hello\r", "\n"}})
	line, err := r.ReadLine()
	require.NoError(err)
	require.Equal("hello", line)
}

func TestReadLineInvalidEncoding(t *testing.T) {
	require := require.New(t)

	r := NewReader(strings.NewReader("h\xff\xfe\n"))
	_, err := r.ReadLine()
	require.ErrorIs(err, ErrInvalidEncoding)

	// The buffer stays usable after the failed decode.
	line, err := r.ReadLine()
	require.ErrorIs(err, ErrEndOfInput)
	require.Empty(line)
}

func TestReadLineSourceFailure(t *testing.T) {
	require := require.New(t)

	boom := errors.New("read failed")
	r := NewReader(&chunkReader{chunks: []string{"par"}, err: boom})

	_, err := r.ReadLine()
	require.ErrorIs(err, boom)
}

func TestFillConsume(t *testing.T) {
	require := require.New(t)

	r := NewReader(strings.NewReader("abcdef"))

	avail, err := r.Fill()
	require.NoError(err)
	require.Equal([]byte("abcdef"), avail)
	require.Equal(6, r.Buffered())

	r.Consume(2)
	require.Equal(4, r.Buffered())

	avail, err = r.Fill()
	require.NoError(err)
	require.Equal([]byte("cdef"), avail)

	// Over-consuming is truncated to what is buffered.
	r.Consume(100)
	require.Equal(0, r.Buffered())

	_, err = r.Fill()
	require.ErrorIs(err, io.EOF)
}

func TestFillThenReadLine(t *testing.T) {
	require := require.New(t)

	// Raw consumers see the terminator uncut; a following ReadLine picks up
	// exactly where Consume left off.
	r := NewReader(strings.NewReader("ab\ncd\n"))

	avail, err := r.Fill()
	require.NoError(err)
	require.Equal([]byte("ab\ncd\n"), avail)
	r.Consume(3)

	line, err := r.ReadLine()
	require.NoError(err)
	require.Equal("cd", line)
}

func TestRead(t *testing.T) {
	require := require.New(t)

	r := NewReader(strings.NewReader("abc\n"))

	p := make([]byte, 2)
	n, err := r.Read(p)
	require.NoError(err)
	require.Equal(2, n)
	require.Equal([]byte("ab"), p)

	line, err := r.ReadLine()
	require.NoError(err)
	require.Equal("c", line)
}

func TestReadDataBeforeError(t *testing.T) {
	require := require.New(t)

	// A source returning data together with EOF delivers the data first.
	r := NewReader(iotest(strings.NewReader("hi")))

	avail, err := r.Fill()
	require.NoError(err)
	require.Equal([]byte("hi"), avail)
	r.Consume(2)

	_, err = r.Fill()
	require.ErrorIs(err, io.EOF)
}

// iotest wraps a reader so the final Read returns (n, io.EOF) in one call.
func iotest(r *strings.Reader) io.Reader {
	return &dataAndEOF{r: r}
}

type dataAndEOF struct {
	r *strings.Reader
}

func (d *dataAndEOF) Read(p []byte) (int, error) {
	n, err := d.r.Read(p)
	if err == nil && d.r.Len() == 0 {
		err = io.EOF
	}
	return n, err
}
