package charstats

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/chronos-tachyon/assert"
)

// Normalize reads UTF-8 text from r, discards the first skipLines lines, and
// returns the remainder reduced to the normalized alphabet.  ASCII letters are
// uppercased; every other rune (including non-ASCII letters and undecodable
// bytes) becomes Placeholder, and consecutive placeholders collapse into one.
//
// A line ends after "\n", "\r\n" or a lone "\r".  A trailing fragment without
// a line ending counts as a line.
//
func Normalize(r io.Reader, skipLines int) ([]Symbol, error) {
	assert.Assertf(skipLines >= 0, "skipLines %d < 0", skipLines)

	br := bufio.NewReader(r)
	if err := discardLines(br, skipLines); err == io.EOF {
		return []Symbol{}, nil
	} else if err != nil {
		return nil, err
	}

	n := normalizer{out: make([]Symbol, 0, br.Size())}
	buf := make([]byte, 32*1024)
	for {
		nr, err := br.Read(buf[n.pending:])
		n.feed(buf[:n.pending+nr], err == io.EOF)
		if err == io.EOF {
			return n.out, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// NormalizeFile opens path, normalizes its contents per Normalize, and closes
// it again before returning.
func NormalizeFile(path string, skipLines int) ([]Symbol, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	defer f.Close()

	symbols, err := Normalize(f, skipLines)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	return symbols, nil
}

// NormalizeString is a convenience wrapper around Normalize for in-memory
// text.
func NormalizeString(text string, skipLines int) []Symbol {
	symbols, err := Normalize(strings.NewReader(text), skipLines)
	assert.Assertf(err == nil, "reading from strings.Reader failed: %v", err)
	return symbols
}

// discardLines consumes n lines from br.  It returns io.EOF if the input ends
// first.
func discardLines(br *bufio.Reader, n int) error {
	for n > 0 {
		ch, err := br.ReadByte()
		if err != nil {
			return err
		}
		switch ch {
		case '\n':
			n--
		case '\r':
			n--
			next, err := br.ReadByte()
			if err == io.EOF {
				continue
			}
			if err != nil {
				return err
			}
			if next != '\n' {
				_ = br.UnreadByte()
			}
		}
	}
	return nil
}

type normalizer struct {
	out     []Symbol
	pending int
}

// feed consumes complete runes from p.  Unless atEOF, an incomplete trailing
// rune is moved to the front of p and remembered in n.pending.
func (n *normalizer) feed(p []byte, atEOF bool) {
	i := 0
	for i < len(p) {
		if !atEOF && !utf8.FullRune(p[i:]) {
			break
		}
		ch, size := utf8.DecodeRune(p[i:])
		i += size
		switch {
		case ch >= 'a' && ch <= 'z':
			n.out = append(n.out, Symbol(ch-'a'))
		case ch >= 'A' && ch <= 'Z':
			n.out = append(n.out, Symbol(ch-'A'))
		default:
			if last := len(n.out) - 1; last < 0 || n.out[last] != Placeholder {
				n.out = append(n.out, Placeholder)
			}
		}
	}
	n.pending = copy(p, p[i:])
}
