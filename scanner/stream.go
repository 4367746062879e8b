package scanner

import (
	"io"
	"strings"
	"unicode/utf8"
)

// runeStream delivers the input one rune at a time, with one rune of
// lookahead.
type runeStream struct {
	isEof   bool
	hasNext bool // next holds a valid lookahead
	next    rune
	size    int    // byte length of next
	pos     uint64 // byte offset of next
	reader  io.RuneReader
}

func newRuneStream(text string) *runeStream {
	return &runeStream{reader: strings.NewReader(text)}
}

// lookahead returns the next rune without consuming it. At the end of input
// it returns utf8.RuneError and io.EOF.
func (rs *runeStream) lookahead() (rune, error) {
	if rs.isEof {
		return utf8.RuneError, io.EOF
	}
	if rs.hasNext {
		return rs.next, nil
	}
	r, sz, err := rs.reader.ReadRune()
	if err == io.EOF {
		tracer().Debugf("EOF for input")
		rs.isEof = true
		return utf8.RuneError, io.EOF
	} else if err != nil {
		return utf8.RuneError, err
	}
	rs.next, rs.size, rs.hasNext = r, sz, true
	return r, nil
}

// match consumes the lookahead rune r.
func (rs *runeStream) match(r rune) {
	if rs.isEof {
		panic("EOF matched")
	}
	if !rs.hasNext || rs.next != r {
		panic("match called without lookahead")
	}
	rs.pos += uint64(rs.size)
	rs.hasNext = false
}

// skipSpace consumes whitespace up to the next significant rune or the end
// of input.
func (rs *runeStream) skipSpace(isSpace func(rune) bool) {
	for {
		r, err := rs.lookahead()
		if err != nil || !isSpace(r) {
			return
		}
		rs.match(r)
	}
}

// Offset is the byte position of the lookahead rune.
func (rs *runeStream) Offset() uint64 {
	return rs.pos
}
