package figfont

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/figlet/core"
	"golang.org/x/text/encoding/charmap"
)

// MagicNumber starts every FIGfont file.
const MagicNumber = "flf2"

// Parse reads a FIGfont from r. The input is read completely; r is not
// closed. Font files which are not valid UTF-8 are decoded as ISO-8859-1.
//
// Parse checks the structure of the file only as far as it needs to in
// order to extract the glyphs. Errors wrap one of ErrMalformedHeader,
// ErrMalformedCodeTag or ErrTruncatedInput and tell the offending line.
func Parse(r io.Reader) (*Font, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot read FIGfont data")
	}
	text, err := decodeFontData(data)
	if err != nil {
		return nil, err
	}
	fr := &fontReader{scanner: bufio.NewScanner(strings.NewReader(text))}
	fr.scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	return fr.readFont()
}

// decodeFontData returns the font data as a string. Classic FIGfonts often
// contain Latin-1 sub-characters, so anything not being UTF-8 is taken to be
// ISO-8859-1.
func decodeFontData(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	tracer().Debugf("FIGfont data is not UTF-8, decoding as ISO-8859-1")
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", core.WrapError(err, core.EINVALID, "cannot decode FIGfont data")
	}
	return string(decoded), nil
}

type fontReader struct {
	scanner *bufio.Scanner
	lineno  int
	builder *Builder
}

func (fr *fontReader) nextLine() (string, bool) {
	if !fr.scanner.Scan() {
		return "", false
	}
	fr.lineno++
	return fr.scanner.Text(), true
}

func (fr *fontReader) readFont() (*Font, error) {
	fr.builder = NewBuilder()
	header, ok := fr.nextLine()
	if !ok {
		return nil, fr.scanError(core.WrapError(ErrMalformedHeader, core.EINVALID,
			"FIGfont is empty"))
	}
	if err := ParseHeader(header, fr.builder); err != nil {
		return nil, err
	}
	height := fr.builder.height
	if height <= 0 {
		return nil, core.WrapError(ErrMalformedHeader, core.EINVALID,
			"FIGfont height must be positive, is %d", height)
	}
	for i := 0; i < fr.builder.commentLines; i++ {
		if _, ok := fr.nextLine(); !ok {
			return nil, fr.truncated("comment line %d", i+1)
		}
	}
	for r := rune(32); r < 127; r++ {
		if err := fr.readGlyph(r); err != nil {
			return nil, err
		}
	}
	for _, r := range Deutsch {
		if err := fr.readGlyph(r); err != nil {
			return nil, err
		}
	}
	tags := 0
	for {
		line, ok := fr.nextLine()
		if !ok {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		code, err := ParseCodeTag(line)
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID,
				"cannot parse code tag in line %d: %q", fr.lineno, line)
		}
		if code < 0 || code > unicode.MaxRune {
			// negative codes are reserved for translation tables
			tracer().Debugf("skipping FIGcharacter with code tag %d in line %d", code, fr.lineno)
			if _, err := fr.readRows(); err != nil {
				return nil, err
			}
			continue
		}
		if err := fr.readGlyph(rune(code)); err != nil {
			return nil, err
		}
		tags++
	}
	if err := fr.scanner.Err(); err != nil {
		return nil, fr.scanError(err)
	}
	if tags != fr.builder.codeTagCount {
		tracer().Debugf("FIGfont header announces %d code-tagged characters, found %d",
			fr.builder.codeTagCount, tags)
	}
	return fr.builder.Build()
}

func (fr *fontReader) readGlyph(r rune) error {
	rows, err := fr.readRows()
	if err != nil {
		return core.WrapError(err, core.Code(err), "%s while reading glyph %#U",
			core.UserMessage(err), r)
	}
	fr.builder.Glyph(r, rows...)
	return nil
}

func (fr *fontReader) readRows() ([]string, error) {
	height := fr.builder.height
	rows := make([]string, height)
	for i := range rows {
		line, ok := fr.nextLine()
		if !ok {
			if err := fr.scanner.Err(); err != nil {
				return nil, fr.scanError(err)
			}
			return nil, fr.truncated("glyph row %d of %d", i+1, height)
		}
		rows[i] = TrimGlyphLine(line)
	}
	return rows, nil
}

func (fr *fontReader) truncated(format string, v ...interface{}) error {
	return core.WrapError(ErrTruncatedInput, core.EINVALID,
		"unexpected end of FIGfont data after line %d, expected "+format,
		append([]interface{}{fr.lineno}, v...)...)
}

func (fr *fontReader) scanError(err error) error {
	if err == nil {
		return nil
	}
	return core.WrapError(err, core.EINVALID, "error reading FIGfont after line %d", fr.lineno)
}

// TrimGlyphLine removes trailing whitespace and the end-mark run from a
// line of glyph data. The end-mark is the last non-blank character of the
// line; every copy of it at the end of the line is removed.
func TrimGlyphLine(line string) string {
	end := strings.TrimRightFunc(line, unicode.IsSpace)
	if end == "" {
		return ""
	}
	mark, _ := utf8.DecodeLastRuneInString(end)
	return strings.TrimRight(end, string(mark))
}

// ParseHeader parses a FIGfont header line into a builder.
//
//    flf2a$ 6 5 16 15 11 0 24463 229
//
// The first field is the signature, with the hardblank as its last character.
// It is followed by height, baseline, max length, old layout, number of
// comment lines, print direction, full layout and code tag count. Fields may
// be omitted from the right. If an old layout is given, the full layout is
// derived from it unless it is present as well.
func ParseHeader(header string, b *Builder) error {
	args := strings.Fields(header)
	if len(args) == 0 || !strings.HasPrefix(args[0], MagicNumber) {
		return core.WrapError(ErrMalformedHeader, core.EINVALID,
			"header does not start with FIGfont magic number %s: %q", MagicNumber, header)
	}
	hb, _ := utf8.DecodeLastRuneInString(args[0])
	b.Hardblank(hb)
	values := make([]int, len(args))
	for i := 1; i < len(args) && i <= 8; i++ {
		n, err := ParseNumber(args[i])
		if err != nil {
			return core.WrapError(ErrMalformedHeader, core.EINVALID,
				"header field %d is not a number: %q", i, args[i])
		}
		values[i] = n
	}
	if len(args) > 1 {
		b.Height(values[1])
	}
	if len(args) > 2 {
		b.Baseline(values[2])
	}
	if len(args) > 3 {
		b.MaxLength(values[3])
	}
	if len(args) > 4 {
		b.OldLayout(values[4])
		b.FullLayout(FullLayoutFromOldLayout(values[4]))
	}
	if len(args) > 5 {
		b.CommentLines(values[5])
	}
	if len(args) > 6 {
		dir, err := PrintDirectionFromHeader(values[6])
		if err != nil {
			return core.WrapError(ErrMalformedHeader, core.EINVALID,
				"header has invalid print direction: %q", args[6])
		}
		b.PrintDirection(dir)
	}
	if len(args) > 7 {
		b.FullLayout(Layout(values[7]))
	}
	if len(args) > 8 {
		b.CodeTagCount(values[8])
	}
	tracer().Debugf("FIGfont header: height=%d, layout=%s", b.height, b.fullLayout)
	return nil
}

// ParseCodeTag returns the code point of a code tag line. The code point is
// the first blank-delimited field of the line; anything after it is a
// comment.
func ParseCodeTag(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, ErrMalformedCodeTag
	}
	n, err := ParseNumber(fields[0])
	if err != nil {
		return 0, ErrMalformedCodeTag
	}
	return n, nil
}

// ParseNumber parses an integer in decimal, hexadecimal ("0x…") or octal
// ("0…") notation, optionally signed.
func ParseNumber(s string) (int, error) {
	n, err := strconv.ParseInt(s, 0, 32)
	return int(n), err
}
