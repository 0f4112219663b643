package printer

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/width"
)

// ESC/POS command constants
const (
	ESC = 0x1B
	FS  = 0x1C
	GS  = 0x1D
	LF  = 0x0A
)

// Text alignment
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Font size
const (
	FontNormal = 0x00
	FontDouble = 0x11 // Double width + double height
	FontWide   = 0x10 // Double width only
	FontTall   = 0x01 // Double height only
)

// Document builds an ESC/POS byte stream for thermal printers. Column math
// counts East Asian wide and full-width runes as two cells.
type Document struct {
	buf     bytes.Buffer
	width   int // print width in half-width cells (32 for 58mm, 48 for 80mm)
	encoder *encoding.Encoder
}

// LookupEncoding maps a configured encoding name to the byte encoding sent to
// the printer. An empty name or "utf-8" means raw UTF-8.
func LookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "shift_jis", "sjis", "cp932", "windows-31j":
		return japanese.ShiftJIS, nil
	case "euc-jp":
		return japanese.EUCJP, nil
	default:
		return nil, fmt.Errorf("printer: unsupported encoding %q", name)
	}
}

// NewDocument creates a new UTF-8 ESC/POS document with the given width.
func NewDocument(charWidth int) *Document {
	return NewEncodedDocument(charWidth, nil)
}

// NewEncodedDocument creates a document whose text is transcoded with enc.
// Runes enc cannot represent are replaced rather than failing the job.
func NewEncodedDocument(charWidth int, enc encoding.Encoding) *Document {
	if charWidth <= 0 {
		charWidth = 32
	}
	d := &Document{width: charWidth}
	if enc != nil {
		d.encoder = encoding.ReplaceUnsupported(enc.NewEncoder())
	}
	d.Init()
	return d
}

// Init sends ESC @ and, for Shift_JIS output, selects Kanji mode.
func (d *Document) Init() *Document {
	d.buf.Write([]byte{ESC, '@'})
	if d.encoder != nil {
		d.buf.Write([]byte{FS, 'C', 1, FS, '&'})
	}
	return d
}

// LineFeed sends a line feed.
func (d *Document) LineFeed() *Document {
	d.buf.WriteByte(LF)
	return d
}

// FeedLines sends n line feeds.
func (d *Document) FeedLines(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(LF)
	}
	return d
}

// SetAlign sets text alignment: AlignLeft, AlignCenter, AlignRight.
func (d *Document) SetAlign(align int) *Document {
	d.buf.Write([]byte{ESC, 'a', byte(align)})
	return d
}

// SetBold enables or disables bold text.
func (d *Document) SetBold(on bool) *Document {
	b := byte(0)
	if on {
		b = 1
	}
	d.buf.Write([]byte{ESC, 'E', b})
	return d
}

// SetFontSize sets the character size. Use FontNormal, FontDouble, FontWide, or FontTall.
func (d *Document) SetFontSize(size byte) *Document {
	d.buf.Write([]byte{GS, '!', size})
	return d
}

// Text writes a line of text followed by a line feed.
func (d *Document) Text(s string) *Document {
	d.write(s)
	d.buf.WriteByte(LF)
	return d
}

// TextF writes a formatted line of text followed by a line feed.
func (d *Document) TextF(format string, args ...interface{}) *Document {
	return d.Text(fmt.Sprintf(format, args...))
}

// Separator prints a full-width separator line.
func (d *Document) Separator(char byte) *Document {
	d.buf.WriteString(strings.Repeat(string(char), d.width))
	d.buf.WriteByte(LF)
	return d
}

// KeyValue prints a left-aligned key and right-aligned value on the same line.
func (d *Document) KeyValue(key, value string) *Document {
	return d.Text(d.justify(key, value))
}

// ItemLine prints the product name on its own line followed by
// "  qty x price" and the right-aligned line amount.
func (d *Document) ItemLine(name string, qty int64, price, amount string) *Document {
	d.Text(Truncate(name, d.width))
	return d.Text(d.justify(fmt.Sprintf("  %d x %s", qty, price), amount))
}

func (d *Document) justify(left, right string) string {
	spaces := d.width - StringWidth(left) - StringWidth(right)
	if spaces < 1 {
		spaces = 1
	}
	return left + strings.Repeat(" ", spaces) + right
}

func (d *Document) write(s string) {
	if d.encoder == nil {
		d.buf.WriteString(s)
		return
	}
	encoded, err := d.encoder.String(s)
	if err != nil {
		// ReplaceUnsupported makes this unreachable for rune errors
		d.buf.WriteString(s)
		return
	}
	d.buf.WriteString(encoded)
}

// Cut sends the paper cut command (full cut).
func (d *Document) Cut() *Document {
	d.buf.Write([]byte{GS, 'V', 0x00})
	return d
}

// PartialCut sends the partial cut command.
func (d *Document) PartialCut() *Document {
	d.buf.Write([]byte{GS, 'V', 0x01})
	return d
}

// Bytes returns the accumulated ESC/POS byte stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}

// Reset clears the buffer and reinitializes the document.
func (d *Document) Reset() *Document {
	d.buf.Reset()
	d.Init()
	return d
}

// RuneWidth returns the number of printer cells r occupies.
func RuneWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

// StringWidth returns the number of printer cells s occupies.
func StringWidth(s string) int {
	n := 0
	for _, r := range s {
		n += RuneWidth(r)
	}
	return n
}

// Truncate cuts s so that it fits in max cells.
func Truncate(s string, max int) string {
	n := 0
	for i, r := range s {
		w := RuneWidth(r)
		if n+w > max {
			return s[:i]
		}
		n += w
	}
	return s
}
