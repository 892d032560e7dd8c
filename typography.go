package kir

// TextAlign positions text within its line box.
type TextAlign uint8

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
	TextAlignJustify
)

// Text decoration bits. Combine with bitwise or.
const (
	DecorationNone      uint8 = 0
	DecorationUnderline uint8 = 1 << 0
	DecorationOverline  uint8 = 1 << 1
	DecorationStrike    uint8 = 1 << 2
)

// Font holds the typography properties of a component. The zero Color means
// the renderer's default text color.
type Font struct {
	Family        string
	Size          float64
	Weight        uint16 // 100-900, 0 = unset
	Bold          bool
	Italic        bool
	LineHeight    float64 // multiplier on Size
	LetterSpacing float64
	WordSpacing   float64
	Align         TextAlign
	Decoration    uint8
	Color         Color
}
