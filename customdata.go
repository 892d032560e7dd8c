package kir

// CustomData is the per-kind payload a component can carry beyond text and
// style. It is a closed sum: each implementation pairs with one component
// kind, so decoders can dispatch on Kind without reflection.
type CustomData interface {
	customData()
}

// HeadingData accompanies Heading components.
type HeadingData struct {
	Level  int // 1-6
	Anchor string
}

// ListData accompanies List components.
type ListData struct {
	Ordered bool
	Start   int  // first item number for ordered lists
	Tight   bool // no blank lines between items
}

// ListItemData accompanies ListItem components.
type ListItemData struct {
	Number  int
	Marker  string
	Task    bool
	Checked bool
}

// BlockquoteData accompanies Blockquote components.
type BlockquoteData struct {
	Depth int
}

// CodeBlockData accompanies CodeBlock components.
type CodeBlockData struct {
	Language    string
	LineNumbers bool
	StartLine   int
}

// LinkData accompanies Link components.
type LinkData struct {
	Href   string
	Title  string
	Target string
	Rel    string
}

// TableCellData accompanies TableCell and TableHeaderCell components.
type TableCellData struct {
	ColSpan int
	RowSpan int
	Align   TextAlign
}

// DropdownData accompanies Dropdown components.
type DropdownData struct {
	Placeholder string
	Options     []string
	Selected    int // -1 = none
}

// ModalData accompanies Modal components.
type ModalData struct {
	Open     bool
	Title    string
	Backdrop Color
}

// TabData accompanies Tab and TabGroup components.
type TabData struct {
	Title    string
	Selected int
}

func (*HeadingData) customData()    {}
func (*ListData) customData()       {}
func (*ListItemData) customData()   {}
func (*BlockquoteData) customData() {}
func (*CodeBlockData) customData()  {}
func (*LinkData) customData()       {}
func (*TableCellData) customData()  {}
func (*DropdownData) customData()   {}
func (*ModalData) customData()      {}
func (*TabData) customData()        {}
