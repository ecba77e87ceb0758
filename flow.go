package whtreport

// A FlowElement is a typed, self-contained unit of document content.
// The composer appends elements in fixed section order and the renderer
// consumes the sequence exactly once; no element is mutated after creation.
type FlowElement interface {
	flowElement()
}

// Text alignment values, shared with the renderer.
const (
	AlignLeft   = "L"
	AlignCenter = "C"
)

// TextStyle carries the visual attributes of a text-bearing element.
// All dimensions are in points.
type TextStyle struct {
	Size        float64
	Bold        bool
	Italic      bool
	Color       RGB
	Align       string  // AlignLeft when empty
	Leading     float64 // line height; 1.2x size when zero
	SpaceBefore float64
	SpaceAfter  float64
}

// lineHeight resolves the effective leading.
func (s TextStyle) lineHeight() float64 {
	if s.Leading > 0 {
		return s.Leading
	}
	return s.Size * 1.2
}

// Heading is a section heading.
type Heading struct {
	Text  string
	Style TextStyle
}

// Paragraph is a block of wrapped body text.
type Paragraph struct {
	Text  string
	Style TextStyle
}

// Spacer inserts fixed vertical space between elements. Space that would
// fall past the page boundary is dropped, not carried over.
type Spacer struct {
	Height float64
}

// Table is a grid of styled cells with fixed column widths.
type Table struct {
	Rows      []TableRow
	ColWidths []float64
	Style     TableStyle
}

// TableRow is one row of cells.
type TableRow struct {
	Cells []TableCell
}

// TableCell is a single-line cell with its own text style.
type TableCell struct {
	Text  string
	Style TextStyle
}

// TableStyle carries table-wide presentation attributes.
type TableStyle struct {
	Fill        *RGB // cell background; nil for none
	Border      *RGB // outer box color; nil for no border
	BorderWidth float64
	CellPadding float64 // vertical padding inside each cell
	SpaceAfter  float64
}

func (Heading) flowElement()   {}
func (Paragraph) flowElement() {}
func (Spacer) flowElement()    {}
func (Table) flowElement()     {}
