package whtreport

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

// Page geometry in points (US Letter, 612x792).
const (
	marginLeft   = 72.0
	marginRight  = 72.0
	marginTop    = 72.0
	marginBottom = 60.0

	// Footer rule and caption positions, measured from the page bottom.
	footerRuleOffset = 50.0
	footerTextOffset = 35.0
	footerFontSize   = 8.0
	footerRuleWidth  = 0.5
)

const fontFamily = "Helvetica"

// footerCaption names the product line in every page footer.
const footerCaption = "Founder–GTM Misery Risk Diagnostic"

// The rejection glyph has no cp1252 code point, so it is drawn from the
// ZapfDingbats core font, where ballot X lives at code 0x37.
const (
	dingbatFont    = "ZapfDingbats"
	ballotX        = "\x37"
	rejectGlyphGap = 3.0
)

// pageFooter draws the footer decoration on every page. One value is
// created per render call, parameterized by the assessment ID; the page
// number is read live from the document at draw time.
type pageFooter struct {
	assessmentID string
}

func (f pageFooter) draw(doc *fpdf.Fpdf, tr func(string) string) {
	pageWidth, pageHeight := doc.GetPageSize()

	doc.SetDrawColor(colorHeading.R, colorHeading.G, colorHeading.B)
	doc.SetLineWidth(footerRuleWidth)
	ruleY := pageHeight - footerRuleOffset
	doc.Line(marginLeft, ruleY, pageWidth-marginRight, ruleY)

	caption := fmt.Sprintf("%s — %s | Assessment ID: %s | Page %d",
		reportSubtitle, footerCaption, f.assessmentID, doc.PageNo())

	doc.SetFont(fontFamily, "", footerFontSize)
	doc.SetTextColor(colorFooter.R, colorFooter.G, colorFooter.B)
	doc.SetXY(marginLeft, pageHeight-footerTextOffset-footerFontSize/2)
	doc.CellFormat(pageWidth-marginLeft-marginRight, footerFontSize+2,
		tr(caption), "", 0, AlignCenter, false, 0, "")
}

// pageRenderer paginates a flow-element sequence into a finished PDF.
// It is stateless; every Render call builds its own document and footer.
type pageRenderer struct{}

// Render serializes the element sequence into a multi-page document.
// The generated time pins the document's creation and modification dates
// so equal inputs produce byte-identical output.
func (pageRenderer) Render(elements []FlowElement, assessmentID string, generated time.Time) ([]byte, error) {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetMargins(marginLeft, marginTop, marginRight)
	doc.SetAutoPageBreak(true, marginBottom)
	doc.SetCreationDate(generated)
	doc.SetModificationDate(generated)
	doc.SetTitle(reportTitle, true)

	tr := doc.UnicodeTranslatorFromDescriptor("")
	footer := pageFooter{assessmentID: assessmentID}
	doc.SetFooterFunc(func() { footer.draw(doc, tr) })

	doc.AddPage()
	for _, element := range elements {
		switch el := element.(type) {
		case Heading:
			drawText(doc, tr, el.Text, el.Style)
		case Paragraph:
			drawText(doc, tr, el.Text, el.Style)
		case Spacer:
			advance(doc, el.Height)
		case Table:
			drawTable(doc, tr, el)
		default:
			return nil, fmt.Errorf("%w: unknown flow element %T", ErrRender, element)
		}
		if doc.Err() {
			return nil, fmt.Errorf("%w: %v", ErrRender, doc.Error())
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}

// breakLimit is the Y coordinate past which content triggers a page break.
func breakLimit(doc *fpdf.Fpdf) float64 {
	_, pageHeight := doc.GetPageSize()
	return pageHeight - marginBottom
}

// advance moves down by h. Space falling past the page boundary is
// dropped so pages never start with leftover spacing.
func advance(doc *fpdf.Fpdf, h float64) {
	if doc.GetY()+h < breakLimit(doc) {
		doc.Ln(h)
	}
}

// fontStyle maps a TextStyle onto an fpdf style string.
func fontStyle(s TextStyle) string {
	style := ""
	if s.Bold {
		style += "B"
	}
	if s.Italic {
		style += "I"
	}
	return style
}

// drawText writes a wrapped text block. The element's spacing and leading
// participate in the page-break decision: a block whose first line cannot
// fit below its leading space starts on a fresh page instead.
func drawText(doc *fpdf.Fpdf, tr func(string) string, text string, style TextStyle) {
	leading := style.lineHeight()

	if doc.GetY()+style.SpaceBefore+leading > breakLimit(doc) {
		doc.AddPage()
	} else if style.SpaceBefore > 0 {
		doc.Ln(style.SpaceBefore)
	}

	align := style.Align
	if align == "" {
		align = AlignLeft
	}

	doc.SetTextColor(style.Color.R, style.Color.G, style.Color.B)
	if rest, ok := strings.CutPrefix(text, rejectGlyph+" "); ok {
		drawRejectLine(doc, tr, rest, style, leading)
	} else {
		doc.SetFont(fontFamily, fontStyle(style), style.Size)
		doc.MultiCell(0, leading, tr(text), "", align, false)
	}

	if style.SpaceAfter > 0 {
		advance(doc, style.SpaceAfter)
	}
}

// drawRejectLine writes a mismatch-flag line: the ballot X from
// ZapfDingbats, then the flag text in the body font. Wrapped lines hang
// under the text start.
func drawRejectLine(doc *fpdf.Fpdf, tr func(string) string, rest string, style TextStyle, leading float64) {
	doc.SetFont(dingbatFont, "", style.Size)
	doc.CellFormat(doc.GetStringWidth(ballotX)+rejectGlyphGap, leading,
		ballotX, "", 0, AlignLeft, false, 0, "")

	doc.SetFont(fontFamily, fontStyle(style), style.Size)
	doc.MultiCell(0, leading, tr(rest), "", AlignLeft, false)
}

// drawTable renders a table as one atomic block: if it does not fit in
// the remaining space it starts on the next page. Both report tables are
// far smaller than a page, so splitting rows is not needed.
func drawTable(doc *fpdf.Fpdf, tr func(string) string, table Table) {
	heights := make([]float64, len(table.Rows))
	total := 0.0
	for i, row := range table.Rows {
		rowLeading := 0.0
		for _, cell := range row.Cells {
			if lh := cell.Style.lineHeight(); lh > rowLeading {
				rowLeading = lh
			}
		}
		heights[i] = rowLeading + 2*table.Style.CellPadding
		total += heights[i]
	}

	if doc.GetY()+total > breakLimit(doc) {
		doc.AddPage()
	}

	startX := doc.GetX()
	startY := doc.GetY()
	fill := table.Style.Fill != nil
	if fill {
		doc.SetFillColor(table.Style.Fill.R, table.Style.Fill.G, table.Style.Fill.B)
	}

	y := startY
	tableWidth := 0.0
	for _, w := range table.ColWidths {
		tableWidth += w
	}

	for i, row := range table.Rows {
		x := startX
		for j, cell := range row.Cells {
			doc.SetXY(x, y)
			doc.SetFont(fontFamily, fontStyle(cell.Style), cell.Style.Size)
			doc.SetTextColor(cell.Style.Color.R, cell.Style.Color.G, cell.Style.Color.B)
			align := cell.Style.Align
			if align == "" {
				align = AlignLeft
			}
			doc.CellFormat(table.ColWidths[j], heights[i], tr(cell.Text), "", 0, align, fill, 0, "")
			x += table.ColWidths[j]
		}
		y += heights[i]
	}

	if table.Style.Border != nil {
		doc.SetDrawColor(table.Style.Border.R, table.Style.Border.G, table.Style.Border.B)
		doc.SetLineWidth(table.Style.BorderWidth)
		doc.Rect(startX, startY, tableWidth, total, "D")
	}

	doc.SetY(y)
	if table.Style.SpaceAfter > 0 {
		advance(doc, table.Style.SpaceAfter)
	}
}
