package whtreport

import (
	"bytes"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// extractPageTexts re-parses rendered bytes and returns the shown text of
// each page, in order. Only literal-string Tj operands are decoded; that
// covers everything the renderer emits.
func extractPageTexts(t *testing.T, pdf []byte) []string {
	t.Helper()

	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(pdf), model.NewDefaultConfiguration())
	if err != nil {
		t.Fatalf("re-parsing rendered document: %v", err)
	}

	texts := make([]string, 0, ctx.PageCount)
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
		if err != nil {
			t.Fatalf("extracting page %d content: %v", pageNr, err)
		}
		data, err := io.ReadAll(r)
		if err != nil {
			t.Fatalf("reading page %d content: %v", pageNr, err)
		}
		texts = append(texts, shownText(data))
	}
	return texts
}

// shownTextRe matches a literal-string text-show operation: (text) Tj.
var shownTextRe = regexp.MustCompile(`\(((?:\\.|[^\\()])*)\)\s*Tj`)

// shownText collects every Tj operand of a content stream, in stream order,
// joined with single spaces.
func shownText(stream []byte) string {
	var sb strings.Builder
	for _, m := range shownTextRe.FindAllSubmatch(stream, -1) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(decodePDFString(m[1]))
	}
	return sb.String()
}

// decodePDFString resolves backslash escapes in a PDF string literal.
// Non-ASCII bytes pass through untouched; assertions use ASCII needles.
func decodePDFString(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 == len(raw) {
			sb.WriteByte(raw[i])
			continue
		}
		i++
		switch c := raw[i]; c {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '\\', '(', ')':
			sb.WriteByte(c)
		default:
			if c < '0' || c > '7' {
				sb.WriteByte(c)
				break
			}
			val := int(c - '0')
			for n := 0; n < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; n++ {
				i++
				val = val*8 + int(raw[i]-'0')
			}
			sb.WriteByte(byte(val))
		}
	}
	return sb.String()
}
