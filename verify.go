package whtreport

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// documentVerifier re-parses rendered bytes before they leave the service,
// enforcing the complete-document-or-nothing contract: a document that does
// not survive a structural round trip is reported as a render failure.
type documentVerifier struct{}

// Verify parses and validates the document in memory and returns its page
// count. It never touches the filesystem.
func (documentVerifier) Verify(pdf []byte) (int, error) {
	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(pdf), conf)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRender, err)
	}
	if ctx.PageCount < 1 {
		return 0, fmt.Errorf("%w: document has no pages", ErrRender)
	}
	return ctx.PageCount, nil
}
