package whtreport

import (
	"context"
	"fmt"
	"time"
)

// Stage interfaces, satisfied by the built-in implementations and by test
// doubles.

type composer interface {
	Compose(report AssessmentReport) []FlowElement
}

type renderer interface {
	Render(elements []FlowElement, assessmentID string, generated time.Time) ([]byte, error)
}

type verifier interface {
	Verify(pdf []byte) (int, error)
}

// Timestamp layout embedded in the report metadata.
const timestampLayout = "2006-01-02 15:04:05"

// Output filename prefix; the first 8 characters of the assessment ID and
// the extension are appended.
const (
	filenamePrefix    = "WHT-Diagnostic-Report-"
	filenameIDLength  = 8
	filenameExtension = ".pdf"
)

// Service orchestrates the compose-render-verify pipeline. Each Generate
// call builds a fresh element sequence and footer; the service holds no
// per-assessment state and is safe for concurrent use.
type Service struct {
	clock    func() time.Time
	composer composer
	renderer renderer
	verifier verifier
}

// Option configures a Service.
type Option func(*Service)

// WithClock sets the time source used for the report timestamp and the
// document dates. Inject a fixed clock to make output reproducible.
// Panics if now is nil (programmer error, similar to time.NewTicker).
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("whtreport: WithClock time source must not be nil")
	}
	return func(s *Service) {
		s.clock = now
	}
}

// New creates a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		clock:    time.Now,
		composer: layoutComposer{},
		renderer: pageRenderer{},
		verifier: documentVerifier{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate validates the report, composes its flow-element sequence,
// renders and verifies the document, and returns the finished bytes with
// the derived filename. A validation failure short-circuits before any
// rendering begins.
func (s *Service) Generate(ctx context.Context, report AssessmentReport) (*RenderedReport, error) {
	if err := report.Validate(); err != nil {
		return nil, err
	}

	now := s.clock().UTC()
	report.applyDefaults()
	report.Timestamp = now.Format(timestampLayout) + " UTC"

	elements := s.composer.Compose(report)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	pdf, err := s.renderer.Render(elements, report.AssessmentID, now)
	if err != nil {
		return nil, fmt.Errorf("rendering report: %w", err)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	pages, err := s.verifier.Verify(pdf)
	if err != nil {
		return nil, fmt.Errorf("verifying report: %w", err)
	}

	return &RenderedReport{
		Filename: Filename(report.AssessmentID),
		PDF:      pdf,
		Pages:    pages,
	}, nil
}

// Filename derives the attachment name from an assessment ID, keeping at
// most its first 8 characters. Truncation counts characters, not bytes,
// so a multibyte ID is never cut mid-rune.
func Filename(assessmentID string) string {
	id := []rune(assessmentID)
	if len(id) > filenameIDLength {
		id = id[:filenameIDLength]
	}
	return filenamePrefix + string(id) + filenameExtension
}
