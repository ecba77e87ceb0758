// Package whtreport renders the "Will I Hate This?" diagnostic report as a
// multi-page PDF from a structured assessment payload.
//
// # Quick Start
//
// Create a service and generate a report:
//
//	svc := whtreport.New()
//	rendered, err := svc.Generate(ctx, whtreport.AssessmentReport{
//	    AssessmentID: "a1b2c3d4e5",
//	    Verdict:      whtreport.Verdict{Explanation: "..."},
//	    GTMShape:     "Bottom-up PLG",
//	    RiskLevel:    "high",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(rendered.Filename, rendered.PDF, 0644)
//
// # Pipeline
//
// Generation follows three stages:
//
//  1. Compose: the validated payload is laid out as a fixed-order sequence
//     of typed flow elements (headings, paragraphs, tables, spacers).
//  2. Render: the sequence is paginated onto US Letter pages via fpdf, with
//     a footer drawn on every page carrying the assessment ID and the live
//     page number.
//  3. Verify: the finished bytes are re-parsed with pdfcpu; a document that
//     fails the round trip is reported as a render failure, never returned.
//
// Every call is a pure function of its payload and the clock: inject a
// fixed clock with WithClock to obtain byte-identical output for equal
// inputs.
//
// # HTTP Surface
//
// Handler exposes the pipeline as a stateless JSON-over-POST endpoint with
// permissive CORS, returning the document base64-encoded inside an
// attachment envelope. cmd/whtreportd serves it behind a chi router.
package whtreport
