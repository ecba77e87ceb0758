package whtreport

import "strings"

// One inch in points.
const inch = 72.0

// Fixed literal content of the report template. Extracted as constants so
// the composer reads as structure and golden tests can reference them.
const (
	reportTitle    = "FOUNDER–GTM MISERY RISK DIAGNOSTIC"
	reportSubtitle = "Will I Hate This?"

	metaLabelID        = "Assessment ID:"
	metaLabelGenerated = "Generated:"
	metaLabelType      = "Assessment Type:"
	metaValueType      = "Founder–GTM Misery Risk Classification"
	metaLabelIntegrity = "Classification Integrity:"
	metaValueIntegrity = "Deterministic"

	disclaimerText = "This assessment does not evaluate idea quality, market size, " +
		"or likelihood of success. It evaluates the risk that executing the required " +
		"GTM will conflict with the founder's working preferences."

	headingVerdict     = "VERDICT"
	verdictBoxSubtext  = "Expected mismatch between GTM requirements and founder energy profile."
	regretExplanation  = "This is the point at which founders with similar profiles " +
		"historically report avoidance, burnout, or abandonment."
	headingGTMShape    = "PRIMARY GTM SHAPE"
	headingProfile     = "FOUNDER ENERGY PROFILE"
	headingMismatch    = "MISMATCH FLAGS"
	headingBasis       = "CLASSIFICATION BASIS"
	headingDoesNotSay  = "WHAT THIS VERDICT DOES NOT SAY"
	labelPressureFlags = "Active Pressure Flags:"
	labelCoreDrivers   = "Core Drivers:"
	labelCoreDrains    = "Core Drains:"

	placeholderDescription = "Classification description not available."
	placeholderExplanation = "Classification basis not available."
	noMismatchesLine       = "No critical mismatches detected."

	doesNotSayIntro   = "This verdict does not say:"
	doesNotSayClosing = "It only states that this GTM path is statistically misaligned with how you work."

	closingLineOne = "Most founders ignore this signal."
	closingLineTwo = "The cost is usually paid in time, not money."

	immutabilityNotice = "This report does not update. Re-running the assessment " +
		"with different answers constitutes a different idea."

	// PDF-safe glyphs: a plain bullet for lists, a rejection mark for
	// mismatch flags.
	bulletGlyph = "•"
	rejectGlyph = "✗"
)

// doesNotSayItems is the fixed four-item disclaimer list. Never derived
// from input.
var doesNotSayItems = [4]string{
	"That the idea is bad",
	"That the market is too small",
	"That someone else could not succeed with this idea",
	"That you should abandon the idea immediately",
}

// Named styles of the clinical template.

func titleStyle() TextStyle {
	return TextStyle{Size: 18, Bold: true, Color: colorTitle, Align: AlignCenter, SpaceAfter: 6}
}

func subtitleStyle() TextStyle {
	return TextStyle{Size: 10, Color: colorSubtitle, Align: AlignCenter, SpaceAfter: 24}
}

func headingStyle() TextStyle {
	return TextStyle{Size: 13, Bold: true, Color: colorHeading, SpaceBefore: 16, SpaceAfter: 10}
}

func bodyStyle() TextStyle {
	return TextStyle{Size: 10, Color: colorBody, Leading: 14, SpaceAfter: 8}
}

func boldBodyStyle() TextStyle {
	s := bodyStyle()
	s.Bold = true
	return s
}

func italicBodyStyle() TextStyle {
	s := bodyStyle()
	s.Italic = true
	return s
}

func closingStyle() TextStyle {
	return TextStyle{Size: 10, Bold: true, Color: colorBody, Align: AlignCenter, SpaceAfter: 12}
}

// layoutComposer builds the flow-element sequence for a report.
// It is stateless; one instance may serve concurrent renders.
type layoutComposer struct{}

// Compose lays out the full report template in fixed section order.
// Pure function of the report value: it never fails for a structurally
// valid input, filling absent optional fields with placeholders.
func (layoutComposer) Compose(report AssessmentReport) []FlowElement {
	var elements []FlowElement
	add := func(el ...FlowElement) { elements = append(elements, el...) }

	// Title block.
	add(
		Heading{Text: reportTitle, Style: titleStyle()},
		Paragraph{Text: reportSubtitle, Style: subtitleStyle()},
	)

	// Metadata table.
	add(metadataTable(report), Spacer{Height: 0.15 * inch})

	// Disclaimer.
	add(
		Paragraph{Text: disclaimerText, Style: italicBodyStyle()},
		Spacer{Height: 0.25 * inch},
	)

	// Verdict box.
	add(
		Heading{Text: headingVerdict, Style: headingStyle()},
		verdictTable(report.RiskLevel),
		Spacer{Height: 0.2 * inch},
	)

	// Time-to-Regret.
	add(
		Heading{Text: "Time-to-Regret: " + report.TimeToRegret, Style: headingStyle()},
		Paragraph{Text: regretExplanation, Style: bodyStyle()},
		Spacer{Height: 0.2 * inch},
	)

	// Primary GTM shape.
	add(
		Heading{Text: headingGTMShape, Style: headingStyle()},
		Paragraph{Text: report.GTMShape, Style: boldBodyStyle()},
		Paragraph{Text: textOr(report.Verdict.GTMDescription, placeholderDescription), Style: bodyStyle()},
	)
	if len(report.Verdict.PressureFlags) > 0 {
		add(
			Spacer{Height: 0.1 * inch},
			Paragraph{Text: labelPressureFlags, Style: boldBodyStyle()},
		)
		for _, flag := range report.Verdict.PressureFlags {
			add(Paragraph{Text: bulletGlyph + " " + flag, Style: bodyStyle()})
		}
	}
	add(Spacer{Height: 0.2 * inch})

	// Founder energy profile. The heading always appears, even when both
	// lists are empty.
	add(Heading{Text: headingProfile, Style: headingStyle()})
	if len(report.FounderProfile.CoreDrivers) > 0 {
		add(Paragraph{Text: labelCoreDrivers, Style: boldBodyStyle()})
		for _, driver := range report.FounderProfile.CoreDrivers {
			add(Paragraph{Text: bulletGlyph + " " + driver, Style: bodyStyle()})
		}
	}
	if len(report.FounderProfile.CoreDrains) > 0 {
		add(
			Spacer{Height: 0.1 * inch},
			Paragraph{Text: labelCoreDrains, Style: boldBodyStyle()},
		)
		for _, drain := range report.FounderProfile.CoreDrains {
			add(Paragraph{Text: bulletGlyph + " " + drain, Style: bodyStyle()})
		}
	}
	add(Spacer{Height: 0.2 * inch})

	// Mismatch flags.
	add(Heading{Text: headingMismatch, Style: headingStyle()})
	if len(report.MismatchFlags) > 0 {
		for _, flag := range report.MismatchFlags {
			add(
				Paragraph{Text: rejectGlyph + " " + flag, Style: bodyStyle()},
				Spacer{Height: 0.05 * inch},
			)
		}
	} else {
		add(Paragraph{Text: noMismatchesLine, Style: bodyStyle()})
	}
	add(Spacer{Height: 0.2 * inch})

	// Classification basis.
	add(
		Heading{Text: headingBasis, Style: headingStyle()},
		Paragraph{Text: textOr(report.Verdict.Explanation, placeholderExplanation), Style: bodyStyle()},
		Spacer{Height: 0.2 * inch},
	)

	// What this verdict does not say.
	add(
		Heading{Text: headingDoesNotSay, Style: headingStyle()},
		Paragraph{Text: doesNotSayIntro, Style: bodyStyle()},
	)
	for _, item := range doesNotSayItems {
		add(Paragraph{Text: bulletGlyph + " " + item, Style: bodyStyle()})
	}
	add(
		Paragraph{Text: doesNotSayClosing, Style: bodyStyle()},
		Spacer{Height: 0.3 * inch},
	)

	// Closing lines and immutability notice.
	add(
		Paragraph{Text: closingLineOne, Style: closingStyle()},
		Paragraph{Text: closingLineTwo, Style: closingStyle()},
		Spacer{Height: 0.2 * inch},
		Paragraph{Text: immutabilityNotice, Style: italicBodyStyle()},
	)

	return elements
}

// metadataTable builds the 4-row metadata block: bold labels, fixed widths.
func metadataTable(report AssessmentReport) Table {
	label := TextStyle{Size: 9, Bold: true, Color: colorMeta}
	value := TextStyle{Size: 9, Color: colorMeta}

	row := func(l, v string) TableRow {
		return TableRow{Cells: []TableCell{
			{Text: l, Style: label},
			{Text: v, Style: value},
		}}
	}

	return Table{
		Rows: []TableRow{
			row(metaLabelID, report.AssessmentID),
			row(metaLabelGenerated, report.Timestamp),
			row(metaLabelType, metaValueType),
			row(metaLabelIntegrity, metaValueIntegrity),
		},
		ColWidths: []float64{2 * inch, 4 * inch},
		Style:     TableStyle{CellPadding: 2},
	}
}

// verdictTable builds the bordered, shaded verdict box. Border and label
// share the severity color; unknown levels take the neutral default.
func verdictTable(riskLevel string) Table {
	severity := RiskColor(riskLevel)
	fill := colorBoxFill
	border := severity

	return Table{
		Rows: []TableRow{
			{Cells: []TableCell{{
				Text:  "Misery Risk: " + strings.ToUpper(riskLevel),
				Style: TextStyle{Size: 14, Bold: true, Color: severity, Align: AlignCenter},
			}}},
			{Cells: []TableCell{{
				Text:  verdictBoxSubtext,
				Style: TextStyle{Size: 10, Color: colorBody, Align: AlignCenter},
			}}},
		},
		ColWidths: []float64{6 * inch},
		Style: TableStyle{
			Fill:        &fill,
			Border:      &border,
			BorderWidth: 2,
			CellPadding: 12,
		},
	}
}

func textOr(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}
