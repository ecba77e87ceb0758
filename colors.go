package whtreport

import "strings"

// RGB is a presentation color in 0-255 components.
type RGB struct {
	R, G, B int
}

// Palette used across the report. Values mirror the on-screen verdict.
var (
	colorTitle    = RGB{31, 41, 55}    // #1f2937
	colorSubtitle = RGB{107, 114, 128} // #6b7280
	colorHeading  = RGB{37, 99, 235}   // #2563eb
	colorBody     = RGB{55, 65, 81}    // #374151
	colorMeta     = RGB{75, 85, 99}    // #4b5563
	colorBoxFill  = RGB{249, 250, 251} // #f9fafb
	colorFooter   = RGB{102, 102, 102} // #666666
)

// riskColors maps a normalized risk level to its severity color.
// The mapping is a fixed finite table; anything outside it takes
// riskColorDefault rather than failing.
var riskColors = map[string]RGB{
	"LOW":      {16, 185, 129}, // #10b981
	"MODERATE": {245, 158, 11}, // #f59e0b
	"HIGH":     {239, 68, 68},  // #ef4444
	"SEVERE":   {153, 27, 27},  // #991b1b
}

var riskColorDefault = RGB{0, 0, 0}

// RiskColor returns the severity color for a risk level. The lookup is
// case-insensitive; unknown or empty levels yield the neutral default.
func RiskColor(riskLevel string) RGB {
	if c, ok := riskColors[strings.ToUpper(riskLevel)]; ok {
		return c
	}
	return riskColorDefault
}
