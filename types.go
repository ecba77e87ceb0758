package whtreport

// Default values applied to optional input fields before composing.
const (
	DefaultTimeToRegret = "Unknown"
	DefaultRiskLevel    = "UNKNOWN"
)

// AssessmentReport is the input payload for one render request.
// It is treated as an immutable value: the service works on its own copy
// and nothing outlives the call.
type AssessmentReport struct {
	// AssessmentID is an opaque identifier. Its first 8 characters derive
	// the output filename and the full value appears in every page footer.
	AssessmentID string `json:"assessment_id"`

	// Timestamp is the human-readable UTC generation time. It is computed
	// by the service at render time, never supplied by the caller.
	Timestamp string `json:"-"`

	Verdict        Verdict        `json:"verdict"`
	GTMShape       string         `json:"gtm_shape"`
	FounderProfile FounderProfile `json:"founder_profile"`
	MismatchFlags  []string       `json:"mismatch_flags"`
	TimeToRegret   string         `json:"time_to_regret"`
	RiskLevel      string         `json:"risk_level"`
}

// Verdict holds the classification outcome. All fields are optional;
// absent ones fall back to fixed placeholder text in the composed report.
type Verdict struct {
	GTMDescription string   `json:"gtm_description"`
	PressureFlags  []string `json:"pressure_flags"`
	Explanation    string   `json:"explanation"`
}

// isEmpty reports whether the verdict carries no data at all, which the
// contract treats the same as a missing verdict.
func (v Verdict) isEmpty() bool {
	return v.GTMDescription == "" && len(v.PressureFlags) == 0 && v.Explanation == ""
}

// FounderProfile lists what energizes and what depletes the founder.
type FounderProfile struct {
	CoreDrivers []string `json:"core_drivers"`
	CoreDrains  []string `json:"core_drains"`
}

// Validate checks that required fields are present. It performs presence
// and shape checks only, never semantic validation of the assessment.
func (r AssessmentReport) Validate() error {
	if r.AssessmentID == "" {
		return ErrMissingAssessmentID
	}
	if r.Verdict.isEmpty() || r.GTMShape == "" {
		return ErrMissingVerdict
	}
	return nil
}

// applyDefaults fills optional fields the caller omitted.
func (r *AssessmentReport) applyDefaults() {
	if r.TimeToRegret == "" {
		r.TimeToRegret = DefaultTimeToRegret
	}
	if r.RiskLevel == "" {
		r.RiskLevel = DefaultRiskLevel
	}
}

// RenderedReport is the output of one render: the finished document bytes,
// the derived filename, and the verified page count. Derived, never cached.
type RenderedReport struct {
	Filename string
	PDF      []byte
	Pages    int
}
