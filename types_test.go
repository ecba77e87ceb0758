package whtreport

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestAssessmentReport_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		report  AssessmentReport
		wantErr error
	}{
		{
			name: "valid report",
			report: AssessmentReport{
				AssessmentID: "a1b2c3",
				Verdict:      Verdict{Explanation: "basis"},
				GTMShape:     "Bottom-up PLG",
			},
			wantErr: nil,
		},
		{
			name: "missing assessment id",
			report: AssessmentReport{
				Verdict:  Verdict{Explanation: "basis"},
				GTMShape: "Bottom-up PLG",
			},
			wantErr: ErrMissingAssessmentID,
		},
		{
			name: "empty verdict",
			report: AssessmentReport{
				AssessmentID: "a1b2c3",
				GTMShape:     "Bottom-up PLG",
			},
			wantErr: ErrMissingVerdict,
		},
		{
			name: "missing gtm shape",
			report: AssessmentReport{
				AssessmentID: "a1b2c3",
				Verdict:      Verdict{Explanation: "basis"},
			},
			wantErr: ErrMissingVerdict,
		},
		{
			name: "verdict with only pressure flags is not empty",
			report: AssessmentReport{
				AssessmentID: "a1b2c3",
				Verdict:      Verdict{PressureFlags: []string{"flag"}},
				GTMShape:     "Bottom-up PLG",
			},
			wantErr: nil,
		},
		{
			name: "assessment id checked before verdict",
			report: AssessmentReport{
				GTMShape: "Bottom-up PLG",
			},
			wantErr: ErrMissingAssessmentID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.report.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidationErrorMessages(t *testing.T) {
	t.Parallel()

	// The wire contract returns these messages verbatim.
	if got := ErrMissingAssessmentID.Error(); got != "assessment_id is required" {
		t.Errorf("ErrMissingAssessmentID = %q", got)
	}
	if got := ErrMissingVerdict.Error(); got != "Verdict data missing. Cannot generate report." {
		t.Errorf("ErrMissingVerdict = %q", got)
	}
}

func TestAssessmentReport_ApplyDefaults(t *testing.T) {
	t.Parallel()

	t.Run("fills absent optionals", func(t *testing.T) {
		r := AssessmentReport{AssessmentID: "x"}
		r.applyDefaults()
		if r.TimeToRegret != DefaultTimeToRegret {
			t.Errorf("TimeToRegret = %q, want %q", r.TimeToRegret, DefaultTimeToRegret)
		}
		if r.RiskLevel != DefaultRiskLevel {
			t.Errorf("RiskLevel = %q, want %q", r.RiskLevel, DefaultRiskLevel)
		}
	})

	t.Run("keeps supplied values", func(t *testing.T) {
		r := AssessmentReport{TimeToRegret: "3-6 months", RiskLevel: "high"}
		r.applyDefaults()
		if r.TimeToRegret != "3-6 months" {
			t.Errorf("TimeToRegret = %q", r.TimeToRegret)
		}
		if r.RiskLevel != "high" {
			t.Errorf("RiskLevel = %q", r.RiskLevel)
		}
	})
}

func TestAssessmentReport_JSONMapping(t *testing.T) {
	t.Parallel()

	payload := `{
		"assessment_id": "abc-123",
		"verdict": {
			"gtm_description": "desc",
			"pressure_flags": ["p1", "p2"],
			"explanation": "because"
		},
		"gtm_shape": "Outbound Sales",
		"founder_profile": {"core_drivers": ["d1"], "core_drains": ["d2"]},
		"mismatch_flags": ["m1"],
		"time_to_regret": "6 months",
		"risk_level": "severe"
	}`

	var r AssessmentReport
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if r.AssessmentID != "abc-123" {
		t.Errorf("AssessmentID = %q", r.AssessmentID)
	}
	if r.Verdict.GTMDescription != "desc" || r.Verdict.Explanation != "because" {
		t.Errorf("Verdict = %+v", r.Verdict)
	}
	if len(r.Verdict.PressureFlags) != 2 {
		t.Errorf("PressureFlags = %v", r.Verdict.PressureFlags)
	}
	if r.GTMShape != "Outbound Sales" {
		t.Errorf("GTMShape = %q", r.GTMShape)
	}
	if len(r.FounderProfile.CoreDrivers) != 1 || len(r.FounderProfile.CoreDrains) != 1 {
		t.Errorf("FounderProfile = %+v", r.FounderProfile)
	}
	if len(r.MismatchFlags) != 1 || r.TimeToRegret != "6 months" || r.RiskLevel != "severe" {
		t.Errorf("optionals = %v %q %q", r.MismatchFlags, r.TimeToRegret, r.RiskLevel)
	}

	// The timestamp is computed at render time, never accepted from input.
	var withTimestamp AssessmentReport
	if err := json.Unmarshal([]byte(`{"assessment_id":"x","timestamp":"2020-01-01"}`), &withTimestamp); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if withTimestamp.Timestamp != "" {
		t.Errorf("Timestamp decoded from input: %q", withTimestamp.Timestamp)
	}
}
