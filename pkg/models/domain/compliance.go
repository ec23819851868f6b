package domain

// Regulation is a regulator code. Codes without a dedicated handler are still
// valid and get a generic review result.
type Regulation string

const (
	RegulationFRC  Regulation = "FRC"
	RegulationFIRS Regulation = "FIRS"
	RegulationCAMA Regulation = "CAMA"
	RegulationCBN  Regulation = "CBN"
)

type ComplianceStatus string

const (
	StatusCompliant          ComplianceStatus = "COMPLIANT"
	StatusPartiallyCompliant ComplianceStatus = "PARTIALLY_COMPLIANT"
	StatusNonCompliant       ComplianceStatus = "NON_COMPLIANT"
	StatusRequiresReview     ComplianceStatus = "REQUIRES_REVIEW"
)

type Violation struct {
	Regulation     Regulation
	ViolationType  string
	Description    string
	Severity       Severity
	Recommendation string
	PenaltyRange   string // optional
	Deadline       string // optional
}

// RegulationResult is the outcome of one regulation handler. Its status is
// derived from the violations, see Status.
type RegulationResult struct {
	Regulation          Regulation
	Score               float64
	Violations          []Violation
	RequirementsMet     []string
	MissingRequirements []string

	pendingReview bool
}

// NewReviewResult builds a result for a regulation that needs manual review.
func NewReviewResult(reg Regulation, score float64, met, missing []string) RegulationResult {
	return RegulationResult{
		Regulation:          reg,
		Score:               score,
		Violations:          []Violation{},
		RequirementsMet:     met,
		MissingRequirements: missing,
		pendingReview:       true,
	}
}

func (r RegulationResult) Status() ComplianceStatus {
	return DeriveStatus(r.Violations, r.pendingReview)
}

// DeriveStatus: any CRITICAL violation => NON_COMPLIANT, any violation =>
// PARTIALLY_COMPLIANT, otherwise REQUIRES_REVIEW when review is pending and
// COMPLIANT when not.
func DeriveStatus(violations []Violation, pendingReview bool) ComplianceStatus {
	if CountSeverity(violations, SeverityCritical) > 0 {
		return StatusNonCompliant
	}
	if len(violations) > 0 {
		return StatusPartiallyCompliant
	}
	if pendingReview {
		return StatusRequiresReview
	}
	return StatusCompliant
}

// CountSeverity counts violations of exactly the given severity.
func CountSeverity(violations []Violation, severity Severity) int {
	n := 0
	for _, v := range violations {
		if v.Severity == severity {
			n++
		}
	}
	return n
}

type ComplianceOverview struct {
	OverallStatus      ComplianceStatus
	OverallScore       float64
	TotalViolations    int
	CriticalViolations int
	RegulationsChecked []Regulation
	PerRegulation      []RegulationResult
	Recommendations    []string
	ActionItems        []string
}
