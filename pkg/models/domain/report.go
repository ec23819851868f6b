package domain

// Report is a presentation-neutral rendering of an audit run, consumed by the
// terminal reporter.
type Report struct {
	Title    string
	Company  string
	Sections []ReportSection
}

// ReportSection represents a logical section in the report
type ReportSection struct {
	Title   string
	Status  string
	Summary map[string]interface{}
	Details []ReportDetail
}

// ReportDetail represents detailed information within a section
type ReportDetail struct {
	Name        string
	Value       interface{}
	Unit        string
	Description string
}
