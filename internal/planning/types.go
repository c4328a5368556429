// Package planning validates candidate planning periods and checks versioned
// schedules against each other. Every function in this package is pure: malformed
// input is reported inside the returned result, never as an error or panic.
package planning

// DateLayout is the wire format for all dates handled by this package.
const DateLayout = "2006-01-02"

// RangeCandidate is an unvalidated date range as entered by an operator.
// Either field may be empty.
type RangeCandidate struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// VersionRange is the slice of a schedule version this package cares about:
// its label and its date bounds.
type VersionRange struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
	From  string `json:"from"`
	To    string `json:"to"`
}

type RangeMetadata struct {
	TotalDays   int `json:"totalDays"`
	WeekCount   int `json:"weekCount"`
	WorkingDays int `json:"workingDays"`
	WeekendDays int `json:"weekendDays"`
}

type ValidationResult struct {
	IsValid  bool          `json:"isValid"`
	Errors   []string      `json:"errors"`
	Warnings []string      `json:"warnings"`
	Metadata RangeMetadata `json:"metadata"`
}

type CompatibilityResult struct {
	IsCompatible    bool     `json:"isCompatible"`
	Issues          []string `json:"issues"`
	Warnings        []string `json:"warnings"`
	Recommendations []string `json:"recommendations"`
}

type ConflictKind string

const (
	ConflictOverlap      ConflictKind = "overlap"
	ConflictGap          ConflictKind = "gap"
	ConflictInvalidRange ConflictKind = "invalid_range"
)

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

type Conflict struct {
	Kind          ConflictKind `json:"kind"`
	Message       string       `json:"message"`
	AffectedDates []string     `json:"affectedDates"`
	Severity      Severity     `json:"severity"`
}

type Resolution struct {
	Action      string `json:"action"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
}

type ConflictReport struct {
	HasConflicts bool         `json:"hasConflicts"`
	Conflicts    []Conflict   `json:"conflicts"`
	Resolutions  []Resolution `json:"resolutions"`
}

type Metrics struct {
	TotalDays             int     `json:"totalDays"`
	WeekCount             int     `json:"weekCount"`
	WorkingDays           int     `json:"workingDays"`
	WeekendDays           int     `json:"weekendDays"`
	AvgWorkingDaysPerWeek float64 `json:"avgWorkingDaysPerWeek"`
	WeekendPercentage     int     `json:"weekendPercentage"`
	IsLongTerm            bool    `json:"isLongTerm"`
	IsShortTerm           bool    `json:"isShortTerm"`
}

type SuggestionType string

const (
	SuggestionOptimization   SuggestionType = "optimization"
	SuggestionWarning        SuggestionType = "warning"
	SuggestionRecommendation SuggestionType = "recommendation"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type Suggestion struct {
	Type     SuggestionType `json:"type"`
	Message  string         `json:"message"`
	Priority Priority       `json:"priority"`
}
