package domain

// Severity grades a disease definition
type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// AllSeverities lists severities from least to most severe
var AllSeverities = []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}
