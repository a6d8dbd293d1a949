package model

import (
	"strings"

	"github.com/gogf/gf/v2/errors/gerror"
)

// Severity ranks a diff operation by its potential for data loss.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityDanger
)

var severityNames = []string{"INFO", "WARNING", "DANGER"}

func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return "UNKNOWN"
	}
	return severityNames[s]
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(text []byte) error {
	for i, name := range severityNames {
		if strings.EqualFold(name, string(text)) {
			*s = Severity(i)
			return nil
		}
	}
	return gerror.Newf("unknown severity %q", text)
}

type ChangeType string

const (
	ChangeDropColumn   ChangeType = "drop_column"
	ChangeAddColumn    ChangeType = "add_column"
	ChangeAlterType    ChangeType = "alter_type"
	ChangeSetNotNull   ChangeType = "set_not_null"
	ChangeDropNotNull  ChangeType = "drop_not_null"
	ChangeShrinkLength ChangeType = "shrink_length"
)

// DiffOperation is one step of a migration from a live table to the target metadata.
type DiffOperation struct {
	Type     ChangeType `json:"type"`
	Column   string     `json:"column"`
	Sql      string     `json:"sql"`
	Severity Severity   `json:"severity"`
	Reason   string     `json:"reason"`
}

// IsAdvisory reports whether Sql is a note for a human rather than a statement.
func (o DiffOperation) IsAdvisory() bool {
	return strings.HasPrefix(o.Sql, "--")
}

// MaxSeverity returns the highest severity in ops, SeverityInfo for an empty list.
func MaxSeverity(ops []DiffOperation) Severity {
	highest := SeverityInfo
	for _, op := range ops {
		if op.Severity > highest {
			highest = op.Severity
		}
	}
	return highest
}
