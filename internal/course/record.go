package course

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Status is the learner's standing on a course.
type Status string

const (
	StatusNotStarted Status = "Not Started"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// SkillRecord is one row of course/skill progress data.
type SkillRecord struct {
	Name             string `json:"name" yaml:"name"`
	Icon             string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Progress         int    `json:"progress" yaml:"progress"` // 0-100
	CoursesCompleted int    `json:"courses_completed" yaml:"courses_completed"`
	TotalCourses     int    `json:"total_courses" yaml:"total_courses"`
	Featured         bool   `json:"featured,omitempty" yaml:"featured,omitempty"`
	Status           Status `json:"status,omitempty" yaml:"status,omitempty"`
}

// CompletionPercent returns floor(completed / total * 100), clamped to 0-100.
// A zero total yields 0.
func CompletionPercent(completed, total int) int {
	if total <= 0 || completed <= 0 {
		return 0
	}
	if completed >= total {
		return 100
	}
	return completed * 100 / total
}

// CompletionPercent returns the derived completion for the record.
func (r SkillRecord) CompletionPercent() int {
	return CompletionPercent(r.CoursesCompleted, r.TotalCourses)
}

// DisplayStatus returns the explicit status when set, otherwise one derived
// from progress.
func (r SkillRecord) DisplayStatus() Status {
	if r.Status != "" {
		return r.Status
	}
	return DeriveStatus(r.Progress)
}

// Label returns the icon and name, as shown on course buttons.
func (r SkillRecord) Label() string {
	if r.Icon == "" {
		return r.Name
	}
	return r.Icon + " " + r.Name
}

// DeriveStatus maps a progress percentage to a Status.
func DeriveStatus(progress int) Status {
	switch {
	case progress >= 100:
		return StatusCompleted
	case progress <= 0:
		return StatusNotStarted
	default:
		return StatusInProgress
	}
}

// Validate checks the record invariants.
func (r SkillRecord) Validate() error {
	var errs []string
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is empty")
	}
	if r.Progress < 0 || r.Progress > 100 {
		errs = append(errs, fmt.Sprintf("progress %d outside 0-100", r.Progress))
	}
	if r.CoursesCompleted < 0 || r.TotalCourses < 0 {
		errs = append(errs, "course counts must not be negative")
	}
	if r.CoursesCompleted > r.TotalCourses {
		errs = append(errs, fmt.Sprintf("courses completed %d exceeds total %d", r.CoursesCompleted, r.TotalCourses))
	}
	switch r.Status {
	case "", StatusNotStarted, StatusInProgress, StatusCompleted:
	default:
		errs = append(errs, fmt.Sprintf("unknown status %q", r.Status))
	}
	if len(errs) > 0 {
		return fmt.Errorf("course %q: %s", r.Name, strings.Join(errs, "; "))
	}
	return nil
}

// ValidateAll validates every record and rejects duplicate names.
// Returns a combined error describing all problems found, or nil if valid.
func ValidateAll(records []SkillRecord) error {
	var errs []string
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		if err := r.Validate(); err != nil {
			errs = append(errs, err.Error())
		}
		if seen[r.Name] {
			errs = append(errs, fmt.Sprintf("duplicate course name: %q", r.Name))
		}
		seen[r.Name] = true
	}
	if len(errs) > 0 {
		return fmt.Errorf("course validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// Overall returns the mean progress across records, rounded down.
func Overall(records []SkillRecord) int {
	if len(records) == 0 {
		return 0
	}
	xs := make([]float64, len(records))
	for i, r := range records {
		xs[i] = float64(r.Progress)
	}
	return int(stat.Mean(xs, nil))
}
