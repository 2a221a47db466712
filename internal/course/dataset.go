package course

import "fmt"

// Dataset is everything the dashboard renders: the course table, the weekly
// growth series and the headline completion.
type Dataset struct {
	Overall *int          `json:"overall,omitempty" yaml:"overall,omitempty"`
	Courses []SkillRecord `json:"courses" yaml:"courses"`
	Weekly  []WeekPoint   `json:"weekly,omitempty" yaml:"weekly,omitempty"`
}

// Builtin returns the hard-coded dataset.
func Builtin() *Dataset {
	overall := DefaultOverall
	return &Dataset{
		Overall: &overall,
		Courses: DefaultCourses(),
		Weekly:  DefaultWeekly(),
	}
}

// OverallPercent returns the explicit overall value when set, otherwise the
// mean of course progress.
func (d *Dataset) OverallPercent() int {
	if d.Overall != nil {
		return *d.Overall
	}
	return Overall(d.Courses)
}

// Validate checks every course and weekly point.
func (d *Dataset) Validate() error {
	if d.Overall != nil && (*d.Overall < 0 || *d.Overall > 100) {
		return fmt.Errorf("overall %d outside 0-100", *d.Overall)
	}
	if err := ValidateAll(d.Courses); err != nil {
		return err
	}
	for _, w := range d.Weekly {
		if w.Progress < 0 || w.Progress > 100 {
			return fmt.Errorf("week %q: progress %d outside 0-100", w.Week, w.Progress)
		}
	}
	return nil
}
