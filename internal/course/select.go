package course

import "fmt"

// NotFoundError indicates no record matched the requested name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("course %q not found", e.Name)
}

// Select returns the record whose Name exactly matches name (case-sensitive).
func Select(records []SkillRecord, name string) (SkillRecord, error) {
	for _, r := range records {
		if r.Name == name {
			return r, nil
		}
	}
	return SkillRecord{}, &NotFoundError{Name: name}
}

// Featured returns the records shown in the top course bar, in order.
func Featured(records []SkillRecord) []SkillRecord {
	var out []SkillRecord
	for _, r := range records {
		if r.Featured {
			out = append(out, r)
		}
	}
	return out
}

// Extra returns the records revealed by the "More Courses" panel, in order.
func Extra(records []SkillRecord) []SkillRecord {
	var out []SkillRecord
	for _, r := range records {
		if !r.Featured {
			out = append(out, r)
		}
	}
	return out
}
