package course

// WeekPoint is one bar of the weekly growth chart.
type WeekPoint struct {
	Week     string `json:"week" yaml:"week"`
	Progress int    `json:"progress" yaml:"progress"`
}

// DefaultOverall is the headline completion shown on the gauge when the
// data source does not supply one.
const DefaultOverall = 68

// DefaultCourses returns the built-in course table.
func DefaultCourses() []SkillRecord {
	return []SkillRecord{
		{Name: "Python", Icon: "🐍", Progress: 85, CoursesCompleted: 5, TotalCourses: 6, Featured: true, Status: StatusCompleted},
		{Name: "C++", Icon: "💻", Progress: 60, CoursesCompleted: 3, TotalCourses: 5, Featured: true},
		{Name: "Web Development", Icon: "🌐", Progress: 75, CoursesCompleted: 6, TotalCourses: 8, Featured: true},
		{Name: "AI", Icon: "🤖", Progress: 40, CoursesCompleted: 2, TotalCourses: 5, Status: StatusNotStarted},
		{Name: "Data Science", Icon: "📊", Progress: 55, CoursesCompleted: 3, TotalCourses: 6},
		{Name: "Machine Learning", Icon: "🧩", Progress: 45, CoursesCompleted: 3, TotalCourses: 7},
		{Name: "Game Dev", Icon: "🕹️", Progress: 20, CoursesCompleted: 1, TotalCourses: 5},
		{Name: "App Dev", Icon: "📱", Progress: 35, CoursesCompleted: 2, TotalCourses: 6},
		{Name: "DSA", Icon: "⚙️", Progress: 65, CoursesCompleted: 4, TotalCourses: 6},
		{Name: "Cloud Computing", Icon: "☁️", Progress: 25, CoursesCompleted: 1, TotalCourses: 4},
		{Name: "Cybersecurity", Icon: "🔒", Progress: 30, CoursesCompleted: 1, TotalCourses: 4, Status: StatusNotStarted},
	}
}

// DefaultWeekly returns the built-in weekly growth series.
func DefaultWeekly() []WeekPoint {
	return []WeekPoint{
		{Week: "Week 1", Progress: 70},
		{Week: "Week 2", Progress: 82},
		{Week: "Week 3", Progress: 90},
		{Week: "Week 4", Progress: 100},
	}
}
