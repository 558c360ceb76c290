package domain

// AssignmentInfo is the read-only join of assignment and owning-course
// metadata needed to build the remote init payload. Timestamps are unix
// seconds as stored by the host; zero means unset.
type AssignmentInfo struct {
	ID                       int64
	Course                   int64
	Name                     string
	Intro                    string
	Activity                 string
	AllowSubmissionsFromDate int64
	DueDate                  int64
	GradingDueDate           int64

	CourseShortName string
	CourseFullName  string
	CourseSummary   string
	CourseStartDate int64
	CourseEndDate   int64
}
