package models

// Student is the role-specific profile carrying the generated student_id.
// Profile fields beyond the ones the workflow reads are passed through as-is
// and not modeled here.
type Student struct {
	ID        int64  `json:"id"`
	StudentID string `json:"student_id"`
	GradeID   int64  `json:"grade_id,omitempty"`
	Grade     string `json:"grade,omitempty"`
	Category  string `json:"category,omitempty"`
	Stream    string `json:"stream,omitempty"`
	User      *User  `json:"user,omitempty"`
}

// Teacher is the role-specific profile carrying the generated teacher_id.
type Teacher struct {
	ID          int64  `json:"id"`
	TeacherID   string `json:"teacher_id"`
	SubjectID   int64  `json:"subject_id,omitempty"`
	Designation string `json:"designation,omitempty"`
	User        *User  `json:"user,omitempty"`
}

// Candidate is the role-specific profile carrying the candidate_id.
// For hiring cohorts the candidate_id is the phone number.
type Candidate struct {
	ID          int64  `json:"id"`
	CandidateID string `json:"candidate_id"`
	SubjectID   int64  `json:"subject_id,omitempty"`
	User        *User  `json:"user,omitempty"`
}
