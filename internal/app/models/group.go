package models

// GroupKind is the tag of the polymorphic Group record. Each kind points its
// child_id at a different concrete entity.
type GroupKind string

const (
	GroupKindSchool    GroupKind = "school"
	GroupKindBatch     GroupKind = "batch"
	GroupKindGrade     GroupKind = "grade"
	GroupKindAuthGroup GroupKind = "auth_group"
)

// Valid reports whether the kind is one of the known group kinds.
func (k GroupKind) Valid() bool {
	switch k {
	case GroupKindSchool, GroupKindBatch, GroupKindGrade, GroupKindAuthGroup:
		return true
	}
	return false
}

// Group is the generic grouping record: a kind tag plus the id of the
// concrete entity it wraps.
type Group struct {
	ID      int64     `json:"id"`
	Type    GroupKind `json:"type"`
	ChildID int64     `json:"child_id"`
}

// GroupUser links a User to a Group for an academic year.
type GroupUser struct {
	ID           int64  `json:"id"`
	GroupID      int64  `json:"group_id"`
	UserID       int64  `json:"user_id"`
	AcademicYear string `json:"academic_year,omitempty"`
	StartDate    string `json:"start_date,omitempty"`
}

// EnrollmentRecord is a time-bounded membership linking a person to a
// school/batch/grade/auth-group.
type EnrollmentRecord struct {
	ID           int64     `json:"id"`
	AcademicYear string    `json:"academic_year,omitempty"`
	IsCurrent    bool      `json:"is_current,omitempty"`
	StartDate    string    `json:"start_date,omitempty"`
	EndDate      string    `json:"end_date,omitempty"`
	GroupID      int64     `json:"group_id"`
	GroupType    GroupKind `json:"group_type"`
	UserID       int64     `json:"user_id"`
	SubjectID    int64     `json:"subject_id,omitempty"`
	GradeID      int64     `json:"grade_id,omitempty"`
}
