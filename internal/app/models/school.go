package models

// School is a school record. Code is the short code spliced into generated
// identifiers.
type School struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Region      string `json:"region,omitempty"`
	District    string `json:"district,omitempty"`
	State       string `json:"state,omitempty"`
	BlockName   string `json:"block_name,omitempty"`
	BoardMedium string `json:"board_medium,omitempty"`
}

// Grade maps a grade number to its record id.
type Grade struct {
	ID     int64 `json:"id"`
	Number int   `json:"number"`
}

// Subject is a subject record.
type Subject struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Exam is an exam record.
type Exam struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Batch is a named cohort within an auth group.
type Batch struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	BatchID             string `json:"batch_id"`
	ParentID            int64  `json:"parent_id,omitempty"`
	ProgramID           int64  `json:"program_id,omitempty"`
	AuthGroupID         int64  `json:"auth_group_id,omitempty"`
	ContactHoursPerWeek int    `json:"contact_hours_per_week,omitempty"`
}

// AuthGroup is a named onboarding cohort/program.
type AuthGroup struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Locale string `json:"locale,omitempty"`
}
