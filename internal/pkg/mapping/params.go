// Package mapping holds the per-entity query-parameter allow-lists enforced
// on the portal's inbound surface. Anything not listed here is rejected
// before a single call is made to the DB service.
package mapping

import (
	"fmt"

	"github.com/gurukulhq/portal-backend/internal/pkg/apperrors"
)

var AuthGroupQueryParams = []string{"id", "name", "locale"}

var BatchQueryParams = []string{
	"id",
	"name",
	"contact_hours_per_week",
	"batch_id",
	"parent_id",
	"program_id",
	"auth_group_id",
}

var EnrollmentRecordParams = []string{
	"academic_year",
	"is_current",
	"start_date",
	"end_date",
	"group_id",
	"group_type",
	"user_id",
	"subject_id",
	"grade_id",
}

var GroupQueryParams = []string{"id", "type", "child_id"}

var GroupUserQueryParams = []string{"id", "group_id", "user_id"}

var SchoolQueryParams = []string{"id", "name", "school_name", "code", "region", "district", "state", "block_name", "board_medium"}

var StudentQueryParams = []string{
	"student_id",
	"grade",
	"grade_id",
	"father_name",
	"father_phone",
	"mother_name",
	"mother_phone",
	"category",
	"stream",
	"family_income",
	"father_profession",
	"father_education_level",
	"mother_profession",
	"mother_education_level",
	"time_of_device_availability",
	"has_internet_access",
	"primary_smartphone_owner",
	"primary_smartphone_owner_profession",
	"guardian_name",
	"guardian_relation",
	"guardian_phone",
	"guardian_education_level",
	"guardian_profession",
	"physically_handicapped",
	"has_category_certificate",
	"category_certificate",
	"physically_handicapped_certificate",
	"annual_family_income",
	"monthly_family_income",
	"number_of_smartphones",
	"family_type",
	"number_of_four_wheelers",
	"number_of_two_wheelers",
	"goes_for_tuition_or_other_coaching",
	"percentage_in_grade_10_science",
	"percentage_in_grade_10_math",
	"percentage_in_grade_10_english",
	"grade_10_marksheet",
	"photo",
	"school_name",
	"region",
}

var TeacherQueryParams = []string{"teacher_id", "subject", "subject_id", "designation", "school_name", "region"}

var CandidateQueryParams = []string{"candidate_id", "subject", "subject_id", "exam", "designation"}

var UserQueryParams = []string{
	"id",
	"first_name",
	"last_name",
	"email",
	"phone",
	"whatsapp_phone",
	"gender",
	"address",
	"city",
	"district",
	"state",
	"pincode",
	"role",
	"date_of_birth",
	"country",
	"consent_check",
	"block_name",
}

// Merge concatenates allow-lists into one slice. Duplicates are harmless,
// membership checks only care about presence.
func Merge(lists ...[]string) []string {
	var merged []string
	for _, list := range lists {
		merged = append(merged, list...)
	}
	return merged
}

func contains(list []string, key string) bool {
	for _, item := range list {
		if item == key {
			return true
		}
	}
	return false
}

// ValidateQueryParams rejects any key absent from the allow-list and returns
// the surviving parameters as a flat map.
func ValidateQueryParams(params map[string]string, allowed []string) (map[string]string, error) {
	validated := map[string]string{}
	for key, value := range params {
		if !contains(allowed, key) {
			return nil, apperrors.NewBadRequestError(fmt.Sprintf("Query Parameter %s is not allowed!", key))
		}
		validated[key] = value
	}
	return validated, nil
}

// RequireFields checks that every named field is present and non-empty in
// the form data.
func RequireFields(data map[string]string, fields ...string) error {
	for _, field := range fields {
		if value, ok := data[field]; !ok || value == "" {
			return apperrors.NewBadRequestError(fmt.Sprintf("%s is not part of the request data", field))
		}
	}
	return nil
}
