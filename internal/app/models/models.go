// Package models defines the record shapes owned by the DB microservice.
// The portal never persists these itself; they exist here to give the
// remote JSON payloads typed form.
package models

// RoleType identifies the role context of a person record
type RoleType string

const (
	RoleStudent   RoleType = "student"
	RoleTeacher   RoleType = "teacher"
	RoleCandidate RoleType = "candidate"
)
