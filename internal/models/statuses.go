package models

type UserRole string
type ExperienceLevel string
type JobType string
type ApplicationStatus string

const (
	UserRoleJobseeker UserRole = "jobseeker"
	UserRoleEmployer  UserRole = "employer"
	UserRoleAdmin     UserRole = "admin"

	ExperienceEntry      ExperienceLevel = "Entry Level"
	ExperienceMid        ExperienceLevel = "Mid Level"
	ExperienceSenior     ExperienceLevel = "Senior Level"
	ExperienceExecutive  ExperienceLevel = "Executive"
	ExperienceInternship ExperienceLevel = "Internship"
	ExperienceFresher    ExperienceLevel = "Fresher"

	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
	JobTypeInternship JobType = "Internship"

	ApplicationStatusApplied  ApplicationStatus = "applied"
	ApplicationStatusReviewed ApplicationStatus = "reviewed"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// ValidApplicationStatus reports whether s is one of the known statuses.
// Transitions themselves are not gated, any known status may be written.
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusReviewed,
		ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}
