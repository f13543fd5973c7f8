package dto

import "mime/multipart"

// JobseekerProfileRequest carries the multipart profile form. Skills and
// experience are not accepted directly, they come out of the resume parser.
type JobseekerProfileRequest struct {
	Phone      string
	Location   string
	ResumeFile *multipart.FileHeader
}

type EmployerProfileRequest struct {
	CompanyName string `form:"companyName"`
	CompanySize string `form:"companySize"`
	Industry    string `form:"industry"`
	Description string `form:"description"`
	Phone       string `form:"phone"`
	Location    string `form:"location"`
}
