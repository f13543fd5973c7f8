package dto

import "talenthive_backend/internal/repositories"

// ApplyRequest carries the application body; the job id travels in the URL.
// Resume is optional and falls back to the jobseeker's profile resume.
type ApplyRequest struct {
	CoverLetter string `json:"coverLetter" validate:"required"`
	Resume      string `json:"resume"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type ApplicationResponse struct {
	ID          string `json:"_id"`
	Job         string `json:"job"`
	User        string `json:"user"`
	Status      string `json:"status"`
	CoverLetter string `json:"coverLetter"`
	Resume      string `json:"resume"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// JobDetails is the flattened job projection embedded in application lists.
type JobDetails struct {
	ID          string  `json:"_id"`
	Title       string  `json:"title"`
	CompanyName string  `json:"companyName"`
	Location    string  `json:"location"`
	Experience  string  `json:"experience"`
	JobType     string  `json:"jobType"`
	Salary      float64 `json:"salary"`
	IsActive    bool    `json:"isActive"`
}

// UserDetails is the flattened applicant projection embedded in employer
// application lists.
type UserDetails struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ApplicationWithJob struct {
	ApplicationResponse
	JobDetails  JobDetails  `json:"jobDetails"`
	UserDetails UserDetails `json:"userDetails"`
}

type ApplicationWithJobAndUser struct {
	ApplicationResponse
	JobDetails  JobDetails  `json:"jobDetails"`
	UserDetails UserDetails `json:"userDetails"`
}

const timeLayout = "2006-01-02T15:04:05.000Z"

func newApplicationResponse(row *repositories.ApplicationRow) ApplicationResponse {
	return ApplicationResponse{
		ID:          row.ID,
		Job:         row.JobID,
		User:        row.UserID,
		Status:      string(row.Status),
		CoverLetter: row.CoverLetter,
		Resume:      row.Resume,
		CreatedAt:   row.CreatedAt.UTC().Format(timeLayout),
		UpdatedAt:   row.UpdatedAt.UTC().Format(timeLayout),
	}
}

func newJobDetails(row *repositories.ApplicationRow) JobDetails {
	return JobDetails{
		ID:          row.JobID,
		Title:       row.JobTitle,
		CompanyName: row.JobCompanyName,
		Location:    row.JobLocation,
		Experience:  string(row.JobExperience),
		JobType:     string(row.JobType),
		Salary:      row.JobSalary,
		IsActive:    row.JobIsActive,
	}
}

func NewApplicationWithJobList(rows []repositories.ApplicationRow) []ApplicationWithJob {
	out := make([]ApplicationWithJob, 0, len(rows))
	for i := range rows {
		out = append(out, ApplicationWithJob{
			ApplicationResponse: newApplicationResponse(&rows[i]),
			JobDetails:          newJobDetails(&rows[i]),
			UserDetails:         newUserDetails(&rows[i]),
		})
	}
	return out
}

func newUserDetails(row *repositories.ApplicationRow) UserDetails {
	return UserDetails{
		ID:    row.UserID,
		Name:  row.UserName,
		Email: row.UserEmail,
	}
}

func NewApplicationWithJobAndUserList(rows []repositories.ApplicationRow) []ApplicationWithJobAndUser {
	out := make([]ApplicationWithJobAndUser, 0, len(rows))
	for i := range rows {
		out = append(out, ApplicationWithJobAndUser{
			ApplicationResponse: newApplicationResponse(&rows[i]),
			JobDetails:          newJobDetails(&rows[i]),
			UserDetails:         newUserDetails(&rows[i]),
		})
	}
	return out
}
