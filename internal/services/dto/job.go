package dto

import (
	"talenthive_backend/internal/models"
)

// CreateJobRequest intentionally has no validate tags for required fields,
// the service collects every missing field into a single message.
type CreateJobRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Experience  string   `json:"experience"`
	JobType     string   `json:"jobType"`
	Location    string   `json:"location"`
	CompanyName string   `json:"companyName"`
	Salary      float64  `json:"salary"`
}

type UpdateJobRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Skills      []string `json:"skills"`
	Experience  *string  `json:"experience"`
	JobType     *string  `json:"jobType"`
	Location    *string  `json:"location"`
	CompanyName *string  `json:"companyName"`
	Salary      *float64 `json:"salary"`
	IsActive    *bool    `json:"isActive"`
}

type JobResponse struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Experience  string   `json:"experience"`
	JobType     string   `json:"jobType"`
	Location    string   `json:"location"`
	CompanyName string   `json:"companyName"`
	Salary      float64  `json:"salary"`
	IsActive    bool     `json:"isActive"`
	Employer    string   `json:"employer"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

func NewJobResponse(job *models.Job) *JobResponse {
	return &JobResponse{
		ID:          job.ID,
		Title:       job.Title,
		Description: job.Description,
		Skills:      models.SkillsFromJSON(job.Skills),
		Experience:  string(job.Experience),
		JobType:     string(job.JobType),
		Location:    job.Location,
		CompanyName: job.CompanyName,
		Salary:      job.Salary,
		IsActive:    job.IsActive,
		Employer:    job.EmployerID,
		CreatedAt:   job.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z"),
		UpdatedAt:   job.UpdatedAt.UTC().Format("2006-01-02T15:04:05.000Z"),
	}
}

func NewJobResponseList(jobs []models.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, *NewJobResponse(&jobs[i]))
	}
	return out
}

// JobListResult pairs a page of jobs with the system-wide active job count
// used by the frontend for its counter.
type JobListResult struct {
	Jobs  []JobResponse
	Total int64
}

// EmployerDetails is the populated owner projection on the single-job view.
type EmployerDetails struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	CompanyName string `json:"companyName,omitempty"`
}

// ApplicantDetails is one application with its applicant, nested under the
// single-job view.
type ApplicantDetails struct {
	ID          string   `json:"_id"`
	Status      string   `json:"status"`
	CoverLetter string   `json:"coverLetter"`
	Resume      string   `json:"resume"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Skills      []string `json:"skills"`
	Experience  string   `json:"experience"`
}

type JobDetailResponse struct {
	JobResponse
	EmployerDetails *EmployerDetails   `json:"employerDetails,omitempty"`
	Applicants      []ApplicantDetails `json:"applicants"`
}

func NewJobDetailResponse(job *models.Job) *JobDetailResponse {
	resp := &JobDetailResponse{
		JobResponse: *NewJobResponse(job),
		Applicants:  make([]ApplicantDetails, 0, len(job.Applications)),
	}
	if job.Employer != nil {
		resp.EmployerDetails = &EmployerDetails{
			ID:          job.Employer.ID,
			Name:        job.Employer.Name,
			Email:       job.Employer.Email,
			CompanyName: job.Employer.CompanyName,
		}
	}
	for i := range job.Applications {
		app := &job.Applications[i]
		detail := ApplicantDetails{
			ID:          app.ID,
			Status:      string(app.Status),
			CoverLetter: app.CoverLetter,
			Resume:      app.Resume,
		}
		if app.User != nil {
			detail.Name = app.User.Name
			detail.Email = app.User.Email
			detail.Skills = models.SkillsFromJSON(app.User.Skills)
			detail.Experience = app.User.Experience
		}
		resp.Applicants = append(resp.Applicants, detail)
	}
	return resp
}
