package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gorm.io/datatypes"

	"talenthive_backend/internal/ai"
	"talenthive_backend/internal/models"
	"talenthive_backend/internal/repositories"
)

// In-memory fakes shared by the service tests.

type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[string]*models.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) add(user *models.User) *models.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		r.nextID++
		user.ID = fmt.Sprintf("user-%d", r.nextID)
	}
	r.users[user.ID] = user
	return user
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	r.nextID++
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByVerificationToken(ctx context.Context, token string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.EmailVerificationToken == token && token != "" {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByResetToken(ctx context.Context, token string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.PasswordResetToken == token && token != "" &&
			u.PasswordResetExpires != nil && u.PasswordResetExpires.After(time.Now()) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) VerifyEmail(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.IsEmailVerified = true
	user.EmailVerificationToken = ""
	return nil
}

func (r *fakeUserRepo) SetVerificationToken(ctx context.Context, userID, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.EmailVerificationToken = token
	return nil
}

func (r *fakeUserRepo) SetRefreshToken(ctx context.Context, userID, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.RefreshToken = token
	return nil
}

func (r *fakeUserRepo) ClearRefreshToken(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[userID]; ok {
		user.RefreshToken = ""
	}
	return nil
}

func (r *fakeUserRepo) SetResetToken(ctx context.Context, userID, token string, expires time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.PasswordResetToken = token
	user.PasswordResetExpires = &expires
	return nil
}

func (r *fakeUserRepo) ResetPassword(ctx context.Context, userID, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.PasswordHash = passwordHash
	user.PasswordResetToken = ""
	user.PasswordResetExpires = nil
	return nil
}

func (r *fakeUserRepo) UpdateJobseekerProfile(ctx context.Context, userID string, fields map[string]interface{}) (*models.User, error) {
	return r.updateProfile(ctx, userID, fields)
}

func (r *fakeUserRepo) UpdateEmployerProfile(ctx context.Context, userID string, fields map[string]interface{}) (*models.User, error) {
	return r.updateProfile(ctx, userID, fields)
}

func (r *fakeUserRepo) updateProfile(ctx context.Context, userID string, fields map[string]interface{}) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	for key, val := range fields {
		switch key {
		case "resume":
			user.Resume = val.(string)
		case "skills":
			user.Skills = val.(datatypes.JSON)
		case "experience":
			user.Experience = val.(string)
		case "phone":
			user.Phone = val.(string)
		case "location":
			user.Location = val.(string)
		case "company_name":
			user.CompanyName = val.(string)
		case "company_size":
			user.CompanySize = val.(string)
		case "industry":
			user.Industry = val.(string)
		case "description":
			user.Description = val.(string)
		}
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) CleanExpiredResetTokens(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var cleaned int64
	for _, u := range r.users {
		if u.PasswordResetToken != "" && u.PasswordResetExpires != nil && u.PasswordResetExpires.Before(time.Now()) {
			u.PasswordResetToken = ""
			u.PasswordResetExpires = nil
			cleaned++
		}
	}
	return cleaned, nil
}

type fakeJobRepo struct {
	mu     sync.Mutex
	jobs   map[string]*models.Job
	nextID int
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*models.Job)}
}

func (r *fakeJobRepo) add(job *models.Job) *models.Job {
	r.mu.Lock()
	defer r.mu.Unlock()
	if job.ID == "" {
		r.nextID++
		job.ID = fmt.Sprintf("job-%d", r.nextID)
	}
	r.jobs[job.ID] = job
	return job
}

func (r *fakeJobRepo) Create(ctx context.Context, job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	job.ID = fmt.Sprintf("job-%d", r.nextID)
	job.CreatedAt = time.Now()
	job.UpdatedAt = job.CreatedAt
	r.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) FindByID(ctx context.Context, id string) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	copied := *job
	return &copied, nil
}

func (r *fakeJobRepo) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	for key, val := range fields {
		switch key {
		case "title":
			job.Title = val.(string)
		case "description":
			job.Description = val.(string)
		case "location":
			job.Location = val.(string)
		case "company_name":
			job.CompanyName = val.(string)
		case "salary":
			job.Salary = val.(float64)
		case "is_active":
			job.IsActive = val.(bool)
		case "experience":
			job.Experience = models.ExperienceLevel(val.(string))
		case "job_type":
			job.JobType = models.JobType(val.(string))
		}
	}
	copied := *job
	return &copied, nil
}

func (r *fakeJobRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[id]; !ok {
		return repositories.ErrJobNotFound
	}
	delete(r.jobs, id)
	return nil
}

// FindByIDWithDetails returns the stored job as-is; tests attach Employer
// and Applications to the job they add.
func (r *fakeJobRepo) FindByIDWithDetails(ctx context.Context, id string) (*models.Job, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeJobRepo) FindByEmployer(ctx context.Context, employerID string, offset, limit int) ([]models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []models.Job
	for _, j := range r.jobs {
		if j.EmployerID == employerID {
			all = append(all, *j)
		}
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *fakeJobRepo) CountActive(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, j := range r.jobs {
		if j.IsActive {
			count++
		}
	}
	return count, nil
}

func (r *fakeJobRepo) FindActiveExcluding(ctx context.Context, jobIDs []string) ([]models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	excluded := make(map[string]bool, len(jobIDs))
	for _, id := range jobIDs {
		excluded[id] = true
	}
	var out []models.Job
	for _, j := range r.jobs {
		if j.IsActive && !excluded[j.ID] {
			out = append(out, *j)
		}
	}
	return out, nil
}

type fakeApplicationRepo struct {
	mu     sync.Mutex
	apps   map[string]*models.Application
	jobs   *fakeJobRepo
	users  *fakeUserRepo
	nextID int
}

func newFakeApplicationRepo(jobs *fakeJobRepo, users *fakeUserRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{
		apps:  make(map[string]*models.Application),
		jobs:  jobs,
		users: users,
	}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, app *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.apps {
		if a.JobID == app.JobID && a.UserID == app.UserID {
			return repositories.ErrDuplicateApplication
		}
	}
	r.nextID++
	app.ID = fmt.Sprintf("app-%d", r.nextID)
	app.CreatedAt = time.Now()
	app.UpdatedAt = app.CreatedAt
	r.apps[app.ID] = app
	return nil
}

func (r *fakeApplicationRepo) FindByID(ctx context.Context, id string) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.apps[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	copied := *app
	return &copied, nil
}

func (r *fakeApplicationRepo) ExistsByJobAndUser(ctx context.Context, jobID, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.apps {
		if a.JobID == jobID && a.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApplicationRepo) JobIDsByUser(ctx context.Context, userID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []string
	for _, a := range r.apps {
		if a.UserID == userID {
			ids = append(ids, a.JobID)
		}
	}
	return ids, nil
}

func (r *fakeApplicationRepo) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.apps[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	app.Status = status
	copied := *app
	return &copied, nil
}

func (r *fakeApplicationRepo) FindByUserWithDetails(ctx context.Context, userID string) ([]repositories.ApplicationRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var rows []repositories.ApplicationRow
	for _, a := range r.apps {
		if a.UserID == userID {
			rows = append(rows, r.toRow(a))
		}
	}
	return rows, nil
}

func (r *fakeApplicationRepo) FindByEmployerWithDetails(ctx context.Context, employerID string) ([]repositories.ApplicationRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var rows []repositories.ApplicationRow
	for _, a := range r.apps {
		job, err := r.jobs.FindByID(ctx, a.JobID)
		if err != nil {
			continue
		}
		if job.EmployerID == employerID {
			rows = append(rows, r.toRow(a))
		}
	}
	return rows, nil
}

func (r *fakeApplicationRepo) toRow(a *models.Application) repositories.ApplicationRow {
	row := repositories.ApplicationRow{
		ID:          a.ID,
		JobID:       a.JobID,
		UserID:      a.UserID,
		Status:      a.Status,
		CoverLetter: a.CoverLetter,
		Resume:      a.Resume,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if job, err := r.jobs.FindByID(context.Background(), a.JobID); err == nil {
		row.JobTitle = job.Title
		row.JobCompanyName = job.CompanyName
		row.JobLocation = job.Location
		row.JobExperience = job.Experience
		row.JobType = job.JobType
		row.JobSalary = job.Salary
		row.JobIsActive = job.IsActive
		row.JobEmployerID = job.EmployerID
	}
	if user, err := r.users.FindByID(context.Background(), a.UserID); err == nil {
		row.UserName = user.Name
		row.UserEmail = user.Email
	}
	return row
}

type sentEmail struct {
	kind  string
	to    string
	token string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentEmail
	err  error
}

func (m *fakeMailer) SendVerificationEmail(ctx context.Context, to, name, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentEmail{kind: "verification", to: to, token: token})
	return nil
}

func (m *fakeMailer) SendPasswordResetEmail(ctx context.Context, to, name, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentEmail{kind: "reset", to: to, token: token})
	return nil
}

func (m *fakeMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func (m *fakeMailer) last() (sentEmail, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		return sentEmail{}, false
	}
	return m.sent[len(m.sent)-1], true
}

type fakeMatcher struct {
	mu       sync.Mutex
	lastReq  *ai.MatchJobsRequest
	response *ai.MatchJobsResponse
	err      error
}

func (m *fakeMatcher) MatchJobs(ctx context.Context, req ai.MatchJobsRequest) (*ai.MatchJobsResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastReq = &req
	if m.err != nil {
		return nil, m.err
	}
	if m.response != nil {
		return m.response, nil
	}
	return &ai.MatchJobsResponse{MatchedJobs: []map[string]interface{}{}}, nil
}
