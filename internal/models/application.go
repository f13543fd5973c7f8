package models

// Application links a jobseeker to a job. The composite unique index closes
// the duplicate-apply race that the pre-insert existence check alone leaves
// open under concurrent requests.
type Application struct {
	BaseModel
	JobID       string            `gorm:"type:uuid;not null;index;uniqueIndex:idx_applications_job_user" json:"job"`
	UserID      string            `gorm:"type:uuid;not null;index;uniqueIndex:idx_applications_job_user" json:"user"`
	Status      ApplicationStatus `gorm:"type:varchar(20);default:'applied'" json:"status"`
	CoverLetter string            `gorm:"not null" json:"coverLetter"`
	Resume      string            `gorm:"not null" json:"resume"`

	Job  *Job  `gorm:"foreignKey:JobID" json:"-"`
	User *User `gorm:"foreignKey:UserID" json:"-"`
}
