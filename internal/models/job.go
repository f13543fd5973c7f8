package models

import "gorm.io/datatypes"

type Job struct {
	BaseModel
	Title       string          `gorm:"not null" json:"title"`
	Description string          `gorm:"not null" json:"description"`
	Skills      datatypes.JSON  `gorm:"type:jsonb" json:"skills"`
	Experience  ExperienceLevel `gorm:"type:varchar(20);default:'Entry Level'" json:"experience"`
	JobType     JobType         `gorm:"type:varchar(20);default:'Full-time'" json:"jobType"`
	Location    string          `gorm:"not null" json:"location"`
	CompanyName string          `gorm:"not null" json:"companyName"`
	Salary      float64         `gorm:"not null" json:"salary"`
	IsActive    bool            `gorm:"default:true" json:"isActive"`
	EmployerID  string          `gorm:"type:uuid;not null;index" json:"employer"`

	Employer     *User         `gorm:"foreignKey:EmployerID" json:"-"`
	Applications []Application `gorm:"foreignKey:JobID" json:"-"`
}
