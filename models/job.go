// models/job.go
package models

import (
	"time"
)

// JobPosting is a startup job listing.
type JobPosting struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	UserID          uint   `gorm:"not null;index" json:"user_id"`
	User            *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CompanyName     string `gorm:"not null;size:200" json:"company_name"`
	JobTitle        string `gorm:"not null;size:200" json:"job_title"`
	JobDescription  string `gorm:"not null;type:text" json:"job_description"`
	Location        string `gorm:"size:200;index" json:"location"`
	JobType         string `gorm:"size:50;index" json:"job_type"`         // full-time, part-time, contract, internship
	ExperienceLevel string `gorm:"size:50" json:"experience_level"`       // junior, mid, senior
	SalaryMin       int    `gorm:"default:0" json:"salary_min"`
	SalaryMax       int    `gorm:"default:0" json:"salary_max"`
	Currency        string `gorm:"size:10;default:'USD'" json:"currency"`
	SkillsRequired  string `gorm:"type:text" json:"skills_required"` // comma-separated
	ApplicationURL  string `gorm:"size:500" json:"application_url"`
	IsRemote        bool   `gorm:"default:false" json:"is_remote"`
	IsActive        bool   `gorm:"default:true;index" json:"is_active"`
	Featured        bool   `gorm:"default:false" json:"featured"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (JobPosting) TableName() string {
	return "job_postings"
}
