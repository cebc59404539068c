// handlers/jobs.go
package handlers

import (
	"ideahub/database"
	"ideahub/middleware"
	"ideahub/models"
	"ideahub/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type JobRequest struct {
	CompanyName     string `json:"company_name"`
	JobTitle        string `json:"job_title"`
	JobDescription  string `json:"job_description"`
	Location        string `json:"location"`
	JobType         string `json:"job_type"`
	ExperienceLevel string `json:"experience_level"`
	SalaryMin       int    `json:"salary_min"`
	SalaryMax       int    `json:"salary_max"`
	Currency        string `json:"currency"`
	SkillsRequired  string `json:"skills_required"`
	ApplicationURL  string `json:"application_url"`
	IsRemote        bool   `json:"is_remote"`
}

var validJobTypes = map[string]bool{
	"full-time":  true,
	"part-time":  true,
	"contract":   true,
	"internship": true,
}

// GetJobs lists active job postings with filters. Featured first.
// GET /api/jobs?type=full-time&location=berlin&remote=true&limit=20&offset=0
func GetJobs(c *fiber.Ctx) error {
	limit, offset := utils.Page(c.Query("limit"), c.Query("offset"), 20, 100)

	db := database.GetDB()
	query := db.Model(&models.JobPosting{}).Where("is_active = ?", true)

	if jobType := c.Query("type"); jobType != "" {
		query = query.Where("job_type = ?", jobType)
	}
	if level := c.Query("experience"); level != "" {
		query = query.Where("experience_level = ?", level)
	}
	if location := c.Query("location"); location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(location)+"%")
	}
	if c.Query("remote") == "true" {
		query = query.Where("is_remote = ?", true)
	}
	if q := c.Query("q"); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where("LOWER(job_title) LIKE ? OR LOWER(company_name) LIKE ? OR LOWER(skills_required) LIKE ?", like, like, like)
	}

	var total int64
	query.Count(&total)

	var jobs []models.JobPosting
	if err := query.Preload("User").
		Order("featured DESC, created_at DESC").
		Limit(limit).Offset(offset).
		Find(&jobs).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch jobs"})
	}
	for i := range jobs {
		sanitizeUser(jobs[i].User)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"jobs":    jobs,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}

// GetJob returns one job posting.
// GET /api/jobs/:id
func GetJob(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid job ID"})
	}

	db := database.GetDB()
	var job models.JobPosting
	if err := db.Preload("User").First(&job, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Job not found"})
	}
	sanitizeUser(job.User)

	return c.JSON(fiber.Map{"success": true, "job": job})
}

// CreateJob publishes a job posting. Guests cannot post jobs.
// POST /api/jobs
func CreateJob(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}
	if middleware.IsGuest(c) {
		return c.Status(403).JSON(fiber.Map{"success": false, "error": "Register an account to post jobs"})
	}

	var req JobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	req.CompanyName = strings.TrimSpace(req.CompanyName)
	req.JobTitle = strings.TrimSpace(req.JobTitle)
	req.JobDescription = strings.TrimSpace(req.JobDescription)
	if req.CompanyName == "" || req.JobTitle == "" || req.JobDescription == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Company, title and description required"})
	}
	if req.JobType != "" && !validJobTypes[req.JobType] {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid job type"})
	}
	if req.SalaryMin < 0 || req.SalaryMax < 0 || (req.SalaryMax > 0 && req.SalaryMin > req.SalaryMax) {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid salary range"})
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	job := models.JobPosting{
		UserID:          userID,
		CompanyName:     req.CompanyName,
		JobTitle:        req.JobTitle,
		JobDescription:  req.JobDescription,
		Location:        req.Location,
		JobType:         req.JobType,
		ExperienceLevel: req.ExperienceLevel,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		Currency:        currency,
		SkillsRequired:  req.SkillsRequired,
		ApplicationURL:  req.ApplicationURL,
		IsRemote:        req.IsRemote,
		IsActive:        true,
	}

	db := database.GetDB()
	if err := db.Create(&job).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create job"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "job": job})
}

// UpdateJob edits a job posting the caller owns.
// PUT /api/jobs/:id
func UpdateJob(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid job ID"})
	}

	db := database.GetDB()
	var job models.JobPosting
	if err := db.First(&job, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Job not found"})
	}
	if job.UserID != userID {
		return c.Status(403).JSON(fiber.Map{"success": false, "error": "Not your posting"})
	}

	var req JobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	updates := map[string]interface{}{}
	if v := strings.TrimSpace(req.CompanyName); v != "" {
		updates["company_name"] = v
	}
	if v := strings.TrimSpace(req.JobTitle); v != "" {
		updates["job_title"] = v
	}
	if v := strings.TrimSpace(req.JobDescription); v != "" {
		updates["job_description"] = v
	}
	if req.Location != "" {
		updates["location"] = req.Location
	}
	if req.JobType != "" {
		if !validJobTypes[req.JobType] {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid job type"})
		}
		updates["job_type"] = req.JobType
	}
	if req.ExperienceLevel != "" {
		updates["experience_level"] = req.ExperienceLevel
	}
	if req.SalaryMin > 0 {
		updates["salary_min"] = req.SalaryMin
	}
	if req.SalaryMax > 0 {
		updates["salary_max"] = req.SalaryMax
	}
	if req.SkillsRequired != "" {
		updates["skills_required"] = req.SkillsRequired
	}
	if req.ApplicationURL != "" {
		updates["application_url"] = req.ApplicationURL
	}
	if len(updates) == 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Nothing to update"})
	}

	if err := db.Model(&job).Updates(updates).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update job"})
	}

	return c.JSON(fiber.Map{"success": true, "job": job})
}

// DeactivateJob takes a posting off the board without deleting it.
// DELETE /api/jobs/:id
func DeactivateJob(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid job ID"})
	}

	db := database.GetDB()
	var job models.JobPosting
	if err := db.First(&job, id).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Job not found"})
	}
	if job.UserID != userID {
		return c.Status(403).JSON(fiber.Map{"success": false, "error": "Not your posting"})
	}

	if err := db.Model(&job).Update("is_active", false).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to deactivate job"})
	}

	return c.JSON(fiber.Map{"success": true})
}
