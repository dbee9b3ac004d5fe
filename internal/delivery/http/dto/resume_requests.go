package dto

import "resume-forge/internal/domain/resume"

type GenerateResumeRequest struct {
	Resume   resume.Document `json:"resume"`
	Format   string          `json:"format"`
	Template string          `json:"template"`
}

type OptimizeRequest struct {
	ResumeText     string `json:"resumeText"`
	JobDescription string `json:"jobDescription"`
	JobURL         string `json:"jobUrl"`
}

type ApplyOptimizationsRequest struct {
	ResumeText     string               `json:"resumeText"`
	JobDescription string               `json:"jobDescription"`
	SelectedSkills *map[string][]string `json:"selectedSkills"`
}
