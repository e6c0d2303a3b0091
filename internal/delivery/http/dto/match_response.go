package dto

import (
	"certtrack/internal/domain/credential"
	"certtrack/internal/domain/job"
	"certtrack/internal/domain/matching"
)

type JobResponse struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Seniority       string  `json:"seniority"`
	MedianSalaryUSD float64 `json:"medianSalaryUsd"`
	GrowthOutlook   string  `json:"growthOutlook"`
}

type JobMatchResponse struct {
	Job           JobResponse `json:"job"`
	Score         float64     `json:"score"`
	MatchedSkills []string    `json:"matchedSkills"`
	MissingSkills []string    `json:"missingSkills"`
	Category      string      `json:"category"`
}

type CredentialResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Provider    string `json:"provider"`
	Type        string `json:"type"`
	Level       string `json:"level"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

type JobDetailResponse struct {
	Job             JobResponse          `json:"job"`
	Score           float64              `json:"score"`
	MatchedSkills   []string             `json:"matchedSkills"`
	MissingSkills   []string             `json:"missingSkills"`
	Category        *string              `json:"category"`
	Recommendations []CredentialResponse `json:"recommendations"`
}

func NewJobResponse(j job.Job) JobResponse {
	return JobResponse{
		ID:              j.ID,
		Title:           j.Title,
		Description:     j.Description,
		Seniority:       j.Seniority,
		MedianSalaryUSD: j.MedianSalaryUSD,
		GrowthOutlook:   j.GrowthOutlook,
	}
}

func NewCredentialResponse(c credential.Credential) CredentialResponse {
	return CredentialResponse{
		ID:          c.ID,
		Name:        c.Name,
		Provider:    c.Provider,
		Type:        string(c.Type),
		Level:       string(c.Level),
		URL:         c.URL,
		Description: c.Description,
	}
}

func NewJobMatchResponses(matches []matching.JobMatch) []JobMatchResponse {
	out := make([]JobMatchResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, JobMatchResponse{
			Job:           NewJobResponse(m.Job),
			Score:         m.Score,
			MatchedSkills: nonNil(m.MatchedSkills),
			MissingSkills: nonNil(m.MissingSkills),
			Category:      string(m.Category),
		})
	}
	return out
}

func NewJobDetailResponse(d matching.JobDetail) JobDetailResponse {
	out := JobDetailResponse{
		Job:             NewJobResponse(d.Job),
		Score:           d.Score,
		MatchedSkills:   nonNil(d.MatchedSkills),
		MissingSkills:   nonNil(d.MissingSkills),
		Recommendations: make([]CredentialResponse, 0, len(d.Recommendations)),
	}
	if d.Category != nil {
		tier := string(*d.Category)
		out.Category = &tier
	}
	for _, c := range d.Recommendations {
		out.Recommendations = append(out.Recommendations, NewCredentialResponse(c))
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
