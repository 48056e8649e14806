package llm

import (
	"fmt"
	"strconv"
	"strings"
)

// promptTemplate enumerates the exact field schema the model must reply with.
// This natural-language schema is the wire contract between the scan pipeline
// and the model; the scan package defends against replies that violate it.
const promptTemplate = `You are an ATS (Applicant Tracking System) resume scanner similar to Jobscan or ResumeWorded.
Analyze the provided resume text against the job description and the user's years of experience (%s years).
Return a JSON object with:
- matchScore: a number (0-100) for overall resume/job-description compatibility
- missingKeywords: array of keywords from the job description missing in the resume
- formattingIssues: array of ATS-related formatting issues
- skills.score: a number (0-100) assessing the match of hard and soft skills to the job description
- skills.tips: array of tips, each {"type": "good" or "improve", "tip": string, "explanation": string}
- softSkillsMatch: array of {"skill": string, "present": boolean} for soft skills from the job description
- hardSkillsMatch: array of {"skill": string, "present": boolean} for hard skills from the job description
- experienceAlignment: string describing how well the years of experience align with job requirements
- toneAndStyle.score: a number (0-100) evaluating tone and style suitability for the job
- toneAndStyle.tips: array of tips with type, a concise tip, and an explanation
- content.score: a number (0-100) assessing the quality and relevance of content
- content.tips: array of tips with type, tip, and explanation
- structure.score: a number (0-100) evaluating the resume's organization and readability
- structure.tips: array of tips with type, tip, and explanation
- contentSuggestions: array of actionable suggestions to improve ATS compatibility
- ATS.tips: array of tips with type ("good" or "improve") and a concise tip, no explanation
Ensure suggestions are specific, actionable, and mimic the detailed feedback provided by Jobscan or ResumeWorded.
Respond with JSON only. Never omit keys.

Resume:
%s

Job Description:
%s`

// BuildScanPrompt renders the scan instruction for the given input.
func BuildScanPrompt(input ScanInput) string {
	years := strconv.FormatFloat(input.YearsOfExperience, 'f', -1, 64)
	jd := strings.TrimSpace(input.JobDescription)
	if jd == "" {
		jd = "N/A"
	}
	return fmt.Sprintf(promptTemplate, years, input.ResumeText, jd)
}
