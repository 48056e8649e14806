package llm

import (
	"strings"
	"testing"
)

func TestBuildScanPromptEnumeratesSchema(t *testing.T) {
	prompt := BuildScanPrompt(ScanInput{
		ResumeText:        "Python, 5 years",
		JobDescription:    "Looking for a Python engineer with Agile experience",
		YearsOfExperience: 5,
	})

	for _, field := range []string{
		"matchScore",
		"missingKeywords",
		"formattingIssues",
		"skills.score",
		"skills.tips",
		"softSkillsMatch",
		"hardSkillsMatch",
		"experienceAlignment",
		"toneAndStyle.score",
		"toneAndStyle.tips",
		"content.score",
		"content.tips",
		"structure.score",
		"structure.tips",
		"contentSuggestions",
		"ATS.tips",
	} {
		if !strings.Contains(prompt, field) {
			t.Fatalf("prompt missing field %q", field)
		}
	}

	if !strings.Contains(prompt, "(5 years)") {
		t.Fatalf("prompt should embed years of experience, got:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Python, 5 years") {
		t.Fatalf("prompt should embed resume text")
	}
}

func TestBuildScanPromptDefaultsEmptyJobDescription(t *testing.T) {
	prompt := BuildScanPrompt(ScanInput{ResumeText: "text", JobDescription: "  "})
	if !strings.Contains(prompt, "Job Description:\nN/A") {
		t.Fatalf("expected N/A for empty job description")
	}
}

func TestBuildScanPromptFractionalYears(t *testing.T) {
	prompt := BuildScanPrompt(ScanInput{ResumeText: "text", JobDescription: "jd", YearsOfExperience: 2.5})
	if !strings.Contains(prompt, "(2.5 years)") {
		t.Fatalf("expected fractional years to render without trailing zeros")
	}
}
