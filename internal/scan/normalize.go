package scan

import (
	"math"
	"strconv"

	"atscan-backend/internal/reports"
)

// normalize coerces an untrusted decoded model reply into the canonical
// field set. Every field gets a documented default when absent or
// mistyped: 0 for scores, empty slice for arrays, empty string for text.
// Scores are rounded and clamped into [0,100].
func normalize(obj map[string]any) reports.Fields {
	return reports.Fields{
		MatchScore:          clampScore(getNumber(obj, "matchScore")),
		MissingKeywords:     getStringSlice(obj, "missingKeywords"),
		FormattingIssues:    getStringSlice(obj, "formattingIssues"),
		ContentSuggestions:  getStringSlice(obj, "contentSuggestions"),
		ExperienceAlignment: getString(obj, "experienceAlignment"),
		HardSkillsMatch:     getSkillMatches(obj, "hardSkillsMatch"),
		SoftSkillsMatch:     getSkillMatches(obj, "softSkillsMatch"),
		Skills:              getCategory(obj, "skills"),
		ToneAndStyle:        getCategory(obj, "toneAndStyle"),
		Content:             getCategory(obj, "content"),
		Structure:           getCategory(obj, "structure"),
		ATS:                 reports.ATSCategory{Tips: getTips(asMap(obj["ATS"]), "tips", false)},
	}
}

// clampScore rounds and bounds a raw score into [0,100].
func clampScore(value float64) int {
	score := int(math.Round(value))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func getNumber(obj map[string]any, key string) float64 {
	switch v := obj[key].(type) {
	case float64:
		return v
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return 0
}

func getString(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

func getBool(obj map[string]any, key string) bool {
	b, _ := obj[key].(bool)
	return b
}

func getStringSlice(obj map[string]any, key string) []string {
	out := []string{}
	items, _ := obj[key].([]any)
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func getSkillMatches(obj map[string]any, key string) []reports.SkillMatch {
	out := []reports.SkillMatch{}
	items, _ := obj[key].([]any)
	for _, item := range items {
		entry := asMap(item)
		if entry == nil {
			continue
		}
		out = append(out, reports.SkillMatch{
			Skill:   getString(entry, "skill"),
			Present: getBool(entry, "present"),
		})
	}
	return out
}

func getTips(obj map[string]any, key string, withExplanation bool) []reports.Tip {
	out := []reports.Tip{}
	items, _ := obj[key].([]any)
	for _, item := range items {
		entry := asMap(item)
		if entry == nil {
			continue
		}
		tip := reports.Tip{
			Type: getString(entry, "type"),
			Tip:  getString(entry, "tip"),
		}
		if withExplanation {
			tip.Explanation = getString(entry, "explanation")
		}
		out = append(out, tip)
	}
	return out
}

func getCategory(obj map[string]any, key string) reports.Category {
	entry := asMap(obj[key])
	return reports.Category{
		Score: clampScore(getNumber(entry, "score")),
		Tips:  getTips(entry, "tips", true),
	}
}
