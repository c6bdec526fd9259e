package domain

import (
	"encoding/json"
	"strings"
)

// SkillList accepts either a JSON array of strings or a single
// comma-separated string. The comma form is split and each element trimmed,
// order preserved, empty elements dropped.
type SkillList []string

func (s *SkillList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = SplitSkills(raw)
	return nil
}

// SplitSkills turns "js, react , node" into ["js" "react" "node"].
func SplitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			skills = append(skills, p)
		}
	}
	return skills
}
