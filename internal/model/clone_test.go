package model

import "testing"

func TestResumeDataCloneIsDeep(t *testing.T) {
	orig := DefaultResumeData()
	orig.Experience = []Experience{{ID: "exp-1", Description: []string{"built it"}}}
	orig.Projects = []Project{{ID: "prj-1", Technologies: []string{"Go"}}}
	orig.Skills = []Skill{{Category: "Languages", Items: []string{"Go"}}}

	clone := orig.Clone()
	clone.Experience[0].Description[0] = "mutated"
	clone.Projects[0].Technologies[0] = "mutated"
	clone.Skills[0].Items[0] = "mutated"
	clone.PersonalInfo.Name = "mutated"

	if orig.Experience[0].Description[0] != "built it" {
		t.Error("experience bullets shared between clone and original")
	}
	if orig.Projects[0].Technologies[0] != "Go" {
		t.Error("project technologies shared between clone and original")
	}
	if orig.Skills[0].Items[0] != "Go" {
		t.Error("skill items shared between clone and original")
	}
	if orig.PersonalInfo.Name != "" {
		t.Error("personal info shared between clone and original")
	}
}

func TestSettingsCloneIsDeep(t *testing.T) {
	orig := DefaultSettings()
	clone := orig.Clone()
	clone.SectionOrder[0] = "mutated"
	if orig.SectionOrder[0] == "mutated" {
		t.Error("section order shared between clone and original")
	}
}

func TestDefaultResumeDataHasEmptySequences(t *testing.T) {
	data := DefaultResumeData()
	if data.Education == nil || data.Experience == nil || data.Projects == nil ||
		data.Skills == nil || data.Certifications == nil || data.Languages == nil || data.Awards == nil {
		t.Error("default data must use empty, not nil, sequences")
	}
	if len(data.Education) != 0 {
		t.Error("default data is not empty")
	}
}

func TestNewIDIsUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		if id == "" || seen[id] {
			t.Fatalf("duplicate or empty id %q", id)
		}
		seen[id] = true
	}
}
