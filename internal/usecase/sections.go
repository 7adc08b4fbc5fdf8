package usecase

import (
	"strconv"

	"resume-builder/internal/model"
)

// Section-level operations. Adds append a defaulted entry with a fresh id,
// updates replace the one matching entry, removals filter the sequence.
// Skill groups and languages carry no id and are addressed by index.

func (s *Session) AddEducation() model.Education {
	entry := model.Education{ID: model.NewID()}
	_ = s.mutate(func(d *model.ResumeData) error {
		d.Education = append(d.Education, entry)
		return nil
	})
	return entry
}

func (s *Session) UpdateEducation(id string, entry model.Education) error {
	return s.mutate(func(d *model.ResumeData) error {
		for i := range d.Education {
			if d.Education[i].ID == id {
				entry.ID = id
				d.Education[i] = entry
				return nil
			}
		}
		return &ErrNotFound{Section: "education", Key: id}
	})
}

func (s *Session) RemoveEducation(id string) error {
	return s.mutate(func(d *model.ResumeData) error {
		out := d.Education[:0]
		found := false
		for _, e := range d.Education {
			if e.ID == id {
				found = true
				continue
			}
			out = append(out, e)
		}
		if !found {
			return &ErrNotFound{Section: "education", Key: id}
		}
		d.Education = out
		return nil
	})
}

// AddExperience seeds one empty bullet so the entry is editable as soon as
// it appears.
func (s *Session) AddExperience() model.Experience {
	entry := model.Experience{ID: model.NewID(), Description: []string{""}}
	_ = s.mutate(func(d *model.ResumeData) error {
		d.Experience = append(d.Experience, entry.Clone())
		return nil
	})
	return entry
}

func (s *Session) UpdateExperience(id string, entry model.Experience) error {
	return s.mutate(func(d *model.ResumeData) error {
		for i := range d.Experience {
			if d.Experience[i].ID == id {
				entry.ID = id
				d.Experience[i] = entry.Clone()
				return nil
			}
		}
		return &ErrNotFound{Section: "experience", Key: id}
	})
}

func (s *Session) RemoveExperience(id string) error {
	return s.mutate(func(d *model.ResumeData) error {
		out := d.Experience[:0]
		found := false
		for _, e := range d.Experience {
			if e.ID == id {
				found = true
				continue
			}
			out = append(out, e)
		}
		if !found {
			return &ErrNotFound{Section: "experience", Key: id}
		}
		d.Experience = out
		return nil
	})
}

func (s *Session) AddExperienceBullet(id string) error {
	return s.mutate(func(d *model.ResumeData) error {
		for i := range d.Experience {
			if d.Experience[i].ID == id {
				d.Experience[i].Description = append(d.Experience[i].Description, "")
				return nil
			}
		}
		return &ErrNotFound{Section: "experience", Key: id}
	})
}

func (s *Session) UpdateExperienceBullet(id string, index int, text string) error {
	return s.mutate(func(d *model.ResumeData) error {
		for i := range d.Experience {
			if d.Experience[i].ID == id {
				if index < 0 || index >= len(d.Experience[i].Description) {
					return &ErrNotFound{Section: "experience bullet", Key: id}
				}
				d.Experience[i].Description[index] = text
				return nil
			}
		}
		return &ErrNotFound{Section: "experience", Key: id}
	})
}

func (s *Session) RemoveExperienceBullet(id string, index int) error {
	return s.mutate(func(d *model.ResumeData) error {
		for i := range d.Experience {
			if d.Experience[i].ID == id {
				desc := d.Experience[i].Description
				if index < 0 || index >= len(desc) {
					return &ErrNotFound{Section: "experience bullet", Key: id}
				}
				d.Experience[i].Description = append(desc[:index], desc[index+1:]...)
				return nil
			}
		}
		return &ErrNotFound{Section: "experience", Key: id}
	})
}

func (s *Session) AddProject() model.Project {
	entry := model.Project{ID: model.NewID(), Technologies: []string{}}
	_ = s.mutate(func(d *model.ResumeData) error {
		d.Projects = append(d.Projects, entry.Clone())
		return nil
	})
	return entry
}

func (s *Session) UpdateProject(id string, entry model.Project) error {
	return s.mutate(func(d *model.ResumeData) error {
		for i := range d.Projects {
			if d.Projects[i].ID == id {
				entry.ID = id
				d.Projects[i] = entry.Clone()
				return nil
			}
		}
		return &ErrNotFound{Section: "projects", Key: id}
	})
}

func (s *Session) RemoveProject(id string) error {
	return s.mutate(func(d *model.ResumeData) error {
		out := d.Projects[:0]
		found := false
		for _, p := range d.Projects {
			if p.ID == id {
				found = true
				continue
			}
			out = append(out, p)
		}
		if !found {
			return &ErrNotFound{Section: "projects", Key: id}
		}
		d.Projects = out
		return nil
	})
}

// AddProjectTechnology appends a tag. Duplicates are accepted, matching the
// builder UI's observed behavior.
func (s *Session) AddProjectTechnology(id, tech string) error {
	return s.mutate(func(d *model.ResumeData) error {
		for i := range d.Projects {
			if d.Projects[i].ID == id {
				d.Projects[i].Technologies = append(d.Projects[i].Technologies, tech)
				return nil
			}
		}
		return &ErrNotFound{Section: "projects", Key: id}
	})
}

// RemoveProjectTechnology drops every occurrence of the tag.
func (s *Session) RemoveProjectTechnology(id, tech string) error {
	return s.mutate(func(d *model.ResumeData) error {
		for i := range d.Projects {
			if d.Projects[i].ID == id {
				out := d.Projects[i].Technologies[:0]
				for _, t := range d.Projects[i].Technologies {
					if t != tech {
						out = append(out, t)
					}
				}
				d.Projects[i].Technologies = out
				return nil
			}
		}
		return &ErrNotFound{Section: "projects", Key: id}
	})
}

func (s *Session) AddSkillGroup() model.Skill {
	entry := model.Skill{Items: []string{}}
	_ = s.mutate(func(d *model.ResumeData) error {
		d.Skills = append(d.Skills, entry.Clone())
		return nil
	})
	return entry
}

func (s *Session) UpdateSkillGroup(index int, entry model.Skill) error {
	return s.mutate(func(d *model.ResumeData) error {
		if index < 0 || index >= len(d.Skills) {
			return &ErrNotFound{Section: "skills", Key: itoa(index)}
		}
		d.Skills[index] = entry.Clone()
		return nil
	})
}

func (s *Session) RemoveSkillGroup(index int) error {
	return s.mutate(func(d *model.ResumeData) error {
		if index < 0 || index >= len(d.Skills) {
			return &ErrNotFound{Section: "skills", Key: itoa(index)}
		}
		d.Skills = append(d.Skills[:index], d.Skills[index+1:]...)
		return nil
	})
}

// AddSkillItem appends an item to a group. Duplicates are accepted, same as
// project technologies.
func (s *Session) AddSkillItem(index int, item string) error {
	return s.mutate(func(d *model.ResumeData) error {
		if index < 0 || index >= len(d.Skills) {
			return &ErrNotFound{Section: "skills", Key: itoa(index)}
		}
		d.Skills[index].Items = append(d.Skills[index].Items, item)
		return nil
	})
}

func (s *Session) RemoveSkillItem(index int, item string) error {
	return s.mutate(func(d *model.ResumeData) error {
		if index < 0 || index >= len(d.Skills) {
			return &ErrNotFound{Section: "skills", Key: itoa(index)}
		}
		out := d.Skills[index].Items[:0]
		for _, it := range d.Skills[index].Items {
			if it != item {
				out = append(out, it)
			}
		}
		d.Skills[index].Items = out
		return nil
	})
}

func (s *Session) AddCertification() model.Certification {
	entry := model.Certification{ID: model.NewID()}
	_ = s.mutate(func(d *model.ResumeData) error {
		d.Certifications = append(d.Certifications, entry)
		return nil
	})
	return entry
}

func (s *Session) UpdateCertification(id string, entry model.Certification) error {
	return s.mutate(func(d *model.ResumeData) error {
		for i := range d.Certifications {
			if d.Certifications[i].ID == id {
				entry.ID = id
				d.Certifications[i] = entry
				return nil
			}
		}
		return &ErrNotFound{Section: "certifications", Key: id}
	})
}

func (s *Session) RemoveCertification(id string) error {
	return s.mutate(func(d *model.ResumeData) error {
		out := d.Certifications[:0]
		found := false
		for _, c := range d.Certifications {
			if c.ID == id {
				found = true
				continue
			}
			out = append(out, c)
		}
		if !found {
			return &ErrNotFound{Section: "certifications", Key: id}
		}
		d.Certifications = out
		return nil
	})
}

func (s *Session) AddLanguage() model.Language {
	entry := model.Language{Proficiency: model.ProficiencyBeginner}
	_ = s.mutate(func(d *model.ResumeData) error {
		d.Languages = append(d.Languages, entry)
		return nil
	})
	return entry
}

func (s *Session) UpdateLanguage(index int, entry model.Language) error {
	return s.mutate(func(d *model.ResumeData) error {
		if index < 0 || index >= len(d.Languages) {
			return &ErrNotFound{Section: "languages", Key: itoa(index)}
		}
		d.Languages[index] = entry
		return nil
	})
}

func (s *Session) RemoveLanguage(index int) error {
	return s.mutate(func(d *model.ResumeData) error {
		if index < 0 || index >= len(d.Languages) {
			return &ErrNotFound{Section: "languages", Key: itoa(index)}
		}
		d.Languages = append(d.Languages[:index], d.Languages[index+1:]...)
		return nil
	})
}

func (s *Session) AddAward() model.Award {
	entry := model.Award{ID: model.NewID()}
	_ = s.mutate(func(d *model.ResumeData) error {
		d.Awards = append(d.Awards, entry)
		return nil
	})
	return entry
}

func (s *Session) UpdateAward(id string, entry model.Award) error {
	return s.mutate(func(d *model.ResumeData) error {
		for i := range d.Awards {
			if d.Awards[i].ID == id {
				entry.ID = id
				d.Awards[i] = entry
				return nil
			}
		}
		return &ErrNotFound{Section: "awards", Key: id}
	})
}

func (s *Session) RemoveAward(id string) error {
	return s.mutate(func(d *model.ResumeData) error {
		out := d.Awards[:0]
		found := false
		for _, a := range d.Awards {
			if a.ID == id {
				found = true
				continue
			}
			out = append(out, a)
		}
		if !found {
			return &ErrNotFound{Section: "awards", Key: id}
		}
		d.Awards = out
		return nil
	})
}

func itoa(i int) string { return strconv.Itoa(i) }
