package model

// Clones back the copy-on-write discipline: every edit produces a fresh
// value, so a renderer holding the previous snapshot never observes a
// partial update.

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func (e Experience) Clone() Experience {
	e.Description = cloneStrings(e.Description)
	return e
}

func (p Project) Clone() Project {
	p.Technologies = cloneStrings(p.Technologies)
	return p
}

func (s Skill) Clone() Skill {
	s.Items = cloneStrings(s.Items)
	return s
}

func (d ResumeData) Clone() ResumeData {
	out := d

	if d.Education != nil {
		out.Education = make([]Education, len(d.Education))
		copy(out.Education, d.Education)
	}
	if d.Experience != nil {
		out.Experience = make([]Experience, len(d.Experience))
		for i, e := range d.Experience {
			out.Experience[i] = e.Clone()
		}
	}
	if d.Projects != nil {
		out.Projects = make([]Project, len(d.Projects))
		for i, p := range d.Projects {
			out.Projects[i] = p.Clone()
		}
	}
	if d.Skills != nil {
		out.Skills = make([]Skill, len(d.Skills))
		for i, s := range d.Skills {
			out.Skills[i] = s.Clone()
		}
	}
	if d.Certifications != nil {
		out.Certifications = make([]Certification, len(d.Certifications))
		copy(out.Certifications, d.Certifications)
	}
	if d.Languages != nil {
		out.Languages = make([]Language, len(d.Languages))
		copy(out.Languages, d.Languages)
	}
	if d.Awards != nil {
		out.Awards = make([]Award, len(d.Awards))
		copy(out.Awards, d.Awards)
	}

	return out
}

func (s ResumeSettings) Clone() ResumeSettings {
	s.SectionOrder = cloneStrings(s.SectionOrder)
	return s
}
