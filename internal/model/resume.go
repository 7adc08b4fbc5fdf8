package model

import "github.com/google/uuid"

// Go models that match the snapshot format written by the builder UI, so
// persisted resumeData payloads load verbatim.

type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	GPA         string `json:"gpa,omitempty"`
	Description string `json:"description,omitempty"`
}

type Experience struct {
	ID        string `json:"id"`
	Company   string `json:"company"`
	Position  string `json:"position"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	// Current overrides EndDate: the rendered end date becomes "Present".
	Current     bool     `json:"current"`
	Location    string   `json:"location"`
	Description []string `json:"description"`
}

type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url,omitempty"`
	GitHub       string   `json:"github,omitempty"`
}

// Skill is a category group. It carries no id; groups are addressed by
// index so renaming the category keeps its items.
type Skill struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	URL    string `json:"url,omitempty"`
}

// Language proficiency levels.
const (
	ProficiencyBeginner     = "Beginner"
	ProficiencyIntermediate = "Intermediate"
	ProficiencyAdvanced     = "Advanced"
	ProficiencyNative       = "Native"
)

// Language has no id; entries are addressed by index.
type Language struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

type Award struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Issuer      string `json:"issuer"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
}

// ResumeData is the aggregate root. Section slices keep insertion order,
// which is also display order.
type ResumeData struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Summary        string          `json:"summary"`
	Education      []Education     `json:"education"`
	Experience     []Experience    `json:"experience"`
	Projects       []Project       `json:"projects"`
	Skills         []Skill         `json:"skills"`
	Certifications []Certification `json:"certifications"`
	Languages      []Language      `json:"languages"`
	Awards         []Award         `json:"awards"`
}

// NewID returns a random opaque token used only for list-item identity.
func NewID() string {
	return uuid.NewString()
}

func DefaultResumeData() ResumeData {
	return ResumeData{
		Education:      []Education{},
		Experience:     []Experience{},
		Projects:       []Project{},
		Skills:         []Skill{},
		Certifications: []Certification{},
		Languages:      []Language{},
		Awards:         []Award{},
	}
}
