package export

import (
	"fmt"
	"strings"

	"resume-builder/internal/model"
)

// ToMarkdown projects ResumeData to a Markdown string. It is a strict
// function of the data: settings never affect it, and dates are emitted as
// stored ("YYYY-MM"), unlike the rendered preview which reformats them.
func ToMarkdown(data model.ResumeData) string {
	var md strings.Builder

	pi := data.PersonalInfo
	fmt.Fprintf(&md, "# %s\n\n", pi.Name)

	contacts := []string{}
	if pi.Email != "" {
		contacts = append(contacts, "📧 "+pi.Email)
	}
	if pi.Phone != "" {
		contacts = append(contacts, "📱 "+pi.Phone)
	}
	if pi.Location != "" {
		contacts = append(contacts, "📍 "+pi.Location)
	}
	if pi.Website != "" {
		contacts = append(contacts, fmt.Sprintf("🌐 [Website](%s)", pi.Website))
	}
	if pi.LinkedIn != "" {
		contacts = append(contacts, fmt.Sprintf("💼 [LinkedIn](%s)", pi.LinkedIn))
	}
	if pi.GitHub != "" {
		contacts = append(contacts, fmt.Sprintf("💻 [GitHub](%s)", pi.GitHub))
	}
	if len(contacts) > 0 {
		md.WriteString(strings.Join(contacts, " | ") + "\n\n")
	}

	if data.Summary != "" {
		fmt.Fprintf(&md, "## Summary\n\n%s\n\n", data.Summary)
	}

	if len(data.Experience) > 0 {
		md.WriteString("## Experience\n\n")
		for _, exp := range data.Experience {
			fmt.Fprintf(&md, "### %s - %s\n", exp.Position, exp.Company)
			end := exp.EndDate
			if exp.Current {
				end = "Present"
			}
			fmt.Fprintf(&md, "*%s - %s* | %s\n\n", exp.StartDate, end, exp.Location)
			for _, desc := range exp.Description {
				fmt.Fprintf(&md, "- %s\n", desc)
			}
			md.WriteString("\n")
		}
	}

	if len(data.Education) > 0 {
		md.WriteString("## Education\n\n")
		for _, edu := range data.Education {
			fmt.Fprintf(&md, "### %s in %s\n", edu.Degree, edu.Field)
			fmt.Fprintf(&md, "**%s** | %s - %s\n", edu.Institution, edu.StartDate, edu.EndDate)
			if edu.GPA != "" {
				fmt.Fprintf(&md, "GPA: %s\n", edu.GPA)
			}
			if edu.Description != "" {
				fmt.Fprintf(&md, "%s\n", edu.Description)
			}
			md.WriteString("\n")
		}
	}

	if len(data.Projects) > 0 {
		md.WriteString("## Projects\n\n")
		for _, project := range data.Projects {
			fmt.Fprintf(&md, "### %s\n", project.Name)
			fmt.Fprintf(&md, "%s\n", project.Description)
			fmt.Fprintf(&md, "**Technologies:** %s\n", strings.Join(project.Technologies, ", "))
			if project.URL != "" {
				fmt.Fprintf(&md, "**Live Demo:** [%s](%s)\n", project.URL, project.URL)
			}
			if project.GitHub != "" {
				fmt.Fprintf(&md, "**GitHub:** [%s](%s)\n", project.GitHub, project.GitHub)
			}
			md.WriteString("\n")
		}
	}

	if len(data.Skills) > 0 {
		md.WriteString("## Skills\n\n")
		for _, group := range data.Skills {
			fmt.Fprintf(&md, "**%s:** %s\n\n", group.Category, strings.Join(group.Items, ", "))
		}
	}

	if len(data.Certifications) > 0 {
		md.WriteString("## Certifications\n\n")
		for _, cert := range data.Certifications {
			fmt.Fprintf(&md, "- **%s** - %s (%s)\n", cert.Name, cert.Issuer, cert.Date)
		}
		md.WriteString("\n")
	}

	if len(data.Languages) > 0 {
		md.WriteString("## Languages\n\n")
		for _, lang := range data.Languages {
			fmt.Fprintf(&md, "- **%s:** %s\n", lang.Name, lang.Proficiency)
		}
		md.WriteString("\n")
	}

	if len(data.Awards) > 0 {
		md.WriteString("## Awards\n\n")
		for _, award := range data.Awards {
			fmt.Fprintf(&md, "- **%s** - %s (%s)\n", award.Name, award.Issuer, award.Date)
			if award.Description != "" {
				fmt.Fprintf(&md, "  %s\n", award.Description)
			}
		}
	}

	return md.String()
}

func baseFilename(name string) string {
	return strings.Join(strings.Fields(name), "_") + "_Resume"
}

// MarkdownFilename builds the download name for a Markdown export.
func MarkdownFilename(name string) string {
	return baseFilename(name) + ".md"
}

// PDFFilename builds the download name for a PDF export.
func PDFFilename(name string) string {
	return baseFilename(name) + ".pdf"
}
