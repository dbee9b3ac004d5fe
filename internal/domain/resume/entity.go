package resume

import "strings"

// PlaceholderName is used when no owner name can be recovered from a parsed
// document.
const PlaceholderName = "Resume"

type PersonalInfo struct {
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	State     string `json:"state"`
	Country   string `json:"country"`
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Portfolio string `json:"portfolio"`
	YouTube   string `json:"youtube"`
}

// Skills holds three comma-separated skill buckets.
type Skills struct {
	Technical  string `json:"technical"`
	Tools      string `json:"tools"`
	SoftSkills string `json:"softSkills"`
}

func (s Skills) Empty() bool {
	return s.Technical == "" && s.Tools == "" && s.SoftSkills == ""
}

type Experience struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Dates       string   `json:"dates"`
	Description []string `json:"description"`
}

type Education struct {
	Qualification string `json:"qualification"`
	Institute     string `json:"institute"`
	Location      string `json:"location"`
	Year          string `json:"year"`
	Stream        string `json:"stream"`
	Score         string `json:"score"`
}

type Project struct {
	Title       string   `json:"title"`
	Link        string   `json:"link"`
	GitHub      string   `json:"github"`
	Tools       string   `json:"tools"`
	Description []string `json:"description"`
	Outcome     string   `json:"outcome"`
}

type Certification struct {
	Name         string `json:"name"`
	Organization string `json:"organization"`
	Year         string `json:"year"`
	Link         string `json:"link"`
}

type Language struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

// Document is the canonical structured resume. Every field carries an
// explicit default so downstream consumers never need presence checks.
type Document struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Summary        string          `json:"summary"`
	Skills         Skills          `json:"skills"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	Languages      []Language      `json:"languages"`
	Template       string          `json:"template"`
}

// NewDocument returns a fully-defaulted document: placeholder name, empty
// strings, empty (non-nil) lists.
func NewDocument() Document {
	return Document{
		PersonalInfo:   PersonalInfo{FullName: PlaceholderName},
		Skills:         Skills{},
		Experience:     []Experience{},
		Education:      []Education{},
		Projects:       []Project{},
		Certifications: []Certification{},
		Languages:      []Language{},
		Template:       "professional",
	}
}

// Clone returns a deep copy. Transforms operate on copies and return new
// values; callers never see their input mutated.
func (d Document) Clone() Document {
	out := d

	out.Experience = make([]Experience, len(d.Experience))
	for i, e := range d.Experience {
		e.Description = append([]string(nil), e.Description...)
		out.Experience[i] = e
	}
	out.Education = append([]Education{}, d.Education...)
	out.Projects = make([]Project, len(d.Projects))
	for i, p := range d.Projects {
		p.Description = append([]string(nil), p.Description...)
		out.Projects[i] = p
	}
	out.Certifications = append([]Certification{}, d.Certifications...)
	out.Languages = append([]Language{}, d.Languages...)

	return out
}

// FlattenText projects the document back to plain text, in roughly the order
// a rendered resume reads. Used to re-score a merged document against a job
// description with the same pipeline that scored the raw upload.
func (d Document) FlattenText() string {
	var b strings.Builder
	line := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		b.WriteString(s)
		b.WriteString("\n")
	}

	line(d.PersonalInfo.FullName)
	line(d.PersonalInfo.Email)
	line(d.PersonalInfo.Phone)
	line(d.Summary)
	line(d.Skills.Technical)
	line(d.Skills.Tools)
	line(d.Skills.SoftSkills)
	for _, e := range d.Experience {
		line(e.Title + " " + e.Company)
		for _, bullet := range e.Description {
			line(bullet)
		}
	}
	for _, e := range d.Education {
		line(e.Qualification + " " + e.Institute)
	}
	for _, p := range d.Projects {
		line(p.Title)
		for _, bullet := range p.Description {
			line(bullet)
		}
	}

	return b.String()
}
