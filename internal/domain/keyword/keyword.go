package keyword

// Category is one of the five fixed buckets a keyword can land in.
type Category string

const (
	CategoryTechnicalSkills      Category = "Technical Skills"
	CategoryProgrammingLanguages Category = "Programming Languages"
	CategoryTools                Category = "Tools & Technologies"
	CategorySoftSkills           Category = "Soft Skills"
	CategoryDomain               Category = "Domain Keywords"
)

// Categories lists every bucket in presentation order.
func Categories() []Category {
	return []Category{
		CategoryTechnicalSkills,
		CategoryProgrammingLanguages,
		CategoryTools,
		CategorySoftSkills,
		CategoryDomain,
	}
}

// Keyword pairs a human-readable display form with the normalized form used
// for matching.
type Keyword struct {
	Display    string
	Normalized string
	Category   Category
}

// CategorizedSet maps each category to an ordered list of keywords, unique
// by normalized form within the category.
type CategorizedSet map[Category][]Keyword

func NewCategorizedSet() CategorizedSet {
	s := make(CategorizedSet, 5)
	for _, c := range Categories() {
		s[c] = []Keyword{}
	}
	return s
}

// Add appends kw to its category unless a keyword with the same normalized
// form is already present there. Reports whether the keyword was added.
func (s CategorizedSet) Add(kw Keyword) bool {
	for _, existing := range s[kw.Category] {
		if existing.Normalized == kw.Normalized {
			return false
		}
	}
	s[kw.Category] = append(s[kw.Category], kw)
	return true
}

// Total counts unique keywords across all categories by normalized form.
func (s CategorizedSet) Total() int {
	seen := make(map[string]struct{})
	for _, kws := range s {
		for _, kw := range kws {
			seen[kw.Normalized] = struct{}{}
		}
	}
	return len(seen)
}

// Count sums the per-category list lengths.
func (s CategorizedSet) Count() int {
	n := 0
	for _, kws := range s {
		n += len(kws)
	}
	return n
}

// NormalizedForms collects the normalized form of every keyword in the set.
func (s CategorizedSet) NormalizedForms() map[string]struct{} {
	out := make(map[string]struct{})
	for _, kws := range s {
		for _, kw := range kws {
			out[kw.Normalized] = struct{}{}
		}
	}
	return out
}

// DisplayByCategory projects the set to display strings keyed by category
// name, in presentation order, for API responses.
func (s CategorizedSet) DisplayByCategory() map[string][]string {
	out := make(map[string][]string, 5)
	for _, c := range Categories() {
		names := make([]string, 0, len(s[c]))
		for _, kw := range s[c] {
			names = append(names, kw.Display)
		}
		out[string(c)] = names
	}
	return out
}
