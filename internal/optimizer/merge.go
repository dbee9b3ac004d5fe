// Package optimizer merges user-approved keywords into a parsed resume under
// deduplication, capacity, and no-fabrication constraints.
package optimizer

import (
	"strings"

	"resume-forge/internal/domain/keyword"
	"resume-forge/internal/domain/resume"
)

// MaxBucketEntries caps each comma-separated skills bucket. Additions beyond
// the cap are reported as skipped, never silently dropped.
const MaxBucketEntries = 25

const minReinforceableBullet = 20

// actionVerbs gate contextual reinforcement: only bullets that already claim
// work get a skill mention appended.
var actionVerbs = []string{"built", "developed", "implemented", "used", "wrote", "designed", "created"}

// Outcome reports what the merge did. Skipped entries (duplicates, full
// buckets) and excluded domain keywords are surfaced, not swallowed.
type Outcome struct {
	Document       resume.Document
	Added          []string
	Skipped        []string
	DomainExcluded []string
}

// Apply merges the selected keywords (keyed by category name) into a copy of
// doc. Domain Keywords are never auto-inserted: adding them would assert
// unverified domain experience.
func Apply(doc resume.Document, selected map[string][]string) Outcome {
	out := Outcome{
		Document:       doc.Clone(),
		Added:          []string{},
		Skipped:        []string{},
		DomainExcluded: []string{},
	}

	var reinforceable []string

	for _, category := range keyword.Categories() {
		for _, skill := range selected[string(category)] {
			skill = strings.TrimSpace(skill)
			if skill == "" {
				continue
			}

			var bucket *string
			technicalish := false
			switch category {
			case keyword.CategoryTechnicalSkills, keyword.CategoryProgrammingLanguages:
				bucket = &out.Document.Skills.Technical
				technicalish = true
			case keyword.CategoryTools:
				bucket = &out.Document.Skills.Tools
				technicalish = true
			case keyword.CategorySoftSkills:
				bucket = &out.Document.Skills.SoftSkills
			case keyword.CategoryDomain:
				out.DomainExcluded = append(out.DomainExcluded, skill)
				continue
			}

			updated, added := addSkillSafely(*bucket, skill)
			if !added {
				out.Skipped = append(out.Skipped, skill)
				continue
			}
			*bucket = updated
			out.Added = append(out.Added, skill)
			if technicalish {
				reinforceable = append(reinforceable, skill)
			}
		}
	}

	reinforceExperience(&out.Document, reinforceable)
	validate(&out.Document)

	return out
}

// addSkillSafely appends a skill to a comma-separated bucket unless its
// normalized form is already present or the bucket is at capacity. Reports
// whether the skill was added; idempotent under repeated application.
func addSkillSafely(existing, skill string) (string, bool) {
	entries := splitCSV(existing)
	norm := keyword.Normalize(skill)
	for _, e := range entries {
		if keyword.Normalize(e) == norm {
			return existing, false
		}
	}
	if len(entries) >= MaxBucketEntries {
		return existing, false
	}
	entries = append(entries, skill)
	return strings.Join(entries, ", "), true
}

func splitCSV(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

// reinforceExperience appends " using <skill>." to at most one existing
// bullet per skill, and inserts at most one skill per bullet. Bullets must
// already describe work (length and action-verb checks) and must not mention
// the skill yet. This rephrases claimed work; it never invents entries.
func reinforceExperience(doc *resume.Document, skills []string) {
	usedBullets := make(map[[2]int]struct{})

	for _, skill := range skills {
		if mentionedInBullets(doc, skill) {
			continue
		}

		for i := range doc.Experience {
			placed := false
			for j, bullet := range doc.Experience[i].Description {
				if _, taken := usedBullets[[2]int{i, j}]; taken {
					continue
				}
				if len(bullet) < minReinforceableBullet {
					continue
				}
				if !containsActionVerb(bullet) {
					continue
				}
				if strings.Contains(strings.ToLower(bullet), strings.ToLower(skill)) {
					continue
				}
				doc.Experience[i].Description[j] = strings.TrimRight(bullet, ". ") + " using " + skill + "."
				usedBullets[[2]int{i, j}] = struct{}{}
				placed = true
				break
			}
			if placed {
				break
			}
		}
	}
}

func mentionedInBullets(doc *resume.Document, skill string) bool {
	needle := strings.ToLower(skill)
	for _, exp := range doc.Experience {
		for _, bullet := range exp.Description {
			if strings.Contains(strings.ToLower(bullet), needle) {
				return true
			}
		}
	}
	return false
}

func containsActionVerb(bullet string) bool {
	lower := strings.ToLower(bullet)
	for _, v := range actionVerbs {
		if strings.Contains(lower, v) {
			return true
		}
	}
	return false
}
