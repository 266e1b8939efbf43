package client

import (
	"sort"
	"strings"
)

// commonSkills is the fixed vocabulary scanned for in listing
// descriptions when building the autocomplete list.
var commonSkills = []string{
	// Web development
	"javascript", "react", "vue", "angular", "node", "php", "laravel",
	"html", "css", "bootstrap", "tailwind", "wordpress", "shopify",

	// Mobile development
	"android", "ios", "flutter", "react native", "kotlin", "swift",

	// Data science
	"python", "tensorflow", "pytorch", "data analysis",
	"machine learning", "ai", "ml", "deep learning",

	// Cybersecurity
	"security", "ethical hacking", "penetration testing", "encryption",

	// Cloud & DevOps
	"aws", "azure", "gcp", "docker", "kubernetes", "devops",
}

// ExtractSkills scans every cached description against the skill
// vocabulary and returns the deduplicated, display-cased, alphabetically
// sorted skills that appear. Purely derived from current cache state.
func (s *Session) ExtractSkills() []string {
	seen := map[string]bool{}
	for _, l := range s.CachedAll() {
		description := strings.ToLower(l.ShortDescription)
		for _, skill := range commonSkills {
			if seen[skill] {
				continue
			}
			if strings.Contains(description, skill) {
				seen[skill] = true
			}
		}
	}

	skills := make([]string, 0, len(seen))
	for skill := range seen {
		skills = append(skills, displayCase(skill))
	}
	sort.Strings(skills)
	return skills
}

// displayCase capitalizes the first letter of each word.
func displayCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// CategoryDisplayName maps a category key to its display name; unknown
// keys pass through unchanged.
func CategoryDisplayName(category string) string {
	names := map[string]string{
		"web-development":    "Web Development",
		"mobile-development": "Mobile Development",
		"data-science-ml":    "Data Science & ML",
		"cybersecurity":      "Cybersecurity",
		"cloud-devops":       "Cloud & DevOps",
	}
	if name, ok := names[category]; ok {
		return name
	}
	return category
}
