package client

import (
	"html/template"
	"math"
	"strings"
)

// Stars is the star-icon breakdown of a rating: Full full stars, an
// optional half star, and Empty padding up to five.
type Stars struct {
	Full  int
	Half  bool
	Empty int
}

// StarBreakdown converts a rating in [0, 5] to its display stars. A half
// star appears when the fractional part is at least 0.5.
func StarBreakdown(rating float64) Stars {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	full := int(math.Floor(rating))
	half := rating-float64(full) >= 0.5
	empty := 5 - full
	if half {
		empty--
	}
	return Stars{Full: full, Half: half, Empty: empty}
}

var cardTemplate = template.Must(template.New("card").Parse(`<div class="freelancer-card">
  <a href="{{.ProfileLink}}" target="_blank">
    <img src="{{.ProfileImage}}" alt="{{.Username}}">
    <h3>{{.Username}}</h3>
    <div class="rating">
      {{- range .Stars.FullSeq}}<i class="fas fa-star"></i>{{end}}
      {{- if .Stars.Half}}<i class="fas fa-star-half-alt"></i>{{end}}
      {{- range .Stars.EmptySeq}}<i class="far fa-star"></i>{{end}}
      <span>{{.Rating}} ({{.Reviews}} reviews)</span>
    </div>
    <p>{{.ShortDescription}}</p>
    <span class="price">Starting at ${{.Price}}</span>
  </a>
</div>`))

// cardStars adapts Stars for template iteration.
type cardStars struct {
	Stars
}

func (s cardStars) FullSeq() []struct{}  { return make([]struct{}, s.Full) }
func (s cardStars) EmptySeq() []struct{} { return make([]struct{}, s.Empty) }

type cardData struct {
	Listing
	Stars cardStars
}

// RenderCard turns one listing into its HTML display fragment. The
// template's contextual escaping neutralizes any markup smuggled into
// listing fields.
func RenderCard(l Listing) (template.HTML, error) {
	var sb strings.Builder
	data := cardData{Listing: l, Stars: cardStars{StarBreakdown(l.Rating)}}
	if err := cardTemplate.Execute(&sb, data); err != nil {
		return "", err
	}
	return template.HTML(sb.String()), nil
}

// RenderCards concatenates card fragments for a listing sequence.
func RenderCards(listings []Listing) (template.HTML, error) {
	var sb strings.Builder
	for _, l := range listings {
		fragment, err := RenderCard(l)
		if err != nil {
			return "", err
		}
		sb.WriteString(string(fragment))
	}
	return template.HTML(sb.String()), nil
}

const (
	noResultsFragment = `<p class="empty-state">No freelancers found.</p>`
	errorFragment     = `<p class="error-state">Error loading freelancer data. Please try again later.</p>`
)

// RenderMetadataLine formats the store freshness line.
func RenderMetadataLine(m Metadata) string {
	return "Last updated: " + m.LastUpdated + " by " + m.UpdatedBy
}
