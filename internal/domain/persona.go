package domain

import "strings"

// Persona describes a buyer persona the content corpus is audited against.
type Persona struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	PainPoints  []string `yaml:"painPoints" json:"pain_points"`
	Goals       []string `yaml:"goals" json:"goals"`
}

// Roster is the fixed, ordered persona set of one analysis run.
type Roster []Persona

// Names returns persona names in roster order.
func (r Roster) Names() []string {
	names := make([]string, 0, len(r))
	for _, p := range r {
		names = append(names, p.Name)
	}
	return names
}

// Lookup finds a persona by name ignoring case. Matrix aggregation never uses it:
// classification records must match persona names exactly.
func (r Roster) Lookup(name string) (Persona, bool) {
	for _, p := range r {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Persona{}, false
}

// Clone returns a deep copy so callers cannot mutate a running roster.
func (r Roster) Clone() Roster {
	if r == nil {
		return nil
	}
	out := make(Roster, len(r))
	for i, p := range r {
		out[i] = Persona{
			Name:        p.Name,
			Description: p.Description,
			PainPoints:  append([]string(nil), p.PainPoints...),
			Goals:       append([]string(nil), p.Goals...),
		}
	}
	return out
}

// DefaultPersonas is the stock roster used when nothing is configured.
func DefaultPersonas() Roster {
	return Roster{
		{
			Name:        "CMO / VP Marketing",
			Description: "Senior marketing leader focused on strategy and ROI",
			PainPoints:  []string{"Proving marketing ROI", "Scaling content operations", "Alignment with sales"},
			Goals:       []string{"Drive revenue growth", "Build brand awareness", "Improve marketing efficiency"},
		},
		{
			Name:        "Content Manager",
			Description: "Hands-on content creator and strategist",
			PainPoints:  []string{"Content production speed", "Maintaining quality", "Measuring content performance"},
			Goals:       []string{"Create engaging content", "Improve SEO rankings", "Support sales team"},
		},
		{
			Name:        "Sales Leader",
			Description: "VP Sales or Sales Director focused on closing deals",
			PainPoints:  []string{"Finding relevant content for prospects", "Competitive differentiation", "Shortening sales cycles"},
			Goals:       []string{"Hit revenue targets", "Enable sales team", "Improve win rates"},
		},
	}
}
