package model

import (
	"fmt"
	"strings"
)

type DomainID string

const (
	DomainAIML      DomainID = "aiml"
	DomainCSCore    DomainID = "cscore"
	DomainFullStack DomainID = "fullstack"
	DomainDSA       DomainID = "dsa"
	DomainAptitude  DomainID = "aptitude"
	DomainCollege   DomainID = "colgsem"
	DomainCoding    DomainID = "coding"
	DomainUPSC      DomainID = "upsc"
	DomainCreative  DomainID = "creative"
	DomainFreelance DomainID = "freelance"
)

type Domain struct {
	ID    DomainID `json:"id" yaml:"id"`
	Name  string   `json:"name" yaml:"name"`
	Icon  string   `json:"icon" yaml:"icon"`
	Color string   `json:"color" yaml:"color"`
}

var catalog = []Domain{
	{ID: DomainAIML, Name: "AI / ML", Icon: "🤖", Color: "#f472b6"},
	{ID: DomainCSCore, Name: "CS Core", Icon: "💻", Color: "#60a5fa"},
	{ID: DomainFullStack, Name: "Full Stack", Icon: "🌐", Color: "#34d399"},
	{ID: DomainDSA, Name: "DSA", Icon: "🧮", Color: "#fbbf24"},
	{ID: DomainAptitude, Name: "Aptitude", Icon: "🧠", Color: "#a78bfa"},
	{ID: DomainCollege, Name: "College Sem", Icon: "🎓", Color: "#fb923c"},
	{ID: DomainCoding, Name: "Coding / Projects", Icon: "⚡", Color: "#2dd4bf"},
	{ID: DomainUPSC, Name: "UPSC", Icon: "📚", Color: "#f87171"},
	{ID: DomainCreative, Name: "Creative + Portfolio", Icon: "🎨", Color: "#e879f9"},
	{ID: DomainFreelance, Name: "Freelance (StudentTribe)", Icon: "💼", Color: "#38bdf8"},
}

var catalogIndex = func() map[DomainID]int {
	idx := make(map[DomainID]int, len(catalog))
	for i, d := range catalog {
		idx[d.ID] = i
	}
	return idx
}()

// Domains returns the catalog in display order.
func Domains() []Domain {
	out := make([]Domain, len(catalog))
	copy(out, catalog)
	return out
}

func (id DomainID) IsValid() bool {
	_, ok := catalogIndex[id]
	return ok
}

func LookupDomain(id DomainID) (Domain, bool) {
	i, ok := catalogIndex[id]
	if !ok {
		return Domain{}, false
	}
	return catalog[i], true
}

// DomainOf never fails: unknown ids resolve to the first catalog entry so
// a stale snapshot still renders.
func DomainOf(id DomainID) Domain {
	if d, ok := LookupDomain(id); ok {
		return d
	}
	return catalog[0]
}

func ParseDomainID(raw string) (DomainID, error) {
	id := DomainID(strings.ToLower(strings.TrimSpace(raw)))
	if !id.IsValid() {
		return "", &ValidationError{Field: "domain", Reason: fmt.Sprintf("unknown domain %q", raw)}
	}
	return id, nil
}
