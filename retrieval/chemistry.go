package retrieval

import (
	"regexp"
	"strings"
)

// Client-side relevance classifier for academic hits: a blocklist term rejects
// outright; everything else is accepted, with allowlisted and formula-bearing
// papers ranked ahead of default-accepted ones.

var chemistryBlocklist = []string{
	"astrophysic",
	"cosmolog",
	"galaxy",
	"galaxies",
	"black hole",
	"dark matter",
	"neutrino",
	"gravitational wave",
	"quantum computing",
	"exoplanet",
}

var chemistryAllowlist = []string{
	"polymer",
	"copolymer",
	"monomer",
	"resin",
	"catalys",
	"membrane",
	"coating",
	"adhesive",
	"electrolyte",
	"crystallin",
	"adsorption",
	"hydrolysis",
	"solvent",
	"elastomer",
	"composite",
	"thermoplastic",
	"heat resistance",
	"barrier property",
}

// matches condensed formulas like TiO2, CH3OH, LiFePO4
var formulaPattern = regexp.MustCompile(`(?:[A-Z][a-z]?[0-9]*){2,}`)

func RelevantToChemistry(title, summary string) bool {
	text := strings.ToLower(title + " " + summary)

	for _, term := range chemistryBlocklist {
		if strings.Contains(text, term) {
			return false
		}
	}

	return true
}

// HasChemistrySignal reports a positive domain signal: an allowlisted term or
// a chemical-formula-like token.
func HasChemistrySignal(title, summary string) bool {
	text := strings.ToLower(title + " " + summary)

	for _, term := range chemistryAllowlist {
		if strings.Contains(text, term) {
			return true
		}
	}

	return formulaPattern.MatchString(title + " " + summary)
}
