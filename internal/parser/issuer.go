package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/insightdelivered/card-statement-parser/internal/models"
)

type issuerAlias struct {
	name   string
	issuer models.Issuer
}

var issuerAliases = []issuerAlias{
	{"hdfc", models.IssuerHDFC},
	{"hdfc bank", models.IssuerHDFC},
	{"icici", models.IssuerICICI},
	{"icici bank", models.IssuerICICI},
	{"axis", models.IssuerAxis},
	{"axis bank", models.IssuerAxis},
	{"chase", models.IssuerChase},
	{"chase bank", models.IssuerChase},
	{"jpmorgan chase", models.IssuerChase},
	{"idfc", models.IssuerIDFC},
	{"idfc bank", models.IssuerIDFC},
	{"idfc first", models.IssuerIDFC},
	{"idfc first bank", models.IssuerIDFC},
}

// ParseIssuer resolves a user-supplied issuer name such as "hdfc",
// "Axis Bank" or "idfc-first" to an Issuer. Exact tags win; otherwise the
// closest alias is used as long as it points at a single issuer.
func ParseIssuer(name string) (models.Issuer, error) {
	clean := strings.Join(strings.Fields(strings.NewReplacer("-", " ", "_", " ").Replace(name)), " ")
	if clean == "" {
		return "", fmt.Errorf("empty issuer name")
	}
	for _, iss := range models.SupportedIssuers {
		if strings.EqualFold(clean, string(iss)) {
			return iss, nil
		}
	}

	targets := make([]string, len(issuerAliases))
	for i, a := range issuerAliases {
		targets[i] = a.name
	}
	ranks := fuzzy.RankFindNormalizedFold(clean, targets)
	if len(ranks) == 0 {
		return "", &UnsupportedIssuerError{Issuer: models.Issuer(name)}
	}
	sort.Sort(ranks)

	best := issuerAliases[ranks[0].OriginalIndex].issuer
	for _, r := range ranks[1:] {
		if r.Distance > ranks[0].Distance {
			break
		}
		if other := issuerAliases[r.OriginalIndex].issuer; other != best {
			return "", fmt.Errorf("ambiguous issuer %q: matches %s and %s", name, best, other)
		}
	}
	return best, nil
}
