package geo

import (
	"sort"
	"strings"
	"unicode"

	"github.com/atlasgoods/fulfillment-service/internal/entities"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// similarityThreshold is the minimum Levenshtein similarity for a fuzzy match.
const similarityThreshold = 0.75

// Resolution is the outcome of matching a free-text city against the carrier
// reference set. When Resolved is false, City carries the raw input so the
// order can still be created and fixed up manually later.
type Resolution struct {
	CityID   int64
	City     string
	Sector   string
	Resolved bool
}

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lower-cases, strips diacritics and trims the input so that
// "Casablanca ", "casablanca" and "Casáblanca" compare equal.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

type refCity struct {
	city   entities.CityReference
	folded string
}

// Snapshot is an immutable view of the carrier city set. Matching is a pure
// function over (input, snapshot); the snapshot is replaced wholesale on
// refresh, never mutated.
type Snapshot struct {
	cities []refCity
}

func NewSnapshot(cities []entities.CityReference) *Snapshot {
	refs := make([]refCity, 0, len(cities))
	for _, c := range cities {
		refs = append(refs, refCity{city: c, folded: Fold(c.Name)})
	}
	// Pre-sorted by the tie-break order: shortest reference name first, then
	// alphabetical. The first hit in scan order is therefore the winner.
	sort.Slice(refs, func(i, j int) bool {
		if len(refs[i].city.Name) != len(refs[j].city.Name) {
			return len(refs[i].city.Name) < len(refs[j].city.Name)
		}
		return refs[i].city.Name < refs[j].city.Name
	})
	return &Snapshot{cities: refs}
}

func (s *Snapshot) Len() int {
	return len(s.cities)
}

// Resolve matches a free-text city (and optional address text for the sector)
// against the reference set. Precedence: exact folded match, prefix match,
// substring match, fuzzy match above the similarity threshold.
func (s *Snapshot) Resolve(city, address string) Resolution {
	input := Fold(city)
	if input == "" {
		return unresolved(city)
	}

	for _, ref := range s.cities {
		if ref.folded == input {
			return s.resolved(ref, address)
		}
	}

	if res, ok := s.matchBy(input, address, strings.HasPrefix); ok {
		return res
	}
	if res, ok := s.matchBy(input, address, strings.Contains); ok {
		return res
	}

	best := -1
	bestScore := 0.0
	for i, ref := range s.cities {
		score := similarity(input, ref.folded)
		if score >= similarityThreshold && score > bestScore {
			best, bestScore = i, score
		}
	}
	if best >= 0 {
		return s.resolved(s.cities[best], address)
	}

	return unresolved(city)
}

// matchBy scans in tie-break order, so with multiple candidates the shortest
// name wins deterministically.
func (s *Snapshot) matchBy(input, address string, match func(ref, in string) bool) (Resolution, bool) {
	for _, ref := range s.cities {
		if match(ref.folded, input) || match(input, ref.folded) {
			return s.resolved(ref, address), true
		}
	}
	return Resolution{}, false
}

func (s *Snapshot) resolved(ref refCity, address string) Resolution {
	return Resolution{
		CityID:   ref.city.ID,
		City:     ref.city.Name,
		Sector:   matchSector(ref.city, address),
		Resolved: true,
	}
}

// matchSector looks for a sector name inside the address text; a city with a
// single sector defaults to it.
func matchSector(city entities.CityReference, address string) string {
	if len(city.Sectors) == 1 {
		return city.Sectors[0]
	}
	folded := Fold(address)
	if folded == "" {
		return ""
	}
	for _, sector := range city.Sectors {
		if strings.Contains(folded, Fold(sector)) {
			return sector
		}
	}
	return ""
}

func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := max(len(a), len(b))
	if longest == 0 {
		return 0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}

func unresolved(raw string) Resolution {
	return Resolution{City: strings.TrimSpace(raw), Resolved: false}
}
