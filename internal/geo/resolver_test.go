package geo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/atlasgoods/fulfillment-service/internal/entities"

	"github.com/stretchr/testify/assert"
)

func testSnapshot() *Snapshot {
	return NewSnapshot([]entities.CityReference{
		{ID: 1, Name: "Casablanca", Sectors: []string{"Maarif", "Ain Sebaa", "Sidi Moumen"}},
		{ID: 2, Name: "Rabat", Sectors: []string{"Agdal", "Hassan"}},
		{ID: 3, Name: "Salé", Sectors: []string{"Tabriquet"}},
		{ID: 4, Name: "Marrakech", Sectors: []string{"Gueliz", "Medina"}},
	})
}

func TestSnapshot_Resolve(t *testing.T) {
	snap := testSnapshot()

	testCases := []struct {
		name       string
		city       string
		address    string
		wantCity   string
		wantSector string
		resolved   bool
	}{
		{
			name:     "exact match ignores case and trailing space",
			city:     "casablanca ",
			wantCity: "Casablanca",
			resolved: true,
		},
		{
			name:     "exact match ignores diacritics",
			city:     "sale",
			wantCity: "Salé",
			resolved: true,
		},
		{
			name:     "prefix match",
			city:     "Casa",
			wantCity: "Casablanca",
			resolved: true,
		},
		{
			name:     "substring match",
			city:     "ville de rabat",
			wantCity: "Rabat",
			resolved: true,
		},
		{
			name:     "fuzzy match above threshold",
			city:     "Marakech",
			wantCity: "Marrakech",
			resolved: true,
		},
		{
			name:     "unresolved keeps raw input",
			city:     "Xyzzyville",
			wantCity: "Xyzzyville",
			resolved: false,
		},
		{
			name:     "empty input is unresolved",
			city:     "   ",
			wantCity: "",
			resolved: false,
		},
		{
			name:       "sector picked from address text",
			city:       "Casablanca",
			address:    "12 rue X, Maarif",
			wantCity:   "Casablanca",
			wantSector: "Maarif",
			resolved:   true,
		},
		{
			name:       "single sector city defaults to it",
			city:       "Salé",
			wantCity:   "Salé",
			wantSector: "Tabriquet",
			resolved:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := snap.Resolve(tc.city, tc.address)
			assert.Equal(t, tc.resolved, res.Resolved)
			assert.Equal(t, tc.wantCity, res.City)
			if tc.wantSector != "" {
				assert.Equal(t, tc.wantSector, res.Sector)
			}
		})
	}
}

func TestSnapshot_TieBreak(t *testing.T) {
	// Both names contain "sal"; the shorter reference name must win, and the
	// choice must not depend on insertion order.
	snap := NewSnapshot([]entities.CityReference{
		{ID: 1, Name: "Salé El Jadida"},
		{ID: 2, Name: "Salé"},
	})

	res := snap.Resolve("sal", "")
	assert.True(t, res.Resolved)
	assert.Equal(t, "Salé", res.City)
}

type stubSource struct {
	cities []entities.CityReference
	err    error
	calls  int
}

func (s *stubSource) ListCities(ctx context.Context) ([]entities.CityReference, error) {
	s.calls++
	return s.cities, s.err
}

func TestResolver_FallsBackToCachedSnapshot(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	source := &stubSource{cities: []entities.CityReference{{ID: 1, Name: "Rabat"}}}
	r := NewResolver(logger, source, time.Hour)

	// No snapshot yet: everything is unresolved, raw text preserved.
	res := r.Resolve("Rabat", "")
	assert.False(t, res.Resolved)
	assert.Equal(t, "Rabat", res.City)

	r.refresh(context.Background())
	res = r.Resolve("rabat", "")
	assert.True(t, res.Resolved)

	// A failing refresh keeps the previous snapshot.
	source.err = errors.New("carrier unavailable")
	r.refresh(context.Background())
	res = r.Resolve("rabat", "")
	assert.True(t, res.Resolved)
}
