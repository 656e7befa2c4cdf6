package domain

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/Huspam/personal-website/internal/models"
)

func rec(filename string, lat, lon float64, day int) models.PhotoRecord {
	return models.PhotoRecord{
		Filename: filename,
		Title:    filename,
		Date:     time.Date(2020, time.January, day, 0, 0, 0, 0, time.UTC),
		Lat:      lat,
		Lon:      lon,
	}
}

func TestInBoxBoundaryInclusive(t *testing.T) {
	click := models.ClickEvent{Lat: 10, Lon: 20}

	tests := []struct {
		name     string
		lat, lon float64
		want     bool
	}{
		{name: "center", lat: 10, lon: 20, want: true},
		{name: "north edge", lat: click.Lat + Tolerance, lon: 20, want: true},
		{name: "south edge", lat: click.Lat - Tolerance, lon: 20, want: true},
		{name: "east edge", lat: 10, lon: click.Lon + Tolerance, want: true},
		{name: "west edge", lat: 10, lon: click.Lon - Tolerance, want: true},
		{name: "corner", lat: click.Lat + Tolerance, lon: click.Lon - Tolerance, want: true},
		{name: "just north", lat: click.Lat + Tolerance + 1e-9, lon: 20, want: false},
		{name: "just east", lat: 10, lon: click.Lon + Tolerance + 1e-9, want: false},
		{name: "nan lat", lat: math.NaN(), lon: 20, want: false},
		{name: "nan lon", lat: 10, lon: math.NaN(), want: false},
	}

	for _, tt := range tests {
		if got := InBox(tt.lat, tt.lon, click); got != tt.want {
			t.Fatalf("%s: InBox(%v, %v) = %v, want %v", tt.name, tt.lat, tt.lon, got, tt.want)
		}
	}
}

func TestFilterNearbyParis(t *testing.T) {
	records := []models.PhotoRecord{rec("eiffel.jpg", 48.8584, 2.2945, 1)}

	got := FilterNearby(records, models.ClickEvent{Lat: 48.85, Lon: 2.29})
	if len(got) != 1 || got[0].Filename != "eiffel.jpg" {
		t.Fatalf("nearby = %+v, want eiffel.jpg", got)
	}

	got = FilterNearby(records, models.ClickEvent{Lat: 48.85 + 0.02, Lon: 2.29})
	if len(got) != 0 {
		t.Fatalf("nearby = %+v, want none", got)
	}
}

func TestFilterNearbyExactAndShifted(t *testing.T) {
	records := []models.PhotoRecord{rec("paris.jpg", 48.85, 2.35, 1)}

	if got := FilterNearby(records, models.ClickEvent{Lat: 48.85, Lon: 2.35}); len(got) != 1 {
		t.Fatalf("nearby = %d records, want 1", len(got))
	}
	if got := FilterNearby(records, models.ClickEvent{Lat: 48.85 + 0.02, Lon: 2.35}); len(got) != 0 {
		t.Fatalf("nearby = %d records, want 0", len(got))
	}
}

func TestFilterNearbyKeepsTableOrder(t *testing.T) {
	records := []models.PhotoRecord{
		rec("a.jpg", 1.000, 1.000, 1),
		rec("far.jpg", 5, 5, 2),
		rec("b.jpg", 1.005, 0.995, 3),
		rec("c.jpg", 0.991, 1.009, 4),
	}

	got := FilterNearby(records, models.ClickEvent{Lat: 1, Lon: 1})
	want := []string{"a.jpg", "b.jpg", "c.jpg"}
	if len(got) != len(want) {
		t.Fatalf("nearby = %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Filename != want[i] {
			t.Fatalf("nearby[%d] = %q, want %q", i, got[i].Filename, want[i])
		}
	}
}

func TestResolveBlobFirstSubstringWins(t *testing.T) {
	keys := []string{"images/2020_paris.jpg", "images/paris.jpg"}

	got, ok := ResolveBlob(keys, "paris.jpg")
	if !ok || got != "images/2020_paris.jpg" {
		t.Fatalf("ResolveBlob = (%q, %v), want images/2020_paris.jpg", got, ok)
	}

	if _, ok := ResolveBlob(keys, "rome.jpg"); ok {
		t.Fatal("expected no match for rome.jpg")
	}
}

func TestLocatorNearbyResolvesAndSkips(t *testing.T) {
	objects := &fakeObjects{keys: []string{
		"images/",
		"images/eiffel.jpg",
		"images/louvre.png",
	}}
	table := &models.PhotoTable{Records: []models.PhotoRecord{
		rec("eiffel.jpg", 48.8584, 2.2945, 1),
		rec("missing.jpg", 48.855, 2.295, 2),
		rec("louvre.png", 48.861, 2.289, 3),
	}}

	loc := NewLocator(objects, "images/", testLogger(t))
	got, err := loc.Nearby(context.Background(), table, models.ClickEvent{Lat: 48.855, Lon: 2.29})
	if err != nil {
		t.Fatalf("nearby: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("nearby = %d photos, want 2", len(got))
	}
	if got[0].BlobKey != "images/eiffel.jpg" || got[1].BlobKey != "images/louvre.png" {
		t.Fatalf("keys = %q, %q", got[0].BlobKey, got[1].BlobKey)
	}
	if objects.listCalls != 1 {
		t.Fatalf("list calls = %d, want 1", objects.listCalls)
	}
	if objects.prefixes[0] != "images/" {
		t.Fatalf("listed prefix = %q, want images/", objects.prefixes[0])
	}
}

func TestLocatorNearbyEmptyDoesNotList(t *testing.T) {
	objects := &fakeObjects{keys: []string{"images/eiffel.jpg"}}
	table := &models.PhotoTable{Records: []models.PhotoRecord{rec("eiffel.jpg", 48.8584, 2.2945, 1)}}

	got, err := NewLocator(objects, "images/", testLogger(t)).
		Nearby(context.Background(), table, models.ClickEvent{Lat: -33.86, Lon: 151.2})
	if err != nil {
		t.Fatalf("nearby: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("nearby = %+v, want none", got)
	}
	if objects.listCalls != 0 {
		t.Fatalf("list calls = %d, want 0", objects.listCalls)
	}
}

func TestLocatorNearbyRelistsEveryClick(t *testing.T) {
	objects := &fakeObjects{keys: []string{"images/eiffel.jpg"}}
	table := &models.PhotoTable{Records: []models.PhotoRecord{rec("eiffel.jpg", 48.8584, 2.2945, 1)}}
	loc := NewLocator(objects, "images/", testLogger(t))
	click := models.ClickEvent{Lat: 48.8584, Lon: 2.2945}

	for i := 0; i < 3; i++ {
		if _, err := loc.Nearby(context.Background(), table, click); err != nil {
			t.Fatalf("nearby: %v", err)
		}
	}
	if objects.listCalls != 3 {
		t.Fatalf("list calls = %d, want 3", objects.listCalls)
	}
}

func TestLocatorNearbyListError(t *testing.T) {
	objects := &fakeObjects{listErr: errBoom}
	table := &models.PhotoTable{Records: []models.PhotoRecord{rec("eiffel.jpg", 48.8584, 2.2945, 1)}}

	_, err := NewLocator(objects, "images/", testLogger(t)).
		Nearby(context.Background(), table, models.ClickEvent{Lat: 48.8584, Lon: 2.2945})
	if !errors.Is(err, errBoom) {
		t.Fatalf("err = %v, want %v", err, errBoom)
	}
}

func TestLocatorNearbyNilTable(t *testing.T) {
	objects := &fakeObjects{}

	got, err := NewLocator(objects, "images/", testLogger(t)).
		Nearby(context.Background(), nil, models.ClickEvent{})
	if err != nil || len(got) != 0 {
		t.Fatalf("nearby = (%v, %v), want empty", got, err)
	}
}
