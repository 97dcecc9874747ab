package httpserver_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	httpserver "hotel_dashboard/internal/adapters/http_server"
	"hotel_dashboard/internal/app"
	"hotel_dashboard/internal/dashboard"
	"hotel_dashboard/internal/domain"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	s, err := dashboard.NewStore([]domain.Hotel{
		{ID: 10, Name: "Hotel K1", City: "Cork", Score: 8.8, ReviewRate: "Excellent", Reviews: 400, RoomType: "King Room", Price: 150, RoomsLeft: 3, FreeCancellation: true, Lat: 51.9, Lng: -8.5},
		{ID: 11, Name: "Hotel L1", City: "Dublin", Score: 7.2, ReviewRate: "Good", Reviews: 90, RoomType: "Twin Room", Price: 260, RoomsLeft: 1, Lat: 53.3, Lng: -6.2},
		{ID: 12, Name: "Hotel M1", City: "Cork", Score: 9.4, ReviewRate: "Exceptional", Reviews: 1600, RoomType: "Deluxe Room", Price: 390, RoomsLeft: 6, BreakfastIncluded: true, Lat: 51.8, Lng: -8.4},
	})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	srv := httpserver.New(zerolog.Nop(), time.Second)
	srv.MountHandlers(&httpserver.Handlers{Q: app.NewQueryService(s, nil, 0, 50)})
	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string, hdr map[string]string) *http.Response {
	t.Helper()
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	t.Cleanup(func() { _ = res.Body.Close() })
	return res
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	if res := get(t, ts.URL+"/healthz", nil); res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
}

func TestDashboard_FiltersAndDerives(t *testing.T) {
	ts := newTestServer(t)
	res := get(t, ts.URL+"/v1/dashboard?city=Cork&bin_width=100", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	if res.Header.Get("ETag") == "" {
		t.Fatalf("missing ETag")
	}

	var snap domain.Snapshot
	if err := json.NewDecoder(res.Body).Decode(&snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.Metrics.Count != 2 || snap.Metrics.AvgPrice != 270 || snap.Metrics.TotalRoomsLeft != 9 {
		t.Fatalf("unexpected metrics %+v", snap.Metrics)
	}
	if snap.Histogram.BinWidth != 100 || len(snap.Scatter) != 2 || len(snap.Markers) != 2 {
		t.Fatalf("unexpected views %+v", snap)
	}
}

func TestDashboard_NotModified(t *testing.T) {
	ts := newTestServer(t)
	first := get(t, ts.URL+"/v1/dashboard", nil)
	etag := first.Header.Get("ETag")

	second := get(t, ts.URL+"/v1/dashboard", map[string]string{"If-None-Match": etag})
	if second.StatusCode != http.StatusNotModified {
		t.Fatalf("want 304, got %d", second.StatusCode)
	}
}

func TestHotels_ListAndGet(t *testing.T) {
	ts := newTestServer(t)

	res := get(t, ts.URL+"/v1/hotels?score=9", nil)
	var list struct {
		Count  int            `json:"count"`
		Hotels []domain.Hotel `json:"hotels"`
	}
	if err := json.NewDecoder(res.Body).Decode(&list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if list.Count != 1 || list.Hotels[0].ID != 12 {
		t.Fatalf("unexpected list %+v", list)
	}

	if res := get(t, ts.URL+"/v1/hotels/11", nil); res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	if res := get(t, ts.URL+"/v1/hotels/999", nil); res.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404, got %d", res.StatusCode)
	}
	if res := get(t, ts.URL+"/v1/hotels/abc", nil); res.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", res.StatusCode)
	}
}

func TestFilters(t *testing.T) {
	ts := newTestServer(t)
	var opts domain.FilterOptions
	if err := json.NewDecoder(get(t, ts.URL+"/v1/filters", nil).Body).Decode(&opts); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if strings.Join(opts.Cities, ",") != "Cork,Dublin" || len(opts.ScoreThresholds) != 3 {
		t.Fatalf("unexpected options %+v", opts)
	}
}

func TestCompare(t *testing.T) {
	ts := newTestServer(t)

	res := get(t, ts.URL+"/v1/compare?ids=12,10", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	var table domain.ComparisonTable
	if err := json.NewDecoder(res.Body).Decode(&table); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(table.Headers) != 3 || table.Headers[0] != "Hotel M1" || table.Headers[2] != "-" {
		t.Fatalf("unexpected headers %v", table.Headers)
	}

	for _, q := range []string{"ids=10", "ids=10,999", "ids=10,11,12,10"} {
		res := get(t, ts.URL+"/v1/compare?"+q, nil)
		if res.StatusCode != http.StatusUnprocessableEntity {
			t.Fatalf("%s: want 422, got %d", q, res.StatusCode)
		}
		if ct := res.Header.Get("Content-Type"); ct != "application/problem+json" {
			t.Fatalf("%s: content type %q", q, ct)
		}
	}
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t)
	if res := get(t, ts.URL+"/v2/nothing", nil); res.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404, got %d", res.StatusCode)
	}
}
