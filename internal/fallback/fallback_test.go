package fallback

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-football-fixtures/internal/fetch"
	"go-football-fixtures/internal/window"
)

const scheduledSample = `{"events":[
 {"id":1,"startTimestamp":1750024800,"tournament":{"name":"Brasileirão","uniqueTournament":{"id":325}},
  "homeTeam":{"name":"Fortaleza"},"awayTeam":{"name":"Cruzeiro"}},
 {"id":2,"startTimestamp":1750010400,"tournament":{"uniqueTournament":{"id":17}},
  "homeTeam":{"name":"Arsenal"},"awayTeam":{"name":"Chelsea"}},
 {"id":3,"startTimestamp":1750017600,"tournament":{"uniqueTournament":{"id":325}},
  "homeTeam":{"name":"Botafogo"},"awayTeam":{"name":"Internacional"}},
 {"id":4,"startTimestamp":1750017600,"tournament":{"uniqueTournament":{"id":325}},
  "homeTeam":{"name":"Santos"},"awayTeam":{"name":""}}
]}`

func TestToday_FiltersTournamentAndSorts(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(scheduledSample))
	}))
	defer srv.Close()

	cl, _ := fetch.New(fetch.Options{Timeout: 2 * time.Second})
	p := New(cl, srv.URL+"/", 325, "Brasileirão Série A")
	w := window.New(time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC), time.UTC, 7)

	list, o := p.Today(context.Background(), w)
	if !o.OK {
		t.Fatalf("outcome: %v", o)
	}
	if gotPath != "/api/v1/sport/football/scheduled-events/2025-06-15" {
		t.Fatalf("path = %s", gotPath)
	}
	if len(list) != 2 {
		t.Fatalf("len=%d want=2: %+v", len(list), list)
	}
	if list[0].HomeTeam.Name != "Botafogo" || list[1].HomeTeam.Name != "Fortaleza" {
		t.Fatalf("order: %+v", list)
	}
	for _, f := range list {
		if f.Competition != "Brasileirão Série A" || f.Broadcast != "" || f.HomeTeam.Logo != "" || f.AwayTeam.Logo != "" {
			t.Fatalf("fallback fields: %+v", f)
		}
	}
}

func TestToday_Absent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	cl, _ := fetch.New(fetch.Options{})
	p := New(cl, srv.URL, 325, "x")
	list, o := p.Today(context.Background(), window.New(time.Now(), time.UTC, 7))
	if o.OK || list != nil {
		t.Fatalf("expect absent, got %v %+v", o, list)
	}
}
