package pathclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vanshika/campusdraw/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, contract *Contract) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(Options{BaseURL: srv.URL, Contract: contract})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestClient_BuildingNamesKeepsServerOrder(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != BuildingNamesPath {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"MGH":"Mary Gates Hall","CSE":"Paul G. Allen Center","BAG":"Bagley Hall"}`))
	}, nil)

	got, err := client.BuildingNames(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := []domain.BuildingRef{
		{ShortName: "MGH", LongName: "Mary Gates Hall"},
		{ShortName: "CSE", LongName: "Paul G. Allen Center"},
		{ShortName: "BAG", LongName: "Bagley Hall"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("buildings mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_FindPathFlatRecords(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != FindPathPath {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("start") != "CSE" || r.URL.Query().Get("end") != "MGH & Co" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"path":[{"x1":0,"y1":0,"x2":1,"y2":1}]}`))
	}, nil)

	got, err := client.FindPath(context.Background(), "CSE", "MGH & Co")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := []domain.Segment{{X1: 0, Y1: 0, X2: 1, Y2: 1, Key: 0}}
	if diff := cmp.Diff(want, got.Path); diff != "" {
		t.Fatalf("path mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_FindPathServerShape(t *testing.T) {
	contract, err := LoadContract(context.Background())
	if err != nil {
		t.Fatalf("load contract: %v", err)
	}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"start":{"x":1,"y":2},"cost":7.5,"path":[
			{"start":{"x":1,"y":2},"end":{"x":3,"y":4},"cost":2.5},
			{"start":{"x":3,"y":4},"end":{"x":5,"y":6},"cost":5}]}`))
	}, contract)

	got, err := client.FindPath(context.Background(), "A", "B")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := domain.PathResponse{
		Start: "A",
		End:   "B",
		Cost:  7.5,
		Path: []domain.Segment{
			{X1: 1, Y1: 2, X2: 3, Y2: 4, Key: 0},
			{X1: 3, Y1: 4, X2: 5, Y2: 6, Key: 1},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("path mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_NonOKStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "must have start and end", http.StatusBadRequest)
	}, nil)

	_, err := client.FindPath(context.Background(), "A", "B")
	var statusErr *HTTPStatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected HTTPStatusError, got %v", err)
	}
	if statusErr.Actual != http.StatusBadRequest || statusErr.Expected != http.StatusOK {
		t.Fatalf("unexpected status error %+v", statusErr)
	}
	if statusErr.Error() != "The status is wrong! Expected: 200, Was: 400" {
		t.Fatalf("unexpected message %q", statusErr.Error())
	}
}

func TestClient_MalformedBodies(t *testing.T) {
	contract, err := LoadContract(context.Background())
	if err != nil {
		t.Fatalf("load contract: %v", err)
	}

	tests := []struct {
		name     string
		body     string
		contract *Contract
	}{
		{name: "not json", body: `<html>`},
		{name: "missing path", body: `{"cost":1}`},
		{name: "record without coordinates", body: `{"path":[{"x1":1}]}`},
		{name: "contract violation", body: `{"path":[{"x1":"a","y1":0,"x2":0,"y2":0}]}`, contract: contract},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}, tt.contract)

			_, err := client.FindPath(context.Background(), "A", "B")
			var transportErr *TransportError
			if !errors.As(err, &transportErr) {
				t.Fatalf("expected TransportError, got %v", err)
			}
		})
	}
}

func TestClient_ContractRejectsNonStringNames(t *testing.T) {
	contract, err := LoadContract(context.Background())
	if err != nil {
		t.Fatalf("load contract: %v", err)
	}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"CSE":42}`))
	}, contract)

	_, err = client.BuildingNames(context.Background())
	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected TransportError, got %v", err)
	}
}

func TestClient_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client, err := New(Options{BaseURL: url})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	_, err = client.BuildingNames(context.Background())
	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected TransportError, got %v", err)
	}
}

func TestClient_FindPathRequiresBothNames(t *testing.T) {
	client, err := New(Options{})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.FindPath(context.Background(), "", "B"); !errors.Is(err, ErrMissingEndpoints) {
		t.Fatalf("expected ErrMissingEndpoints, got %v", err)
	}
}

func TestNewRejectsBadBaseURL(t *testing.T) {
	if _, err := New(Options{BaseURL: "ftp://example.com"}); err == nil {
		t.Fatalf("expected error for non-http scheme")
	}
}
