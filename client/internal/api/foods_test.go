package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sdkerrors "github.com/nutritrack/nutritrack-client/client/internal/errors"
	"github.com/nutritrack/nutritrack-client/client/internal/types"
)

func TestSearchFoodsURL_EncodesQuery(t *testing.T) {
	t.Parallel()
	u := SearchFoodsURL("http://localhost:8000", types.SearchFoodsRequest{Query: "a b&c"})
	want := "http://localhost:8000/meals/search-food/?q=a%20b%26c&country=BR&lang=pt"
	if u != want {
		t.Fatalf("url = %q, want %q", u, want)
	}
}

func TestSearchFoodsURL_CustomFilters(t *testing.T) {
	t.Parallel()
	u := SearchFoodsURL("http://h", types.SearchFoodsRequest{Query: "açúcar", Country: "Brasil", Lang: "pt_BR"})
	if !strings.Contains(u, "q=a%C3%A7%C3%BAcar&country=Brasil&lang=pt_BR") {
		t.Fatalf("unexpected url %q", u)
	}
}

func TestSearchFoods_Success(t *testing.T) {
	t.Parallel()
	want := []types.Food{{ID: "12", Name: "Banana, prata, crua", WeightGrams: 100, Nutrients: types.Nutrients{Calories: 98}}}
	var rawQuery, ct, auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/meals/search-food/" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		rawQuery = r.URL.RawQuery
		ct = r.Header.Get("Content-Type")
		auth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	got, err := SearchFoods(context.Background(), srv.Client(), srv.URL, types.SearchFoodsRequest{Query: "a b&c"}, "tok")
	if err != nil {
		t.Fatalf("SearchFoods error: %v", err)
	}
	if len(got) != 1 || got[0].Name != want[0].Name || got[0].Nutrients.Calories != 98 {
		t.Fatalf("unexpected result %+v", got)
	}
	if rawQuery != "q=a%20b%26c&country=BR&lang=pt" {
		t.Fatalf("raw query = %q", rawQuery)
	}
	if ct != "" {
		t.Fatalf("search must not send Content-Type, got %q", ct)
	}
	if auth != "Bearer tok" {
		t.Fatalf("Authorization = %q", auth)
	}
}

func TestSearchFoods_NoToken(t *testing.T) {
	t.Parallel()
	var hasAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()
	got, err := SearchFoods(context.Background(), srv.Client(), srv.URL, types.SearchFoodsRequest{Query: "arroz"}, "")
	if err != nil {
		t.Fatalf("SearchFoods error: %v", err)
	}
	if hasAuth {
		t.Fatal("Authorization header must be absent without a token")
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestSearchFoods_NonOK(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Authentication credentials were not provided."}`))
	}))
	defer srv.Close()
	_, err := SearchFoods(context.Background(), srv.Client(), srv.URL, types.SearchFoodsRequest{Query: "x"}, "")
	var he *sdkerrors.HTTPError
	if !errors.As(err, &he) || he.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
	if he.Category != sdkerrors.Irrecoverable {
		t.Fatalf("401 should be irrecoverable")
	}
}

func TestSearchFoods_HTTPDoError(t *testing.T) {
	t.Parallel()
	hc := &http.Client{Transport: &errRT{}}
	if _, err := SearchFoods(context.Background(), hc, "http://example.com", types.SearchFoodsRequest{Query: "x"}, ""); err == nil {
		t.Fatal("expected Do error for SearchFoods")
	}
}
