package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	sdkerrors "github.com/nutritrack/nutritrack-client/client/internal/errors"
	"github.com/nutritrack/nutritrack-client/client/internal/types"
)

func mealReq() types.CreateMealRequest {
	return types.CreateMealRequest{
		Title:       "Café da manhã",
		Date:        "2025-03-10",
		Time:        "08:00",
		Ingredients: []types.IngredientInput{{FoodName: "Pão francês", WeightGrams: 50}},
	}
}

func TestCreateMeal_Success(t *testing.T) {
	t.Parallel()
	var got types.CreateMealRequest
	var ct, auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/meals/" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		ct = r.Header.Get("Content-Type")
		auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(types.Meal{ID: 7, Title: got.Title, TotalCalories: 150})
	}))
	defer srv.Close()

	meal, err := CreateMeal(context.Background(), srv.Client(), srv.URL, mealReq(), "tok")
	if err != nil {
		t.Fatalf("CreateMeal error: %v", err)
	}
	if meal.ID != 7 || meal.TotalCalories != 150 {
		t.Fatalf("unexpected meal %+v", meal)
	}
	if ct != "application/json" || auth != "Bearer tok" {
		t.Fatalf("headers: Content-Type=%q Authorization=%q", ct, auth)
	}
	if got.Title != "Café da manhã" || len(got.Ingredients) != 1 || got.Ingredients[0].WeightGrams != 50 {
		t.Fatalf("payload = %+v", got)
	}
}

func TestCreateMeal_OnlyCreatedIsSuccess(t *testing.T) {
	t.Parallel()
	for _, code := range []int{http.StatusOK, http.StatusAccepted, http.StatusNoContent, http.StatusBadRequest} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
		}))
		_, err := CreateMeal(context.Background(), srv.Client(), srv.URL, mealReq(), "tok")
		srv.Close()
		var he *sdkerrors.HTTPError
		if !errors.As(err, &he) || he.StatusCode != code {
			t.Fatalf("status %d: expected HTTPError, got %v", code, err)
		}
	}
}

func TestCreateMeal_ValidationBeforeIO(t *testing.T) {
	t.Parallel()
	rt := &countingRT{}
	hc := &http.Client{Transport: rt}
	bad := mealReq()
	bad.Ingredients = nil
	if _, err := CreateMeal(context.Background(), hc, "http://example.com", bad, "tok"); !errors.Is(err, sdkerrors.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
	if _, err := CreateMeal(context.Background(), hc, "http://example.com", mealReq(), ""); !errors.Is(err, sdkerrors.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for missing token, got %v", err)
	}
	if rt.n != 0 {
		t.Fatalf("expected no requests, got %d", rt.n)
	}
}

func TestCreateMealRaw_PassesPayloadThrough(t *testing.T) {
	t.Parallel()
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":3}`))
	}))
	defer srv.Close()
	var out map[string]any
	payload := map[string]any{"title": "x", "extra": 1}
	if err := CreateMealRaw(context.Background(), srv.Client(), srv.URL, payload, "tok", &out); err != nil {
		t.Fatalf("CreateMealRaw error: %v", err)
	}
	if got["extra"] != float64(1) || out["id"] != float64(3) {
		t.Fatalf("payload=%v out=%v", got, out)
	}
}

func TestListMeals_DateFilter(t *testing.T) {
	t.Parallel()
	var queries []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.RawQuery)
		_ = json.NewEncoder(w).Encode([]types.Meal{{ID: 1}, {ID: 2}})
	}))
	defer srv.Close()

	got, err := ListMeals(context.Background(), srv.Client(), srv.URL, "", "tok")
	if err != nil || len(got) != 2 {
		t.Fatalf("ListMeals unexpected: got=%+v err=%v", got, err)
	}
	if _, err := ListMeals(context.Background(), srv.Client(), srv.URL, "2025-03-10", "tok"); err != nil {
		t.Fatalf("ListMeals with date: %v", err)
	}
	if len(queries) != 2 || queries[0] != "" || queries[1] != "date=2025-03-10" {
		t.Fatalf("queries = %q", queries)
	}
	if _, err := ListMeals(context.Background(), srv.Client(), srv.URL, "10-03-2025", "tok"); !errors.Is(err, sdkerrors.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for bad date, got %v", err)
	}
}

func TestListMeals_PaginatedBody(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"count":1,"next":null,"previous":null,"results":[{"id":7,"title":"Almoço"}]}`))
	}))
	defer srv.Close()

	got, err := ListMeals(context.Background(), srv.Client(), srv.URL, "", "tok")
	if err != nil {
		t.Fatalf("ListMeals error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 7 || got[0].Title != "Almoço" {
		t.Fatalf("meals = %+v", got)
	}
}

func TestListMeals_EmptyPage(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"count":0,"next":null,"previous":null,"results":[]}`))
	}))
	defer srv.Close()

	got, err := ListMeals(context.Background(), srv.Client(), srv.URL, "", "tok")
	if err != nil || len(got) != 0 {
		t.Fatalf("ListMeals unexpected: got=%+v err=%v", got, err)
	}
}

func TestGetMeal_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/meals/42/" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(types.Meal{ID: 42, Title: "Jantar"})
	}))
	defer srv.Close()
	got, err := GetMeal(context.Background(), srv.Client(), srv.URL, 42, "tok")
	if err != nil || got.ID != 42 || got.Title != "Jantar" {
		t.Fatalf("GetMeal unexpected: got=%+v err=%v", got, err)
	}
}

func TestDeleteMeal(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s", r.Method)
		}
		if r.URL.Path == "/meals/1/" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()
	if err := DeleteMeal(context.Background(), srv.Client(), srv.URL, 1, "tok"); err != nil {
		t.Fatalf("DeleteMeal error: %v", err)
	}
	if err := DeleteMeal(context.Background(), srv.Client(), srv.URL, 2, "tok"); err == nil {
		t.Fatal("expected error for DeleteMeal non-204")
	}
}

func TestWeeklySummary_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/meals/weekly-summary/" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"days":{"2025-03-10":{"calories":500,"protein":20,"carbs":60,"fat":10}},"week_totals":{"calories":500,"protein":20,"carbs":60,"fat":10}}`))
	}))
	defer srv.Close()
	got, err := WeeklySummary(context.Background(), srv.Client(), srv.URL, "tok")
	if err != nil {
		t.Fatalf("WeeklySummary error: %v", err)
	}
	if got.WeekTotals.Calories != 500 || got.Days["2025-03-10"].Carbs != 60 {
		t.Fatalf("unexpected summary %+v", got)
	}
}

func TestMeals_DecodeErrors(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusCreated)
		}
		_, _ = w.Write([]byte("{bad json"))
	}))
	defer srv.Close()
	if _, err := CreateMeal(context.Background(), srv.Client(), srv.URL, mealReq(), "tok"); err == nil {
		t.Fatal("expected decode error for CreateMeal")
	}
	if _, err := ListMeals(context.Background(), srv.Client(), srv.URL, "", "tok"); err == nil {
		t.Fatal("expected decode error for ListMeals")
	}
	if _, err := GetMeal(context.Background(), srv.Client(), srv.URL, 1, "tok"); err == nil {
		t.Fatal("expected decode error for GetMeal")
	}
	if _, err := WeeklySummary(context.Background(), srv.Client(), srv.URL, "tok"); err == nil {
		t.Fatal("expected decode error for WeeklySummary")
	}
}

func TestMeals_HTTPDoError(t *testing.T) {
	t.Parallel()
	hc := &http.Client{Transport: &errRT{}}
	if _, err := ListMeals(context.Background(), hc, "http://example.com", "", "tok"); err == nil {
		t.Fatal("expected Do error for ListMeals")
	}
	if _, err := GetMeal(context.Background(), hc, "http://example.com", 1, "tok"); err == nil {
		t.Fatal("expected Do error for GetMeal")
	}
	if err := DeleteMeal(context.Background(), hc, "http://example.com", 1, "tok"); err == nil {
		t.Fatal("expected Do error for DeleteMeal")
	}
	if _, err := WeeklySummary(context.Background(), hc, "http://example.com", "tok"); err == nil {
		t.Fatal("expected Do error for WeeklySummary")
	}
}
