package api

import (
	"context"
	"net/http"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/forkline/restaurants-core/internal/restaurant"
)

// validBody returns a create/update body with all five business fields.
func validBody() map[string]any {
	return map[string]any{
		"name":         "The Copper Pot",
		"address":      "123 Main",
		"phoneNumber":  "555-0100",
		"emailAddress": "hello@copperpot.test",
		"rating":       4,
	}
}

// seed inserts a record directly into the repository and returns its hex id.
func seed(t *testing.T, repo *memRepo, name, address string, rating float64) string {
	t.Helper()
	r := restaurant.Restaurant{
		Name:         name,
		Address:      address,
		PhoneNumber:  "555-0100",
		EmailAddress: name + "@example.test",
		Rating:       rating,
	}
	if err := repo.Insert(context.Background(), &r); err != nil {
		t.Fatalf("seeding repository: %v", err)
	}
	return r.ID.Hex()
}

func TestCreate_ValidationShortCircuits(t *testing.T) {
	tests := []struct {
		name        string
		remove      string
		wantMessage string
	}{
		{"missing name", "name", "Name is a required field."},
		{"missing address", "address", "Address is a required field."},
		{"missing phone number", "phoneNumber", "Phone number is a required field."},
		{"missing email address", "emailAddress", "Email address is a required field."},
		{"missing rating", "rating", "Rating is a required field."},
	}

	for _, method := range []string{http.MethodPost, http.MethodPut} {
		for _, tt := range tests {
			t.Run(method+" "+tt.name, func(t *testing.T) {
				srv, repo := testServer(t)
				target := "/api/restaurants/"
				if method == http.MethodPut {
					target += primitive.NewObjectID().Hex()
				}

				body := validBody()
				delete(body, tt.remove)

				rec := doJSON(t, srv, method, target, body)
				if rec.Code != http.StatusBadRequest {
					t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
				}

				var resp map[string]string
				decodeBody(t, rec, &resp)
				if resp["validationError"] != tt.wantMessage {
					t.Errorf("validationError = %q, want %q", resp["validationError"], tt.wantMessage)
				}

				if repo.writes != 0 {
					t.Errorf("store writes = %d, want 0 (validation must precede the store)", repo.writes)
				}
			})
		}
	}
}

// TestCreate_ValidationOrder pins that only the first missing field in order
// is reported when several are absent.
func TestCreate_ValidationOrder(t *testing.T) {
	srv, _ := testServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/restaurants/", map[string]any{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var resp map[string]string
	decodeBody(t, rec, &resp)
	if resp["validationError"] != "Name is a required field." {
		t.Errorf("validationError = %q, want the name error first", resp["validationError"])
	}
}

// TestCreate_ZeroRatingRejected pins the truthiness quirk at the HTTP layer:
// an explicit rating of 0 is treated the same as an absent rating.
func TestCreate_ZeroRatingRejected(t *testing.T) {
	srv, _ := testServer(t)

	body := validBody()
	body["rating"] = 0

	rec := doJSON(t, srv, http.MethodPost, "/api/restaurants/", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var resp map[string]string
	decodeBody(t, rec, &resp)
	if resp["validationError"] != "Rating is a required field." {
		t.Errorf("validationError = %q, want rating error", resp["validationError"])
	}
}

func TestCreate_InvalidJSONBody(t *testing.T) {
	srv, _ := testServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/restaurants/", "not an object")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCreate_StoreFailure(t *testing.T) {
	srv, repo := testServer(t)
	repo.failAll = true

	rec := doJSON(t, srv, http.MethodPost, "/api/restaurants/", validBody())
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestCreate_ClientSentIDIgnored(t *testing.T) {
	srv, repo := testServer(t)

	forged := primitive.NewObjectID()
	body := validBody()
	body["id"] = forged.Hex()

	rec := doJSON(t, srv, http.MethodPost, "/api/restaurants/", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var created restaurant.Restaurant
	decodeBody(t, rec, &created)
	if created.ID == forged {
		t.Errorf("created id = %s, client-sent id must not be persisted", created.ID.Hex())
	}
	if created.ID.IsZero() {
		t.Error("created id is zero, want store-assigned id")
	}
	if _, ok := repo.records[forged]; ok {
		t.Error("record stored under client-sent id")
	}
}

func TestList_DefaultPageSortedByRatingDescending(t *testing.T) {
	srv, repo := testServer(t)
	for i := 0; i < 15; i++ {
		seed(t, repo, "r", "addr", float64(i+1))
	}

	rec := doJSON(t, srv, http.MethodGet, "/api/restaurants", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var page []restaurant.Restaurant
	decodeBody(t, rec, &page)
	if len(page) != restaurant.PageSize {
		t.Fatalf("len(page) = %d, want %d", len(page), restaurant.PageSize)
	}
	for i := 1; i < len(page); i++ {
		if page[i].Rating > page[i-1].Rating {
			t.Fatalf("page not sorted by rating descending at index %d", i)
		}
	}
	if page[0].Rating != 15 {
		t.Errorf("first rating = %v, want 15", page[0].Rating)
	}
}

func TestList_SecondPageSkipsFirstTen(t *testing.T) {
	srv, repo := testServer(t)
	for i := 0; i < 15; i++ {
		seed(t, repo, "r", "addr", float64(i+1))
	}

	rec := doJSON(t, srv, http.MethodGet, "/api/restaurants?page=2", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var page []restaurant.Restaurant
	decodeBody(t, rec, &page)
	if len(page) != 5 {
		t.Fatalf("len(page) = %d, want 5", len(page))
	}
	if page[0].Rating != 5 {
		t.Errorf("first rating on page 2 = %v, want 5", page[0].Rating)
	}
}

func TestList_ExactMatchFilters(t *testing.T) {
	srv, repo := testServer(t)
	seed(t, repo, "a", "123 Main", 3)
	seed(t, repo, "b", "124 Main", 4)

	rec := doJSON(t, srv, http.MethodGet, "/api/restaurants?address=123+Main", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var page []restaurant.Restaurant
	decodeBody(t, rec, &page)
	if len(page) != 1 {
		t.Fatalf("len(page) = %d, want 1 (exact match only)", len(page))
	}
	if page[0].Address != "123 Main" {
		t.Errorf("address = %q, want %q", page[0].Address, "123 Main")
	}
}

func TestList_RatingFilter(t *testing.T) {
	srv, repo := testServer(t)
	seed(t, repo, "a", "addr", 3)
	seed(t, repo, "b", "addr", 4)
	seed(t, repo, "c", "addr", 4)

	rec := doJSON(t, srv, http.MethodGet, "/api/restaurants?rating=4", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var page []restaurant.Restaurant
	decodeBody(t, rec, &page)
	if len(page) != 2 {
		t.Errorf("len(page) = %d, want 2", len(page))
	}
}

func TestList_EmptyResultIsEmptyArray(t *testing.T) {
	srv, _ := testServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/restaurants?address=nowhere", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (empty result is not an error)", rec.Code)
	}

	var page []restaurant.Restaurant
	decodeBody(t, rec, &page)
	if page == nil || len(page) != 0 {
		t.Errorf("page = %v, want empty array", page)
	}
}

// TestList_MalformedParams pins that uncastable query values surface as
// server errors, the way the store would reject them.
func TestList_MalformedParams(t *testing.T) {
	srv, _ := testServer(t)

	for _, target := range []string{
		"/api/restaurants?rating=high",
		"/api/restaurants?page=abc",
		"/api/restaurants?page=0", // negative skip
	} {
		rec := doJSON(t, srv, http.MethodGet, target, nil)
		if rec.Code != http.StatusInternalServerError {
			t.Errorf("GET %s status = %d, want 500", target, rec.Code)
		}
	}
}

func TestGet_NotFound(t *testing.T) {
	srv, _ := testServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/restaurants/"+primitive.NewObjectID().Hex(), nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	var resp map[string]string
	decodeBody(t, rec, &resp)
	if resp["message"] != "Restaurant not found" {
		t.Errorf("message = %q, want %q", resp["message"], "Restaurant not found")
	}
}

// TestGet_MalformedID pins the undifferentiated catch-all: a malformed
// identifier is a server error carrying the underlying message, not a 404.
func TestGet_MalformedID(t *testing.T) {
	srv, _ := testServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/restaurants/not-an-objectid", nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	var resp map[string]string
	decodeBody(t, rec, &resp)
	if resp["message"] == "" {
		t.Error("expected a message field carrying the underlying error")
	}
}

// TestUpdate_MissingIDReturnsNull pins the update asymmetry: replacing a
// nonexistent record reports success with a null body.
func TestUpdate_MissingIDReturnsNull(t *testing.T) {
	srv, _ := testServer(t)

	rec := doJSON(t, srv, http.MethodPut, "/api/restaurants/"+primitive.NewObjectID().Hex(), validBody())
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp *restaurant.Restaurant
	decodeBody(t, rec, &resp)
	if resp != nil {
		t.Errorf("body = %+v, want null", resp)
	}
}

func TestUpdate_ReplacesAllFields(t *testing.T) {
	srv, repo := testServer(t)
	id := seed(t, repo, "old", "old addr", 2)

	rec := doJSON(t, srv, http.MethodPut, "/api/restaurants/"+id, validBody())
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var updated restaurant.Restaurant
	decodeBody(t, rec, &updated)
	if updated.Name != "The Copper Pot" || updated.Address != "123 Main" || updated.Rating != 4 {
		t.Errorf("updated = %+v, want full replacement", updated)
	}
}

func TestDelete_NonexistentStillSucceeds(t *testing.T) {
	srv, _ := testServer(t)

	rec := doJSON(t, srv, http.MethodDelete, "/api/restaurants/"+primitive.NewObjectID().Hex(), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp map[string]string
	decodeBody(t, rec, &resp)
	if resp["success"] != "true" {
		t.Errorf(`body = %v, want {"success":"true"}`, resp)
	}
}

func TestDelete_MalformedID(t *testing.T) {
	srv, _ := testServer(t)

	rec := doJSON(t, srv, http.MethodDelete, "/api/restaurants/not-an-objectid", nil)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}
