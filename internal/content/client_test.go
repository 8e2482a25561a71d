package content

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jivana-app/jivana/internal/errors"
)

// chatServer returns an httptest server that answers every chat completion
// with the given content string.
func chatServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q, want bearer test-key", got)
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if req.ResponseFormat.Type != "json_object" {
			t.Errorf("response_format = %q, want json_object", req.ResponseFormat.Type)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": content}},
			},
		})
	}))
}

func TestRefreshWord(t *testing.T) {
	srv := chatServer(t, `{"word":"sonder","phonetic":"/ˈsɒndər/","meaning":"the realization that each passerby has a life as vivid as your own","example":"A wave of sonder hit me on the train."}`)
	defer srv.Close()

	c := NewClient(srv.URL, "test-model", "test-key")
	w, err := c.RefreshWord(context.Background())
	if err != nil {
		t.Fatalf("RefreshWord() error = %v", err)
	}
	if w.Word != "sonder" || w.Meaning == "" {
		t.Errorf("RefreshWord() = %+v", w)
	}
}

func TestRefreshDietDiscardsIncompleteEntries(t *testing.T) {
	srv := chatServer(t, `{
		"breakfast": [{"dish":"Oats with berries","nutrition":"320 kcal, 12g protein"},{"dish":"","nutrition":"missing dish"}],
		"lunch": [{"dish":"Dal with rice","nutrition":"450 kcal"}],
		"snacks": [{"dish":"Roasted chickpeas"}],
		"dinner": []
	}`)
	defer srv.Close()

	c := NewClient(srv.URL, "test-model", "test-key")
	lists, err := c.RefreshDiet(context.Background())
	if err != nil {
		t.Fatalf("RefreshDiet() error = %v", err)
	}
	if len(lists["breakfast"]) != 1 {
		t.Errorf("breakfast = %v, want incomplete entry discarded", lists["breakfast"])
	}
	if len(lists["snacks"]) != 0 {
		t.Errorf("snacks = %v, want entry without nutrition discarded", lists["snacks"])
	}
}

func TestMissingAPIKey(t *testing.T) {
	c := NewClient("http://unused", "test-model", "")
	_, err := c.RefreshWisdom(context.Background())
	if err == nil {
		t.Fatal("RefreshWisdom() expected error")
	}
	if !errors.IsContent(err) {
		t.Errorf("RefreshWisdom() error = %v, want ContentError", err)
	}
}

func TestNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-model", "test-key")
	_, err := c.RefreshLifestyle(context.Background())
	if !errors.IsContent(err) {
		t.Errorf("RefreshLifestyle() error = %v, want ContentError", err)
	}
}

func TestUnparsableContent(t *testing.T) {
	srv := chatServer(t, `sure! here are some tips:`)
	defer srv.Close()

	c := NewClient(srv.URL, "test-model", "test-key")
	_, err := c.RefreshLifestyle(context.Background())
	if !errors.IsContent(err) {
		t.Errorf("RefreshLifestyle() error = %v, want ContentError", err)
	}
}

func TestRecipe(t *testing.T) {
	srv := chatServer(t, `{"dish":"Dal with rice","serves":2,"prepTime":"10 min","cookTime":"25 min","ingredients":["lentils","rice"],"steps":["Rinse lentils","Simmer until soft"]}`)
	defer srv.Close()

	c := NewClient(srv.URL, "test-model", "test-key")
	r, err := c.Recipe(context.Background(), "Dal with rice")
	if err != nil {
		t.Fatalf("Recipe() error = %v", err)
	}
	if r.Serves != 2 || len(r.Steps) != 2 {
		t.Errorf("Recipe() = %+v", r)
	}
}
