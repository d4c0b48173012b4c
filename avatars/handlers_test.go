package avatars

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Weslleykacau1/AvatarForge/gallery"
	"github.com/Weslleykacau1/AvatarForge/models"
)

func newTestRouter() (*gin.Engine, gallery.Repository[models.Avatar]) {
	gin.SetMode(gin.TestMode)
	repo := gallery.NewMemoryRepository(
		func(a models.Avatar) uint { return a.ID },
		func(a models.Avatar, id uint) models.Avatar { a.ID = id; return a },
	)
	h := NewHandler(repo)

	router := gin.New()
	router.GET("/avatars", h.ListAvatars)
	router.GET("/avatars/:id", h.GetAvatar)
	router.POST("/avatars", h.UpsertAvatar)
	router.DELETE("/avatars/:id", h.DeleteAvatar)
	return router, repo
}

func TestUpsertAvatar(t *testing.T) {
	router, _ := newTestRouter()

	t.Run("creates and assigns an id", func(t *testing.T) {
		body, _ := json.Marshal(models.Avatar{Name: "Luna", Niche: "Tech"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/avatars", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		var saved models.Avatar
		if err := json.Unmarshal(w.Body.Bytes(), &saved); err != nil {
			t.Fatalf("response is not an avatar: %v", err)
		}
		if saved.ID == 0 {
			t.Error("saved avatar has no ID")
		}
	})

	t.Run("rejects a nameless avatar", func(t *testing.T) {
		body, _ := json.Marshal(models.Avatar{Niche: "Tech"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/avatars", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestGetAvatar(t *testing.T) {
	router, repo := newTestRouter()

	avatar := models.Avatar{Name: "Dr. Roberto", Niche: "Saúde"}
	if err := repo.Upsert(context.Background(), &avatar); err != nil {
		t.Fatalf("seed: %v", err)
	}

	t.Run("found", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/avatars/1", nil)
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		var got models.Avatar
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("response is not an avatar: %v", err)
		}
		if got.Name != "Dr. Roberto" {
			t.Errorf("Name = %q", got.Name)
		}
	})

	t.Run("missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/avatars/99", nil)
		router.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})

	t.Run("bad id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/avatars/abc", nil)
		router.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestDeleteAvatar(t *testing.T) {
	router, repo := newTestRouter()

	avatar := models.Avatar{Name: "Luna"}
	if err := repo.Upsert(context.Background(), &avatar); err != nil {
		t.Fatalf("seed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/avatars/1", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/avatars/1", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", w.Code)
	}
}

func TestListAvatars(t *testing.T) {
	router, repo := newTestRouter()
	for _, name := range []string{"Luna", "Dr. Roberto"} {
		a := models.Avatar{Name: name}
		if err := repo.Upsert(context.Background(), &a); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/avatars", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var got []models.Avatar
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("response is not a list: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("listed %d avatars, want 2", len(got))
	}
}
