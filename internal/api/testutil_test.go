package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mealsmith/recipe-service/internal/llm"
	"github.com/mealsmith/recipe-service/internal/models"
	"github.com/mealsmith/recipe-service/internal/service"
)

const testAdminSecret = "test-admin-secret"

func setupTestRouter(t *testing.T) (*gin.Engine, *llm.MockClient, *service.PreferenceService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := db.AutoMigrate(&models.IngredientPreference{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	mock := llm.NewMockClient(`{"recipes":[]}`)
	preferences := service.NewPreferenceService(db)
	recipes := service.NewRecipeService(db, mock)

	router := gin.New()
	NewPreferenceHandler(preferences).RegisterRoutes(router)
	NewRecipeHandler(recipes).RegisterRoutes(router)
	NewAdminHandler(preferences, testAdminSecret).RegisterRoutes(router)

	return router, mock, preferences
}

func doJSON(t *testing.T, router *gin.Engine, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

func createPreference(t *testing.T, router *gin.Engine, userID int, ingredient string, preference models.PreferenceType) map[string]any {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/ingredients/", map[string]any{
		"user_id":    userID,
		"ingredient": ingredient,
		"preference": preference,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to create preference %q: status %d body %s", ingredient, w.Code, w.Body.String())
	}

	var created map[string]any
	decodeBody(t, w, &created)
	return created
}
