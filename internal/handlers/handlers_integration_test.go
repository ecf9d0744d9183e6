package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"vybe/internal/database"
	"vybe/internal/handlers"
	"vybe/internal/models"
	"vybe/internal/repositories"
	"vybe/internal/services"
	"vybe/internal/stylist"
	"vybe/pkg/cache"
)

type testEnv struct {
	app      *fiber.App
	db       *gorm.DB
	products *services.ProductService
	now      time.Time
}

// setupApp wires every handler against a private in-memory SQLite database.
func setupApp(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.Open(database.Config{
		Driver: "sqlite",
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })

	env := &testEnv{db: db, now: time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)}

	productRepo := repositories.NewGORMProductRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)
	reviewRepo := repositories.NewGORMReviewRepository(db)
	savedRepo := repositories.NewGORMSavedItemRepository(db)
	outfitRepo := repositories.NewGORMOutfitRepository(db)

	authService := services.NewAuthService(userRepo, "test_jwt_secret", time.Hour)
	env.products = services.NewProductService(productRepo, reviewRepo, savedRepo, cache.NewMemoryCache(), time.Minute)
	accountService := services.NewAccountService(userRepo, savedRepo, productRepo, reviewRepo, outfitRepo, services.NoopPublisher{})
	outfitService := services.NewOutfitService(outfitRepo, productRepo, userRepo, stylist.NewTemplateStylist(), services.NoopPublisher{},
		services.OutfitServiceConfig{
			DailyLimit: 3,
			Location:   time.UTC,
			Now:        func() time.Time { return env.now },
		})

	app := fiber.New()
	apiV1 := app.Group("/api/v1")
	handlers.NewAuthHandler(authService).RegisterRoutes(apiV1)
	handlers.NewProductHandler(env.products, authService).RegisterRoutes(apiV1)
	handlers.NewOutfitHandler(outfitService, authService).RegisterRoutes(apiV1)
	handlers.NewUserHandler(accountService, authService).RegisterRoutes(apiV1)
	env.app = app

	return env
}

func (e *testEnv) seedProduct(t *testing.T, p models.Product) *models.Product {
	t.Helper()
	require.NoError(t, e.products.CreateProduct(context.Background(), &p))
	return &p
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), string(raw))
	}
	return resp.StatusCode, decoded
}

// register signs up a user and returns the token and user ID.
func (e *testEnv) register(t *testing.T, email string) (string, string) {
	t.Helper()
	status, body := e.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email":    email,
		"password": "password123",
		"name":     "Test User",
	})
	require.Equal(t, http.StatusCreated, status, body)
	user := body["user"].(map[string]interface{})
	return body["token"].(string), user["id"].(string)
}

func hoodie() models.Product {
	return models.Product{
		Name:     "Boxy Fit Graphic Hoodie",
		Brand:    "Essentials",
		Price:    89,
		Category: models.CategoryClothing,
		IsNew:    true,
	}
}

// TestMain runs setup and teardown for all tests
func TestMain(m *testing.M) {
	// Suppress logging during tests for cleaner output
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

func TestAuthRegisterAndLogin(t *testing.T) {
	env := setupApp(t)

	token, userID := env.register(t, "Test@Example.com")
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, userID)

	// Duplicate email, differing only in case.
	status, body := env.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email": "test@example.com", "password": "password123", "name": "Again",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Email already registered", body["error"])

	status, body = env.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "test@example.com", "password": "password123",
	})
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]interface{})
	assert.NotEmpty(t, user["lastLoginAt"])
	assert.NotContains(t, user, "password")

	status, _ = env.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "test@example.com", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestRegisterValidation(t *testing.T) {
	env := setupApp(t)

	status, body := env.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email": "not-an-email", "password": "123", "name": "A",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Validation failed", body["error"])
	fields := body["fields"].(map[string]interface{})
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "name")
}

func TestChangePassword(t *testing.T) {
	env := setupApp(t)
	token, _ := env.register(t, "pw@example.com")

	status, _ := env.do(t, http.MethodPut, "/api/v1/auth/password", token, map[string]string{
		"currentPassword": "wrong", "newPassword": "newpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = env.do(t, http.MethodPut, "/api/v1/auth/password", token, map[string]string{
		"currentPassword": "password123", "newPassword": "newpassword",
	})
	assert.Equal(t, http.StatusOK, status)

	status, _ = env.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "pw@example.com", "password": "newpassword",
	})
	assert.Equal(t, http.StatusOK, status)
}

func TestProductListingIsPublic(t *testing.T) {
	env := setupApp(t)
	env.seedProduct(t, hoodie())
	env.seedProduct(t, models.Product{Name: "Dunk Low", Brand: "Nike", Price: 110, Category: models.CategoryTrainers})

	status, body := env.do(t, http.MethodGet, "/api/v1/products?sortBy=price&sortOrder=ASC", "", nil)
	require.Equal(t, http.StatusOK, status)
	products := body["products"].([]interface{})
	require.Len(t, products, 2)
	assert.Equal(t, "Boxy Fit Graphic Hoodie", products[0].(map[string]interface{})["name"])
	pagination := body["pagination"].(map[string]interface{})
	assert.EqualValues(t, 2, pagination["total"])

	status, body = env.do(t, http.MethodGet, "/api/v1/products?category=trainers", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["products"].([]interface{}), 1)
}

func TestProductListingRejectsUnknownSort(t *testing.T) {
	env := setupApp(t)

	status, _ := env.do(t, http.MethodGet, "/api/v1/products?sortBy=password", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = env.do(t, http.MethodGet, "/api/v1/products?sortOrder=sideways", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = env.do(t, http.MethodGet, "/api/v1/products?category=hats", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestProductRatingFromReviews(t *testing.T) {
	env := setupApp(t)
	product := env.seedProduct(t, hoodie())
	tokenA, _ := env.register(t, "a@example.com")
	tokenB, _ := env.register(t, "b@example.com")

	status, _ := env.do(t, http.MethodPost, "/api/v1/products/"+product.ID+"/reviews", tokenA, map[string]interface{}{"rating": 5})
	require.Equal(t, http.StatusCreated, status)
	status, _ = env.do(t, http.MethodPost, "/api/v1/products/"+product.ID+"/reviews", tokenB, map[string]interface{}{"rating": 4, "comment": "nice"})
	require.Equal(t, http.StatusCreated, status)

	status, _ = env.do(t, http.MethodPost, "/api/v1/products/"+product.ID+"/reviews", tokenA, map[string]interface{}{"rating": 1})
	assert.Equal(t, http.StatusConflict, status)

	status, _ = env.do(t, http.MethodPost, "/api/v1/products/"+product.ID+"/reviews", tokenA, map[string]interface{}{"rating": 6})
	assert.Equal(t, http.StatusBadRequest, status)

	status, body := env.do(t, http.MethodGet, "/api/v1/products/"+product.ID, "", nil)
	require.Equal(t, http.StatusOK, status)
	got := body["product"].(map[string]interface{})
	assert.EqualValues(t, 4.5, got["rating"])
	assert.EqualValues(t, 2, got["reviewCount"])
}

func TestProductNotFound(t *testing.T) {
	env := setupApp(t)

	status, body := env.do(t, http.MethodGet, "/api/v1/products/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Product not found", body["error"])

	status, _ = env.do(t, http.MethodGet, "/api/v1/products/missing/affiliate-links", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestSavedItemsFlow(t *testing.T) {
	env := setupApp(t)
	product := env.seedProduct(t, hoodie())
	token, _ := env.register(t, "saver@example.com")

	status, _ := env.do(t, http.MethodGet, "/api/v1/users/saved-items", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body := env.do(t, http.MethodPost, "/api/v1/users/saved-items", token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Product ID is required", body["error"])

	status, _ = env.do(t, http.MethodPost, "/api/v1/users/saved-items", token, map[string]string{"productId": "missing"})
	assert.Equal(t, http.StatusNotFound, status)

	status, body = env.do(t, http.MethodPost, "/api/v1/users/saved-items", token, map[string]string{
		"productId": product.ID, "folder": "winter",
	})
	require.Equal(t, http.StatusCreated, status)
	saved := body["savedItem"].(map[string]interface{})
	savedID := saved["id"].(string)

	status, body = env.do(t, http.MethodPost, "/api/v1/users/saved-items", token, map[string]string{"productId": product.ID})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Product already saved", body["error"])

	status, body = env.do(t, http.MethodGet, "/api/v1/products/"+product.ID, token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["product"].(map[string]interface{})["isSaved"])

	status, body = env.do(t, http.MethodGet, "/api/v1/users/saved-items/folders", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []interface{}{"winter"}, body["folders"])
	assert.EqualValues(t, 1, body["counts"].(map[string]interface{})["winter"])

	status, body = env.do(t, http.MethodGet, "/api/v1/users/stats", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, body["savedItems"])

	// Another user cannot remove it.
	otherToken, _ := env.register(t, "other@example.com")
	status, _ = env.do(t, http.MethodDelete, "/api/v1/users/saved-items/"+savedID, otherToken, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = env.do(t, http.MethodDelete, "/api/v1/users/saved-items/"+savedID, token, nil)
	assert.Equal(t, http.StatusOK, status)

	status, body = env.do(t, http.MethodGet, "/api/v1/users/saved-items", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["savedItems"])
}

func TestGenerateOutfitQuota(t *testing.T) {
	env := setupApp(t)
	product := env.seedProduct(t, hoodie())
	token, _ := env.register(t, "stylist@example.com")

	status, body := env.do(t, http.MethodPost, "/api/v1/outfits/generate", token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Product ID is required", body["error"])

	status, _ = env.do(t, http.MethodPost, "/api/v1/outfits/generate", token, map[string]string{"productId": "missing"})
	assert.Equal(t, http.StatusNotFound, status)

	for i := 0; i < 3; i++ {
		status, body = env.do(t, http.MethodPost, "/api/v1/outfits/generate", token, map[string]string{
			"productId": product.ID, "style": "minimal",
		})
		require.Equal(t, http.StatusCreated, status, body)
	}
	outfit := body["outfit"].(map[string]interface{})
	assert.Equal(t, "minimal", outfit["style"])
	assert.Equal(t, false, outfit["isPublic"])
	items := outfit["items"].([]interface{})
	assert.LessOrEqual(t, len(items), stylist.MaxItems)
	assert.Equal(t, product.Name, items[0].(map[string]interface{})["name"])

	status, body = env.do(t, http.MethodPost, "/api/v1/outfits/generate", token, map[string]string{"productId": product.ID})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Contains(t, body["error"], "Daily outfit generation limit reached")

	// Manual creation is not quota-gated.
	status, _ = env.do(t, http.MethodPost, "/api/v1/outfits", token, map[string]interface{}{
		"name":  "Hand picked",
		"items": []map[string]interface{}{{"name": "Hoodie", "price": 89}},
	})
	assert.Equal(t, http.StatusCreated, status)

	// A new store day resets the count.
	env.now = env.now.Add(24 * time.Hour)
	status, _ = env.do(t, http.MethodPost, "/api/v1/outfits/generate", token, map[string]string{"productId": product.ID})
	assert.Equal(t, http.StatusCreated, status)
}

func TestGenerateOutfitProUnlimited(t *testing.T) {
	env := setupApp(t)
	product := env.seedProduct(t, hoodie())
	token, userID := env.register(t, "pro@example.com")
	require.NoError(t, env.db.Model(&models.User{}).Where("id = ?", userID).Update("is_pro", true).Error)

	for i := 0; i < 5; i++ {
		status, _ := env.do(t, http.MethodPost, "/api/v1/outfits/generate", token, map[string]string{"productId": product.ID})
		require.Equal(t, http.StatusCreated, status)
	}

	status, body := env.do(t, http.MethodGet, "/api/v1/outfits/my-outfits", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 5, body["pagination"].(map[string]interface{})["total"])
}

func TestOutfitOwnershipAndLikes(t *testing.T) {
	env := setupApp(t)
	ownerToken, _ := env.register(t, "owner@example.com")
	fanToken, _ := env.register(t, "fan@example.com")
	otherFanToken, _ := env.register(t, "fan2@example.com")

	create := func(name string) string {
		status, body := env.do(t, http.MethodPost, "/api/v1/outfits", ownerToken, map[string]interface{}{
			"name": name, "style": "street", "isPublic": true,
		})
		require.Equal(t, http.StatusCreated, status, body)
		return body["outfit"].(map[string]interface{})["id"].(string)
	}
	first := create("First")
	env.now = env.now.Add(time.Minute)
	second := create("Second")

	status, body := env.do(t, http.MethodPut, "/api/v1/outfits/"+first, fanToken, map[string]interface{}{"name": "Stolen"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Outfit not found", body["error"])

	status, _ = env.do(t, http.MethodDelete, "/api/v1/outfits/"+first, fanToken, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, body = env.do(t, http.MethodPut, "/api/v1/outfits/"+first, ownerToken, map[string]interface{}{"name": "", "description": "updated"})
	require.Equal(t, http.StatusOK, status)
	updated := body["outfit"].(map[string]interface{})
	assert.Equal(t, "First", updated["name"])
	assert.Equal(t, "updated", updated["description"])

	// Liking twice counts once.
	for i := 0; i < 2; i++ {
		status, body = env.do(t, http.MethodPost, "/api/v1/outfits/"+first+"/like", fanToken, nil)
		require.Equal(t, http.StatusOK, status)
		assert.EqualValues(t, 1, body["likes"])
	}
	status, body = env.do(t, http.MethodPost, "/api/v1/outfits/"+first+"/like", otherFanToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 2, body["likes"])

	status, _ = env.do(t, http.MethodPost, "/api/v1/outfits/missing/like", fanToken, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, body = env.do(t, http.MethodGet, "/api/v1/outfits/explore", "", nil)
	require.Equal(t, http.StatusOK, status)
	explored := body["outfits"].([]interface{})
	require.Len(t, explored, 2)
	top := explored[0].(map[string]interface{})
	assert.Equal(t, first, top["id"])
	assert.EqualValues(t, 2, top["likes"])
	assert.NotNil(t, top["user"])
	assert.Equal(t, second, explored[1].(map[string]interface{})["id"])

	status, body = env.do(t, http.MethodDelete, "/api/v1/outfits/"+first+"/like", otherFanToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, body["likes"])

	status, body = env.do(t, http.MethodGet, "/api/v1/outfits/"+first, "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, body["outfit"].(map[string]interface{})["likes"])

	status, _ = env.do(t, http.MethodDelete, "/api/v1/outfits/"+first, ownerToken, nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = env.do(t, http.MethodGet, "/api/v1/outfits/"+first, "", nil)
	assert.Equal(t, http.StatusNotFound, status)

	var remaining int64
	require.NoError(t, env.db.Model(&models.OutfitLike{}).Where("outfit_id = ?", first).Count(&remaining).Error)
	assert.Zero(t, remaining)
}

func TestCreateOutfitValidation(t *testing.T) {
	env := setupApp(t)
	token, _ := env.register(t, "maker@example.com")

	items := make([]map[string]interface{}, 11)
	for i := range items {
		items[i] = map[string]interface{}{"name": fmt.Sprintf("Item %d", i), "price": 10}
	}
	status, body := env.do(t, http.MethodPost, "/api/v1/outfits", token, map[string]interface{}{
		"name": "Too many", "items": items,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Validation failed", body["error"])

	status, _ = env.do(t, http.MethodPost, "/api/v1/outfits", token, map[string]interface{}{"name": ""})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestProtectedEndpointsWithoutAuth(t *testing.T) {
	env := setupApp(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/users/profile"},
		{http.MethodGet, "/api/v1/users/stats"},
		{http.MethodPost, "/api/v1/outfits/generate"},
		{http.MethodGet, "/api/v1/outfits/my-outfits"},
		{http.MethodPost, "/api/v1/outfits/abc/like"},
		{http.MethodPost, "/api/v1/products/abc/reviews"},
	} {
		status, _ := env.do(t, tc.method, tc.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, status, tc.path)

		status, _ = env.do(t, tc.method, tc.path, "not-a-jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, status, tc.path)
	}
}

func TestCatalogReadEndpoints(t *testing.T) {
	env := setupApp(t)
	h := hoodie()
	h.OriginalPrice = func(v float64) *float64 { return &v }(120)
	h.IsSale = true
	h.AffiliateLinks = datatypes.NewJSONType(map[string]string{"asos": "https://www.asos.com/hoodie"})
	hood := env.seedProduct(t, h)
	env.seedProduct(t, models.Product{Name: "Dunk Low", Brand: "Nike", Price: 110, Category: models.CategoryTrainers, IsNew: true})
	env.seedProduct(t, models.Product{Name: "Leather Belt", Brand: "Gucci", Price: 450, Category: models.CategoryAccessories})

	status, body := env.do(t, http.MethodGet, "/api/v1/products/category/trainers", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["products"].([]interface{}), 1)

	status, _ = env.do(t, http.MethodGet, "/api/v1/products/category/hats", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = env.do(t, http.MethodGet, "/api/v1/products/search/dunk", "", nil)
	require.Equal(t, http.StatusOK, status)
	found := body["products"].([]interface{})
	require.Len(t, found, 1)
	assert.Equal(t, "Dunk Low", found[0].(map[string]interface{})["name"])

	status, body = env.do(t, http.MethodGet, "/api/v1/products/featured/new", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["products"].([]interface{}), 2)

	status, body = env.do(t, http.MethodGet, "/api/v1/products/featured/sale", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["products"].([]interface{}), 1)

	status, body = env.do(t, http.MethodGet, "/api/v1/products/filters/brands", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.ElementsMatch(t, []interface{}{"Essentials", "Nike", "Gucci"}, body["brands"])

	status, body = env.do(t, http.MethodGet, "/api/v1/products/filters/price-range?category=clothing", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 89, body["minPrice"])
	assert.EqualValues(t, 89, body["maxPrice"])

	status, body = env.do(t, http.MethodGet, "/api/v1/products/"+hood.ID+"/affiliate-links", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, hood.Name, body["productName"])
	assert.Equal(t, "https://www.asos.com/hoodie", body["affiliateLinks"].(map[string]interface{})["asos"])
}

func TestProfileAndMyOutfitsStyleFilter(t *testing.T) {
	env := setupApp(t)
	token, userID := env.register(t, "me@example.com")

	status, body := env.do(t, http.MethodGet, "/api/v1/users/profile", token, nil)
	require.Equal(t, http.StatusOK, status)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, userID, user["id"])
	assert.Equal(t, true, user["preferences"].(map[string]interface{})["darkMode"])

	for _, style := range []string{"street", "vintage", "vintage"} {
		status, _ = env.do(t, http.MethodPost, "/api/v1/outfits", token, map[string]interface{}{"name": style, "style": style})
		require.Equal(t, http.StatusCreated, status)
	}

	status, body = env.do(t, http.MethodGet, "/api/v1/outfits/my-outfits?style=vintage", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["outfits"].([]interface{}), 2)

	status, body = env.do(t, http.MethodGet, "/api/v1/users/stats", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 3, body["outfitsCreated"])
	assert.EqualValues(t, 0, body["savedItems"])
}

func productNames(t *testing.T, body map[string]interface{}) []string {
	t.Helper()
	products, ok := body["products"].([]interface{})
	require.True(t, ok, body)
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.(map[string]interface{})["name"].(string))
	}
	return names
}

func TestProductListingFilters(t *testing.T) {
	env := setupApp(t)
	env.seedProduct(t, models.Product{Name: "Dunk Low", Brand: "Nike", Price: 110, Category: models.CategoryTrainers, IsNew: true})
	env.seedProduct(t, models.Product{Name: "Air Max 90", Brand: "Nike", Price: 130, Category: models.CategoryTrainers, IsSale: true})
	env.seedProduct(t, models.Product{Name: "Suede Classic", Brand: "Puma", Description: "Formstripe sneaker", Price: 75, Category: models.CategoryTrainers})
	env.seedProduct(t, models.Product{Name: "100% Cotton Tee", Brand: "ASOS Design", Price: 25, Category: models.CategoryClothing})

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"brand is a case-insensitive substring", "brand=IK", []string{"Dunk Low", "Air Max 90"}},
		{"search matches brand", "search=puma", []string{"Suede Classic"}},
		{"search matches description", "search=FORMSTRIPE", []string{"Suede Classic"}},
		{"search wildcard is literal", "search=%25", []string{"100% Cotton Tee"}},
		{"search underscore is literal", "search=_", []string{}},
		{"min price", "minPrice=110", []string{"Dunk Low", "Air Max 90"}},
		{"max price", "maxPrice=75", []string{"Suede Classic", "100% Cotton Tee"}},
		{"price window", "minPrice=100&maxPrice=120", []string{"Dunk Low"}},
		{"new only", "isNew=true", []string{"Dunk Low"}},
		{"sale only", "isSale=true", []string{"Air Max 90"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := env.do(t, http.MethodGet, "/api/v1/products?"+tt.query, "", nil)
			require.Equal(t, http.StatusOK, status, body)
			assert.ElementsMatch(t, tt.want, productNames(t, body))
			assert.EqualValues(t, len(tt.want), body["pagination"].(map[string]interface{})["total"])
		})
	}

	status, body := env.do(t, http.MethodGet, "/api/v1/products/search/%25", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"100% Cotton Tee"}, productNames(t, body))

	for _, query := range []string{"minPrice=abc", "maxPrice=-1"} {
		status, _ = env.do(t, http.MethodGet, "/api/v1/products?"+query, "", nil)
		assert.Equal(t, http.StatusBadRequest, status, query)
	}
}

func TestProductRatingRoundsToOneDecimal(t *testing.T) {
	env := setupApp(t)
	product := env.seedProduct(t, hoodie())

	for i, rating := range []int{5, 4, 4} {
		token, _ := env.register(t, fmt.Sprintf("rater%d@example.com", i))
		status, _ := env.do(t, http.MethodPost, "/api/v1/products/"+product.ID+"/reviews", token, map[string]interface{}{"rating": rating})
		require.Equal(t, http.StatusCreated, status)
	}

	status, body := env.do(t, http.MethodGet, "/api/v1/products/"+product.ID, "", nil)
	require.Equal(t, http.StatusOK, status)
	got := body["product"].(map[string]interface{})
	assert.EqualValues(t, 4.3, got["rating"])
	assert.EqualValues(t, 3, got["reviewCount"])

	status, body = env.do(t, http.MethodGet, "/api/v1/products", "", nil)
	require.Equal(t, http.StatusOK, status)
	listed := body["products"].([]interface{})[0].(map[string]interface{})
	assert.EqualValues(t, 4.3, listed["rating"])
}

func TestSavedItemEmbedsDerivedRating(t *testing.T) {
	env := setupApp(t)
	product := env.seedProduct(t, hoodie())
	token, _ := env.register(t, "fan@example.com")

	status, _ := env.do(t, http.MethodPost, "/api/v1/products/"+product.ID+"/reviews", token, map[string]interface{}{"rating": 5})
	require.Equal(t, http.StatusCreated, status)

	status, body := env.do(t, http.MethodPost, "/api/v1/users/saved-items", token, map[string]string{"productId": product.ID})
	require.Equal(t, http.StatusCreated, status)
	embedded := body["savedItem"].(map[string]interface{})["product"].(map[string]interface{})
	assert.EqualValues(t, 5, embedded["rating"])
	assert.EqualValues(t, 1, embedded["reviewCount"])

	status, body = env.do(t, http.MethodGet, "/api/v1/users/saved-items", token, nil)
	require.Equal(t, http.StatusOK, status)
	items := body["savedItems"].([]interface{})
	require.Len(t, items, 1)
	embedded = items[0].(map[string]interface{})["product"].(map[string]interface{})
	assert.EqualValues(t, 5, embedded["rating"])
	assert.EqualValues(t, 1, embedded["reviewCount"])
}

func TestExploreExcludesPrivateAndOrdersTiesByNewest(t *testing.T) {
	env := setupApp(t)
	token, _ := env.register(t, "curator@example.com")

	create := func(name string, public bool) string {
		status, body := env.do(t, http.MethodPost, "/api/v1/outfits", token, map[string]interface{}{
			"name": name, "isPublic": public,
		})
		require.Equal(t, http.StatusCreated, status, body)
		env.now = env.now.Add(time.Minute)
		return body["outfit"].(map[string]interface{})["id"].(string)
	}
	older := create("Older", true)
	create("Hidden", false)
	newer := create("Newer", true)

	status, body := env.do(t, http.MethodGet, "/api/v1/outfits/explore", "", nil)
	require.Equal(t, http.StatusOK, status)
	explored := body["outfits"].([]interface{})
	require.Len(t, explored, 2)
	assert.Equal(t, newer, explored[0].(map[string]interface{})["id"])
	assert.Equal(t, older, explored[1].(map[string]interface{})["id"])
	assert.EqualValues(t, 2, body["pagination"].(map[string]interface{})["total"])
}
