package routes

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"comfyinn-backend/config"
	"comfyinn-backend/controllers"
	"comfyinn-backend/models"
	"comfyinn-backend/services"
	"comfyinn-backend/testutil"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type discardStore struct{}

func (discardStore) Upload(ctx context.Context, r io.Reader, folder, ext string) (string, error) {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	return "https://img.test/" + folder + "/upload" + ext, nil
}

func (discardStore) Delete(ctx context.Context, url string) error { return nil }

func newTestRouter(t *testing.T, maxUpload int64) *gin.Engine {
	t.Helper()
	r, _ := newTestRouterDB(t, maxUpload)
	return r
}

func newTestRouterDB(t *testing.T, maxUpload int64) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	store := discardStore{}

	categories := services.NewCategoryService(db, store)
	items := services.NewMenuItemService(db, store)

	cfg := &config.Config{
		App:    config.AppConfig{CorsOrigins: []string{"*"}},
		Images: config.ImageConfig{Store: config.ImageStoreCloudinary},
	}
	r := SetupRouter(cfg, Controllers{
		Categories: controllers.NewCategoryController(categories, items),
		MenuItems:  controllers.NewMenuItemController(items),
		Rooms:      controllers.NewRoomController(services.NewRoomService(db, store)),
		Services:   controllers.NewServiceController(services.NewServiceService(db)),
		Halls:      controllers.NewConferenceHallController(services.NewConferenceHallService(db, store)),
		Uploads:    controllers.NewUploadController(services.NewImageService(store, maxUpload)),
		Stats:      controllers.NewStatsController(services.NewStatsService(db)),
	})
	return r, db
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst), w.Body.String())
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, services.DefaultMaxImageBytes)

	w := doJSON(t, r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestCreateRoomAppliesDefaults(t *testing.T) {
	r := newTestRouter(t, services.DefaultMaxImageBytes)

	w := doJSON(t, r, http.MethodPost, "/api/rooms", `{"name":"Suite","price_per_night":8000}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var room map[string]interface{}
	decode(t, w, &room)
	assert.Equal(t, []interface{}{}, room["amenities"])
	assert.Equal(t, true, room["is_available"])
	assert.Equal(t, float64(2), room["capacity"])
	assert.Equal(t, float64(8000), room["price_per_night"])
}

func TestCreateRoomValidation(t *testing.T) {
	r := newTestRouter(t, services.DefaultMaxImageBytes)

	w := doJSON(t, r, http.MethodPost, "/api/rooms", `{"name":"Suite"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/rooms", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request payload"}`, w.Body.String())
}

func TestRoomNotFound(t *testing.T) {
	r := newTestRouter(t, services.DefaultMaxImageBytes)

	for _, path := range []string{"/api/rooms/99", "/api/rooms/abc", "/api/rooms/0"} {
		w := doJSON(t, r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.JSONEq(t, `{"error":"Room not found"}`, w.Body.String(), path)
	}

	w := doJSON(t, r, http.MethodPut, "/api/rooms/99", `{"name":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/rooms/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoomLifecycle(t *testing.T) {
	r := newTestRouter(t, services.DefaultMaxImageBytes)

	w := doJSON(t, r, http.MethodPost, "/api/rooms", `{"name":"Deluxe Double Bed & Breakfast","price_per_night":5000}`)
	require.Equal(t, http.StatusOK, w.Code)
	var created struct {
		ID uint `json:"id"`
	}
	decode(t, w, &created)
	path := fmt.Sprintf("/api/rooms/%d", created.ID)

	w = doJSON(t, r, http.MethodPut, path, `{"price_per_night":5500}`)
	require.Equal(t, http.StatusOK, w.Code)
	var updated map[string]interface{}
	decode(t, w, &updated)
	assert.Equal(t, "Deluxe Double Bed & Breakfast", updated["name"])
	assert.Equal(t, float64(5500), updated["price_per_night"])

	w = doJSON(t, r, http.MethodGet, "/api/rooms/search?room_type=Deluxe&max_price=6000", "")
	require.Equal(t, http.StatusOK, w.Code)
	var found []map[string]interface{}
	decode(t, w, &found)
	assert.Len(t, found, 1)

	w = doJSON(t, r, http.MethodGet, "/api/rooms/facets", "")
	require.Equal(t, http.StatusOK, w.Code)
	var facets models.RoomFacets
	decode(t, w, &facets)
	assert.Equal(t, []string{"Bed & Breakfast"}, facets.MealPlans)
	assert.Equal(t, []string{"Deluxe"}, facets.RoomTypes)

	w = doJSON(t, r, http.MethodDelete, path, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = doJSON(t, r, http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateRoomRejectsUnknownFacet(t *testing.T) {
	r := newTestRouter(t, services.DefaultMaxImageBytes)

	w := doJSON(t, r, http.MethodPost, "/api/rooms", `{"name":"Suite","price_per_night":8000,"room_type":"deluxe"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]string
	decode(t, w, &body)
	assert.Contains(t, body["error"], `room_type "deluxe"`)

	w = doJSON(t, r, http.MethodPost, "/api/rooms", `{"name":"Suite","price_per_night":8000,"room_type":"Deluxe"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var created struct {
		ID uint `json:"id"`
	}
	decode(t, w, &created)

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/rooms/%d", created.ID), `{"bed_type":"King","meal_plan":"Buffet"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	decode(t, w, &body)
	assert.Contains(t, body["error"], `bed_type "King"`)
	assert.Contains(t, body["error"], `meal_plan "Buffet"`)
}

func TestDatabaseFailureHidesDetails(t *testing.T) {
	r, db := newTestRouterDB(t, services.DefaultMaxImageBytes)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	cases := []struct {
		method, path, body, message string
	}{
		{http.MethodGet, "/api/rooms", "", "Failed to fetch rooms"},
		{http.MethodGet, "/api/rooms/1", "", "Failed to fetch room"},
		{http.MethodPost, "/api/services", `{"name":"Laundry"}`, "Failed to create service"},
		{http.MethodGet, "/api/menu", "", "Failed to fetch menu"},
	}
	for _, tc := range cases {
		w := doJSON(t, r, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusInternalServerError, w.Code, tc.path)
		assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, tc.message), w.Body.String(), tc.path)
		assert.NotContains(t, w.Body.String(), "sql", tc.path)
	}
}

func TestCRUDLifecycle(t *testing.T) {
	cases := []struct {
		name     string
		base     string
		create   func(t *testing.T, r http.Handler) string
		patch    string
		want     map[string]interface{}
		notFound string
	}{
		{
			name:     "category",
			base:     "/api/categories",
			create:   func(*testing.T, http.Handler) string { return `{"name":"Drinks","description":"Cold and hot","sort_order":2}` },
			patch:    `{"sort_order":5}`,
			want:     map[string]interface{}{"name": "Drinks", "description": "Cold and hot", "sort_order": float64(5)},
			notFound: "Category not found",
		},
		{
			name: "menu item",
			base: "/api/menu-items",
			create: func(t *testing.T, r http.Handler) string {
				w := doJSON(t, r, http.MethodPost, "/api/categories", `{"name":"Drinks"}`)
				require.Equal(t, http.StatusOK, w.Code)
				var category struct {
					ID uint `json:"id"`
				}
				decode(t, w, &category)
				return fmt.Sprintf(`{"category_id":%d,"name":"Tea","price":150,"tags":["hot"]}`, category.ID)
			},
			patch:    `{"price":180}`,
			want:     map[string]interface{}{"name": "Tea", "price": float64(180), "category_name": "Drinks", "tags": []interface{}{"hot"}},
			notFound: "Menu item not found",
		},
		{
			name:     "room",
			base:     "/api/rooms",
			create:   func(*testing.T, http.Handler) string { return `{"name":"Standard Single Bed Only","price_per_night":2000,"amenities":["WiFi"]}` },
			patch:    `{"capacity":1,"is_available":false}`,
			want:     map[string]interface{}{"name": "Standard Single Bed Only", "price_per_night": float64(2000), "capacity": float64(1), "is_available": false, "amenities": []interface{}{"WiFi"}},
			notFound: "Room not found",
		},
		{
			name:     "service",
			base:     "/api/services",
			create:   func(*testing.T, http.Handler) string { return `{"name":"Laundry","description":"Same day","price":500}` },
			patch:    `{"price":600}`,
			want:     map[string]interface{}{"name": "Laundry", "description": "Same day", "price": float64(600)},
			notFound: "Service not found",
		},
		{
			name:     "conference hall",
			base:     "/api/conference-halls",
			create:   func(*testing.T, http.Handler) string { return `{"name":"Kerio Hall","capacity":125,"price_per_hour":2500}` },
			patch:    `{"capacity":150,"is_featured":true}`,
			want:     map[string]interface{}{"name": "Kerio Hall", "capacity": float64(150), "price_per_hour": float64(2500), "is_featured": true},
			notFound: "Conference hall not found",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(t, services.DefaultMaxImageBytes)

			w := doJSON(t, r, http.MethodPost, tc.base, tc.create(t, r))
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			var created map[string]interface{}
			decode(t, w, &created)
			id, ok := created["id"].(float64)
			require.True(t, ok, w.Body.String())
			path := fmt.Sprintf("%s/%d", tc.base, int(id))

			w = doJSON(t, r, http.MethodGet, path, "")
			require.Equal(t, http.StatusOK, w.Code)
			var got map[string]interface{}
			decode(t, w, &got)
			assert.Equal(t, created["name"], got["name"])

			// The same patch twice leaves the same record behind.
			for i := 0; i < 2; i++ {
				w = doJSON(t, r, http.MethodPut, path, tc.patch)
				require.Equal(t, http.StatusOK, w.Code, w.Body.String())
				var updated map[string]interface{}
				decode(t, w, &updated)
				for key, want := range tc.want {
					assert.Equal(t, want, updated[key], "%s after PUT #%d", key, i+1)
				}
			}

			w = doJSON(t, r, http.MethodGet, path, "")
			require.Equal(t, http.StatusOK, w.Code)
			decode(t, w, &got)
			for key, want := range tc.want {
				assert.Equal(t, want, got[key], key)
			}

			w = doJSON(t, r, http.MethodDelete, path, "")
			require.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `{"success":true}`, w.Body.String())

			notFound := fmt.Sprintf(`{"error":%q}`, tc.notFound)
			for _, method := range []string{http.MethodGet, http.MethodDelete} {
				w = doJSON(t, r, method, path, "")
				assert.Equal(t, http.StatusNotFound, w.Code, method)
				assert.JSONEq(t, notFound, w.Body.String(), method)
			}
			w = doJSON(t, r, http.MethodPut, path, tc.patch)
			assert.Equal(t, http.StatusNotFound, w.Code)
		})
	}
}

func TestRoomSearchRejectsBadPrice(t *testing.T) {
	r := newTestRouter(t, services.DefaultMaxImageBytes)

	w := doJSON(t, r, http.MethodGet, "/api/rooms/search?min_price=cheap", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAvailableHalls(t *testing.T) {
	r := newTestRouter(t, services.DefaultMaxImageBytes)

	require.Equal(t, http.StatusOK, doJSON(t, r, http.MethodPost, "/api/conference-halls",
		`{"name":"Kerio","capacity":125,"price_per_hour":2500}`).Code)
	require.Equal(t, http.StatusOK, doJSON(t, r, http.MethodPost, "/api/conference-halls",
		`{"name":"Closed","capacity":10,"price_per_hour":100,"is_available":false}`).Code)

	var halls []map[string]interface{}
	w := doJSON(t, r, http.MethodGet, "/api/conference-halls/available", "")
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &halls)
	require.Len(t, halls, 1)
	assert.Equal(t, "Kerio", halls[0]["name"])

	w = doJSON(t, r, http.MethodGet, "/api/conference-halls", "")
	decode(t, w, &halls)
	assert.Len(t, halls, 2)
}

func TestMenuAndStats(t *testing.T) {
	r := newTestRouter(t, services.DefaultMaxImageBytes)

	w := doJSON(t, r, http.MethodPost, "/api/categories", `{"name":"Drinks"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var category struct {
		ID uint `json:"id"`
	}
	decode(t, w, &category)

	w = doJSON(t, r, http.MethodPost, "/api/menu-items",
		fmt.Sprintf(`{"category_id":%d,"name":"Tea","price":150}`, category.ID))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"category_name":"Drinks"`)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/categories/%d/items", category.ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	var items []map[string]interface{}
	decode(t, w, &items)
	assert.Len(t, items, 1)

	w = doJSON(t, r, http.MethodGet, "/api/categories/77/items", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/menu", "")
	require.Equal(t, http.StatusOK, w.Code)
	var menu []struct {
		Name  string                   `json:"name"`
		Items []map[string]interface{} `json:"items"`
	}
	decode(t, w, &menu)
	require.Len(t, menu, 1)
	assert.Equal(t, "Drinks", menu[0].Name)
	assert.Len(t, menu[0].Items, 1)

	w = doJSON(t, r, http.MethodGet, "/api/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"categoriesCount":1,"itemsCount":1,"roomsCount":0,"servicesCount":0,"conferenceHallsCount":0}`,
		w.Body.String())

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/categories/%d", category.ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodGet, "/api/menu-items", "")
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestAvailableServices(t *testing.T) {
	r := newTestRouter(t, services.DefaultMaxImageBytes)

	require.Equal(t, http.StatusOK, doJSON(t, r, http.MethodPost, "/api/services", `{"name":"Laundry","price":500}`).Code)
	require.Equal(t, http.StatusOK, doJSON(t, r, http.MethodPost, "/api/services", `{"name":"Spa","is_available":false}`).Code)

	w := doJSON(t, r, http.MethodGet, "/api/services/available", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]interface{}
	decode(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Laundry", list[0]["name"])
}

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func multipartUpload(t *testing.T, field, filename string, data []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if field != "" {
		fw, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.WriteField("folder", "rooms"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUpload(t *testing.T) {
	r := newTestRouter(t, 64)

	cases := []struct {
		name    string
		req     *http.Request
		code    int
		message string
	}{
		{"image", multipartUpload(t, "file", "a.png", pngHeader), http.StatusOK, ""},
		{"not an image", multipartUpload(t, "file", "a.txt", []byte("hello there")), http.StatusBadRequest, "Please select an image file"},
		{"missing file", multipartUpload(t, "", "", nil), http.StatusBadRequest, "No file provided"},
		{"too large", multipartUpload(t, "file", "big.png", append(append([]byte{}, pngHeader...), make([]byte, 128)...)), http.StatusRequestEntityTooLarge, "Image must be at most 64 B"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, tc.req)
			assert.Equal(t, tc.code, w.Code, w.Body.String())
			if tc.message != "" {
				assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, tc.message), w.Body.String())
			}
		})
	}
}

func TestUploadLimitMessageFollowsConfig(t *testing.T) {
	r := newTestRouter(t, 2<<20)

	body, err := json.Marshal(map[string]string{
		"data":   "data:image/png;base64," + base64.StdEncoding.EncodeToString(append(append([]byte{}, pngHeader...), make([]byte, 3<<20)...)),
		"folder": "rooms",
	})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodPost, "/api/upload", string(body))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.JSONEq(t, `{"error":"Image must be at most 2.0 MiB"}`, w.Body.String())
}

func TestUploadReturnsURL(t *testing.T) {
	r := newTestRouter(t, 64)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartUpload(t, "file", "a.png", pngHeader))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"url":"https://img.test/rooms/upload.png"}`, w.Body.String())
}
