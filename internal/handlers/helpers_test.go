package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"Marketplace/internal/config"
	"Marketplace/internal/handlers"
	"Marketplace/internal/middleware"
	"Marketplace/internal/model"
	"Marketplace/internal/repo"
	"Marketplace/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// testApp — сервер поверх in-memory SQLite и засеянные данные
type testApp struct {
	router     http.Handler
	db         *gorm.DB
	cfg        *config.Config
	community  *model.Community
	user       *model.User
	sourceItem *model.SourceItem
	category   *model.Category
}

func newTestApp(t *testing.T, enforceAuth bool) *testApp {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	logger := zap.NewNop().Sugar()
	db, err := repo.InitDB(repo.Options{
		Driver:       repo.DriverSQLite,
		DSN:          fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
		MaxOpenConns: 1,
		Logger:       logger,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	cfg := &config.Config{AuthSecret: "test-secret", EnforceListingAuth: enforceAuth}

	communityRepo := repo.NewCommunityRepository(db)
	catalog := service.NewCatalogService(repo.NewCatalogRepository(db))
	var auth service.Authorizer = service.AllowAll{}
	if enforceAuth {
		auth = service.NewMembershipAuthorizer(communityRepo)
	}
	listings := service.NewListingService(repo.NewListingRepository(db), catalog, auth, logger)

	app := &testApp{
		router: handlers.NewHandler(listings, logger, cfg).Router,
		db:     db,
		cfg:    cfg,
	}

	ctx := context.Background()
	communities := service.NewCommunityService(communityRepo)
	app.community, err = communities.CreateCommunity(ctx, "Sneaker Gang", "sneakergang")
	require.NoError(t, err)
	app.user, err = service.NewUserService(repo.NewUserRepository(db)).Register(ctx, "a@a.com", "Bob", "Brown", "secret")
	require.NoError(t, err)
	_, err = communities.Join(ctx, app.community.ID, app.user.ID, "bobby")
	require.NoError(t, err)

	root, err := catalog.CreateCategory(ctx, "Apparel", nil)
	require.NoError(t, err)
	app.category, err = catalog.CreateCategory(ctx, "Sneakers", &root.ID)
	require.NoError(t, err)
	app.sourceItem, err = catalog.CreateSourceItem(ctx, "Keds", &app.category.ID, datatypes.JSON(`"{\"color\": \"red\"}"`))
	require.NoError(t, err)
	return app
}

func (a *testApp) basePayload(listingType string) map[string]any {
	return map[string]any{
		"community_id":        a.community.ID.String(),
		"listed_by_id":        a.user.ID.String(),
		"status":              "active",
		"listing_type":        listingType,
		"sale_type":           "sell",
		"listing_price_cents": 199,
		"listing_title":       "Test List",
		"listing_desc":        "",
		"available_count":     1,
	}
}

func (a *testApp) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middleware.AuthCookieName, Value: token})
	}
	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	return rr
}

func (a *testApp) token(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	tok, err := middleware.IssueToken(userID, a.cfg.AuthSecret, time.Hour)
	require.NoError(t, err)
	return tok
}

type listingResponse struct {
	Listing map[string]any `json:"listing"`
	Item    map[string]any `json:"item"`
	Lodging map[string]any `json:"lodging"`
}

func decodeListing(t *testing.T, rr *httptest.ResponseRecorder) (listingResponse, map[string]json.RawMessage) {
	t.Helper()
	var resp listingResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), rr.Body.String())
	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &keys))
	return resp, keys
}

func decodeErrors(t *testing.T, rr *httptest.ResponseRecorder) map[string][]string {
	t.Helper()
	var body struct {
		Errors struct {
			JSON map[string][]string `json:"json"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	return body.Errors.JSON
}

func hexOf(id uuid.UUID) string {
	return strings.ReplaceAll(id.String(), "-", "")
}

func countRows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}
