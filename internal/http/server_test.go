package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"medizone/internal/auth"
	"medizone/internal/config"
	"medizone/internal/domain/advert"
	"medizone/internal/domain/cart"
	"medizone/internal/domain/catalog"
	"medizone/internal/domain/medicine"
	"medizone/internal/domain/payment"
	"medizone/internal/domain/user"

	"github.com/stretchr/testify/assert"
)

type stubUserRepo struct {
	users map[string]*user.User
}

func (s *stubUserRepo) Create(ctx context.Context, u *user.User) (string, error) {
	s.users[u.Email] = u
	return "id", nil
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return s.users[email], nil
}

func (s *stubUserRepo) List(ctx context.Context) ([]user.User, error) {
	users := []user.User{}
	for _, u := range s.users {
		users = append(users, *u)
	}
	return users, nil
}

func (s *stubUserRepo) UpdateRole(ctx context.Context, id, role string) (int64, error) {
	return 0, nil
}

func (s *stubUserRepo) UpdateProfile(ctx context.Context, email string, input user.UpdateProfileInput) (int64, error) {
	return 0, nil
}

type stubMedicineRepo struct{}

func (stubMedicineRepo) Create(ctx context.Context, m *medicine.Medicine) (string, error) {
	return "id", nil
}
func (stubMedicineRepo) List(ctx context.Context) ([]medicine.Medicine, error) { return nil, nil }
func (stubMedicineRepo) ListByCategory(ctx context.Context, category string) ([]medicine.Medicine, error) {
	return nil, nil
}
func (stubMedicineRepo) ListBySeller(ctx context.Context, email string) ([]medicine.Medicine, error) {
	return nil, nil
}
func (stubMedicineRepo) ListDiscounted(ctx context.Context) ([]medicine.Medicine, error) {
	return nil, nil
}

type stubCartRepo struct{}

func (stubCartRepo) Add(ctx context.Context, item *cart.Item) (string, error) { return "id", nil }
func (stubCartRepo) List(ctx context.Context) ([]cart.Item, error)            { return nil, nil }
func (stubCartRepo) ListByBuyer(ctx context.Context, email string) ([]cart.Item, error) {
	return nil, nil
}
func (stubCartRepo) Delete(ctx context.Context, id string) (int64, error)          { return 1, nil }
func (stubCartRepo) DeleteByIDs(ctx context.Context, ids []string) (int64, error)  { return 0, nil }

type stubPaymentRepo struct{}

func (stubPaymentRepo) Create(ctx context.Context, p *payment.Payment) (string, error) {
	return "id", nil
}
func (stubPaymentRepo) List(ctx context.Context) ([]payment.Payment, error) { return nil, nil }
func (stubPaymentRepo) ListByBuyer(ctx context.Context, email string) ([]payment.Payment, error) {
	return nil, nil
}
func (stubPaymentRepo) MarkPaid(ctx context.Context, id string) (int64, error) { return 1, nil }

type stubSliderRepo struct{}

func (stubSliderRepo) Create(ctx context.Context, s *catalog.Slider) (string, error) {
	return "id", nil
}
func (stubSliderRepo) List(ctx context.Context) ([]catalog.Slider, error) { return nil, nil }
func (stubSliderRepo) Update(ctx context.Context, id string, input catalog.UpdateSliderInput) (int64, error) {
	return 1, nil
}
func (stubSliderRepo) Delete(ctx context.Context, id string) (int64, error) { return 1, nil }

type stubCategoryRepo struct{}

func (stubCategoryRepo) Create(ctx context.Context, cat *catalog.Category) (string, error) {
	return "id", nil
}
func (stubCategoryRepo) List(ctx context.Context) ([]catalog.Category, error) { return nil, nil }
func (stubCategoryRepo) Update(ctx context.Context, id string, input catalog.UpdateCategoryInput) (int64, error) {
	return 1, nil
}
func (stubCategoryRepo) Delete(ctx context.Context, id string) (int64, error) { return 1, nil }

type stubAdvertRepo struct{}

func (stubAdvertRepo) Create(ctx context.Context, ad *advert.Advertisement) (string, error) {
	return "id", nil
}
func (stubAdvertRepo) List(ctx context.Context) ([]advert.Advertisement, error) { return nil, nil }
func (stubAdvertRepo) ListBySeller(ctx context.Context, email string) ([]advert.Advertisement, error) {
	return nil, nil
}
func (stubAdvertRepo) SetSlide(ctx context.Context, id string, slide bool) (int64, error) {
	return 1, nil
}

type stubGateway struct{}

func (stubGateway) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	return "pi_secret", nil
}

func newTestServer(t *testing.T) (*Server, *auth.TokenService) {
	t.Helper()

	tokenService, err := auth.NewTokenService("test-secret-for-tokens", time.Hour)
	assert.NoError(t, err)

	userRepo := &stubUserRepo{users: map[string]*user.User{
		"admin@x.com": {Email: "admin@x.com", Role: user.RoleAdmin},
		"a@x.com":     {Email: "a@x.com", Role: user.RoleUser},
	}}

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:         "0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
	}

	server := NewServer(&ServerDependencies{
		Config:         cfg,
		UserRepo:       userRepo,
		MedicineRepo:   stubMedicineRepo{},
		CartRepo:       stubCartRepo{},
		PaymentRepo:    stubPaymentRepo{},
		SliderRepo:     stubSliderRepo{},
		CategoryRepo:   stubCategoryRepo{},
		AdvertRepo:     stubAdvertRepo{},
		TokenService:   tokenService,
		AuthMiddleware: auth.NewMiddleware(tokenService, userRepo),
		Gateway:        stubGateway{},
	})

	return server, tokenService
}

func (s *Server) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func bearerRequest(method, target, body, token string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestLiveness(t *testing.T) {
	server, _ := newTestServer(t)

	rec := server.do(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "MediZone Server Is Running.", rec.Body.String())
}

func TestIssueTokenAndUseIt(t *testing.T) {
	server, _ := newTestServer(t)

	rec := server.do(bearerRequest(http.MethodPost, "/jwt", `{"email":"a@x.com"}`, ""))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["token"])

	rec = server.do(bearerRequest(http.MethodGet, "/cart/a@x.com", "", resp["token"]))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	server, _ := newTestServer(t)

	paths := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/users"},
		{http.MethodGet, "/users/a@x.com"},
		{http.MethodGet, "/carts"},
		{http.MethodGet, "/all-payments"},
		{http.MethodGet, "/advertisements"},
	}

	for _, p := range paths {
		rec := server.do(bearerRequest(p.method, p.target, "", ""))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, p.target)
	}
}

func TestAdminCheckRejectsOtherIdentity(t *testing.T) {
	server, tokens := newTestServer(t)

	token, err := tokens.Issue(map[string]any{"email": "a@x.com"})
	assert.NoError(t, err)

	// Asking about someone else's admin status fails the identity match.
	rec := server.do(bearerRequest(http.MethodGet, "/users/admin/b@x.com", "", token))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = server.do(bearerRequest(http.MethodGet, "/users/admin/a@x.com", "", token))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]bool
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp["admin"])
}

func TestAdminRoutesRequireElevatedRole(t *testing.T) {
	server, tokens := newTestServer(t)

	userToken, err := tokens.Issue(map[string]any{"email": "a@x.com"})
	assert.NoError(t, err)
	adminToken, err := tokens.Issue(map[string]any{"email": "admin@x.com"})
	assert.NoError(t, err)

	rec := server.do(bearerRequest(http.MethodGet, "/users", "", userToken))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = server.do(bearerRequest(http.MethodGet, "/users", "", adminToken))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = server.do(bearerRequest(http.MethodGet, "/all-payments", "", userToken))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPublicCatalogRoutes(t *testing.T) {
	server, _ := newTestServer(t)

	for _, target := range []string{"/sliders", "/categorys", "/medicines", "/all-medicines", "/discountProducts"} {
		rec := server.do(httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusOK, rec.Code, target)
	}
}

func TestCreateUserConflict(t *testing.T) {
	server, _ := newTestServer(t)

	rec := server.do(bearerRequest(http.MethodPost, "/users", `{"email":"a@x.com"}`, ""))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestExpiredTokenRejected(t *testing.T) {
	server, _ := newTestServer(t)

	expired, err := auth.NewTokenService("test-secret-for-tokens", -time.Minute)
	assert.NoError(t, err)
	token, err := expired.Issue(map[string]any{"email": "a@x.com"})
	assert.NoError(t, err)

	rec := server.do(bearerRequest(http.MethodGet, "/carts", "", token))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
