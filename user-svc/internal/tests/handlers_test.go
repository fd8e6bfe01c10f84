package tests

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"quickbite/auth"
	httpapi "quickbite/user-svc/internal/api/http"
	"quickbite/user-svc/internal/domain"
	"quickbite/user-svc/internal/mocks"
	"quickbite/user-svc/internal/service"
)

func setupTestRouter(mockSvc *mocks.UserServiceInterface) *mux.Router {
	handler := &httpapi.Handler{Users: mockSvc}
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestHandler_register(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		prepareMocks func(mockSvc *mocks.UserServiceInterface)
		expectedCode int
	}{
		{
			name:    "success",
			payload: `{"name":"Casey","email":"casey@example.com","password":"hunter22"}`,
			prepareMocks: func(mockSvc *mocks.UserServiceInterface) {
				mockSvc.On("Register", mock.Anything).
					Return(&domain.User{ID: 5, Name: "Casey", Email: "casey@example.com", Role: auth.RoleCustomer}, nil).Once()
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:    "duplicate_email",
			payload: `{"name":"Casey","email":"casey@example.com","password":"hunter22"}`,
			prepareMocks: func(mockSvc *mocks.UserServiceInterface) {
				mockSvc.On("Register", mock.Anything).Return(nil, service.ErrEmailTaken).Once()
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "invalid_json",
			payload:      `bad json`,
			prepareMocks: func(mockSvc *mocks.UserServiceInterface) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockSvc := mocks.NewUserServiceInterface(t)
			router := setupTestRouter(mockSvc)
			testCase.prepareMocks(mockSvc)

			req := httptest.NewRequest("POST", "/api/users", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

// Self-registration must not be able to mint privileged accounts.
func TestHandler_register_ForcesCustomerRole(t *testing.T) {
	mockSvc := mocks.NewUserServiceInterface(t)
	router := setupTestRouter(mockSvc)

	mockSvc.On("Register", mock.MatchedBy(func(req domain.RegisterRequest) bool {
		return req.Role == auth.RoleCustomer
	})).Return(&domain.User{ID: 6, Role: auth.RoleCustomer}, nil).Once()

	payload := `{"name":"Sneaky","email":"sneaky@example.com","password":"pw","role":"admin"}`
	req := httptest.NewRequest("POST", "/api/users", bytes.NewBufferString(payload))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusCreated, recorder.Code)
}

func TestHandler_login(t *testing.T) {
	mockSvc := mocks.NewUserServiceInterface(t)
	router := setupTestRouter(mockSvc)

	mockSvc.On("Login", domain.LoginRequest{Email: "user@example.com", Password: "user123"}).
		Return(&domain.LoginResponse{User: domain.User{ID: 3}, Token: "signed"}, nil).Once()

	req := httptest.NewRequest("POST", "/api/login", bytes.NewBufferString(`{"email":"user@example.com","password":"user123"}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"token":"signed"`)
}

func TestHandler_login_BadCredentials(t *testing.T) {
	mockSvc := mocks.NewUserServiceInterface(t)
	router := setupTestRouter(mockSvc)

	mockSvc.On("Login", mock.Anything).Return(nil, service.ErrInvalidCredentials).Once()

	req := httptest.NewRequest("POST", "/api/login", bytes.NewBufferString(`{"email":"user@example.com","password":"wrong"}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestHandler_listUsers_AdminOnly(t *testing.T) {
	adminToken, _ := auth.GenerateToken(1, "Admin", "admin@example.com", auth.RoleAdmin)
	customerToken, _ := auth.GenerateToken(2, "Casey", "casey@example.com", auth.RoleCustomer)

	t.Run("admin", func(t *testing.T) {
		mockSvc := mocks.NewUserServiceInterface(t)
		router := setupTestRouter(mockSvc)
		mockSvc.On("List").Return([]domain.User{{ID: 1}, {ID: 2}}, nil).Once()

		req := httptest.NewRequest("GET", "/api/users", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("customer_forbidden", func(t *testing.T) {
		mockSvc := mocks.NewUserServiceInterface(t)
		router := setupTestRouter(mockSvc)

		req := httptest.NewRequest("GET", "/api/users", nil)
		req.Header.Set("Authorization", "Bearer "+customerToken)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}
