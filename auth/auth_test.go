package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(7, "Sam Rivera", "sam@example.com", RoleRestaurant)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "sam@example.com", claims.Email)
	assert.Equal(t, RoleRestaurant, claims.Role)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRequireAuth(t *testing.T) {
	handler := RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromContext(r.Context())
		assert.NotNil(t, claims)
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name         string
		authHeader   string
		expectedCode int
	}{
		{name: "missing_header", authHeader: "", expectedCode: http.StatusUnauthorized},
		{name: "bad_token", authHeader: "Bearer nope", expectedCode: http.StatusUnauthorized},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/orders", nil)
			if testCase.authHeader != "" {
				req.Header.Set("Authorization", testCase.authHeader)
			}
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}

	t.Run("valid_token", func(t *testing.T) {
		token, _ := GenerateToken(1, "Admin", "admin@example.com", RoleAdmin)
		req := httptest.NewRequest("GET", "/api/orders", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestRequireRole(t *testing.T) {
	handler := RequireRole(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}, RoleAdmin, RoleRestaurant)

	customerToken, _ := GenerateToken(2, "Casey", "casey@example.com", RoleCustomer)
	restaurantToken, _ := GenerateToken(3, "Kitchen", "kitchen@example.com", RoleRestaurant)

	tests := []struct {
		name         string
		token        string
		expectedCode int
	}{
		{name: "customer_forbidden", token: customerToken, expectedCode: http.StatusForbidden},
		{name: "restaurant_allowed", token: restaurantToken, expectedCode: http.StatusOK},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			req := httptest.NewRequest("PUT", "/api/orders/1/status", nil)
			req.Header.Set("Authorization", "Bearer "+testCase.token)
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}
