package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/errs"
	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/handler"
	"github.com/Astemirdum/bookshelf-service/bookshelf/internal/model"
	"github.com/Astemirdum/bookshelf-service/pkg/auth"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/Astemirdum/bookshelf-service/bookshelf/internal/handler/mocks"
)

func TestHandler_NewRouter(t *testing.T) {
	t.Parallel()
	tokens := auth.NewTokenManager(auth.Config{Secret: "secret", TTL: time.Hour})
	token, _, err := tokens.Issue(ownerID, "alice")
	require.NoError(t, err)

	c := gomock.NewController(t)
	svc := service_mocks.NewMockBookshelfService(c)
	svc.EXPECT().ListPersonalLibrary(gomock.Any(), ownerID, (*model.Status)(nil), 0, 0).
		Return(model.ListBooks{Items: []model.Book{}}, nil)
	svc.EXPECT().SignIn(gomock.Any(), model.SignInRequest{Username: "alice", Password: "wrong"}).
		Return(model.AuthResponse{}, errs.ErrInvalidCredentials)

	e := handler.New(svc, tokens, zap.NewExample().Named("test")).NewRouter()

	tests := []struct {
		name     string
		method   string
		target   string
		header   string
		body     string
		wantCode int
		wantBody string
	}{
		{name: "health", method: http.MethodGet, target: "/manage/health", wantCode: http.StatusOK, wantBody: "OK"},
		{name: "no token", method: http.MethodGet, target: "/api/v1/books", wantCode: http.StatusUnauthorized, wantBody: `{"message":"No Authorization Header"}`},
		{name: "bad token", method: http.MethodGet, target: "/api/v1/books", header: "Bearer garbage", wantCode: http.StatusUnauthorized, wantBody: `{"message":"JwtAccessDenied"}`},
		{
			name: "personal library", method: http.MethodGet, target: "/api/v1/books", header: "Bearer " + token,
			wantCode: http.StatusOK, wantBody: `{"page":0,"pageSize":0,"totalElements":0,"items":[]}`,
		},
		{
			name: "sign in", method: http.MethodPost, target: "/api/v1/auth/sign-in", body: `{"username":"alice","password":"wrong"}`,
			wantCode: http.StatusUnauthorized, wantBody: `{"message":"invalid credentials"}`,
		},
	}
	// subtests share one router and mock, so they run sequentially
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			r.Header.Set("Content-Type", "application/json")
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.wantCode, w.Code)
			require.Equal(t, tt.wantBody, strings.Trim(w.Body.String(), "\n"))
		})
	}

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `bookshelf_http_requests_total{method="GET",route="/api/v1/books",status="401"} 2`)
}
