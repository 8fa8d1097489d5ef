package handlers_test

import (
	"net/http"
	"time"

	"github.com/SscSPs/expense_manager_backend/internal/apperrors"
	"github.com/SscSPs/expense_manager_backend/internal/core/domain"
	"github.com/SscSPs/expense_manager_backend/internal/dto"
	"github.com/stretchr/testify/mock"
)

func alice() *domain.User {
	return &domain.User{UserID: testOwner, Email: "alice@example.com", Username: "alice"}
}

func (s *HandlerTestSuite) TestRegister() {
	want := dto.CreateUserRequest{Email: "alice@example.com", Username: "alice", Password: "correct horse"}
	s.users.On("CreateUser", mock.Anything, want).Return(alice(), nil).Once()
	s.users.On("CreateUser", mock.Anything, want).Return(nil, apperrors.ErrDuplicate).Once()

	body := map[string]string{"email": "alice@example.com", "username": "alice", "password": "correct horse"}
	w := s.send(http.MethodPost, "/api/v1/users", body, false)
	s.Equal(http.StatusCreated, w.Code)
	var res dto.UserResponse
	s.decode(w, &res)
	s.Equal(testOwner, res.UserID)

	s.Equal(http.StatusConflict, s.send(http.MethodPost, "/api/v1/users", body, false).Code)
}

func (s *HandlerTestSuite) TestRegister_ShortPassword() {
	body := map[string]string{"email": "alice@example.com", "username": "alice", "password": "short"}
	s.Equal(http.StatusBadRequest, s.send(http.MethodPost, "/api/v1/users", body, false).Code)
}

func (s *HandlerTestSuite) TestToken() {
	expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	s.users.On("AuthenticateUser", mock.Anything, "alice@example.com", "correct horse").Return(alice(), nil).Once()
	s.tokens.On("GenerateAccessToken", mock.Anything, alice()).Return("signed.jwt", expires, nil).Once()

	w := s.send(http.MethodPost, "/api/v1/auth/token",
		map[string]string{"email": "alice@example.com", "password": "correct horse"}, false)

	s.Equal(http.StatusOK, w.Code)
	var res dto.TokenResponse
	s.decode(w, &res)
	s.Equal("signed.jwt", res.AccessToken)
	s.Equal("bearer", res.TokenType)
	s.True(expires.Equal(res.ExpiresAt))
}

func (s *HandlerTestSuite) TestToken_WrongPassword() {
	s.users.On("AuthenticateUser", mock.Anything, "alice@example.com", "nope").Return(nil, apperrors.ErrUnauthorized).Once()

	w := s.send(http.MethodPost, "/api/v1/auth/token",
		map[string]string{"email": "alice@example.com", "password": "nope"}, false)

	s.Equal(http.StatusUnauthorized, w.Code)
	s.JSONEq(`{"error":"Invalid email or password"}`, w.Body.String())
}

func (s *HandlerTestSuite) TestToken_RateLimited() {
	s.users.On("AuthenticateUser", mock.Anything, mock.Anything, mock.Anything).Return(nil, apperrors.ErrUnauthorized).Times(3)

	body := map[string]string{"email": "alice@example.com", "password": "guess"}
	codes := make([]int, 4)
	for i := range codes {
		codes[i] = s.send(http.MethodPost, "/api/v1/auth/token", body, false).Code
	}
	s.Equal([]int{http.StatusUnauthorized, http.StatusUnauthorized, http.StatusUnauthorized, http.StatusTooManyRequests}, codes)
}

func (s *HandlerTestSuite) TestGetMe() {
	s.users.On("GetUserByID", mock.Anything, testOwner).Return(alice(), nil).Once()

	w := s.serve(http.MethodGet, "/api/v1/users/me", nil)

	s.Equal(http.StatusOK, w.Code)
	var res dto.UserResponse
	s.decode(w, &res)
	s.Equal("alice", res.Username)
}

func (s *HandlerTestSuite) TestListUsers() {
	s.users.On("ListUsers", mock.Anything, 5, 0).Return([]domain.User{*alice()}, nil).Once()

	w := s.serve(http.MethodGet, "/api/v1/users?limit=5", nil)

	s.Equal(http.StatusOK, w.Code)
	var res dto.ListUsersResponse
	s.decode(w, &res)
	s.Len(res.Users, 1)
}
