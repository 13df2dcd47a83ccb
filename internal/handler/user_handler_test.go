package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cardflow/internal/auth"
	"cardflow/internal/handler"
	"cardflow/internal/middleware"
	"cardflow/internal/model"
	"cardflow/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func setupUserTest() (*gin.Engine, *MockUserRepository, *auth.TokenManager) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mockRepo := new(MockUserRepository)
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	userHandler := handler.NewUserHandler(mockRepo, tokens)

	r.POST("/register", userHandler.Register)
	r.POST("/login", userHandler.Login)
	r.GET("/me", middleware.JWTAuthMiddleware(tokens), userHandler.Me)

	return r, mockRepo, tokens
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	jsonBody, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func hashed(t *testing.T, password string) *string {
	t.Helper()
	hash, err := auth.HashPassword(password)
	assert.NoError(t, err)
	return &hash
}

func TestRegister_Success(t *testing.T) {
	router, mockRepo, tokens := setupUserTest()

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.User).UserID = "user_000000000001"
		}).
		Return(nil)

	reqBody := handler.RegisterRequest{Name: "Test User", Email: "test@example.com", Password: "password123"}
	resp := postJSON(router, "/register", reqBody)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var response handler.AuthResponse
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, reqBody.Name, response.User.Name)
	assert.Equal(t, reqBody.Email, response.User.Email)
	assert.NotContains(t, resp.Body.String(), "password")

	userID, err := tokens.ParseToken(response.Token)
	assert.NoError(t, err)
	assert.Equal(t, "user_000000000001", userID)

	created := mockRepo.Calls[0].Arguments.Get(1).(*model.User)
	assert.True(t, auth.CheckPassword(*created.PasswordHash, "password123"))

	mockRepo.AssertExpectations(t)
}

func TestRegister_UserAlreadyExists(t *testing.T) {
	router, mockRepo, _ := setupUserTest()

	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(repository.ErrEmailTaken)

	resp := postJSON(router, "/register", handler.RegisterRequest{
		Name: "Test User", Email: "existing@example.com", Password: "password123",
	})

	assert.Equal(t, http.StatusConflict, resp.Code)

	var response map[string]string
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Email already registered", response["error"])

	mockRepo.AssertExpectations(t)
}

func TestRegister_InvalidInput(t *testing.T) {
	router, mockRepo, _ := setupUserTest()

	resp := postJSON(router, "/register", map[string]string{"email": "not-an-email", "name": "x", "password": "123"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	router, mockRepo, _ := setupUserTest()

	testUser := &model.User{
		UserID:       "user_abcdef123456",
		Email:        "test@example.com",
		PasswordHash: hashed(t, "password123"),
		Name:         "Test User",
	}
	mockRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(testUser, nil)

	resp := postJSON(router, "/login", handler.LoginRequest{Email: "test@example.com", Password: "password123"})

	assert.Equal(t, http.StatusOK, resp.Code)

	var response handler.AuthResponse
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, testUser.Name, response.User.Name)
	assert.Equal(t, testUser.UserID, response.User.UserID)

	mockRepo.AssertExpectations(t)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	router, mockRepo, _ := setupUserTest()

	testUser := &model.User{
		UserID:       "user_abcdef123456",
		Email:        "test@example.com",
		PasswordHash: hashed(t, "correct_password"),
		Name:         "Test User",
	}
	mockRepo.On("FindByEmail", mock.Anything, "test@example.com").Return(testUser, nil)

	resp := postJSON(router, "/login", handler.LoginRequest{Email: "test@example.com", Password: "wrong_password"})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	var response map[string]string
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Invalid credentials", response["error"])

	mockRepo.AssertExpectations(t)
}

func TestLogin_UserNotFound(t *testing.T) {
	router, mockRepo, _ := setupUserTest()

	mockRepo.On("FindByEmail", mock.Anything, "nonexistent@example.com").Return(nil, nil)

	resp := postJSON(router, "/login", handler.LoginRequest{Email: "nonexistent@example.com", Password: "password123"})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockRepo.AssertExpectations(t)
}

func TestLogin_NoLocalPassword(t *testing.T) {
	router, mockRepo, _ := setupUserTest()

	mockRepo.On("FindByEmail", mock.Anything, "oauth@example.com").
		Return(&model.User{UserID: "user_1", Email: "oauth@example.com"}, nil)

	resp := postJSON(router, "/login", handler.LoginRequest{Email: "oauth@example.com", Password: "anything"})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockRepo.AssertExpectations(t)
}

func TestMe(t *testing.T) {
	router, mockRepo, tokens := setupUserTest()

	mockRepo.On("GetByID", mock.Anything, "user_abcdef123456").
		Return(&model.User{UserID: "user_abcdef123456", Email: "me@example.com", Name: "Me"}, nil)

	token, err := tokens.GenerateToken("user_abcdef123456")
	assert.NoError(t, err)
	req, _ := http.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response handler.UserResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
	assert.Equal(t, "me@example.com", response.Email)
	mockRepo.AssertExpectations(t)
}
