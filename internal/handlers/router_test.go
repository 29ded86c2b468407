package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/llum/portfolio-api/internal/auth"
	"github.com/llum/portfolio-api/internal/database"
	"github.com/llum/portfolio-api/internal/middleware"
	"github.com/llum/portfolio-api/internal/models"
	"github.com/llum/portfolio-api/internal/repository"
	"github.com/llum/portfolio-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	testSecret     = "test-secret"
	testOwnerEmail = "owner@example.com"
)

type testEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	authService *services.AuthService
}

// setupTestEnv builds the full route table against an in-memory
// database, mirroring cmd/server/main.go.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Work{},
		&models.WorkSection{},
		&models.WorkSectionImage{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	workRepo := repository.NewWorkRepository(db)
	sectionRepo := repository.NewWorkSectionRepository(db)
	imageRepo := repository.NewWorkSectionImageRepository(db)

	authService := services.NewAuthService(userRepo, testSecret, time.Hour)
	userService := services.NewUserService(userRepo)
	publicService := services.NewPublicService(userRepo, categoryRepo, testOwnerEmail)
	categoryService := services.NewCategoryService(categoryRepo, userRepo)
	workService := services.NewWorkService(workRepo, categoryRepo)
	sectionService := services.NewWorkSectionService(sectionRepo, workRepo)
	imageService := services.NewWorkSectionImageService(imageRepo, sectionService)

	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(userService)
	publicHandler := NewPublicHandler(publicService)
	categoryHandler := NewCategoryHandler(categoryService, publicService)
	workHandler := NewWorkHandler(workService)
	sectionHandler := NewWorkSectionHandler(sectionService)
	imageHandler := NewWorkSectionImageHandler(imageService)

	r := gin.New()

	r.POST("/auth/login", authHandler.Login)

	r.GET("/public/user", publicHandler.GetUser)
	r.GET("/public/categories", publicHandler.ListCategories)
	r.GET("/users/:userId/categories", categoryHandler.ListByUser)
	r.GET("/categories", categoryHandler.List)
	r.GET("/categories/:categoryId/works", workHandler.ListByCategory)
	r.GET("/works/:workId/sections", sectionHandler.ListByWork)

	protected := r.Group("/")
	protected.Use(middleware.RequireAuth(testSecret))
	{
		protected.GET("/user/me", userHandler.GetMe)
		protected.PATCH("/user/me", userHandler.UpdateMe)

		protected.POST("/categories", categoryHandler.Create)
		protected.PATCH("/categories/:categoryId", categoryHandler.Update)
		protected.DELETE("/categories/:categoryId", categoryHandler.Delete)

		protected.GET("/works", workHandler.ListMine)
		protected.POST("/works", workHandler.Create)
		protected.PATCH("/works/:workId", workHandler.Update)
		protected.DELETE("/works/:workId", workHandler.Delete)

		protected.POST("/works/:workId/sections", sectionHandler.Create)
		protected.PATCH("/sections/:sectionId", sectionHandler.Update)
		protected.DELETE("/sections/:sectionId", sectionHandler.Delete)

		protected.POST("/sections/:sectionId/images", imageHandler.Create)
		protected.PATCH("/images/:imageId", imageHandler.Update)
		protected.DELETE("/images/:imageId", imageHandler.Delete)
	}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return &testEnv{
		db:          db,
		router:      r,
		authService: authService,
	}
}

// createTestUser inserts a user with a fixed placeholder hash; login
// tests create their own user with a real bcrypt hash.
func createTestUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: "hashed",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestOwner(t *testing.T, db *gorm.DB) *models.User {
	return createTestUser(t, db, "Owner", testOwnerEmail)
}

func tokenFor(t *testing.T, userID uint64) string {
	t.Helper()

	token, err := auth.GenerateToken(userID, testSecret, time.Hour)
	require.NoError(t, err)
	return token
}

// doRequest performs a request against the test router. A non-empty
// token is sent as a bearer credential.
func (env *testEnv) doRequest(t *testing.T, method, url string, payload any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}
