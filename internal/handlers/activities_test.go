package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/thales-ken/CRM/internal/dto"
	"github.com/thales-ken/CRM/internal/middleware"
	"github.com/thales-ken/CRM/internal/models"
	"github.com/thales-ken/CRM/internal/repository"
	"github.com/thales-ken/CRM/internal/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type activityTestEnv struct {
	db           *gorm.DB
	router       *gin.Engine
	userRepo     repository.UserRepository
	activityRepo repository.ActivityRepository
	authService  *services.AuthService
	tokenService *services.TokenService
}

func setupActivityTestEnv(t *testing.T) activityTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	err = db.AutoMigrate(
		&models.User{},
		&models.Contact{},
		&models.Deal{},
		&models.Activity{},
	)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	authService := services.NewAuthService(userRepo, bcrypt.MinCost)
	tokenService := services.NewTokenService("test-secret", time.Hour)
	handler := NewActivityHandler(activityRepo)

	r := gin.New()
	requireAuth := middleware.RequireAuth(tokenService)
	canWrite := middleware.RequireRole(models.RoleAdmin, models.RoleManager, models.RoleSalesRep)

	activities := r.Group("/api/activities")
	activities.Use(requireAuth)
	{
		activities.GET("", handler.ListActivities)
		activities.POST("", canWrite, handler.CreateActivity)
		activities.GET("/:id", handler.GetActivity)
		activities.PUT("/:id", canWrite, handler.UpdateActivity)
		activities.DELETE("/:id", canWrite, handler.DeleteActivity)
	}

	return activityTestEnv{
		db:           db,
		router:       r,
		userRepo:     userRepo,
		activityRepo: activityRepo,
		authService:  authService,
		tokenService: tokenService,
	}
}

func (env activityTestEnv) registerUser(t *testing.T, email, name string, role models.UserRole) (*models.User, string) {
	t.Helper()

	user, err := env.authService.Register(services.RegisterInput{
		Email:    email,
		Password: "supersecret",
		Name:     name,
	})
	require.NoError(t, err)

	if role != models.RoleSalesRep {
		require.NoError(t, env.db.Model(user).Update("role", role).Error)
		user.Role = role
	}

	token, err := env.tokenService.Issue(user)
	require.NoError(t, err)
	return user, token
}

func TestActivityHandler_RequiresToken(t *testing.T) {
	env := setupActivityTestEnv(t)

	w := doJSON(t, env.router, http.MethodGet, "/api/activities", nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestActivityHandler_CreateStampsAttribution(t *testing.T) {
	env := setupActivityTestEnv(t)
	user, token := env.registerUser(t, "rep@example.com", "Rep Seven", models.RoleSalesRep)

	w := doJSON(t, env.router, http.MethodPost, "/api/activities", map[string]any{
		"type":        "call",
		"description": "intro call",
		"date":        "2026-08-30T10:00:00Z",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID uint64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, env.router, http.MethodGet, "/api/activities/1", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var activity dto.ActivityDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &activity))
	require.NotNil(t, activity.UserID)
	require.Equal(t, user.ID, *activity.UserID)
	require.Equal(t, "Rep Seven", activity.UserName)
	require.Equal(t, "rep@example.com", activity.UserEmail)
}

func TestActivityHandler_ViewerCannotMutate(t *testing.T) {
	env := setupActivityTestEnv(t)
	_, token := env.registerUser(t, "viewer@example.com", "Viewer", models.RoleViewer)

	w := doJSON(t, env.router, http.MethodPost, "/api/activities", map[string]any{
		"type":        "note",
		"description": "viewer note",
		"date":        "2026-08-30T10:00:00Z",
	}, token)
	require.Equal(t, http.StatusForbidden, w.Code)

	// reads are still allowed
	w = doJSON(t, env.router, http.MethodGet, "/api/activities", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestActivityHandler_CreateRejectsBadType(t *testing.T) {
	env := setupActivityTestEnv(t)
	_, token := env.registerUser(t, "rep2@example.com", "Rep", models.RoleSalesRep)

	w := doJSON(t, env.router, http.MethodPost, "/api/activities", map[string]any{
		"type":        "carrier-pigeon",
		"description": "nope",
		"date":        "2026-08-30T10:00:00Z",
	}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestActivityHandler_UserDeletionNullsAttribution(t *testing.T) {
	env := setupActivityTestEnv(t)
	user, token := env.registerUser(t, "leaving@example.com", "Leaving", models.RoleSalesRep)

	w := doJSON(t, env.router, http.MethodPost, "/api/activities", map[string]any{
		"type":        "email",
		"description": "follow-up email",
		"date":        "2026-08-30T10:00:00Z",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	require.NoError(t, env.userRepo.Delete(user.ID))

	// the activity survives, attribution is nulled
	activity, err := env.activityRepo.FindByID(1)
	require.NoError(t, err)
	require.Nil(t, activity.UserID)

	_, other := env.registerUser(t, "other@example.com", "Other", models.RoleSalesRep)
	w = doJSON(t, env.router, http.MethodGet, "/api/activities/1", nil, other)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.ActivityDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Nil(t, response.UserID)
	require.Empty(t, response.UserName)
}

func TestActivityHandler_UpdateAndDelete(t *testing.T) {
	env := setupActivityTestEnv(t)
	_, token := env.registerUser(t, "rep3@example.com", "Rep", models.RoleSalesRep)

	w := doJSON(t, env.router, http.MethodPost, "/api/activities", map[string]any{
		"type":        "meeting",
		"description": "kickoff",
		"date":        "2026-08-30T10:00:00Z",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, env.router, http.MethodPut, "/api/activities/1", map[string]any{
		"description": "kickoff (rescheduled)",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	activity, err := env.activityRepo.FindByID(1)
	require.NoError(t, err)
	require.Equal(t, "kickoff (rescheduled)", activity.Description)
	require.Equal(t, models.ActivityTypeMeeting, activity.Type)

	w = doJSON(t, env.router, http.MethodDelete, "/api/activities/1", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, env.router, http.MethodGet, "/api/activities/1", nil, token)
	require.Equal(t, http.StatusNotFound, w.Code)
}
