package http

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

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/userdash/dashboard-backend/internal/domain"
	"github.com/userdash/dashboard-backend/internal/domain/entities"
	"github.com/userdash/dashboard-backend/internal/domain/ports"
	"github.com/userdash/dashboard-backend/internal/domain/repositories"
	"github.com/userdash/dashboard-backend/internal/domain/validation"
	"github.com/userdash/dashboard-backend/internal/handlers/middleware"
	"github.com/userdash/dashboard-backend/internal/infrastructure/auth"
	"github.com/userdash/dashboard-backend/internal/infrastructure/persistence/postgres"
	"github.com/userdash/dashboard-backend/internal/infrastructure/security"
	"github.com/userdash/dashboard-backend/internal/realtime"
	"github.com/userdash/dashboard-backend/internal/services"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}

func (l nopLogger) With(...any) ports.Logger { return l }

type fixture struct {
	router *gin.Engine
	users  repositories.UserRepository
	hasher *security.BcryptHasher
	tokens *auth.JWTService
	hub    *realtime.Hub
}

func setup(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	logger := nopLogger{}
	userRepo := postgres.NewUserRepository(db)
	messageRepo := postgres.NewMessageRepository(db)
	commentRepo := postgres.NewCommentRepository(db)
	uow := postgres.NewUnitOfWork(db)
	hasher := security.NewBcryptHasher(bcrypt.MinCost)
	tokens := auth.NewJWTService("handler-test-secret-with-enough-length", "1h")
	hub := realtime.NewHub(logger)

	userService := services.NewUserService(userRepo, uow, hasher, logger)
	authService := services.NewAuthService(userRepo, hasher, logger)
	messageService := services.NewMessageService(userRepo, messageRepo, commentRepo, hub, logger)

	authHandler := NewAuthHandler(userService, authService, tokens)
	userHandler := NewUserHandler(userService)
	messageHandler := NewMessageHandler(messageService)
	wsHandler := NewWSHandler(hub, logger)

	router := gin.New()
	requireAuth := middleware.RequireAuth(tokens)

	v1 := router.Group("/api/v1")
	{
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/logout", requireAuth, authHandler.Logout)
		}

		users := v1.Group("/users", requireAuth)
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/me/profile", userHandler.UpdateProfile)
			users.PUT("/me/password", userHandler.UpdatePassword)
			users.PUT("/me/description", userHandler.UpdateDescription)

			users.GET("/:id/messages", messageHandler.Wall)
			users.POST("/:id/messages", messageHandler.SendMessage)
			users.POST("/:id/messages/:messageID/comments", messageHandler.PostComment)

			admin := users.Group("", middleware.AdminOnly())
			{
				admin.POST("", userHandler.CreateUser)
				admin.PUT("/:id", userHandler.AdminUpdateUser)
				admin.PUT("/:id/password", userHandler.AdminUpdatePassword)
				admin.DELETE("/:id", userHandler.DeleteUser)
			}
		}

		v1.GET("/ws", requireAuth, wsHandler.Feed)
	}

	return &fixture{
		router: router,
		users:  userRepo,
		hasher: hasher,
		tokens: tokens,
		hub:    hub,
	}
}

// seedUser creates a user directly in the store, bypassing founder
// promotion, and returns it with a valid token.
func (f *fixture) seedUser(t *testing.T, email string, level entities.UserLevel) (*entities.User, string) {
	t.Helper()

	hash, err := f.hasher.Hash("longpass1")
	require.NoError(t, err)

	user := &entities.User{
		FirstName:    "Seed",
		LastName:     "User",
		Email:        email,
		PasswordHash: hash,
		Description:  entities.DefaultDescription,
		Level:        level,
	}
	require.NoError(t, f.users.Create(context.Background(), user))

	token, err := f.tokens.Issue(domain.Actor{UserID: user.ID, Level: user.Level})
	require.NoError(t, err)
	return user, token
}

func (f *fixture) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func registerPayload(email string) gin.H {
	return gin.H{
		"first_name":  "Alice",
		"last_name":   "Martin",
		"email":       email,
		"password":    "longpass1",
		"confirm_pwd": "longpass1",
	}
}

func TestRegisterEndpoint(t *testing.T) {
	f := setup(t)

	rec := f.do(t, http.MethodPost, "/api/v1/auth/register", "", registerPayload("alice@example.com"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
		Flash string `json:"flash"`
		User  struct {
			ID        string `json:"id"`
			Email     string `json:"email"`
			UserLevel int    `json:"user_level"`
		} `json:"user"`
	}
	decode(t, rec, &resp)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice@example.com", resp.User.Email)
	// The very first account is a founder and comes back as admin.
	assert.Equal(t, int(entities.LevelAdmin), resp.User.UserLevel)
	assert.NotEmpty(t, resp.Flash)

	// The raw hash never leaks through registration.
	assert.NotContains(t, rec.Body.String(), `"password"`)
}

func TestRegisterEndpointValidation(t *testing.T) {
	f := setup(t)

	rec := f.do(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"first_name":  "4",
		"last_name":   "B",
		"email":       "a@b",
		"password":    "short",
		"confirm_pwd": "other",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/problem+json")

	var problem struct {
		Status int      `json:"status"`
		Errors []string `json:"errors"`
	}
	decode(t, rec, &problem)
	assert.Equal(t, http.StatusBadRequest, problem.Status)
	assert.Equal(t, []string{
		validation.MsgNameTooShort,
		validation.MsgNameNotLetters,
		validation.MsgEmailTooShort,
		validation.MsgPasswordTooShort,
	}, problem.Errors)
}

func TestLoginEndpoint(t *testing.T) {
	f := setup(t)
	f.seedUser(t, "alice@example.com", entities.LevelNormal)

	t.Run("success", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
			"email":    "alice@example.com",
			"password": "longpass1",
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp struct {
			Token string `json:"token"`
		}
		decode(t, rec, &resp)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("bad credentials", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
			"email":    "alice@example.com",
			"password": "wrongpass",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var problem struct {
			Errors []string `json:"errors"`
		}
		decode(t, rec, &problem)
		assert.Equal(t, []string{validation.MsgLoginInvalid}, problem.Errors)
	})
}

func TestAuthRequired(t *testing.T) {
	f := setup(t)

	rec := f.do(t, http.MethodGet, "/api/v1/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/users", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListUsersHashVisibility(t *testing.T) {
	f := setup(t)
	_, adminToken := f.seedUser(t, "admin@example.com", entities.LevelAdmin)
	_, normalToken := f.seedUser(t, "normal@example.com", entities.LevelNormal)

	t.Run("admin sees hashes", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/users", adminToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"password"`)
	})

	t.Run("normal user does not", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/users", normalToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), `"password"`)
	})
}

func TestUpdateOwnProfileEndpoint(t *testing.T) {
	f := setup(t)
	_, token := f.seedUser(t, "alice@example.com", entities.LevelNormal)

	rec := f.do(t, http.MethodPut, "/api/v1/users/me/profile", token, gin.H{
		"first_name": "Alicia",
		"last_name":  "Martins",
		"email":      "alice@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Flash string `json:"flash"`
		User  struct {
			FirstName string `json:"first_name"`
		} `json:"user"`
	}
	decode(t, rec, &resp)
	assert.Equal(t, "Alicia", resp.User.FirstName)
	assert.NotEmpty(t, resp.Flash)
}

func TestAdminRoutes(t *testing.T) {
	f := setup(t)
	admin, adminToken := f.seedUser(t, "admin@example.com", entities.LevelAdmin)
	target, normalToken := f.seedUser(t, "target@example.com", entities.LevelNormal)

	t.Run("forbidden for normal users", func(t *testing.T) {
		rec := f.do(t, http.MethodDelete, "/api/v1/users/"+admin.ID, normalToken, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin promotes a user", func(t *testing.T) {
		level := int(entities.LevelAdmin)
		rec := f.do(t, http.MethodPut, "/api/v1/users/"+target.ID, adminToken, gin.H{
			"first_name": "Seed",
			"last_name":  "User",
			"email":      "target@example.com",
			"user_level": level,
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp struct {
			User struct {
				UserLevel int `json:"user_level"`
			} `json:"user"`
		}
		decode(t, rec, &resp)
		assert.Equal(t, int(entities.LevelAdmin), resp.User.UserLevel)
	})

	t.Run("invalid level rejected by binding", func(t *testing.T) {
		rec := f.do(t, http.MethodPut, "/api/v1/users/"+target.ID, adminToken, gin.H{
			"first_name": "Seed",
			"last_name":  "User",
			"email":      "target@example.com",
			"user_level": 7,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("admin resets a password", func(t *testing.T) {
		rec := f.do(t, http.MethodPut, "/api/v1/users/"+target.ID+"/password", adminToken, gin.H{
			"password":    "resetpass1",
			"confirm_pwd": "resetpass1",
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("self delete refused", func(t *testing.T) {
		rec := f.do(t, http.MethodDelete, "/api/v1/users/"+admin.ID, adminToken, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin deletes a user", func(t *testing.T) {
		rec := f.do(t, http.MethodDelete, "/api/v1/users/"+target.ID, adminToken, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		rec = f.do(t, http.MethodGet, "/api/v1/users/"+target.ID, adminToken, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestWallEndpoints(t *testing.T) {
	f := setup(t)
	_, senderToken := f.seedUser(t, "alice@example.com", entities.LevelNormal)
	owner, ownerToken := f.seedUser(t, "bob@example.com", entities.LevelNormal)

	rec := f.do(t, http.MethodPost, "/api/v1/users/"+owner.ID+"/messages", senderToken, gin.H{
		"description": "hello Bob",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var msg struct {
		ID         string `json:"id"`
		SenderName string `json:"sender_name"`
	}
	decode(t, rec, &msg)
	require.NotEmpty(t, msg.ID)
	assert.Equal(t, "Seed User", msg.SenderName)

	rec = f.do(t, http.MethodPost, "/api/v1/users/"+owner.ID+"/messages/"+msg.ID+"/comments", ownerToken, gin.H{
		"description": "hello back",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = f.do(t, http.MethodGet, "/api/v1/users/"+owner.ID+"/messages", ownerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var wall []struct {
		ID       string `json:"id"`
		Comments []struct {
			Description string `json:"description"`
		} `json:"comments"`
	}
	decode(t, rec, &wall)
	require.Len(t, wall, 1)
	assert.Equal(t, msg.ID, wall[0].ID)
	require.Len(t, wall[0].Comments, 1)
	assert.Equal(t, "hello back", wall[0].Comments[0].Description)
}

func TestWallValidationErrors(t *testing.T) {
	f := setup(t)
	_, token := f.seedUser(t, "alice@example.com", entities.LevelNormal)
	owner, _ := f.seedUser(t, "bob@example.com", entities.LevelNormal)

	t.Run("empty message", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/users/"+owner.ID+"/messages", token, gin.H{
			"description": "",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var problem struct {
			Errors []string `json:"errors"`
		}
		decode(t, rec, &problem)
		assert.Equal(t, []string{validation.MsgMessageRequired}, problem.Errors)
	})

	t.Run("unknown wall owner", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/users/no-such-id/messages", token, gin.H{
			"description": "hello?",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("comment on unknown message", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/users/"+owner.ID+"/messages/no-such-id/comments", token, gin.H{
			"description": "orphan",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestLogoutEndpoint(t *testing.T) {
	f := setup(t)
	_, token := f.seedUser(t, "alice@example.com", entities.LevelNormal)

	rec := f.do(t, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "flash")
}

func TestWebsocketFeed(t *testing.T) {
	f := setup(t)
	owner, ownerToken := f.seedUser(t, "bob@example.com", entities.LevelNormal)
	sender, senderToken := f.seedUser(t, "alice@example.com", entities.LevelNormal)

	srv := httptest.NewServer(f.router)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/ws"
	header := http.Header{"Authorization": {"Bearer " + ownerToken}}
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	// The feed subscribes just after the handshake completes; give it a
	// moment before publishing.
	time.Sleep(100 * time.Millisecond)

	rec := f.do(t, http.MethodPost, "/api/v1/users/"+owner.ID+"/messages", senderToken, gin.H{
		"description": "realtime hello",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var event realtime.Event
	require.NoError(t, conn.ReadJSON(&event))

	assert.Equal(t, "message", event.Kind)
	assert.Equal(t, sender.ID, event.SenderID)
	assert.Equal(t, owner.ID, event.ReceiverID)
	assert.Equal(t, "realtime hello", event.Description)
}
