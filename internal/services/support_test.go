package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/userdash/dashboard-backend/internal/domain"
	"github.com/userdash/dashboard-backend/internal/domain/entities"
	"github.com/userdash/dashboard-backend/internal/domain/ports"
	"github.com/userdash/dashboard-backend/internal/domain/repositories"
	"github.com/userdash/dashboard-backend/internal/infrastructure/persistence/postgres"
	"github.com/userdash/dashboard-backend/internal/infrastructure/security"
	"github.com/userdash/dashboard-backend/internal/services"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}

func (l nopLogger) With(...any) ports.Logger { return l }

// recordingNotifier captures the events the message service publishes.
type recordingNotifier struct {
	messages []*entities.Message
	comments []*entities.Comment
}

func (n *recordingNotifier) MessageCreated(m *entities.Message) { n.messages = append(n.messages, m) }
func (n *recordingNotifier) CommentCreated(c *entities.Comment) { n.comments = append(n.comments, c) }

// spyUserRepo counts duplicate-email lookups on top of a real repository.
type spyUserRepo struct {
	repositories.UserRepository
	findByEmailCalls int
}

func (s *spyUserRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	s.findByEmailCalls++
	return s.UserRepository.FindByEmail(ctx, email)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared-cache in-memory database so every pooled connection
	// sees the same data.
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
	return db
}

type testEnv struct {
	db       *gorm.DB
	users    repositories.UserRepository
	messages repositories.MessageRepository
	comments repositories.CommentRepository
	uow      domain.UnitOfWork
	hasher   *security.BcryptHasher
	notifier *recordingNotifier

	userSvc *services.UserService
	authSvc *services.AuthService
	msgSvc  *services.MessageService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	env := &testEnv{
		db:       db,
		users:    postgres.NewUserRepository(db),
		messages: postgres.NewMessageRepository(db),
		comments: postgres.NewCommentRepository(db),
		uow:      postgres.NewUnitOfWork(db),
		hasher:   security.NewBcryptHasher(bcrypt.MinCost),
		notifier: &recordingNotifier{},
	}
	env.userSvc = services.NewUserService(env.users, env.uow, env.hasher, nopLogger{})
	env.authSvc = services.NewAuthService(env.users, env.hasher, nopLogger{})
	env.msgSvc = services.NewMessageService(env.users, env.messages, env.comments, env.notifier, nopLogger{})
	return env
}

func (env *testEnv) register(t *testing.T, first, last, email string) *entities.User {
	t.Helper()

	user, err := env.userSvc.Register(context.Background(), services.RegisterInput{
		FirstName:  first,
		LastName:   last,
		Email:      email,
		Password:   "longpass1",
		ConfirmPwd: "longpass1",
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}

func (env *testEnv) makeAdmin(t *testing.T, user *entities.User) *entities.User {
	t.Helper()

	user.Level = entities.LevelAdmin
	require.NoError(t, env.users.Update(context.Background(), user))
	return user
}

func (env *testEnv) userCount(t *testing.T) int64 {
	t.Helper()

	count, err := env.users.Count(context.Background())
	require.NoError(t, err)
	return count
}
