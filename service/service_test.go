package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"bloghub/dao"
	"bloghub/internal/auth"
	"bloghub/internal/imagehost"
	"bloghub/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testDBSeq int64

// newTestDB opens an isolated in-memory sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.VerificationToken{},
		&model.Post{},
		&model.PostLike{},
		&model.Comment{},
		&model.Category{},
	))
	return db
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

// stubMailer records deliveries instead of sending them.
type stubMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (m *stubMailer) Send(_ context.Context, to, subject, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: htmlBody})
	return nil
}

func (m *stubMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func (m *stubMailer) last() sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sent[len(m.sent)-1]
}

// fakeImageHost records uploads and removals.
type fakeImageHost struct {
	mu          sync.Mutex
	uploads     int64
	removed     []string
	removedMany []string
}

func (h *fakeImageHost) Upload(_ context.Context, localPath string) (imagehost.Image, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.uploads++
	id := fmt.Sprintf("img-%d", h.uploads)
	return imagehost.Image{URL: "https://images.test/" + id, ID: id}, nil
}

func (h *fakeImageHost) Remove(_ context.Context, id string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removed = append(h.removed, id)
	return nil
}

func (h *fakeImageHost) RemoveMany(_ context.Context, ids []string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removedMany = append(h.removedMany, ids...)
	return nil
}

type testEnv struct {
	db       *gorm.DB
	users    *dao.UserDAO
	tokens   *dao.TokenDAO
	posts    *dao.PostDAO
	comments *dao.CommentDAO
	mailer   *stubMailer
	images   *fakeImageHost
	tm       *auth.TokenManager

	auth        *AuthService
	userSvc     *UserService
	postSvc     *PostService
	commentSvc  *CommentService
	categorySvc *CategoryService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)
	env := &testEnv{
		db:       db,
		users:    dao.NewUserDAO(db),
		tokens:   dao.NewTokenDAO(db),
		posts:    dao.NewPostDAO(db),
		comments: dao.NewCommentDAO(db),
		mailer:   &stubMailer{},
		images:   &fakeImageHost{},
		tm:       auth.NewTokenManager("test-secret", time.Hour),
	}
	env.auth = NewAuthService(env.users, env.tokens, env.tm, env.mailer, "http://client.test")
	env.userSvc = NewUserService(env.users, env.posts, env.comments, env.tokens, env.images)
	env.postSvc = NewPostService(env.posts, env.comments, env.images)
	env.commentSvc = NewCommentService(env.comments, env.users, env.posts)
	env.categorySvc = NewCategoryService(dao.NewCategoryDAO(db))
	return env
}

// register creates a user through the auth service and returns it.
func (env *testEnv) register(t *testing.T, email, username, password string) *model.User {
	t.Helper()
	require.NoError(t, env.auth.Register(context.Background(), email, username, password))
	user, err := env.users.FindByEmail(email)
	require.NoError(t, err)
	return user
}

// verify consumes the user's current verification token.
func (env *testEnv) verify(t *testing.T, userID uint64) {
	t.Helper()
	token, err := env.tokens.FindByUser(userID)
	require.NoError(t, err)
	require.NoError(t, env.auth.VerifyAccount(userID, token.Token))
}
