package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"bloghub/dao"
	"bloghub/internal/auth"
	"bloghub/internal/imagehost"
	myvalidator "bloghub/internal/validator"
	"bloghub/model"
	"bloghub/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var (
	registerValidatorOnce sync.Once
	apiTestDBSeq          int64
)

type sentMail struct {
	To      string
	Subject string
	Body    string
}

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

type fakeImageHost struct {
	mu      sync.Mutex
	uploads int64
}

func (h *fakeImageHost) Upload(_ context.Context, localPath string) (imagehost.Image, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.uploads++
	id := fmt.Sprintf("img-%d", h.uploads)
	return imagehost.Image{URL: "https://images.test/" + id, ID: id}, nil
}

func (h *fakeImageHost) Remove(_ context.Context, id string) error        { return nil }
func (h *fakeImageHost) RemoveMany(_ context.Context, ids []string) error { return nil }

type apiEnv struct {
	router *gin.Engine
	db     *gorm.DB
	users  *dao.UserDAO
	tokens *dao.TokenDAO
	tm     *auth.TokenManager
	mailer *stubMailer
}

func newAPIEnv(t *testing.T) *apiEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	registerValidatorOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		require.True(t, ok)
		require.NoError(t, v.RegisterValidation("password", myvalidator.IsStrongPassword))
	})

	dsn := fmt.Sprintf("file:apitestdb%d?mode=memory&cache=shared", atomic.AddInt64(&apiTestDBSeq, 1))
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

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	userDAO := dao.NewUserDAO(db)
	tokenDAO := dao.NewTokenDAO(db)
	postDAO := dao.NewPostDAO(db)
	commentDAO := dao.NewCommentDAO(db)
	categoryDAO := dao.NewCategoryDAO(db)

	tm := auth.NewTokenManager("test-secret", time.Hour)
	mailer := &stubMailer{}
	images := &fakeImageHost{}

	authService := service.NewAuthService(userDAO, tokenDAO, tm, mailer, "http://client.test")
	userService := service.NewUserService(userDAO, postDAO, commentDAO, tokenDAO, images)
	postService := service.NewPostService(postDAO, commentDAO, images)
	commentService := service.NewCommentService(commentDAO, userDAO, postDAO)
	categoryService := service.NewCategoryService(categoryDAO)

	r := gin.New()
	RegisterRoutes(r, RouterDeps{
		TokenManager: tm,
		Redis:        rdb,
		UploadDir:    t.TempDir(),
		UploadMax:    1 << 20,
		Auth:         NewAuthAPI(authService),
		Password:     NewPasswordAPI(authService),
		Users:        NewUserAPI(userService),
		Posts:        NewPostAPI(postService),
		Comments:     NewCommentAPI(commentService),
		Categories:   NewCategoryAPI(categoryService),
	})

	return &apiEnv{router: r, db: db, users: userDAO, tokens: tokenDAO, tm: tm, mailer: mailer}
}

func (env *apiEnv) postJSON(path, token string, body interface{}) *httptest.ResponseRecorder {
	return env.do(http.MethodPost, path, token, body)
}

func (env *apiEnv) putJSON(path, token string, body interface{}) *httptest.ResponseRecorder {
	return env.do(http.MethodPut, path, token, body)
}

func (env *apiEnv) get(path, token string) *httptest.ResponseRecorder {
	return env.do(http.MethodGet, path, token, nil)
}

func (env *apiEnv) delete(path, token string) *httptest.ResponseRecorder {
	return env.do(http.MethodDelete, path, token, nil)
}

func (env *apiEnv) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// multipartPost builds a multipart request with an image part and form fields.
func (env *apiEnv) multipartPost(t *testing.T, method, path, token string, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="photo.png"`)
	header.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// registerAndVerify drives the full register + verify flow over HTTP and
// returns the stored user.
func (env *apiEnv) registerAndVerify(t *testing.T, email, username, password string) *model.User {
	t.Helper()
	w := env.postJSON("/api/v1/auth/register", "", gin.H{
		"email": email, "username": username, "password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	user, err := env.users.FindByEmail(email)
	require.NoError(t, err)
	token, err := env.tokens.FindByUser(user.ID)
	require.NoError(t, err)

	w = env.get(fmt.Sprintf("/api/v1/auth/%d/verify/%s", user.ID, token.Token), "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return user
}

// login returns the session token for verified credentials.
func (env *apiEnv) login(t *testing.T, email, password string) string {
	t.Helper()
	w := env.postJSON("/api/v1/auth/login", "", gin.H{"email": email, "password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// promoteAdmin flips the admin flag directly in the store.
func (env *apiEnv) promoteAdmin(t *testing.T, userID uint64) {
	t.Helper()
	require.NoError(t, env.db.Model(&model.User{}).Where("id = ?", userID).
		Update("is_admin", true).Error)
}
