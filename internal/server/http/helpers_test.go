package httpserver

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/framehq/frame-api/internal/errs"
	"github.com/framehq/frame-api/internal/model"
	"github.com/framehq/frame-api/internal/repository"
	"github.com/framehq/frame-api/internal/service"
	"github.com/framehq/frame-api/internal/token"
)

var testSignKey = []byte("httpserver-test-key-32-bytes!!!!")

type fakeAuthSvc struct {
	tokens model.Tokens
	err    error

	lastEmail, lastUsername, lastPassword, lastIP string
}

var _ service.AuthService = (*fakeAuthSvc)(nil)

func (f *fakeAuthSvc) Register(_ context.Context, email, username, password string) (model.Tokens, error) {
	f.lastEmail, f.lastUsername, f.lastPassword = email, username, password
	return f.tokens, f.err
}

func (f *fakeAuthSvc) LoginWithIP(_ context.Context, email, password, ip string) (model.Tokens, error) {
	f.lastEmail, f.lastPassword, f.lastIP = email, password, ip
	return f.tokens, f.err
}

type fakeMovieSvc struct {
	listOut []model.Movie
	one     *model.Movie
	err     error

	lastSkip, lastLimit int
	lastGenre           string
	lastUserID          int64
	created             int
}

var _ service.MovieService = (*fakeMovieSvc)(nil)

func (f *fakeMovieSvc) List(_ context.Context, skip, limit int, genre string) ([]model.Movie, error) {
	f.lastSkip, f.lastLimit, f.lastGenre = skip, limit, genre
	return f.listOut, f.err
}

func (f *fakeMovieSvc) Get(_ context.Context, id int64) (*model.Movie, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.one, nil
}

func (f *fakeMovieSvc) Create(_ context.Context, userID int64, in model.MovieInput) (*model.Movie, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastUserID = userID
	f.created++
	m := &model.Movie{ID: 1, Title: in.Title, Genre: in.Genre, Duration: in.Duration,
		Rating: in.Rating, Description: in.Description, PosterURL: in.PosterURL,
		IsNew: in.IsNew, CreatedAt: time.Now(), UserID: userID}
	return m, nil
}

type fakeUserRepo struct {
	byID map[int64]*model.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func (f *fakeUserRepo) Create(_ context.Context, _ *model.User) error { return nil }

func (f *fakeUserRepo) GetActiveByID(_ context.Context, id int64) (*model.User, error) {
	u, ok := f.byID[id]
	if !ok || !u.IsActive {
		return nil, errs.ErrNotFound
	}
	c := *u
	return &c, nil
}

func (f *fakeUserRepo) GetActiveByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.byID {
		if u.Email == email && u.IsActive {
			c := *u
			return &c, nil
		}
	}
	return nil, errs.ErrNotFound
}

type testEnv struct {
	srv    *Server
	auth   *fakeAuthSvc
	movies *fakeMovieSvc
	users  *fakeUserRepo
	tokens *token.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	tok, err := token.NewService(testSignKey, 30*time.Minute)
	if err != nil {
		t.Fatalf("token.NewService: %v", err)
	}
	auth := &fakeAuthSvc{}
	movies := &fakeMovieSvc{}
	users := &fakeUserRepo{byID: map[int64]*model.User{}}
	return &testEnv{
		srv:    New(auth, movies, users, tok, zap.NewNop(), "test"),
		auth:   auth,
		movies: movies,
		users:  users,
		tokens: tok,
	}
}

// bearerFor issues a valid token for id and registers the user as active.
func (e *testEnv) bearerFor(t *testing.T, id int64) string {
	t.Helper()
	e.users.byID[id] = &model.User{ID: id, Email: "u@x.com", Username: "u", IsActive: true}
	tok, _, err := e.tokens.Issue(id)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	return "Bearer " + tok
}
