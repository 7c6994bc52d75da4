package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/makanscan/internal/client/models"
	"github.com/dmitrijs2005/makanscan/internal/client/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	loginResp    *models.AuthResponse
	loginErr     error
	registerResp *models.AuthResponse
	registerErr  error

	// block, when set, is waited on inside Login.
	block chan struct{}

	mu    sync.Mutex
	calls []string
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	f.mu.Lock()
	f.calls = append(f.calls, "login:"+email)
	f.mu.Unlock()
	if f.block != nil {
		<-f.block
	}
	return f.loginResp, f.loginErr
}

func (f *fakeAuth) Register(ctx context.Context, name, email, password string) (*models.AuthResponse, error) {
	f.mu.Lock()
	f.calls = append(f.calls, "register:"+name)
	f.mu.Unlock()
	return f.registerResp, f.registerErr
}

type brokenStore struct {
	*storage.MemoryStorage
	getErr    error
	setErr    error
	removeErr error
}

func (b *brokenStore) Get(ctx context.Context, key string) ([]byte, error) {
	if b.getErr != nil {
		return nil, b.getErr
	}
	return b.MemoryStorage.Get(ctx, key)
}

func (b *brokenStore) SetMany(ctx context.Context, entries map[string][]byte) error {
	if b.setErr != nil {
		return b.setErr
	}
	return b.MemoryStorage.SetMany(ctx, entries)
}

func (b *brokenStore) Remove(ctx context.Context, keys ...string) error {
	if b.removeErr != nil {
		return b.removeErr
	}
	return b.MemoryStorage.Remove(ctx, keys...)
}

var testUser = &models.User{ID: "u1", Name: "Ana", Email: "a@b.com", CreatedAt: "2025-01-01T00:00:00Z"}

const testUserJSON = `{"id":"u1","name":"Ana","email":"a@b.com","created_at":"2025-01-01T00:00:00Z"}`

func put(t *testing.T, s storage.Storage, kv map[string]string) {
	t.Helper()
	m := make(map[string][]byte, len(kv))
	for k, v := range kv {
		m[k] = []byte(v)
	}
	require.NoError(t, s.SetMany(context.Background(), m))
}

func stored(t *testing.T, s storage.Storage, key string) []byte {
	t.Helper()
	v, err := s.Get(context.Background(), key)
	require.NoError(t, err)
	return v
}

func TestNewStore_StartsLoading(t *testing.T) {
	st := NewStore(&fakeAuth{}, storage.NewMemoryStorage(), nil)

	assert.Equal(t, State{IsLoading: true}, st.Snapshot())
	assert.Equal(t, PhaseInitializing, st.Phase())
}

func TestLoadUser_RestoresSessionIdempotently(t *testing.T) {
	mem := storage.NewMemoryStorage()
	put(t, mem, map[string]string{storage.TokenKey: "T", storage.UserKey: testUserJSON})
	auth := &fakeAuth{}
	st := NewStore(auth, mem, nil)

	want := State{User: testUser, Token: "T", IsAuthenticated: true, IsLoading: false}
	for i := 0; i < 3; i++ {
		st.LoadUser(context.Background())
		assert.Equal(t, want, st.Snapshot())
	}
	assert.Equal(t, PhaseAuthenticated, st.Phase())
	assert.Empty(t, auth.calls, "restore must not call the backend")
}

func TestLoadUser_FailsClosed(t *testing.T) {
	tests := []struct {
		name string
		kv   map[string]string
	}{
		{"empty storage", nil},
		{"token only", map[string]string{storage.TokenKey: "T"}},
		{"user only", map[string]string{storage.UserKey: testUserJSON}},
		{"corrupt user", map[string]string{storage.TokenKey: "T", storage.UserKey: "{not json"}},
		{"null user", map[string]string{storage.TokenKey: "T", storage.UserKey: "null"}},
		{"user not an object", map[string]string{storage.TokenKey: "T", storage.UserKey: `"ana"`}},
		{"empty token", map[string]string{storage.TokenKey: "", storage.UserKey: testUserJSON}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := storage.NewMemoryStorage()
			if tt.kv != nil {
				put(t, mem, tt.kv)
			}
			st := NewStore(&fakeAuth{}, mem, nil)

			assert.NotPanics(t, func() { st.LoadUser(context.Background()) })
			assert.Equal(t, State{}, st.Snapshot())
			assert.Equal(t, PhaseUnauthenticated, st.Phase())
		})
	}
}

func TestLoadUser_StorageErrorFailsClosed(t *testing.T) {
	st := NewStore(&fakeAuth{}, &brokenStore{MemoryStorage: storage.NewMemoryStorage(), getErr: errors.New("io")}, nil)

	st.LoadUser(context.Background())
	assert.Equal(t, State{}, st.Snapshot())
}

func TestLogin_PersistsThenReflects(t *testing.T) {
	mem := storage.NewMemoryStorage()
	auth := &fakeAuth{loginResp: &models.AuthResponse{Token: "tok1", User: testUser}}
	st := NewStore(auth, mem, nil)
	st.LoadUser(context.Background())

	require.NoError(t, st.Login(context.Background(), "a@b.com", "pw"))

	assert.Equal(t, []byte("tok1"), stored(t, mem, storage.TokenKey))
	assert.JSONEq(t, testUserJSON, string(stored(t, mem, storage.UserKey)))
	assert.Equal(t, State{User: testUser, Token: "tok1", IsAuthenticated: true}, st.Snapshot())
	assert.Equal(t, []string{"login:a@b.com"}, auth.calls)
}

func TestLogin_ErrorReturnedUnchangedAndStateUntouched(t *testing.T) {
	apiErr := errors.New("invalid credentials")
	mem := storage.NewMemoryStorage()
	st := NewStore(&fakeAuth{loginErr: apiErr}, mem, nil)
	st.LoadUser(context.Background())
	before := st.Snapshot()

	err := st.Login(context.Background(), "a@b.com", "bad")
	assert.Same(t, apiErr, err)
	assert.Equal(t, before, st.Snapshot())
	assert.Nil(t, stored(t, mem, storage.TokenKey))
}

func TestLogin_IncompleteResponse(t *testing.T) {
	for name, resp := range map[string]*models.AuthResponse{
		"nil":      nil,
		"no token": {User: testUser},
		"no user":  {Token: "tok"},
	} {
		t.Run(name, func(t *testing.T) {
			mem := storage.NewMemoryStorage()
			st := NewStore(&fakeAuth{loginResp: resp}, mem, nil)
			st.LoadUser(context.Background())

			err := st.Login(context.Background(), "a@b.com", "pw")
			assert.ErrorIs(t, err, ErrIncompleteAuthResponse)
			assert.False(t, st.Snapshot().IsAuthenticated)
			assert.Nil(t, stored(t, mem, storage.TokenKey))
			assert.Nil(t, stored(t, mem, storage.UserKey))
		})
	}
}

func TestLogin_PersistFailureLeavesStateUntouched(t *testing.T) {
	bs := &brokenStore{MemoryStorage: storage.NewMemoryStorage(), setErr: errors.New("disk full")}
	st := NewStore(&fakeAuth{loginResp: &models.AuthResponse{Token: "tok1", User: testUser}}, bs, nil)
	st.LoadUser(context.Background())

	err := st.Login(context.Background(), "a@b.com", "pw")
	require.Error(t, err)
	assert.ErrorContains(t, err, "disk full")
	assert.Equal(t, State{}, st.Snapshot())
}

func TestRegister_PersistsThenReflects(t *testing.T) {
	mem := storage.NewMemoryStorage()
	auth := &fakeAuth{registerResp: &models.AuthResponse{Token: "tok2", User: testUser}}
	st := NewStore(auth, mem, nil)
	st.LoadUser(context.Background())

	require.NoError(t, st.Register(context.Background(), "Ana", "a@b.com", "pw"))
	assert.Equal(t, []byte("tok2"), stored(t, mem, storage.TokenKey))
	assert.True(t, st.Snapshot().IsAuthenticated)
	assert.Equal(t, []string{"register:Ana"}, auth.calls)
}

func TestRegister_ErrorReturnedUnchanged(t *testing.T) {
	regErr := errors.New("email already registered")
	st := NewStore(&fakeAuth{registerErr: regErr}, storage.NewMemoryStorage(), nil)
	st.LoadUser(context.Background())

	assert.Same(t, regErr, st.Register(context.Background(), "Ana", "a@b.com", "pw"))
	assert.False(t, st.Snapshot().IsAuthenticated)
}

func TestLogout_ClearsBothLayers(t *testing.T) {
	mem := storage.NewMemoryStorage()
	put(t, mem, map[string]string{storage.TokenKey: "T", storage.UserKey: testUserJSON})
	st := NewStore(&fakeAuth{}, mem, nil)
	st.LoadUser(context.Background())
	require.True(t, st.Snapshot().IsAuthenticated)

	require.NoError(t, st.Logout(context.Background()))

	assert.Nil(t, stored(t, mem, storage.TokenKey))
	assert.Nil(t, stored(t, mem, storage.UserKey))
	assert.Equal(t, State{}, st.Snapshot())
}

func TestLogout_StorageFailureStillResetsMemory(t *testing.T) {
	bs := &brokenStore{MemoryStorage: storage.NewMemoryStorage()}
	put(t, bs, map[string]string{storage.TokenKey: "T", storage.UserKey: testUserJSON})
	st := NewStore(&fakeAuth{}, bs, nil)
	st.LoadUser(context.Background())

	bs.removeErr = errors.New("locked")
	err := st.Logout(context.Background())

	require.Error(t, err)
	assert.ErrorContains(t, err, "locked")
	assert.Equal(t, State{}, st.Snapshot())
}

func TestSessionExpiryMidUse(t *testing.T) {
	mem := storage.NewMemoryStorage()
	put(t, mem, map[string]string{storage.TokenKey: "T", storage.UserKey: testUserJSON})
	st := NewStore(&fakeAuth{}, mem, nil)
	st.LoadUser(context.Background())

	// what the API client does on a 401
	require.NoError(t, mem.Remove(context.Background(), storage.SessionKeys...))

	assert.True(t, st.Snapshot().IsAuthenticated, "memory is not synchronised implicitly")

	relaunched := NewStore(&fakeAuth{}, mem, nil)
	relaunched.LoadUser(context.Background())
	assert.False(t, relaunched.Snapshot().IsAuthenticated)

	assert.False(t, st.Revalidate(context.Background()))
	assert.Equal(t, State{}, st.Snapshot())
}

func TestRevalidate(t *testing.T) {
	ctx := context.Background()

	t.Run("logged out stays out", func(t *testing.T) {
		st := NewStore(&fakeAuth{}, storage.NewMemoryStorage(), nil)
		st.LoadUser(ctx)
		assert.False(t, st.Revalidate(ctx))
	})

	t.Run("intact session kept", func(t *testing.T) {
		mem := storage.NewMemoryStorage()
		put(t, mem, map[string]string{storage.TokenKey: "T", storage.UserKey: testUserJSON})
		st := NewStore(&fakeAuth{}, mem, nil)
		st.LoadUser(ctx)
		assert.True(t, st.Revalidate(ctx))
		assert.True(t, st.Snapshot().IsAuthenticated)
	})

	t.Run("replaced token drops memory", func(t *testing.T) {
		mem := storage.NewMemoryStorage()
		put(t, mem, map[string]string{storage.TokenKey: "T", storage.UserKey: testUserJSON})
		st := NewStore(&fakeAuth{}, mem, nil)
		st.LoadUser(ctx)
		put(t, mem, map[string]string{storage.TokenKey: "other"})
		assert.False(t, st.Revalidate(ctx))
	})

	t.Run("read failure keeps state", func(t *testing.T) {
		bs := &brokenStore{MemoryStorage: storage.NewMemoryStorage()}
		put(t, bs, map[string]string{storage.TokenKey: "T", storage.UserKey: testUserJSON})
		st := NewStore(&fakeAuth{}, bs, nil)
		st.LoadUser(ctx)
		bs.getErr = errors.New("io")
		assert.True(t, st.Revalidate(ctx))
		assert.True(t, st.Snapshot().IsAuthenticated)
	})
}

func TestSubscribe(t *testing.T) {
	mem := storage.NewMemoryStorage()
	st := NewStore(&fakeAuth{loginResp: &models.AuthResponse{Token: "tok1", User: testUser}}, mem, nil)

	var seen []State
	unsubscribe := st.Subscribe(func(s State) { seen = append(seen, s) })

	st.LoadUser(context.Background())
	require.NoError(t, st.Login(context.Background(), "a@b.com", "pw"))
	require.NoError(t, st.Logout(context.Background()))
	unsubscribe()
	unsubscribe()
	st.LoadUser(context.Background())

	require.Len(t, seen, 3)
	assert.Equal(t, State{}, seen[0])
	assert.True(t, seen[1].IsAuthenticated)
	assert.Equal(t, "tok1", seen[1].Token)
	assert.Equal(t, State{}, seen[2])
}

func TestSnapshot_IsACopy(t *testing.T) {
	mem := storage.NewMemoryStorage()
	put(t, mem, map[string]string{storage.TokenKey: "T", storage.UserKey: testUserJSON})
	st := NewStore(&fakeAuth{}, mem, nil)
	st.LoadUser(context.Background())

	snap := st.Snapshot()
	snap.User.Name = "changed"
	assert.Equal(t, "Ana", st.Snapshot().User.Name)
}

func TestPhase_AuthenticatingWhileLoginInFlight(t *testing.T) {
	auth := &fakeAuth{
		loginResp: &models.AuthResponse{Token: "tok1", User: testUser},
		block:     make(chan struct{}),
	}
	st := NewStore(auth, storage.NewMemoryStorage(), nil)
	st.LoadUser(context.Background())

	done := make(chan error)
	go func() { done <- st.Login(context.Background(), "a@b.com", "pw") }()

	require.Eventually(t, func() bool { return st.Phase() == PhaseAuthenticating }, time.Second, time.Millisecond)
	close(auth.block)
	require.NoError(t, <-done)
	assert.Equal(t, PhaseAuthenticated, st.Phase())
}

func TestLoginLogoutAreSerialized(t *testing.T) {
	mem := storage.NewMemoryStorage()
	auth := &fakeAuth{
		loginResp: &models.AuthResponse{Token: "tok1", User: testUser},
		block:     make(chan struct{}),
	}
	st := NewStore(auth, mem, nil)
	st.LoadUser(context.Background())

	loginDone := make(chan error)
	go func() { loginDone <- st.Login(context.Background(), "a@b.com", "pw") }()
	require.Eventually(t, func() bool { return st.Phase() == PhaseAuthenticating }, time.Second, time.Millisecond)

	logoutDone := make(chan error)
	go func() { logoutDone <- st.Logout(context.Background()) }()

	close(auth.block)
	require.NoError(t, <-loginDone)
	require.NoError(t, <-logoutDone)

	// logout ran strictly after login: both layers end logged out
	assert.Equal(t, State{}, st.Snapshot())
	assert.Nil(t, stored(t, mem, storage.TokenKey))
}
