package auth

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"studentrent/internal/domain"
	"studentrent/internal/notify"
	"studentrent/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store, *notify.Notifier) {
	t.Helper()
	dir := t.TempDir()
	st, err := store.New(store.Options{
		DataPath:    filepath.Join(dir, "data.json"),
		SessionPath: filepath.Join(dir, "session.json"),
	}, zap.NewNop())
	require.NoError(t, err)
	n := notify.New(time.Minute)
	return NewService(st, n, zap.NewNop(), 0), st, n
}

func TestLoginSuccess(t *testing.T) {
	svc, st, n := newTestService(t)

	u, err := svc.Login(context.Background(), store.DemoTenantEmail, store.DemoPassword)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, store.DemoTenantEmail, u.Email)
	assert.Empty(t, u.Password, "returned user must be password-stripped")

	sess := st.GetSession()
	require.NotNil(t, sess)
	assert.Equal(t, u.ID, sess.ID)
	assert.Empty(t, sess.Password)

	msgs := n.Drain()
	require.Len(t, msgs, 1)
	assert.Equal(t, notify.LevelSuccess, msgs[0].Level)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, st, _ := newTestService(t)

	_, err := svc.Login(context.Background(), store.DemoTenantEmail, "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Nil(t, st.GetSession(), "failed login must not touch the session")

	_, err = svc.Login(context.Background(), "nobody@x.com", store.DemoPassword)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestRegisterSuccess(t *testing.T) {
	svc, st, _ := newTestService(t)

	u, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Ada Obi",
		Email:    "ada@unilag.edu.ng",
		Password: "s3cret",
		Role:     domain.RoleTenant,
		Phone:    "08012345678",
	})
	require.NoError(t, err)
	assert.Empty(t, u.Password)
	assert.Equal(t, domain.RoleTenant, u.Role)
	assert.NotZero(t, u.ID)

	// 追加进集合并持久化
	data := st.Load()
	require.Len(t, data.Users, 3)
	assert.Equal(t, "ada@unilag.edu.ng", data.Users[2].Email)
	assert.NotEmpty(t, data.Users[2].Password, "stored record keeps the hash")

	// 注册即登录
	sess := st.GetSession()
	require.NotNil(t, sess)
	assert.Equal(t, u.ID, sess.ID)

	// 新账号能登录
	again, err := svc.Login(context.Background(), "ada@unilag.edu.ng", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, u.ID, again.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, st, _ := newTestService(t)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Copycat",
		Email:    store.DemoTenantEmail,
		Password: "whatever",
		Phone:    "08012345678",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	assert.Len(t, st.Load().Users, 2)
}

func TestRegisterDuplicateIsCaseSensitive(t *testing.T) {
	svc, _, _ := newTestService(t)

	// 大小写不同 → 不算重复（沿用原实现的精确匹配）
	u, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Shouty",
		Email:    "STUDENT@demo.com",
		Password: "whatever",
		Phone:    "08012345678",
	})
	require.NoError(t, err)
	assert.Equal(t, "STUDENT@demo.com", u.Email)
}

func TestRegisterValidation(t *testing.T) {
	svc, st, _ := newTestService(t)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "X", Email: "not-an-email", Password: "p", Phone: "08012345678",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)

	_, err = svc.Register(context.Background(), RegisterInput{
		Name: "X", Email: "x@y.com", Password: "p", Phone: "1234567890",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPhone)

	assert.Len(t, st.Load().Users, 2, "failed registrations must not persist")
	assert.Nil(t, st.GetSession())
}

func TestRegisterDefaultsToTenant(t *testing.T) {
	svc, _, _ := newTestService(t)
	u, err := svc.Register(context.Background(), RegisterInput{
		Name: "NoRole", Email: "norole@x.com", Password: "p", Phone: "08012345678",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleTenant, u.Role)
}

func TestConcurrentRegisterKeepsEveryUser(t *testing.T) {
	svc, st, _ := newTestService(t)

	const n = 10
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Register(context.Background(), RegisterInput{
				Name:     fmt.Sprintf("User %d", i),
				Email:    fmt.Sprintf("user%d@x.com", i),
				Password: "secret1",
				Phone:    "08012345678",
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	// 并发注册一个都不能少
	assert.Len(t, st.Load().Users, 2+n)
}

func TestConcurrentRegisterSameEmailSingleWinner(t *testing.T) {
	svc, st, _ := newTestService(t)

	var ok int64
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Register(context.Background(), RegisterInput{
				Name: "Dup", Email: "dup@x.com", Password: "secret1", Phone: "08012345678",
			})
			if err == nil {
				atomic.AddInt64(&ok, 1)
			} else {
				assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, ok)
	assert.Len(t, st.Load().Users, 3)
}

func TestLogoutIdempotent(t *testing.T) {
	svc, st, _ := newTestService(t)

	_, err := svc.Login(context.Background(), store.DemoLandlordEmail, store.DemoPassword)
	require.NoError(t, err)
	require.NotNil(t, st.GetSession())

	svc.Logout()
	assert.Nil(t, st.GetSession())
	svc.Logout() // 再来一次也不报错
	assert.Nil(t, st.GetSession())
}

func TestSimulatedLatencyHonorsCancellation(t *testing.T) {
	dir := t.TempDir()
	st, err := store.New(store.Options{
		DataPath:    filepath.Join(dir, "data.json"),
		SessionPath: filepath.Join(dir, "session.json"),
	}, zap.NewNop())
	require.NoError(t, err)
	svc := NewService(st, notify.New(time.Minute), zap.NewNop(), time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = svc.Login(ctx, store.DemoTenantEmail, store.DemoPassword)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, st.GetSession())
}
