package usecase

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"dunkstore-backend/internal/domain"
	"dunkstore-backend/pkg/logger"
	"dunkstore-backend/pkg/metrics"
)

const (
	actionLogin         = "LOGIN"
	actionRegister      = "REGISTER"
	actionLogout        = "LOGOUT"
	actionUpdateProfile = "UPDATE_PROFILE"
)

// AuthResult is the completion of an asynchronous login.
type AuthResult struct {
	User *domain.User
	Err  error
}

// AuthConfig tunes the simulated identity backend.
type AuthConfig struct {
	Latency     time.Duration
	Timeout     time.Duration
	SlotTimeout time.Duration
}

// AuthUsecase simulates account sessions. No credential is ever verified;
// every call waits a fixed latency to stand in for a remote identity service.
type AuthUsecase struct {
	mu        sync.RWMutex
	user      *domain.User
	persister *slotPersister
	latency   time.Duration
	timeout   time.Duration
	now       func() time.Time
	metrics   *metrics.StoreMetrics
}

func NewAuthUsecase(ctx context.Context, slots domain.SlotStore, namespace string, cfg AuthConfig, m *metrics.StoreMetrics) (*AuthUsecase, error) {
	u := &AuthUsecase{
		persister: newSlotPersister(slots, domain.SlotKey(namespace, domain.SlotKeyUser), storeAuth, cfg.SlotTimeout, m),
		latency:   cfg.Latency,
		timeout:   cfg.Timeout,
		now:       time.Now,
		metrics:   m,
	}

	var saved domain.User
	restored, err := u.persister.load(ctx, &saved)
	if err != nil {
		return nil, err
	}
	if restored && saved.ID != "" {
		u.user = &saved
	}
	return u, nil
}

// CurrentUser returns a copy of the session user, or nil when anonymous.
func (u *AuthUsecase) CurrentUser() *domain.User {
	u.mu.RLock()
	defer u.mu.RUnlock()
	if u.user == nil {
		return nil
	}
	c := u.user.Clone()
	return &c
}

func (u *AuthUsecase) IsAuthenticated() bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.user != nil
}

// Login signs in with any non-empty email and password and returns the mock
// account. If ctx ends before the simulated call completes, nothing changes
// and the context error is returned.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (*domain.User, error) {
	ctx, cancel := u.withTimeout(ctx)
	defer cancel()

	if err := u.simulateLatency(ctx); err != nil {
		logger.WithContext(ctx).Warn().Err(err).Msg("Login abandoned before completion")
		return nil, err
	}

	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user := mockUser(email)
	applied, err := u.apply(ctx, actionLogin, &user)
	if !applied {
		return nil, err
	}
	return &user, err
}

// LoginAsync runs Login in the background and delivers its result on the
// returned channel, which is closed afterwards.
func (u *AuthUsecase) LoginAsync(ctx context.Context, email, password string) <-chan AuthResult {
	ch := make(chan AuthResult, 1)
	go func() {
		defer close(ch)
		user, err := u.Login(ctx, email, password)
		ch <- AuthResult{User: user, Err: err}
	}()
	return ch
}

// Register creates an account from in. The new ID is the current Unix time
// in milliseconds.
func (u *AuthUsecase) Register(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
	ctx, cancel := u.withTimeout(ctx)
	defer cancel()

	if err := u.simulateLatency(ctx); err != nil {
		logger.WithContext(ctx).Warn().Err(err).Msg("Registration abandoned before completion")
		return nil, err
	}

	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return nil, domain.ErrInvalidInput
	}

	user := domain.User{
		ID:        strconv.FormatInt(u.now().UnixMilli(), 10),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		BirthDate: in.BirthDate,
		Gender:    in.Gender,
	}
	applied, err := u.apply(ctx, actionRegister, &user)
	if !applied {
		return nil, err
	}
	return &user, err
}

// Logout ends the session and removes the saved account.
func (u *AuthUsecase) Logout(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.user = nil
	u.metrics.IncAction(storeAuth, actionLogout)
	return u.persister.clear(ctx)
}

// UpdateProfile merges the set fields of upd into the session user.
func (u *AuthUsecase) UpdateProfile(ctx context.Context, upd domain.ProfileUpdate) (*domain.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.user == nil {
		return nil, domain.ErrNoSession
	}

	updated := upd.Apply(*u.user)
	u.user = &updated
	u.metrics.IncAction(storeAuth, actionUpdateProfile)

	out := updated.Clone()
	if err := u.persister.save(ctx, updated); err != nil {
		return &out, err
	}
	return &out, nil
}

// apply installs user as the session user unless ctx has already ended.
// A persistence failure after installation still reports applied.
func (u *AuthUsecase) apply(ctx context.Context, action string, user *domain.User) (bool, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return false, err
	}

	c := user.Clone()
	u.user = &c
	u.metrics.IncAction(storeAuth, action)
	return true, u.persister.save(ctx, c)
}

func (u *AuthUsecase) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if u.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, u.timeout)
}

func (u *AuthUsecase) simulateLatency(ctx context.Context) error {
	if u.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(u.latency)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func mockUser(email string) domain.User {
	return domain.User{
		ID:        "1",
		Name:      "João Silva",
		Email:     email,
		Phone:     ptr("(11) 99999-9999"),
		BirthDate: ptr("1990-01-01"),
		Gender:    ptr(string(domain.GenderMale)),
		Address: &domain.Address{
			Street:       "Rua das Flores",
			Number:       "123",
			Complement:   ptr("Apto 45"),
			Neighborhood: "Vila Madalena",
			City:         "São Paulo",
			State:        "SP",
			ZipCode:      "05435-000",
		},
	}
}

func ptr[T any](v T) *T { return &v }
