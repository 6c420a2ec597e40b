package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/creatorconnect/server/internal/identity/entity"
	"github.com/creatorconnect/server/internal/pkg/goerror"
	"github.com/creatorconnect/server/internal/pkg/hash"
	"github.com/creatorconnect/server/internal/pkg/jwt"
	"github.com/creatorconnect/server/internal/pkg/mail"
	"github.com/creatorconnect/server/internal/pkg/uid"
	"github.com/creatorconnect/server/internal/pkg/validator"
)

// fakeRepo mimics the store contract: the code upsert replaces the single
// unused record per email, and consumption is a single conditional update.
type fakeRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
	codes []entity.OneTimeCode
	err   error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[string]*entity.User)}
}

func (f *fakeRepo) UpsertActiveCode(_ context.Context, code entity.OneTimeCode) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}

	for i := range f.codes {
		if f.codes[i].Email == code.Email && !f.codes[i].Used {
			f.codes[i] = code
			return nil
		}
	}

	f.codes = append(f.codes, code)
	return nil
}

func (f *fakeRepo) ConsumeCode(_ context.Context, email, code string, now time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}

	for i := range f.codes {
		c := &f.codes[i]
		if c.Email == email && c.Code == code && !c.Used && c.ExpiresAt.After(now) {
			c.Used = true
			return true, nil
		}
	}

	return false, nil
}

func (f *fakeRepo) MarkUserVerified(_ context.Context, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}

	if u, ok := f.users[email]; ok {
		u.Verified = true
	}
	return nil
}

func (f *fakeRepo) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}

	u, ok := f.users[email]
	if !ok {
		return nil, goerror.ErrNotFound
	}

	cp := *u
	return &cp, nil
}

func (f *fakeRepo) CreateUser(_ context.Context, user entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}

	if _, ok := f.users[user.Email]; ok {
		return goerror.ErrConflict
	}

	cp := user
	f.users[user.Email] = &cp
	return nil
}

func (f *fakeRepo) unusedCodes(email string) []entity.OneTimeCode {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []entity.OneTimeCode
	for _, c := range f.codes {
		if c.Email == email && !c.Used {
			out = append(out, c)
		}
	}
	return out
}

type fakeMail struct {
	sent []mail.Message
	err  error
}

func (f *fakeMail) Send(_ context.Context, msg mail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeMail) Close() error { return nil }

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.t = f.t.Add(d)
}

type fakeCodes struct {
	next []string
	i    int
}

func (f *fakeCodes) Generate() (string, error) {
	code := f.next[f.i%len(f.next)]
	f.i++
	return code, nil
}

type fakeJWT struct{}

func (fakeJWT) Generate(userID, role string) (string, error) {
	return "token:" + userID + ":" + role, nil
}

func (fakeJWT) Verify(string) (jwt.Claims, error) { return jwt.Claims{}, nil }

type fixture struct {
	uc    *Usecase
	repo  *fakeRepo
	mail  *fakeMail
	clock *fakeClock
	codes *fakeCodes
}

func newFixture(t *testing.T, exposeOTP bool) *fixture {
	t.Helper()

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	repo := newFakeRepo()
	mailer := &fakeMail{}
	clk := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	codes := &fakeCodes{next: []string{"123456", "654321", "111111"}}

	uc := New(Dependency{
		RepoDB:    repo,
		Validator: v,
		Config:    stubConfig{},
		Mail:      mailer,
		Bcrypt:    hash.NewBcrypt(bcrypt.MinCost, ""),
		Codes:     codes,
		OID:       uid.NewObjectID(),
		Clock:     clk,
		JWT:       fakeJWT{},
		ExposeOTP: exposeOTP,
	})

	return &fixture{uc: uc, repo: repo, mail: mailer, clock: clk, codes: codes}
}

// stubConfig returns zero values so the usecase falls back to its defaults.
type stubConfig struct{}

func (stubConfig) GetSecond(string) time.Duration { return 0 }
func (stubConfig) GetMinute(string) time.Duration { return 0 }
func (stubConfig) GetDay(string) time.Duration    { return 0 }
func (stubConfig) GetInt(string) int              { return 0 }
func (stubConfig) GetInt64(string) int64          { return 0 }
func (stubConfig) GetBool(string) bool            { return false }
func (stubConfig) GetString(string) string        { return "" }
func (stubConfig) GetBinary(string) []byte        { return nil }
func (stubConfig) GetArray(string) []string       { return nil }
func (stubConfig) Close() error                   { return nil }

func authErrMessage(t *testing.T, err error) string {
	t.Helper()

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	return gerr.Msg()
}

func TestSendOTP(t *testing.T) {
	t.Run("ValidationError", func(t *testing.T) {
		f := newFixture(t, false)

		_, err := f.uc.SendOTP(context.Background(), SendOTPInput{Email: ""})
		require.Error(t, err)

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, 400, gerr.StatusCode())
	})

	t.Run("NormalizesAndStores", func(t *testing.T) {
		f := newFixture(t, false)

		out, err := f.uc.SendOTP(context.Background(), SendOTPInput{Email: "  A@X.Com "})
		require.NoError(t, err)

		assert.Equal(t, "a@x.com", out.Email)
		assert.Equal(t, f.clock.Now().Add(10*time.Minute), out.ExpiresAt)
		assert.Empty(t, out.Code, "code must not leak unless exposed")

		require.Len(t, f.mail.sent, 1)
		assert.Equal(t, []string{"a@x.com"}, f.mail.sent[0].To)
		assert.Contains(t, f.mail.sent[0].HTMLBody, "123456")
	})

	t.Run("ExposeOTPEchoesCode", func(t *testing.T) {
		f := newFixture(t, true)

		out, err := f.uc.SendOTP(context.Background(), SendOTPInput{Email: "a@x.com"})
		require.NoError(t, err)
		assert.Equal(t, "123456", out.Code)
	})

	t.Run("SecondIssueOverwritesFirst", func(t *testing.T) {
		f := newFixture(t, true)

		_, err := f.uc.SendOTP(context.Background(), SendOTPInput{Email: "a@x.com"})
		require.NoError(t, err)
		_, err = f.uc.SendOTP(context.Background(), SendOTPInput{Email: "a@x.com"})
		require.NoError(t, err)

		unused := f.repo.unusedCodes("a@x.com")
		require.Len(t, unused, 1, "exactly one unused code per email")
		assert.Equal(t, "654321", unused[0].Code)

		// The overwritten first code no longer verifies.
		_, err = f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "a@x.com", OTP: "123456"})
		require.Error(t, err)
		assert.Equal(t, "Invalid or expired OTP", authErrMessage(t, err))
	})

	t.Run("MailFailurePropagates", func(t *testing.T) {
		f := newFixture(t, false)
		f.mail.err = errors.New("smtp refused")

		_, err := f.uc.SendOTP(context.Background(), SendOTPInput{Email: "a@x.com"})
		require.Error(t, err)

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, 500, gerr.StatusCode())
	})

	t.Run("MailNotConfigured", func(t *testing.T) {
		f := newFixture(t, false)
		f.mail.err = mail.ErrNotConfigured

		_, err := f.uc.SendOTP(context.Background(), SendOTPInput{Email: "a@x.com"})
		require.Error(t, err)
		assert.Equal(t, "Email service is not configured", authErrMessage(t, err))
	})
}

func TestVerifyOTP(t *testing.T) {
	t.Run("ConsumesExactlyOnce", func(t *testing.T) {
		f := newFixture(t, true)

		out, err := f.uc.SendOTP(context.Background(), SendOTPInput{Email: "a@x.com"})
		require.NoError(t, err)

		got, err := f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "a@x.com", OTP: out.Code})
		require.NoError(t, err)
		assert.True(t, got.Success)

		// Replay fails even before expiry.
		_, err = f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "a@x.com", OTP: out.Code})
		require.Error(t, err)
		assert.Equal(t, "Invalid or expired OTP", authErrMessage(t, err))
	})

	t.Run("RejectsAfterExpiry", func(t *testing.T) {
		f := newFixture(t, true)

		out, err := f.uc.SendOTP(context.Background(), SendOTPInput{Email: "a@x.com"})
		require.NoError(t, err)

		f.clock.Advance(10*time.Minute + time.Second)

		_, err = f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "a@x.com", OTP: out.Code})
		require.Error(t, err)
		assert.Equal(t, "Invalid or expired OTP", authErrMessage(t, err))
	})

	t.Run("UniformFailureMessage", func(t *testing.T) {
		f := newFixture(t, true)

		// never issued
		_, errNever := f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "a@x.com", OTP: "123456"})

		out, err := f.uc.SendOTP(context.Background(), SendOTPInput{Email: "a@x.com"})
		require.NoError(t, err)

		// wrong code
		_, errWrong := f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "a@x.com", OTP: "000000"})

		// already used
		_, err = f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "a@x.com", OTP: out.Code})
		require.NoError(t, err)
		_, errUsed := f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "a@x.com", OTP: out.Code})

		// expired
		out2, err := f.uc.SendOTP(context.Background(), SendOTPInput{Email: "a@x.com"})
		require.NoError(t, err)
		f.clock.Advance(11 * time.Minute)
		_, errExpired := f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "a@x.com", OTP: out2.Code})

		for _, e := range []error{errNever, errWrong, errUsed, errExpired} {
			require.Error(t, e)
			assert.Equal(t, "Invalid or expired OTP", authErrMessage(t, e))

			var gerr *goerror.Error
			require.ErrorAs(t, e, &gerr)
			assert.Equal(t, 401, gerr.StatusCode())
		}
	})

	t.Run("MarksExistingUserVerified", func(t *testing.T) {
		f := newFixture(t, true)

		require.NoError(t, f.repo.CreateUser(context.Background(), entity.User{
			ID:    "507f1f77bcf86cd799439011",
			Email: "a@x.com",
		}))

		out, err := f.uc.SendOTP(context.Background(), SendOTPInput{Email: "a@x.com"})
		require.NoError(t, err)

		_, err = f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "a@x.com", OTP: out.Code})
		require.NoError(t, err)

		u, err := f.repo.GetUserByEmail(context.Background(), "a@x.com")
		require.NoError(t, err)
		assert.True(t, u.Verified)
	})
}

func TestRegister(t *testing.T) {
	issue := func(t *testing.T, f *fixture, email string) string {
		t.Helper()
		out, err := f.uc.SendOTP(context.Background(), SendOTPInput{Email: email})
		require.NoError(t, err)
		return out.Code
	}

	t.Run("Success", func(t *testing.T) {
		f := newFixture(t, true)
		code := issue(t, f, "a@x.com")

		out, err := f.uc.Register(context.Background(), RegisterInput{
			Name:     "A",
			Email:    "A@X.com",
			Password: "secret1",
			OTP:      code,
		})
		require.NoError(t, err)

		assert.NotEmpty(t, out.User.ID)
		assert.Equal(t, "a@x.com", out.User.Email)
		assert.Equal(t, entity.RoleUser, out.User.Role)
		assert.True(t, out.User.Verified)
		assert.Equal(t, "token:"+out.User.ID+":user", out.Token)

		// The code was consumed by registration.
		_, err = f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "a@x.com", OTP: code})
		require.Error(t, err)
	})

	t.Run("PasswordTooShort", func(t *testing.T) {
		f := newFixture(t, true)
		code := issue(t, f, "a@x.com")

		_, err := f.uc.Register(context.Background(), RegisterInput{
			Name:     "A",
			Email:    "a@x.com",
			Password: "12345",
			OTP:      code,
		})
		require.Error(t, err)

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, 400, gerr.StatusCode())
	})

	t.Run("DuplicateEmailConflicts", func(t *testing.T) {
		f := newFixture(t, true)
		code := issue(t, f, "a@x.com")

		_, err := f.uc.Register(context.Background(), RegisterInput{
			Name: "A", Email: "a@x.com", Password: "secret1", OTP: code,
		})
		require.NoError(t, err)

		// Conflict regardless of OTP validity; the check runs before verify.
		code2 := issue(t, f, "a@x.com")
		_, err = f.uc.Register(context.Background(), RegisterInput{
			Name: "A", Email: "a@x.com", Password: "secret1", OTP: code2,
		})
		require.Error(t, err)

		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, 409, gerr.StatusCode())
		assert.Equal(t, "User already exists", gerr.Msg())

		// The conflicting attempt must not have burned the code.
		_, err = f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "a@x.com", OTP: code2})
		assert.NoError(t, err)
	})

	t.Run("BadOTPPropagates", func(t *testing.T) {
		f := newFixture(t, true)

		_, err := f.uc.Register(context.Background(), RegisterInput{
			Name: "A", Email: "a@x.com", Password: "secret1", OTP: "999999",
		})
		require.Error(t, err)
		assert.Equal(t, "Invalid or expired OTP", authErrMessage(t, err))
	})
}

func TestLogin(t *testing.T) {
	register := func(t *testing.T, f *fixture, email, password string) {
		t.Helper()
		out, err := f.uc.SendOTP(context.Background(), SendOTPInput{Email: email})
		require.NoError(t, err)
		_, err = f.uc.Register(context.Background(), RegisterInput{
			Name: "A", Email: email, Password: password, OTP: out.Code,
		})
		require.NoError(t, err)
	}

	t.Run("Success", func(t *testing.T) {
		f := newFixture(t, true)
		register(t, f, "a@x.com", "secret1")

		out, err := f.uc.Login(context.Background(), LoginInput{Email: " A@x.com ", Password: "secret1"})
		require.NoError(t, err)

		assert.Equal(t, "a@x.com", out.User.Email)
		assert.Empty(t, out.User.Password, "hash must not leave the usecase")
		assert.NotEmpty(t, out.Token)
	})

	t.Run("UniformFailureMessage", func(t *testing.T) {
		f := newFixture(t, true)
		register(t, f, "a@x.com", "secret1")

		_, errUnknown := f.uc.Login(context.Background(), LoginInput{Email: "b@x.com", Password: "secret1"})
		_, errWrongPw := f.uc.Login(context.Background(), LoginInput{Email: "a@x.com", Password: "wrong-one"})

		require.Error(t, errUnknown)
		require.Error(t, errWrongPw)
		assert.Equal(t, authErrMessage(t, errUnknown), authErrMessage(t, errWrongPw))
		assert.Equal(t, "Invalid credentials", authErrMessage(t, errUnknown))
	})
}

// Full journey from the first OTP to a token-bearing account.
func TestAuthScenario(t *testing.T) {
	f := newFixture(t, true)

	issued, err := f.uc.SendOTP(context.Background(), SendOTPInput{Email: "a@x.com"})
	require.NoError(t, err)
	require.Equal(t, "123456", issued.Code)

	verified, err := f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "a@x.com", OTP: "123456"})
	require.NoError(t, err)
	require.True(t, verified.Success)

	// The code was consumed by the standalone verify, so registration needs a
	// fresh one.
	issued, err = f.uc.SendOTP(context.Background(), SendOTPInput{Email: "a@x.com"})
	require.NoError(t, err)

	out, err := f.uc.Register(context.Background(), RegisterInput{
		Name: "A", Email: "a@x.com", Password: "secret1", OTP: issued.Code,
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	// The spent code cannot verify again.
	_, err = f.uc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "a@x.com", OTP: issued.Code})
	require.Error(t, err)
	assert.Equal(t, "Invalid or expired OTP", authErrMessage(t, err))
}
