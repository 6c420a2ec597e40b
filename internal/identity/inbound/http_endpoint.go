package inbound

import (
	"github.com/creatorconnect/server/internal/identity/usecase"
	"github.com/creatorconnect/server/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the OTP and authentication workflows.
type HTTPEndpoint struct {
	uc uc
}

// SendOTP issues a one-time code and emails it to the requester.
// @Summary Send OTP
// @Description Issues a fresh one-time code for the email, replacing any unused code, and dispatches it by email.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body SendOTPRequest true "Send OTP payload"
// @Success 200 {object} router.successResponse{data=SendOTPResponse} "OTP issued"
// @Failure 400 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/auth/send-otp [post]
func (h *HTTPEndpoint) SendOTP(r *router.Request) (any, error) {
	var req SendOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.SendOTP(r.Context(), usecase.SendOTPInput{Email: req.Email})
	if err != nil {
		return nil, err
	}

	return SendOTPResponse{
		Email:     resp.Email,
		ExpiresAt: resp.ExpiresAt,
		OTP:       resp.Code,
	}, nil
}

// VerifyOTP consumes a one-time code.
// @Summary Verify OTP
// @Description Verifies and consumes the one-time code for the email. A consumed code cannot be verified again.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body VerifyOTPRequest true "Verify OTP payload"
// @Success 200 {object} router.successResponse{data=VerifyOTPResponse} "OTP verified"
// @Failure 400 {object} router.errorResponse "Validation error"
// @Failure 401 {object} router.errorResponse "Invalid or expired OTP"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/auth/verify-otp [post]
func (h *HTTPEndpoint) VerifyOTP(r *router.Request) (any, error) {
	var req VerifyOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.VerifyOTP(r.Context(), usecase.VerifyOTPInput{
		Email: req.Email,
		OTP:   req.OTP,
	})
	if err != nil {
		return nil, err
	}

	return VerifyOTPResponse{Success: resp.Success}, nil
}

// Register creates a verified account from a consumable OTP.
// @Summary Register user
// @Description Registers a new account. The email must be unused and the OTP must be valid; the account is created already verified.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Register payload"
// @Success 201 {object} router.successResponse{data=RegisterResponse} "User registered"
// @Failure 400 {object} router.errorResponse "Validation error"
// @Failure 401 {object} router.errorResponse "Invalid or expired OTP"
// @Failure 409 {object} router.errorResponse "User already exists"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/auth/register [post]
func (h *HTTPEndpoint) Register(r *router.Request) (any, error) {
	var req RegisterRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Register(r.Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		OTP:      req.OTP,
	})
	if err != nil {
		return nil, err
	}

	return RegisterResponse{
		User:  toUserResponse(resp.User),
		Token: resp.Token,
	}, nil
}

// Login authenticates an account and issues a token.
// @Summary Login
// @Description Authenticates by email and password and returns a signed token valid for seven days.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login payload"
// @Success 200 {object} router.successResponse{data=LoginResponse} "Authenticated"
// @Failure 400 {object} router.errorResponse "Validation error"
// @Failure 401 {object} router.errorResponse "Invalid credentials"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/auth/login [post]
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return LoginResponse{
		User:  toUserResponse(resp.User),
		Token: resp.Token,
	}, nil
}
