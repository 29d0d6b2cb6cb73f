package v1

import (
	"net/http"

	"dunkstore-backend/internal/domain"
	"dunkstore-backend/internal/usecase"
	"dunkstore-backend/pkg/logger"
	"dunkstore-backend/pkg/utils"
)

type AuthHandler struct {
	sessions *usecase.SessionUsecase
}

func NewAuthHandler(sessions *usecase.SessionUsecase) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerReq struct {
	Name      string  `json:"name" validate:"required,max=120"`
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required"`
	Phone     *string `json:"phone,omitempty"`
	BirthDate *string `json:"birthDate,omitempty"`
	Gender    *string `json:"gender,omitempty"`
}

type addressReq struct {
	Street       string  `json:"street" validate:"required"`
	Number       string  `json:"number" validate:"required"`
	Complement   *string `json:"complement,omitempty"`
	Neighborhood string  `json:"neighborhood" validate:"required"`
	City         string  `json:"city" validate:"required"`
	State        string  `json:"state" validate:"required,len=2"`
	ZipCode      string  `json:"zipCode" validate:"required"`
}

type updateProfileReq struct {
	Name      *string     `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Email     *string     `json:"email,omitempty" validate:"omitempty,email"`
	Phone     *string     `json:"phone,omitempty"`
	BirthDate *string     `json:"birthDate,omitempty"`
	Gender    *string     `json:"gender,omitempty"`
	Address   *addressReq `json:"address,omitempty"`
}

// Login accepts any non-empty credentials. Empty ones are rejected by the
// auth store itself so the error surfaces as 401 rather than a validation failure.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeRequestError(w, err)
		return
	}
	stores, ok := sessionStores(w, r, h.sessions)
	if !ok {
		return
	}

	res := <-stores.Auth.LoginAsync(r.Context(), req.Email, req.Password)
	if res.User == nil {
		writeDomainError(w, r, res.Err)
		return
	}

	logger.WithContext(r.Context()).Info().Str("email", res.User.Email).Msg("Shopper signed in")
	userResponse(w, r, res.User, res.Err)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeRequestError(w, err)
		return
	}
	stores, ok := sessionStores(w, r, h.sessions)
	if !ok {
		return
	}

	user, err := stores.Auth.Register(r.Context(), domain.RegisterInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
		BirthDate: req.BirthDate,
		Gender:    req.Gender,
	})
	if user == nil {
		writeDomainError(w, r, err)
		return
	}

	logger.WithContext(r.Context()).Info().Str("user_id", user.ID).Msg("Shopper registered")
	userResponse(w, r, user, err)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	stores, ok := sessionStores(w, r, h.sessions)
	if !ok {
		return
	}
	if err := stores.Auth.Logout(r.Context()); err != nil {
		logger.WithContext(r.Context()).Warn().Err(err).Msg("Signed out but session slot was not cleared")
	}
	utils.WriteJSON(w, http.StatusOK, domain.Response{Success: true, Message: "signed out"})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	stores, ok := sessionStores(w, r, h.sessions)
	if !ok {
		return
	}
	user := stores.Auth.CurrentUser()
	if user == nil {
		writeDomainError(w, r, domain.ErrNoSession)
		return
	}
	userResponse(w, r, user, nil)
}

func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileReq
	if err := decodeJSONBody(w, r, &req); err != nil {
		writeRequestError(w, err)
		return
	}
	stores, ok := sessionStores(w, r, h.sessions)
	if !ok {
		return
	}

	upd := domain.ProfileUpdate{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		BirthDate: req.BirthDate,
		Gender:    req.Gender,
	}
	if a := req.Address; a != nil {
		upd.Address = &domain.Address{
			Street:       a.Street,
			Number:       a.Number,
			Complement:   a.Complement,
			Neighborhood: a.Neighborhood,
			City:         a.City,
			State:        a.State,
			ZipCode:      a.ZipCode,
		}
	}

	user, err := stores.Auth.UpdateProfile(r.Context(), upd)
	if user == nil {
		writeDomainError(w, r, err)
		return
	}
	userResponse(w, r, user, err)
}

// userResponse reports the signed-in user. A non-nil persistErr means the
// session changed but the slot write failed.
func userResponse(w http.ResponseWriter, r *http.Request, user *domain.User, persistErr error) {
	stateResponse(w, r, map[string]any{
		"user":            user,
		"isAuthenticated": true,
	}, persistErr)
}
