package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/yusufkecer/jarosmart-backend/internal/auth"
	"github.com/yusufkecer/jarosmart-backend/internal/domain"
)

type AccountStore interface {
	Create(ctx context.Context, id, email, passwordHash string) error
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
}

type AuthHandler struct {
	issuer *auth.Issuer
	repo   AccountStore
	logger *zap.Logger
}

func NewAuthHandler(issuer *auth.Issuer, repo AccountStore, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{issuer: issuer, repo: repo, logger: logger}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, invalid("invalid request body"))
		return
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, invalid("email and password are required"))
		return
	}
	if !validEmail(email) {
		writeError(w, http.StatusBadRequest, invalid("invalid email format"))
		return
	}
	if len(req.Password) < 6 {
		writeError(w, http.StatusBadRequest, invalid("password must be at least 6 characters"))
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword(
		[]byte(req.Password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		writeError(w, http.StatusInternalServerError, errors.New("failed to hash password"))
		return
	}

	id := uuid.NewString()
	if err := h.repo.Create(r.Context(), id, email, string(passwordHash)); err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			writeError(w, http.StatusConflict, &domain.RemoteError{Code: "1062", Message: "email already exists", Cause: err})
			return
		}
		h.logger.Error("failed to create account", zap.String("email", email), zap.Error(err))
		writeError(w, http.StatusInternalServerError, errors.New("failed to create account"))
		return
	}

	h.respondWithToken(w, http.StatusCreated, auth.Session{UserID: id, Email: email})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, invalid("invalid request body"))
		return
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, invalid("email and password are required"))
		return
	}
	if !validEmail(email) {
		writeError(w, http.StatusBadRequest, invalid("invalid email format"))
		return
	}

	account, err := h.repo.GetByEmail(r.Context(), email)
	if err != nil {
		h.logger.Error("failed to look up account", zap.String("email", email), zap.Error(err))
		writeError(w, http.StatusInternalServerError, errors.New("failed to login"))
		return
	}
	if account == nil {
		writeError(w, http.StatusUnauthorized, domain.ErrUnauthenticated)
		return
	}

	err = bcrypt.CompareHashAndPassword(
		[]byte(account.PasswordHash),
		[]byte(req.Password),
	)
	if err != nil {
		writeError(w, http.StatusUnauthorized, domain.ErrUnauthenticated)
		return
	}

	h.respondWithToken(w, http.StatusOK, auth.Session{UserID: account.ID, Email: account.Email})
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, status int, s auth.Session) {
	token, err := h.issuer.Issue(s)
	if err != nil {
		writeError(w, http.StatusInternalServerError, errors.New("failed to generate token"))
		return
	}
	writeResult(w, status, domain.Ok(domain.TokenResponse{Token: token, UserID: s.UserID}))
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && strings.Contains(email[at:], ".")
}
