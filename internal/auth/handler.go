package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/fitlogapp/fitlog/internal/telemetry/tracing"
	"github.com/fitlogapp/fitlog/pkg"
)

// TokenHeader carries the session token on authenticated requests.
const TokenHeader = "X-FITLOG-TOKEN"

type Handler struct {
	authService *Service
}

func NewHandler(authService *Service) *Handler {
	return &Handler{
		authService: authService,
	}
}

func (handler *Handler) SetupRoutes(loginRouter *mux.Router) {
	loginRouter.
		HandleFunc("/login", handler.handleLogin).
		Methods("POST", "OPTIONS").Name("login")
	loginRouter.
		HandleFunc("/logout", handler.handleLogout).
		Methods("GET", "OPTIONS").Name("logout")
}

func (handler *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.login")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	type loginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	var loginReq loginRequest
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
			log.Errorf("login, unmarshal json params: %s", err)
			http.Error(w, "login failed", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			log.Errorf("login failed, parse form error: %s", err)
			http.Error(w, "parse form error", http.StatusInternalServerError)
			return
		}
		loginReq = loginRequest{
			Username: r.Form.Get("username"),
			Password: r.Form.Get("password"),
		}
	}

	if loginReq.Username == "" {
		http.Error(w, "error, username empty", http.StatusBadRequest)
		return
	}
	if loginReq.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}

	token, err := handler.authService.Login(ctx, loginReq.Username, loginReq.Password)
	if errors.Is(err, ErrInvalidCredentials) {
		log.Tracef("failed login attempt for user: %s", loginReq.Username)
		http.Error(w, "error, wrong credentials", http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("login failed, generate token error: %s", err)
		http.Error(w, "generate token error", http.StatusInternalServerError)
		return
	}

	log.Tracef("user %s logged in", loginReq.Username)
	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"token":"%s"}`, token))
}

func (handler *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.logout")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "GET, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	authToken := r.Header.Get(TokenHeader)
	if authToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if err := handler.authService.Logout(ctx, authToken); err != nil {
		log.Errorf("logout failed: %s", err)
		http.Error(w, "logout failed", http.StatusBadRequest)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}
