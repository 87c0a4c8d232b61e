package handler

import (
	"net/http"

	"pinboard/internal/auth"
	"pinboard/internal/middleware"
	"pinboard/internal/model"
	"pinboard/internal/repository"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type UserHandler struct {
	repo          repository.UserRepositoryInterface
	tokens        *auth.TokenService
	secureCookies bool
}

func NewUserHandler(repo repository.UserRepositoryInterface, tokens *auth.TokenService, secureCookies bool) *UserHandler {
	return &UserHandler{repo: repo, tokens: tokens, secureCookies: secureCookies}
}

type RegisterRequest struct {
	Name     string `form:"name" binding:"required,min=2"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
	Continue string `form:"continue"`
}

func (h *UserHandler) LoginForm(c *gin.Context) {
	h.renderLogin(c, http.StatusOK, auth.SafeRedirect(c.Query("continue")), "", "")
}

func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderLogin(c, http.StatusBadRequest, auth.SafeRedirect(req.Continue), req.Email, "Invalid input")
		return
	}
	dest := auth.SafeRedirect(req.Continue)

	user, err := h.repo.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		storeFailure(c, "failed to look up user", err)
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)) != nil {
		h.renderLogin(c, http.StatusUnauthorized, dest, req.Email, "Invalid credentials")
		return
	}

	if err := h.startSession(c, user); err != nil {
		storeFailure(c, "failed to sign session", err)
		return
	}
	redirect(c, dest)
}

func (h *UserHandler) RegisterForm(c *gin.Context) {
	h.renderRegister(c, http.StatusOK, RegisterRequest{}, "")
}

func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderRegister(c, http.StatusBadRequest, req, "Invalid input")
		return
	}

	existing, err := h.repo.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		storeFailure(c, "failed to look up user", err)
		return
	}
	if existing != nil {
		h.renderRegister(c, http.StatusConflict, req, "User with this email already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		storeFailure(c, "failed to hash password", err)
		return
	}

	user := &model.User{
		Email:          req.Email,
		Name:           req.Name,
		HashedPassword: string(hash),
	}
	if err := h.repo.Create(c.Request.Context(), user); err != nil {
		storeFailure(c, "failed to create user", err)
		return
	}

	if err := h.startSession(c, user); err != nil {
		storeFailure(c, "failed to sign session", err)
		return
	}
	redirect(c, "/")
}

func (h *UserHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, "", -1, "/", "", h.secureCookies, true)
	redirect(c, auth.SafeRedirect(c.Query("continue")))
}

func (h *UserHandler) startSession(c *gin.Context, user *model.User) error {
	token, err := h.tokens.GenerateToken(user)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, token, int(h.tokens.TTL().Seconds()), "/", "", h.secureCookies, true)
	return nil
}

func (h *UserHandler) renderLogin(c *gin.Context, status int, dest, email, errMsg string) {
	v := view(c, middleware.Caller(c), "Log in")
	v["continue"] = dest
	v["email"] = email
	v["error"] = errMsg
	c.HTML(status, "login.html", v)
}

func (h *UserHandler) renderRegister(c *gin.Context, status int, req RegisterRequest, errMsg string) {
	v := view(c, middleware.Caller(c), "Register")
	v["name"] = req.Name
	v["email"] = req.Email
	v["error"] = errMsg
	c.HTML(status, "register.html", v)
}
