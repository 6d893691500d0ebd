package devapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Kaleth2216/FadeApp/internal/audit"
	"github.com/Kaleth2216/FadeApp/internal/httperr"
	"github.com/Kaleth2216/FadeApp/internal/models"
	"github.com/Kaleth2216/FadeApp/internal/validators"
)

type AuthHandler struct {
	store  *Store
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	audit  *audit.Dispatcher
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	acc, ok := h.store.account(validators.NormalizeEmail(req.Email))
	if !ok {
		unauthorized(c, "invalid_credentials", "Credenciales inválidas.")
		return
	}
	if err := bcrypt.CompareHashAndPassword(acc.Hash, []byte(req.Password)); err != nil {
		unauthorized(c, "invalid_credentials", "Credenciales inválidas.")
		return
	}

	token, err := h.generateToken(acc)
	if err != nil {
		internal(c, "failed_to_generate_token", "No se pudo iniciar sesión.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID: audit.ID(acc.UserID),
		Action: "api_login",
		Entity: "account",
		Metadata: map[string]any{
			"role": acc.Role,
		},
	})

	c.JSON(http.StatusOK, models.LoginResponse{
		Token:  token,
		Role:   acc.Role,
		UserID: acc.UserID,
		Email:  acc.Email,
	})
}

func (h *AuthHandler) RegisterClient(c *gin.Context) {
	var req models.RegisterClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_request", "Datos inválidos.")
		return
	}
	req.Email = validators.NormalizeEmail(req.Email)
	if !h.valid(c, req) {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		internal(c, "failed_to_hash_password", "No se pudo completar el registro.")
		return
	}

	client, err := h.store.CreateClient(models.Client{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		City:      req.City,
	}, hash)
	if errors.Is(err, ErrEmailInUse) {
		writeErr(c, http.StatusConflict, "email_in_use", "El correo ya está registrado.")
		return
	}
	if err != nil {
		internal(c, "failed_to_create_client", "No se pudo completar el registro.")
		return
	}

	h.audit.Dispatch(audit.Event{UserID: audit.ID(client.ID), Action: "client_registered", Entity: "client", EntityID: audit.ID(client.ID)})
	c.JSON(http.StatusCreated, client)
}

func (h *AuthHandler) RegisterBarbershop(c *gin.Context) {
	var req models.RegisterBarbershopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid_request", "Datos inválidos.")
		return
	}
	req.Email = validators.NormalizeEmail(req.Email)
	if !h.valid(c, req) {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		internal(c, "failed_to_hash_password", "No se pudo completar el registro.")
		return
	}

	shop, err := h.store.CreateBarbershop(models.Barbershop{
		Name:        req.Name,
		Address:     req.Address,
		City:        req.City,
		Email:       req.Email,
		OpeningTime: "09:00:00",
		ClosingTime: "19:00:00",
	}, hash)
	if errors.Is(err, ErrEmailInUse) {
		writeErr(c, http.StatusConflict, "email_in_use", "El correo ya está registrado.")
		return
	}
	if err != nil {
		internal(c, "failed_to_create_barbershop", "No se pudo completar el registro.")
		return
	}

	h.audit.Dispatch(audit.Event{UserID: audit.ID(shop.ID), Action: "barbershop_registered", Entity: "barbershop", EntityID: audit.ID(shop.ID)})
	c.JSON(http.StatusCreated, shop)
}

func (h *AuthHandler) valid(c *gin.Context, req any) bool {
	err := validators.Struct(req)
	if err == nil {
		return true
	}
	var ve *httperr.ValidationError
	if errors.As(err, &ve) {
		badRequest(c, ve.Code, ve.Message)
		return false
	}
	badRequest(c, "invalid_request", "Datos inválidos.")
	return false
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(acc account) (string, error) {
	now := h.now()
	claims := jwt.MapClaims{
		"sub":  acc.UserID,
		"role": acc.Role,
		"exp":  now.Add(h.ttl).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.secret)
}
