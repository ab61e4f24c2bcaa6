package web

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/URTS404/UMKM-AWP-UAS/internal/middleware"
	"github.com/URTS404/UMKM-AWP-UAS/internal/models"
)

// LoginForm renders the login page
func (h *Handler) LoginForm(c *fiber.Ctx) error {
	st, err := h.State.Load(c)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if st.Auth.LoggedIn() {
		return c.Redirect("/")
	}
	return c.Render("login", h.pageData(st, fiber.Map{
		"Title": "Login",
		"Error": c.Query("error"),
	}))
}

// LoginSubmit checks credentials and stores the issued token in the
// visitor session
func (h *Handler) LoginSubmit(c *fiber.Ctx) error {
	st, err := h.State.Load(c)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	email := c.FormValue("email")
	password := c.FormValue("password")
	if email == "" || password == "" {
		return c.Redirect("/login?error=" + url.QueryEscape("Email and password are required"))
	}

	var user models.User
	if err := h.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Redirect("/login?error=" + url.QueryEscape("Invalid credentials"))
		}
		return fiber.ErrInternalServerError
	}
	if err := middleware.CheckPassword(password, user.Password); err != nil {
		return c.Redirect("/login?error=" + url.QueryEscape("Invalid credentials"))
	}

	token, err := middleware.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	st.Auth.Login(token, user.ID, user.Email, user.Name, user.Role)
	if err := st.Save(); err != nil {
		return fiber.ErrInternalServerError
	}

	if user.Role == models.RoleAdmin {
		return c.Redirect("/admin")
	}
	return c.Redirect("/")
}

// RegisterForm renders the registration page
func (h *Handler) RegisterForm(c *fiber.Ctx) error {
	st, err := h.State.Load(c)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if st.Auth.LoggedIn() {
		return c.Redirect("/")
	}
	return c.Render("register", h.pageData(st, fiber.Map{
		"Title": "Daftar Akun",
		"Error": c.Query("error"),
	}))
}

// RegisterSubmit creates a customer account and logs the visitor in
func (h *Handler) RegisterSubmit(c *fiber.Ctx) error {
	st, err := h.State.Load(c)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	email := c.FormValue("email")
	password := c.FormValue("password")
	name := c.FormValue("name")
	if email == "" || password == "" || name == "" {
		return c.Redirect("/register?error=" + url.QueryEscape("Email, password, and name are required"))
	}

	var existing models.User
	if err := h.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		return c.Redirect("/register?error=" + url.QueryEscape("User already exists with this email"))
	}

	hashed, err := middleware.HashPassword(password)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	user := models.User{
		Email:    email,
		Password: hashed,
		Name:     name,
		Role:     models.RoleCustomer,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		return fiber.ErrInternalServerError
	}

	token, err := middleware.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	st.Auth.Login(token, user.ID, user.Email, user.Name, user.Role)
	if err := st.Save(); err != nil {
		return fiber.ErrInternalServerError
	}
	return c.Redirect("/")
}

// Logout wipes the visitor session, cart included
func (h *Handler) Logout(c *fiber.Ctx) error {
	st, err := h.State.Load(c)
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if err := st.Destroy(); err != nil {
		return fiber.ErrInternalServerError
	}
	return c.Redirect("/")
}
