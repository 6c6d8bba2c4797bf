package handler // handler contains user CRUD handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/libbook/seat-reservation/internal/model"
	"github.com/libbook/seat-reservation/internal/repository"
)

// UserHandler bundles the user store for the user endpoints.
type UserHandler struct {
	Users UserStore
}

// NewUserHandler constructs a UserHandler and panics if the store is nil.
func NewUserHandler(users UserStore) *UserHandler {
	if users == nil {
		panic("nil store passed to NewUserHandler")
	}
	return &UserHandler{Users: users}
}

// ListUsers handles GET /api/users and returns every user record
// verbatim, password included; the API has no redaction layer.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.Users.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if users == nil {
		users = []model.User{} // render an empty array rather than null
	}
	return c.JSON(http.StatusOK, users)
}

// CreateUser handles POST /api/users.  The payload must carry its own
// unique id; the record is persisted as supplied with no uniqueness
// pre-check beyond the store's key constraint.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var u model.User
	if err := c.Bind(&u); err != nil { // bind incoming JSON
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if u.ID == "" { // records are keyed by the caller-assigned id
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id is required"})
	}
	if err := h.Users.Upsert(c.Request().Context(), &u); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, u) // echo back the stored record
}

// UpdateUser handles PUT /api/users/:id.  Supplied fields are merged
// onto the stored record; omitted fields keep their current values.
// A missing id responds 200 with a null body, matching the original
// API contract that clients already depend on.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id := c.Param("id")
	var body struct { // pointer fields distinguish "absent" from zero values
		Name        *string `json:"name"`
		Email       *string `json:"email"`
		Password    *string `json:"password"`
		Role        *string `json:"role"`
		StudentID   *string `json:"studentId"`
		Department  *string `json:"department"`
		YearSection *string `json:"yearSection"`
		Mobile      *string `json:"mobile"`
		IsBlocked   *bool   `json:"isBlocked"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx := c.Request().Context()
	u, err := h.Users.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return c.JSON(http.StatusOK, nil) // null-like success on unknown id
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	if body.Name != nil {
		u.Name = *body.Name
	}
	if body.Email != nil {
		u.Email = *body.Email
	}
	if body.Password != nil {
		u.Password = *body.Password
	}
	if body.Role != nil {
		u.Role = *body.Role
	}
	if body.StudentID != nil {
		u.StudentID = *body.StudentID
	}
	if body.Department != nil {
		u.Department = *body.Department
	}
	if body.YearSection != nil {
		u.YearSection = *body.YearSection
	}
	if body.Mobile != nil {
		u.Mobile = *body.Mobile
	}
	if body.IsBlocked != nil {
		u.IsBlocked = *body.IsBlocked
	}

	if err := h.Users.Upsert(ctx, u); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, u)
}
