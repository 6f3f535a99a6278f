package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/Promisekel/rent-easy-gh/internal/usecase"
	"github.com/Promisekel/rent-easy-gh/pkg/errors"
	"github.com/Promisekel/rent-easy-gh/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type updateProfileRequest struct {
	FirstName    string `json:"first_name" validate:"omitempty,min=2"`
	LastName     string `json:"last_name" validate:"omitempty,min=2"`
	Phone        string `json:"phone" validate:"omitempty"`
	Bio          string `json:"bio" validate:"omitempty,max=500"`
	Location     string `json:"location" validate:"omitempty,max=100"`
	MomoNumber   string `json:"momo_number" validate:"omitempty"`
	BusinessName string `json:"business_name" validate:"omitempty,max=100"`
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	userID := c.Get("uid").(string)

	user, err := h.userUseCase.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID := c.Get("uid").(string)

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), userID, usecase.UpdateProfileInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Bio:          req.Bio,
		Location:     req.Location,
		MomoNumber:   req.MomoNumber,
		BusinessName: req.BusinessName,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}
