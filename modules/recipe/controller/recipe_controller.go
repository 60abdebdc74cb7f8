package controller

import (
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/controller"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/errors"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/core/params"
	"github.com/Zeel-InventIndia/KMS-On2cook-sub000/modules/recipe/service"

	"github.com/labstack/echo/v4"
)

type RecipeController struct {
	service service.RecipeService
	uploads service.UploadService
	controller.BaseController
}

func NewRecipeController(svc service.RecipeService, uploads service.UploadService) *RecipeController {
	return &RecipeController{
		service:        svc,
		uploads:        uploads,
		BaseController: controller.NewBaseController(),
	}
}

// List returns the recipe catalog
// @Summary List recipes
// @Tags Recipe
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Name or category search"
// @Success 200 {object} map[string]interface{}
// @Router /private/recipes [get]
func (c *RecipeController) List(ctx echo.Context) error {
	queryParams := params.NewQueryParams(ctx)
	page, appErr := c.service.List(ctx.Request().Context(), *queryParams)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, page, "Recipes retrieved successfully")
}

// UploadMedia stores demo media files and returns a shareable link
// @Summary Upload demo media
// @Tags Recipe
// @Security BearerAuth
// @Accept mpfd
// @Produce json
// @Param folder formData string true "Target folder name"
// @Param files formData file true "Media files"
// @Success 200 {object} map[string]interface{}
// @Router /private/recipes/media [post]
func (c *RecipeController) UploadMedia(ctx echo.Context) error {
	folder := ctx.FormValue("folder")
	if folder == "" {
		return c.BadRequest(errors.ErrInvalidInput, "folder is required")
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid multipart form")
	}
	files := form.File["files"]

	link, appErr := c.uploads.UploadMedia(ctx.Request().Context(), folder, files)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, map[string]string{"link": link}, "Media uploaded successfully")
}
