package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"lazycook/internal/delivery/http/response"
	"lazycook/internal/domain/entity"
	"lazycook/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// RecipeHandler holds dependencies for recipe bookkeeping handlers.
type RecipeHandler struct {
	uc     usecase.RecipeUsecase
	logger *slog.Logger
}

// NewRecipeHandler is the constructor for RecipeHandler, injected by Fx.
func NewRecipeHandler(uc usecase.RecipeUsecase, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{
		uc:     uc,
		logger: logger,
	}
}

type createAuthorRequest struct {
	Name string `json:"name" validate:"required"`
}

type createRecipeRequest struct {
	Name     string    `json:"name" validate:"required"`
	AuthorID uuid.UUID `json:"author_id" validate:"required"`
}

type createIngredientRequest struct {
	Name string `json:"name" validate:"required"`
	Unit string `json:"unit" validate:"required"`
}

type addIngredientRequest struct {
	IngredientID uuid.UUID       `json:"ingredient_id" validate:"required"`
	Quantity     decimal.Decimal `json:"quantity" validate:"required"`
}

type authorResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type recipeResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	AuthorID  uuid.UUID `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

type ingredientResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Unit string    `json:"unit"`
}

type recipeIngredientResponse struct {
	IngredientID uuid.UUID       `json:"ingredient_id"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// CreateAuthor handles the author creation request.
func (h *RecipeHandler) CreateAuthor(c echo.Context) error {
	var req createAuthorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid author input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	author, err := h.uc.CreateAuthor(c.Request().Context(), req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAuthorResponse(author), "Verfasser angelegt")
}

// ListAuthors handles the author listing request.
func (h *RecipeHandler) ListAuthors(c echo.Context) error {
	authors, err := h.uc.ListAuthors(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]authorResponse, 0, len(authors))
	for _, author := range authors {
		out = append(out, toAuthorResponse(author))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// DeleteAuthor handles the author deletion request.
func (h *RecipeHandler) DeleteAuthor(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid author id")
	}

	if err := h.uc.DeleteAuthor(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Verfasser gelöscht")
}

// CreateRecipe handles the recipe creation request.
func (h *RecipeHandler) CreateRecipe(c echo.Context) error {
	var req createRecipeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	recipe, err := h.uc.CreateRecipe(c.Request().Context(), &usecase.CreateRecipeInput{
		Name:     req.Name,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toRecipeResponse(recipe), "Rezept angelegt")
}

// ListRecipes handles the recipe listing request.
func (h *RecipeHandler) ListRecipes(c echo.Context) error {
	recipes, err := h.uc.ListRecipes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]recipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		out = append(out, toRecipeResponse(recipe))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// DeleteRecipe handles the recipe deletion request.
func (h *RecipeHandler) DeleteRecipe(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid recipe id")
	}

	if err := h.uc.DeleteRecipe(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Rezept gelöscht")
}

// CreateIngredient handles the ingredient creation request.
func (h *RecipeHandler) CreateIngredient(c echo.Context) error {
	var req createIngredientRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ingredient input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ingredient, err := h.uc.CreateIngredient(c.Request().Context(), &usecase.CreateIngredientInput{
		Name: req.Name,
		Unit: req.Unit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toIngredientResponse(ingredient), "Zutat angelegt")
}

// ListIngredients handles the ingredient listing request.
func (h *RecipeHandler) ListIngredients(c echo.Context) error {
	ingredients, err := h.uc.ListIngredients(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]ingredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		out = append(out, toIngredientResponse(ingredient))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// DeleteIngredient handles the ingredient deletion request.
func (h *RecipeHandler) DeleteIngredient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid ingredient id")
	}

	if err := h.uc.DeleteIngredient(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Zutat gelöscht")
}

// AddIngredient handles linking an ingredient to a recipe.
func (h *RecipeHandler) AddIngredient(c echo.Context) error {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid recipe id")
	}

	var req addIngredientRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ingredient link input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err = h.uc.AddIngredient(c.Request().Context(), &usecase.AddIngredientInput{
		RecipeID:     recipeID,
		IngredientID: req.IngredientID,
		Quantity:     req.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Zutat dem Rezept zugeordnet")
}

// RemoveIngredient handles unlinking an ingredient from a recipe.
func (h *RecipeHandler) RemoveIngredient(c echo.Context) error {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid recipe id")
	}
	ingredientID, err := uuid.Parse(c.Param("ingredientID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid ingredient id")
	}

	if err := h.uc.RemoveIngredient(c.Request().Context(), recipeID, ingredientID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Zutat vom Rezept entfernt")
}

// ListRecipeIngredients handles listing the ingredients of a recipe.
func (h *RecipeHandler) ListRecipeIngredients(c echo.Context) error {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid recipe id")
	}

	links, err := h.uc.RecipeIngredients(c.Request().Context(), recipeID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]recipeIngredientResponse, 0, len(links))
	for _, link := range links {
		out = append(out, recipeIngredientResponse{
			IngredientID: link.IngredientID,
			Quantity:     link.Quantity,
		})
	}

	return response.Success(c, http.StatusOK, out, "")
}

// SearchRecipes handles the recipe search request.
func (h *RecipeHandler) SearchRecipes(c echo.Context) error {
	if name := c.QueryParam("name"); name != "" {
		recipe, err := h.uc.SearchByName(c.Request().Context(), name)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, toRecipeResponse(recipe), "")
	}

	persons := 1
	if p := c.QueryParam("persons"); p != "" {
		parsed, err := strconv.Atoi(p)
		if err != nil || parsed < 1 {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid persons count")
		}
		persons = parsed
	}

	recipes, err := h.uc.SearchByIngredients(c.Request().Context(), persons, c.QueryParams()["ingredient"])
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]recipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		out = append(out, toRecipeResponse(recipe))
	}

	return response.Success(c, http.StatusOK, out, "")
}

func toAuthorResponse(author *entity.Author) authorResponse {
	return authorResponse{ID: author.ID, Name: author.Name, CreatedAt: author.CreatedAt}
}

func toRecipeResponse(recipe *entity.Recipe) recipeResponse {
	return recipeResponse{
		ID:        recipe.ID,
		Name:      recipe.Name,
		AuthorID:  recipe.AuthorID,
		CreatedAt: recipe.CreatedAt,
	}
}

func toIngredientResponse(ingredient *entity.Ingredient) ingredientResponse {
	return ingredientResponse{ID: ingredient.ID, Name: ingredient.Name, Unit: ingredient.Unit}
}
