package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"vybe/internal/middleware"
	"vybe/internal/models"
	"vybe/internal/services"
)

// OutfitHandler handles HTTP requests for outfits.
type OutfitHandler struct {
	service  *services.OutfitService
	tokens   middleware.TokenValidator
	validate *validator.Validate
}

// NewOutfitHandler creates a new OutfitHandler.
func NewOutfitHandler(service *services.OutfitService, tokens middleware.TokenValidator) *OutfitHandler {
	return &OutfitHandler{
		service:  service,
		tokens:   tokens,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the outfit routes. Fixed paths come before /:id.
func (h *OutfitHandler) RegisterRoutes(router fiber.Router) {
	auth := middleware.AuthRequired(h.tokens)

	outfitRoutes := router.Group("/outfits")
	outfitRoutes.Post("/generate", auth, h.HandleGenerate)
	outfitRoutes.Post("/", auth, h.HandleCreate)
	outfitRoutes.Get("/my-outfits", auth, h.HandleMyOutfits)
	outfitRoutes.Get("/explore", h.HandleExplore)
	outfitRoutes.Get("/:id", h.HandleGet)
	outfitRoutes.Put("/:id", auth, h.HandleUpdate)
	outfitRoutes.Delete("/:id", auth, h.HandleDelete)
	outfitRoutes.Post("/:id/like", auth, h.HandleLike)
	outfitRoutes.Delete("/:id/like", auth, h.HandleUnlike)
}

// GenerateRequest asks for an outfit built around a product.
type GenerateRequest struct {
	ProductID string `json:"productId"`
	Style     string `json:"style"`
}

// HandleGenerate generates and stores an outfit for the caller.
func (h *OutfitHandler) HandleGenerate(c *fiber.Ctx) error {
	var req GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.ProductID == "" {
		return errorJSON(c, fiber.StatusBadRequest, "Product ID is required")
	}

	outfit, err := h.service.Generate(c.UserContext(), middleware.UserID(c), req.ProductID, req.Style)
	if err != nil {
		return serviceError(c, err, "generate outfit")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Outfit generated successfully",
		"outfit":  outfit,
	})
}

// CreateOutfitRequest is a hand-assembled outfit.
type CreateOutfitRequest struct {
	Name        string              `json:"name" validate:"required,max=255"`
	Description string              `json:"description" validate:"max=2000"`
	Style       string              `json:"style"`
	Items       []models.OutfitItem `json:"items" validate:"max=10,dive"`
	IsPublic    bool                `json:"isPublic"`
}

// HandleCreate stores an outfit assembled by the caller.
func (h *OutfitHandler) HandleCreate(c *fiber.Ctx) error {
	var req CreateOutfitRequest
	if ok, err := parseBody(c, h.validate, &req); !ok {
		return err
	}

	outfit, err := h.service.Create(c.UserContext(), middleware.UserID(c), services.CreateOutfitInput{
		Name:        req.Name,
		Description: req.Description,
		Style:       req.Style,
		Items:       req.Items,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		return serviceError(c, err, "create outfit")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Outfit created successfully",
		"outfit":  outfit,
	})
}

func outfitPage(c *fiber.Ctx, outfits []models.Outfit, p services.Pagination, total int64) error {
	if outfits == nil {
		outfits = []models.Outfit{}
	}
	return c.JSON(fiber.Map{
		"outfits":    outfits,
		"pagination": p.Meta(total),
	})
}

// HandleMyOutfits lists the caller's outfits.
func (h *OutfitHandler) HandleMyOutfits(c *fiber.Ctx) error {
	p := pagination(c)
	outfits, total, err := h.service.MyOutfits(c.UserContext(), middleware.UserID(c), c.Query("style"), p)
	if err != nil {
		return serviceError(c, err, "list my outfits")
	}
	return outfitPage(c, outfits, p, total)
}

// HandleExplore lists public outfits, most liked first.
func (h *OutfitHandler) HandleExplore(c *fiber.Ctx) error {
	p := pagination(c)
	outfits, total, err := h.service.Explore(c.UserContext(), c.Query("style"), p)
	if err != nil {
		return serviceError(c, err, "explore outfits")
	}
	return outfitPage(c, outfits, p, total)
}

// HandleGet returns one outfit.
func (h *OutfitHandler) HandleGet(c *fiber.Ctx) error {
	outfit, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return serviceError(c, err, "get outfit")
	}
	return c.JSON(fiber.Map{"outfit": outfit})
}

// UpdateOutfitRequest holds the editable fields; omitted fields are unchanged.
type UpdateOutfitRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	IsPublic    *bool   `json:"isPublic"`
}

// HandleUpdate edits one of the caller's outfits.
func (h *OutfitHandler) HandleUpdate(c *fiber.Ctx) error {
	var req UpdateOutfitRequest
	if ok, err := parseBody(c, h.validate, &req); !ok {
		return err
	}

	outfit, err := h.service.Update(c.UserContext(), middleware.UserID(c), c.Params("id"), services.UpdateOutfitInput{
		Name:        req.Name,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		return serviceError(c, err, "update outfit")
	}
	return c.JSON(fiber.Map{
		"message": "Outfit updated successfully",
		"outfit":  outfit,
	})
}

// HandleDelete removes one of the caller's outfits.
func (h *OutfitHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), middleware.UserID(c), c.Params("id")); err != nil {
		return serviceError(c, err, "delete outfit")
	}
	return c.JSON(fiber.Map{"message": "Outfit deleted successfully"})
}

// HandleLike records the caller's like.
func (h *OutfitHandler) HandleLike(c *fiber.Ctx) error {
	likes, err := h.service.Like(c.UserContext(), middleware.UserID(c), c.Params("id"))
	if err != nil {
		return serviceError(c, err, "like outfit")
	}
	return c.JSON(fiber.Map{
		"message": "Outfit liked successfully",
		"likes":   likes,
	})
}

// HandleUnlike withdraws the caller's like.
func (h *OutfitHandler) HandleUnlike(c *fiber.Ctx) error {
	likes, err := h.service.Unlike(c.UserContext(), middleware.UserID(c), c.Params("id"))
	if err != nil {
		return serviceError(c, err, "unlike outfit")
	}
	return c.JSON(fiber.Map{
		"message": "Outfit unliked successfully",
		"likes":   likes,
	})
}
