package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"vybe/internal/middleware"
	"vybe/internal/models"
	"vybe/internal/services"
)

// UserHandler handles HTTP requests for the caller's account and wishlist.
type UserHandler struct {
	service  *services.AccountService
	tokens   middleware.TokenValidator
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.AccountService, tokens middleware.TokenValidator) *UserHandler {
	return &UserHandler{
		service:  service,
		tokens:   tokens,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the user routes. All of them require a token.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users", middleware.AuthRequired(h.tokens))
	userRoutes.Get("/profile", h.HandleProfile)
	userRoutes.Get("/saved-items", h.HandleListSavedItems)
	userRoutes.Post("/saved-items", h.HandleSaveItem)
	userRoutes.Get("/saved-items/folders", h.HandleFolders)
	userRoutes.Delete("/saved-items/:id", h.HandleRemoveSavedItem)
	userRoutes.Get("/stats", h.HandleStats)
}

// HandleProfile returns the caller's account.
func (h *UserHandler) HandleProfile(c *fiber.Ctx) error {
	user, err := h.service.Profile(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return serviceError(c, err, "get profile")
	}
	return c.JSON(fiber.Map{"user": user})
}

// HandleListSavedItems lists the caller's saved items.
func (h *UserHandler) HandleListSavedItems(c *fiber.Ctx) error {
	p := pagination(c)
	items, total, err := h.service.SavedItems(c.UserContext(), middleware.UserID(c), c.Query("folder"), p)
	if err != nil {
		return serviceError(c, err, "list saved items")
	}
	if items == nil {
		items = []models.SavedItem{}
	}
	return c.JSON(fiber.Map{
		"savedItems": items,
		"pagination": p.Meta(total),
	})
}

// SaveItemRequest is the body of a save action.
type SaveItemRequest struct {
	ProductID string `json:"productId"`
	Folder    string `json:"folder" validate:"max=100"`
	Notes     string `json:"notes" validate:"max=2000"`
}

// HandleSaveItem adds a product to the caller's wishlist.
func (h *UserHandler) HandleSaveItem(c *fiber.Ctx) error {
	var req SaveItemRequest
	if ok, err := parseBody(c, h.validate, &req); !ok {
		return err
	}
	if req.ProductID == "" {
		return errorJSON(c, fiber.StatusBadRequest, "Product ID is required")
	}

	item, err := h.service.SaveItem(c.UserContext(), middleware.UserID(c), services.SaveItemInput{
		ProductID: req.ProductID,
		Folder:    req.Folder,
		Notes:     req.Notes,
	})
	if err != nil {
		return serviceError(c, err, "save item")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Product saved successfully",
		"savedItem": item,
	})
}

// HandleRemoveSavedItem removes one of the caller's saved items.
func (h *UserHandler) HandleRemoveSavedItem(c *fiber.Ctx) error {
	if err := h.service.RemoveItem(c.UserContext(), middleware.UserID(c), c.Params("id")); err != nil {
		return serviceError(c, err, "remove saved item")
	}
	return c.JSON(fiber.Map{"message": "Product removed from saved items"})
}

// HandleFolders lists the caller's folder labels with item counts.
func (h *UserHandler) HandleFolders(c *fiber.Ctx) error {
	folders, err := h.service.Folders(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return serviceError(c, err, "list folders")
	}
	names := make([]string, 0, len(folders))
	counts := make(map[string]int64, len(folders))
	for _, f := range folders {
		names = append(names, f.Folder)
		counts[f.Folder] = f.Count
	}
	return c.JSON(fiber.Map{
		"folders": names,
		"counts":  counts,
	})
}

// HandleStats reports the caller's activity counts.
func (h *UserHandler) HandleStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return serviceError(c, err, "get stats")
	}
	return c.JSON(stats)
}
