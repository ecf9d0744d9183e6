package handlers

import (
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"vybe/internal/middleware"
	"vybe/internal/models"
	"vybe/internal/repositories"
	"vybe/internal/services"
)

// ProductHandler handles HTTP requests for the catalog.
type ProductHandler struct {
	service  *services.ProductService
	tokens   middleware.TokenValidator
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, tokens middleware.TokenValidator) *ProductHandler {
	return &ProductHandler{
		service:  service,
		tokens:   tokens,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the product routes. Fixed paths come before /:id.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	optional := middleware.OptionalAuth(h.tokens)

	productRoutes := router.Group("/products")
	productRoutes.Get("/", optional, h.HandleListProducts)
	productRoutes.Get("/featured/new", h.HandleNewArrivals)
	productRoutes.Get("/featured/sale", h.HandleOnSale)
	productRoutes.Get("/category/:category", h.HandleProductsByCategory)
	productRoutes.Get("/filters/brands", h.HandleBrands)
	productRoutes.Get("/filters/price-range", h.HandlePriceRange)
	productRoutes.Get("/search/:query", h.HandleSearch)
	productRoutes.Get("/:id/affiliate-links", h.HandleAffiliateLinks)
	productRoutes.Post("/:id/reviews", middleware.AuthRequired(h.tokens), h.HandleCreateReview)
	productRoutes.Get("/:id", optional, h.HandleGetProduct)
}

func parsePrice(c *fiber.Ctx, key string) (*float64, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil, false
	}
	return &v, true
}

func productPage(c *fiber.Ctx, products []models.Product, p services.Pagination, total int64) error {
	if products == nil {
		products = []models.Product{}
	}
	return c.JSON(fiber.Map{
		"products":   products,
		"pagination": p.Meta(total),
	})
}

// HandleListProducts serves the filtered, sorted catalog listing.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	minPrice, ok := parsePrice(c, "minPrice")
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, "minPrice must be a non-negative number")
	}
	maxPrice, ok := parsePrice(c, "maxPrice")
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, "maxPrice must be a non-negative number")
	}

	sort, err := services.ParseSort(c.Query("sortBy"), c.Query("sortOrder"))
	if err != nil {
		return serviceError(c, err, "list products")
	}

	filter := repositories.ProductFilter{
		Category: models.Category(c.Query("category")),
		Gender:   models.Gender(c.Query("gender")),
		Brand:    c.Query("brand"),
		Search:   c.Query("search"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		IsNew:    c.Query("isNew") == "true",
		IsSale:   c.Query("isSale") == "true",
	}
	p := pagination(c)

	products, total, err := h.service.ListProducts(c.UserContext(), filter, sort, p, middleware.UserID(c))
	if err != nil {
		return serviceError(c, err, "list products")
	}
	return productPage(c, products, p, total)
}

// HandleGetProduct returns one product with its reviews.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	product, err := h.service.GetProduct(c.UserContext(), c.Params("id"), middleware.UserID(c))
	if err != nil {
		return serviceError(c, err, "get product")
	}
	return c.JSON(fiber.Map{"product": product})
}

// HandleNewArrivals returns products flagged new.
func (h *ProductHandler) HandleNewArrivals(c *fiber.Ctx) error {
	products, err := h.service.NewArrivals(c.UserContext(), c.QueryInt("limit", services.DefaultFeaturedSize))
	if err != nil {
		return serviceError(c, err, "list new products")
	}
	return c.JSON(fiber.Map{"products": nonNil(products)})
}

// HandleOnSale returns products flagged on sale.
func (h *ProductHandler) HandleOnSale(c *fiber.Ctx) error {
	products, err := h.service.OnSale(c.UserContext(), c.QueryInt("limit", services.DefaultFeaturedSize))
	if err != nil {
		return serviceError(c, err, "list sale products")
	}
	return c.JSON(fiber.Map{"products": nonNil(products)})
}

func nonNil(products []models.Product) []models.Product {
	if products == nil {
		return []models.Product{}
	}
	return products
}

// HandleProductsByCategory lists one category.
func (h *ProductHandler) HandleProductsByCategory(c *fiber.Ctx) error {
	p := pagination(c)
	products, total, err := h.service.ProductsByCategory(c.UserContext(), c.Params("category"), p)
	if err != nil {
		return serviceError(c, err, "list category")
	}
	return productPage(c, products, p, total)
}

// HandleBrands lists every brand in the catalog.
func (h *ProductHandler) HandleBrands(c *fiber.Ctx) error {
	brands, err := h.service.Brands(c.UserContext())
	if err != nil {
		return serviceError(c, err, "list brands")
	}
	return c.JSON(fiber.Map{"brands": brands})
}

// HandlePriceRange reports the catalog's price bounds.
func (h *ProductHandler) HandlePriceRange(c *fiber.Ctx) error {
	pr, err := h.service.PriceRange(c.UserContext(), c.Query("category"))
	if err != nil {
		return serviceError(c, err, "get price range")
	}
	return c.JSON(pr)
}

// HandleSearch runs a free-text search.
func (h *ProductHandler) HandleSearch(c *fiber.Ctx) error {
	query := c.Params("query")
	if unescaped, err := url.PathUnescape(query); err == nil {
		query = unescaped
	}
	p := pagination(c)
	products, total, err := h.service.Search(c.UserContext(), query, p)
	if err != nil {
		return serviceError(c, err, "search products")
	}
	return productPage(c, products, p, total)
}

// HandleAffiliateLinks returns a product's retailer links.
func (h *ProductHandler) HandleAffiliateLinks(c *fiber.Ctx) error {
	product, err := h.service.AffiliateLinks(c.UserContext(), c.Params("id"))
	if err != nil {
		return serviceError(c, err, "get affiliate links")
	}
	return c.JSON(fiber.Map{
		"productId":      product.ID,
		"productName":    product.Name,
		"affiliateLinks": product.Links(),
	})
}

// ReviewRequest is the body of a new product review.
type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

// HandleCreateReview records the caller's review of a product.
func (h *ProductHandler) HandleCreateReview(c *fiber.Ctx) error {
	var req ReviewRequest
	if ok, err := parseBody(c, h.validate, &req); !ok {
		return err
	}

	review, err := h.service.AddReview(c.UserContext(), middleware.UserID(c), c.Params("id"), req.Rating, req.Comment)
	if err != nil {
		return serviceError(c, err, "create review")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Review added successfully",
		"review":  review,
	})
}
