package handlers

import (
	"errors"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"vybe/internal/services"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// Sentinel errors the API reports to clients. An empty message means the
// error's own text is shown.
var errorMappings = []errorMapping{
	{services.ErrProductNotFound, fiber.StatusNotFound, "Product not found"},
	{services.ErrOutfitNotFound, fiber.StatusNotFound, "Outfit not found"},
	{services.ErrSavedItemNotFound, fiber.StatusNotFound, "Saved item not found"},
	{services.ErrUserNotFound, fiber.StatusNotFound, "User not found"},
	{services.ErrAlreadySaved, fiber.StatusConflict, "Product already saved"},
	{services.ErrAlreadyReviewed, fiber.StatusConflict, "You have already reviewed this product"},
	{services.ErrEmailTaken, fiber.StatusConflict, "Email already registered"},
	{services.ErrQuotaExceeded, fiber.StatusForbidden, "Daily outfit generation limit reached. Upgrade to Pro for unlimited generations."},
	{services.ErrInvalidCategory, fiber.StatusBadRequest, "Invalid category"},
	{services.ErrInvalidGender, fiber.StatusBadRequest, "Invalid gender"},
	{services.ErrInvalidSort, fiber.StatusBadRequest, ""},
	{services.ErrInvalidCredentials, fiber.StatusUnauthorized, "Invalid credentials"},
}

func errorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// serviceError renders err for the client. Anything unrecognised is logged
// and reported as a generic 500.
func serviceError(c *fiber.Ctx, err error, action string) error {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			msg := m.message
			if msg == "" {
				msg = err.Error()
			}
			return errorJSON(c, m.status, msg)
		}
	}

	slog.Error(action+" failed",
		slog.String("method", c.Method()),
		slog.String("path", c.Path()),
		slog.String("error", err.Error()),
	)
	return errorJSON(c, fiber.StatusInternalServerError, "Server error")
}

// parseBody decodes and validates a JSON body. On failure the 400 response
// has already been written and the returned bool is false.
func parseBody(c *fiber.Ctx, validate *validator.Validate, dst interface{}) (bool, error) {
	if err := c.BodyParser(dst); err != nil {
		return false, errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return false, errorJSON(c, fiber.StatusBadRequest, "Invalid request body")
		}
		fields := make(map[string]string, len(validationErrors))
		for _, e := range validationErrors {
			fields[e.Field()] = e.Tag()
		}
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": fields,
		})
	}
	return true, nil
}

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func pagination(c *fiber.Ctx) services.Pagination {
	return services.NewPagination(c.QueryInt("page", 1), c.QueryInt("limit", services.DefaultPageSize))
}
