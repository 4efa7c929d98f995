package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-panel/internal/application/dto"
	"github.com/jhoicas/inventario-panel/internal/application/store"
	"github.com/jhoicas/inventario-panel/internal/domain"
	"github.com/jhoicas/inventario-panel/internal/domain/entity"
)

// respondError mapea un error de dominio al código HTTP y cuerpo de error de
// la API. Ningún fallo es fatal: la respuesta siempre es un mensaje corto y
// el panel sigue operable.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrDeleteRejected):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "REMOTE_REJECTED", Message: err.Error()})
	case errors.Is(err, domain.ErrRemote), errors.Is(err, domain.ErrRemoteStatus), errors.Is(err, domain.ErrRemoteBody):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "REMOTE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func toProductResponse(p entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ProductID:   p.ProductID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Quantity:    p.Quantity,
	}
}

func toProductList(products []entity.Product) dto.ProductListResponse {
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, toProductResponse(p))
	}
	return dto.ProductListResponse{Items: items, Total: len(items)}
}

func toChartResponse(points []store.ChartPoint) []dto.ChartPointResponse {
	out := make([]dto.ChartPointResponse, 0, len(points))
	for _, pt := range points {
		out = append(out, dto.ChartPointResponse{Label: pt.Label, Value: pt.Value, Color: pt.Color})
	}
	return out
}

func toUserResponse(u entity.User) dto.UserResponse {
	return dto.UserResponse{UserID: u.UserID, Username: u.Username, Password: u.Password}
}

func toUserList(users []entity.User) dto.UserListResponse {
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, toUserResponse(u))
	}
	return dto.UserListResponse{Items: items, Total: len(items)}
}
