package rest

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/phonekart/storefront/internal/catalog/domain"
	"github.com/phonekart/storefront/pkg/httpx"
)

// Client implements the catalog store's RemoteCatalog port.
type Client struct {
	http *httpx.Client
}

func New(http *httpx.Client) *Client {
	return &Client{http: http}
}

type productDTO struct {
	ProductID   string          `json:"productId"`
	Model       string          `json:"model"`
	Brand       string          `json:"brand"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int64           `json:"quantity"`
	Color       string          `json:"color"`
	Features    string          `json:"productFeatures"`
	Image       string          `json:"imageOfProduct"`
}

func (c *Client) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	var dtos []productDTO
	if err := c.http.Get(ctx, "/products", nil, &dtos); err != nil {
		return nil, err
	}
	products := make([]domain.Product, 0, len(dtos))
	for _, dto := range dtos {
		products = append(products, dto.toDomain())
	}
	return products, nil
}

func (c *Client) CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	var created productDTO
	if err := c.http.Post(ctx, "/products", fromDomain(p), &created); err != nil {
		return domain.Product{}, err
	}
	return created.toDomain(), nil
}

func (dto productDTO) toDomain() domain.Product {
	return domain.Product{
		ProductID:   dto.ProductID,
		Model:       dto.Model,
		Brand:       dto.Brand,
		Description: dto.Description,
		Price:       dto.Price,
		Quantity:    dto.Quantity,
		Color:       dto.Color,
		Features:    dto.Features,
		ImageRef:    dto.Image,
	}
}

func fromDomain(p domain.Product) productDTO {
	return productDTO{
		ProductID:   p.ProductID,
		Model:       p.Model,
		Brand:       p.Brand,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Color:       p.Color,
		Features:    p.Features,
		Image:       p.ImageRef,
	}
}
