package rest

import (
	"context"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/phonekart/storefront/internal/cart/domain"
	"github.com/phonekart/storefront/pkg/httpx"
)

// Client implements the cart store's RemoteCart port over the storefront
// API. Loading a cart returns the full line list; adding returns the single
// updated line.
type Client struct {
	http *httpx.Client
}

func New(http *httpx.Client) *Client {
	return &Client{http: http}
}

type lineItemDTO struct {
	ProductID string          `json:"productId"`
	Model     string          `json:"model"`
	Brand     string          `json:"brand"`
	Quantity  int64           `json:"itemQuantity"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"imageOfProduct"`
}

type checkoutRequest struct {
	UserID   string        `json:"userId"`
	UserRole string        `json:"userRole"`
	Products []lineItemDTO `json:"products"`
}

func (c *Client) FetchCart(ctx context.Context, userID string) ([]domain.LineItem, error) {
	var dtos []lineItemDTO
	if err := c.http.Get(ctx, "/cart/"+url.PathEscape(userID), nil, &dtos); err != nil {
		return nil, err
	}
	items := make([]domain.LineItem, 0, len(dtos))
	for _, dto := range dtos {
		items = append(items, dto.toDomain())
	}
	return items, nil
}

func (c *Client) AddItem(ctx context.Context, userID string, item domain.LineItem) (domain.LineItem, error) {
	var confirmed lineItemDTO
	if err := c.http.Post(ctx, "/cart/addtocart/"+url.PathEscape(userID), fromDomain(item), &confirmed); err != nil {
		return domain.LineItem{}, err
	}
	return confirmed.toDomain(), nil
}

func (c *Client) RemoveItem(ctx context.Context, userID, productID string) error {
	query := url.Values{}
	query.Set("userId", userID)
	query.Set("productId", productID)
	return c.http.Delete(ctx, "/cart/remove", query)
}

func (c *Client) Checkout(ctx context.Context, userID string, items []domain.LineItem) error {
	req := checkoutRequest{
		UserID:   userID,
		UserRole: "CUSTOMER",
		Products: make([]lineItemDTO, 0, len(items)),
	}
	for _, item := range items {
		req.Products = append(req.Products, fromDomain(item))
	}
	return c.http.Put(ctx, "/cart/checkout/"+url.PathEscape(userID), req, nil)
}

func (dto lineItemDTO) toDomain() domain.LineItem {
	return domain.LineItem{
		ProductID: dto.ProductID,
		Model:     dto.Model,
		Brand:     dto.Brand,
		ImageRef:  dto.Image,
		UnitPrice: dto.Price,
		Quantity:  dto.Quantity,
	}
}

func fromDomain(item domain.LineItem) lineItemDTO {
	return lineItemDTO{
		ProductID: item.ProductID,
		Model:     item.Model,
		Brand:     item.Brand,
		Quantity:  item.Quantity,
		Price:     item.UnitPrice,
		Image:     item.ImageRef,
	}
}
