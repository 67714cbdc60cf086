package account

import (
	"context"
	"time"

	"github.com/phonekart/storefront/internal/session"
	"github.com/phonekart/storefront/pkg/httpx"
)

// Client talks to the auth and registration endpoints. Server-side field
// errors come back inside httpx.ServerError.Fields, in the same shape the
// local validators produce.
type Client struct {
	http *httpx.Client
}

func NewClient(http *httpx.Client) *Client {
	return &Client{http: http}
}

type loginRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"userPassword"`
}

type loginResponse struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Role     string `json:"userRole"`
}

// Login validates the credentials locally, then exchanges them for a session
// record. LastLogin is stamped client-side.
func (c *Client) Login(ctx context.Context, creds Credentials) (session.Info, error) {
	if err := creds.Validate(); err != nil {
		return session.Info{}, err
	}

	var resp loginResponse
	err := c.http.Post(ctx, "/user/login", loginRequest{UserID: creds.UserID, Password: creds.Password}, &resp)
	if err != nil {
		return session.Info{}, err
	}

	return session.Info{
		UserID:    resp.UserID,
		UserName:  resp.UserName,
		Role:      session.ParseRole(resp.Role),
		LastLogin: time.Now(),
	}, nil
}

type registrationRequest struct {
	UserID          string `json:"userId"`
	UserName        string `json:"userName"`
	Password        string `json:"userPassword"`
	ConfirmPassword string `json:"userConfirmPassword"`
	Email           string `json:"userEmail"`
	Phone           string `json:"userNumber"`
	Address         string `json:"userAddress"`
	Pincode         string `json:"userPincode"`
	PANNumber       string `json:"userPanNumber"`
	GSTNumber       string `json:"userGstNumber,omitempty"`
	Role            string `json:"userRole"`
}

// Register validates the form locally and submits it.
func (c *Client) Register(ctx context.Context, form RegistrationForm) error {
	if err := form.Validate(); err != nil {
		return err
	}

	role := form.Role
	if role == session.RoleNone {
		role = session.RoleCustomer
	}

	req := registrationRequest{
		UserID:          form.UserID,
		UserName:        form.UserName,
		Password:        form.Password,
		ConfirmPassword: form.ConfirmPassword,
		Email:           form.Email,
		Phone:           form.Phone,
		Address:         form.Address,
		Pincode:         form.Pincode,
		PANNumber:       form.PANNumber,
		GSTNumber:       form.GSTNumber,
		Role:            string(role),
	}
	return c.http.Post(ctx, "/register/", req, nil)
}
