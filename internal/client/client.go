package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/rudracore/client-portal/internal/models"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the identity provider's auth API. The service key
// authorizes the privileged admin create-user call.
type Client struct {
	baseURL    string
	serviceKey string
	httpClient HTTPClient
}

func NewClient(baseURL string, serviceKey string, client HTTPClient) *Client {
	return &Client{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		httpClient: client,
	}
}

// GetUser exchanges an access token for the identity it belongs to.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*models.Identity, error) {
	url := c.baseURL + "/auth/v1/user"
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("apikey", c.serviceKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, HandleErrorResponse(resp)
	}

	var payload userPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	return payload.toIdentity(), nil
}

// CreateUser registers a new user with the provider. All registered users
// get the client role.
func (c *Client) CreateUser(ctx context.Context, email string, password string, name string) (*models.Identity, error) {
	var payload createUserPayload
	payload.Email = email
	payload.Password = password
	payload.EmailConfirm = true
	payload.UserMetadata.Name = name
	payload.UserMetadata.Role = "client"

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := c.baseURL + "/auth/v1/admin/users"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("apikey", c.serviceKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		if resp.StatusCode == http.StatusUnprocessableEntity || resp.StatusCode == http.StatusConflict {
			return nil, ErrUserExists
		}
		return nil, HandleErrorResponse(resp)
	}

	var user userPayload
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, err
	}

	return user.toIdentity(), nil
}

func HandleErrorResponse(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return NewRateLimitError(resp.Header)
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrInvalidToken
	default:
		return ErrProviderUnavailable
	}
}
