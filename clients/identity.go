// Package clients holds thin clients for the external collaborators the
// service talks to over HTTP.
package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// IdentityClient talks to the external identity provider. The provider owns
// sessions and accounts; this service only exchanges a bearer token for the
// stable opaque user id the provider assigns.
type IdentityClient struct {
	baseURL string
	client  *http.Client
}

// NewIdentityClient creates an identity provider client with a pooled
// transport and a hard request timeout.
func NewIdentityClient(baseURL string, timeout time.Duration) *IdentityClient {
	return &IdentityClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   30 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				ForceAttemptHTTP2:     true,
				MaxIdleConns:          25,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
	}
}

// UserForToken exchanges a bearer token for the id and display name of the
// user it belongs to.
func (c *IdentityClient) UserForToken(ctx context.Context, token string) (string, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/userinfo", nil)
	if err != nil {
		return "", "", err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return "", "", ErrInvalidToken
	default:
		return "", "", fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}
	var info struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	err = json.NewDecoder(resp.Body).Decode(&info)
	if err != nil {
		return "", "", err
	}
	if info.ID == "" {
		return "", "", ErrInvalidToken
	}
	return info.ID, info.Name, nil
}
