// Package oauth fetches user profiles from an external identity provider.
// The service never runs an authorization-code flow itself: it only spends
// an access token the client already obtained.
package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// DefaultUserInfoEndpoint is Google's OAuth2 userinfo endpoint.
const DefaultUserInfoEndpoint = "https://www.googleapis.com/oauth2/v1/userinfo"

// Profile is the subset of the provider's userinfo payload the service needs.
type Profile struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// ProfileClient retrieves profiles from a userinfo endpoint using a bearer
// access token.
type ProfileClient struct {
	endpoint   string
	httpClient *http.Client
}

// NewProfileClient constructs a client for the given userinfo endpoint.
// A nil httpClient falls back to a client with a sane timeout.
func NewProfileClient(endpoint string, httpClient *http.Client) *ProfileClient {
	if endpoint == "" {
		endpoint = DefaultUserInfoEndpoint
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &ProfileClient{endpoint: endpoint, httpClient: httpClient}
}

// FetchProfile calls the userinfo endpoint with the access token as bearer
// credential and decodes the profile. Any non-200 response or undecodable
// body is an error; the caller decides how it surfaces.
func (c *ProfileClient) FetchProfile(ctx context.Context, accessToken string) (*Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("profile request failed")
	}

	profile := &Profile{}
	if err := json.NewDecoder(resp.Body).Decode(profile); err != nil {
		return nil, err
	}
	if profile.Email == "" {
		return nil, errors.New("profile has no email")
	}

	return profile, nil
}
