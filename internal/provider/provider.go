// Package provider implements the external identity link: a plain
// authorization-code flow against an OAuth provider, yielding an identity
// that the auth service turns into an externally-linked parent account.
package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Identity is what the provider asserts about the signed-in person.
type Identity struct {
	Subject string
	Email   string
	Name    string
}

// Provider holds the configuration for one OAuth provider.
type Provider struct {
	Name        string
	Label       string
	Config      *oauth2.Config
	UserInfoURL string
}

// Google builds the Google provider from client credentials.
func Google(clientID, clientSecret, redirectURL string) *Provider {
	return &Provider{
		Name:  "google",
		Label: "Sign in with Google",
		Config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		UserInfoURL: "https://www.googleapis.com/oauth2/v2/userinfo",
	}
}

// Configured reports whether the provider has usable credentials.
func (p *Provider) Configured() bool {
	return p.Config != nil && p.Config.ClientID != "" && p.Config.ClientSecret != ""
}

// BeginLink starts the flow: it returns the URL to open in a browser and
// the state value the caller must hold on to for CompleteLink.
func (p *Provider) BeginLink() (authURL, state string, err error) {
	if !p.Configured() {
		return "", "", errors.New("OAuth provider not configured")
	}
	state = uuid.NewString()
	authURL = p.Config.AuthCodeURL(state, oauth2.AccessTypeOnline)
	return authURL, state, nil
}

// CompleteLink finishes the flow with the code and state echoed back by
// the provider. The state must match the one issued by BeginLink.
func (p *Provider) CompleteLink(ctx context.Context, expectedState, state, code string) (Identity, error) {
	if !p.Configured() {
		return Identity{}, errors.New("OAuth provider not configured")
	}
	if code == "" {
		return Identity{}, errors.New("missing authorization code")
	}
	if expectedState == "" || state != expectedState {
		return Identity{}, errors.New("invalid OAuth state")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	token, err := p.Config.Exchange(ctx, code)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to exchange OAuth code: %w", err)
	}

	// The token endpoint response arrives over the provider's own TLS
	// channel, so the id_token claims can be read without a key fetch.
	if idToken, ok := token.Extra("id_token").(string); ok && idToken != "" {
		if identity, err := parseIDTokenClaims(idToken, p.Config.ClientID); err == nil {
			return identity, nil
		}
	}

	return p.fetchUserInfo(ctx, token)
}

type idTokenClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name"`
}

func parseIDTokenClaims(idToken, clientID string) (Identity, error) {
	parser := jwt.NewParser()
	claims := &idTokenClaims{}
	if _, _, err := parser.ParseUnverified(idToken, claims); err != nil {
		return Identity{}, fmt.Errorf("failed to parse id_token: %w", err)
	}
	if !audienceContains(claims.Audience, clientID) {
		return Identity{}, errors.New("id_token audience mismatch")
	}
	if claims.Subject == "" {
		return Identity{}, errors.New("id_token missing subject")
	}
	return Identity{
		Subject: claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
	}, nil
}

func audienceContains(audience jwt.ClaimStrings, value string) bool {
	for _, entry := range audience {
		if entry == value {
			return true
		}
	}
	return false
}

func (p *Provider) fetchUserInfo(ctx context.Context, token *oauth2.Token) (Identity, error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))
	resp, err := client.Get(p.UserInfoURL)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Identity{}, fmt.Errorf("failed to fetch user info: status %d", resp.StatusCode)
	}

	var payload struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Identity{}, fmt.Errorf("failed to parse user info: %w", err)
	}
	if payload.ID == "" {
		return Identity{}, errors.New("user info missing subject")
	}

	return Identity{Subject: payload.ID, Email: payload.Email, Name: payload.Name}, nil
}

// ExternalID is the account id the identity maps to. Provider subjects are
// namespaced so they can never collide with chosen usernames.
func (p *Provider) ExternalID(identity Identity) string {
	return fmt.Sprintf("%s:%s", p.Name, identity.Subject)
}
