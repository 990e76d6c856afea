package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"workwise-backend/internal/shared/server/respond"
	"workwise-backend/internal/shared/telemetry"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleService signs candidates in with Google. The callback upserts the
// candidate account by email and redirects to the UI with a bearer token.
type GoogleService struct {
	Accounts    *Service
	oauthConfig *oauth2.Config
	uiRedirect  string
	userInfoURL string
	stateTTL    time.Duration
	stateStore  *stateStore
}

// NewGoogleService builds a GoogleService.
func NewGoogleService(accounts *Service, clientID, clientSecret, redirectURL, uiRedirect string) *GoogleService {
	return &GoogleService{
		Accounts: accounts,
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		uiRedirect:  uiRedirect,
		userInfoURL: googleUserInfoURL,
		stateTTL:    5 * time.Minute,
		stateStore:  newStateStore(),
	}
}

// RegisterRoutes attaches Google sign-in routes.
func (s *GoogleService) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/candidate/auth/google/start", s.start)
	rg.GET("/candidate/auth/google/callback", s.callback)
}

func (s *GoogleService) configured() bool {
	return s.oauthConfig.ClientID != "" && s.oauthConfig.ClientSecret != "" && s.oauthConfig.RedirectURL != ""
}

func (s *GoogleService) start(c *gin.Context) {
	if !s.configured() {
		respond.Error(c, http.StatusInternalServerError, "auth_not_configured", "Google auth not configured", nil)
		return
	}

	state := uuid.NewString()
	s.stateStore.put(state, time.Now().Add(s.stateTTL))
	c.Redirect(http.StatusFound, s.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline))
}

func (s *GoogleService) callback(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")
	if state == "" || code == "" {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "missing state or code", nil)
		return
	}
	if !s.stateStore.consume(state) {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid or expired state", nil)
		return
	}

	ctx := c.Request.Context()
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "failed to exchange code", nil)
		return
	}

	info, err := s.fetchUserInfo(ctx, s.oauthConfig.Client(ctx, token))
	if err != nil || info.Email == "" {
		respond.Error(c, http.StatusBadGateway, "auth_failed", "failed to fetch user profile", nil)
		return
	}

	redirectURL, err := s.signIn(ctx, info)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to sign in", nil)
		return
	}
	c.Redirect(http.StatusFound, redirectURL)
}

// signIn upserts the candidate and builds the UI redirect carrying the token.
func (s *GoogleService) signIn(ctx context.Context, info googleUserInfo) (string, error) {
	profile := map[string]any{"provider": "google"}
	if info.Name != "" {
		profile["fullName"] = info.Name
	}
	if info.Picture != "" {
		profile["pictureUrl"] = info.Picture
	}
	a, err := s.Accounts.UpsertCandidate(ctx, info.Email, profile)
	if err != nil {
		return "", err
	}
	jwt, err := IssueToken(a)
	if err != nil {
		return "", err
	}
	telemetry.Info("accounts.google_login", map[string]any{"user_id": a.ID})
	return appendToken(s.uiRedirect, jwt)
}

type googleUserInfo struct {
	Sub     string `json:"sub"`
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

func (s *GoogleService) fetchUserInfo(ctx context.Context, client *http.Client) (googleUserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.userInfoURL, nil)
	if err != nil {
		return googleUserInfo{}, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return googleUserInfo{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return googleUserInfo{}, fmt.Errorf("userinfo status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return googleUserInfo{}, err
	}
	// Some responses use "id" instead of "sub".
	if info.Sub == "" {
		info.Sub = info.ID
	}
	return info, nil
}

type stateStore struct {
	items map[string]time.Time
	mu    sync.Mutex
}

func newStateStore() *stateStore {
	return &stateStore{items: make(map[string]time.Time)}
}

func (s *stateStore) put(state string, exp time.Time) {
	s.mu.Lock()
	s.items[state] = exp
	s.mu.Unlock()
}

// consume reports whether state was issued and unexpired; it is single use.
func (s *stateStore) consume(state string) bool {
	s.mu.Lock()
	exp, ok := s.items[state]
	if ok {
		delete(s.items, state)
	}
	s.mu.Unlock()
	return ok && !time.Now().After(exp)
}

func appendToken(rawURL, token string) (string, error) {
	if rawURL == "" {
		return "", errors.New("redirect url required")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
