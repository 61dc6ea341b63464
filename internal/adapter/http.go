package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/Premdhumal/go-tweet-client/internal/config"
	"github.com/Premdhumal/go-tweet-client/internal/logger"
	"github.com/Premdhumal/go-tweet-client/internal/utils"
	"github.com/Premdhumal/go-tweet-client/models"
)

// csrfCookieName is the anti-forgery cookie set by the server; its value must
// be echoed back in csrfHeaderName on every mutating request.
const (
	csrfCookieName = "csrftoken"
	csrfHeaderName = "X-CSRFToken"
)

type httpServerAdapter struct {
	client  *utils.HTTPClient
	jar     http.CookieJar
	baseURL *url.URL

	// primeOnce guards the once-per-session priming request issued when a
	// mutating call finds no anti-forgery cookie in the jar.
	primeOnce sync.Once

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.ServerURL, installs a cookie jar so the session and anti-forgery
// cookies survive across calls, and tags every request with a generated
// request id for log correlation.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetCookieJar(jar)

	uuids := utils.NewUUIDGenerator()
	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-ID", uuids.Generate())
		return nil
	})
	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Msg("api call")
		return nil
	})

	return &httpServerAdapter{client: client, jar: jar, baseURL: parsed, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// AuthStatus implements [ServerAdapter]. It GETs /api/auth/status/ and
// decodes the probe result. The call also serves as the anti-forgery priming
// request: the server sets the csrftoken cookie on the response, which lands
// in the jar.
func (h *httpServerAdapter) AuthStatus(ctx context.Context) (models.AuthStatus, error) {
	var status models.AuthStatus

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&status).
		Get("/api/auth/status/")
	if err != nil {
		return models.AuthStatus{}, fmt.Errorf("auth status request: %w", ErrNetwork)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthStatus{}, err
	}

	return status, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// /api/auth/login/. On success the server's session cookie is captured by the
// jar and the authenticated user is returned. A 401 carries the server's
// "Invalid credentials" message.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	var result models.AuthResponse

	resp, err := h.mutatingRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&result).
		Post("/api/auth/login/")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", ErrNetwork)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return result.User, nil
}

// Logout implements [ServerAdapter]. It POSTs to /api/auth/logout/; any 2xx
// (including 204) is a success.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.mutatingRequest(ctx).Post("/api/auth/logout/")
	if err != nil {
		return fmt.Errorf("logout request: %w", ErrNetwork)
	}

	return mapHTTPError(resp)
}

// Register implements [ServerAdapter]. It POSTs the registration form to
// /api/auth/register/. Validation failures come back as a DRF field map and
// surface in the *APIError's Fields.
func (h *httpServerAdapter) Register(ctx context.Context, reg models.Registration) (models.User, error) {
	var result models.AuthResponse

	resp, err := h.mutatingRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(reg).
		SetResult(&result).
		Post("/api/auth/register/")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", ErrNetwork)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return result.User, nil
}

// ListTweets implements [ServerAdapter].
func (h *httpServerAdapter) ListTweets(ctx context.Context) ([]models.Tweet, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/tweets/")
	if err != nil {
		return nil, fmt.Errorf("list tweets request: %w", ErrNetwork)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var tweets []models.Tweet
	if err = json.Unmarshal(resp.Body(), &tweets); err != nil {
		return nil, fmt.Errorf("decode tweets response: %w", err)
	}

	return tweets, nil
}

// GetTweet implements [ServerAdapter].
func (h *httpServerAdapter) GetTweet(ctx context.Context, id int64) (models.Tweet, error) {
	var tweet models.Tweet

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&tweet).
		Get(fmt.Sprintf("/api/tweets/%d/", id))
	if err != nil {
		return models.Tweet{}, fmt.Errorf("get tweet request: %w", ErrNetwork)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Tweet{}, err
	}

	return tweet, nil
}

// CreateTweet implements [ServerAdapter]. The draft is sent as a multipart
// form; the Content-Type header is left to the transport so it can set the
// part boundary.
func (h *httpServerAdapter) CreateTweet(ctx context.Context, draft models.TweetDraft) (models.Tweet, error) {
	var tweet models.Tweet

	req := h.mutatingRequest(ctx).
		SetMultipartFormData(map[string]string{"text": draft.Text}).
		SetResult(&tweet)
	if draft.HasPhoto() {
		req.SetMultipartField("photo", draft.PhotoName, "application/octet-stream", bytes.NewReader(draft.Photo))
	}

	resp, err := req.Post("/api/tweets/")
	if err != nil {
		return models.Tweet{}, fmt.Errorf("create tweet request: %w", ErrNetwork)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Tweet{}, err
	}

	return tweet, nil
}

// UpdateTweet implements [ServerAdapter]. The replacement is multipart like
// CreateTweet. RemovePhoto is expressed as an empty photo field, which the
// server treats as clearing the media; omitting the field keeps it.
func (h *httpServerAdapter) UpdateTweet(ctx context.Context, id int64, draft models.TweetDraft) (models.Tweet, error) {
	var tweet models.Tweet

	form := map[string]string{"text": draft.Text}
	if draft.RemovePhoto && !draft.HasPhoto() {
		form["photo"] = ""
	}

	req := h.mutatingRequest(ctx).
		SetMultipartFormData(form).
		SetResult(&tweet)
	if draft.HasPhoto() {
		req.SetMultipartField("photo", draft.PhotoName, "application/octet-stream", bytes.NewReader(draft.Photo))
	}

	resp, err := req.Put(fmt.Sprintf("/api/tweets/%d/", id))
	if err != nil {
		return models.Tweet{}, fmt.Errorf("update tweet request: %w", ErrNetwork)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Tweet{}, err
	}

	return tweet, nil
}

// DeleteTweet implements [ServerAdapter].
func (h *httpServerAdapter) DeleteTweet(ctx context.Context, id int64) error {
	resp, err := h.mutatingRequest(ctx).Delete(fmt.Sprintf("/api/tweets/%d/", id))
	if err != nil {
		return fmt.Errorf("delete tweet request: %w", ErrNetwork)
	}

	return mapHTTPError(resp)
}

// ToggleLike implements [ServerAdapter]. The response carries the
// authoritative liked/like_count pair the caller reconciles against.
func (h *httpServerAdapter) ToggleLike(ctx context.Context, id int64) (models.LikeResult, error) {
	var result models.LikeResult

	resp, err := h.mutatingRequest(ctx).
		SetResult(&result).
		Post(fmt.Sprintf("/api/tweets/%d/like/", id))
	if err != nil {
		return models.LikeResult{}, fmt.Errorf("toggle like request: %w", ErrNetwork)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LikeResult{}, err
	}

	return result, nil
}

// ListNotifications implements [ServerAdapter].
func (h *httpServerAdapter) ListNotifications(ctx context.Context) (models.NotificationFeed, error) {
	var feed models.NotificationFeed

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&feed).
		Get("/api/notifications/")
	if err != nil {
		return models.NotificationFeed{}, fmt.Errorf("list notifications request: %w", ErrNetwork)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NotificationFeed{}, err
	}

	return feed, nil
}

// MarkNotificationsRead implements [ServerAdapter].
func (h *httpServerAdapter) MarkNotificationsRead(ctx context.Context) error {
	resp, err := h.mutatingRequest(ctx).Post("/api/notifications/")
	if err != nil {
		return fmt.Errorf("mark notifications read request: %w", ErrNetwork)
	}

	return mapHTTPError(resp)
}

// GetProfile implements [ServerAdapter].
func (h *httpServerAdapter) GetProfile(ctx context.Context, username string) (models.Profile, error) {
	var profile models.Profile

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&profile).
		Get(fmt.Sprintf("/api/profile/%s/", url.PathEscape(username)))
	if err != nil {
		return models.Profile{}, fmt.Errorf("get profile request: %w", ErrNetwork)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}

// UpdateProfile implements [ServerAdapter]. Only the non-nil fields of upd
// are serialised, so the server treats the update as partial.
func (h *httpServerAdapter) UpdateProfile(ctx context.Context, username string, upd models.ProfileUpdate) (models.Profile, error) {
	var profile models.Profile

	resp, err := h.mutatingRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(upd).
		SetResult(&profile).
		Put(fmt.Sprintf("/api/profile/%s/", url.PathEscape(username)))
	if err != nil {
		return models.Profile{}, fmt.Errorf("update profile request: %w", ErrNetwork)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}

// GetProfileTweets implements [ServerAdapter].
func (h *httpServerAdapter) GetProfileTweets(ctx context.Context, username string) ([]models.Tweet, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/api/profile/%s/tweets/", url.PathEscape(username)))
	if err != nil {
		return nil, fmt.Errorf("get profile tweets request: %w", ErrNetwork)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var tweets []models.Tweet
	if err = json.Unmarshal(resp.Body(), &tweets); err != nil {
		return nil, fmt.Errorf("decode profile tweets response: %w", err)
	}

	return tweets, nil
}

// mutatingRequest returns a request primed for a state-changing call: the
// anti-forgery cookie is fetched once per session if the jar has none, and
// its value is echoed in the anti-forgery header.
func (h *httpServerAdapter) mutatingRequest(ctx context.Context) *resty.Request {
	if h.csrfToken() == "" {
		h.primeOnce.Do(func() {
			if _, err := h.AuthStatus(ctx); err != nil {
				h.logger.Warn().Err(err).Msg("csrf priming request failed")
			}
		})
	}

	req := h.client.R().SetContext(ctx)
	if token := h.csrfToken(); token != "" {
		req.SetHeader(csrfHeaderName, token)
	}
	return req
}

// csrfToken reads the anti-forgery cookie for the base URL out of the jar,
// or returns "" when the server has not set one yet.
func (h *httpServerAdapter) csrfToken() string {
	for _, c := range h.jar.Cookies(h.baseURL) {
		if c.Name == csrfCookieName {
			return c.Value
		}
	}
	return ""
}
