package gmail

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var ErrNoCredentials = errors.New("gmail: client credentials file not found")

// Authorizer obtains an OAuth token for the Google APIs, caching it on disk.
type Authorizer struct {
	config          *oauth2.Config
	tokenPath       string
	redirectPort    int
	openBrowser     func(ctx context.Context, url string) error
	prompt          io.Writer
	callbackTimeout time.Duration
	httpClient      *http.Client
}

// NewAuthorizer reads the OAuth client secret file and prepares the session.
func NewAuthorizer(cfg AuthConfig) (*Authorizer, error) {
	if cfg.CredentialsPath == "" {
		cfg.CredentialsPath = DefaultCredentialsPath
	}
	data, err := os.ReadFile(cfg.CredentialsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoCredentials, cfg.CredentialsPath)
		}
		return nil, fmt.Errorf("gmail: read credentials: %w", err)
	}

	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = Scopes
	}
	oauthConfig, err := google.ConfigFromJSON(data, scopes...)
	if err != nil {
		return nil, fmt.Errorf("gmail: parse credentials: %w", err)
	}

	return NewAuthorizerFromConfig(oauthConfig, cfg), nil
}

// NewAuthorizerFromConfig builds an Authorizer from an existing OAuth config.
func NewAuthorizerFromConfig(oauthConfig *oauth2.Config, cfg AuthConfig) *Authorizer {
	if cfg.TokenPath == "" {
		cfg.TokenPath = DefaultTokenPath
	}
	if cfg.Prompt == nil {
		cfg.Prompt = os.Stdout
	}
	if cfg.CallbackTimeout <= 0 {
		cfg.CallbackTimeout = defaultCallbackTimeout
	}
	return &Authorizer{
		config:          oauthConfig,
		tokenPath:       cfg.TokenPath,
		redirectPort:    cfg.RedirectPort,
		openBrowser:     cfg.OpenBrowser,
		prompt:          cfg.Prompt,
		callbackTimeout: cfg.CallbackTimeout,
		httpClient:      cfg.HTTPClient,
	}
}

// Token returns a valid token: the cached one, a refreshed one, or one from
// interactive authorization. New tokens are written back to the token file.
func (a *Authorizer) Token(ctx context.Context) (*oauth2.Token, error) {
	ctx = a.withHTTPClient(ctx)

	tok, err := a.loadToken()
	if err == nil && tok.Valid() {
		return tok, nil
	}

	if err == nil && tok.RefreshToken != "" {
		fresh, err := a.config.TokenSource(ctx, tok).Token()
		if err != nil {
			return nil, fmt.Errorf("gmail: refresh token: %w", err)
		}
		if err := a.saveToken(fresh); err != nil {
			return nil, err
		}
		return fresh, nil
	}

	fresh, err := a.authorize(ctx)
	if err != nil {
		return nil, err
	}
	if err := a.saveToken(fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

// HTTPClient returns an authenticated client that refreshes its token as needed.
func (a *Authorizer) HTTPClient(ctx context.Context) (*http.Client, error) {
	tok, err := a.Token(ctx)
	if err != nil {
		return nil, err
	}
	return a.config.Client(a.withHTTPClient(ctx), tok), nil
}

func (a *Authorizer) withHTTPClient(ctx context.Context) context.Context {
	if a.httpClient == nil {
		return ctx
	}
	return context.WithValue(ctx, oauth2.HTTPClient, a.httpClient)
}

func (a *Authorizer) loadToken() (*oauth2.Token, error) {
	data, err := os.ReadFile(a.tokenPath)
	if err != nil {
		return nil, err
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("gmail: parse token file: %w", err)
	}
	return &tok, nil
}

func (a *Authorizer) saveToken(tok *oauth2.Token) error {
	f, err := os.OpenFile(a.tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("gmail: create token file: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("gmail: write token file: %w", err)
	}
	return nil
}

// authorize runs the installed-app flow with a loopback redirect.
func (a *Authorizer) authorize(ctx context.Context) (*oauth2.Token, error) {
	ln, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", a.redirectPort))
	if err != nil {
		return nil, fmt.Errorf("gmail: listen for oauth callback: %w", err)
	}

	port := ln.Addr().(*net.TCPAddr).Port
	cfg := *a.config
	cfg.RedirectURL = fmt.Sprintf("http://127.0.0.1:%d/", port)

	state := uuid.NewString()
	authURL := cfg.AuthCodeURL(state, oauth2.AccessTypeOffline)

	fmt.Fprintf(a.prompt, "Please visit this URL to authorize this application:\n%s\n", authURL)

	ctx, cancel := context.WithTimeout(ctx, a.callbackTimeout)
	defer cancel()

	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)
	srv := &http.Server{Handler: callbackHandler(state, codeCh, errCh)}

	go func() {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			sendErr(errCh, err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	if a.openBrowser != nil {
		if err := a.openBrowser(ctx, authURL); err != nil {
			fmt.Fprintf(a.prompt, "Could not open browser: %v\n", err)
		}
	}

	var code string
	select {
	case code = <-codeCh:
	case err := <-errCh:
		return nil, fmt.Errorf("gmail: oauth callback: %w", err)
	case <-ctx.Done():
		return nil, fmt.Errorf("gmail: waiting for oauth callback: %w", ctx.Err())
	}

	tok, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("gmail: exchange code: %w", err)
	}
	return tok, nil
}

func callbackHandler(state string, codeCh chan<- string, errCh chan<- error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		if q.Get("state") != state {
			http.Error(w, "Invalid state", http.StatusBadRequest)
			sendErr(errCh, errors.New("invalid state received"))
			return
		}
		if e := q.Get("error"); e != "" {
			http.Error(w, "Authorization failed: "+e, http.StatusBadRequest)
			sendErr(errCh, fmt.Errorf("authorization failed: %s", e))
			return
		}
		code := q.Get("code")
		if code == "" {
			http.Error(w, "No code received", http.StatusBadRequest)
			sendErr(errCh, errors.New("no code received"))
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("The authentication flow has completed. You may close this window."))

		select {
		case codeCh <- code:
		default:
		}
	})
}

func sendErr(ch chan<- error, err error) {
	select {
	case ch <- err:
	default:
	}
}
