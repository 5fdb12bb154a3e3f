package auth

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"solutions-admin/domain/admin"
	"solutions-admin/pkg/logger"
	"solutions-admin/utils"

	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// googleProfile is the subset of the userinfo response we need.
type googleProfile struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func googleOAuthConfig(redirectURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     viper.GetString("GOOGLE_CLIENT_ID"),
		ClientSecret: viper.GetString("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  redirectURL,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}
}

func baseURL(c echo.Context) string {
	if appURL := viper.GetString("APP_URL"); appURL != "" {
		return strings.TrimSuffix(appURL, "/")
	}
	return c.Scheme() + "://" + c.Request().Host
}

func redirectURI(c echo.Context) string {
	return baseURL(c) + "/api/auth/google/callback"
}

// loginError sends the browser back to the login page with an error code.
// Provider failures never surface as hard errors; password login stays
// available as the retry path.
func loginError(c echo.Context, code string) error {
	return c.Redirect(http.StatusFound, "/login?error="+code)
}

// allowedGoogleEmails reads the allow-list from configuration. Exact,
// lowercased email strings; an empty list refuses everyone.
func allowedGoogleEmails() map[string]bool {
	allowed := map[string]bool{}
	for _, e := range strings.Split(viper.GetString("GOOGLE_ALLOWED_EMAILS"), ",") {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			allowed[e] = true
		}
	}
	return allowed
}

// GoogleLoginHandler starts the Google OAuth redirect flow.
func GoogleLoginHandler(c echo.Context) error {
	if viper.GetString("GOOGLE_CLIENT_ID") == "" {
		return loginError(c, "google_not_configured")
	}

	state := randomState()
	c.SetCookie(&http.Cookie{
		Name:     "oauth_state",
		Value:    state,
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
	})

	conf := googleOAuthConfig(redirectURI(c))
	authURL := conf.AuthCodeURL(state, oauth2.SetAuthURLParam("prompt", "select_account"))
	return c.Redirect(http.StatusFound, authURL)
}

// GoogleCallbackHandler finishes the flow: exchanges the code, fetches the
// verified email, checks the allow-list and hands back a session token via
// the redirect query.
func GoogleCallbackHandler(c echo.Context) error {
	log := logger.Get().WithComponent("auth").WithRequestID(logger.GetRequestIDFromContext(c))

	if c.QueryParam("error") != "" || c.QueryParam("code") == "" {
		return loginError(c, "google_denied")
	}

	stateCookie, err := c.Cookie("oauth_state")
	if err != nil || stateCookie.Value == "" || stateCookie.Value != c.QueryParam("state") {
		return loginError(c, "google_denied")
	}

	ctx := c.Request().Context()
	conf := googleOAuthConfig(redirectURI(c))

	tok, err := conf.Exchange(ctx, c.QueryParam("code"))
	if err != nil {
		log.Warn("Google token exchange failed", logger.Err(err))
		return loginError(c, "google_token_failed")
	}

	resp, err := conf.Client(ctx, tok).Get(googleUserinfoURL)
	if err != nil {
		log.Warn("Google profile fetch failed", logger.Err(err))
		return loginError(c, "google_token_failed")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return loginError(c, "google_token_failed")
	}

	var profile googleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return loginError(c, "google_token_failed")
	}

	email := strings.ToLower(strings.TrimSpace(profile.Email))
	if !allowedGoogleEmails()[email] {
		log.Warn("Google login refused: email not on allow-list", logger.Email(email))
		return loginError(c, "email_not_authorized")
	}

	account, err := admin.GetByEmail(email)
	if err != nil {
		log.Error("Failed to look up account for Google login", err, logger.Email(email))
		return loginError(c, "google_internal_error")
	}
	if account == nil {
		name := profile.Name
		if name == "" {
			name = strings.SplitN(email, "@", 2)[0]
		}
		// Random unusable password; these accounts only sign in via Google.
		hash, err := utils.HashPassword(randomState())
		if err != nil {
			return loginError(c, "google_internal_error")
		}
		account, err = admin.Create(name, email, hash, admin.RoleAdmin)
		if err != nil {
			log.Error("Failed to create account for Google login", err, logger.Email(email))
			return loginError(c, "google_internal_error")
		}
	}
	if !account.IsActive {
		return loginError(c, "account_inactive")
	}

	if err := admin.TouchLogin(account.ID); err != nil {
		log.Warn("Failed to update last sign-in time", logger.UserID(account.ID), logger.Err(err))
	}

	token, err := utils.GenerateToken(account.ID)
	if err != nil {
		return loginError(c, "google_internal_error")
	}

	log.Info("Administrator logged in via Google", logger.UserID(account.ID), logger.Email(email))

	params := url.Values{
		"gtoken": {token},
		"gid":    {fmt.Sprintf("%d", account.ID)},
		"gname":  {account.Name},
		"gemail": {account.Email},
	}
	return c.Redirect(http.StatusFound, "/login?"+params.Encode())
}

func randomState() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "state"
	}
	return hex.EncodeToString(b)
}
