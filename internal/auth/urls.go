package auth

import (
	"net/url"
	"strings"
)

// CookieName is the session cookie holding the signed token.
const CookieName = "pinboard_session"

func LoginURL(dest string) string {
	return "/login?continue=" + url.QueryEscape(SafeRedirect(dest))
}

func LogoutURL(dest string) string {
	return "/logout?continue=" + url.QueryEscape(SafeRedirect(dest))
}

// SafeRedirect keeps redirects on this site: anything that is not a local
// absolute path becomes "/".
func SafeRedirect(dest string) string {
	if !strings.HasPrefix(dest, "/") || strings.HasPrefix(dest, "//") || strings.HasPrefix(dest, "/\\") {
		return "/"
	}
	return dest
}
