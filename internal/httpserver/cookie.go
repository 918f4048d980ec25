package httpserver

import (
	"net/http"
	"time"
)

// RefreshCookieName matches the cookie the frontend already expects.
const RefreshCookieName = "jwt"

const refreshCookiePath = "/api/auth"

// NewRefreshCookie builds the refresh-token cookie. Secure is conditioned
// on production mode so local development over plain HTTP still works.
func NewRefreshCookie(value string, exp time.Time, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     RefreshCookieName,
		Value:    value,
		Path:     refreshCookiePath,
		Expires:  exp,
		MaxAge:   int(time.Until(exp).Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	}
}

func DeleteRefreshCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     RefreshCookieName,
		Value:    "",
		Path:     refreshCookiePath,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	}
}
