package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	cartService "quickview.GO/service/cart"
)

// CartToken returns the shopper's cart cookie, issuing a new one when absent.
func CartToken(c echo.Context) string {
	if ck, err := c.Cookie(cartService.CookieName); err == nil && ck.Value != "" {
		return ck.Value
	}
	token := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     cartService.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return token
}
