package utils

import "os"

var (
	PaginationLimit          int
	CookieAccessTokenExpires int
)

// Init some useful variables
func InitVariables() {
	PaginationLimit = Atoi(os.Getenv("PAGINATION_LIMIT"))
	if PaginationLimit <= 0 {
		PaginationLimit = 10
	}
	CookieAccessTokenExpires = Atoi(os.Getenv("COOKIE_ACCESS_TOKEN_EXPIRES"))
	if CookieAccessTokenExpires <= 0 {
		CookieAccessTokenExpires = 60
	}
}
