package utils

import "strings"

// Scheme is the custom URI scheme the companion mobile app registers.
const Scheme = "jamsody://"

func HomeDeepLink() string {
	return Scheme + "home"
}

func ProfileDeepLink(username string) string {
	return Scheme + "u/" + strings.TrimPrefix(strings.TrimSpace(username), "@")
}

func EventDeepLink(code string) string {
	return Scheme + "e/" + strings.TrimSpace(code)
}
