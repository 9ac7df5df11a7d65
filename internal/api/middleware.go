package api

const (
	authCookieName = "drobek_auth"
)

const sessionTokenTTLDays = 30
