package domain

var (
	SESSION_LOGIN_SUCCESS  = "Logged in"
	SESSION_LOGIN_FAILED   = "Failed to log in"
	SESSION_LOGOUT_SUCCESS = "Logged out"
	SESSION_LOGOUT_FAILED  = "Failed to log out"
	SESSION_GET_SUCCESS    = "Session retrieved"
	SESSION_GET_FAILED     = "Failed to get session"
)
