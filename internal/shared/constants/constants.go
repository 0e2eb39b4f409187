package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"

	// Context keys set by the auth middleware
	ContextKeySubjectID = "user_sid"
	ContextKeyUserRoles = "user_roles"

	// JWT claim names
	ClaimSubjectID = "sid"
	ClaimRoles     = "roles"

	// Database table names
	TableTickets = "tickets"
)
