package handlers

// AppHandlers bundles all HTTP handlers for route registration.
type AppHandlers struct {
	Auth        *AuthHandler
	Job         *JobHandler
	Application *ApplicationHandler
}
