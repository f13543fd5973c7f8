package services

// ServiceContainer bundles all services for handler wiring.
type ServiceContainer struct {
	Auth        AuthService
	User        UserService
	Job         JobService
	Application ApplicationService
	Matching    MatchingService
}
