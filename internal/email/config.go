package email

// Config holds SMTP settings for the provider.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}
