package platform

// Service manages launch-at-login registration for the host OS.
type Service interface {
	EnableAutostart(appName, execPath string) error
	DisableAutostart(appName string) error
}

type platformService struct{}

// NewService returns the implementation for the current OS.
func NewService() Service {
	return &platformService{}
}
