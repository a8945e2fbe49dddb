package executor

import "fmt"

func NewInvalidActionError(action string) error {
	return fmt.Errorf("invalid action %q, expected service:method", action)
}

func NewServiceNotFoundError(service string) error {
	return fmt.Errorf("service %v not found", service)
}

func NewMethodNotFoundError(service, method string) error {
	return fmt.Errorf("method %v not found in service %v", method, service)
}
