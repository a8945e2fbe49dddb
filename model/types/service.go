package types

// Service is a named action service exposing executable methods.
type Service interface {
	Name() string
	Methods() Signatures
	Method(name string) (Executable, error)
}
