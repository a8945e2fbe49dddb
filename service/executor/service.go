package executor

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/viant/structology/conv"

	"github.com/flowenv/flowenv/extension"
)

// Service executes registered action service methods addressed as
// "service:method", converting loosely typed input into the method's
// declared input type.
type Service interface {
	Execute(ctx context.Context, action string, input interface{}) (interface{}, error)
}

// Listener is notified before and after each execution; output is nil
// on the pre-execution call.
type Listener func(action string, input, output interface{}, err error)

type service struct {
	actions   *extension.Actions
	converter *conv.Converter
	listener  Listener
}

func (s *service) Execute(ctx context.Context, action string, input interface{}) (interface{}, error) {
	serviceName, methodName, err := splitAction(action)
	if err != nil {
		return nil, err
	}
	actionService := s.actions.Lookup(serviceName)
	if actionService == nil {
		return nil, NewServiceNotFoundError(serviceName)
	}
	signature := actionService.Methods().Lookup(methodName)
	if signature == nil {
		return nil, NewMethodNotFoundError(serviceName, methodName)
	}
	method, err := actionService.Method(methodName)
	if err != nil {
		return nil, err
	}
	methodInput := newInstance(signature.Input)
	if input != nil {
		if err = s.converter.Convert(input, methodInput); err != nil {
			return nil, fmt.Errorf("failed to convert input for %v: %w", action, err)
		}
	}
	methodOutput := newInstance(signature.Output)
	if s.listener != nil {
		s.listener(action, methodInput, nil, nil)
	}
	err = method(ctx, methodInput, methodOutput)
	if s.listener != nil {
		s.listener(action, methodInput, methodOutput, err)
	}
	if err != nil {
		return nil, err
	}
	return methodOutput, nil
}

func splitAction(action string) (string, string, error) {
	index := strings.LastIndex(action, ":")
	if index == -1 {
		return "", "", NewInvalidActionError(action)
	}
	serviceName := strings.TrimSpace(action[:index])
	methodName := strings.TrimSpace(action[index+1:])
	if serviceName == "" || methodName == "" {
		return "", "", NewInvalidActionError(action)
	}
	return serviceName, methodName, nil
}

func newInstance(t reflect.Type) interface{} {
	if t == nil {
		return nil
	}
	if t.Kind() == reflect.Ptr {
		return reflect.New(t.Elem()).Interface()
	}
	return reflect.New(t).Interface()
}

// New creates an executor service backed by the supplied action registry.
func New(actions *extension.Actions, opts ...Option) Service {
	options := conv.DefaultOptions()
	options.ClonePointerData = true
	options.IgnoreUnmapped = true
	options.AccessUnexported = true
	ret := &service{
		actions:   actions,
		converter: conv.NewConverter(options),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Option customises the executor service.
type Option func(*service)

// WithListener sets an execution listener.
func WithListener(listener Listener) Option {
	return func(s *service) {
		s.listener = listener
	}
}
