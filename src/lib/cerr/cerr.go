package cerr

import "fmt"

var _ error = ContextualError{}
var _ interface{ Unwrap() error } = ContextualError{}

type F map[string]interface{}

type Context struct {
	ContextFields F
}

type ContextualError struct {
	// left public so that callers and loggers can inspect
	Context Context
	Message string
	Cause   error
}

func (c ContextualError) Error() string {
	if c.Cause == nil {
		return c.Message
	}

	return fmt.Sprintf("%s: %s", c.Message, c.Cause.Error())
}

func (c ContextualError) Unwrap() error {
	return c.Cause
}

type Wrapper struct {
	context Context
	cause   error
}

// Error produces the contextual error. Fields already attached to a wrapped
// ContextualError are carried up, with the outer context taking precedence.
func (w Wrapper) Error(message string) error {
	ctx := w.context
	if inner, ok := w.cause.(ContextualError); ok {
		ctx = inner.Context.Fields(ctx.ContextFields)
	}

	return ContextualError{
		Context: ctx,
		Message: message,
		Cause:   w.cause,
	}
}

func Field(key string, value interface{}) Context {
	return Context{}.Field(key, value)
}

func Fields(fields F) Context {
	return Context{}.Fields(fields)
}

func Wrap(err error) Wrapper {
	return Context{}.Wrap(err)
}

func Error(message string) error {
	return Context{}.Error(message)
}

func (c Context) Field(key string, value interface{}) Context {
	return c.Fields(F{key: value})
}

func (c Context) Fields(fields F) Context {
	merged := make(F, len(c.ContextFields)+len(fields))
	for k, v := range c.ContextFields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}

	return Context{ContextFields: merged}
}

func (c Context) Wrap(err error) Wrapper {
	return Wrapper{
		context: c,
		cause:   err,
	}
}

func (c Context) Error(message string) error {
	return ContextualError{
		Context: c,
		Message: message,
	}
}
