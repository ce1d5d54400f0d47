package validate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/fault"
)

var (
	once     sync.Once
	instance *validator.Validate
)

func engine() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
	})
	return instance
}

// Struct validates v by its `validate` tags. Field errors are reported in
// one Validation fault, the validator error is kept as its cause.
func Struct[T any](ctx context.Context, v T) rop.Result[T] {
	if err := ctx.Err(); err != nil {
		return rop.Cancel[T](context.Cause(ctx))
	}

	err := engine().StructCtx(ctx, v)
	if err == nil {
		return rop.Success(v)
	}

	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		// InvalidValidationError: v is not a struct
		return rop.Fail[T](fault.Technical(err.Error()).WithCause(err))
	}
	return rop.Fail[T](fault.Validation(describe(fields)).WithCause(err))
}

func describe(fields validator.ValidationErrors) string {
	parts := make([]string, 0, len(fields))
	for _, fe := range fields {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed on '%s=%s'", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

type rule struct {
	field string
	msg   string
}

// Validator accumulates failed rules for a value
type Validator[T any] struct {
	value  T
	failed []rule
}

func Of[T any](v T) *Validator[T] {
	return &Validator[T]{value: v}
}

// Rule records msg for field when ok is false.
func (v *Validator[T]) Rule(field string, ok bool, msg string) *Validator[T] {
	if !ok {
		v.failed = append(v.failed, rule{field: field, msg: msg})
	}
	return v
}

// Validate returns the value, or a Validation fault listing every failed rule.
func (v *Validator[T]) Validate() rop.Result[T] {
	if len(v.failed) == 0 {
		return rop.Success(v.value)
	}

	parts := make([]string, 0, len(v.failed))
	for _, r := range v.failed {
		if r.field == "" {
			parts = append(parts, r.msg)
			continue
		}
		parts = append(parts, r.field+": "+r.msg)
	}
	return rop.Fail[T](fault.Validation(strings.Join(parts, "; ")))
}
