// Package validate adapts struct validation to Result values.
//
// Struct runs go-playground/validator tags and turns field errors into a
// single Validation fault. Validator collects ad-hoc rules for values that
// have no tags.
package validate
