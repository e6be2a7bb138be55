// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package envflag defines flags whose defaults can be overridden by
// environment variables.
//
// The precedence is: flag passed on the command line, then environment
// variable, then the default value.
package envflag

import (
	"flag"
	"fmt"
	"strconv"
)

// Type is a constraint that permits only types supported by envflag package.
type Type interface {
	int | bool | string
}

// Var defines a flag with the given name and usage on fs, storing its value
// into p. If getenv(envName) returns a non-empty string that parses as T, it
// replaces value as the default. A malformed environment value is reported as
// an error, so misconfiguration doesn't go unnoticed.
func Var[T Type](fs *flag.FlagSet, p *T, name, envName string, value T, usage string, getenv func(string) string) error {
	*p = value
	if s := getenv(envName); s != "" {
		v, err := parse[T](s)
		if err != nil {
			return fmt.Errorf("parsing %s=%q: %w", envName, s, err)
		}
		*p = v
	}
	fs.Var(&flagValue[T]{p: p}, name, usage+" Can be overridden by "+envName+" environment variable.")
	return nil
}

type flagValue[T Type] struct{ p *T }

func (f *flagValue[T]) String() string {
	if f.p == nil {
		return ""
	}
	return fmt.Sprint(*f.p)
}

func (f *flagValue[T]) Set(s string) error {
	v, err := parse[T](s)
	if err != nil {
		return err
	}
	*f.p = v
	return nil
}

// IsBoolFlag lets boolean flags be passed without a value, like -flag.
func (f *flagValue[T]) IsBoolFlag() bool {
	_, ok := any(f.p).(*bool)
	return ok
}

func parse[T Type](s string) (T, error) {
	var zero T
	switch any(zero).(type) {
	case int:
		v, err := strconv.Atoi(s)
		if err != nil {
			return zero, err
		}
		return any(v).(T), nil
	case bool:
		v, err := strconv.ParseBool(s)
		if err != nil {
			return zero, err
		}
		return any(v).(T), nil
	default:
		return any(s).(T), nil
	}
}
