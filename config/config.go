// Package config holds the validated settings of the war server and client.
package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Server configures the `war server` command.
type Server struct {
	Addr             string        `validate:"required,hostname_port"`
	RoundTimeout     time.Duration `validate:"gte=0"`
	HandshakeTimeout time.Duration `validate:"gte=0"`
	MaxGames         int64         `validate:"gte=0"`
}

// Client configures the `war client` and `war clients` commands.
type Client struct {
	Addr        string        `validate:"required,hostname_port"`
	Count       int           `validate:"gte=1"`
	Limit       int           `validate:"gte=1"`
	DialTimeout time.Duration `validate:"gte=0"`
}

// Addr joins host and port into a host:port address.
func Addr(host, port string) string {
	return net.JoinHostPort(host, port)
}

// Validate checks a Server or Client and reports every invalid field.
func Validate(cfg any) error {
	err := validate.Struct(cfg)
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "hostname_port":
		return fmt.Sprintf("%s %q is not a host:port address", fe.Field(), fe.Value())
	case "gte":
		return fmt.Sprintf("%s must be at least %s, got %v", fe.Field(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}
