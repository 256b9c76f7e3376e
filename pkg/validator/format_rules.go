package validator

import (
	"context"
	"net/mail"
	"strings"

	"github.com/dmitrymomot/validationkit/pkg/validation"
)

// Email accepts a bare RFC 5322 address whose domain has at least one dot.
func Email() validation.Validator {
	return validation.NewValidator(
		func(_ context.Context, in validation.Input) (bool, error) {
			return isEmail(text(in.Value())), nil
		},
		validation.WithMessage("validation.email"),
	)
}

func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}
