package validation_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validationkit/pkg/logger"
	"github.com/dmitrymomot/validationkit/pkg/validation"
)

func TestValidate_Logging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithFormat(logger.FormatText),
		logger.WithLevel(slog.LevelDebug),
	)
	engine := validation.New(newRegistry(t, map[string]validation.Validator{
		"ok": (&spy{}).fixed(true),
	}), validation.WithLogger(log))

	gated := rule("vat", []string{"vat"}, "ok")
	gated.RunIf = validation.RunIfFields("business")
	blocked := rule("", []string{"vat_confirm"}, "ok")
	blocked.DependsOn = []string{"vat"}

	_, err := engine.Validate(context.Background(), form(nil, gated, blocked), nil)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "rule skipped by runIf")
	assert.Contains(t, out, "rule_id=vat")
	assert.Contains(t, out, "rules blocked by unmet dependencies")
	assert.Contains(t, out, "validation pass finished")
	assert.Contains(t, out, "pass_id=")
}
