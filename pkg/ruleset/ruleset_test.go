package ruleset_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validationkit/pkg/observable"
	"github.com/dmitrymomot/validationkit/pkg/ruleset"
	"github.com/dmitrymomot/validationkit/pkg/validation"
	"github.com/dmitrymomot/validationkit/pkg/validator"
)

func TestLoadFile(t *testing.T) {
	t.Parallel()

	decls, err := ruleset.LoadFile(context.Background(), "testdata/signup.yaml")
	require.NoError(t, err)
	require.Len(t, decls, 4)

	assert.Equal(t, validation.Shorthand{"not_empty": {"name", "email"}}, decls[0])

	password, ok := decls[1].(validation.Rule)
	require.True(t, ok)
	assert.Equal(t, "password", password.ID)
	assert.Equal(t, []string{"password"}, password.Fields)
	require.Len(t, password.Validators, 2)
	assert.Equal(t, "not_empty", password.Validators[0].Name())
	assert.Equal(t, "length", password.Validators[1].Name())
	assert.Equal(t, `get("register") == true`, password.RunIf.Expression())
	assert.True(t, password.Realtime)
	assert.Equal(t, map[string]any{"min_length": 8}, password.Config["length"])

	age := decls[2].(validation.Rule)
	assert.Equal(t, []string{"register"}, age.RunIf.Fields())
	assert.Equal(t, validation.Params{"source": "signup"}, age.Params)
	assert.Equal(t, "{0} is below {config.min_value}", age.Message)

	confirm := decls[3].(validation.Rule)
	assert.Equal(t, "confirmation", confirm.CustomID)
	assert.Equal(t, []string{"password", "age"}, confirm.DependsOn)
	assert.Nil(t, confirm.RunIf)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		err  error
	}{
		{"unknown key", "rules:\n  - fields: a\n    validator: not_empty\n", ruleset.ErrInvalidRuleset},
		{"malformed yaml", "rules: [", ruleset.ErrInvalidRuleset},
		{"conflicting gates", "rules:\n  - fields: a\n    validators: x\n    run_if: b\n    run_if_expr: 'true'\n", ruleset.ErrConflictingGate},
		{"shorthand with rule keys", "rules:\n  - shorthand: {not_empty: [a]}\n    realtime: true\n", ruleset.ErrInvalidRuleset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ruleset.Parse(context.Background(), []byte(tt.data))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestParseEmpty(t *testing.T) {
	t.Parallel()

	decls, err := ruleset.Parse(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, decls)
}

func TestParseCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ruleset.Parse(ctx, []byte("rules: []"))
	assert.ErrorIs(t, err, ruleset.ErrParsingCancelled)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ruleset.LoadFile(context.Background(), "testdata/missing.yaml")
	assert.ErrorIs(t, err, ruleset.ErrFailedToReadFile)

	_, err = ruleset.LoadFS(context.Background(), fstest.MapFS{}, "rules.yaml")
	assert.ErrorIs(t, err, ruleset.ErrFailedToReadFile)
}

func TestRulesetWithEngine(t *testing.T) {
	t.Parallel()

	reg := validation.NewRegistry()
	require.NoError(t, validator.RegisterDefaults(reg))
	engine := validation.New(reg)

	fsys := fstest.MapFS{"signup.yaml": {Data: mustRead(t, "testdata/signup.yaml")}}
	decls, err := ruleset.LoadFS(context.Background(), fsys, "signup.yaml")
	require.NoError(t, err)

	form := observable.New(map[string]any{
		"name":             "Jane",
		"email":            "jane@example.com",
		"register":         true,
		"password":         "secret",
		"age":              16,
		"password_confirm": "secret",
	})

	res, err := engine.ValidateRules(context.Background(), form, decls, nil)
	require.NoError(t, err)
	assert.False(t, res.Valid)

	valid, found := res.IsFieldValid("password")
	assert.True(t, found)
	assert.False(t, valid)
	assert.Equal(t, "16 is below 18", res.Message("age"))

	// password and age failed, so the confirmation rule never ran
	_, found = res.IsFieldValid("confirmation")
	assert.False(t, found)

	form.Set("register", false)
	res, err = engine.ValidateRules(context.Background(), form, decls, nil)
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Len(t, res.Result, 2)
}
