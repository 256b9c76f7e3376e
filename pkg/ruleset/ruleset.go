package ruleset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/validationkit/pkg/validation"
)

type document struct {
	Rules []entry `yaml:"rules"`
}

// entry is either a shorthand declaration or a canonical rule.
type entry struct {
	Shorthand map[string]names `yaml:"shorthand"`

	ID         string         `yaml:"id"`
	Fields     names          `yaml:"fields"`
	Validators names          `yaml:"validators"`
	Message    string         `yaml:"message"`
	CustomID   string         `yaml:"custom_id"`
	Config     map[string]any `yaml:"config"`
	RunIf      names          `yaml:"run_if"`
	RunIfExpr  string         `yaml:"run_if_expr"`
	DependsOn  names          `yaml:"depends_on"`
	Realtime   bool           `yaml:"realtime"`
	Params     map[string]any `yaml:"params"`
}

// names accepts a single string or a list of strings.
type names []string

func (n *names) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*n = names{s}
		return nil
	}
	var list []string
	if err := node.Decode(&list); err != nil {
		return err
	}
	*n = list
	return nil
}

// Parse decodes a YAML rule file. Unknown keys are rejected.
//
//	rules:
//	  - shorthand:
//	      not_empty: [name, email]
//	  - id: password
//	    fields: password
//	    validators: [not_empty, length]
//	    config:
//	      length: {min_length: 8}
//	    run_if_expr: get("register") == true
//	    realtime: true
//	  - fields: password_confirm
//	    validators: not_empty
//	    depends_on: password
//
// Rule structure beyond the file format (known validators, unique ids) is checked by
// the engine when the declarations are used.
func Parse(ctx context.Context, data []byte) ([]validation.Declaration, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrInvalidRuleset, err)
	}

	decls := make([]validation.Declaration, 0, len(doc.Rules))
	for i, e := range doc.Rules {
		decl, err := e.declaration()
		if err != nil {
			return nil, fmt.Errorf("%w: rule #%d: %w", ErrInvalidRuleset, i, err)
		}
		decls = append(decls, decl)
	}
	return decls, nil
}

// LoadFile reads and parses the rule file at path.
func LoadFile(ctx context.Context, path string) ([]validation.Declaration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return Parse(ctx, data)
}

// LoadFS reads and parses the rule file name inside fsys.
func LoadFS(ctx context.Context, fsys fs.FS, name string) ([]validation.Declaration, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	return Parse(ctx, data)
}

func (e entry) declaration() (validation.Declaration, error) {
	if e.Shorthand != nil {
		if !e.isShorthandOnly() {
			return nil, errors.New("shorthand entries cannot carry rule keys")
		}
		s := make(validation.Shorthand, len(e.Shorthand))
		for name, fields := range e.Shorthand {
			s[name] = fields
		}
		return s, nil
	}

	rule := validation.Rule{
		ID:        e.ID,
		Fields:    e.Fields,
		Message:   e.Message,
		CustomID:  e.CustomID,
		Config:    e.Config,
		DependsOn: e.DependsOn,
		Realtime:  e.Realtime,
		Params:    e.Params,
	}
	for _, name := range e.Validators {
		rule.Validators = append(rule.Validators, validation.Named(name))
	}

	switch {
	case len(e.RunIf) > 0 && e.RunIfExpr != "":
		return nil, ErrConflictingGate
	case len(e.RunIf) > 0:
		rule.RunIf = validation.RunIfFields(e.RunIf...)
	case e.RunIfExpr != "":
		rule.RunIf = validation.RunIfExpr(e.RunIfExpr)
	}
	return rule, nil
}

func (e entry) isShorthandOnly() bool {
	return e.ID == "" && len(e.Fields) == 0 && len(e.Validators) == 0 && e.Message == "" &&
		e.CustomID == "" && e.Config == nil && len(e.RunIf) == 0 && e.RunIfExpr == "" &&
		len(e.DependsOn) == 0 && !e.Realtime && e.Params == nil
}
