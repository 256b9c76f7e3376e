// Package ruleset loads validation rules from YAML files.
//
// A file holds a "rules" list. Entries are canonical rules or shorthand
// declarations and keep their file order:
//
//	decls, err := ruleset.LoadFile(ctx, "rules/signup.yaml")
//	if err != nil {
//	    return err
//	}
//	res, err := engine.ValidateRules(ctx, form, decls, nil)
//
// Validators are referenced by registry name. "run_if" gates on field truthiness,
// "run_if_expr" on an expression with get, params and config in scope.
package ruleset
