// Package validation is a declarative validation engine for property-bag objects.
//
// An object declares rules through Validations. Each rule names the fields it reads,
// one or more validators (registry names or inline predicates) and optionally a
// message template, validator configuration, a runIf gate, dependencies on other rules
// and realtime revalidation.
//
//	reg := validation.NewRegistry()
//	_ = validator.RegisterDefaults(reg)
//	engine := validation.New(reg, validation.WithLogger(log))
//
//	form := observable.New(values, observable.WithValidations(
//	    validation.Shorthand{"not_empty": {"name", "email"}},
//	    validation.Rule{
//	        ID:         "password",
//	        Fields:     []string{"password"},
//	        Validators: []validation.ValidatorRef{validation.Named("length")},
//	        Config:     validation.Config{"min_length": 8},
//	        Message:    "{0} needs {config.min_length} characters",
//	        Realtime:   true,
//	    },
//	    validation.Rule{
//	        Fields:     []string{"password_confirm"},
//	        Validators: []validation.ValidatorRef{validation.Func(matchesPassword)},
//	        DependsOn:  []string{"password"},
//	        RunIf:      validation.RunIfExpr(`get("register") == true`),
//	    },
//	))
//
//	res, err := engine.Validate(ctx, form, nil)
//
// # Scheduling
//
// A pass dispatches every rule whose dependencies are satisfied. A rule depending on
// other ids runs only after all of them completed and passed; rules gated out by runIf
// or never unblocked produce no result. Rules with asynchronous validators run
// concurrently, the rest run inline. Result order follows completion order, so a
// dependent always follows its dependencies.
//
// The first error (unknown validator, duplicate id, validator error or panic, gate
// failure, cancelled context) aborts the pass; no partial result is returned.
//
// # Messages
//
// A failing validator yields the rule Message, else the validator's own message, else
// a bare failure. Templates go through the Translator first, then "{0}", "{1}", ... and
// "{config.name}" placeholders are substituted once each.
//
// # Realtime
//
// StartRealtimeValidation observes the fields of every Realtime rule and re-runs the
// rule after a quiet period (DefaultRealtimeDebounce, WithRealtimeDebounce, or the rule
// config key RealtimeDebounceKey). The returned stop function detaches everything.
package validation
