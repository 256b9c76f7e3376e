// Package observable provides Object, an in-memory observable property bag that
// can be validated and watched by the validation engine.
//
//	form := observable.New(map[string]any{"email": ""},
//	    observable.WithValidations(validation.Rule{
//	        Fields:     []string{"email"},
//	        Validators: []validation.ValidatorRef{validation.Named("email")},
//	        Realtime:   true,
//	    }),
//	)
//	stop, err := engine.StartRealtimeValidation(ctx, form, onResult, nil)
//	form.Set("email", "user@example.com")
//
// Observers run synchronously on the goroutine calling Set, after the object's lock
// has been released, so they may read the object freely.
package observable
