// Package i18n translates validation messages.
//
// A Translator loads nested translation maps through a TranslationAdapter (MapAdapter,
// FSAdapter over any fs.FS, MultiAdapter to layer several sources) and resolves
// dot-separated keys per language. YAML and JSON files are supported.
//
// DefaultAdapter carries English messages for the built-in validators. Layer your own
// files on top of it and plug the translator into the engine:
//
//	tr, err := i18n.NewTranslator(ctx, i18n.MultiAdapter{
//	    i18n.DefaultAdapter(),
//	    i18n.NewFSAdapter(os.DirFS("./locales"), "."),
//	})
//	if err != nil {
//	    return err
//	}
//	engine := validation.New(registry, validation.WithTranslator(tr.Validation()))
//
//	ctx = i18n.SetLocale(ctx, "de-DE") // stored as "de"
//	res, err := engine.Validate(ctx, form, nil)
//
// Translated templates keep the engine placeholders ("{0}", "{config.min_length}"),
// which are substituted after translation. T additionally supports "%{name}"
// placeholders for general purpose strings.
package i18n
