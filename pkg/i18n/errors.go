package i18n

import "errors"

var (
	ErrNilAdapter = errors.New("i18n: adapter is nil")

	ErrJSONParsingCancelled = errors.New("i18n: json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("i18n: failed to parse JSON content")

	ErrYAMLParsingCancelled = errors.New("i18n: yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("i18n: failed to parse YAML content")

	ErrLoadingCancelled     = errors.New("i18n: loading translations cancelled")
	ErrFailedToReadDir      = errors.New("i18n: failed to read translations directory")
	ErrFailedToReadFile     = errors.New("i18n: failed to read translation file")
	ErrFailedToParseFile    = errors.New("i18n: failed to parse translation file")
	ErrNoTranslationFiles   = errors.New("i18n: no translation files found")
	ErrInvalidTranslations  = errors.New("i18n: invalid translations structure")
	ErrLanguageNotSupported = errors.New("i18n: language not supported")
)
