// Package i18n provides the localization side of form validation: a
// Translator that resolves dot-path message keys with %{name} interpolation,
// pluggable JSON/YAML translation sources (filesystem or embedded), plural
// forms, and BCP 47 Accept-Language negotiation.
//
// Translator.Func bridges into the validator package: it returns a per-
// language lookup closure assignable to validator.TranslateFunc, returning ""
// for missing keys so rules keep their default English messages.
//
//	trans, err := i18n.New(ctx, i18n.NewFSSource(i18n.NewYAMLParser(), localesFS, "locales"))
//	if err != nil { ... }
//
//	lang := i18n.MatchLanguage(acceptHeader, trans.SupportedLanguages(), trans.DefaultLang())
//	rule := validator.MinLen("password", validator.KindText, 8).Localized(trans.Func(lang))
package i18n
