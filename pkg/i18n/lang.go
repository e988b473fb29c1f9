package i18n

import "golang.org/x/text/language"

// MatchLanguage negotiates the best supported language for an Accept-Language
// header using BCP 47 matching (en-US falls back to en, scripts and regions
// are weighed properly). Returns fallback when the header is empty or
// malformed, no supported tag parses, or nothing matches with any confidence.
func MatchLanguage(accept string, supported []string, fallback string) string {
	if accept == "" || len(supported) == 0 {
		return fallback
	}

	tags := make([]language.Tag, 0, len(supported))
	codes := make([]string, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		codes = append(codes, s)
	}
	if len(tags) == 0 {
		return fallback
	}

	desired, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(desired) == 0 {
		return fallback
	}

	matcher := language.NewMatcher(tags)
	_, idx, conf := matcher.Match(desired...)
	if conf == language.No {
		return fallback
	}
	return codes[idx]
}
