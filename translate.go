package hello_world

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/cloudfoundry/jibber_jabber"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

const DefaultLanguage string = "en"

var languageFilePattern = regexp.MustCompile(`(?:^|.*/)([^/]+)\.ya?ml$`)

type Translator struct {
	language    string
	langStrings map[string]StringMap
	variables   StringMap
}

// NewTranslator returns a Translator without any variable lookup.
func NewTranslator() *Translator {
	return NewTranslatorVar(StringMap{})
}

// NewTranslatorVar returns a Translator with a variable lookup. It scans for any yaml
// files inside the languages folder in the resources box. The language is picked from
// the system locale, falling back to DefaultLanguage.
func NewTranslatorVar(variables StringMap) *Translator {
	languageFiles := MustGetResourceFiltered("languages", languageFilePattern)
	languages := make(map[string]StringMap)
	for filename, content := range languageFiles {
		languageTag := languageFilePattern.ReplaceAllString(filename, "$1")
		langStrings := make(StringMap)
		err := yaml.Unmarshal([]byte(content), langStrings)
		if err != nil {
			logrus.Warnf("Unable to parse language file %s", filename)
			continue
		}
		languages[languageTag] = langStrings
	}
	t := Translator{
		langStrings: languages,
		variables:   variables,
	}
	if err := t.SetLanguage(t.getLocale()); err != nil {
		t.language = DefaultLanguage
	}
	return &t
}

// Get returns the localized string for a given string key.
//
// The strings may contain template references to variables, which in turn may contain
// template references back to message strings. Only one round-trip of string ->
// variable -> string lookup is performed.
func (t *Translator) Get(key string) string {
	return t.expand(t.getRaw(key, t.language), t.language, nil)
}

// GetWith is Get with additional variables, which take precedence over the
// translator's own variables:
//
//	t.GetWith("status_set", StringMap{"count": "3"})
func (t *Translator) GetWith(key string, variables StringMap) string {
	return t.expand(t.getRaw(key, t.language), t.language, variables)
}

// GetLanguage returns the identifier (e.g. "en") for the current language.
func (t *Translator) GetLanguage() string { return t.language }

// GetLanguages lists the identifiers of all languages with strings available, the
// default language first and the others in alphabetical order.
func (t *Translator) GetLanguages() []string {
	languages := make([]string, 0, len(t.langStrings))
	for lang := range t.langStrings {
		languages = append(languages, lang)
	}
	sort.Slice(languages, func(i, j int) bool {
		if languages[i] == DefaultLanguage || languages[j] == DefaultLanguage {
			return languages[i] == DefaultLanguage
		}
		return languages[i] < languages[j]
	})
	return languages
}

// SetLanguage switches to one of the languages returned by GetLanguages.
func (t *Translator) SetLanguage(language string) error {
	if _, ok := t.langStrings[language]; !ok {
		return fmt.Errorf("no strings for language '%s'", language)
	}
	t.language = language
	return nil
}

// getLocale returns the available language that best matches the system locale.
func (t *Translator) getLocale() string {
	available := t.GetLanguages()
	if len(available) == 0 {
		return DefaultLanguage
	}
	languageTags := make([]language.Tag, 0, len(available))
	for _, lang := range available {
		languageTags = append(languageTags, language.Raw.Make(lang))
	}
	locale, err := jibber_jabber.DetectIETF()
	if err != nil {
		return available[0]
	}
	_, index, _ := language.NewMatcher(languageTags).Match(language.Make(locale))
	return available[index]
}

// expand expands template variables in the given str with the translator's variables
// and extra, after expanding the variables themselves with the strings of the given
// language.
func (t *Translator) expand(str, language string, extra StringMap) string {
	availableLanguage := language
	if _, ok := t.langStrings[language]; !ok {
		availableLanguage = DefaultLanguage
	}
	variables := make(StringMap)
	for key, value := range t.variables {
		variables[key] = ExpandVariables(value, t.langStrings[availableLanguage])
	}
	return ExpandVariables(str, MergeVariables(variables, extra))
}

// getRaw looks up key in the given language and then in the default language, without
// template expansion. Keys found in neither are returned as they are.
func (t *Translator) getRaw(key, language string) string {
	for _, lang := range []string{language, DefaultLanguage} {
		if value, ok := t.langStrings[lang][key]; ok {
			return value
		}
	}
	return key
}
