package i18n

import "strings"

// Translator retrieves localized diagnostic text for message codes.
// data carries the values interpolated into {placeholder} slots (for
// example "got" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var enDict = map[string]string{
	"expected_type":       "expected {expected} but got {got}",
	"expected_mapping":    "expected a mapping but got {got}",
	"expected_sequence":   "expected an array but got {got}",
	"expected_value":      "expected a value but got {got}",
	"expected_enum":       "expected one of {allowed} but got {got}",
	"unknown_key":         "unexpected key {key}",
	"unknown_key_suggest": "unexpected key {key}, did you mean {suggestion}?",
	"at_key":              "while validating key {key}",
	"at_index":            "while validating index {index}",
	"at_missing_key":      "while validating missing key {key}",
	"parse_error":         "invalid document: {error}",
}

var jaDict = map[string]string{
	"expected_type":       "{expected} が必要ですが {got} が指定されました",
	"expected_mapping":    "マッピングが必要ですが {got} が指定されました",
	"expected_sequence":   "配列が必要ですが {got} が指定されました",
	"expected_value":      "値が必要ですが {got} が指定されました",
	"expected_enum":       "{allowed} のいずれかが必要ですが {got} が指定されました",
	"unknown_key":         "未知のキー {key} です",
	"unknown_key_suggest": "未知のキー {key} です。{suggestion} の間違いではありませんか?",
	"at_key":              "キー {key} の検証中",
	"at_index":            "インデックス {index} の検証中",
	"at_missing_key":      "欠けているキー {key} の検証中",
	"parse_error":         "不正なドキュメントです: {error}",
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	dict := enDict
	if t.lang == "ja" {
		dict = jaDict
	}
	tmpl, ok := dict[code]
	if !ok {
		return code
	}
	return interpolate(tmpl, data)
}

// interpolate substitutes {name} slots from data, leaving unknown slots
// intact.
func interpolate(tmpl string, data map[string]string) string {
	if len(data) == 0 {
		return tmpl
	}
	for k, v := range data {
		tmpl = strings.ReplaceAll(tmpl, "{"+k+"}", v)
	}
	return tmpl
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to
// the dictionary version). Passing nil restores the default. Note that
// the oneOf merge deduplicates diagnostics by rendered text, so the
// translator must stay fixed for the duration of a validation call.
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
