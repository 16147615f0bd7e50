package i18n

// Translator retrieves localized messages for violation type codes.
// data provides optional values to embed in the message (for example,
// "min" or "expected").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	get := func(k string) string {
		if data == nil {
			return ""
		}
		return data[k]
	}
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "invalid_value":
			return "値が不正です"
		case "decode":
			return "デコードに失敗しました"
		case "encode":
			return "エンコードに失敗しました"
		case "string.min":
			return get("min") + " 文字以上である必要があります"
		case "string.max":
			return get("max") + " 文字以下である必要があります"
		case "string.length":
			return "ちょうど " + get("length") + " 文字である必要があります"
		case "string.pattern":
			return "パターン " + get("pattern") + " に一致しません"
		case "string.not_empty":
			return "空にできません"
		case "number.min":
			return get("min") + " 以上である必要があります"
		case "number.max":
			return get("max") + " 以下である必要があります"
		case "date.min":
			return get("min") + " 以降である必要があります"
		case "date.max":
			return get("max") + " 以前である必要があります"
		case "array.length":
			return "要素数はちょうど " + get("length") + " である必要があります"
		case "array.min":
			return "要素数は " + get("min") + " 以上である必要があります"
		case "array.max":
			return "要素数は " + get("max") + " 以下である必要があります"
		case "union":
			return "いずれのメンバーにも一致しません"
		case "one_of":
			return "許可された値ではありません"
		case "decimal.min":
			return get("min") + " 以上である必要があります"
		case "decimal.max":
			return get("max") + " 以下である必要があります"
		case "bigint.min":
			return get("min") + " 以上である必要があります"
		case "bigint.max":
			return get("max") + " 以下である必要があります"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			return "invalid type"
		case "invalid_value":
			return "invalid value"
		case "decode":
			return "decode failed"
		case "encode":
			return "encode failed"
		case "string.min":
			return "must be at least " + get("min") + " characters"
		case "string.max":
			return "must be at most " + get("max") + " characters"
		case "string.length":
			return "must be exactly " + get("length") + " characters"
		case "string.pattern":
			return "must match pattern " + get("pattern")
		case "string.not_empty":
			return "must not be empty"
		case "number.min":
			return "must be greater than or equal to " + get("min")
		case "number.max":
			return "must be less than or equal to " + get("max")
		case "date.min":
			return "must not be before " + get("min")
		case "date.max":
			return "must not be after " + get("max")
		case "array.length":
			return "must have exactly " + get("length") + " items"
		case "array.min":
			return "must have at least " + get("min") + " items"
		case "array.max":
			return "must have at most " + get("max") + " items"
		case "union":
			return "does not match any member"
		case "one_of":
			return "is not one of the allowed values"
		case "decimal.min":
			return "must be greater than or equal to " + get("min")
		case "decimal.max":
			return "must be less than or equal to " + get("max")
		case "bigint.min":
			return "must be greater than or equal to " + get("min")
		case "bigint.max":
			return "must be less than or equal to " + get("max")
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
