package nlp

import (
	"regexp"
	"strings"
)

// Symbols kept inside tokens so that "c++", "c#", "node.js" and "scikit-learn" survive.
var nonToken = regexp.MustCompile(`[^a-z0-9+#.\-]+`)

// Normalize приводит строку к нижнему регистру и оставляет только токены,
// разделённые одиночными пробелами. Точки и дефисы по краям токена отбрасываются,
// чтобы "python." в конце предложения совпадал с "python".
func Normalize(s string) string {
	s = nonToken.ReplaceAllString(strings.ToLower(s), " ")
	parts := strings.Fields(s)
	out := parts[:0]
	for _, p := range parts {
		p = strings.Trim(p, ".-")
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

// ContainsPhrase проверяет наличие фразы (уже нормализованной) как целых слов.
// Пример: "rest api" найдётся в " ... rest api ..." но не в " ... rest apis ..."
func ContainsPhrase(normalizedText, normalizedPhrase string) bool {
	if normalizedPhrase == "" {
		return false
	}
	hay := " " + normalizedText + " "
	needle := " " + normalizedPhrase + " "
	return strings.Contains(hay, needle)
}
