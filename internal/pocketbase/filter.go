package pocketbase

import "strings"

// EscapeFilterValue экранирует строку для подстановки внутрь одинарных
// кавычек фильтра: бэкслеш и кавычка теряют специальное значение, так
// что значение не может переписать само выражение фильтра.
func EscapeFilterValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	return strings.ReplaceAll(v, `'`, `\'`)
}
