package templates

import (
	"strconv"
	"strings"
)

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// joined renders one item per source index, comma separated.
func joined(count int, item func(i string) string) string {
	parts := make([]string, count)
	for i := range parts {
		parts[i] = item(strconv.Itoa(i))
	}
	return strings.Join(parts, ", ")
}

func sourceParams(count int) string {
	return joined(count, func(i string) string {
		return "s" + i + " Readable[T" + i + "]"
	})
}

func sourcesLiteral(count int) string {
	return joined(count, func(i string) string {
		return strconv.Quote(i) + ": s" + i
	})
}

func pickArgs(count int) string {
	return joined(count, func(i string) string {
		return "Pick[T" + i + "](v, " + strconv.Quote("$"+i) + ")"
	})
}

func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
