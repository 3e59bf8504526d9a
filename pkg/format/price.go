package format

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var pricePrinter = message.NewPrinter(language.Polish)

// Price форматирует сумму с двумя знаками после запятой по польским правилам
// ("1 234,50"), без символа валюты. Нечисловой ввод трактуется как 0.
func Price(amount interface{}) string {
	s := pricePrinter.Sprintf("%v", number.Decimal(toFloat(amount), number.Scale(2)))
	return normalizeSpaces(s)
}

// toFloat приводит произвольное значение к float64, нечисловые значения дают 0
func toFloat(v interface{}) float64 {
	var f float64

	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case uint:
		f = float64(x)
	case uint32:
		f = float64(x)
	case uint64:
		f = float64(x)
	case *float64:
		if x != nil {
			f = *x
		}
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(x, ",", ".")), 64)
		if err == nil {
			f = parsed
		}
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// normalizeSpaces заменяет неразрывные пробелы разделителя разрядов на обычные
func normalizeSpaces(s string) string {
	return strings.NewReplacer("\u00a0", " ", "\u202f", " ").Replace(s)
}
