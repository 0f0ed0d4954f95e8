package validation

import (
	"fmt"
	"regexp"
)

// TagPattern определяет формат инвентарной метки на наклейке:
// префикс категории (2-5 заглавных букв), дефис, номер (4-6 цифр).
// Примеры: IT-00042, LAPT-1234
var TagPattern = regexp.MustCompile(`^[A-Z]{2,5}-[0-9]{4,6}$`)

// ValidateTag проверяет, что строка похожа на инвентарную метку.
// Сканер штрихкодов иногда возвращает мусор, отсекаем его до запроса.
func ValidateTag(tag string) error {
	if tag == "" {
		return fmt.Errorf("asset tag cannot be empty")
	}

	if !TagPattern.MatchString(tag) {
		return fmt.Errorf("asset tag must look like IT-00042 (2-5 uppercase letters, dash, 4-6 digits)")
	}

	return nil
}
