package viewmodel

import (
	"fmt"
	"hash/fnv"
	"math"

	"satori_dojo/internal/domain/models"
)

// ThemeStyles — готовый к отдаче набор стилей секции: цвета с альфа-каналом,
// выведенным из прозрачности темы. Не привязан к конкретной технологии
// рендеринга и проверяется юнит-тестами без DOM.
type ThemeStyles struct {
	ClassName       string `json:"class_name,omitempty"`
	TextColor       string `json:"text_color"`
	BackgroundColor string `json:"background_color"`
	BorderColor     string `json:"border_color"`
}

// Детерминированная палитра для сущностей без темы: цвет выбирается
// хешем имени, стабилен между запросами.
var fallbackPalette = []string{
	"#E53E3E",
	"#DD6B20",
	"#D69E2E",
	"#38A169",
	"#319795",
	"#3182CE",
	"#5A67D8",
	"#805AD5",
}

const (
	neutralText  = "#A0AEC0"
	neutralColor = "#718096"
	fullyOpaque  = "FF"
	defaultAlpha = 33 // подложка без темы, примерно 80% прозрачности
)

// AlphaHex переводит прозрачность 0-100 (100 = полностью прозрачно)
// в двухзначный hex альфа-канала: alpha = round((100 - t) * 2.55).
func AlphaHex(transparency int) string {
	if transparency < 0 {
		transparency = 0
	}
	if transparency > 100 {
		transparency = 100
	}
	alpha := int(math.Round(float64(100-transparency) * 2.55))
	return fmt.Sprintf("%02X", alpha)
}

// ResolveThemeStyles строит стили по цепочке фолбеков:
// явная тема сущности → тема по slug из списка тем → детерминированный
// цвет из палитры по имени → нейтральный серый.
func ResolveThemeStyles(theme *models.ColorTheme, slug string, themes []models.ColorTheme, name string) ThemeStyles {
	if theme == nil && slug != "" {
		for i := range themes {
			if themes[i].Slug == slug {
				theme = &themes[i]
				break
			}
		}
	}

	if theme != nil {
		// рамка вдвое менее прозрачна подложки
		alpha := AlphaHex(theme.Transparency)
		borderAlpha := AlphaHex(theme.Transparency / 2)
		return ThemeStyles{
			ClassName:       "theme-" + theme.Slug,
			TextColor:       theme.TextColor,
			BackgroundColor: theme.BackgroundColor + alpha,
			BorderColor:     theme.BorderColor + borderAlpha,
		}
	}

	if name != "" {
		color := fallbackPalette[hashName(name)%uint32(len(fallbackPalette))]
		return ThemeStyles{
			TextColor:       color,
			BackgroundColor: fmt.Sprintf("%s%02X", color, defaultAlpha),
			BorderColor:     color + fullyOpaque,
		}
	}

	return ThemeStyles{
		TextColor:       neutralText,
		BackgroundColor: fmt.Sprintf("%s%02X", neutralColor, defaultAlpha),
		BorderColor:     neutralColor + fullyOpaque,
	}
}

func hashName(name string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(name))
	return h.Sum32()
}
