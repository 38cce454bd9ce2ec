package btxt

import "fmt"
import "errors"
import "regexp"
import "strings"
import "image/color"

import "gopkg.in/ini.v1"

// Default seconds between typewriter character reveals.
const DefaultCharDuration = 0.05

var ErrInvalidSettings = errors.New("invalid btxt settings")

var colorRegexp = regexp.MustCompile(`\A#?([0-9A-F]{2})([0-9A-F]{2})([0-9A-F]{2})([0-9A-F]{2})?\z`)

// Text settings loaded from an INI section. Recognized keys:
//
//	Size = 32          ; glyph size in pixels
//	HorzOffset = 57    ; horizontal overlap, percentage of Size
//	VertOffset = 70    ; line distance, percentage of Size
//	Color = #FFCC00    ; RRGGBB or RRGGBBAA
//	CharDuration = 0.05 ; typewriter seconds per character
//
// Missing keys keep the values from [DefaultSettings]().
type Settings struct {
	Style        Style
	CharDuration float64
}

// Returns the settings used for missing keys.
func DefaultSettings() Settings {
	return Settings{
		Style:        DefaultStyle(32),
		CharDuration: DefaultCharDuration,
	}
}

// Loads settings from the given INI section. The source can be
// anything [ini.LoadSources]() accepts: a file path, a []byte or an
// io.Reader. An empty section name stands for the default section.
func LoadSettings(source interface{}, section string) (Settings, error) {
	settings := DefaultSettings()
	options := ini.LoadOptions{
		Insensitive:             false,
		IgnoreInlineComment:     false,
		SkipUnrecognizableLines: true,
		AllowShadows:            false,
	}

	file, err := ini.LoadSources(options, source)
	if err != nil { return settings, fmt.Errorf("loading btxt settings: %w", err) }
	sec, err := file.GetSection(section)
	if err != nil { return settings, fmt.Errorf("loading btxt settings: %w", err) }

	settings.Style.Size = sec.Key("Size").MustInt(settings.Style.Size)
	settings.Style.HorzOffset = sec.Key("HorzOffset").MustInt(settings.Style.HorzOffset)
	settings.Style.VertOffset = sec.Key("VertOffset").MustInt(settings.Style.VertOffset)
	settings.CharDuration = sec.Key("CharDuration").MustFloat64(settings.CharDuration)
	if sec.HasKey("Color") {
		rgba, err := ParseHexColor(sec.Key("Color").String())
		if err != nil { return settings, err }
		settings.Style.Color = rgba
	}

	if settings.Style.Size <= 0 {
		return settings, fmt.Errorf("%w: Size must be positive (got %d)", ErrInvalidSettings, settings.Style.Size)
	}
	if settings.CharDuration < 0 {
		return settings, fmt.Errorf("%w: negative CharDuration", ErrInvalidSettings)
	}
	return settings, nil
}

// Parses colors in #RRGGBB or #RRGGBBAA format. The leading '#'
// is optional and digits are case insensitive.
func ParseHexColor(value string) (color.RGBA, error) {
	matches := colorRegexp.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(value)))
	if matches == nil {
		return color.RGBA{}, fmt.Errorf("%w: bad color %q", ErrInvalidSettings, value)
	}
	rgba := color.RGBA{hexByte(matches[1]), hexByte(matches[2]), hexByte(matches[3]), 255}
	if matches[4] != "" { rgba.A = hexByte(matches[4]) }
	return rgba, nil
}

// already validated by colorRegexp
func hexByte(digits string) uint8 {
	return (hexDigit(digits[0]) << 4) + hexDigit(digits[1])
}

func hexDigit(r uint8) uint8 {
	if r > '9' { return r - 55 }
	return r - 48
}
