package types

// ThemeMode is the persisted theme preference. It rides along in every
// backup document so a restore brings the look back too.
type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
	ThemeAuto  ThemeMode = "auto"
)

// Valid reports whether the mode is one of the three recognized values.
func (m ThemeMode) Valid() bool {
	switch m {
	case ThemeLight, ThemeDark, ThemeAuto:
		return true
	}
	return false
}
