package utils

import "strings"

const (
	// displayNameAlphabet lists every byte allowed in a restricted display name.
	displayNameAlphabet = "abcdefghijklmnopqrstuvwxyz" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"0123456789" +
		"!#$%&()*+,-./:;<=>?@[]^_`{|}~ "
	// displayNamePlaceholder replaces a name with no surviving bytes.
	displayNamePlaceholder = "_"
)

// SanitizeDisplayName filters name down to the safe display alphabet when
// restrict is true, keeping surviving bytes in their original order. A name
// left empty by the filter becomes the placeholder. When restrict is false the
// input is returned unchanged.
func SanitizeDisplayName(name string, restrict bool) string {
	if !restrict {
		return name
	}
	var sanitizedBuilder strings.Builder
	sanitizedBuilder.Grow(len(name))
	for byteIndex := 0; byteIndex < len(name); byteIndex++ {
		if strings.IndexByte(displayNameAlphabet, name[byteIndex]) >= 0 {
			sanitizedBuilder.WriteByte(name[byteIndex])
		}
	}
	if sanitizedBuilder.Len() == 0 {
		return displayNamePlaceholder
	}
	return sanitizedBuilder.String()
}
