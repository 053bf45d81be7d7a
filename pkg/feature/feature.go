package feature

// ID identifies a protocol feature. Wire-format positions map to
// catalog order, so IDs are stable across releases.
type ID uint8

const (
	// Root is the mandatory first feature. Its compatibility gates
	// every other feature.
	Root ID = 0

	// Translation covers the message translation key set.
	Translation ID = 1

	// Icons covers icon and emote rendering support.
	Icons ID = 2
)

// String returns the feature name.
func (f ID) String() string {
	switch f {
	case Root:
		return "Root"
	case Translation:
		return "Translation"
	case Icons:
		return "Icons"
	default:
		return "Unknown"
	}
}
