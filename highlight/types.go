package highlight

// Type is the classification of one grapheme cluster.
type Type uint8

const (
	None Type = iota
	Number
	String
	Character
	LineComment
	BlockComment
	PrimaryKeyword
	SecondaryKeyword
	Match
)

func (t Type) String() string {
	switch t {
	case None:
		return "none"
	case Number:
		return "number"
	case String:
		return "string"
	case Character:
		return "character"
	case LineComment:
		return "line-comment"
	case BlockComment:
		return "block-comment"
	case PrimaryKeyword:
		return "primary-keyword"
	case SecondaryKeyword:
		return "secondary-keyword"
	case Match:
		return "match"
	default:
		return "unknown"
	}
}

// State records whether a line's cached tags can be reused.
type State uint8

const (
	// Stale tags must be recomputed before use.
	Stale State = iota
	// Valid tags are current; the line does not end inside a block comment.
	Valid
	// OpenComment tags were computed but the line ends inside an unterminated
	// block comment, so they are recomputed on every pass.
	OpenComment
)

func (s State) String() string {
	switch s {
	case Stale:
		return "stale"
	case Valid:
		return "valid"
	case OpenComment:
		return "open-comment"
	default:
		return "unknown"
	}
}

// Feature is a lexical construct a Profile may enable.
type Feature uint8

const (
	Numbers Feature = iota
	Strings
	Characters
	Comments
	BlockComments
)

// Markers are the comment delimiters of a language.
type Markers struct {
	Line       string
	BlockOpen  string
	BlockClose string
}

// DefaultMarkers are the C-family comment delimiters.
var DefaultMarkers = Markers{Line: "//", BlockOpen: "/*", BlockClose: "*/"}

// Profile is the read-only view of a language the classifier consumes.
type Profile interface {
	Name() string
	Enabled(f Feature) bool
	PrimaryKeywords() []string
	SecondaryKeywords() []string
	Markers() Markers
}
