package content

import "errors"

// ErrInvalidKind signals a content kind outside the supported set.
var ErrInvalidKind = errors.New("invalid content kind")

// Kind names one of the three content collections.
type Kind string

const (
	KindMusic  Kind = "music"
	KindTattoo Kind = "tattoo"
	KindNews   Kind = "news"
)

// StatusPublished is the only status visible through public read paths.
const StatusPublished = "published"

// ParseKind validates a caller-supplied content type.
func ParseKind(raw string) (Kind, error) {
	switch Kind(raw) {
	case KindMusic, KindTattoo, KindNews:
		return Kind(raw), nil
	}
	return "", ErrInvalidKind
}
