package selector

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Size is the length of a function selector in bytes
const Size = 4

// Selector is the 4-byte identifier used by contract dispatch to route calls
type Selector [Size]byte

// RawEntry is a signature/selector pair exactly as a Source reported it
type RawEntry struct {
	Signature string
	Value     string
}

// Entry is a function signature paired with its parsed selector
type Entry struct {
	Signature string   `json:"signature"`
	Selector  Selector `json:"selector"`
}

func (s Selector) String() string {
	return hexutil.Encode(s[:])
}

func (s Selector) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Selector) UnmarshalText(input []byte) error {
	parsed, err := ParseSelector(string(input))
	if err != nil {
		return err
	}

	*s = parsed

	return nil
}

// ParseSelector decodes a hex string, with or without 0x prefix, into a Selector.
// Anything that does not decode to exactly 4 bytes is rejected with ErrInvalidSelector.
func ParseSelector(value string) (Selector, error) {
	var sel Selector

	raw := strings.TrimSpace(value)
	if len(raw) >= 2 && raw[0] == '0' && (raw[1] == 'x' || raw[1] == 'X') {
		raw = raw[2:]
	}

	if raw == "" {
		return sel, fmt.Errorf("%w: empty value", ErrInvalidSelector)
	}

	decoded, err := hexutil.Decode("0x" + raw)
	if err != nil {
		return sel, fmt.Errorf("%w: %q: %w", ErrInvalidSelector, value, err)
	}

	if len(decoded) != Size {
		return sel, fmt.Errorf("%w: %q decodes to %d bytes, expected %d",
			ErrInvalidSelector, value, len(decoded), Size)
	}

	copy(sel[:], decoded)

	return sel, nil
}

// ParseEntries parses every raw value in source order. The first invalid value aborts
// the whole batch; duplicates are passed through untouched.
func ParseEntries(raw []RawEntry) ([]Entry, error) {
	entries := make([]Entry, 0, len(raw))

	for i, r := range raw {
		sel, err := ParseSelector(r.Value)
		if err != nil {
			return nil, &InvalidSelectorError{
				Index:     i,
				Signature: r.Signature,
				Value:     r.Value,
				Err:       err,
			}
		}

		entries = append(entries, Entry{Signature: r.Signature, Selector: sel})
	}

	return entries, nil
}

// Selectors returns the selectors of the entries, keeping their order
func Selectors(entries []Entry) []Selector {
	sels := make([]Selector, len(entries))
	for i, e := range entries {
		sels[i] = e.Selector
	}

	return sels
}

// Exclude drops every entry whose selector appears in the exclude list
func Exclude(entries []Entry, exclude []Selector) []Entry {
	if len(exclude) == 0 {
		return entries
	}

	skip := make(map[Selector]struct{}, len(exclude))
	for _, s := range exclude {
		skip[s] = struct{}{}
	}

	kept := make([]Entry, 0, len(entries))

	for _, e := range entries {
		if _, ok := skip[e.Selector]; ok {
			continue
		}

		kept = append(kept, e)
	}

	return kept
}
