package source

import (
	"fmt"

	"github.com/valyala/fastjson"

	"github.com/xgr-network/facetkit/selector"
)

// parseIdentifiers reads a JSON object of signature -> selector strings, keeping the
// document order of the keys
func parseIdentifiers(data []byte) ([]selector.RawEntry, error) {
	var p fastjson.Parser

	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", selector.ErrMalformedSourceOutput, err)
	}

	return identifiersFromValue(v)
}

func identifiersFromValue(v *fastjson.Value) ([]selector.RawEntry, error) {
	obj, err := v.Object()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", selector.ErrMalformedSourceOutput, err)
	}

	var (
		entries  = make([]selector.RawEntry, 0, obj.Len())
		visitErr error
	)

	obj.Visit(func(key []byte, val *fastjson.Value) {
		if visitErr != nil {
			return
		}

		sel, err := val.StringBytes()
		if err != nil {
			visitErr = fmt.Errorf("%w: value of %q: %w", selector.ErrMalformedSourceOutput, key, err)

			return
		}

		entries = append(entries, selector.RawEntry{
			Signature: string(key),
			Value:     string(sel),
		})
	})

	if visitErr != nil {
		return nil, visitErr
	}

	return entries, nil
}
