package selectors

import (
	"github.com/xgr-network/facetkit/selector"
)

type SelectorsResult struct {
	Contract  string           `json:"contract"`
	Selectors []selector.Entry `json:"selectors"`
	Encoded   string           `json:"encoded"`
}

func newSelectorsResult(res *selector.Result) *SelectorsResult {
	entries := res.Entries
	if entries == nil {
		entries = []selector.Entry{}
	}

	return &SelectorsResult{
		Contract:  res.Contract,
		Selectors: entries,
		Encoded:   res.Hex(),
	}
}

// GetOutput is the single hex line consumed by deployment scripts
func (r *SelectorsResult) GetOutput() string {
	return r.Encoded
}
