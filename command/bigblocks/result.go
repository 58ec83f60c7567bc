package bigblocks

import (
	"bytes"
	"fmt"

	"github.com/xgr-network/facetkit/command/helper"
)

type BigBlocksResult struct {
	Address        string `json:"address"`
	Network        string `json:"network"`
	UsingBigBlocks bool   `json:"usingBigBlocks"`
	Status         string `json:"status"`
	Response       string `json:"response,omitempty"`
}

func (r *BigBlocksResult) GetOutput() string {
	var buffer bytes.Buffer

	buffer.WriteString("\n[BIG BLOCKS]\n")
	buffer.WriteString(helper.FormatKV([]string{
		fmt.Sprintf("Address|%s", r.Address),
		fmt.Sprintf("Network|%s", r.Network),
		fmt.Sprintf("Using big blocks|%t", r.UsingBigBlocks),
		fmt.Sprintf("Status|%s", r.Status),
		fmt.Sprintf("Response|%s", r.Response),
	}))
	buffer.WriteString("\n")

	return buffer.String()
}
