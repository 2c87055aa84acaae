package contracts

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"
)

// Addresses pulls contract name to address pairs out of a deployment record
// for log summaries. Only top-level string fields holding hex addresses are
// reported, checksummed via EIP-55. Records of any other shape yield a nil
// map; they are still merged as-is, just not summarized.
func Addresses(record json.RawMessage) map[string]string {
	var fields map[string]any
	if err := json.Unmarshal(record, &fields); err != nil {
		return nil
	}

	var addrs map[string]string
	for name, value := range fields {
		str, ok := value.(string)
		if !ok || !common.IsHexAddress(str) {
			continue
		}
		if addrs == nil {
			addrs = make(map[string]string)
		}
		addrs[name] = common.HexToAddress(str).Hex()
	}
	return addrs
}
