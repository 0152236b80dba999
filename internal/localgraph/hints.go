package localgraph

import (
	"encoding/base64"
	"encoding/json"
)

// hintToken binds a snapped node to the dataset it was snapped against.
// A token presented against a different dataset is silently ignored.
type hintToken struct {
	N int64  `json:"n"`
	C uint32 `json:"c"`
}

func encodeHint(node int64, checksum uint32) string {
	data, err := json.Marshal(hintToken{N: node, C: checksum})
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(data)
}

// decodeHint recovers the node id from a token. It reports false for
// malformed tokens and tokens minted against another dataset.
func decodeHint(s string, checksum uint32) (int64, bool) {
	if s == "" {
		return 0, false
	}
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return 0, false
	}
	var tok hintToken
	if err := json.Unmarshal(data, &tok); err != nil {
		return 0, false
	}
	if tok.C != checksum {
		return 0, false
	}
	return tok.N, true
}
