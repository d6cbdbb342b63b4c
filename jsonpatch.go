package mondoc

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/mondoc/go-mondoc/doc"
	"github.com/mondoc/go-mondoc/parse"
)

// MarshalJSON renders a document as JSON. Field order of objects is not
// preserved; JSON object keys come out sorted.
func MarshalJSON(node *doc.Node) ([]byte, error) {
	return json.Marshal(doc.ToAny(node))
}

// ApplyJSONPatch applies an RFC 6902 patch, given as an array document, to a
// copy of document.
func ApplyJSONPatch(document, patch *doc.Node) (*doc.Node, error) {
	if patch == nil || patch.Type != doc.ArrayType {
		return nil, fmt.Errorf("json patch must be an array of operations")
	}
	pj, err := MarshalJSON(patch)
	if err != nil {
		return nil, err
	}
	p, err := jsonpatch.DecodePatch(pj)
	if err != nil {
		return nil, fmt.Errorf("decoding json patch: %w", err)
	}
	dj, err := MarshalJSON(document)
	if err != nil {
		return nil, err
	}
	out, err := p.Apply(dj)
	if err != nil {
		return nil, fmt.Errorf("applying json patch: %w", err)
	}
	return parse.Parse(out)
}
