package recordfile

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/nagorder/internal/nag"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
	"gopkg.in/yaml.v3"
)

var recordType = cty.Map(cty.String)

// Encode renders r in the given format.
func Encode(f Format, r nag.Record) ([]byte, error) {
	switch f {
	case FormatJSON:
		val := cty.MapValEmpty(cty.String)
		if len(r) > 0 {
			elems := make(map[string]cty.Value, len(r))
			for k, v := range r {
				elems[k] = cty.StringVal(v)
			}
			val = cty.MapVal(elems)
		}
		return ctyjson.Marshal(val, recordType)
	case FormatYAML:
		return yaml.Marshal(map[string]string(r))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

// Decode parses data written by Encode. Every value must be a string. Data
// that cannot be parsed fails with a *nag.DeserialiseError, so it matches
// nag.ErrMalformedRecord.
func Decode(f Format, data []byte) (nag.Record, error) {
	var out map[string]string
	switch f {
	case FormatJSON:
		val, err := ctyjson.Unmarshal(data, recordType)
		if err != nil {
			return nil, malformed(f, err)
		}
		if val.IsNull() {
			return nil, malformed(f, errors.New("record is null"))
		}
		if err := gocty.FromCtyValue(val, &out); err != nil {
			return nil, malformed(f, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &out); err != nil {
			return nil, malformed(f, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	if out == nil {
		out = map[string]string{}
	}
	return nag.Record(out), nil
}

func malformed(f Format, err error) error {
	return &nag.DeserialiseError{Err: fmt.Errorf("decoding %s record: %w", f, err)}
}
