package output

import (
	"github.com/goccy/go-json"
)

// JSONFormatter renders result records as JSON for machine consumers.
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

// Format generates JSON output for any result record.
func (jf *JSONFormatter) Format(result any) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
