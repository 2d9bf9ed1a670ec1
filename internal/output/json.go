package output

import (
	"encoding/json"

	"github.com/pui-dev/pui/pkg/model"
)

func ToJSON(bindings []model.PortBinding) (string, error) {
	if bindings == nil {
		bindings = []model.PortBinding{}
	}
	data, err := json.MarshalIndent(bindings, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
