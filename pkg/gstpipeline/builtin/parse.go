package builtin

import (
	"fmt"
	"strings"

	"github.com/xaionaro-go/gstpipeline/pkg/gstpipeline/types"
)

type Element struct {
	Factory    string
	Properties map[string]string
}

func (e Element) Name() string {
	return e.Properties["name"]
}

// parseDescription understands the node-and-link subset of the launch
// grammar this backend needs: elements separated by '!', each a factory
// name followed by key=value properties.
func parseDescription(description string) ([]Element, error) {
	var result []Element
	for _, segment := range strings.Split(description, "!") {
		fields := strings.Fields(segment)
		if len(fields) == 0 {
			return nil, types.ErrInvalidDescription{
				Description: description,
				Message:     "empty element description",
			}
		}
		element := Element{
			Factory:    fields[0],
			Properties: map[string]string{},
		}
		for _, field := range fields[1:] {
			k, v, ok := strings.Cut(field, "=")
			if !ok {
				return nil, types.ErrInvalidDescription{
					Description: description,
					Message:     fmt.Sprintf("'%s' is not a key=value property", field),
				}
			}
			element.Properties[k] = v
		}
		result = append(result, element)
	}
	return result, nil
}
