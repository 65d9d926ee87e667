package labels

import (
	"encoding/xml"
	"io"
)

// XMLExtractor reads labels from an OpenVINO IR file:
// the value attribute of <rt_info><framework><names> under the root element.
type XMLExtractor struct{}

var xmlNamesPath = []string{"rt_info", "framework", "names"}

// Extract implements Extractor. The document is streamed, so large IR files
// are not loaded into memory.
func (XMLExtractor) Extract(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)

	// stack[0] is the root element; the match is anchored below it.
	var stack []string
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return "", ErrNoLabels
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			stack = append(stack, t.Name.Local)
			if matchesPath(stack) {
				for _, attr := range t.Attr {
					if attr.Name.Local == "value" {
						return attr.Value, nil
					}
				}
				return "", ErrNoLabels
			}
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}
}

func matchesPath(stack []string) bool {
	if len(stack) != len(xmlNamesPath)+1 {
		return false
	}
	for i, name := range xmlNamesPath {
		if stack[i+1] != name {
			return false
		}
	}
	return true
}
