package extract

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// XMLValues walks an XML body with a streaming token decoder and returns
// its element/attribute names (XmlPropName), attribute values keyed by
// attribute name (XmlProp), and trimmed element character data (XmlText).
// Malformed XML yields no values rather than an error — CRS treats an
// unparsable body the same as an absent one for extraction purposes.
func XMLValues(body []byte) (props, propNames, text []Value) {
	dec := xml.NewDecoder(bytes.NewReader(body))
	var stack []string

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, nil
		}

		switch t := tok.(type) {
		case xml.StartElement:
			stack = append(stack, t.Name.Local)
			propNames = append(propNames, newStr(SourceXMLPropName, t.Name.Local))
			for _, attr := range t.Attr {
				propNames = append(propNames, newStr(SourceXMLPropName, attr.Name.Local))
				props = append(props, newNamedStr(SourceXMLProp, attr.Name.Local, attr.Value))
			}

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

		case xml.CharData:
			trimmed := strings.TrimSpace(string(t))
			if trimmed == "" {
				continue
			}
			text = append(text, newStr(SourceXMLText, trimmed))
		}
	}

	return props, propNames, text
}
