package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON renders y as plain JSON.  Objects keep their key order and
// numeric leaves are rendered as strings holding their canonical text.
func (y *Node) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := y.writeJSON(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (y *Node) writeJSON(buf *bytes.Buffer) error {
	switch y.Type {
	case StringType, NumberType:
		d, err := json.Marshal(y.Text())
		if err != nil {
			return err
		}
		buf.Write(d)
		return nil
	case ObjectType:
		buf.WriteByte('{')
		for i, f := range y.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			d, err := json.Marshal(f)
			if err != nil {
				return err
			}
			buf.Write(d)
			buf.WriteByte(':')
			if err := y.Values[i].writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	default:
		return fmt.Errorf("cannot marshal %s", y.Type)
	}
}
