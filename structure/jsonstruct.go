package structure

import (
	"github.com/tidwall/gjson"
)

// parseJSON builds the tree from a nested JSON object. Two shapes are
// accepted: the explicit {"name": {"type": "folder", "contents": {...}}}
// convention, and plain nesting where an object value is a directory and
// anything else is a file. Keys are visited in document order.
func parseJSON(text string) (*Tree, error) {
	if !gjson.Valid(text) {
		return nil, &ParseError{Msg: "invalid JSON structure"}
	}
	root := &Node{Name: ".", Kind: KindDir}
	if err := jsonChildren(gjson.Parse(text), root); err != nil {
		return nil, err
	}
	return &Tree{Root: root}, nil
}

func jsonChildren(obj gjson.Result, parent *Node) error {
	var walkErr error
	obj.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if name == "" {
			return true
		}

		if typ := value.Get("type"); value.IsObject() && typ.Exists() {
			switch typ.String() {
			case "folder", "directory", "dir":
				node, err := descend(parent, 0, name, KindDir)
				if err != nil {
					walkErr = err
					return false
				}
				if contents := value.Get("contents"); contents.IsObject() {
					if err := jsonChildren(contents, node); err != nil {
						walkErr = err
						return false
					}
				}
			default:
				if _, err := descend(parent, 0, name, KindFile); err != nil {
					walkErr = err
					return false
				}
			}
			return true
		}

		if value.IsObject() {
			node, err := descend(parent, 0, name, KindDir)
			if err != nil {
				walkErr = err
				return false
			}
			if err := jsonChildren(value, node); err != nil {
				walkErr = err
				return false
			}
			return true
		}

		if _, err := descend(parent, 0, name, KindFile); err != nil {
			walkErr = err
			return false
		}
		return true
	})
	return walkErr
}
