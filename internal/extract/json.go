package extract

import (
	"strconv"

	"github.com/tidwall/gjson"
)

// JSONArgs walks a JSON body and returns every leaf value as a JsonArg
// (named by its dotted path) plus every object key encountered as a
// JsonArgName, mirroring how ARGS/ARGS_NAMES flatten a POST body
// regardless of its shape.
func JSONArgs(body []byte) (args []Value, names []Value) {
	if !gjson.ValidBytes(body) {
		return nil, nil
	}
	root := gjson.ParseBytes(body)
	walkJSON("", root, &args, &names)
	return args, names
}

func walkJSON(path string, result gjson.Result, args, names *[]Value) {
	switch {
	case result.IsObject():
		result.ForEach(func(key, value gjson.Result) bool {
			childPath := key.String()
			if path != "" {
				childPath = path + "." + key.String()
			}
			*names = append(*names, newStr(SourceJSONArgName, key.String()))
			walkJSON(childPath, value, args, names)
			return true
		})
	case result.IsArray():
		index := 0
		result.ForEach(func(_, value gjson.Result) bool {
			childPath := path + "." + strconv.Itoa(index)
			if path == "" {
				childPath = strconv.Itoa(index)
			}
			walkJSON(childPath, value, args, names)
			index++
			return true
		})
	default:
		*args = append(*args, newNamedStr(SourceJSONArg, path, result.String()))
		*names = append(*names, newStr(SourceJSONArgName, path))
	}
}
