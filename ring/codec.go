package ring

import "encoding/json"

func unquote(data []byte) (string, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", err
	}

	return s, nil
}

func unquoteList(data []byte) ([]string, error) {
	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}

	return out, nil
}
