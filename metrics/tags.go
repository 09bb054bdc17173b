package metrics

import "strconv"

// Tags identifies one route for metric tagging purposes.
type Tags struct {
	Method string
	URL    string
}

func (t Tags) List() []string {
	return []string{
		"method:" + t.Method,
		"url:" + t.URL,
	}
}

func statusTag(code int) string {
	return "statusCode:" + strconv.Itoa(code)
}
