package fqn

import (
	"fmt"
	"regexp"
	"strings"
)

// tablePattern accepts both "project.dataset.table" and
// "project:dataset.table". The colon separator is what BigQuery's legacy
// tooling emits between project and dataset, so both spellings show up in
// entry resources and user input.
var tablePattern = regexp.MustCompile(`^([^.]+)[.:]([^.]+)\.([^.]+)`)

const resourcePrefix = "//bigquery.googleapis.com/projects/"

// ParseError reports a table name that does not follow the
// project[.:]dataset.table convention.
type ParseError struct {
	Input string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("malformed table FQN %q: expected project[.:]dataset.table", e.Input)
}

// Split breaks a fully qualified table name into its project, dataset and
// table components.
func Split(tableFQN string) (project, dataset, table string, err error) {
	groups := tablePattern.FindStringSubmatch(tableFQN)
	if groups == nil {
		return "", "", "", ParseError{Input: tableFQN}
	}
	return groups[1], groups[2], groups[3], nil
}

// BigQueryResource builds the canonical BigQuery resource URI that catalog
// and scan definitions use to reference a table.
func BigQueryResource(tableFQN string) (string, error) {
	project, dataset, table, err := Split(tableFQN)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%s/datasets/%s/tables/%s", resourcePrefix, project, dataset, table), nil
}

// FromResource is the inverse of BigQueryResource: it turns a BigQuery
// resource URI back into a dotted table FQN. Inputs that do not carry the
// resource prefix are returned with the path separators collapsed anyway,
// matching how upstream entries encode their resource field.
func FromResource(resource string) string {
	out := strings.TrimPrefix(resource, resourcePrefix)
	out = strings.ReplaceAll(out, "/datasets/", ".")
	out = strings.ReplaceAll(out, "/tables/", ".")
	return out
}
