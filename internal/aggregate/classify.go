package aggregate

import "strings"

// TaskGroups is the fixed column order of the weekly task-group rollup:
// the four headline task categories plus the catch-all.
var TaskGroups = []string{"Absetzen", "Richten", "Verladen", "Zusammenfahren", "Sonstige"}

var taskGroupPrefixes = []struct {
	prefix string
	group  string
}{
	{"absetzen", "Absetzen"},
	{"richten", "Richten"},
	{"verladen", "Verladen"},
	{"zusammenfahren", "Zusammenfahren"},
}

// ClassifyTask assigns a metric to one of the headline task groups by
// case-insensitive name prefix, bucketing everything else as "Sonstige".
func ClassifyTask(metric string) string {
	m := strings.ToLower(strings.TrimSpace(metric))
	for _, p := range taskGroupPrefixes {
		if strings.HasPrefix(m, p.prefix) {
			return p.group
		}
	}
	return "Sonstige"
}
