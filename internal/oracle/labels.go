package oracle

import "strings"

// ExtractLabels scans a multi-line reply for lines of the form "LABEL: value"
// and returns the value of the first line found for each label. Labels are
// matched case-sensitively after trimming leading whitespace; absent labels
// have no key in the result.
func ExtractLabels(reply string, labels ...string) map[string]string {
	found := make(map[string]string, len(labels))

	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		for _, label := range labels {
			if _, seen := found[label]; seen {
				continue
			}
			prefix := label + ":"
			if strings.HasPrefix(line, prefix) {
				found[label] = strings.TrimSpace(strings.TrimPrefix(line, prefix))
				break
			}
		}
	}
	return found
}

// FirstUnlabeledLine returns the first non-empty line of text, trimmed,
// skipping lines that start with one of labels and a colon.
func FirstUnlabeledLine(text string, labels ...string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || hasLabel(line, labels) {
			continue
		}
		return line
	}
	return ""
}

func hasLabel(line string, labels []string) bool {
	for _, label := range labels {
		if strings.HasPrefix(line, label+":") {
			return true
		}
	}
	return false
}
