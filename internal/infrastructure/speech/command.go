package speech

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// splitCommand splits a command template on whitespace and substitutes
// placeholder in every argument. Without a placeholder, value is appended.
func splitCommand(template, placeholder, value string) ([]string, error) {
	fields := strings.Fields(template)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty command template")
	}

	found := false
	for i, f := range fields {
		if strings.Contains(f, placeholder) {
			fields[i] = strings.ReplaceAll(f, placeholder, value)
			found = true
		}
	}
	if !found {
		fields = append(fields, value)
	}
	return fields, nil
}

func run(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w: %s", args[0], err, strings.TrimSpace(string(out)))
	}
	return nil
}
