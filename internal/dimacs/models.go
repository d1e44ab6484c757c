package dimacs

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ParseModels reads a reference solution file (one model per line, space
// separated signed literals, 0-terminated) for comparison against a
// solver's own witness in tests. Kept from the teacher's models.go
// unchanged in shape: it has no dependency on the solver API, only on the
// file format.
func ParseModels(filename string) ([][]bool, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var models [][]bool
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		model := make([]bool, 0, len(fields))
		for _, f := range fields {
			if f == "0" {
				continue
			}
			l, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("dimacs: parsing literal %q: %w", f, err)
			}
			model = append(model, l > 0)
		}
		models = append(models, model)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return models, nil
}
