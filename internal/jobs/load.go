package jobs

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jonathan/job-tailor/internal/types"
)

// requiredColumns must all be present in the postings header row
var requiredColumns = []string{"id", "title", "company", "location", "description"}

// Load reads job postings from a CSV file with a header row. Required columns
// are id, title, company, location, description; apply_url and source are
// optional. A blank id defaults to the 1-based row ordinal.
func Load(path string) ([]types.Posting, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to open file", Cause: err}
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &LoadError{Path: path, Message: "file is empty"}
		}
		return nil, &LoadError{Path: path, Message: "failed to read header row", Cause: err}
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Path: path, Columns: missing}
	}

	var postings []types.Posting
	for ordinal := 1; ; ordinal++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &LoadError{Path: path, Message: "failed to read record", Cause: err}
		}

		field := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		id := field("id")
		if id == "" {
			id = strconv.Itoa(ordinal)
		}

		postings = append(postings, types.Posting{
			ID:          id,
			Title:       field("title"),
			Company:     field("company"),
			Location:    field("location"),
			Description: field("description"),
			ApplyURL:    field("apply_url"),
			Source:      field("source"),
		})
	}

	return postings, nil
}

// FindByID returns the posting with the given id. The path is only used to
// build a descriptive lookup error.
func FindByID(postings []types.Posting, id, path string) (types.Posting, error) {
	for _, p := range postings {
		if p.ID == id {
			return p, nil
		}
	}
	return types.Posting{}, &LookupError{ID: id, Path: path}
}
