package invoicegen

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// LoadDataFile parses a CSV or JSON file into an ordered sequence of
// records. A non-nil error always comes with an empty slice; callers treat
// it as a terminal but non-crashing condition for the run.
func LoadDataFile(path string) ([]Record, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(path)
	case ".json":
		return loadJSON(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedData, filepath.Ext(path))
	}
}

// readDataFile reads a data file through a BOM-stripping UTF-8 decoder.
// Excel-exported CSV commonly carries a UTF-8 byte order mark which would
// otherwise end up glued to the first header name.
func readDataFile(path string) ([]byte, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from the interactive file picker
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadData, err)
	}
	defer f.Close()

	dec := unicode.UTF8BOM.NewDecoder()
	data, err := io.ReadAll(transform.NewReader(f, dec))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadData, err)
	}
	return data, nil
}

// loadCSV parses CSV with the header row as field names. A strict pass runs
// first; if it fails, a lenient line-oriented pass (lazy quotes, variable
// field counts) is tried before giving up.
func loadCSV(path string) ([]Record, error) {
	data, err := readDataFile(path)
	if err != nil {
		return nil, err
	}

	records, strictErr := parseCSV(data, false)
	if strictErr == nil {
		return records, nil
	}

	records, lenientErr := parseCSV(data, true)
	if lenientErr == nil {
		return records, nil
	}

	return nil, fmt.Errorf("%w: %v (lenient retry: %v)", ErrParseCSV, strictErr, lenientErr)
}

// parseCSV converts raw CSV bytes into records. Headers are whitespace
// trimmed. Rows shorter than the header are null-padded; in lenient mode
// longer rows are truncated instead of rejected.
func parseCSV(data []byte, lenient bool) ([]Record, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.TrimLeadingSpace = true
	if lenient {
		r.LazyQuotes = true
		r.FieldsPerRecord = -1
	}

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}

	var records []Record
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}

		rec := make(Record, len(header))
		for i, name := range header {
			if name == "" {
				continue
			}
			if i < len(row) {
				rec[name] = Field{Value: row[i]}
			} else {
				rec[name] = Field{Null: true}
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// loadJSON parses JSON data. An array root yields one record per element,
// an object root yields a single record, any other root shape is an error.
func loadJSON(path string) ([]Record, error) {
	data, err := readDataFile(path)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseJSON, err)
	}

	switch v := root.(type) {
	case []any:
		records := make([]Record, 0, len(v))
		for i, elem := range v {
			obj, ok := elem.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: element %d is not an object", ErrParseJSON, i)
			}
			records = append(records, toRecord(obj))
		}
		return records, nil
	case map[string]any:
		return []Record{toRecord(v)}, nil
	default:
		return nil, fmt.Errorf("%w: root must be an array or object, got %T", ErrParseJSON, root)
	}
}

// toRecord flattens a decoded JSON object into a Record. Keys are trimmed;
// null becomes a null field, everything else its display string.
func toRecord(obj map[string]any) Record {
	rec := make(Record, len(obj))
	for key, value := range obj {
		name := strings.TrimSpace(key)
		if name == "" {
			continue
		}
		rec[name] = toField(value)
	}
	return rec
}

// toField normalizes a decoded JSON value to its string form.
func toField(value any) Field {
	switch v := value.(type) {
	case nil:
		return Field{Null: true}
	case string:
		return Field{Value: v}
	case json.Number:
		return Field{Value: v.String()}
	case bool:
		return Field{Value: strconv.FormatBool(v)}
	default:
		// Nested arrays/objects have no placeholder representation;
		// fall back to their JSON encoding.
		b, err := json.Marshal(v)
		if err != nil {
			return Field{Null: true}
		}
		return Field{Value: string(b)}
	}
}
