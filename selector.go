package invoicegen

import "sort"

// identifierKeys is the ordered fallback chain for locating a record's
// distinguishing invoice identifier. The first present, non-blank field
// wins.
var identifierKeys = []string{"invoice_id", "invoiceId", "invoice", "id", "ID"}

// ExtractIdentifier returns the record's invoice identifier, trying the
// fallback chain in priority order. The second return is false when no
// candidate field holds a usable value.
func ExtractIdentifier(rec Record) (string, bool) {
	for _, key := range identifierKeys {
		f, ok := rec[key]
		if ok && !f.Blank() {
			return f.Value, true
		}
	}
	return "", false
}

// ListIdentifiers collects the unique identifiers of all records, sorted
// in ascending lexicographic order. The order is intentionally not
// numeric: "10" sorts before "2".
func ListIdentifiers(records []Record) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, rec := range records {
		id, ok := ExtractIdentifier(rec)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// FindRecord returns the first record whose identifier equals id, or
// (nil, false) when no record matches or no record has an identifier.
func FindRecord(records []Record, id string) (Record, bool) {
	for _, rec := range records {
		got, ok := ExtractIdentifier(rec)
		if ok && got == id {
			return rec, true
		}
	}
	return nil, false
}
