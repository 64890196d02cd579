package catalogs

import (
	"math"
	"strconv"
	"strings"

	"github.com/agentstation/citylib/pkg/constants"
)

// Record field counts.
const (
	bookFields   = 5
	memberFields = 4
)

// EncodeBook renders b as id|title|author|category|issued.
func EncodeBook(b Book) string {
	return strings.Join([]string{
		strconv.Itoa(b.ID),
		b.Title,
		b.Author,
		b.Category,
		strconv.FormatBool(b.Issued),
	}, constants.RecordSeparator)
}

// DecodeBook parses one books file line. It reports false for blank
// lines, lines with fewer than five fields, and lines whose id or issued
// flag does not parse. Extra trailing fields are ignored.
//
// An id of math.MaxInt is rejected: loading it would leave no next id.
func DecodeBook(line string) (Book, bool) {
	if strings.TrimSpace(line) == "" {
		return Book{}, false
	}
	parts := strings.Split(line, constants.RecordSeparator)
	if len(parts) < bookFields {
		return Book{}, false
	}

	id, ok := parseRecordID(parts[0])
	if !ok {
		return Book{}, false
	}
	issued, ok := parseBool(parts[4])
	if !ok {
		return Book{}, false
	}

	return Book{
		ID:       id,
		Title:    parts[1],
		Author:   parts[2],
		Category: parts[3],
		Issued:   issued,
	}, true
}

// EncodeMember renders m as id|name|email|csv-of-issued-ids.
func EncodeMember(m Member) string {
	ids := make([]string, len(m.IssuedBookIDs))
	for i, id := range m.IssuedBookIDs {
		ids[i] = strconv.Itoa(id)
	}
	return strings.Join([]string{
		strconv.Itoa(m.ID),
		m.Name,
		m.Email,
		strings.Join(ids, constants.IDListSeparator),
	}, constants.RecordSeparator)
}

// DecodeMember parses one members file line. Issued ids are trimmed and
// empty tokens skipped; a single malformed id rejects the whole line. The
// member id follows the same limit as DecodeBook.
func DecodeMember(line string) (Member, bool) {
	if strings.TrimSpace(line) == "" {
		return Member{}, false
	}
	parts := strings.Split(line, constants.RecordSeparator)
	if len(parts) < memberFields {
		return Member{}, false
	}

	id, ok := parseRecordID(parts[0])
	if !ok {
		return Member{}, false
	}

	m := Member{ID: id, Name: parts[1], Email: parts[2]}
	if strings.TrimSpace(parts[3]) == "" {
		return m, true
	}
	for _, token := range strings.Split(parts[3], constants.IDListSeparator) {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		bookID, err := strconv.Atoi(token)
		if err != nil {
			return Member{}, false
		}
		m.addIssued(bookID)
	}
	return m, true
}

// parseRecordID parses a record's own id, which must leave room for a
// successor.
func parseRecordID(s string) (int, bool) {
	id, err := strconv.Atoi(s)
	if err != nil || id == math.MaxInt {
		return 0, false
	}
	return id, true
}

// parseBool accepts the two literal words, ignoring case.
func parseBool(s string) (bool, bool) {
	switch {
	case strings.EqualFold(s, "true"):
		return true, true
	case strings.EqualFold(s, "false"):
		return false, true
	default:
		return false, false
	}
}
