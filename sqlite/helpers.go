package sqlite

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docsmcp"
)

// columns maps filterable metadata fields to their columns.
var columns = map[string]string{
	docsmcp.FieldProject:     "project",
	docsmcp.FieldLibrary:     "library",
	docsmcp.FieldVersion:     "version",
	docsmcp.FieldContentType: "content_type",
	docsmcp.FieldURL:         "url",
}

func column(field string) (string, error) {
	col, ok := columns[field]
	if !ok {
		return "", docsmcp.Errorf(docsmcp.EINVALID, "unknown field %q", field)
	}
	return col, nil
}

// appendWhere writes the collection scope and one equality clause per
// filter term. Values are always bound.
func appendWhere(query *strings.Builder, args *[]any, collection string, filter docsmcp.Filter) error {
	query.WriteString(" WHERE collection = ?")
	*args = append(*args, collection)
	for _, term := range filter {
		col, err := column(term.Field)
		if err != nil {
			return err
		}
		query.WriteString(" AND ")
		query.WriteString(col)
		query.WriteString(" = ?")
		*args = append(*args, term.Value)
	}
	return nil
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// parseRFC3339 parses an RFC3339 formatted timestamp string.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// normalizeVector scales v to unit length. A zero vector stays zero.
func normalizeVector(v []float32) []float32 {
	var norm float64
	for _, x := range v {
		norm += float64(x) * float64(x)
	}
	out := make([]float32, len(v))
	if norm == 0 {
		return out
	}
	norm = math.Sqrt(norm)
	for i, x := range v {
		out[i] = float32(float64(x) / norm)
	}
	return out
}

func dotProduct(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

func encodeVector(v []float32) []byte {
	buf := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

func decodeVector(b []byte, dims int) []float32 {
	v := make([]float32, dims)
	for i := 0; i < dims && i*4+4 <= len(b); i++ {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return v
}
