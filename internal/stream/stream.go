// Package stream frames candidate lists on stdin and stdout. The default
// framing is NUL-delimited, which is safe for arbitrary filenames;
// newline framing is the opt-in alternative for line-oriented pipelines.
package stream

import (
	"bufio"
	"bytes"
	"io"
)

// Delimiter is the record separator used for both reading and writing.
type Delimiter byte

const (
	Null    Delimiter = 0
	Newline Delimiter = '\n'
)

// ReadAll consumes r until EOF and returns one record per delimiter. A
// trailing delimiter does not produce an empty final record.
func ReadAll(r io.Reader, d Delimiter) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(splitOn(byte(d)))

	var records []string
	for scanner.Scan() {
		records = append(records, scanner.Text())
	}
	return records, scanner.Err()
}

// Write emits each record followed by the delimiter.
func Write(w io.Writer, d Delimiter, records []string) error {
	bw := bufio.NewWriter(w)
	for _, rec := range records {
		if _, err := bw.WriteString(rec); err != nil {
			return err
		}
		if err := bw.WriteByte(byte(d)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// splitOn is a bufio.SplitFunc for a single-byte record separator.
func splitOn(sep byte) bufio.SplitFunc {
	return func(data []byte, atEOF bool) (int, []byte, error) {
		if atEOF && len(data) == 0 {
			return 0, nil, nil
		}
		if i := bytes.IndexByte(data, sep); i >= 0 {
			return i + 1, data[:i], nil
		}
		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	}
}
