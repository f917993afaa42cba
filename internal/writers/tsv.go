package writers

import (
	"io"
	"strconv"

	"kmercount/internal/kmer"
)

func init() { Register(FormatTSV, WriteTSV) }

// WriteTSV prints one "<kmer>\t<count>\n" line per entry, with no header.
func WriteTSV(w io.Writer, entries []kmer.Entry) error {
	buf := make([]byte, 0, 32)
	for _, e := range entries {
		buf = buf[:0]
		buf = append(buf, e.Kmer...)
		buf = append(buf, '\t')
		buf = strconv.AppendInt(buf, int64(e.Count), 10)
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}
