/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: records.go
Description: Data record extraction for X431 logs. Resolves the fixed-width index
records of the data section into the output matrix, filling resolution misses and
truncated rows with the "0" placeholder instead of failing.
*/

package x431

import "strconv"

// extractRows decodes the data matrix. Row count derives from the raw record
// count: total_rows = floor(floor(records/4) / channel_count), so a partial
// trailing row is truncated rather than emitted. Each row leads with its
// 1-based ordinal, followed by one bias-resolved cell per channel. A cell
// whose index misses, or that lies past the end of the buffer, becomes the
// literal "0" placeholder; neither condition aborts the parse.
func extractRows(r *Reader, table PointValueTable, channels int) ([][]string, error) {
	offset, records, err := dataSection(r)
	if err != nil {
		return nil, err
	}

	totalRows := (int(records) / 4) / channels
	rows := make([][]string, 0, totalRows)

	for rowNum := 0; rowNum < totalRows; rowNum++ {
		row := make([]string, 0, channels+1)
		row = append(row, strconv.Itoa(rowNum+1))

		for c := 0; c < channels; c++ {
			if offset+2 > r.Len() {
				row = append(row, cellPlaceholder)
				continue
			}

			index, err := r.Uint16("data records", offset)
			if err != nil {
				return nil, err
			}
			offset += slotSize

			if value, ok := table.Resolve(index); ok {
				row = append(row, value)
			} else {
				row = append(row, cellPlaceholder)
			}
		}

		rows = append(rows, row)
	}

	return rows, nil
}
