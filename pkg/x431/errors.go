/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: errors.go
Description: Error types for the X431 decoder. Defines the structural error class
used when a header-derived offset or length would read outside the file buffer,
with enough offset context for batch-level diagnostics.
*/

package x431

import (
	"errors"
	"fmt"
)

// StructuralError reports a read that would fall outside the file buffer.
// It always indicates a malformed or truncated file and aborts the parse;
// recoverable conditions (unresolved indices, truncated rows) never produce one.
type StructuralError struct {
	Section string // which decode stage detected the problem
	Offset  int    // offset the read started at
	Need    int    // bytes required at that offset
	Size    int    // total buffer size
}

// Error implements the error interface
func (e *StructuralError) Error() string {
	return fmt.Sprintf("structural error in %s: need %d byte(s) at offset 0x%x, file is %d byte(s)",
		e.Section, e.Need, e.Offset, e.Size)
}

// IsStructural reports whether err is (or wraps) a StructuralError
func IsStructural(err error) bool {
	var se *StructuralError
	return errors.As(err, &se)
}
