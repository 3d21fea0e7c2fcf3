package contracts

import "io"

type XlsxExporter interface {
	Export(snapshot *Snapshot, w io.Writer) error
}
