package records

import (
	"errors"
	"io"

	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"
)

// Row is the Parquet schema of a record.
type Row struct {
	Name    string `parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Age     int32  `parquet:"name=age, type=INT32"`
	Gender  string `parquet:"name=gender, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Country string `parquet:"name=country, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
}

// Row converts the record to its Parquet representation.
func (r Record) Row() Row {
	return Row{
		Name:    r.Name,
		Age:     int32(r.Age),
		Gender:  r.Gender,
		Country: r.Country,
	}
}

// WriteParquet writes max(n, 0) records as a Snappy compressed Parquet file.
// The records are the same ones WriteCSV would produce for the same seed.
func (g *Generator) WriteParquet(w io.Writer, n int) error {
	if w == nil {
		return ErrNilWriter
	}
	if err := g.check(n); err != nil {
		return err
	}

	pw, err := writer.NewParquetWriterFromWriter(w, new(Row), 1)
	if err != nil {
		return errors.Join(ErrFailedToWrite, err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for range max(n, 0) {
		if err := pw.Write(g.next().Row()); err != nil {
			return errors.Join(ErrFailedToWrite, err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		return errors.Join(ErrFailedToWrite, err)
	}
	return nil
}
