package schemacache

import (
	"encoding/json"

	local "github.com/xitongsys/parquet-go-source/local"
	pw "github.com/xitongsys/parquet-go/writer"
	"gitlab.com/tozd/go/errors"

	prep "github.com/wdm0006/crimeprep/pkg/crimeprep"
)

func parquetSchemaJSON(h prep.Header) string {
	type field struct {
		Tag string `json:"Tag"`
	}
	type schema struct {
		Tag    string  `json:"Tag"`
		Fields []field `json:"Fields"`
	}
	sc := schema{Tag: "name=schema, repetitiontype=REQUIRED"}
	for _, name := range h {
		sc.Fields = append(sc.Fields, field{
			Tag: "name=" + name + ", repetitiontype=OPTIONAL, type=BYTE_ARRAY, convertedtype=UTF8",
		})
	}
	b, _ := json.Marshal(sc)
	return string(b)
}

// writeParquet writes the table with every column as UTF8, mirroring the
// string-typed cache rows.
func writeParquet(path string, t *prep.Table) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return errors.WithStack(err)
	}
	w, err := pw.NewJSONWriter(parquetSchemaJSON(t.Header()), fw, 4)
	if err != nil {
		_ = fw.Close()
		return errors.Errorf("parquet writer init: %w", err)
	}
	for i := 0; i < t.Rows(); i++ {
		rec := make(map[string]any, t.Cols())
		for c, name := range t.Header() {
			rec[name] = t.Row(i)[c]
		}
		if err := w.Write(rec); err != nil {
			_ = w.WriteStop()
			_ = fw.Close()
			return errors.Errorf("parquet write row %d: %w", i+1, err)
		}
	}
	if err := w.WriteStop(); err != nil {
		_ = fw.Close()
		return errors.Errorf("parquet finalize: %w", err)
	}
	return errors.WithStack(fw.Close())
}
