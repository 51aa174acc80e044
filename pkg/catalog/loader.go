package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"course-support-agent/internal/entity"
)

// Expected header columns of the catalog CSV.
const (
	colCourseNo    = "Course No"
	colTitle       = "Course Title"
	colDescription = "Course Description"
	colAudience    = "Who This Course is For"
	colLanguages   = "Released Languages"
)

// LoadFile reads the course catalog from a CSV file on disk.
func LoadFile(path string) ([]*entity.CatalogRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer file.Close()

	return Load(file)
}

// Load parses catalog records from CSV data. The first row must be the
// header; column order is not assumed.
func Load(r io.Reader) ([]*entity.CatalogRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colCourseNo, colTitle, colDescription, colAudience, colLanguages} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("catalog header missing column %q", required)
		}
	}

	var records []*entity.CatalogRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog row: %w", err)
		}

		field := func(name string) string {
			idx := columns[name]
			if idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		courseNo, err := strconv.Atoi(field(colCourseNo))
		if err != nil {
			return nil, fmt.Errorf("invalid course number %q: %w", field(colCourseNo), err)
		}

		codes := field(colLanguages)
		records = append(records, &entity.CatalogRecord{
			CourseNo:      courseNo,
			Title:         field(colTitle),
			Description:   field(colDescription),
			Audience:      field(colAudience),
			LanguageCodes: codes,
			Languages:     MapLanguageCodes(codes),
		})
	}

	return records, nil
}
