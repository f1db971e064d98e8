package utils

import (
	"bytes"
	"fmt"
	"strings"

	"master_ms/pkg/apperr"

	"github.com/xuri/excelize/v2"
)

// ==================== Excel 导入辅助 ====================

// ImportType 导入类型
type ImportType string

const ImportTax ImportType = "tax"

// allowedHeaders 每种导入类型必须出现的列
var allowedHeaders = map[ImportType][]string{
	ImportTax: {"tax_name", "tax_type", "value_type", "tax_value"},
}

// AllowedHeaders returns the required columns for an import type, or nil if the type is unknown
func AllowedHeaders(t ImportType) []string {
	return allowedHeaders[t]
}

// ReadExcel reads the first sheet of an xlsx workbook into rows of cells
func ReadExcel(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, apperr.BadRequest("Unable to read uploaded excel file.").WithErr(err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperr.BadRequest("Error while formatting excel data")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}

// ValidateExcelHeader checks that every required column for t is present in headers
func ValidateExcelHeader(headers []string, t ImportType) error {
	required := AllowedHeaders(t)
	if len(required) == 0 {
		return apperr.BadRequest("Excel headers which are provided is not allowed by the system.")
	}

	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[strings.TrimSpace(h)] = true
	}

	var missing []string
	for _, h := range required {
		if !present[h] {
			missing = append(missing, h)
		}
	}
	if len(missing) > 0 {
		return apperr.BadRequest("Following columns are missing in uploaded excel " + strings.Join(missing, ","))
	}
	return nil
}

// FormatExcelData turns rows into header keyed maps, skipping the header row and empty rows
func FormatExcelData(rows [][]string) []map[string]string {
	if len(rows) == 0 {
		return nil
	}
	headers := rows[0]

	var out []map[string]string
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		item := make(map[string]string, len(headers))
		for i, cell := range row {
			if i >= len(headers) {
				break
			}
			item[strings.TrimSpace(headers[i])] = strings.TrimSpace(cell)
		}
		out = append(out, item)
	}
	return out
}
