// Package seed loads the demo customers and employees and writes them to
// an empty database.
package seed

import (
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/amirasaad/banking/pkg/domain/employee"
	"github.com/amirasaad/banking/pkg/domain/individual"
)

//go:embed individuals.csv
var individualsCSV string

//go:embed employees.csv
var employeesCSV string

const (
	individualColumns = 6
	employeeColumns   = 4
)

// LoadIndividualsCSV loads customer fixtures from a CSV file or the embedded
// content when path is empty.
func LoadIndividualsCSV(path string) ([]individual.Params, error) {
	r, closeFn, err := open(path, individualsCSV)
	if err != nil {
		return nil, err
	}
	defer closeFn()
	return parseIndividualsCSV(r)
}

// LoadEmployeesCSV loads employee fixtures from a CSV file or the embedded
// content when path is empty.
func LoadEmployeesCSV(path string) ([]employee.Params, error) {
	r, closeFn, err := open(path, employeesCSV)
	if err != nil {
		return nil, err
	}
	defer closeFn()
	return parseEmployeesCSV(r)
}

func open(path, embedded string) (io.Reader, func(), error) {
	if path == "" {
		return strings.NewReader(embedded), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func readRecords(r io.Reader, columns int) ([][]string, error) {
	csvReader := csv.NewReader(r)
	csvReader.FieldsPerRecord = -1
	csvReader.TrimLeadingSpace = true
	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("invalid CSV format: missing header")
	}
	if len(records[0]) < columns {
		return nil, fmt.Errorf(
			"invalid CSV format: expected at least %d columns, got %d",
			columns,
			len(records[0]),
		)
	}
	rows := records[1:]
	out := rows[:0]
	for _, rec := range rows {
		// Skip malformed rows
		if len(rec) < columns {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func parseIndividualsCSV(r io.Reader) ([]individual.Params, error) {
	rows, err := readRecords(r, individualColumns)
	if err != nil {
		return nil, err
	}
	params := make([]individual.Params, 0, len(rows))
	for i, rec := range rows {
		age, err := strconv.Atoi(strings.TrimSpace(rec[4]))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid age_num %q", i+2, rec[4])
		}
		params = append(params, individual.Params{
			Username:  rec[0],
			Password:  rec[1],
			FirstName: rec[2],
			LastName:  rec[3],
			Age:       age,
			Address:   rec[5],
		})
	}
	return params, nil
}

func parseEmployeesCSV(r io.Reader) ([]employee.Params, error) {
	rows, err := readRecords(r, employeeColumns)
	if err != nil {
		return nil, err
	}
	params := make([]employee.Params, 0, len(rows))
	for _, rec := range rows {
		params = append(params, employee.Params{
			Username:  rec[0],
			Password:  rec[1],
			FirstName: rec[2],
			LastName:  rec[3],
		})
	}
	return params, nil
}
