package requests

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("unsupported input format")

// LoadFile reads a request from path. The format follows the file extension:
// .csv, .yaml/.yml or .json.
func LoadFile(path string) (*ScheduleRequests, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	req, err := Load(f, format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return req, nil
}

// Load decodes a request in the given format. CSV rows are
// id,burst,arrival[,priority]; YAML and JSON hold a ScheduleRequests document.
// The result is normalized but not validated.
func Load(r io.Reader, format string) (*ScheduleRequests, error) {
	var req *ScheduleRequests
	var err error
	switch format {
	case "csv":
		req, err = loadCSV(r)
	case "yaml", "yml":
		req = &ScheduleRequests{}
		err = yaml.NewDecoder(r).Decode(req)
	case "json":
		req = &ScheduleRequests{}
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(req)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}
	req.Normalize()
	return req, nil
}

func loadCSV(r io.Reader) (*ScheduleRequests, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	req := &ScheduleRequests{Jobs: make([]Job, 0, len(rows))}
	for i, row := range rows {
		if i == 0 && isHeader(row) {
			continue
		}
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("row %d: %w: want 3 or 4 fields, got %d", i+1, ErrInvalidJob, len(row))
		}
		job := Job{ProcessId: strings.TrimSpace(row[0])}
		fields := []*int{&job.BurstTime, &job.ArrivalTime, &job.Priority}
		for k, raw := range row[1:] {
			v, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				return nil, fmt.Errorf("row %d field %d: %w: %v", i+1, k+2, ErrInvalidJob, err)
			}
			*fields[k] = v
		}
		req.Jobs = append(req.Jobs, job)
	}
	return req, nil
}

var headerLabels = map[string]bool{
	"id":         true,
	"pid":        true,
	"process":    true,
	"process_id": true,
	"processid":  true,
	"name":       true,
}

// isHeader reports whether row is a column header: its first field is a
// known id label. Any other first row is data.
func isHeader(row []string) bool {
	return headerLabels[strings.ToLower(strings.TrimSpace(row[0]))]
}
