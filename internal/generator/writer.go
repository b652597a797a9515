package generator

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vanshika/campusdraw/internal/domain"
)

// File names used inside a dataset directory.
const (
	BuildingsFile = "campus_buildings.csv"
	WalkwaysFile  = "campus_paths.csv"
)

var (
	buildingsHeader = []string{"shortName", "longName", "x", "y"}
	walkwaysHeader  = []string{"x1", "y1", "x2", "y2", "distance"}
)

// ErrBadRecord is wrapped by ReadDataset for rows that do not parse.
var ErrBadRecord = errors.New("malformed dataset record")

// WriteDataset serializes the dataset into the buildings and walkways CSV
// files under the provided directory.
func WriteDataset(dataset Dataset, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	buildingRows := make([][]string, 0, len(dataset.Buildings))
	for _, b := range dataset.Buildings {
		buildingRows = append(buildingRows, []string{b.ShortName, b.LongName, formatFloat(b.X), formatFloat(b.Y)})
	}
	if err := writeCSV(filepath.Join(dir, BuildingsFile), buildingsHeader, buildingRows); err != nil {
		return err
	}

	walkwayRows := make([][]string, 0, len(dataset.Walkways))
	for _, w := range dataset.Walkways {
		walkwayRows = append(walkwayRows, []string{formatFloat(w.X1), formatFloat(w.Y1), formatFloat(w.X2), formatFloat(w.Y2), formatFloat(w.Distance)})
	}
	return writeCSV(filepath.Join(dir, WalkwaysFile), walkwaysHeader, walkwayRows)
}

// ReadDataset loads the two CSV files written by WriteDataset.
func ReadDataset(buildingsPath, walkwaysPath string) (Dataset, error) {
	var ds Dataset

	rows, err := readCSV(buildingsPath, len(buildingsHeader))
	if err != nil {
		return Dataset{}, err
	}
	for i, row := range rows {
		nums, err := parseFloats(row[2:])
		if err != nil {
			return Dataset{}, fmt.Errorf("%w: %s row %d: %v", ErrBadRecord, buildingsPath, i+2, err)
		}
		ds.Buildings = append(ds.Buildings, domain.Building{
			BuildingRef: domain.BuildingRef{ShortName: row[0], LongName: row[1]},
			X:           nums[0],
			Y:           nums[1],
		})
	}

	rows, err = readCSV(walkwaysPath, len(walkwaysHeader))
	if err != nil {
		return Dataset{}, err
	}
	for i, row := range rows {
		nums, err := parseFloats(row)
		if err != nil {
			return Dataset{}, fmt.Errorf("%w: %s row %d: %v", ErrBadRecord, walkwaysPath, i+2, err)
		}
		ds.Walkways = append(ds.Walkways, domain.Walkway{X1: nums[0], Y1: nums[1], X2: nums[2], Y2: nums[3], Distance: nums[4]})
	}
	return ds, nil
}

func writeCSV(path string, header []string, rows [][]string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// readCSV returns the rows after the header line.
func readCSV(path string, fields int) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = fields
	r.TrimLeadingSpace = true

	if _, err := r.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s header: %v", ErrBadRecord, path, err)
	}
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadRecord, path, err)
	}
	return rows, nil
}

func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
