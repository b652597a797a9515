package pathclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vanshika/campusdraw/internal/domain"
)

var (
	errMissingPath   = errors.New("response has no path field")
	errBadSegment    = errors.New("path record is missing coordinates")
	errNotJSONObject = errors.New("expected a JSON object")
)

// decodeBuildingNames reads the short->long name object keeping the order in
// which the server wrote the keys.
func decodeBuildingNames(body []byte) ([]domain.BuildingRef, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errNotJSONObject
	}

	buildings := []domain.BuildingRef{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		short, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected key %v", keyTok)
		}
		var long string
		if err := dec.Decode(&long); err != nil {
			return nil, fmt.Errorf("building %q: %w", short, err)
		}
		buildings = append(buildings, domain.BuildingRef{ShortName: short, LongName: long})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return buildings, nil
}

type wirePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// wireSegment accepts both the flat {x1,y1,x2,y2} record and the path-finder
// server's {start:{x,y}, end:{x,y}, cost} record.
type wireSegment struct {
	X1    *float64   `json:"x1"`
	Y1    *float64   `json:"y1"`
	X2    *float64   `json:"x2"`
	Y2    *float64   `json:"y2"`
	Color string     `json:"color"`
	Start *wirePoint `json:"start"`
	End   *wirePoint `json:"end"`
	Cost  float64    `json:"cost"`
}

type wirePath struct {
	Path *[]wireSegment `json:"path"`
	Cost float64        `json:"cost"`
}

func decodePath(body []byte, start, end string) (domain.PathResponse, error) {
	var wire wirePath
	if err := json.Unmarshal(body, &wire); err != nil {
		return domain.PathResponse{}, err
	}
	if wire.Path == nil {
		return domain.PathResponse{}, errMissingPath
	}

	resp := domain.PathResponse{
		Start: start,
		End:   end,
		Cost:  wire.Cost,
		Path:  make([]domain.Segment, 0, len(*wire.Path)),
	}
	var summed float64
	for idx, rec := range *wire.Path {
		seg, err := rec.segment(idx)
		if err != nil {
			return domain.PathResponse{}, err
		}
		summed += rec.Cost
		resp.Path = append(resp.Path, seg)
	}
	if resp.Cost == 0 {
		resp.Cost = summed
	}
	return resp, nil
}

func (w wireSegment) segment(idx int) (domain.Segment, error) {
	if w.Start != nil && w.End != nil {
		return domain.Segment{
			X1:    w.Start.X,
			Y1:    w.Start.Y,
			X2:    w.End.X,
			Y2:    w.End.Y,
			Color: w.Color,
			Key:   idx,
		}, nil
	}
	if w.X1 == nil || w.Y1 == nil || w.X2 == nil || w.Y2 == nil {
		return domain.Segment{}, fmt.Errorf("record %d: %w", idx, errBadSegment)
	}
	return domain.Segment{
		X1:    *w.X1,
		Y1:    *w.Y1,
		X2:    *w.X2,
		Y2:    *w.Y2,
		Color: w.Color,
		Key:   idx,
	}, nil
}
