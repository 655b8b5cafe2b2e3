package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/effortlog/internal/domain"
	"github.com/google/uuid"
)

// Convert turns validated rows into session records with fresh IDs. File
// order is kept in Index, numbered from startIndex. Call ValidateRows
// first; Convert only fails on rows that would not validate.
func Convert(rows []SessionRow, startIndex int) ([]domain.SessionRecord, error) {
	records := make([]domain.SessionRecord, 0, len(rows))
	for i, r := range rows {
		date, err := time.Parse(dateLayout, r.Date)
		if err != nil {
			return nil, fmt.Errorf("line %d: parsing Date: %w", r.Line, err)
		}
		software, err := parseBool(r.IsSoftwareProject)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", r.Line, err)
		}
		release, err := parseBool(r.IsReleaseDay)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", r.Line, err)
		}

		records = append(records, domain.SessionRecord{
			ID:                uuid.New().String(),
			Index:             startIndex + i,
			Date:              date,
			StartTime:         r.StartTime,
			EndTime:           r.EndTime,
			Effort:            r.Effort,
			Tag:               r.Tag,
			Descriptor:        r.Descriptor,
			IsSoftwareProject: software,
			IsReleaseDay:      release,
			Year:              date.Year(),
			Month:             int(date.Month()),
		})
	}
	return records, nil
}
