package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// CSV file names inside the data directory. The formats are shared with
// the spreadsheet tooling den leaders already use, so the headers are
// human-facing rather than snake_case.
const (
	RosterFile     = "Roster.csv"
	CatalogFile    = "Requirement_Key.csv"
	MeetingsFile   = "Meetings.csv"
	AttendanceFile = "Meeting_Attendance.csv"
)

// Load reads the four relation files from dir into a new Store. Missing
// files load as empty relations; unreadable or malformed files are errors.
func Load(dir string) (*Store, error) {
	s := NewStore()
	s.dir = dir

	if err := loadFile(filepath.Join(dir, RosterFile), s.readRoster); err != nil {
		return nil, err
	}
	if err := loadFile(filepath.Join(dir, CatalogFile), s.readCatalog); err != nil {
		return nil, err
	}
	if err := loadFile(filepath.Join(dir, MeetingsFile), s.readMeetings); err != nil {
		return nil, err
	}
	if err := loadFile(filepath.Join(dir, AttendanceFile), s.readAttendance); err != nil {
		return nil, err
	}

	s.dirty = false
	s.logAnomalies()
	return s, nil
}

// Save writes the four relation files to dir (or the directory the store
// was loaded from when dir is empty).
func (s *Store) Save(dir string) error {
	if dir == "" {
		dir = s.dir
	}
	if dir == "" {
		return fmt.Errorf("no data directory specified")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	files := []struct {
		name  string
		write func(io.Writer) error
	}{
		{RosterFile, s.WriteRoster},
		{CatalogFile, s.WriteCatalog},
		{MeetingsFile, s.WriteMeetings},
		{AttendanceFile, s.WriteAttendance},
	}
	for _, f := range files {
		if err := writeFile(filepath.Join(dir, f.name), f.write); err != nil {
			return err
		}
	}

	s.dir = dir
	s.dirty = false
	return nil
}

// Init creates dir and seeds the relation files that do not exist yet. The
// catalog file is seeded with the given requirements; the other files start
// empty. Existing files are left alone.
func Init(dir string, reqs []Requirement) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	if _, err := os.Stat(filepath.Join(dir, CatalogFile)); os.IsNotExist(err) {
		seed := NewStore()
		for _, req := range reqs {
			if err := seed.AddRequirement(req); err != nil {
				return nil, fmt.Errorf("invalid seed catalog: %w", err)
			}
		}
		if err := writeFile(filepath.Join(dir, CatalogFile), seed.WriteCatalog); err != nil {
			return nil, err
		}
	}

	empty := NewStore()
	seeds := []struct {
		name  string
		write func(io.Writer) error
	}{
		{RosterFile, empty.WriteRoster},
		{MeetingsFile, empty.WriteMeetings},
		{AttendanceFile, empty.WriteAttendance},
	}
	for _, f := range seeds {
		path := filepath.Join(dir, f.name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := writeFile(path, f.write); err != nil {
			return nil, err
		}
	}

	return Load(dir)
}

// IsFirstRun reports whether dir looks untouched: no roster file, or an
// empty roster.
func IsFirstRun(dir string) bool {
	path := filepath.Join(dir, RosterFile)
	file, err := os.Open(path)
	if err != nil {
		return true
	}
	defer file.Close()

	reader := csv.NewReader(file)
	if _, err := reader.Read(); err != nil { // header
		return true
	}
	_, err = reader.Read()
	return err == io.EOF
}

func loadFile(path string, read func(io.Reader) error) error {
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", filepath.Base(path), err)
	}
	defer file.Close()

	if err := read(file); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Base(path), err)
	}
	defer file.Close()

	if err := write(file); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Readers

// readRoster reads Roster.csv: a single "Scout Name" column.
func (s *Store) readRoster(r io.Reader) error {
	rows, cols, err := readRows(r, "scout name")
	if err != nil {
		return err
	}
	for i, row := range rows {
		name := strings.TrimSpace(field(row, cols, "scout name"))
		if name == "" {
			continue
		}
		if s.HasScout(name) {
			log.Warnf("roster row %d: duplicate scout %q skipped", i+2, name)
			continue
		}
		s.scouts = append(s.scouts, name)
	}
	return nil
}

// readCatalog reads Requirement_Key.csv. The URL column is optional.
func (s *Store) readCatalog(r io.Reader) error {
	rows, cols, err := readRows(r, "req_id", "adventure", "requirement_description", "required")
	if err != nil {
		return err
	}
	for i, row := range rows {
		req := Requirement{
			ID:          field(row, cols, "req_id"),
			Adventure:   field(row, cols, "adventure"),
			Description: field(row, cols, "requirement_description"),
			URL:         field(row, cols, "url"),
		}
		if req.ID == "" {
			continue
		}
		required, err := parseBool(field(row, cols, "required"))
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		req.Required = required
		if err := s.AddRequirement(req); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
	}
	return nil
}

// readMeetings reads Meetings.csv. A missing Optional column defaults to
// false for files written before optional events existed. A blank coverage
// field yields an empty list, never an error. A duplicate date is an error:
// the date is the meeting key and last-write-wins lookups would silently
// drop coverage.
func (s *Store) readMeetings(r io.Reader) error {
	rows, cols, err := readRows(r, "meeting_date", "meeting_title")
	if err != nil {
		return err
	}
	if _, ok := cols["optional"]; !ok && len(rows) > 0 {
		log.Debug("meetings file has no Optional column; defaulting to false")
	}
	for i, row := range rows {
		date, err := NormalizeDate(field(row, cols, "meeting_date"))
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		if s.HasMeeting(date) {
			return fmt.Errorf("row %d: duplicate meeting date %s", i+2, date)
		}
		optional := false
		if v := field(row, cols, "optional"); v != "" {
			optional, err = parseBool(v)
			if err != nil {
				return fmt.Errorf("row %d: %w", i+2, err)
			}
		}
		s.meetings[date] = &Meeting{
			Date:     date,
			Title:    field(row, cols, "meeting_title"),
			Covered:  ParseReqIDList(field(row, cols, "req_ids_covered")),
			Optional: optional,
		}
	}
	return nil
}

// readAttendance reads Meeting_Attendance.csv. Records referencing unknown
// scouts or dates load fine; derivation is where they get skipped.
func (s *Store) readAttendance(r io.Reader) error {
	rows, cols, err := readRows(r, "meeting_date", "scout_name")
	if err != nil {
		return err
	}
	seen := make(map[AttendanceRecord]bool)
	for i, row := range rows {
		date, err := NormalizeDate(field(row, cols, "meeting_date"))
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		rec := AttendanceRecord{Date: date, Scout: strings.TrimSpace(field(row, cols, "scout_name"))}
		if rec.Scout == "" || seen[rec] {
			continue
		}
		seen[rec] = true
		s.attendance = append(s.attendance, rec)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Writers

// WriteRoster writes the roster, sorted case-insensitively.
func (s *Store) WriteRoster(w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"Scout Name"}); err != nil {
		return err
	}
	for _, scout := range s.Scouts() {
		if err := writer.Write([]string{scout}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteCatalog writes the requirement catalog in insertion order.
func (s *Store) WriteCatalog(w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"Req_ID", "Adventure", "Requirement_Description", "Required", "URL"}); err != nil {
		return err
	}
	for _, req := range s.Requirements() {
		row := []string{req.ID, req.Adventure, req.Description, formatBool(req.Required), req.URL}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteMeetings writes the meeting catalog sorted by date.
func (s *Store) WriteMeetings(w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"Meeting_Date", "Meeting_Title", "Req_IDs_Covered", "Optional"}); err != nil {
		return err
	}
	for _, m := range s.Meetings() {
		row := []string{m.Date, m.Title, m.Covered.String(), formatBool(m.Optional)}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteAttendance writes the attendance ledger sorted by date, then scout.
func (s *Store) WriteAttendance(w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"Meeting_Date", "Scout_Name"}); err != nil {
		return err
	}
	for _, rec := range s.Attendance() {
		if err := writer.Write([]string{rec.Date, rec.Scout}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// ---------------------------------------------------------------------------
// Helpers

// readRows reads a header plus all rows, returning a lowercased column
// index. The required columns must be present.
func readRows(r io.Reader, required ...string) ([][]string, map[string]int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, map[string]int{}, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, col := range header {
		cols[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, col := range required {
		if _, ok := cols[col]; !ok {
			return nil, nil, fmt.Errorf("missing required column %q", col)
		}
	}

	var rows [][]string
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read CSV row %d: %w", line+1, err)
		}
		line++
		rows = append(rows, row)
	}
	return rows, cols, nil
}

func field(row []string, cols map[string]int, name string) string {
	if idx, ok := cols[name]; ok && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

// parseBool accepts Go and spreadsheet spellings (True/FALSE/1/yes).
func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "false", "f", "0", "no":
		return false, nil
	case "true", "t", "1", "yes":
		return true, nil
	}
	if v, err := strconv.ParseBool(s); err == nil {
		return v, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}

func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// logAnomalies surfaces tolerated-but-suspicious data after a load:
// attendance referencing unknown scouts or dates, and meetings covering
// requirement IDs no longer in the catalog. None of these are errors.
func (s *Store) logAnomalies() {
	for _, rec := range s.attendance {
		if !s.HasScout(rec.Scout) {
			log.WithFields(log.Fields{"scout": rec.Scout, "date": rec.Date}).
				Debug("attendance record for scout not in roster")
		}
		if !s.HasMeeting(rec.Date) {
			log.WithFields(log.Fields{"scout": rec.Scout, "date": rec.Date}).
				Debug("attendance record for unknown meeting date")
		}
	}
	for _, m := range s.Meetings() {
		for _, id := range m.Covered {
			if !s.HasRequirement(id) {
				log.WithFields(log.Fields{"date": m.Date, "req_id": id}).
					Debug("meeting covers requirement not in catalog")
			}
		}
	}
}
