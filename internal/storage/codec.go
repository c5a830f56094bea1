package storage

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"recordbook/internal/core"
)

// fieldSep separates fields on a line. Values containing it are quoted.
const fieldSep = '|'

// Minimum field counts per record kind. Extra trailing fields are ignored.
const (
	expenseFields  = 5
	projectFields  = 5
	scheduleFields = 3
)

// Field order: title, status, price, category, purchaseDate.
func encodeExpense(e *core.Expense) []string {
	return []string{e.Title, e.Status, strconv.Itoa(e.Price), e.Category, e.PurchaseDate.String()}
}

func decodeExpense(rec []string) (*core.Expense, error) {
	price, err := strconv.Atoi(rec[2])
	if err != nil {
		return nil, fmt.Errorf("parse price: %w", err)
	}
	d, err := core.ParseDate(rec[4])
	if err != nil {
		return nil, err
	}
	return &core.Expense{
		Work:         core.Work{Title: rec[0], Status: rec[1]},
		Price:        price,
		Category:     rec[3],
		PurchaseDate: d,
	}, nil
}

// Field order: title, status, owner, startDate, dueDate.
func encodeProject(p *core.Project) []string {
	return []string{p.Title, p.Status, p.Owner, p.StartDate.String(), p.DueDate.String()}
}

func decodeProject(rec []string) (*core.Project, error) {
	start, err := core.ParseDate(rec[3])
	if err != nil {
		return nil, err
	}
	due, err := core.ParseDate(rec[4])
	if err != nil {
		return nil, err
	}
	return &core.Project{
		Work:      core.Work{Title: rec[0], Status: rec[1]},
		Owner:     rec[2],
		StartDate: start,
		DueDate:   due,
	}, nil
}

// Field order: name, date, memo.
func encodeSchedule(s *core.Schedule) []string {
	return []string{s.Name, s.Date.String(), s.Memo}
}

func decodeSchedule(rec []string) (*core.Schedule, error) {
	d, err := core.ParseDate(rec[1])
	if err != nil {
		return nil, err
	}
	return &core.Schedule{Name: rec[0], Date: d, Memo: rec[2]}, nil
}

// readStats counts what a read kept and what it dropped.
type readStats struct {
	kept    int
	dropped int
}

// Line breaks and backslashes inside values are escaped so every record stays
// on one physical line.
var (
	fieldEscaper   = strings.NewReplacer(`\`, `\\`, "\n", `\n`, "\r", `\r`)
	fieldUnescaper = strings.NewReplacer(`\\`, `\`, `\n`, "\n", `\r`, "\r")
)

// readRecords calls add for every line with at least minFields fields.
// Short lines and lines add rejects are dropped on their own; the rest of the
// file is unaffected. Only an I/O error from r aborts the read.
func readRecords(r io.Reader, minFields int, add func(rec []string) error) (readStats, error) {
	br := bufio.NewReader(r)

	var st readStats
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return st, err
		}
		if text := strings.TrimRight(line, "\r\n"); strings.TrimSpace(text) != "" {
			rec := parseLine(text)
			switch {
			case len(rec) < minFields:
				st.dropped++
			case add(rec) != nil:
				st.dropped++
			default:
				st.kept++
			}
		}
		if err != nil {
			return st, nil
		}
	}
}

// parseLine splits one line on fieldSep, honoring quoted fields. A line that
// is not a well-formed quoted record, such as one whose value merely starts
// with a quote, is split plainly.
func parseLine(line string) []string {
	cr := csv.NewReader(strings.NewReader(line))
	cr.Comma = fieldSep
	cr.FieldsPerRecord = -1

	rec, err := cr.Read()
	if err != nil {
		rec = strings.Split(line, string(fieldSep))
	}
	for i, f := range rec {
		rec[i] = fieldUnescaper.Replace(f)
	}
	return rec
}

// writeRecords writes one line per record.
func writeRecords(w io.Writer, recs [][]string) error {
	cw := csv.NewWriter(w)
	cw.Comma = fieldSep
	for _, rec := range recs {
		escaped := make([]string, len(rec))
		for i, f := range rec {
			escaped[i] = fieldEscaper.Replace(f)
		}
		if err := cw.Write(escaped); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
