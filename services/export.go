package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/periscope-tudelft/periscope_api/model"
	"github.com/periscope-tudelft/periscope_api/services/repositories"
)

// ProlificExporter writes a wide CSV of all answers submitted by Prolific
// participants, one row per participant, one column per question. Answers
// without a Prolific ID in their secret are skipped.
type ProlificExporter struct {
	answers *repositories.AnswerRepository
}

func NewProlificExporter(db *gorm.DB) *ProlificExporter {
	return &ProlificExporter{
		answers: repositories.NewAnswerRepository(db),
	}
}

// WriteCSV renders the export, restricted to one scenario (plus its topic's
// demographics) when scenarioID is given. When a participant answered the
// same question more than once only the latest submission survives, ties on
// the timestamp break on the higher row ID.
func (e *ProlificExporter) WriteCSV(w io.Writer, scenarioID *int) error {
	answers, err := e.answers.ListAnswersForExport(scenarioID)
	if err != nil {
		return err
	}

	// answers come newest first, the first row per key wins
	type key struct {
		prolificID string
		questionID int
	}
	latest := map[key]model.Answer{}
	participants := map[string]bool{}
	questionIDs := map[int]bool{}

	for _, a := range answers {
		if a.Secret == "" {
			continue
		}
		k := key{prolificID: a.Secret, questionID: a.QuestionID}
		if _, seen := latest[k]; seen {
			continue
		}
		latest[k] = a
		participants[a.Secret] = true
		questionIDs[a.QuestionID] = true
	}

	qids := make([]int, 0, len(questionIDs))
	for id := range questionIDs {
		qids = append(qids, id)
	}
	sort.Ints(qids)

	pids := make([]string, 0, len(participants))
	for id := range participants {
		pids = append(pids, id)
	}
	sort.Strings(pids)

	cw := csv.NewWriter(w)

	header := make([]string, 0, len(qids)+1)
	header = append(header, "prolific_id")
	for _, qid := range qids {
		header = append(header, fmt.Sprintf("q%d", qid))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, pid := range pids {
		row := make([]string, 0, len(qids)+1)
		row = append(row, pid)
		for _, qid := range qids {
			a, ok := latest[key{prolificID: pid, questionID: qid}]
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, renderAnswer(a))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// renderAnswer flattens one answer to a single cell. Choice answers become
// the selected values joined with ';', an optional comment is appended.
func renderAnswer(a model.Answer) string {
	if len(a.Choices) == 0 {
		return a.Text
	}

	values := make([]string, 0, len(a.Choices))
	for _, c := range a.Choices {
		values = append(values, strconv.Itoa(c.Value))
	}
	cell := strings.Join(values, ";")
	if a.Text != "" {
		cell += " (" + a.Text + ")"
	}
	return cell
}
