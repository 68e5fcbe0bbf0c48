package answers

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/forum-agent/internal/logging"
	"github.com/jonathan/forum-agent/internal/types"
)

// EncodeError reports a failed file read/encode during serialization
type EncodeError struct {
	QuestionID int
	Name       string
	Cause      error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("failed to encode file %q for question %d: %v", e.Name, e.QuestionID, e.Cause)
}

func (e *EncodeError) Unwrap() error {
	return e.Cause
}

// Serialize converts the sheet into the ordered wire answer list.
//
// Empty values (blank text, no choices, unset file) are omitted entirely;
// this filter is the sole mechanism separating "answered" from "skipped".
// Answers to questions missing from the questionnaire are tolerated and
// emitted with empty question text/type. File values are encoded
// concurrently and joined before returning, so total latency is bounded by
// the slowest single read; a file that cannot be read is logged and its
// answer dropped rather than aborting the rest. Only context cancellation
// fails the whole serialization.
func Serialize(ctx context.Context, sheet *Sheet, questionnaire *types.Questionnaire, log logging.Logger) ([]types.Answer, error) {
	if log == nil {
		log = logging.Nop()
	}

	entries := sheet.Entries()
	out := make([]*types.Answer, len(entries))

	g, gctx := errgroup.WithContext(ctx)

	for i, entry := range entries {
		if entry.Value == nil || entry.Value.Empty() {
			continue
		}

		answer := &types.Answer{Question: entry.QuestionID}
		if q := questionnaire.QuestionByID(entry.QuestionID); q != nil {
			answer.QuestionText = q.QuestionText
			answer.QuestionType = q.QuestionType
		}

		switch v := entry.Value.(type) {
		case types.TextValue:
			text := string(v)
			answer.AnswerText = &text
			out[i] = answer
		case types.NumberValue:
			num := float64(v)
			answer.AnswerNumber = &num
			out[i] = answer
		case types.ChoicesValue:
			answer.AnswerChoices = []string(v)
			out[i] = answer
		case types.FileValue:
			idx, file, entry := i, v, entry
			g.Go(func() error {
				encoded, err := encodeFile(gctx, entry.QuestionID, file)
				if err != nil {
					if gctx.Err() != nil {
						return gctx.Err()
					}
					log.Error("file encoding failed, dropping answer", logging.Fields{
						"question": entry.QuestionID,
						"file":     file.Name,
						"error":    err.Error(),
					})
					return nil
				}
				answer.AnswerFile = encoded
				out[idx] = answer
				return nil
			})
		default:
			log.Warn("unknown answer value variant, dropping answer", logging.Fields{
				"question": entry.QuestionID,
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]types.Answer, 0, len(out))
	for _, a := range out {
		if a != nil {
			result = append(result, *a)
		}
	}
	return result, nil
}

// encodeFile reads the file handle and produces its base64 wire form
func encodeFile(ctx context.Context, questionID int, file types.FileValue) (*types.AnswerFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rc, err := file.Open()
	if err != nil {
		return nil, &EncodeError{QuestionID: questionID, Name: file.Name, Cause: err}
	}
	defer func() { _ = rc.Close() }()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return nil, &EncodeError{QuestionID: questionID, Name: file.Name, Cause: err}
	}

	return &types.AnswerFile{
		Name: file.Name,
		Size: len(raw),
		Type: file.ContentType,
		Data: base64.StdEncoding.EncodeToString(raw),
	}, nil
}
