package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/forum-agent/internal/agenda"
	"github.com/jonathan/forum-agent/internal/observability"
	"github.com/jonathan/forum-agent/internal/types"
	"github.com/jonathan/forum-agent/internal/validation"
	"github.com/jonathan/forum-agent/internal/wizard"
)

var applyCommand = &cobra.Command{
	Use:   "apply",
	Short: "Apply to an offer: questionnaire, slot choice, submission",
	Long: `Walks the three-step application flow for one offer: answer the offer's
questionnaire (if it has one), pick an interview slot from the forum agenda,
review and submit. Answers are prompted on stdin; --skip-questionnaire and
--slot shortcut the interactive steps.`,
	RunE: runApplyCmd,
}

var (
	applyConfigPath string
	applyForumID    int
	applyOfferID    int
	applySlotID     int
	applySkipQuest  bool
	applyYes        bool
)

func init() {
	addClientFlags(applyCommand)
	applyCommand.Flags().StringVar(&applyConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	applyCommand.Flags().IntVarP(&applyForumID, "forum", "f", 0, "Forum ID (required)")
	applyCommand.Flags().IntVarP(&applyOfferID, "offer", "o", 0, "Offer ID (required)")
	applyCommand.Flags().IntVar(&applySlotID, "slot", 0, "Slot ID to book (skips the interactive slot prompt)")
	applyCommand.Flags().BoolVar(&applySkipQuest, "skip-questionnaire", false, "Skip the questionnaire step without answering")
	applyCommand.Flags().BoolVarP(&applyYes, "yes", "y", false, "Submit without the confirmation prompt")

	_ = applyCommand.MarkFlagRequired("forum")
	_ = applyCommand.MarkFlagRequired("offer")

	rootCmd.AddCommand(applyCommand)
}

func runApplyCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveConfig(cmd, applyConfigPath)
	if err != nil {
		return err
	}

	log := newLogger(cfg)
	client, err := newClient(cfg, log)
	if err != nil {
		return err
	}

	ctrl := wizard.New(wizard.Options{API: client, Logger: log})
	if err := ctrl.Open(ctx, types.Offer{ID: applyOfferID}, applyForumID); err != nil {
		return fmt.Errorf("failed to open application flow: %w", err)
	}
	defer ctrl.Close()

	if qerr := ctrl.QuestionnaireErr(); qerr != nil {
		fmt.Fprintf(os.Stderr, "Warning: questionnaire could not be loaded, continuing without it: %v\n", qerr)
	}

	printer := observability.NewPrinter(os.Stdout)
	input := bufio.NewReader(os.Stdin)

	// Step 1: questionnaire
	if err := runQuestionnaireStep(ctx, ctrl, printer, input); err != nil {
		return err
	}

	// Step 2: slot
	if err := runSlotStep(ctrl, printer, input); err != nil {
		return err
	}

	// Step 3: confirmation
	printer.PrintConfirmation(ctrl.Draft())
	if !applyYes {
		ok, err := promptYesNo(input, "Submit this application? [y/N] ")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Aborted, nothing was submitted.")
			return nil
		}
	}

	app, err := ctrl.Submit(ctx)
	if err != nil {
		var bookErr *wizard.BookingError
		if errors.As(err, &bookErr) {
			return handleBookingFailure(ctx, ctrl, input, bookErr)
		}
		return fmt.Errorf("submission failed: %w", err)
	}

	fmt.Printf("Application %d submitted.\n", app.ID)
	return nil
}

func runQuestionnaireStep(ctx context.Context, ctrl *wizard.Controller, printer *observability.Printer, input *bufio.Reader) error {
	questionnaire := ctrl.Questionnaire()
	if questionnaire == nil || applySkipQuest {
		return ctrl.SkipQuestionnaire()
	}

	printer.PrintQuestionnaire(questionnaire)
	fmt.Println("Answer each question; press Enter on its own to leave one blank.")

	for _, question := range questionnaire.Questions {
		value, err := promptAnswer(input, question)
		if err != nil {
			return err
		}
		if value == nil {
			continue
		}
		if err := ctrl.SetAnswer(question.ID, value); err != nil {
			return err
		}
	}

	for {
		err := ctrl.SubmitQuestionnaire(ctx)
		if err == nil {
			return nil
		}
		var missing *validation.MissingAnswerError
		if !errors.As(err, &missing) {
			return err
		}

		fmt.Printf("Required: %s\n", missing.QuestionText)
		question := questionnaire.QuestionByID(missing.QuestionID)
		if question == nil {
			return err
		}
		value, perr := promptAnswer(input, *question)
		if perr != nil {
			return perr
		}
		if value == nil {
			return err
		}
		if serr := ctrl.SetAnswer(question.ID, value); serr != nil {
			return serr
		}
	}
}

func runSlotStep(ctrl *wizard.Controller, printer *observability.Printer, input *bufio.Reader) error {
	if applySlotID != 0 {
		return ctrl.SelectSlot(applySlotID)
	}

	slots := ctrl.Slots()
	if len(slots) == 0 {
		fmt.Println("No interview slots are available; continuing without one.")
		return ctrl.SkipSlot()
	}

	printer.PrintAgendaDays(agenda.Days(agenda.GroupByDate(slots)))
	line, err := promptLine(input, "Slot ID to book (Enter for the earliest available): ")
	if err != nil {
		return err
	}
	if line == "" {
		return ctrl.SkipSlot()
	}

	slotID, err := strconv.Atoi(line)
	if err != nil {
		return fmt.Errorf("invalid slot id %q", line)
	}
	return ctrl.SelectSlot(slotID)
}

func handleBookingFailure(ctx context.Context, ctrl *wizard.Controller, input *bufio.Reader, bookErr *wizard.BookingError) error {
	fmt.Fprintf(os.Stderr, "Application %d was created, but booking slot %d failed: %v\n",
		bookErr.ApplicationID, bookErr.SlotID, bookErr.Cause)

	for {
		retry, err := promptYesNo(input, "Retry booking? [y/N] ")
		if err != nil || !retry {
			fmt.Println("The application stands without a booked slot.")
			return nil
		}
		if err := ctrl.RetryBooking(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Booking failed again: %v\n", err)
			continue
		}
		fmt.Printf("Application %d submitted and slot %d booked.\n", bookErr.ApplicationID, bookErr.SlotID)
		return nil
	}
}

// promptAnswer asks one question on stdin and converts the reply into the
// answer variant matching the question type. A blank reply means unanswered.
func promptAnswer(input *bufio.Reader, question types.Question) (types.AnswerValue, error) {
	marker := ""
	if question.IsRequired {
		marker = " (required)"
	}
	fmt.Printf("\n%s%s\n", question.QuestionText, marker)

	if len(question.Options) > 0 {
		for _, opt := range question.Options {
			fmt.Printf("  - %s\n", opt.Label)
		}
	}
	if question.QuestionType == types.QuestionCheckbox {
		fmt.Println("  (separate multiple choices with commas)")
	}
	if question.QuestionType == types.QuestionDate {
		fmt.Println("  (format: YYYY-MM-DD)")
	}

	line, err := promptLine(input, "> ")
	if err != nil {
		return nil, err
	}
	if line == "" {
		return nil, nil
	}

	switch {
	case question.QuestionType.IsNumeric():
		n, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("question %d expects a number, got %q", question.ID, line)
		}
		return types.NumberValue(n), nil

	case question.QuestionType.IsMultiChoice():
		parts := strings.Split(line, ",")
		choices := make(types.ChoicesValue, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				choices = append(choices, trimmed)
			}
		}
		return choices, nil

	case question.QuestionType == types.QuestionFile:
		path := line
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("file for question %d not found: %s", question.ID, path)
		}
		return types.FileValue{
			Name: filepath.Base(path),
			Open: func() (io.ReadCloser, error) { return os.Open(path) },
		}, nil

	default:
		return types.TextValue(line), nil
	}
}

func promptLine(input *bufio.Reader, prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := input.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return "", nil
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func promptYesNo(input *bufio.Reader, prompt string) (bool, error) {
	line, err := promptLine(input, prompt)
	if err != nil {
		return false, err
	}
	line = strings.ToLower(line)
	return line == "y" || line == "yes", nil
}
