package planner

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/gostonefire/courseplanner"
	"github.com/gostonefire/courseplanner/internal/ingest"
	"github.com/gostonefire/courseplanner/internal/pkg/logger"
	"github.com/gostonefire/courseplanner/internal/utils"
	"github.com/rs/zerolog"
	"io"
	"strconv"
)

// Menu choices
const (
	ChoiceLoad = 1
	ChoiceList = 2
	ChoiceInfo = 3
	ChoiceExit = 9
)

// Planner - Interactive menu around a course hash map. It reads answers line by line from in and writes
// everything meant for the user to out.
type Planner struct {
	reader     *bufio.Reader
	out        io.Writer
	table      *courseplanner.CourseHashMap
	dataLoaded bool
	log        zerolog.Logger
}

// NewPlanner - Returns a pointer to a new Planner working on table
func NewPlanner(in io.Reader, out io.Writer, table *courseplanner.CourseHashMap) *Planner {
	return &Planner{
		reader:  bufio.NewReader(in),
		out:     out,
		table:   table,
		log:     logger.WithField("session", uuid.NewString()),
	}
}

// DataLoaded - Returns true once a load has succeeded
func (P *Planner) DataLoaded() bool {
	return P.dataLoaded
}

// Run - Shows the menu and serves choices until the user exits or the input ends.
// Failing actions are reported to the user and the menu is shown again.
func (P *Planner) Run() (err error) {
	P.log.Debug().Msg("session started")
	P.println("\nWelcome to the course planner.")

	var choice int
	for {
		P.printMenu()
		choice, err = P.readChoice()
		if err != nil {
			break
		}

		if choice == ChoiceExit {
			P.println("Thank you for using the course planner!")
			break
		}

		err = P.runAction(func() error { return P.dispatch(choice) })
		if err != nil {
			break
		}
	}

	if errors.Is(err, io.EOF) {
		err = nil
	}
	P.log.Debug().Err(err).Msg("session ended")

	return
}

// LoadCourseData - Loads a course data file into the active table, adding to any courses loaded before.
// Rejected lines are reported one by one.
func (P *Planner) LoadCourseData(fileName string) (loaded bool, err error) {
	report, loadErr := ingest.LoadCourseData(fileName, P.table)
	for _, le := range report.LineErrors() {
		P.println(le.Error())
	}
	if loadErr != nil {
		P.log.Warn().Err(loadErr).Str("file", fileName).Int("loaded", report.Loaded).Msg("course data not loaded")
		if errors.Is(loadErr, ingest.ErrUnableToOpen) {
			P.println(fmt.Sprintf("Error: Unable to open file %s", fileName))
		} else {
			P.println(fmt.Sprintf("Error: %v", loadErr))
		}
		return
	}

	P.dataLoaded = true
	loaded = true

	return
}

// dispatch - Performs the action for one menu choice other than exit
func (P *Planner) dispatch(choice int) (err error) {
	switch choice {
	case ChoiceLoad:
		P.print("Enter the full path to the file: ")
		var fileName string
		if fileName, err = P.readLine(); err != nil {
			return
		}
		if fileName == "" {
			P.println("Error: Filename cannot be empty.")
			return
		}

		var loaded bool
		if loaded, err = P.LoadCourseData(fileName); err != nil {
			return
		}
		if loaded {
			P.println("Data loaded successfully.")
		} else {
			P.println("Failed to load data.")
		}

	case ChoiceList:
		if !P.requireData() {
			return
		}
		err = PrintCourseList(P.out, P.table)

	case ChoiceInfo:
		if !P.requireData() {
			return
		}
		P.print("Enter course number: ")
		var courseNumber string
		if courseNumber, err = P.readLine(); err != nil {
			return
		}
		if courseNumber == "" {
			P.println("Error: Course number cannot be empty.")
			return
		}
		err = PrintCourseInfo(P.out, P.table, courseNumber)

	default:
		P.println("Invalid option. Please try again.")
	}

	return
}

// runAction - Runs a menu action and turns any error or panic into a message to the user.
// Only end of input is passed on.
func (P *Planner) runAction(action func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
		if err != nil && !errors.Is(err, io.EOF) {
			P.log.Error().Err(err).Msg("menu action failed")
			P.println(fmt.Sprintf("An error occurred: %v", err))
			P.println("Please try again.")
			err = nil
		}
	}()

	return action()
}

// requireData - Tells the user to load data first unless a load has succeeded
func (P *Planner) requireData() bool {
	if !P.dataLoaded {
		P.println("Please load data first (Option 1).")
	}
	return P.dataLoaded
}

// readChoice - Reads lines until one holds a number. Blank lines are skipped silently.
func (P *Planner) readChoice() (choice int, err error) {
	var line string
	for {
		if line, err = P.readLine(); err != nil {
			return
		}
		if line == "" {
			continue
		}
		if choice, err = strconv.Atoi(line); err == nil {
			return
		}
		P.print("Invalid input. Please enter a number: ")
	}
}

// readLine - Returns the next input line trimmed, or io.EOF when the input has ended. Lines have no length limit.
func (P *Planner) readLine() (line string, err error) {
	line, err = P.reader.ReadString('\n')
	if err != nil {
		if line == "" {
			return
		}
		err = nil
	}

	line = utils.Trim(line)

	return
}

func (P *Planner) printMenu() {
	P.print("\nMenu Options:\n1. Load data structure\n2. Print course list\n3. Print course information\n9. Exit\n\nEnter your choice: ")
}

func (P *Planner) print(s string) {
	_, _ = io.WriteString(P.out, s)
}

func (P *Planner) println(s string) {
	_, _ = io.WriteString(P.out, s+"\n")
}
