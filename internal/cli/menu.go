// Package cli implements the interactive menu surface. Handlers here
// are thin I/O glue: they read operator input, call into the
// repositories and the reservation engine, and print outcomes. All
// state changes happen behind those collaborators.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/iliyamo/train-seat-reservation/internal/booking"
	"github.com/iliyamo/train-seat-reservation/internal/config"
	"github.com/iliyamo/train-seat-reservation/internal/model"
	"github.com/iliyamo/train-seat-reservation/internal/repository"
	"github.com/iliyamo/train-seat-reservation/internal/session"
	"github.com/iliyamo/train-seat-reservation/internal/utils"

	"github.com/google/uuid"
)

// App bundles everything the menu loop needs. All methods operate on
// the one Session value held here; operations are functions of (store
// state, session state, input) rather than package-level globals.
type App struct {
	Cfg    config.Config
	Users  *repository.UserRepo
	Trains *repository.TrainRepo
	Engine *booking.Engine
	Sess   *session.Session
	Log    *zap.Logger

	in  *bufio.Scanner
	out io.Writer
}

// NewApp constructs the menu application reading from in and printing
// to out.
func NewApp(cfg config.Config, users *repository.UserRepo, trains *repository.TrainRepo, eng *booking.Engine, log *zap.Logger, in io.Reader, out io.Writer) *App {
	if users == nil || trains == nil || eng == nil {
		panic("nil dependency passed to NewApp")
	}
	return &App{
		Cfg:    cfg,
		Users:  users,
		Trains: trains,
		Engine: eng,
		Sess:   &session.Session{},
		Log:    log,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run drives the numbered menu until the operator exits or the safety
// iteration cap is reached. Invalid input re-prompts, never crashes.
func (a *App) Run() error {
	a.printf("Running Train Booking System\n")
	for loops := 0; loops < a.Cfg.MaxMenuLoops; loops++ {
		a.printf("\n=== Menu ===\n")
		a.printf("1. Sign up\n")
		a.printf("2. Login\n")
		a.printf("3. Fetch Bookings\n")
		a.printf("4. Search Trains\n")
		a.printf("5. Book a Seat\n")
		a.printf("6. Cancel my Booking\n")
		a.printf("7. Exit the App\n")

		input, ok := a.prompt("Choose an option (1-7): ")
		if !ok {
			// input stream closed, treat like exit
			a.printf("\nExiting the application. Goodbye!\n")
			return nil
		}
		if input == "" {
			a.printf("Empty input, please try again.\n")
			continue
		}
		option, err := strconv.Atoi(input)
		if err != nil {
			a.printf("Invalid input %q. Please enter a number between 1-7.\n", input)
			continue
		}

		switch option {
		case 1:
			a.handleSignUp()
		case 2:
			a.handleLogin()
		case 3:
			a.handleFetchBookings()
		case 4:
			a.handleSearchTrains()
		case 5:
			a.handleBookSeat()
		case 6:
			a.handleCancelBooking()
		case 7:
			a.printf("Exiting the application. Goodbye!\n")
			return nil
		default:
			a.printf("Invalid option. Please choose 1-7.\n")
		}
	}
	a.printf("Safety limit reached. Exiting.\n")
	return nil
}

func (a *App) handleSignUp() {
	a.printf("=== User Sign Up ===\n")
	name, _ := a.prompt("Enter username: ")
	password, _ := a.prompt("Enter password: ")
	if name == "" || password == "" {
		a.printf("Username and password cannot be empty.\n")
		return
	}
	hash, err := utils.HashPassword(password, a.Cfg.BcryptCost)
	if err != nil {
		a.printf("Sign up failed: %v\n", err)
		return
	}
	u := model.User{
		ID:             uuid.NewString(),
		Name:           name,
		HashedPassword: hash,
		TicketsBooked:  []model.Ticket{},
	}
	switch err := a.Users.SignUp(u); {
	case err == nil:
		a.printf("Sign up successful! You can now log in.\n")
	case errors.Is(err, repository.ErrNameExists):
		a.printf("That username is already taken.\n")
	default:
		a.printf("Sign up failed: %v\n", err)
	}
}

func (a *App) handleLogin() {
	a.printf("=== User Login ===\n")
	name, _ := a.prompt("Enter username: ")
	password, _ := a.prompt("Enter password: ")
	if name == "" || password == "" {
		a.printf("Username and password cannot be empty.\n")
		return
	}
	u, err := a.Users.FindByCredentials(name, password)
	if err != nil {
		// unknown name and wrong password read identically here
		a.printf("Login failed!\n")
		return
	}
	a.Sess.Authenticate(u.ID, u.Name)
	a.printf("Login successful! Welcome, %s.\n", u.Name)
}

func (a *App) handleFetchBookings() {
	a.printf("=== Your Bookings ===\n")
	tickets, err := a.Engine.FetchBookings(a.Sess)
	if err != nil {
		if errors.Is(err, session.ErrNotAuthenticated) {
			a.printf("Please log in first (option 2).\n")
			return
		}
		a.printf("Could not fetch bookings: %v\n", err)
		return
	}
	if len(tickets) == 0 {
		a.printf("No bookings yet.\n")
		return
	}
	for i, t := range tickets {
		a.printf("%d. Ticket %s | Train %s | %s -> %s | seat (%d,%d) | booked %s\n",
			i+1, t.TicketID, t.TrainID, t.Source, t.Destination,
			t.Row, t.Col, t.BookedAt.Format("2006-01-02 15:04"))
	}
}

func (a *App) handleSearchTrains() {
	a.printf("=== Search Trains ===\n")
	source, _ := a.prompt("Enter source station: ")
	dest, _ := a.prompt("Enter destination station: ")
	if source == "" || dest == "" {
		a.printf("Source and destination cannot be empty.\n")
		return
	}
	trains := a.Trains.SearchByRoute(source, dest)
	if len(trains) == 0 {
		a.printf("No trains found for the given route.\n")
		return
	}

	a.printf("\nAvailable Trains:\n")
	for i, t := range trains {
		a.printf("%d. Train %s (no. %s)\n", i+1, t.TrainID, t.TrainNo)
		for _, station := range t.Stations {
			a.printf("   Station: %s | Time: %s\n", station, t.StationTimes[station])
		}
	}

	input, _ := a.prompt(fmt.Sprintf("Select a train (1-%d): ", len(trains)))
	choice, err := strconv.Atoi(input)
	if err != nil || choice < 1 || choice > len(trains) {
		a.printf("Invalid train selection.\n")
		return
	}
	selected := trains[choice-1]
	a.Sess.SelectTrain(selected.TrainID, source, dest)
	a.printf("Selected train: %s\n", selected.TrainID)
}

func (a *App) handleBookSeat() {
	trainID, err := a.Sess.TrainID()
	if err != nil {
		a.printf("Please search and select a train first (option 4).\n")
		return
	}
	train, err := a.Trains.GetByID(trainID)
	if err != nil {
		a.printf("Selected train is no longer available.\n")
		return
	}

	a.printf("=== Book a Seat ===\n")
	a.printf("Available seats for Train %s (0 = free, 1 = booked):\n", train.TrainID)
	for i, row := range train.Seats {
		a.printf("Row %d: ", i)
		for _, cell := range row {
			a.printf("%d ", cell)
		}
		a.printf("\n")
	}

	rowInput, _ := a.prompt("Enter row number: ")
	row, err := strconv.Atoi(rowInput)
	if err != nil {
		a.printf("Please enter valid numbers for row and column.\n")
		return
	}
	colInput, _ := a.prompt("Enter column number: ")
	col, err := strconv.Atoi(colInput)
	if err != nil {
		a.printf("Please enter valid numbers for row and column.\n")
		return
	}

	a.printf("Booking your seat....\n")
	ticket, err := a.Engine.BookSeat(a.Sess, row, col)
	switch {
	case err == nil:
		a.printf("Booked! Ticket %s. Enjoy your journey.\n", ticket.TicketID)
	case errors.Is(err, session.ErrNotAuthenticated):
		a.printf("Please log in first (option 2).\n")
	case errors.Is(err, booking.ErrSeatOutOfBounds):
		a.printf("That seat does not exist on this train.\n")
	case errors.Is(err, booking.ErrSeatAlreadyBooked):
		a.printf("Can't book this seat. It is already taken.\n")
	case errors.Is(err, booking.ErrTicketNotRecorded):
		a.printf("Seat booked (ticket %s), but recording the ticket failed; note the ID.\n", ticket.TicketID)
	default:
		a.printf("Error booking seat: %v\n", err)
	}
}

func (a *App) handleCancelBooking() {
	a.printf("=== Cancel Booking ===\n")
	ticketID, _ := a.prompt("Enter the ticket id to cancel: ")
	if ticketID == "" {
		a.printf("Ticket ID cannot be empty.\n")
		return
	}
	switch err := a.Engine.CancelTicket(a.Sess, ticketID); {
	case err == nil:
		a.printf("Ticket %s canceled successfully!\n", ticketID)
	case errors.Is(err, session.ErrNotAuthenticated):
		a.printf("Please log in first (option 2).\n")
	case errors.Is(err, booking.ErrTicketNotFound):
		a.printf("No ticket found with ID %s.\n", ticketID)
	default:
		a.printf("Could not cancel: %v\n", err)
	}
}

// prompt prints the label and reads one trimmed line. ok is false once
// the input stream is exhausted.
func (a *App) prompt(label string) (line string, ok bool) {
	a.printf("%s", label)
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
