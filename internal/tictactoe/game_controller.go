package tictactoe

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/nttt/pkg/entity"
)

const (
	CommandMark  = "mark"
	CommandUndo  = "undo"
	CommandReset = "reset"
	CommandShow  = "show"
	CommandState = "state"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidCommand = errors.New("invalid command")
)

// Command is a single line of driver input.
type Command struct {
	Name string
	X    int
	Y    int
}

// ParseCommand - parses a line such as "mark 1 2", "undo" or "state".
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty line", ErrInvalidCommand)
	}

	name := strings.ToLower(fields[0])
	args := fields[1:]

	switch name {
	case CommandMark:
		if len(args) != 2 {
			return Command{}, fmt.Errorf("%w: usage: mark X Y", ErrInvalidCommand)
		}

		x, err := strconv.Atoi(args[0])
		if err != nil {
			return Command{}, fmt.Errorf("%w: x=%q is not an integer", ErrInvalidCommand, args[0])
		}

		y, err := strconv.Atoi(args[1])
		if err != nil {
			return Command{}, fmt.Errorf("%w: y=%q is not an integer", ErrInvalidCommand, args[1])
		}

		return Command{Name: name, X: x, Y: y}, nil
	case CommandUndo, CommandReset, CommandShow, CommandState:
		if len(args) != 0 {
			return Command{}, fmt.Errorf("%w: %s takes no arguments", ErrInvalidCommand, name)
		}

		return Command{Name: name}, nil
	default:
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}
}

type GameController struct {
	logger *slog.Logger
	game   *entity.Game
}

func NewGameController(logger *slog.Logger, game *entity.Game) *GameController {
	return &GameController{
		logger: logger.With("component", "tictactoe"),
		game:   game,
	}
}

// Execute - applies the command to the game and returns the text to print.
func (that *GameController) Execute(cmd Command) (string, error) {
	switch cmd.Name {
	case CommandMark:
		if err := that.MakeTurn(cmd.X, cmd.Y); err != nil {
			return "", err
		}

		return that.game.String(), nil
	case CommandUndo:
		if !that.Undo() {
			return "nothing to undo", nil
		}

		return that.game.String(), nil
	case CommandReset:
		that.Reset()

		return that.game.String(), nil
	case CommandShow:
		return that.game.String(), nil
	case CommandState:
		return that.Status(), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Name)
	}
}

// MakeTurn - places the current token and logs the outcome once the game is over.
func (that *GameController) MakeTurn(x, y int) error {
	log := that.logger.With("method", "MakeTurn")

	if err := that.game.Mark(x, y); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	placed, err := that.game.Board().Cell(x, y)
	if err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	token, _ := placed.Token()
	log.Debug("turn made", "x", x, "y", y, "token", token)

	if state := that.game.State(); state.IsFinished() {
		log.Info("game finished", "result", state.String(), "moves", len(that.game.History()))
	}

	return nil
}

func (that *GameController) Undo() bool {
	position, ok := that.game.Undo()
	if ok {
		that.logger.Debug("turn undone", "x", position.X, "y", position.Y)
	}

	return ok
}

func (that *GameController) Reset() {
	that.game.Reset()
	that.logger.Debug("game reset", "size", that.game.Size(), "starting", that.game.Starting())
}

// Status - describes the result, or whose turn it is while the game is on.
func (that *GameController) Status() string {
	state := that.game.State()
	if !state.IsFinished() {
		return fmt.Sprintf("%s to move", that.game.Turn())
	}

	return state.String()
}
